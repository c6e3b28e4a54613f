// Package imagegen renders listing artwork through the Together image API.
//
// Together exposes an OpenAI-compatible surface, so the official openai-go
// SDK drives it with the base URL swapped in; the non-standard "steps" knob
// rides along as an extra JSON body field. The model answers with a URL,
// which is fetched and decoded here.
//
// Nothing on this path retries (the SDK's own retry layer is disabled too):
// a failed image costs one skipped row, not a stalled batch.
package imagegen

import (
	"context"
	"errors"
	"fmt"
	"image"
	"net/http"
	"time"

	// Decoders for the formats image hosts actually serve.
	_ "image/jpeg"
	_ "image/png"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	defaultBaseURL = "https://api.together.xyz/v1"
	defaultModel   = "black-forest-labs/FLUX.1-schnell-Free"
	defaultSteps   = 2
	defaultCount   = 1
	defaultTimeout = 30 * time.Second
)

// Options configures a TogetherClient. Zero values fall back to the
// documented defaults; only APIKey is required.
type Options struct {
	BaseURL string
	APIKey  string
	Model   string

	// Steps is the diffusion step count, a Together extension field.
	Steps int

	// Count is how many images to request; only the first is used.
	Count int

	// Timeout bounds the URL fetch after generation.
	Timeout time.Duration

	// HTTPClient overrides the fetch transport, mainly for tests.
	HTTPClient *http.Client
}

// TogetherClient generates one image per prompt.
type TogetherClient struct {
	opts    Options
	reqOpts []option.RequestOption
	fetch   *http.Client
}

// NewTogetherClient validates opts, applies defaults, and returns a ready client.
func NewTogetherClient(opts Options) (*TogetherClient, error) {
	if opts.APIKey == "" {
		return nil, errors.New("imagegen: API key is required")
	}
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.Model == "" {
		opts.Model = defaultModel
	}
	if opts.Steps == 0 {
		opts.Steps = defaultSteps
	}
	if opts.Count == 0 {
		opts.Count = defaultCount
	}
	if opts.Timeout == 0 {
		opts.Timeout = defaultTimeout
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithBaseURL(opts.BaseURL),
		option.WithMaxRetries(0),
	}

	fetch := opts.HTTPClient
	if fetch == nil {
		fetch = &http.Client{Timeout: opts.Timeout}
	}

	return &TogetherClient{opts: opts, reqOpts: reqOpts, fetch: fetch}, nil
}

// Model returns the configured model name.
func (c *TogetherClient) Model() string {
	return c.opts.Model
}

// Generate asks the image model for a rendering of prompt and returns the
// decoded image. Any failure along the way (API error, missing URL, fetch,
// decode) comes back as a plain error; callers treat these as row-level.
func (c *TogetherClient) Generate(ctx context.Context, prompt string) (image.Image, error) {
	client := openai.NewClient(c.reqOpts...)

	resp, err := client.Images.Generate(ctx, openai.ImageGenerateParams{
		Prompt:         prompt,
		Model:          openai.ImageModel(c.opts.Model),
		N:              openai.Int(int64(c.opts.Count)),
		ResponseFormat: openai.ImageGenerateParamsResponseFormatURL,
	}, option.WithJSONSet("steps", c.opts.Steps))
	if err != nil {
		return nil, fmt.Errorf("image request: %w", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return nil, errors.New("image response has no URL")
	}

	return c.fetchImage(ctx, resp.Data[0].URL)
}

// fetchImage downloads the generated image and decodes it.
func (c *TogetherClient) fetchImage(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build image fetch: %w", err)
	}

	resp, err := c.fetch.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch image: unexpected status %s", resp.Status)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}
