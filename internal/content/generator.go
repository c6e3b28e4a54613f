// Package content composes prompts for the four listing fields and
// post-processes what the model returns.
//
// Post-processing is minimal and uniform: double-quote characters are
// stripped from every generated string (they break downstream CSV
// consumers), and descriptions get the product template appended.
package content

import (
	"context"
	"strings"

	"github.com/storesmith/listing-tools/internal/logging"
)

// TextClient is the completion dependency. Errors pass through untouched;
// the generator performs no retries or recovery of its own.
type TextClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Options configures a Generator. Zero limits fall back to the defaults.
type Options struct {
	TitleMaxChars       int
	DescriptionMaxChars int
	ImagePromptMaxChars int

	// TemplatePath points at a Markdown file rendered once at construction
	// and appended to every description. Empty selects the built-in suffix.
	TemplatePath string
}

const (
	defaultTitleMaxChars       = 50
	defaultDescriptionMaxChars = 150
	defaultImagePromptMaxChars = 75
)

// Generator turns a row theme into listing copy via the text client.
type Generator struct {
	client TextClient
	opts   Options
	suffix string
}

// NewGenerator validates opts, renders the description template, and
// returns a ready Generator.
func NewGenerator(client TextClient, opts Options) (*Generator, error) {
	if opts.TitleMaxChars == 0 {
		opts.TitleMaxChars = defaultTitleMaxChars
	}
	if opts.DescriptionMaxChars == 0 {
		opts.DescriptionMaxChars = defaultDescriptionMaxChars
	}
	if opts.ImagePromptMaxChars == 0 {
		opts.ImagePromptMaxChars = defaultImagePromptMaxChars
	}

	suffix := defaultTemplateSuffix
	if opts.TemplatePath != "" {
		rendered, err := loadTemplateSuffix(opts.TemplatePath)
		if err != nil {
			return nil, err
		}
		suffix = rendered
	}

	return &Generator{client: client, opts: opts, suffix: suffix}, nil
}

// GenerateTitle produces a short product title for theme.
func (g *Generator) GenerateTitle(ctx context.Context, theme string) (string, error) {
	logging.Info("Generating title...")
	text, err := g.client.Complete(ctx, titlePrompt(theme, g.opts.TitleMaxChars))
	if err != nil {
		return "", err
	}
	return stripQuotes(text), nil
}

// GenerateDescription produces the listing description for theme, anchored
// on the already-generated title. The template suffix is always appended.
func (g *Generator) GenerateDescription(ctx context.Context, theme, title string) (string, error) {
	logging.Info("Generating description...")
	text, err := g.client.Complete(ctx, descriptionPrompt(theme, title, g.opts.DescriptionMaxChars))
	if err != nil {
		return "", err
	}
	return stripQuotes(text) + g.suffix, nil
}

// GenerateImagePrompt produces the prompt handed to the image model.
func (g *Generator) GenerateImagePrompt(ctx context.Context, theme string) (string, error) {
	logging.Info("Generating image prompt...")
	text, err := g.client.Complete(ctx, imagePrompt(theme, g.opts.ImagePromptMaxChars))
	if err != nil {
		return "", err
	}
	return stripQuotes(text), nil
}

// GenerateTags produces the comma-separated tag list for theme.
func (g *Generator) GenerateTags(ctx context.Context, theme string) (string, error) {
	logging.Info("Generating tags...")
	text, err := g.client.Complete(ctx, tagsPrompt(theme))
	if err != nil {
		return "", err
	}
	return stripQuotes(text), nil
}

// TemplateSuffix returns the rendered suffix appended to descriptions.
func (g *Generator) TemplateSuffix() string {
	return g.suffix
}

func stripQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, "")
}
