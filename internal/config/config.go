// Package config defines the listing-gen configuration model and default values.
//
// Configuration is assembled from multiple sources with a strict precedence
// chain: built-in defaults < project config file < explicit config file <
// CLI flag overrides. API credentials never come from config files; they are
// read from the environment (see env.go).
package config

// WhitelistedVars lists every configuration variable name that may appear in
// config files. Variables not in this list are silently ignored during loading.
var WhitelistedVars = [21]string{
	"TEXT_BASE_URL",
	"TEXT_MODEL",
	"MAX_RETRIES",
	"RETRY_DELAY",
	"RATE_LIMIT_WAITS",
	"REQUEST_TIMEOUT",
	"IMAGE_BASE_URL",
	"IMAGE_MODEL",
	"IMAGE_STEPS",
	"IMAGE_COUNT",
	"INPUT_FILE",
	"INPUT_DIR",
	"OUTPUT_DIR",
	"IMAGES_DIR",
	"OUTPUT_FILE",
	"TITLE_MAX_CHARS",
	"DESCRIPTION_MAX_CHARS",
	"IMAGE_PROMPT_MAX_CHARS",
	"DESCRIPTION_TEMPLATE",
	"NOTIFY_WEBHOOK",
	"VERBOSE",
}

// Config holds every configuration field for the listing-gen CLI.
type Config struct {
	// Text generation endpoint.
	TextBaseURL string
	TextModel   string

	// Retry behavior for text requests. Delays and timeouts are in seconds.
	MaxRetries     int
	RetryDelay     int
	RateLimitWaits int
	RequestTimeout int

	// Image generation endpoint.
	ImageBaseURL string
	ImageModel   string
	ImageSteps   int
	ImageCount   int

	// File layout. ImagesDir is relative to OutputDir.
	InputFile  string
	InputDir   string
	OutputDir  string
	ImagesDir  string
	OutputFile string

	// Prompt length hints passed to the model, never enforced locally.
	TitleMaxChars       int
	DescriptionMaxChars int
	ImagePromptMaxChars int

	// Optional Markdown file appended to every description after rendering.
	// Empty selects the built-in template.
	DescriptionTemplate string

	// Notification settings. Empty webhook disables notifications.
	NotifyWebhook string

	// Runtime flags.
	Verbose bool

	// CLI-only flags (not loaded from config files).
	ConfigFile string
	StartAt    string
}

// NewDefaultConfig returns a Config populated with all built-in default values.
func NewDefaultConfig() *Config {
	return &Config{
		TextBaseURL:         "https://api.mistral.ai/v1/chat/completions",
		TextModel:           "mistral-tiny",
		MaxRetries:          3,
		RetryDelay:          2,
		RateLimitWaits:      5,
		RequestTimeout:      30,
		ImageBaseURL:        "https://api.together.xyz/v1",
		ImageModel:          "black-forest-labs/FLUX.1-schnell-Free",
		ImageSteps:          2,
		ImageCount:          1,
		InputDir:            "input",
		OutputDir:           "output",
		ImagesDir:           "images",
		OutputFile:          "product_information.csv",
		TitleMaxChars:       50,
		DescriptionMaxChars: 150,
		ImagePromptMaxChars: 75,
	}
}
