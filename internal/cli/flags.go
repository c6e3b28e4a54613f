// Package cli provides flag binding and validation for the listing-gen CLI.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/storesmith/listing-tools/internal/config"
)

// BindFlags registers all CLI flags on the given cobra command.
// The flags directly modify fields in the provided config pointer; defaults
// come from the config so NewDefaultConfig stays the single source of truth.
// Call ValidateFlags after parsing to check flag values.
func BindFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	// Text backend
	flags.StringVar(&cfg.TextBaseURL, "text-base-url", cfg.TextBaseURL, "Chat completions endpoint URL")
	flags.StringVar(&cfg.TextModel, "text-model", cfg.TextModel, "Text generation model")
	flags.IntVar(&cfg.MaxRetries, "max-retries", cfg.MaxRetries, "Attempts per text request")
	flags.IntVar(&cfg.RetryDelay, "retry-delay", cfg.RetryDelay, "Seconds between failed attempts")
	flags.IntVar(&cfg.RateLimitWaits, "rate-limit-waits", cfg.RateLimitWaits, "Consecutive rate-limit waits before giving up")
	flags.IntVar(&cfg.RequestTimeout, "request-timeout", cfg.RequestTimeout, "Per-attempt timeout in seconds")

	// Image backend
	flags.StringVar(&cfg.ImageBaseURL, "image-base-url", cfg.ImageBaseURL, "Image API base URL (OpenAI-compatible)")
	flags.StringVar(&cfg.ImageModel, "image-model", cfg.ImageModel, "Image generation model")
	flags.IntVar(&cfg.ImageSteps, "image-steps", cfg.ImageSteps, "Diffusion steps per image")
	flags.IntVar(&cfg.ImageCount, "image-count", cfg.ImageCount, "Images requested per prompt")

	// Files & Directories
	flags.StringVar(&cfg.InputFile, "input", "", "Explicit input CSV path (default: auto-discover)")
	flags.StringVar(&cfg.InputDir, "input-dir", cfg.InputDir, "Directory searched for input.csv")
	flags.StringVar(&cfg.OutputDir, "output-dir", cfg.OutputDir, "Directory for the result CSV and manifest")
	flags.StringVar(&cfg.ImagesDir, "images-dir", cfg.ImagesDir, "PNG subdirectory under the output directory")
	flags.StringVar(&cfg.OutputFile, "output-file", cfg.OutputFile, "Result CSV file name")
	flags.StringVar(&cfg.DescriptionTemplate, "description-template", "", "Markdown template appended to descriptions (default: built-in)")
	flags.StringVar(&cfg.ConfigFile, "config", "", "Path to additional config file")

	// Content limits
	flags.IntVar(&cfg.TitleMaxChars, "title-max-chars", cfg.TitleMaxChars, "Character hint for generated titles")
	flags.IntVar(&cfg.DescriptionMaxChars, "description-max-chars", cfg.DescriptionMaxChars, "Character hint for generated descriptions")
	flags.IntVar(&cfg.ImagePromptMaxChars, "image-prompt-max-chars", cfg.ImagePromptMaxChars, "Character hint for generated image prompts")

	// Feature Toggles
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Enable debug logging")

	// Scheduling
	flags.StringVar(&cfg.StartAt, "start-at", "", "Schedule start time (ISO 8601, HH:MM, YYYY-MM-DD HH:MM)")
	// Alias --at for --start-at
	flags.StringVar(&cfg.StartAt, "at", "", "Alias for --start-at")

	// Notifications
	flags.StringVar(&cfg.NotifyWebhook, "notify-webhook", "", "Batch completion webhook URL")
}

// ValidateFlags checks flag values after parsing.
// Must be called after cmd.Execute() or cmd.ParseFlags().
func ValidateFlags(cmd *cobra.Command, cfg *config.Config) error {
	// --config must exist if provided
	if cfg.ConfigFile != "" {
		if _, err := os.Stat(cfg.ConfigFile); err != nil {
			return fmt.Errorf("--config: %w", err)
		}
	}

	// --input must exist if provided
	if cfg.InputFile != "" && cmd.Flags().Changed("input") {
		if _, err := os.Stat(cfg.InputFile); err != nil {
			return fmt.Errorf("--input: %w", err)
		}
	}

	if cfg.MaxRetries < 1 {
		return fmt.Errorf("--max-retries must be at least 1, got: %d", cfg.MaxRetries)
	}
	if cfg.RateLimitWaits < 0 {
		return fmt.Errorf("--rate-limit-waits must not be negative, got: %d", cfg.RateLimitWaits)
	}
	if cfg.ImageSteps < 1 {
		return fmt.Errorf("--image-steps must be at least 1, got: %d", cfg.ImageSteps)
	}

	return nil
}
