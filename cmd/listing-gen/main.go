package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/storesmith/listing-tools/internal/batch"
	"github.com/storesmith/listing-tools/internal/cli"
	"github.com/storesmith/listing-tools/internal/config"
	"github.com/storesmith/listing-tools/internal/content"
	"github.com/storesmith/listing-tools/internal/imagegen"
	"github.com/storesmith/listing-tools/internal/logging"
	"github.com/storesmith/listing-tools/internal/ratelimit"
	"github.com/storesmith/listing-tools/internal/textgen"
)

// version vars injected via ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const projectConfigFile = "listing-gen.conf"

func main() {
	cfg := config.NewDefaultConfig()

	rootCmd := &cobra.Command{
		Use:     "listing-gen",
		Short:   "Product listing batch generator",
		Long:    "listing-gen turns a CSV of product themes into listing titles, descriptions, tags, and generated images.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Validate flags after parsing
			if err := cli.ValidateFlags(cmd, cfg); err != nil {
				return err
			}
			return runBatch(cmd, cfg)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Bind all CLI flags to the config
	cli.BindFlags(rootCmd, cfg)

	// Set custom help template
	cli.SetCustomHelp(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildCLIOverrides creates a map of CLI flag overrides from the config.
// Uses cmd.Flags().Changed() to only include flags explicitly set by the user,
// ensuring config file values are not accidentally overridden by default values.
func buildCLIOverrides(cmd *cobra.Command, cfg *config.Config) map[string]string {
	overrides := make(map[string]string)

	// String flags: only include if explicitly set via CLI
	stringFlags := map[string]struct {
		key string
		val string
	}{
		"text-base-url":        {"TEXT_BASE_URL", cfg.TextBaseURL},
		"text-model":           {"TEXT_MODEL", cfg.TextModel},
		"image-base-url":       {"IMAGE_BASE_URL", cfg.ImageBaseURL},
		"image-model":          {"IMAGE_MODEL", cfg.ImageModel},
		"input":                {"INPUT_FILE", cfg.InputFile},
		"input-dir":            {"INPUT_DIR", cfg.InputDir},
		"output-dir":           {"OUTPUT_DIR", cfg.OutputDir},
		"images-dir":           {"IMAGES_DIR", cfg.ImagesDir},
		"output-file":          {"OUTPUT_FILE", cfg.OutputFile},
		"description-template": {"DESCRIPTION_TEMPLATE", cfg.DescriptionTemplate},
		"notify-webhook":       {"NOTIFY_WEBHOOK", cfg.NotifyWebhook},
	}
	for flag, mapping := range stringFlags {
		if cmd.Flags().Changed(flag) {
			overrides[mapping.key] = mapping.val
		}
	}

	// Int flags
	intFlags := map[string]struct {
		key string
		val int
	}{
		"max-retries":            {"MAX_RETRIES", cfg.MaxRetries},
		"retry-delay":            {"RETRY_DELAY", cfg.RetryDelay},
		"rate-limit-waits":       {"RATE_LIMIT_WAITS", cfg.RateLimitWaits},
		"request-timeout":        {"REQUEST_TIMEOUT", cfg.RequestTimeout},
		"image-steps":            {"IMAGE_STEPS", cfg.ImageSteps},
		"image-count":            {"IMAGE_COUNT", cfg.ImageCount},
		"title-max-chars":        {"TITLE_MAX_CHARS", cfg.TitleMaxChars},
		"description-max-chars":  {"DESCRIPTION_MAX_CHARS", cfg.DescriptionMaxChars},
		"image-prompt-max-chars": {"IMAGE_PROMPT_MAX_CHARS", cfg.ImagePromptMaxChars},
	}
	for flag, mapping := range intFlags {
		if cmd.Flags().Changed(flag) {
			overrides[mapping.key] = fmt.Sprintf("%d", mapping.val)
		}
	}

	// Bool flags
	if cmd.Flags().Changed("verbose") {
		if cfg.Verbose {
			overrides["VERBOSE"] = "true"
		} else {
			overrides["VERBOSE"] = "false"
		}
	}

	return overrides
}

func runBatch(cmd *cobra.Command, cfg *config.Config) error {
	// Credentials come only from the environment (plus .env). A missing key
	// fails here, before any config file or input is touched.
	creds, err := config.LoadCredentials()
	if err != nil {
		return err
	}

	// Load config with full precedence chain.
	// CLI flags are already bound to cfg, now load file-based configs.
	cliOverrides := buildCLIOverrides(cmd, cfg)

	finalCfg, err := config.LoadWithPrecedence(projectConfigFile, cfg.ConfigFile, cliOverrides)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Merge CLI-only flags (not in config files)
	finalCfg.ConfigFile = cfg.ConfigFile
	finalCfg.StartAt = cfg.StartAt
	cfg = finalCfg

	// Set verbose mode
	logging.SetVerbose(cfg.Verbose)

	textClient, err := textgen.NewClient(textgen.Options{
		BaseURL:        cfg.TextBaseURL,
		APIKey:         creds.MistralKey,
		Model:          cfg.TextModel,
		MaxRetries:     cfg.MaxRetries,
		RetryDelay:     time.Duration(cfg.RetryDelay) * time.Second,
		RateLimitWaits: cfg.RateLimitWaits,
		Timeout:        time.Duration(cfg.RequestTimeout) * time.Second,
		OnRetry: func(attempt, maxRetries int, delay time.Duration, err error) {
			logging.Warn("Request failed (attempt %d/%d), retrying in %s: %v", attempt, maxRetries, delay, err)
		},
		OnRateLimit: func(wait time.Duration) {
			logging.Warn("Rate limited, waiting %s before retrying", ratelimit.FormatDuration(wait))
		},
	})
	if err != nil {
		return err
	}

	generator, err := content.NewGenerator(textClient, content.Options{
		TitleMaxChars:       cfg.TitleMaxChars,
		DescriptionMaxChars: cfg.DescriptionMaxChars,
		ImagePromptMaxChars: cfg.ImagePromptMaxChars,
		TemplatePath:        cfg.DescriptionTemplate,
	})
	if err != nil {
		return err
	}

	imageClient, err := imagegen.NewTogetherClient(imagegen.Options{
		BaseURL: cfg.ImageBaseURL,
		APIKey:  creds.TogetherKey,
		Model:   cfg.ImageModel,
		Steps:   cfg.ImageSteps,
		Count:   cfg.ImageCount,
	})
	if err != nil {
		return err
	}

	orch := batch.NewOrchestrator(cfg, generator, imageClient)
	return orch.Run(context.Background())
}
