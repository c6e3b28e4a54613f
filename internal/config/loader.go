package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// whitelistSet is a precomputed lookup table for fast whitelist membership checks.
var whitelistSet map[string]bool

func init() {
	whitelistSet = make(map[string]bool, len(WhitelistedVars))
	for _, v := range WhitelistedVars {
		whitelistSet[v] = true
	}
}

// LoadFile parses a KEY=VALUE config file at the given path.
//
// Lines are processed according to these rules:
//   - Empty lines and lines starting with # are skipped.
//   - Lines without an = sign are skipped.
//   - Leading and trailing whitespace is trimmed from both key and value.
//   - Keys not present in WhitelistedVars are silently ignored.
//
// Returns a map of whitelisted key-value pairs, or an error if the file
// cannot be opened.
func LoadFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	result := make(map[string]string)
	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Split on first '=' only.
		idx := strings.Index(line, "=")
		if idx < 0 {
			continue
		}

		key := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+1:])

		// Enforce whitelist.
		if !whitelistSet[key] {
			continue
		}

		result[key] = value
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	return result, nil
}

// LoadWithPrecedence assembles a Config by merging sources in order of
// increasing priority:
//
//  1. Built-in defaults
//  2. Project config file (projectPath)
//  3. Explicit config file (explicitPath)
//  4. CLI overrides (cliOverrides map)
//
// A missing project config is not an error; an explicit config that cannot
// be loaded is.
func LoadWithPrecedence(projectPath, explicitPath string, cliOverrides map[string]string) (*Config, error) {
	cfg := NewDefaultConfig()

	// Layer 2: project config file.
	if projectPath != "" {
		m, err := LoadFile(projectPath)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("project config: %w", err)
			}
		} else {
			ApplyMapToConfig(cfg, m)
		}
	}

	// Layer 3: explicit config file (must exist if specified).
	if explicitPath != "" {
		m, err := LoadFile(explicitPath)
		if err != nil {
			return nil, fmt.Errorf("explicit config: %w", err)
		}
		ApplyMapToConfig(cfg, m)
	}

	// Layer 4: CLI overrides (highest priority).
	if len(cliOverrides) > 0 {
		ApplyMapToConfig(cfg, cliOverrides)
	}

	return cfg, nil
}

// ApplyMapToConfig sets fields on cfg from the key-value pairs in m.
// Keys must use the WhitelistedVars naming convention (e.g., "TEXT_MODEL").
// Unknown keys are silently ignored. Integer fields that fail to parse
// are silently ignored (the previous value is preserved).
func ApplyMapToConfig(cfg *Config, m map[string]string) {
	for key, value := range m {
		switch key {
		case "TEXT_BASE_URL":
			cfg.TextBaseURL = value
		case "TEXT_MODEL":
			cfg.TextModel = value
		case "MAX_RETRIES":
			if v, err := strconv.Atoi(value); err == nil {
				cfg.MaxRetries = v
			}
		case "RETRY_DELAY":
			if v, err := strconv.Atoi(value); err == nil {
				cfg.RetryDelay = v
			}
		case "RATE_LIMIT_WAITS":
			if v, err := strconv.Atoi(value); err == nil {
				cfg.RateLimitWaits = v
			}
		case "REQUEST_TIMEOUT":
			if v, err := strconv.Atoi(value); err == nil {
				cfg.RequestTimeout = v
			}
		case "IMAGE_BASE_URL":
			cfg.ImageBaseURL = value
		case "IMAGE_MODEL":
			cfg.ImageModel = value
		case "IMAGE_STEPS":
			if v, err := strconv.Atoi(value); err == nil {
				cfg.ImageSteps = v
			}
		case "IMAGE_COUNT":
			if v, err := strconv.Atoi(value); err == nil {
				cfg.ImageCount = v
			}
		case "INPUT_FILE":
			cfg.InputFile = value
		case "INPUT_DIR":
			cfg.InputDir = value
		case "OUTPUT_DIR":
			cfg.OutputDir = value
		case "IMAGES_DIR":
			cfg.ImagesDir = value
		case "OUTPUT_FILE":
			cfg.OutputFile = value
		case "TITLE_MAX_CHARS":
			if v, err := strconv.Atoi(value); err == nil {
				cfg.TitleMaxChars = v
			}
		case "DESCRIPTION_MAX_CHARS":
			if v, err := strconv.Atoi(value); err == nil {
				cfg.DescriptionMaxChars = v
			}
		case "IMAGE_PROMPT_MAX_CHARS":
			if v, err := strconv.Atoi(value); err == nil {
				cfg.ImagePromptMaxChars = v
			}
		case "DESCRIPTION_TEMPLATE":
			cfg.DescriptionTemplate = value
		case "NOTIFY_WEBHOOK":
			cfg.NotifyWebhook = value
		case "VERBOSE":
			cfg.Verbose = parseBool(value)
		}
	}
}

// parseBool interprets common boolean representations.
// "true", "1", "yes" (case-insensitive) return true; everything else returns false.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
