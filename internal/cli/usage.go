// Package cli provides help text and usage formatting for the listing-gen CLI.
package cli

import (
	"github.com/spf13/cobra"
)

const helpTemplate = `listing-gen - Product listing batch generator

USAGE
  listing-gen [flags]

FLAGS
  Text Backend:
    --text-base-url <url>                  Chat completions endpoint (default: https://api.mistral.ai/v1/chat/completions)
    --text-model <model>                   Text generation model (default: mistral-tiny)
    --max-retries <int>                    Attempts per text request (default: 3)
    --retry-delay <int>                    Seconds between failed attempts (default: 2)
    --rate-limit-waits <int>               Consecutive rate-limit waits before giving up (default: 5)
    --request-timeout <int>                Per-attempt timeout in seconds (default: 30)

  Image Backend:
    --image-base-url <url>                 Image API base URL (default: https://api.together.xyz/v1)
    --image-model <model>                  Image model (default: black-forest-labs/FLUX.1-schnell-Free)
    --image-steps <int>                    Diffusion steps per image (default: 2)
    --image-count <int>                    Images requested per prompt (default: 1)

  Files & Directories:
    --input <path>                         Explicit input CSV path (default: auto-discover)
    --input-dir <dir>                      Directory searched for input.csv (default: input)
    --output-dir <dir>                     Result CSV and manifest directory (default: output)
    --images-dir <dir>                     PNG subdirectory under output (default: images)
    --output-file <name>                   Result CSV name (default: product_information.csv)
    --description-template <path>          Markdown appended to descriptions (default: built-in)
    --config <path>                        Path to additional config file

  Content:
    --title-max-chars <int>                Title character hint (default: 50)
    --description-max-chars <int>          Description character hint (default: 150)
    --image-prompt-max-chars <int>         Image prompt character hint (default: 75)

  Feature Toggles:
    -v, --verbose                          Enable debug logging

  Scheduling:
    --start-at <time>                      Schedule start time (ISO 8601, HH:MM, YYYY-MM-DD HH:MM)
    --at <time>                            Alias for --start-at

  Notifications:
    --notify-webhook <url>                 Batch completion webhook URL (default: disabled)

  Help & Version:
    -h, --help                             Show this help text
    --version                              Show version, commit, build date

ENVIRONMENT
  MISTRAL_API_KEY     API key for the text backend (required)
  TOGETHER_API_KEY    API key for the image backend (required)

  A .env file in the working directory is loaded before these are read.
  Credentials are never read from config files.

EXIT CODES
  0   Success   Batch completed (skipped rows do not fail the run)
  1   Error     Invalid arguments, missing input, text backend failure, I/O error

EXAMPLES
  # Generate listings from input/input.csv with default settings
  listing-gen

  # Use an explicit input file and a bigger text model
  listing-gen --input themes.csv --text-model mistral-small

  # Start tonight at 02:00 and notify a webhook when done
  listing-gen --start-at 02:00 --notify-webhook https://hooks.example.com/listing

  # Use a custom description template
  listing-gen --description-template templates/holiday.md

For more information, see: https://github.com/storesmith/listing-tools
`

// SetCustomHelp configures the cobra command to use our custom help template.
func SetCustomHelp(cmd *cobra.Command) {
	cmd.SetHelpTemplate(helpTemplate)
}
