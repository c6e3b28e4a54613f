// Package banner provides colored banner display functions for the listing-gen CLI.
//
// All banner functions write formatted output to stdout with color-coded headers
// and separators. They mark the start and end of a generation batch.
package banner

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/storesmith/listing-tools/internal/logging"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold).SprintFunc()
	successColor = color.New(color.FgGreen, color.Bold).SprintFunc()
	errorColor   = color.New(color.FgRed, color.Bold).SprintFunc()
)

// PrintStartupBanner displays the startup banner with session info.
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  listing-gen - Product Listing Generator
//	═══════════════════════════════════════════════════
//	  Session:     listing-1756000000
//	  Text model:  mistral-tiny
//	  Image model: black-forest-labs/FLUX.1-schnell-Free
//	  Input:       input/input.csv
//	═══════════════════════════════════════════════════
func PrintStartupBanner(sessionID string, textModel string, imageModel string, inputPath string) {
	sep := headerColor("═══════════════════════════════════════════════════")
	fmt.Println(sep)
	fmt.Println(headerColor("  listing-gen - Product Listing Generator"))
	fmt.Println(sep)
	fmt.Printf("  Session:     %s\n", sessionID)
	fmt.Printf("  Text model:  %s\n", textModel)
	fmt.Printf("  Image model: %s\n", imageModel)
	fmt.Printf("  Input:       %s\n", inputPath)
	fmt.Println(sep)
}

// PrintCompletionBanner displays the completion banner with batch stats.
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  ✓ Batch completed
//	  Products:  8 generated, 2 skipped
//	  Duration:  1m 23s (83s)
//	═══════════════════════════════════════════════════
func PrintCompletionBanner(processed int, skipped int, durationSecs int) {
	sep := successColor("═══════════════════════════════════════════════════")
	fmt.Println(sep)
	fmt.Println(successColor("  ✓ Batch completed"))
	fmt.Printf("  Products:  %d generated, %d skipped\n", processed, skipped)
	fmt.Printf("  Duration:  %s (%ds)\n", logging.FormatDuration(durationSecs), durationSecs)
	fmt.Println(sep)
}

// PrintFailureBanner displays the failure banner with the abort reason.
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  ✗ BATCH FAILED
//	═══════════════════════════════════════════════════
//	  Reason:
//	  title generation: request timed out
//	═══════════════════════════════════════════════════
func PrintFailureBanner(reason string) {
	sep := errorColor("═══════════════════════════════════════════════════")
	fmt.Println(sep)
	fmt.Println(errorColor("  ✗ BATCH FAILED"))
	fmt.Println(sep)
	fmt.Println("  Reason:")
	fmt.Printf("  %s\n", reason)
	fmt.Println(sep)
}
