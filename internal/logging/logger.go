// Package logging provides colored, leveled log output for the listing-gen CLI.
//
// Every function formats its arguments printf-style and writes a single
// prefixed, color-coded line. Debug output is suppressed unless verbose mode
// is enabled via SetVerbose(true).
package logging

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// verbose controls whether Debug() produces output.
var verbose bool

// Color printers for each log level.
var (
	infoPrefix    = color.New(color.FgBlue).SprintFunc()
	successPrefix = color.New(color.FgGreen).SprintFunc()
	warnPrefix    = color.New(color.FgYellow).SprintFunc()
	errorPrefix   = color.New(color.FgRed).SprintFunc()
	phasePrefix   = color.New(color.FgCyan).SprintFunc()
	debugPrefix   = color.New(color.FgBlue).SprintFunc()
)

// SetVerbose enables or disables Debug output.
func SetVerbose(v bool) {
	verbose = v
}

// Info prints an informational message to stdout in blue.
func Info(format string, args ...any) {
	fmt.Println(infoPrefix("[INFO]") + " " + fmt.Sprintf(format, args...))
}

// Success prints a success message to stdout in green.
func Success(format string, args ...any) {
	fmt.Println(successPrefix("[SUCCESS]") + " " + fmt.Sprintf(format, args...))
}

// Warn prints a warning message to stdout in yellow.
func Warn(format string, args ...any) {
	fmt.Println(warnPrefix("[WARN]") + " " + fmt.Sprintf(format, args...))
}

// Error prints an error message to stderr in red.
func Error(format string, args ...any) {
	fmt.Fprintln(os.Stderr, errorPrefix("[ERROR]")+" "+fmt.Sprintf(format, args...))
}

// Phase prints a phase header to stdout in cyan, surrounded by separator lines.
func Phase(format string, args ...any) {
	sep := phasePrefix("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println(sep)
	fmt.Println(phasePrefix("[PHASE]") + " " + fmt.Sprintf(format, args...))
	fmt.Println(sep)
}

// Debug prints a debug message to stdout in blue, only when verbose mode is enabled.
func Debug(format string, args ...any) {
	if !verbose {
		return
	}
	fmt.Println(debugPrefix("[DEBUG]") + " " + fmt.Sprintf(format, args...))
}

// FormatDuration converts a duration in seconds to a human-readable string.
//
// Examples:
//
//	FormatDuration(0)    => "0s"
//	FormatDuration(45)   => "45s"
//	FormatDuration(90)   => "1m 30s"
//	FormatDuration(3661) => "1h 1m 1s"
func FormatDuration(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	if seconds < 3600 {
		return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
	}
	return fmt.Sprintf("%dh %dm %ds", seconds/3600, (seconds%3600)/60, seconds%60)
}
