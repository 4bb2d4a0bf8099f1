package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/attribution/schema"
)

// Share label constants.
const (
	MajorValue       = "Major"       // Major share
	SignificantValue = "Significant" // Significant share
	MinorValue       = "Minor"       // Minor share
	MarginalValue    = "Marginal"    // Marginal share
)

// Color variables for console output.
var (
	MajorColor       = color.New(color.FgGreen, color.Bold) // majorColor marks the channels carrying the revenue.
	SignificantColor = color.New(color.FgCyan, color.Bold)  // significantColor marks strong contributors.
	MinorColor       = color.New(color.FgYellow)            // minorColor marks small contributors.
	MarginalColor    = color.New(color.FgRed)               // marginalColor marks channels close to zero share.
)

// GetPlainLabel returns a plain text label for the revenue share of a channel.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(pct float64) string {
	return schema.GetShareLabel(pct)
}

// GetColorLabel returns a colored text label for console output (table).
func GetColorLabel(pct float64) string {
	text := GetPlainLabel(pct)

	switch text {
	case MajorValue:
		return MajorColor.Sprint(text)
	case SignificantValue:
		return SignificantColor.Sprint(text)
	case MinorValue:
		return MinorColor.Sprint(text)
	default: // "Marginal"
		return MarginalColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path means os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetStoreDBFilePath returns the path to the SQLite DB file for journey storage.
func GetStoreDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".attribution.db"
	}
	return filepath.Join(homeDir, ".attribution.db")
}

// TruncateText truncates text to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for "..." and at least one character.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
