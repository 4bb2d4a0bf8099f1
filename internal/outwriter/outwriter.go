// Package outwriter renders attribution results as text tables, CSV, JSON or Parquet.
package outwriter

import (
	"os"

	"github.com/huangsam/attribution/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableTextWidth calculates the maximum width for free text columns (channel
// names, journey paths) in table output based on terminal width.
// reserved is the width already taken by the fixed columns of the table.
func GetMaxTableTextWidth(cfg *contract.Config, reserved int) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve generous space for table borders, separators, and padding
	available := termWidth - reserved - 20
	if available < 15 {
		// Minimum reasonable text width
		return 15
	}
	if available > 70 {
		// Maximum text width to prevent overly wide tables
		return 70
	}
	return available
}
