// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"golang.org/x/term"

	"github.com/shipshapehq/shipshape/internal/contract"
	"github.com/shipshapehq/shipshape/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteProgress prints one user's progress metrics using the configured output format.
func (ow *OutWriter) WriteProgress(userID string, m schema.ProgressMetrics, cfg *contract.Config, duration time.Duration) error {
	return writeProgressResult(userID, m, cfg, duration)
}

// WriteClusters prints the population clustering using the configured output format.
func (ow *OutWriter) WriteClusters(analysis *schema.ClusterAnalysis, cfg *contract.Config, duration time.Duration) error {
	return writeClusterResults(analysis, cfg, duration)
}

// WriteClassifications prints bulk classification results using the configured output format.
func (ow *OutWriter) WriteClassifications(results []schema.ClassificationResult, cfg *contract.Config, duration time.Duration) error {
	return writeClassificationResults(results, cfg, duration)
}

// WriteHourClassification prints a single hour banding using the configured output format.
func (ow *OutWriter) WriteHourClassification(hist *schema.HourHistogram, c schema.HourClassification, cfg *contract.Config) error {
	return writeHourClassification(hist, c, cfg)
}

// WriteStatus prints store status using the configured output format.
func (ow *OutWriter) WriteStatus(status schema.StoreStatus, cfg *contract.Config) error {
	return writeStoreStatus(status, cfg)
}

// getMaxTableNameWidth calculates the maximum width for user names in table
// output based on terminal width and table configuration.
func getMaxTableNameWidth(cfg *contract.Config) int {
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

	// Reserve space for the category, hours, projects and shipped columns
	// with table borders, separators, and padding.
	baseWidth := 50

	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable name width
		return 15
	}
	if available > 40 {
		// Maximum name width to keep tables compact
		return 40
	}
	return available
}
