package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/shipshapehq/shipshape/schema"
)

// Color variables for console output.
var (
	WhaleColor   = color.New(color.FgMagenta, color.Bold) // whales are the rare top tier.
	ShipperColor = color.New(color.FgCyan)                // shippers are the informational default.
	NewbieColor  = color.New(color.FgYellow)              // newbies warrant attention, not alarm.
)

// GetPlainCategoryLabel returns the plain text label for a cluster category.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainCategoryLabel(c schema.Category) string {
	switch c {
	case schema.WhaleCategory:
		return "Whale"
	case schema.NewbieCategory:
		return "Newbie"
	default:
		return "Shipper"
	}
}

// GetColorCategoryLabel returns a colored text label for console output (table).
// It uses GetPlainCategoryLabel to determine the string, and then applies the
// appropriate color.
func GetColorCategoryLabel(c schema.Category) string {
	text := GetPlainCategoryLabel(c)

	switch c {
	case schema.WhaleCategory:
		return WhaleColor.Sprint(text)
	case schema.NewbieCategory:
		return NewbieColor.Sprint(text)
	default: // "Shipper"
		return ShipperColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the
// provided file path. It falls back to os.Stdout when no path is given.
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

// GetStoreDBFilePath returns the path to the SQLite DB file for the user store.
func GetStoreDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".shipshape_store.db"
	}
	return filepath.Join(homeDir, ".shipshape_store.db")
}

// TruncateName truncates a display name to a maximum width with ellipsis suffix.
// Requires maxWidth > 3 to ensure there's space for both the "..." suffix and at
// least one character of content.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
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
