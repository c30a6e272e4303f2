package contract

import (
	"testing"

	"github.com/shipshapehq/shipshape/schema"
	"github.com/stretchr/testify/assert"
)

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input       string
		expected    bool
		expectError bool
	}{
		{"yes", true, false},
		{"YES", true, false},
		{"true", true, false},
		{"1", true, false},
		{"no", false, false},
		{"false", false, false},
		{"0", false, false},
		{"maybe", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestGetPlainCategoryLabel(t *testing.T) {
	assert.Equal(t, "Whale", GetPlainCategoryLabel(schema.WhaleCategory))
	assert.Equal(t, "Shipper", GetPlainCategoryLabel(schema.ShipperCategory))
	assert.Equal(t, "Newbie", GetPlainCategoryLabel(schema.NewbieCategory))
}

func TestTruncateName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		expected string
	}{
		{"short name untouched", "ada", 10, "ada"},
		{"long name truncated", "averylongdisplayname", 10, "averylo..."},
		{"exact width untouched", "abcdefghij", 10, "abcdefghij"},
		{"tiny width untouched", "abcdef", 3, "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateName(tt.input, tt.maxWidth))
		})
	}
}
