package contract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{
			name:     "smallest value possible",
			input:    0.0,
			expected: MarginalValue,
		},
		{
			name:     "just before minor",
			input:    4.99,
			expected: MarginalValue,
		},
		{
			name:     "exactly minor",
			input:    5.0,
			expected: MinorValue,
		},
		{
			name:     "just before significant",
			input:    14.99,
			expected: MinorValue,
		},
		{
			name:     "exactly significant",
			input:    15.0,
			expected: SignificantValue,
		},
		{
			name:     "just before major",
			input:    24.99,
			expected: SignificantValue,
		},
		{
			name:     "exactly major",
			input:    25.0,
			expected: MajorValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainLabel(tt.input))
		})
	}
}

func TestGetColorLabel(t *testing.T) {
	tests := []struct {
		name  string
		pct   float64
		label string
	}{
		{"marginal", 1, MarginalValue},
		{"minor", 10, MinorValue},
		{"significant", 20, SignificantValue},
		{"major", 60, MajorValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetColorLabel(tt.pct)
			// Should contain the plain label
			assert.Contains(t, result, tt.label)
		})
	}
}

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path returns stdout", func(t *testing.T) {
		file, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, file)
	})

	t.Run("valid path creates file", func(t *testing.T) {
		tempFile := filepath.Join(t.TempDir(), "test_output.txt")

		file, err := SelectOutputFile(tempFile)
		require.NoError(t, err)
		assert.NotNil(t, file)
		_ = file.Close()

		_, err = os.Stat(tempFile)
		assert.NoError(t, err)
	})
}

func TestGetStoreDBFilePath(t *testing.T) {
	path := GetStoreDBFilePath()

	assert.NotEmpty(t, path)
	assert.Contains(t, path, ".attribution.db")

	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, homeDir), "path %s should start with home dir %s", path, homeDir)
}

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		expected string
	}{
		{"fits", "Google Ads", 20, "Google Ads"},
		{"exact", "Google Ads", 10, "Google Ads"},
		{"truncated", "Organic Search", 10, "Organic..."},
		{"width too small", "Organic Search", 3, "Organic Search"},
		{"multibyte", "Café Référence", 8, "Café ..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateText(tt.text, tt.width))
		})
	}
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "YES", "true", "1"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.True(t, v, s)
	}
	for _, s := range []string{"no", "False", "0"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.False(t, v, s)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}
