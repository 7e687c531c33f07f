package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateLeft(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{
			name:     "fits unchanged",
			input:    "short.m4a",
			width:    20,
			expected: "short.m4a",
		},
		{
			name:     "exact width unchanged",
			input:    "1234567890",
			width:    10,
			expected: "1234567890",
		},
		{
			name:     "long path keeps rightmost segment",
			input:    "a/very/long/path/file.m4a",
			width:    10,
			expected: "...ile.m4a",
		},
		{
			name:     "empty string",
			input:    "",
			width:    10,
			expected: "",
		},
		{
			name:     "wide runes cut by display cells not runes",
			input:    strings.Repeat("漢", 20),
			width:    10,
			expected: "...漢漢漢",
		},
		{
			name:     "mixed width tail",
			input:    "録音メモ.m4a",
			width:    10,
			expected: "...モ.m4a",
		},
		{
			name:     "width equal to marker",
			input:    "a/very/long/path/file.m4a",
			width:    3,
			expected: "...",
		},
		{
			name:     "width below marker does not panic",
			input:    "a/very/long/path/file.m4a",
			width:    2,
			expected: "...",
		},
		{
			name:     "width zero does not panic",
			input:    "abc",
			width:    0,
			expected: "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateLeft(tt.input, tt.width)
			assert.Equal(t, tt.expected, got)
			// Truncated strings must fit the column PadCell pads to.
			if tt.width >= 3 {
				assert.LessOrEqual(t, GetDisplayWidth(got), max(tt.width, GetDisplayWidth(tt.input)))
			}
		})
	}
}

func TestTruncateLeftNeverOverflowsColumn(t *testing.T) {
	inputs := []string{
		"a/very/long/path/file.m4a",
		strings.Repeat("漢", 20),
		"録音/2024 年の会議メモ.m4a",
	}
	for _, s := range inputs {
		for width := 3; width <= 20; width++ {
			got := TruncateLeft(s, width)
			assert.LessOrEqual(t, GetDisplayWidth(got), width,
				"input %q width %d", s, width)
		}
	}
}

func TestTruncateLeftWidth(t *testing.T) {
	got := TruncateLeft("a/very/long/path/file.m4a", 10)
	assert.Len(t, got, 10)
}

func TestPadCell(t *testing.T) {
	assert.Equal(t, "ab   ", PadCell("ab", 5))
	assert.Equal(t, "abcde", PadCell("abcde", 5))
	// Wide runes count for two columns.
	assert.Equal(t, 6, GetDisplayWidth(PadCell("漢字", 6)))
}
