package util

import (
	"github.com/mattn/go-runewidth"
)

// Terminal control sequences
const (
	ClearLine      = "\033[2K" // Clear entire line
	CarriageReturn = "\r"      // Return to start of line without advancing
)

// GetDisplayWidth calculates the actual display width of a string,
// accounting for wide runes.
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// PadCell pads text with spaces on the right up to the given display width.
// Text already at or past the width is returned unchanged; truncation is the
// caller's job (see TruncateLeft).
func PadCell(text string, width int) string {
	return runewidth.FillRight(text, width)
}

// TruncateLeft shortens a string to at most width display cells by dropping
// the prefix and marking the cut with "...". The tail is kept because for
// paths the rightmost segments are the informative ones. The cut counts
// display cells, not runes, so wide runes never overflow the column that
// PadCell pads to. Widths narrower than the marker yield just the marker.
func TruncateLeft(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	keep := width - 3
	if keep < 0 {
		keep = 0
	}
	runes := []rune(s)
	cut := len(runes)
	taken := 0
	for cut > 0 {
		w := runewidth.RuneWidth(runes[cut-1])
		if taken+w > keep {
			break
		}
		taken += w
		cut--
	}
	return "..." + string(runes[cut:])
}
