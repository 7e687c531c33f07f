package util

import (
	"fmt"
	"math"
	"time"
)

// AppleEpochOffset is the gap in seconds between the Unix epoch (1970-01-01)
// and the Apple epoch (2001-01-01) used by the Voice Memos database. The
// fractional part matters: ZDATE values carry sub-second precision.
const AppleEpochOffset = 978307200.825232

// AppleTime converts a raw ZDATE value (seconds since the Apple epoch) into
// a local calendar time, preserving fractional seconds.
func AppleTime(raw float64) time.Time {
	sec, frac := math.Modf(raw + AppleEpochOffset)
	return time.Unix(int64(sec), int64(frac*float64(time.Second)))
}

// FormatDuration renders a duration as HH:MM:SS.cc. Every component is
// floored, never rounded, and hours grow past two digits when needed.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := d.Seconds()
	whole := int64(total)
	hours := whole / 3600
	minutes := (whole % 3600) / 60
	seconds := whole % 60
	centis := int64((total - float64(whole)) * 100)
	return fmt.Sprintf("%02d:%02d:%02d.%02d", hours, minutes, seconds, centis)
}

// FormatDateTime renders a timestamp as DD.MM.YYYY HH:MM:SS for table rows.
func FormatDateTime(t time.Time) string {
	return t.Format("02.01.2006 15:04:05")
}
