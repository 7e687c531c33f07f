package model

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/graelo/macOSVoiceMemosExporter/internal/util"
)

// RawRow is one row of the ZCLOUDRECORDING table before mapping. Label and
// Path are empty when the database column is NULL: a memo without a path
// exists in metadata only (for example a cloud recording not yet downloaded).
type RawRow struct {
	Date     float64
	Duration float64
	Label    string
	Path     string
}

// NamingPolicy controls how the destination filename is derived.
// DateFormat is a Go time layout prepended verbatim when DateInName is set;
// it is the caller's responsibility to keep it filesystem-friendly.
type NamingPolicy struct {
	DateInName bool
	DateFormat string
}

// DefaultDateFormat is the filename date prefix used when none is given.
const DefaultDateFormat = "2006-01-02-15-04-05_"

// Memo is one voice memo's resolved metadata plus source and destination
// locations. SourcePath and DestPath are empty together: a memo either has a
// local audio file and a computed destination, or neither.
type Memo struct {
	RecordedAt time.Time
	Duration   time.Duration
	Label      string
	SourcePath string
	DestPath   string
}

// FromRow maps a database row to a Memo. It is pure: the same row, dirs and
// policy always produce the same Memo, and no filesystem access happens.
func FromRow(row RawRow, sourceDir, exportDir string, policy NamingPolicy) Memo {
	memo := Memo{
		RecordedAt: util.AppleTime(row.Date),
		Duration:   time.Duration(row.Duration * float64(time.Second)),
		Label:      SanitizeLabel(row.Label),
	}

	if row.Path == "" {
		return memo
	}

	memo.SourcePath = filepath.Join(sourceDir, row.Path)

	filename := filepath.Base(row.Path)
	if memo.Label != "" {
		// A row with an extension-less path degrades to a bare label name.
		filename = memo.Label + filepath.Ext(row.Path)
	}
	if policy.DateInName {
		format := policy.DateFormat
		if format == "" {
			format = DefaultDateFormat
		}
		filename = memo.RecordedAt.Format(format) + filename
	}
	memo.DestPath = filepath.Join(exportDir, filename)

	return memo
}

// HasFile reports whether the memo has a local audio file to copy.
func (m Memo) HasFile() bool {
	return m.SourcePath != ""
}

// DateString renders the recording time for display.
func (m Memo) DateString() string {
	return util.FormatDateTime(m.RecordedAt)
}

// DurationString renders the recording length as HH:MM:SS.cc.
func (m Memo) DurationString() string {
	return util.FormatDuration(m.Duration)
}

// SanitizeLabel replaces path separator characters that Finder and POSIX
// paths cannot carry in a single filename component.
func SanitizeLabel(label string) string {
	label = strings.ReplaceAll(label, "/", "_")
	return strings.ReplaceAll(label, ":", "_")
}
