package formatter

import (
	"github.com/graelo/macOSVoiceMemosExporter/internal/core/model"
)

// MemoRow is one memo flattened for output formatting.
type MemoRow struct {
	Date       string `json:"date"`
	Duration   string `json:"duration"`
	Label      string `json:"label,omitempty"`
	SourcePath string `json:"source_path,omitempty"`
	DestPath   string `json:"dest_path,omitempty"`
	HasFile    bool   `json:"has_file"`
}

// Formatter renders a memo listing to stdout.
type Formatter interface {
	Format(rows []MemoRow) error
}

// MemoRows converts mapped memos into output rows.
func MemoRows(memos []model.Memo) []MemoRow {
	rows := make([]MemoRow, len(memos))
	for i, memo := range memos {
		rows[i] = MemoRow{
			Date:       memo.DateString(),
			Duration:   memo.DurationString(),
			Label:      memo.Label,
			SourcePath: memo.SourcePath,
			DestPath:   memo.DestPath,
			HasFile:    memo.HasFile(),
		}
	}
	return rows
}
