package formatter

import (
	"fmt"
	"time"

	"github.com/graelo/macOSVoiceMemosExporter/internal/core/model"
	"github.com/graelo/macOSVoiceMemosExporter/internal/util"
)

// SummaryFormatter prints aggregate figures instead of per-memo rows.
type SummaryFormatter struct {
	memos []model.Memo
}

// NewSummaryFormatter creates a summary formatter. It keeps the mapped memos
// because the summary needs durations and timestamps, not display strings.
func NewSummaryFormatter(memos []model.Memo) *SummaryFormatter {
	return &SummaryFormatter{memos: memos}
}

// Format prints memo counts, the total recorded duration and the date range.
func (f *SummaryFormatter) Format(rows []MemoRow) error {
	withFile := 0
	var totalDuration time.Duration
	for _, memo := range f.memos {
		if memo.HasFile() {
			withFile++
		}
		totalDuration += memo.Duration
	}

	fmt.Printf("Memos:          %d\n", len(f.memos))
	fmt.Printf("With file:      %d\n", withFile)
	fmt.Printf("Metadata only:  %d\n", len(f.memos)-withFile)
	fmt.Printf("Total duration: %s\n", util.FormatDuration(totalDuration))
	if len(f.memos) > 0 {
		fmt.Printf("First recorded: %s\n", f.memos[0].DateString())
		fmt.Printf("Last recorded:  %s\n", f.memos[len(f.memos)-1].DateString())
	}
	return nil
}
