package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/graelo/macOSVoiceMemosExporter/internal/core/model"
)

func TestSummaryFormatter(t *testing.T) {
	memos := []model.Memo{
		{
			RecordedAt: time.Date(2023, 1, 1, 9, 0, 0, 0, time.Local),
			Duration:   90 * time.Second,
			SourcePath: "/db/a.m4a",
			DestPath:   "/out/a.m4a",
		},
		{
			RecordedAt: time.Date(2023, 6, 1, 9, 0, 0, 0, time.Local),
			Duration:   30 * time.Second,
		},
	}

	out := captureStdout(t, func() error {
		return NewSummaryFormatter(memos).Format(MemoRows(memos))
	})

	assert.Contains(t, out, "Memos:          2")
	assert.Contains(t, out, "With file:      1")
	assert.Contains(t, out, "Metadata only:  1")
	assert.Contains(t, out, "Total duration: 00:02:00.00")
	assert.Contains(t, out, "First recorded: 01.01.2023 09:00:00")
	assert.Contains(t, out, "Last recorded:  01.06.2023 09:00:00")
}
