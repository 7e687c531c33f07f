package formatter

import (
	"os"

	"github.com/graelo/macOSVoiceMemosExporter/internal/util"
)

// TableFormatter renders the memo listing as a bordered table.
type TableFormatter struct{}

func NewTableFormatter() *TableFormatter {
	return &TableFormatter{}
}

func (f *TableFormatter) Format(rows []MemoRow) error {
	table := NewTable(os.Stdout, []Column{
		{Name: "Date", Width: 19},
		{Name: "Duration", Width: 11},
		{Name: "Label", Width: 24},
		{Name: "Path", Width: 44},
		{Name: "File", Width: 7},
	})
	widths := table.Widths()

	table.PrintHeader()
	for _, row := range rows {
		hasFile := "yes"
		if !row.HasFile {
			hasFile = "no"
		}
		table.PrintRow([]string{
			row.Date,
			row.Duration,
			util.TruncateLeft(row.Label, widths[2]),
			util.TruncateLeft(row.SourcePath, widths[3]),
			hasFile,
		}, "\n")
	}
	table.PrintFooter()
	return nil
}
