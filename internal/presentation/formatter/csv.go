package formatter

import (
	"encoding/csv"
	"os"
	"strconv"
)

type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

func (f *CSVFormatter) Format(rows []MemoRow) error {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	headers := []string{"Date", "Duration", "Label", "Source Path", "Dest Path", "Has File"}
	if err := w.Write(headers); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			row.Date,
			row.Duration,
			row.Label,
			row.SourcePath,
			row.DestPath,
			strconv.FormatBool(row.HasFile),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	return nil
}
