package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/graelo/macOSVoiceMemosExporter/internal/core/model"
	"github.com/graelo/macOSVoiceMemosExporter/internal/presentation/formatter"
	"github.com/graelo/macOSVoiceMemosExporter/internal/presentation/interaction"
	"github.com/graelo/macOSVoiceMemosExporter/internal/util"
)

// Status cell values, one per terminal outcome.
const (
	statusNoFile   = "No File"
	statusPending  = "Export?"
	statusExported = "Exported!"
	statusSkipped  = "Skipped"
)

// Summary counts the terminal outcomes of one export run.
type Summary struct {
	Exported int
	Skipped  int
	NoFile   int
}

// Exporter walks the memo sequence in the order given, renders one table row
// per memo and copies confirmed files. Memos are handled one at a time,
// synchronously; the sequence is already chronological and stays that way.
type Exporter struct {
	table     *formatter.Table
	keys      interaction.ConfirmReader
	exportAll bool
}

// New creates an exporter. With exportAll set, no confirmation is read and
// every memo with a file is copied.
func New(table *formatter.Table, keys interaction.ConfirmReader, exportAll bool) *Exporter {
	return &Exporter{
		table:     table,
		keys:      keys,
		exportAll: exportAll,
	}
}

// Run processes every memo. A copy failure aborts the remaining run and
// surfaces the error: continuing past a failed copy would be silent data
// loss. Header and footer are the caller's to print.
func (e *Exporter) Run(memos []model.Memo) (Summary, error) {
	var summary Summary

	for _, memo := range memos {
		cells := e.rowCells(memo)

		if !memo.HasFile() {
			e.table.PrintRow(append(cells, statusNoFile), "\n")
			summary.NoFile++
			continue
		}

		decision := interaction.DecisionExport
		if !e.exportAll {
			// Pending row ends with \r so the resolved status overwrites it.
			e.table.PrintRow(append(cells, statusPending), "\r")
			var err error
			decision, err = e.keys.ReadDecision()
			if err != nil {
				return summary, fmt.Errorf("failed to read confirmation key: %w", err)
			}
		}

		switch decision {
		case interaction.DecisionExport:
			if err := exportFile(memo); err != nil {
				return summary, fmt.Errorf("failed to export %s: %w",
					filepath.Base(memo.SourcePath), err)
			}
			e.table.PrintRow(append(cells, statusExported), "\n")
			summary.Exported++
			util.LogInfof("Exported %s -> %s", memo.SourcePath, memo.DestPath)
		case interaction.DecisionSkip:
			e.table.PrintRow(append(cells, statusSkipped), "\n")
			summary.Skipped++
			util.LogDebugf("Skipped %s", memo.SourcePath)
		}
	}

	return summary, nil
}

// rowCells builds the non-status cells, truncated to their column widths.
func (e *Exporter) rowCells(memo model.Memo) []string {
	widths := e.table.Widths()

	oldPath := ""
	if memo.HasFile() {
		oldPath = filepath.Base(memo.SourcePath)
	}

	return []string{
		memo.DateString(),
		memo.DurationString(),
		util.TruncateLeft(oldPath, widths[2]),
		util.TruncateLeft(memo.DestPath, widths[3]),
	}
}

// exportFile copies the memo's audio bytes and stamps the destination with
// the recording time. The destination is overwritten if it exists; there is
// no temp-file-then-rename step, so a copy killed halfway leaves a truncated
// destination behind.
func exportFile(memo model.Memo) error {
	if err := copyFile(memo.SourcePath, memo.DestPath); err != nil {
		return err
	}
	return os.Chtimes(memo.DestPath, memo.RecordedAt, memo.RecordedAt)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
