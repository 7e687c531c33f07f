package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/graelo/macOSVoiceMemosExporter/internal/util"
)

// Column is one fixed-width table column.
type Column struct {
	Name  string
	Width int
}

// Table renders rows between box-drawing borders. Column order and widths
// are fixed for the table's lifetime; cells longer than their column must be
// truncated by the caller (util.TruncateLeft), the table only pads.
type Table struct {
	w       io.Writer
	columns []Column
}

// NewTable creates a table writing to w.
func NewTable(w io.Writer, columns []Column) *Table {
	return &Table{w: w, columns: columns}
}

// Widths returns the column widths in order, for caller-side truncation.
func (t *Table) Widths() []int {
	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = col.Width
	}
	return widths
}

// PrintHeader prints the top border, the column names and the separator.
func (t *Table) PrintHeader() {
	t.printBorder("┌", "┬", "┐")
	names := make([]string, len(t.columns))
	for i, col := range t.columns {
		names[i] = col.Name
	}
	t.PrintRow(names, "\n")
	t.printBorder("├", "┼", "┤")
}

// PrintRow prints one data row. end is "\n" for a final row or "\r" for a
// pending row that the next PrintRow call overwrites in place.
func (t *Table) PrintRow(cells []string, end string) {
	parts := make([]string, len(t.columns))
	for i, col := range t.columns {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = util.PadCell(cell, col.Width)
	}
	fmt.Fprintf(t.w, "│ %s │%s", strings.Join(parts, " │ "), end)
}

// PrintFooter prints the bottom border.
func (t *Table) PrintFooter() {
	t.printBorder("└", "┴", "┘")
}

func (t *Table) printBorder(left, mid, right string) {
	segments := make([]string, len(t.columns))
	for i, col := range t.columns {
		segments[i] = strings.Repeat("─", col.Width+2)
	}
	fmt.Fprintf(t.w, "%s%s%s\n", left, strings.Join(segments, mid), right)
}
