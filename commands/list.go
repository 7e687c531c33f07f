package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/graelo/macOSVoiceMemosExporter/internal/presentation/formatter"
)

var listOutput string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List memos without exporting anything",
	Long: `Prints every memo in the database with its date, duration, label and file
location. Nothing is copied and nothing is written.

Examples:
  voicememos-exporter list                  # Bordered table
  voicememos-exporter list --output json    # Machine-readable listing
  voicememos-exporter list --output summary # Counts and total duration`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listOutput, "output", "o", "table",
		"Output format (table, json, csv, summary)")
}

func runList(cmd *cobra.Command, args []string) error {
	if err := initLogging(); err != nil {
		return err
	}

	memos, err := loadMemos(cmd.Context())
	if err != nil {
		return err
	}
	if len(memos) == 0 {
		fmt.Println("No memos found.")
		return nil
	}

	var f formatter.Formatter
	switch listOutput {
	case "table":
		f = formatter.NewTableFormatter()
	case "json":
		f = formatter.NewJSONFormatter()
	case "csv":
		f = formatter.NewCSVFormatter()
	case "summary":
		f = formatter.NewSummaryFormatter(memos)
	default:
		return fmt.Errorf("unknown output format: %s (expected table, json, csv or summary)", listOutput)
	}

	return f.Format(formatter.MemoRows(memos))
}
