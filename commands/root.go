package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/graelo/macOSVoiceMemosExporter/internal/application/export"
	"github.com/graelo/macOSVoiceMemosExporter/internal/core/model"
	"github.com/graelo/macOSVoiceMemosExporter/internal/data/store"
	"github.com/graelo/macOSVoiceMemosExporter/internal/platform"
	"github.com/graelo/macOSVoiceMemosExporter/internal/presentation/formatter"
	"github.com/graelo/macOSVoiceMemosExporter/internal/presentation/interaction"
	"github.com/graelo/macOSVoiceMemosExporter/internal/util"
)

var (
	// Logging related
	debug bool

	// Store and destination paths
	dbPath     string
	exportPath string

	// Export behavior
	exportAll bool
	noReveal  bool

	// Filenaming
	dateInName       bool
	dateInNameFormat string

	// macOS major version detected at startup; drives the default database
	// path and the label column in the query.
	macMajorVersion int

	rootCmd = &cobra.Command{
		Use:   "voicememos-exporter",
		Short: "Export audio files from the macOS Voice Memos app",
		Long: `voicememos-exporter copies recordings out of the Voice Memos database into a
folder of your choosing, named after their label and stamped with their
original recording date.

Each memo is shown in a table; press ENTER to export it or ESC to skip it.

Examples:
  voicememos-exporter                                  # Interactive export with default paths
  voicememos-exporter --all                            # Export everything without prompting
  voicememos-exporter -e ~/Desktop/memos --date-in-name # Prefix filenames with the recording date
  voicememos-exporter --db-path /tmp/copy/CloudRecordings.db`,
		RunE: runExport,
	}
)

const defaultLogFile = "~/.voicememos-exporter/logs/app.log"

func init() {
	macMajorVersion = platform.MacOSMajorVersion()

	rootCmd.PersistentFlags().StringVarP(&dbPath, "db-path", "d",
		platform.DefaultDatabasePath(macMajorVersion),
		"Path to the Voice Memos database")
	rootCmd.PersistentFlags().StringVarP(&exportPath, "export-path", "e",
		platform.DefaultExportPath(),
		"Folder for exported files")
	rootCmd.PersistentFlags().BoolVar(&dateInName, "date-in-name", false,
		"Include the recording date in the filename")
	rootCmd.PersistentFlags().StringVar(&dateInNameFormat, "date-in-name-format", model.DefaultDateFormat,
		"Go time layout for the filename date prefix")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")

	rootCmd.Flags().BoolVarP(&exportAll, "all", "a", false,
		"Export all memos without prompting")
	rootCmd.Flags().BoolVar(&noReveal, "no-reveal", false,
		"Don't open the export folder afterwards")
}

func runExport(cmd *cobra.Command, args []string) error {
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

	if !exportAll && !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("interactive mode needs a terminal on stdin; rerun with --all")
	}

	if err := ensureDir(exportPath); err != nil {
		return fmt.Errorf("failed to create export folder %s: %w", exportPath, err)
	}

	table := formatter.NewTable(os.Stdout, exportColumns())

	fmt.Println()
	if !exportAll {
		fmt.Println("Press ENTER to export, ESC to skip.")
		fmt.Println()
	}
	table.PrintHeader()

	exporter := export.New(table, interaction.NewKeyboardReader(), exportAll)
	summary, runErr := exporter.Run(memos)

	table.PrintFooter()
	fmt.Println()
	if runErr != nil {
		return runErr
	}

	fmt.Printf("Done. Exported %d, skipped %d, without file %d.\n",
		summary.Exported, summary.Skipped, summary.NoFile)
	fmt.Printf("Memos exported to: %s\n", exportPath)
	fmt.Println()

	if !noReveal {
		platform.Reveal(exportPath)
	}
	return nil
}

// loadMemos opens the database, queries every recording and maps the rows.
// The returned memos are in non-decreasing recording order, straight from
// the ORDER BY in the query.
func loadMemos(ctx context.Context) ([]model.Memo, error) {
	dbPath = expandPath(dbPath)
	exportPath = expandPath(exportPath)

	if err := checkReadable(dbPath); err != nil {
		return nil, err
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	rows, err := s.AllMemos(ctx, macMajorVersion)
	if err != nil {
		return nil, err
	}
	util.LogInfof("Loaded %d memo rows from %s", len(rows), dbPath)

	policy := model.NamingPolicy{DateInName: dateInName, DateFormat: dateInNameFormat}
	sourceDir := filepath.Dir(dbPath)

	memos := make([]model.Memo, len(rows))
	for i, row := range rows {
		memos[i] = model.FromRow(row, sourceDir, exportPath, policy)
	}
	return memos, nil
}

// checkReadable verifies the database can be opened before any record is
// touched. On macOS the usual cause of failure is the terminal lacking Full
// Disk Access, so the error carries the remediation steps.
func checkReadable(path string) error {
	f, err := os.Open(path)
	if err == nil {
		return f.Close()
	}
	return fmt.Errorf(`no permission to read database file: %s

This tool requires Full Disk Access.
Go to System Settings > Privacy & Security > Full Disk Access
and add your terminal application.

Alternatively, copy the entire Recordings folder to a temporary
location and rerun with --db-path pointing to the copy`, path)
}

// exportColumns returns the export table layout. On a terminal narrower
// than the full table the New Path column gives up width, down to a floor.
func exportColumns() []formatter.Column {
	columns := []formatter.Column{
		{Name: "Date", Width: 19},
		{Name: "Duration", Width: 11},
		{Name: "Old Path", Width: 32},
		{Name: "New Path", Width: 60},
		{Name: "Status", Width: 12},
	}

	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		total := 1 // right border
		for _, col := range columns {
			total += col.Width + 3
		}
		if width > 0 && width < total {
			shrunk := columns[3].Width - (total - width)
			if shrunk < 20 {
				shrunk = 20
			}
			columns[3].Width = shrunk
		}
	}
	return columns
}

func initLogging() error {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}
	logFile := expandPath(defaultLogFile)
	if err := ensureDir(filepath.Dir(logFile)); err != nil {
		logFile = ""
	}
	// An unusable log file degrades to console-only logging; it must never
	// block an export run.
	if err := util.InitLogger(logLevel, logFile, debug); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	return nil
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
