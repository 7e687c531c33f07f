package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/graelo/macOSVoiceMemosExporter/internal/core/model"
	"github.com/graelo/macOSVoiceMemosExporter/internal/util"
)

// sonomaMajorVersion is the first macOS release that renamed the custom
// label column in the Voice Memos schema.
const sonomaMajorVersion = 14

// Store is read-only access to a Voice Memos CloudRecordings.db snapshot.
type Store struct {
	db *sql.DB
}

// Open opens the database in read-only mode. The tool never writes to the
// Voice Memos store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to read database %s: %w", path, err)
	}

	return &Store{db: db}, nil
}

// AllMemos returns every recording row ordered by creation date ascending.
// Sonoma (macOS 14) renamed the label column, so the query is built from the
// macOS major version the database came from.
func (s *Store) AllMemos(ctx context.Context, macMajorVersion int) ([]model.RawRow, error) {
	labelColumn := "ZCUSTOMLABEL"
	if macMajorVersion >= sonomaMajorVersion {
		labelColumn = "ZCUSTOMLABELFORSORTING"
	}
	query := fmt.Sprintf(
		"SELECT ZDATE, ZDURATION, %s, ZPATH FROM ZCLOUDRECORDING ORDER BY ZDATE",
		labelColumn)
	util.LogDebugf("Querying memos: %s", query)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query recordings: %w", err)
	}
	defer rows.Close()

	var memos []model.RawRow
	for rows.Next() {
		var (
			raw   model.RawRow
			label sql.NullString
			path  sql.NullString
		)
		// ZDATE and ZDURATION are NOT NULL in practice; a NULL there is a
		// corrupt row and must fail the scan rather than be guessed at.
		if err := rows.Scan(&raw.Date, &raw.Duration, &label, &path); err != nil {
			return nil, fmt.Errorf("failed to scan recording row: %w", err)
		}
		raw.Label = label.String
		raw.Path = path.String
		memos = append(memos, raw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recordings: %w", err)
	}

	return memos, nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
