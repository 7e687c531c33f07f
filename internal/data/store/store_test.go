package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestDB builds a minimal CloudRecordings.db with both label column
// variants so either query shape works against it.
func createTestDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "CloudRecordings.db")

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE ZCLOUDRECORDING (
		ZDATE REAL,
		ZDURATION REAL,
		ZCUSTOMLABEL TEXT,
		ZCUSTOMLABELFORSORTING TEXT,
		ZPATH TEXT
	)`)
	require.NoError(t, err)

	// Inserted out of order on purpose: the query must sort by ZDATE.
	_, err = db.Exec(`INSERT INTO ZCLOUDRECORDING VALUES
		(200.0, 12.5, 'Second', 'Second', 'b.m4a'),
		(100.0, 5.5, 'First', 'First', 'a.m4a'),
		(300.0, 0.0, NULL, NULL, NULL)`)
	require.NoError(t, err)

	return path
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.db"))
	assert.Error(t, err)
}

func TestAllMemosOrdered(t *testing.T) {
	s, err := Open(createTestDB(t))
	require.NoError(t, err)
	defer s.Close()

	memos, err := s.AllMemos(context.Background(), 13)
	require.NoError(t, err)
	require.Len(t, memos, 3)

	assert.Equal(t, 100.0, memos[0].Date)
	assert.Equal(t, "First", memos[0].Label)
	assert.Equal(t, "a.m4a", memos[0].Path)

	assert.Equal(t, 200.0, memos[1].Date)

	// NULL label and path map to empty strings.
	assert.Equal(t, 300.0, memos[2].Date)
	assert.Empty(t, memos[2].Label)
	assert.Empty(t, memos[2].Path)
}

func TestAllMemosSonomaColumn(t *testing.T) {
	s, err := Open(createTestDB(t))
	require.NoError(t, err)
	defer s.Close()

	memos, err := s.AllMemos(context.Background(), 14)
	require.NoError(t, err)
	require.Len(t, memos, 3)
	assert.Equal(t, "First", memos[0].Label)
}

func TestAllMemosEmptyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE ZCLOUDRECORDING (
		ZDATE REAL, ZDURATION REAL, ZCUSTOMLABEL TEXT,
		ZCUSTOMLABELFORSORTING TEXT, ZPATH TEXT
	)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	memos, err := s.AllMemos(context.Background(), 15)
	assert.NoError(t, err)
	assert.Empty(t, memos)
}

func TestStoreIsReadOnly(t *testing.T) {
	s, err := Open(createTestDB(t))
	require.NoError(t, err)
	defer s.Close()

	_, err = s.db.Exec(`DELETE FROM ZCLOUDRECORDING`)
	assert.Error(t, err)
}
