package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde prefix",
			input:    "~/Voice Memos Export",
			expected: filepath.Join(home, "Voice Memos Export"),
		},
		{
			name:     "absolute path untouched",
			input:    "/tmp/out",
			expected: "/tmp/out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, expandPath(tt.input))
		})
	}
}

func TestExpandPathRelative(t *testing.T) {
	got := expandPath("somewhere")
	assert.True(t, filepath.IsAbs(got))
	assert.True(t, strings.HasSuffix(got, "somewhere"))
}

func TestCheckReadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.sqlite")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	assert.NoError(t, checkReadable(path))
}

func TestCheckReadableMissing(t *testing.T) {
	err := checkReadable(filepath.Join(t.TempDir(), "missing.db"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Full Disk Access")
	assert.Contains(t, err.Error(), "--db-path")
}

func TestExportColumns(t *testing.T) {
	// Under `go test` stdout is not a terminal, so the full layout applies.
	columns := exportColumns()
	require.Len(t, columns, 5)
	assert.Equal(t, "Date", columns[0].Name)
	assert.Equal(t, 19, columns[0].Width)
	assert.Equal(t, "Status", columns[4].Name)
	assert.Equal(t, 12, columns[4].Width)
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, ensureDir(dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
