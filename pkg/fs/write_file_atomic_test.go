//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_WriteFileAtomic(t *testing.T) {
	fs := NewFS()

	tmpDir, err := os.MkdirTemp("", "test-atomic-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	target := filepath.Join(tmpDir, "report.yaml")

	// Write a new file
	err = fs.WriteFileAtomic(target, []byte("phase: cleanup\n"), 0644)
	assert.NoError(t, err)

	data, err := fs.ReadFile(target)
	assert.NoError(t, err)
	assert.Equal(t, []byte("phase: cleanup\n"), data)

	// Overwrite the existing file
	err = fs.WriteFileAtomic(target, []byte("phase: rerun\n"), 0644)
	assert.NoError(t, err)

	data, err = fs.ReadFile(target)
	assert.NoError(t, err)
	assert.Equal(t, []byte("phase: rerun\n"), data)

	// No leftover temporary files
	entries, err := fs.ReadDir(tmpDir)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
}
