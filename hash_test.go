package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashDirectoryIsStable(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main"), 0o644))

	first, err := hashDirectory(dir)
	require.NoError(t, err)
	second, err := hashDirectory(dir)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestHashDirectoryChangesWithContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.go")
	require.NoError(t, os.WriteFile(path, []byte("package main"), 0o644))

	before, err := hashDirectory(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("package main // changed"), 0o644))
	after, err := hashDirectory(dir)
	require.NoError(t, err)

	assert.NotEqual(t, before, after)
}
