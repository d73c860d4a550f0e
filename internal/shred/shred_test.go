package shred

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileShredsAndUnlinks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "secret.txt")
	require.NoError(t, os.WriteFile(path, make([]byte, 200000), 0o644))

	var lines []string
	freed, err := File(path, func(line string) { lines = append(lines, line) })

	require.NoError(t, err)
	assert.Equal(t, int64(200000), freed)
	assert.NoFileExists(t, path)

	// Exactly three overwrite passes, announced in order, all before
	// the file disappeared.
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "pass 1/3")
	assert.Contains(t, lines[1], "pass 2/3")
	assert.Contains(t, lines[2], "pass 3/3")
	for _, line := range lines {
		assert.Contains(t, line, "secret.txt")
	}
}

func TestFileSurvivesUntilFinalPass(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(path, make([]byte, 1000), 0o644))

	// The file must still exist while every pass is announced; the
	// unlink happens only after the last one.
	_, err := File(path, func(string) {
		_, statErr := os.Stat(path)
		assert.NoError(t, statErr, "file removed before shredding finished")
	})
	require.NoError(t, err)
	assert.NoFileExists(t, path)
}

func TestFileEmptyFileUnlinkedImmediately(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	var lines []string
	freed, err := File(path, func(line string) { lines = append(lines, line) })

	require.NoError(t, err)
	assert.Zero(t, freed)
	assert.Empty(t, lines)
	assert.NoFileExists(t, path)
}

func TestFileDirectoryShredsContentsFirst(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "tree")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub", "deep"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), make([]byte, 100), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "b.txt"), make([]byte, 50), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "deep", "c.txt"), make([]byte, 25), 0o644))

	freed, err := File(root, nil)

	require.NoError(t, err)
	assert.Equal(t, int64(175), freed)
	assert.NoDirExists(t, root)
}

func TestFileMissingPath(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "missing"), nil)
	assert.Error(t, err)
}

func TestFileNilProgress(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(path, make([]byte, 10), 0o644))

	freed, err := File(path, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(10), freed)
}
