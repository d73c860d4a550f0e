package scanner

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fenilsonani/macsweep/pkg/utils"
)

const oneMiB = 1 * 1024 * 1024

func writeTestFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

// sizedContent returns size bytes whose first head bytes are headByte and
// the rest fillByte, so tests control partial-hash collisions exactly.
func sizedContent(size int, headByte, fillByte byte) []byte {
	data := bytes.Repeat([]byte{fillByte}, size)
	for i := 0; i < 4096 && i < size; i++ {
		data[i] = headByte
	}
	return data
}

// countingFinder wraps the real hash hooks with thread-safe call counters.
func countingFinder(roots []string) (*DuplicateFinder, *int64, *int64) {
	finder := NewDuplicateFinder(roots)
	var mu sync.Mutex
	var partialCalls, fullCalls int64

	realPartial := finder.partialHash
	finder.partialHash = func(path string) (string, bool) {
		mu.Lock()
		partialCalls++
		mu.Unlock()
		return realPartial(path)
	}
	realFull := finder.fullHash
	finder.fullHash = func(path string) (string, bool) {
		mu.Lock()
		fullCalls++
		mu.Unlock()
		return realFull(path)
	}
	return finder, &partialCalls, &fullCalls
}

func TestDuplicateFinderBasic(t *testing.T) {
	dir := t.TempDir()

	identical := sizedContent(oneMiB, 'x', 'x')
	writeTestFile(t, filepath.Join(dir, "a.bin"), identical)
	writeTestFile(t, filepath.Join(dir, "z.bin"), identical)
	// Same size, different content from the first byte on.
	writeTestFile(t, filepath.Join(dir, "m.bin"), sizedContent(oneMiB, 'y', 'y'))

	finder := NewDuplicateFinder([]string{dir})
	result := finder.Scan()

	require.Len(t, result.Entries, 1)
	assert.Equal(t, filepath.Join(dir, "z.bin"), result.Entries[0].Path)
	assert.Equal(t, int64(oneMiB), result.Entries[0].SizeBytes)
	assert.Equal(t, int64(oneMiB), result.TotalBytes)
	assert.Empty(t, result.Errors)
}

func TestDuplicateFinderKeepsFirstInWalkOrder(t *testing.T) {
	dir := t.TempDir()

	identical := sizedContent(oneMiB, 'd', 'd')
	for _, name := range []string{"alpha.dat", "beta.dat", "gamma.dat"} {
		writeTestFile(t, filepath.Join(dir, name), identical)
	}

	finder := NewDuplicateFinder([]string{dir})
	result := finder.Scan()

	// alpha.dat is first lexically, so it is the kept original.
	require.Len(t, result.Entries, 2)
	paths := []string{result.Entries[0].Path, result.Entries[1].Path}
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "beta.dat"),
		filepath.Join(dir, "gamma.dat"),
	}, paths)
}

func TestDuplicateFinderSizeMismatchNeverHashes(t *testing.T) {
	dir := t.TempDir()

	// Sizes differ by one byte, so no size bucket forms and no hashing
	// of any kind may happen.
	writeTestFile(t, filepath.Join(dir, "a.bin"), sizedContent(oneMiB, 'x', 'x'))
	writeTestFile(t, filepath.Join(dir, "b.bin"), sizedContent(oneMiB+1, 'x', 'x'))

	finder, partialCalls, fullCalls := countingFinder([]string{dir})
	result := finder.Scan()

	assert.Empty(t, result.Entries)
	assert.Zero(t, *partialCalls)
	assert.Zero(t, *fullCalls)
}

func TestDuplicateFinderPartialHashShortCircuitsFullHash(t *testing.T) {
	dir := t.TempDir()

	// Same size but different heads: the partial pass separates them,
	// so the full pass never runs.
	writeTestFile(t, filepath.Join(dir, "a.bin"), sizedContent(oneMiB, 'a', 'z'))
	writeTestFile(t, filepath.Join(dir, "b.bin"), sizedContent(oneMiB, 'b', 'z'))

	finder, partialCalls, fullCalls := countingFinder([]string{dir})
	result := finder.Scan()

	assert.Empty(t, result.Entries)
	assert.Equal(t, int64(2), *partialCalls)
	assert.Zero(t, *fullCalls)
}

func TestDuplicateFinderPartialCollisionRejectedByFullHash(t *testing.T) {
	dir := t.TempDir()

	// Identical first 4 KB, divergent tails: pass 2 groups them, pass 3
	// must split them apart.
	a := sizedContent(oneMiB, 'h', 'p')
	b := sizedContent(oneMiB, 'h', 'q')
	writeTestFile(t, filepath.Join(dir, "a.bin"), a)
	writeTestFile(t, filepath.Join(dir, "b.bin"), b)

	finder, partialCalls, fullCalls := countingFinder([]string{dir})
	result := finder.Scan()

	assert.Empty(t, result.Entries)
	assert.Equal(t, int64(2), *partialCalls)
	assert.Equal(t, int64(2), *fullCalls)
}

func TestDuplicateFinderSmallFilesIgnored(t *testing.T) {
	dir := t.TempDir()

	small := []byte("same tiny content")
	writeTestFile(t, filepath.Join(dir, "a.txt"), small)
	writeTestFile(t, filepath.Join(dir, "b.txt"), small)

	finder := NewDuplicateFinder([]string{dir})
	result := finder.Scan()

	assert.Empty(t, result.Entries)
}

func TestDuplicateFinderSkipsExcludedDirs(t *testing.T) {
	dir := t.TempDir()

	identical := sizedContent(oneMiB, 'n', 'n')
	writeTestFile(t, filepath.Join(dir, "node_modules", "a.bin"), identical)
	writeTestFile(t, filepath.Join(dir, "node_modules", "b.bin"), identical)
	writeTestFile(t, filepath.Join(dir, ".git", "c.bin"), identical)

	finder := NewDuplicateFinder([]string{dir})
	result := finder.Scan()

	assert.Empty(t, result.Entries)
}

func TestDuplicateFinderUnreadableDropsFromGroup(t *testing.T) {
	dir := t.TempDir()

	identical := sizedContent(oneMiB, 'u', 'u')
	writeTestFile(t, filepath.Join(dir, "a.bin"), identical)
	writeTestFile(t, filepath.Join(dir, "b.bin"), identical)
	writeTestFile(t, filepath.Join(dir, "c.bin"), identical)

	finder := NewDuplicateFinder([]string{dir})
	realPartial := finder.partialHash
	finder.partialHash = func(path string) (string, bool) {
		if filepath.Base(path) == "b.bin" {
			return "", false
		}
		return realPartial(path)
	}

	result := finder.Scan()

	// b.bin silently drops out; a.bin stays the original, c.bin is the
	// only reported copy.
	require.Len(t, result.Entries, 1)
	assert.Equal(t, filepath.Join(dir, "c.bin"), result.Entries[0].Path)
	assert.Empty(t, result.Errors)
}

func TestDuplicateFinderMultipleGroupsSortedBySize(t *testing.T) {
	dir := t.TempDir()

	big := sizedContent(2*oneMiB, 'b', 'b')
	writeTestFile(t, filepath.Join(dir, "big1.bin"), big)
	writeTestFile(t, filepath.Join(dir, "big2.bin"), big)

	small := sizedContent(oneMiB, 's', 's')
	writeTestFile(t, filepath.Join(dir, "small1.bin"), small)
	writeTestFile(t, filepath.Join(dir, "small2.bin"), small)

	finder := NewDuplicateFinder([]string{dir})
	result := finder.Scan()

	require.Len(t, result.Entries, 2)
	assert.Equal(t, int64(2*oneMiB), result.Entries[0].SizeBytes)
	assert.Equal(t, int64(oneMiB), result.Entries[1].SizeBytes)
	assert.Equal(t, int64(3*oneMiB), result.TotalBytes)
}

func TestDuplicateFinderCleanDryRunMatchesScan(t *testing.T) {
	dir := t.TempDir()

	identical := sizedContent(oneMiB, 'r', 'r')
	writeTestFile(t, filepath.Join(dir, "a.bin"), identical)
	writeTestFile(t, filepath.Join(dir, "b.bin"), identical)

	finder := NewDuplicateFinder([]string{dir})
	scanned := finder.Scan()
	dryRun := finder.Clean(true)

	assert.Equal(t, scanned.Entries, dryRun.Entries)
	assert.Equal(t, scanned.TotalBytes, dryRun.TotalBytes)

	// Dry run deleted nothing.
	assert.FileExists(t, filepath.Join(dir, "a.bin"))
	assert.FileExists(t, filepath.Join(dir, "b.bin"))
}

func TestDuplicateFinderCleanRemovesOnlyCopies(t *testing.T) {
	dir := t.TempDir()

	identical := sizedContent(oneMiB, 'c', 'c')
	writeTestFile(t, filepath.Join(dir, "keep.bin"), identical)
	writeTestFile(t, filepath.Join(dir, "lose.bin"), identical)

	finder := NewDuplicateFinder([]string{dir})
	result := finder.Clean(false)

	require.Len(t, result.Entries, 1)
	assert.Equal(t, int64(oneMiB), result.TotalBytes)
	assert.FileExists(t, filepath.Join(dir, "keep.bin"))
	assert.NoFileExists(t, filepath.Join(dir, "lose.bin"))
}

func TestPartialAndFullHashAgreeOnSmallFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "small.txt")
	writeTestFile(t, path, []byte("under 4096 bytes"))

	partial, ok := utils.PartialHash(path)
	require.True(t, ok)
	full, ok := utils.FullHash(path)
	require.True(t, ok)

	// A file shorter than the partial window digests identically both ways.
	assert.Equal(t, full, partial)
}
