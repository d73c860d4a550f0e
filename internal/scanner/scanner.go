// Package scanner implements the per-category cleaners and the duplicate
// file detector. Every category satisfies the Cleaner interface so the
// engine and the CLI can treat them uniformly.
package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fenilsonani/macsweep/internal/fsutil"
)

// ScanEntry is a single reclaimable item. Entries are immutable once
// produced; selection state lives in the engine, not here.
type ScanEntry struct {
	Path      string
	SizeBytes int64
}

// ScanResult is what a cleaner returns from Scan or Clean. Errors are
// human-readable per-item diagnostics; they never abort a scan.
type ScanResult struct {
	Entries    []ScanEntry
	TotalBytes int64
	Errors     []string
}

// NewScanResult returns an empty result ready for AddEntry.
func NewScanResult() *ScanResult {
	return &ScanResult{}
}

// AddEntry appends an entry and grows the running total.
func (r *ScanResult) AddEntry(path string, size int64) {
	r.Entries = append(r.Entries, ScanEntry{Path: path, SizeBytes: size})
	r.TotalBytes += size
}

// AddError records a non-fatal diagnostic.
func (r *ScanResult) AddError(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// SortBySize orders entries largest first; ties break on path so the
// order is stable across runs.
func (r *ScanResult) SortBySize() {
	sort.Slice(r.Entries, func(i, j int) bool {
		if r.Entries[i].SizeBytes != r.Entries[j].SizeBytes {
			return r.Entries[i].SizeBytes > r.Entries[j].SizeBytes
		}
		return r.Entries[i].Path < r.Entries[j].Path
	})
}

// SortByPath orders entries lexically.
func (r *ScanResult) SortByPath() {
	sort.Slice(r.Entries, func(i, j int) bool {
		return r.Entries[i].Path < r.Entries[j].Path
	})
}

// Recompute replaces TotalBytes with a fresh sum over the current entries.
// Totals are always recomputed, never decremented in place.
func (r *ScanResult) Recompute() {
	var total int64
	for _, e := range r.Entries {
		total += e.SizeBytes
	}
	r.TotalBytes = total
}

// Cleaner is one cleanup category. Clean(true) must behave exactly like
// Scan; Clean(false) scans then deletes, returning only the entries that
// were actually removed with TotalBytes recomputed as bytes freed.
// Report-only categories implement Clean as a pure alias of Scan.
type Cleaner interface {
	Name() string
	Label() string
	Scan() *ScanResult
	Clean(dryRun bool) *ScanResult
}

// Options carries the per-run knobs a few cleaners need. The zero value
// selects the defaults (home-rooted scans, 1GB large-file floor).
type Options struct {
	// Root overrides the scan root for path-scoped cleaners
	// (ds-store, large-files).
	Root string
	// LargeFileMinBytes is the floor for the large-files report.
	LargeFileMinBytes int64
	// DuplicateRoots overrides the directories the duplicate finder walks.
	DuplicateRoots []string
	// DuplicateMinBytes and DuplicateMaxBytes override the duplicate
	// finder's size window; zero keeps the defaults.
	DuplicateMinBytes int64
	DuplicateMaxBytes int64
	// Disabled categories are left out of All entirely.
	Disabled []string
}

// scanChildren produces one entry per immediate child of each existing
// directory, sized recursively. This is the shape most cache-style
// categories share: the child is the deletable unit, not the files in it.
func scanChildren(dirs ...string) *ScanResult {
	return scanChildrenSkipping(nil, dirs...)
}

// scanChildrenSkipping is scanChildren with a per-name exclusion test.
func scanChildrenSkipping(skip func(name string) bool, dirs ...string) *ScanResult {
	result := NewScanResult()
	for _, dir := range dirs {
		if !fsutil.Exists(dir) {
			continue
		}
		children, err := os.ReadDir(dir)
		if err != nil {
			result.AddError("cannot read %s: %v", dir, err)
			continue
		}
		for _, child := range children {
			if skip != nil && skip(child.Name()) {
				continue
			}
			path := filepath.Join(dir, child.Name())
			result.AddEntry(path, fsutil.EntrySize(path))
		}
	}
	result.SortBySize()
	return result
}

// scanExisting produces one entry per path that exists and has nonzero
// size. Used by categories with fixed candidate lists.
func scanExisting(paths ...string) *ScanResult {
	result := NewScanResult()
	for _, path := range paths {
		if !fsutil.Exists(path) {
			continue
		}
		size := fsutil.EntrySize(path)
		if size > 0 {
			result.AddEntry(path, size)
		}
	}
	result.SortBySize()
	return result
}

// cleanScanned is the shared Clean implementation: scan, then delete each
// entry with the supplied removal strategy. Failures go to Errors and the
// batch continues; the returned result holds only the removed entries with
// TotalBytes set to bytes actually freed.
func cleanScanned(c Cleaner, dryRun bool, remove func(string) (int64, error)) *ScanResult {
	result := c.Scan()
	if dryRun {
		return result
	}

	cleaned := make([]ScanEntry, 0, len(result.Entries))
	var freed int64
	for _, entry := range result.Entries {
		n, err := remove(entry.Path)
		if err != nil {
			result.AddError("failed to remove %s: %v", entry.Path, err)
			continue
		}
		freed += n
		cleaned = append(cleaned, entry)
	}

	result.Entries = cleaned
	result.TotalBytes = freed
	return result
}

// removeFile deletes a single file (never a tree) and reports its size.
func removeFile(path string) (int64, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return 0, err
	}
	if err := os.Remove(path); err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// shouldSkipDir matches a directory name against a skip list and a set of
// bundle-style extensions (compared case-insensitively).
func shouldSkipDir(name string, skipDirs, skipExts []string) bool {
	for _, skip := range skipDirs {
		if name == skip {
			return true
		}
	}
	lower := strings.ToLower(name)
	for _, ext := range skipExts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// walkTree walks root depth-limited in WalkDir's lexical order, pruning
// skip-listed directories, and calls visit for every regular file and
// symlink reached. Unreadable entries are silently skipped. maxDepth <= 0
// means unlimited.
func walkTree(root string, maxDepth int, skipDirs, skipExts []string, visit func(path string, d fs.DirEntry)) {
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path == root {
				return nil
			}
			if shouldSkipDir(d.Name(), skipDirs, skipExts) {
				return filepath.SkipDir
			}
			if maxDepth > 0 && walkDepth(root, path) >= maxDepth {
				return filepath.SkipDir
			}
			return nil
		}
		visit(path, d)
		return nil
	})
}

// walkDepth reports how many levels below root a path sits.
func walkDepth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
