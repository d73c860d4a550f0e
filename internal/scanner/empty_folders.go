package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fenilsonani/macsweep/internal/fsutil"
)

// Top-level user directories that stay even when empty.
var protectedDirNames = []string{
	"Desktop",
	"Documents",
	"Downloads",
	"Pictures",
	"Music",
	"Movies",
	"Public",
	"Library",
	"Applications",
}

var emptyFolderSkipDirs = []string{
	".git",
	"node_modules",
	".Trash",
	".cargo",
	".rustup",
	".npm",
}

// EmptyFolders finds directories under the Library subtrees that are
// empty or hold nothing but a .DS_Store.
type EmptyFolders struct{}

func NewEmptyFolders() *EmptyFolders { return &EmptyFolders{} }

func (c *EmptyFolders) Name() string  { return "empty-folders" }
func (c *EmptyFolders) Label() string { return "Empty Folders" }

func (c *EmptyFolders) Scan() *ScanResult {
	result := NewScanResult()
	home := fsutil.HomeDir()

	roots := []string{
		filepath.Join(home, "Library", "Application Support"),
		filepath.Join(home, "Library", "Caches"),
		filepath.Join(home, "Library", "Containers"),
		filepath.Join(home, "Library", "Preferences"),
	}

	for _, root := range roots {
		if !fsutil.Exists(root) {
			continue
		}
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil || !d.IsDir() || path == root {
				return nil
			}
			name := d.Name()
			if shouldSkipDir(name, emptyFolderSkipDirs, nil) || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if walkDepth(root, path) >= 5 {
				return filepath.SkipDir
			}
			if isProtectedDir(path, home) {
				return nil
			}
			if isEffectivelyEmpty(path) {
				result.AddEntry(path, 0)
			}
			return nil
		})
	}

	result.SortByPath()
	return result
}

func (c *EmptyFolders) Clean(dryRun bool) *ScanResult {
	return cleanScanned(c, dryRun, removeEmptyDir)
}

func isProtectedDir(path, home string) bool {
	for _, name := range protectedDirNames {
		if path == filepath.Join(home, name) {
			return true
		}
	}
	return false
}

// isEffectivelyEmpty reports whether a directory holds nothing, or
// nothing but a .DS_Store.
func isEffectivelyEmpty(path string) bool {
	children, err := os.ReadDir(path)
	if err != nil {
		return false
	}
	for _, child := range children {
		if child.Name() != ".DS_Store" {
			return false
		}
	}
	return true
}

// removeEmptyDir drops a stray .DS_Store first, then removes the now
// empty directory. Empty directories free no bytes.
func removeEmptyDir(path string) (int64, error) {
	ds := filepath.Join(path, ".DS_Store")
	if fsutil.Exists(ds) {
		_ = os.Remove(ds)
	}
	if err := os.Remove(path); err != nil {
		return 0, err
	}
	return 0, nil
}
