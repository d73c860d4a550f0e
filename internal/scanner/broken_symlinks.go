package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fenilsonani/macsweep/internal/fsutil"
)

var brokenSymlinkSkipDirs = []string{
	".git",
	"node_modules",
	".Trash",
	".cargo",
	".rustup",
	".npm",
}

// BrokenSymlinks finds symlinks whose targets no longer exist, in the
// places they tend to accumulate: ~/Library, /usr/local and ~/bin.
type BrokenSymlinks struct{}

func NewBrokenSymlinks() *BrokenSymlinks { return &BrokenSymlinks{} }

func (c *BrokenSymlinks) Name() string  { return "broken-symlinks" }
func (c *BrokenSymlinks) Label() string { return "Broken Symlinks" }

func (c *BrokenSymlinks) Scan() *ScanResult {
	result := NewScanResult()
	home := fsutil.HomeDir()

	for _, dir := range []string{
		filepath.Join(home, "Library"),
		"/usr/local/bin",
		"/usr/local/lib",
		filepath.Join(home, "bin"),
	} {
		if !fsutil.Exists(dir) {
			continue
		}
		depth := 5
		if strings.HasPrefix(dir, "/usr/local") {
			depth = 1
		}
		walkTree(dir, depth, brokenSymlinkSkipDirs, nil, func(path string, d fs.DirEntry) {
			if d.Type()&fs.ModeSymlink == 0 {
				return
			}
			// Stat follows the link; failure means the target is gone.
			if _, err := os.Stat(path); err == nil {
				return
			}
			var size int64
			if info, err := d.Info(); err == nil {
				size = info.Size()
			}
			result.AddEntry(path, size)
		})
	}

	result.SortByPath()
	return result
}

func (c *BrokenSymlinks) Clean(dryRun bool) *ScanResult {
	return cleanScanned(c, dryRun, removeFile)
}
