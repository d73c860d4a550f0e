package scanner

import (
	"io/fs"

	"github.com/fenilsonani/macsweep/internal/fsutil"
)

// DefaultLargeFileMin is the floor for the large-files report: 100 MB.
const DefaultLargeFileMin = 100 * 1024 * 1024

var largeFileSkipDirs = []string{
	".git",
	"Library",
	".Trash",
	".cargo",
	".rustup",
}

// LargeFiles reports files above a size floor. It is report-only: the
// user decides what a 40 GB disk image means, not this tool.
type LargeFiles struct {
	minBytes int64
	root     string
}

// NewLargeFiles builds the cleaner; zero minBytes and empty root select
// the defaults (100 MB, home directory).
func NewLargeFiles(minBytes int64, root string) *LargeFiles {
	if minBytes <= 0 {
		minBytes = DefaultLargeFileMin
	}
	if root == "" {
		root = fsutil.HomeDir()
	}
	return &LargeFiles{minBytes: minBytes, root: root}
}

func (c *LargeFiles) Name() string  { return "large-files" }
func (c *LargeFiles) Label() string { return "Large Files" }

func (c *LargeFiles) Scan() *ScanResult {
	result := NewScanResult()
	if !fsutil.Exists(c.root) {
		result.AddError("path does not exist: %s", c.root)
		return result
	}

	walkTree(c.root, 0, largeFileSkipDirs, nil, func(path string, d fs.DirEntry) {
		if !d.Type().IsRegular() {
			return
		}
		info, err := d.Info()
		if err != nil {
			return
		}
		if info.Size() >= c.minBytes {
			result.AddEntry(path, info.Size())
		}
	})
	result.SortBySize()
	return result
}

// Clean is a pure alias of Scan: large files are never auto-deleted.
func (c *LargeFiles) Clean(bool) *ScanResult {
	return c.Scan()
}
