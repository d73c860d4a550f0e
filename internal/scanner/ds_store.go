package scanner

import (
	"io/fs"

	"github.com/fenilsonani/macsweep/internal/fsutil"
)

var dsStoreSkipDirs = []string{
	".git",
	"node_modules",
	".Trash",
	"Library",
	".cargo",
	".rustup",
	".npm",
}

// DsStore finds Finder .DS_Store droppings under a root directory.
type DsStore struct {
	root string
}

// NewDsStore builds the cleaner; an empty root means the home directory.
func NewDsStore(root string) *DsStore {
	if root == "" {
		root = fsutil.HomeDir()
	}
	return &DsStore{root: root}
}

func (c *DsStore) Name() string  { return "ds-store" }
func (c *DsStore) Label() string { return ".DS_Store Files" }

func (c *DsStore) Scan() *ScanResult {
	result := NewScanResult()
	if !fsutil.Exists(c.root) {
		result.AddError("path does not exist: %s", c.root)
		return result
	}

	walkTree(c.root, 0, dsStoreSkipDirs, nil, func(path string, d fs.DirEntry) {
		if !d.Type().IsRegular() || d.Name() != ".DS_Store" {
			return
		}
		var size int64
		if info, err := d.Info(); err == nil {
			size = info.Size()
		}
		result.AddEntry(path, size)
	})
	return result
}

func (c *DsStore) Clean(dryRun bool) *ScanResult {
	return cleanScanned(c, dryRun, removeFile)
}
