package scanner

import (
	"io/fs"
	"path/filepath"
	"time"

	"github.com/fenilsonani/macsweep/internal/fsutil"
)

const (
	oldFileMinSize = 10 * 1024 * 1024
	oldFileMinAge  = 180 * 24 * time.Hour
	oldFileDepth   = 8
)

var oldFileSkipDirs = []string{
	".git",
	"node_modules",
	".venv",
	"venv",
	".Trash",
	"__pycache__",
	".tox",
	"target",
	".cargo",
	".rustup",
}

var oldFileSkipExts = []string{
	".app",
	".photoslibrary",
	".musiclibrary",
	".vmwarevm",
	".parallels",
}

// OldFiles finds files over 10 MB in Downloads, Documents and Desktop
// that have not been touched in six months.
type OldFiles struct{}

func NewOldFiles() *OldFiles { return &OldFiles{} }

func (c *OldFiles) Name() string  { return "old-files" }
func (c *OldFiles) Label() string { return "Old & Unused Files" }

func (c *OldFiles) Scan() *ScanResult {
	result := NewScanResult()
	home := fsutil.HomeDir()
	cutoff := time.Now().Add(-oldFileMinAge)

	for _, dir := range []string{
		filepath.Join(home, "Downloads"),
		filepath.Join(home, "Documents"),
		filepath.Join(home, "Desktop"),
	} {
		if !fsutil.Exists(dir) {
			continue
		}
		walkTree(dir, oldFileDepth, oldFileSkipDirs, oldFileSkipExts, func(path string, d fs.DirEntry) {
			if !d.Type().IsRegular() {
				return
			}
			info, err := d.Info()
			if err != nil {
				return
			}
			if info.Size() < oldFileMinSize {
				return
			}
			// ModTime is the portable proxy for last use; access time
			// is unreliable on APFS volumes mounted noatime.
			if info.ModTime().After(cutoff) {
				return
			}
			result.AddEntry(path, info.Size())
		})
	}

	result.SortBySize()
	return result
}

func (c *OldFiles) Clean(dryRun bool) *ScanResult {
	return cleanScanned(c, dryRun, fsutil.SafeRemove)
}
