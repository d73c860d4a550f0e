package scanner

import (
	"os"
	"path/filepath"

	"github.com/fenilsonani/macsweep/internal/fsutil"
)

// Trash scans the user trash. Access needs Full Disk Access on recent
// macOS versions, so permission errors get a targeted hint.
type Trash struct{}

func NewTrash() *Trash { return &Trash{} }

func (c *Trash) Name() string  { return "trash" }
func (c *Trash) Label() string { return "Trash" }

func (c *Trash) Scan() *ScanResult {
	trashDir := filepath.Join(fsutil.HomeDir(), ".Trash")

	result := NewScanResult()
	children, err := os.ReadDir(trashDir)
	if err != nil {
		if os.IsPermission(err) {
			result.AddError("Trash access denied. Grant Full Disk Access: System Settings > Privacy & Security > Full Disk Access > enable your terminal/macsweep.")
		} else {
			result.AddError("cannot read %s: %v", trashDir, err)
		}
		return result
	}

	for _, child := range children {
		path := filepath.Join(trashDir, child.Name())
		result.AddEntry(path, fsutil.EntrySize(path))
	}
	result.SortBySize()
	return result
}

func (c *Trash) Clean(dryRun bool) *ScanResult {
	return cleanScanned(c, dryRun, fsutil.SafeRemove)
}
