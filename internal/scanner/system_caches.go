package scanner

import (
	"path/filepath"

	"github.com/fenilsonani/macsweep/internal/fsutil"
)

// Subdirectories of ~/Library/Caches handled by other cleaners,
// excluded here to avoid double counting.
var systemCacheExcluded = map[string]bool{
	"Homebrew":         true,
	"Google":           true,
	"Firefox":          true,
	"com.apple.Safari": true,
	"Yarn":             true,
	"pip":              true,
}

// SystemCaches scans the top level of the user cache directory.
type SystemCaches struct{}

func NewSystemCaches() *SystemCaches { return &SystemCaches{} }

func (c *SystemCaches) Name() string  { return "system-caches" }
func (c *SystemCaches) Label() string { return "System Caches" }

func (c *SystemCaches) Scan() *ScanResult {
	cacheDir := filepath.Join(fsutil.HomeDir(), "Library", "Caches")
	return scanChildrenSkipping(func(name string) bool {
		return systemCacheExcluded[name]
	}, cacheDir)
}

func (c *SystemCaches) Clean(dryRun bool) *ScanResult {
	return cleanScanned(c, dryRun, fsutil.SafeRemove)
}
