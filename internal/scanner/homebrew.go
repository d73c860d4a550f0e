package scanner

import (
	"path/filepath"

	"github.com/fenilsonani/macsweep/internal/fsutil"
)

// HomebrewCache scans the Homebrew download cache.
type HomebrewCache struct{}

func NewHomebrewCache() *HomebrewCache { return &HomebrewCache{} }

func (c *HomebrewCache) Name() string  { return "homebrew" }
func (c *HomebrewCache) Label() string { return "Homebrew Cache" }

func (c *HomebrewCache) Scan() *ScanResult {
	return scanChildren(filepath.Join(fsutil.HomeDir(), "Library", "Caches", "Homebrew"))
}

func (c *HomebrewCache) Clean(dryRun bool) *ScanResult {
	return cleanScanned(c, dryRun, fsutil.SafeRemove)
}
