package scanner

import (
	"path/filepath"

	"github.com/fenilsonani/macsweep/internal/fsutil"
)

// Cache locations relative to the home directory, one per package manager.
var packageManagerCaches = [][]string{
	{".npm", "_cacache"},
	{"Library", "Caches", "Yarn"},
	{"Library", "Caches", "pip"},
	{".cargo", "registry", "cache"},
}

// PackageManagerCaches scans npm, Yarn, pip and cargo download caches.
type PackageManagerCaches struct{}

func NewPackageManagerCaches() *PackageManagerCaches { return &PackageManagerCaches{} }

func (c *PackageManagerCaches) Name() string  { return "package-managers" }
func (c *PackageManagerCaches) Label() string { return "Package Manager Caches" }

func (c *PackageManagerCaches) Scan() *ScanResult {
	home := fsutil.HomeDir()
	paths := make([]string, 0, len(packageManagerCaches))
	for _, components := range packageManagerCaches {
		paths = append(paths, filepath.Join(append([]string{home}, components...)...))
	}
	return scanExisting(paths...)
}

func (c *PackageManagerCaches) Clean(dryRun bool) *ScanResult {
	return cleanScanned(c, dryRun, fsutil.SafeRemove)
}
