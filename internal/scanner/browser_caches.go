package scanner

import (
	"os"
	"path/filepath"

	"github.com/fenilsonani/macsweep/internal/fsutil"
)

// BrowserCaches scans Chrome, Safari and Firefox cache directories.
// Each cache directory is one deletable entry; browsers rebuild them.
type BrowserCaches struct{}

func NewBrowserCaches() *BrowserCaches { return &BrowserCaches{} }

func (c *BrowserCaches) Name() string  { return "browser-caches" }
func (c *BrowserCaches) Label() string { return "Browser Caches" }

func (c *BrowserCaches) Scan() *ScanResult {
	var dirs []string
	dirs = append(dirs, chromeCacheDirs()...)
	dirs = append(dirs, safariCacheDirs()...)
	dirs = append(dirs, firefoxCacheDirs()...)
	return scanExisting(dirs...)
}

func (c *BrowserCaches) Clean(dryRun bool) *ScanResult {
	return cleanScanned(c, dryRun, fsutil.SafeRemove)
}

// Chrome keeps per-profile caches (Default, Profile 1, ...), each with a
// Cache and a Code Cache directory.
func chromeCacheDirs() []string {
	base := filepath.Join(fsutil.HomeDir(), "Library", "Caches", "Google", "Chrome")
	profiles, err := os.ReadDir(base)
	if err != nil {
		return nil
	}

	var dirs []string
	for _, profile := range profiles {
		if !profile.IsDir() {
			continue
		}
		for _, sub := range []string{"Cache", "Code Cache"} {
			path := filepath.Join(base, profile.Name(), sub)
			if fsutil.Exists(path) {
				dirs = append(dirs, path)
			}
		}
	}
	return dirs
}

func safariCacheDirs() []string {
	path := filepath.Join(fsutil.HomeDir(), "Library", "Caches", "com.apple.Safari")
	if !fsutil.Exists(path) {
		return nil
	}
	return []string{path}
}

func firefoxCacheDirs() []string {
	profilesDir := filepath.Join(fsutil.HomeDir(), "Library", "Caches", "Firefox", "Profiles")
	profiles, err := os.ReadDir(profilesDir)
	if err != nil {
		return nil
	}

	var dirs []string
	for _, profile := range profiles {
		if !profile.IsDir() {
			continue
		}
		cache2 := filepath.Join(profilesDir, profile.Name(), "cache2")
		if fsutil.Exists(cache2) {
			dirs = append(dirs, cache2)
		}
	}
	return dirs
}
