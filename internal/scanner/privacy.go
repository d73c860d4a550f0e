package scanner

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fenilsonani/macsweep/internal/fsutil"
)

// Privacy scans browser history, cookies and recent-items state.
// Scan always carries a warning: deleting these logs the user out of
// websites.
type Privacy struct{}

func NewPrivacy() *Privacy { return &Privacy{} }

func (c *Privacy) Name() string  { return "privacy" }
func (c *Privacy) Label() string { return "Privacy Data" }

func (c *Privacy) Scan() *ScanResult {
	var paths []string
	paths = append(paths, safariPrivacyFiles()...)
	paths = append(paths, chromePrivacyFiles()...)
	paths = append(paths, firefoxPrivacyFiles()...)
	paths = append(paths, systemPrivacyFiles()...)

	result := scanExisting(paths...)
	result.Errors = append([]string{"Clearing cookies and history will log you out of websites."}, result.Errors...)
	return result
}

func (c *Privacy) Clean(dryRun bool) *ScanResult {
	return cleanScanned(c, dryRun, fsutil.SafeRemove)
}

func safariPrivacyFiles() []string {
	home := fsutil.HomeDir()
	return []string{
		filepath.Join(home, "Library", "Safari", "History.db"),
		filepath.Join(home, "Library", "Safari", "History.db-lock"),
		filepath.Join(home, "Library", "Safari", "History.db-shm"),
		filepath.Join(home, "Library", "Safari", "History.db-wal"),
		filepath.Join(home, "Library", "Safari", "Downloads.plist"),
		filepath.Join(home, "Library", "Safari", "LastSession.plist"),
		filepath.Join(home, "Library", "Safari", "TopSites.plist"),
		filepath.Join(home, "Library", "Safari", "CloudTabs.db"),
		filepath.Join(home, "Library", "Safari", "LocalStorage"),
		filepath.Join(home, "Library", "Safari", "Databases"),
		filepath.Join(home, "Library", "Cookies", "Cookies.binarycookies"),
	}
}

func chromePrivacyFiles() []string {
	base := filepath.Join(fsutil.HomeDir(), "Library", "Application Support", "Google", "Chrome")
	if !fsutil.Exists(base) {
		return nil
	}

	profiles := []string{filepath.Join(base, "Default")}
	if children, err := os.ReadDir(base); err == nil {
		for _, child := range children {
			if strings.HasPrefix(child.Name(), "Profile ") {
				profiles = append(profiles, filepath.Join(base, child.Name()))
			}
		}
	}

	targets := []string{
		"Cookies",
		"History",
		"History-journal",
		"Login Data",
		"Login Data-journal",
		"Web Data",
		"Web Data-journal",
		"Top Sites",
		"Top Sites-journal",
		"Visited Links",
	}

	var paths []string
	for _, profile := range profiles {
		for _, target := range targets {
			paths = append(paths, filepath.Join(profile, target))
		}
	}
	return paths
}

func firefoxPrivacyFiles() []string {
	profilesDir := filepath.Join(fsutil.HomeDir(), "Library", "Application Support", "Firefox", "Profiles")
	children, err := os.ReadDir(profilesDir)
	if err != nil {
		return nil
	}

	targets := []string{
		"cookies.sqlite",
		"cookies.sqlite-wal",
		"cookies.sqlite-shm",
		"places.sqlite",
		"places.sqlite-wal",
		"places.sqlite-shm",
		"formhistory.sqlite",
		"webappsstore.sqlite",
	}

	var paths []string
	for _, child := range children {
		if !child.IsDir() {
			continue
		}
		for _, target := range targets {
			paths = append(paths, filepath.Join(profilesDir, child.Name(), target))
		}
	}
	return paths
}

func systemPrivacyFiles() []string {
	home := fsutil.HomeDir()
	return []string{
		filepath.Join(home, "Library", "Application Support", "com.apple.sharedfilelist"),
		filepath.Join(home, "Library", "Preferences", "com.apple.recentitems.plist"),
	}
}
