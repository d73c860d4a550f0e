package scanner

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/fenilsonani/macsweep/internal/fsutil"
)

// Screenshots older than this are considered stale.
const screenshotMaxAge = 30 * 24 * time.Hour

var screenshotPrefixes = []string{"Screenshot ", "Screen Recording "}

var screenshotExtensions = []string{".png", ".jpg", ".jpeg", ".tiff", ".gif", ".mov", ".mp4"}

// Screenshots finds macOS screenshots and screen recordings older than
// 30 days in the user's capture directory.
type Screenshots struct{}

func NewScreenshots() *Screenshots { return &Screenshots{} }

func (c *Screenshots) Name() string  { return "screenshots" }
func (c *Screenshots) Label() string { return "Old Screenshots" }

func (c *Screenshots) Scan() *ScanResult {
	result := NewScanResult()

	dir := screenshotDir()
	children, err := os.ReadDir(dir)
	if err != nil {
		return result
	}

	cutoff := time.Now().Add(-screenshotMaxAge)
	for _, child := range children {
		if !child.Type().IsRegular() {
			continue
		}
		name := child.Name()
		if !isScreenshotName(name) || !hasScreenshotExtension(name) {
			continue
		}
		info, err := child.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		result.AddEntry(filepath.Join(dir, name), info.Size())
	}

	result.SortBySize()
	return result
}

func (c *Screenshots) Clean(dryRun bool) *ScanResult {
	return cleanScanned(c, dryRun, removeFile)
}

// screenshotDir honors a custom capture location set via
// `defaults write com.apple.screencapture location`, else ~/Desktop.
func screenshotDir() string {
	out, err := exec.Command("defaults", "read", "com.apple.screencapture", "location").Output()
	if err == nil {
		location := strings.TrimSpace(string(out))
		if location != "" && fsutil.Exists(location) {
			return location
		}
	}
	return filepath.Join(fsutil.HomeDir(), "Desktop")
}

func isScreenshotName(name string) bool {
	for _, prefix := range screenshotPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func hasScreenshotExtension(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range screenshotExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
