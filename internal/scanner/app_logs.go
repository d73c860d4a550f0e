package scanner

import (
	"path/filepath"

	"github.com/fenilsonani/macsweep/internal/fsutil"
)

// AppLogs scans the user and system application log directories.
type AppLogs struct{}

func NewAppLogs() *AppLogs { return &AppLogs{} }

func (c *AppLogs) Name() string  { return "app-logs" }
func (c *AppLogs) Label() string { return "Application Logs" }

func (c *AppLogs) Scan() *ScanResult {
	return scanChildren(
		filepath.Join(fsutil.HomeDir(), "Library", "Logs"),
		"/Library/Logs",
	)
}

func (c *AppLogs) Clean(dryRun bool) *ScanResult {
	return cleanScanned(c, dryRun, fsutil.SafeRemove)
}
