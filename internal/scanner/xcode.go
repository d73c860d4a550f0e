package scanner

import (
	"path/filepath"

	"github.com/fenilsonani/macsweep/internal/fsutil"
)

// The four Xcode-related categories all share one shape: list the
// immediate children of a single developer directory.

type XcodeDerivedData struct{}

func NewXcodeDerivedData() *XcodeDerivedData { return &XcodeDerivedData{} }

func (c *XcodeDerivedData) Name() string  { return "xcode" }
func (c *XcodeDerivedData) Label() string { return "Xcode Derived Data" }

func (c *XcodeDerivedData) Scan() *ScanResult {
	return scanChildren(filepath.Join(fsutil.HomeDir(), "Library", "Developer", "Xcode", "DerivedData"))
}

func (c *XcodeDerivedData) Clean(dryRun bool) *ScanResult {
	return cleanScanned(c, dryRun, fsutil.SafeRemove)
}

type XcodeDeviceSupport struct{}

func NewXcodeDeviceSupport() *XcodeDeviceSupport { return &XcodeDeviceSupport{} }

func (c *XcodeDeviceSupport) Name() string  { return "xcode-device-support" }
func (c *XcodeDeviceSupport) Label() string { return "Xcode iOS Device Support" }

func (c *XcodeDeviceSupport) Scan() *ScanResult {
	return scanChildren(filepath.Join(fsutil.HomeDir(), "Library", "Developer", "Xcode", "iOS DeviceSupport"))
}

func (c *XcodeDeviceSupport) Clean(dryRun bool) *ScanResult {
	return cleanScanned(c, dryRun, fsutil.SafeRemove)
}

type XcodeArchives struct{}

func NewXcodeArchives() *XcodeArchives { return &XcodeArchives{} }

func (c *XcodeArchives) Name() string  { return "xcode-archives" }
func (c *XcodeArchives) Label() string { return "Xcode Archives" }

func (c *XcodeArchives) Scan() *ScanResult {
	return scanChildren(filepath.Join(fsutil.HomeDir(), "Library", "Developer", "Xcode", "Archives"))
}

func (c *XcodeArchives) Clean(dryRun bool) *ScanResult {
	return cleanScanned(c, dryRun, fsutil.SafeRemove)
}

type CoreSimulator struct{}

func NewCoreSimulator() *CoreSimulator { return &CoreSimulator{} }

func (c *CoreSimulator) Name() string  { return "core-simulator" }
func (c *CoreSimulator) Label() string { return "CoreSimulator Devices" }

func (c *CoreSimulator) Scan() *ScanResult {
	return scanChildren(filepath.Join(fsutil.HomeDir(), "Library", "Developer", "CoreSimulator", "Devices"))
}

func (c *CoreSimulator) Clean(dryRun bool) *ScanResult {
	return cleanScanned(c, dryRun, fsutil.SafeRemove)
}
