package fsutil

import (
	"fmt"
	"path/filepath"
)

// protectedRoots are paths no cleaner may ever delete, however they end
// up in a batch. Matching is exact or by prefix with a path boundary.
var protectedRoots = []string{
	"/",
	"/bin",
	"/sbin",
	"/usr",
	"/etc",
	"/var",
	"/private/etc",
	"/private/var/db",
	"/System",
	"/Applications",
	"/Library/Apple",
}

// ValidateDeletable rejects relative, unclean, or system-critical paths
// before any removal. The home directory itself is also off limits.
func ValidateDeletable(path string) error {
	if !filepath.IsAbs(path) {
		return fmt.Errorf("refusing to delete relative path: %s", path)
	}
	if filepath.Clean(path) != path {
		return fmt.Errorf("refusing to delete unclean path: %s", path)
	}
	if home := HomeDir(); home != "" && path == home {
		return fmt.Errorf("refusing to delete home directory")
	}
	for _, root := range protectedRoots {
		if path == root {
			return fmt.Errorf("refusing to delete protected path: %s", path)
		}
	}
	return nil
}
