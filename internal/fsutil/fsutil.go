// Package fsutil provides the filesystem metadata and removal helpers the
// scanners and the engine build on.
package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// HomeDir returns the current user's home directory, or "" if it cannot be
// determined. Callers treat "" as a structural error for the affected scan.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}

// Exists reports whether a path exists (following symlinks).
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// DirSize computes the total size of all regular files under a directory.
// Unreadable entries are skipped.
func DirSize(path string) int64 {
	var total int64
	_ = filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.Type().IsRegular() {
			if info, err := d.Info(); err == nil {
				total += info.Size()
			}
		}
		return nil
	})
	return total
}

// EntrySize returns the size of a file, or the recursive size of a directory.
func EntrySize(path string) int64 {
	info, err := os.Lstat(path)
	if err != nil {
		return 0
	}
	if info.IsDir() {
		return DirSize(path)
	}
	return info.Size()
}

// SafeRemove removes a file or directory tree and returns the bytes freed.
// System-critical paths are rejected outright.
func SafeRemove(path string) (int64, error) {
	if err := ValidateDeletable(path); err != nil {
		return 0, err
	}
	size := EntrySize(path)
	info, err := os.Lstat(path)
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		if err := os.RemoveAll(path); err != nil {
			return 0, err
		}
	} else {
		if err := os.Remove(path); err != nil {
			return 0, err
		}
	}
	return size, nil
}

// DisplayPath shortens a path for display by replacing the home directory
// prefix with "~".
func DisplayPath(path string) string {
	home := HomeDir()
	if home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+string(filepath.Separator)) {
		return "~" + path[len(home):]
	}
	return path
}
