// Package shred overwrites file content before deletion so the bytes
// cannot be recovered from the free list. Pass pattern: random, zeros,
// random, with a sync barrier after each pass and the unlink strictly
// after the final pass.
package shred

import (
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fenilsonani/macsweep/internal/fsutil"
)

const (
	chunkSize = 64 * 1024
	passes    = 3
)

// File shreds a file or directory tree and returns the bytes freed.
// progress receives one line per overwrite pass; pass nil to discard.
// For directories the contents shred depth first, deepest entries before
// the directories that hold them.
func File(path string, progress func(string)) (int64, error) {
	if progress == nil {
		progress = func(string) {}
	}

	if err := fsutil.ValidateDeletable(path); err != nil {
		return 0, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}

	if info.IsDir() {
		return shredDir(path, progress)
	}
	return shredSingle(path, progress)
}

func shredDir(root string, progress func(string)) (int64, error) {
	var files []string
	var dirs []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root {
				dirs = append(dirs, path)
			}
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return 0, err
	}

	var total int64
	for _, path := range files {
		n, err := shredSingle(path, progress)
		if err != nil {
			return total, err
		}
		total += n
	}

	// Deepest directories first so each remove sees an empty directory.
	sort.Slice(dirs, func(i, j int) bool { return len(dirs[i]) > len(dirs[j]) })
	for _, dir := range dirs {
		if err := os.Remove(dir); err != nil {
			return total, err
		}
	}
	if err := os.Remove(root); err != nil {
		return total, err
	}
	return total, nil
}

func shredSingle(path string, progress func(string)) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	size := info.Size()

	// Nothing to overwrite; the name still goes away.
	if size == 0 {
		if err := os.Remove(path); err != nil {
			return 0, err
		}
		return 0, nil
	}

	file, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return 0, err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	buf := make([]byte, chunkSize)

	for pass := 1; pass <= passes; pass++ {
		fillZeros := pass == 2
		progress(fmt.Sprintf("Shredding pass %d/%d: %s", pass, passes, filepath.Base(path)))

		if _, err := file.Seek(0, 0); err != nil {
			file.Close()
			return 0, err
		}

		remaining := size
		for remaining > 0 {
			chunk := int64(chunkSize)
			if remaining < chunk {
				chunk = remaining
			}
			if fillZeros {
				for i := int64(0); i < chunk; i++ {
					buf[i] = 0
				}
			} else {
				rng.Read(buf[:chunk])
			}
			if _, err := file.Write(buf[:chunk]); err != nil {
				file.Close()
				return 0, err
			}
			remaining -= chunk
		}

		// Each pass must reach the platters before the next begins.
		if err := file.Sync(); err != nil {
			file.Close()
			return 0, err
		}
	}

	if err := file.Close(); err != nil {
		return 0, err
	}
	if err := os.Remove(path); err != nil {
		return 0, err
	}
	return size, nil
}
