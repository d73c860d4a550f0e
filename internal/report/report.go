// Package report persists a plain-text summary of a completed clean.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fenilsonani/macsweep/internal/fsutil"
	"github.com/fenilsonani/macsweep/pkg/utils"
)

// DefaultPath returns the default report location in the home directory.
func DefaultPath() string {
	return filepath.Join(fsutil.HomeDir(), "macsweep-report.txt")
}

// Export writes a cleanup report: a timestamped header with the freed
// total, then one line per deleted item.
func Export(path string, freedBytes int64, lines []string) error {
	if path == "" {
		path = DefaultPath()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "macsweep cleanup report\n")
	fmt.Fprintf(&b, "Generated: %s\n", time.Now().Format(time.RFC1123))
	fmt.Fprintf(&b, "Space freed: %s\n", utils.FormatBytes(freedBytes))
	fmt.Fprintf(&b, "Items removed: %d\n\n", len(lines))
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(b.String()), 0o644)
}
