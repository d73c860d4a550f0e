// Package diskinfo reports root volume capacity so the dashboard can
// show usage before and after a clean.
package diskinfo

import "golang.org/x/sys/unix"

// Info is a point-in-time snapshot of the root filesystem.
type Info struct {
	Total     int64
	Available int64
	Used      int64
}

// UsagePercent returns used space as a fraction of total, in [0, 1].
func (i *Info) UsagePercent() float64 {
	if i.Total == 0 {
		return 0
	}
	return float64(i.Used) / float64(i.Total)
}

// Get stats the root volume. ok=false when the syscall fails; callers
// render a placeholder instead.
func Get() (*Info, bool) {
	return statPath("/")
}

func statPath(path string) (*Info, bool) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return nil, false
	}

	blockSize := int64(st.Bsize)
	total := int64(st.Blocks) * blockSize
	available := int64(st.Bavail) * blockSize
	used := total - available
	if used < 0 {
		used = 0
	}

	return &Info{Total: total, Available: available, Used: used}, true
}
