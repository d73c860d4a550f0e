package scanner

import (
	"io/fs"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/fenilsonani/macsweep/internal/fsutil"
	"github.com/fenilsonani/macsweep/pkg/utils"
)

const (
	// Files below 1 MB are not worth reporting as duplicates.
	duplicateMinSize = 1 * 1024 * 1024
	// Files above 500 MB are skipped to bound hashing cost.
	duplicateMaxSize = 500 * 1000 * 1000
	duplicateDepth   = 8
)

var duplicateSkipDirs = []string{
	".Trash",
	"node_modules",
	".git",
	".venv",
	"venv",
	"__pycache__",
	".tox",
	"target",
	".cargo",
	".rustup",
	".npm",
	".m2",
	".gradle",
	"Pods",
}

var duplicateSkipExts = []string{
	".photoslibrary",
	".musiclibrary",
	".tvlibrary",
	".fcpbundle",
	".vmwarevm",
	".parallels",
	".app",
}

// DuplicateFinder detects files with identical content in three strict
// passes: group by exact size, then by a hash of the first 4 KB, then
// confirm with a full-content hash. Each pass completes for every
// candidate before the next begins, so the expensive full hash only ever
// runs on files that already collide on size and head content.
//
// Within each confirmed group the first file in walk order is kept as
// the original; WalkDir's lexical order makes that choice deterministic
// across runs. Only the copies are reported.
type DuplicateFinder struct {
	roots   []string
	minSize int64
	maxSize int64

	// Hash hooks, swappable in tests to count invocations.
	partialHash func(string) (string, bool)
	fullHash    func(string) (string, bool)
}

// NewDuplicateFinder builds the detector; empty roots select the
// default user content directories.
func NewDuplicateFinder(roots []string) *DuplicateFinder {
	if len(roots) == 0 {
		home := fsutil.HomeDir()
		roots = []string{
			filepath.Join(home, "Documents"),
			filepath.Join(home, "Downloads"),
			filepath.Join(home, "Desktop"),
			filepath.Join(home, "Pictures"),
		}
	}
	return &DuplicateFinder{
		roots:       roots,
		minSize:     duplicateMinSize,
		maxSize:     duplicateMaxSize,
		partialHash: utils.PartialHash,
		fullHash:    utils.FullHash,
	}
}

func (c *DuplicateFinder) Name() string  { return "duplicates" }
func (c *DuplicateFinder) Label() string { return "Duplicate Files" }

// sizeBucket is a set of same-sized paths in walk order.
type sizeBucket struct {
	size  int64
	paths []string
}

func (c *DuplicateFinder) Scan() *ScanResult {
	result := NewScanResult()

	// Pass 1: one consolidated walk, group by exact byte size. Only
	// buckets with two or more members can contain duplicates.
	buckets := c.groupBySize()

	// Pass 2: within each bucket, group by partial hash. Buckets are
	// independent, so they hash in parallel; the Wait is the barrier
	// before any full hashing starts.
	partial := c.groupByPartialHash(buckets)

	// Pass 3: confirm with full-content hashes, again in parallel.
	for _, group := range c.confirmByFullHash(partial) {
		// First path in walk order is the kept original.
		for _, path := range group.paths[1:] {
			result.AddEntry(path, group.size)
		}
	}

	result.SortBySize()
	return result
}

func (c *DuplicateFinder) Clean(dryRun bool) *ScanResult {
	return cleanScanned(c, dryRun, fsutil.SafeRemove)
}

func (c *DuplicateFinder) groupBySize() []sizeBucket {
	bySize := make(map[int64][]string)
	var order []int64

	for _, root := range c.roots {
		if !fsutil.Exists(root) {
			continue
		}
		walkTree(root, duplicateDepth, duplicateSkipDirs, duplicateSkipExts, func(path string, d fs.DirEntry) {
			if !d.Type().IsRegular() {
				return
			}
			info, err := d.Info()
			if err != nil {
				return
			}
			size := info.Size()
			if size < c.minSize || size > c.maxSize {
				return
			}
			if _, seen := bySize[size]; !seen {
				order = append(order, size)
			}
			bySize[size] = append(bySize[size], path)
		})
	}

	var buckets []sizeBucket
	for _, size := range order {
		if paths := bySize[size]; len(paths) >= 2 {
			buckets = append(buckets, sizeBucket{size: size, paths: paths})
		}
	}
	return buckets
}

func (c *DuplicateFinder) groupByPartialHash(buckets []sizeBucket) []sizeBucket {
	perBucket := make([][]sizeBucket, len(buckets))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, bucket := range buckets {
		i, bucket := i, bucket
		g.Go(func() error {
			perBucket[i] = splitByHash(bucket, c.partialHash)
			return nil
		})
	}
	_ = g.Wait()

	var refined []sizeBucket
	for _, groups := range perBucket {
		refined = append(refined, groups...)
	}
	return refined
}

func (c *DuplicateFinder) confirmByFullHash(buckets []sizeBucket) []sizeBucket {
	perBucket := make([][]sizeBucket, len(buckets))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, bucket := range buckets {
		i, bucket := i, bucket
		g.Go(func() error {
			perBucket[i] = splitByHash(bucket, c.fullHash)
			return nil
		})
	}
	_ = g.Wait()

	var confirmed []sizeBucket
	for _, groups := range perBucket {
		confirmed = append(confirmed, groups...)
	}
	return confirmed
}

// splitByHash partitions a bucket by hash digest, preserving walk order
// inside each partition, and keeps only partitions of two or more.
// Files whose hash fails drop out of their partition silently.
func splitByHash(bucket sizeBucket, hash func(string) (string, bool)) []sizeBucket {
	byHash := make(map[string][]string)
	var order []string

	for _, path := range bucket.paths {
		digest, ok := hash(path)
		if !ok {
			continue
		}
		if _, seen := byHash[digest]; !seen {
			order = append(order, digest)
		}
		byHash[digest] = append(byHash[digest], path)
	}

	var groups []sizeBucket
	for _, digest := range order {
		if paths := byHash[digest]; len(paths) >= 2 {
			groups = append(groups, sizeBucket{size: bucket.size, paths: paths})
		}
	}
	return groups
}
