package musictally

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// RootBucket is the tally key for files located directly in the root,
// outside any top-level subfolder. It appears in results only when its
// count is nonzero; top-level subfolders always appear, including at 0.
const RootBucket = "."

// Extensions is the fixed set of recognized music file suffixes,
// matched case-insensitively. Constant for the process lifetime.
//
//nolint:gochecknoglobals // Config constant
var Extensions = map[string]struct{}{
	".mp3":  {},
	".aac":  {},
	".wav":  {},
	".flac": {},
	".m4a":  {},
	".oga":  {},
	".ape":  {},
	".dsf":  {},
	".dff":  {},
	".aiff": {},
	".aif":  {},
	".ogg":  {},
}

// IsMusicFile reports whether name carries one of the recognized music
// extensions. Matching is case-insensitive and suffix-anchored: a name
// like "not.mp3x" does not match.
func IsMusicFile(name string) bool {
	_, ok := Extensions[strings.ToLower(filepath.Ext(name))]

	return ok
}

// InvalidPathError indicates the requested root path does not exist or
// is not a directory. No scan is attempted.
type InvalidPathError struct {
	// Path is the offending path as supplied by the user.
	Path string
	// Err is the underlying cause, if any.
	Err error
}

func (e *InvalidPathError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid path %q: %v", e.Path, e.Err)
	}

	return fmt.Sprintf("invalid path %q: not a directory", e.Path)
}

func (e *InvalidPathError) Unwrap() error { return e.Err }

// Tally holds the aggregated results of a scan.
type Tally struct {
	// Folders maps each top-level subfolder name (and RootBucket, when
	// nonzero) to its music file count, nested levels included.
	Folders map[string]int64
	// Extensions maps each recognized extension to its count across the
	// whole tree, zero-initialized for the full recognized set.
	Extensions map[string]int64
	// Total is the grand total of matched files.
	Total int64
	// Skipped lists paths that could not be read and were passed over.
	Skipped []string
	// Elapsed is the wall-clock duration of the scan.
	Elapsed time.Duration
}

// Progress is a point-in-time snapshot handed to the progress hook.
type Progress struct {
	// Folder is the top-level subfolder currently being scanned.
	Folder string
	// FolderCount is the running match count within Folder.
	FolderCount int64
	// Total is the running match count across the whole scan.
	Total int64
}

// Options configures a scan.
type Options struct {
	// Path is the root directory to scan.
	Path string
	// ProgressInterval controls progress hook cadence.
	ProgressInterval time.Duration
	// Warn receives non-fatal read failures. May be nil.
	Warn func(path string, err error)
	// FolderDone is called after each top-level subfolder finishes, with
	// its count, the cumulative total so far, and the time the subfolder
	// took. May be nil.
	FolderDone func(name string, count, cumulative int64, elapsed time.Duration)
}

// collector aggregates tallies from concurrent fastwalk callbacks using
// a mutex. Top-level subfolders are walked one at a time; only the walk
// inside a single subfolder runs callbacks in parallel.
type collector struct {
	mu           sync.Mutex
	folders      map[string]int64
	exts         map[string]int64
	total        int64
	skipped      []string
	current      string
	currentCount int64
}

func newCollector() *collector {
	exts := make(map[string]int64, len(Extensions))
	for ext := range Extensions {
		exts[ext] = 0
	}

	return &collector{
		folders: make(map[string]int64),
		exts:    exts,
	}
}

// startFolder marks name as the subfolder being scanned and ensures it
// appears in the results even if it ends up with zero matches.
func (c *collector) startFolder(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.folders[name]; !ok {
		c.folders[name] = 0
	}

	c.current = name
	c.currentCount = 0
}

// add records one matched file under the given bucket. Counts only ever
// increase within a run.
func (c *collector) add(folder, ext string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.folders[folder]++
	c.exts[ext]++
	c.total++

	if folder == c.current {
		c.currentCount++
	}
}

// addSkipped records a path that could not be read.
func (c *collector) addSkipped(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.skipped = append(c.skipped, path)
}

// snapshot returns the current progress under the lock.
func (c *collector) snapshot() Progress {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Progress{
		Folder:      c.current,
		FolderCount: c.currentCount,
		Total:       c.total,
	}
}

// count returns the tally for one bucket.
func (c *collector) count(folder string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.folders[folder]
}

// finalize produces the final Tally. The RootBucket entry is dropped
// when empty so a tree with no loose root files renders without it.
func (c *collector) finalize() *Tally {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.folders[RootBucket]; ok && n == 0 {
		delete(c.folders, RootBucket)
	}

	return &Tally{
		Folders:    c.folders,
		Extensions: c.exts,
		Total:      c.total,
		Skipped:    c.skipped,
	}
}
