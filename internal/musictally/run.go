package musictally

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charlievieth/fastwalk"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// startProgressReporter invokes hook(snapshot) on each tick until ctx is done.
//
//nolint:varnamelen // c is idiomatic for collector
func startProgressReporter(ctx context.Context, c *collector, hook func(Progress), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(c.snapshot())
			case <-ctx.Done():
				return
			}
		}
	}()
}

// walkSubtree recursively counts music files under dir, tallying them
// into bucket. Unreadable paths inside the subtree are reported through
// warn and skipped; the walk continues.
//
//nolint:varnamelen // c is idiomatic for collector
func walkSubtree(ctx context.Context, c *collector, dir, bucket string, warn func(string, error)) error {
	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks
	}

	//nolint:varnamelen // d is standard for DirEntry
	return fastwalk.Walk(conf, dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			c.addSkipped(path)

			if warn != nil {
				warn(path, err)
			}

			return nil
		}

		// Check cancellation periodically
		select {
		case <-ctx.Done():
			return context.Canceled
		default:
		}

		if d.IsDir() {
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		if !IsMusicFile(d.Name()) {
			return nil
		}

		c.add(bucket, strings.ToLower(filepath.Ext(path)))

		return nil
	})
}

// Run scans the directory tree at opt.Path and returns aggregated music
// file tallies. Each immediate child directory of the root is walked as
// one unit of work, strictly one at a time, so progress and the
// FolderDone callback follow a deterministic order. Files sitting
// directly in the root are tallied under RootBucket.
//
// The walk can be cancelled via ctx. Progress snapshots are sent to
// progressHook if provided. An unreadable subfolder is reported through
// opt.Warn and skipped; only an unreadable or invalid root is fatal.
func Run(ctx context.Context, opt Options, progressHook func(Progress)) (*Tally, error) {
	if opt.Path == "" {
		opt.Path = "."
	}

	// Normalize to native format to handle both C:/Path and C:\Path inputs
	opt.Path = filepath.Clean(opt.Path)

	if statInfo, err := os.Stat(opt.Path); err != nil {
		return nil, &InvalidPathError{Path: opt.Path, Err: err}
	} else if !statInfo.IsDir() {
		return nil, &InvalidPathError{Path: opt.Path}
	}

	entries, err := os.ReadDir(opt.Path)
	if err != nil {
		return nil, fmt.Errorf("reading root %q: %w", opt.Path, err)
	}

	collector := newCollector()

	// Create child context to ensure progress reporter cleanup
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, collector, progressHook, opt.ProgressInterval)

	start := time.Now()

	// Loose files in the root first, then one subfolder at a time.
	// os.ReadDir returns entries sorted by name, which fixes the order.
	for _, entry := range entries {
		if entry.IsDir() || !entry.Type().IsRegular() {
			continue
		}

		if IsMusicFile(entry.Name()) {
			collector.add(RootBucket, strings.ToLower(filepath.Ext(entry.Name())))
		}
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		name := entry.Name()
		folderStart := time.Now()

		collector.startFolder(name)

		if err := walkSubtree(ctx, collector, filepath.Join(opt.Path, name), name, opt.Warn); err != nil {
			return nil, err
		}

		if opt.FolderDone != nil {
			opt.FolderDone(name, collector.count(name), collector.snapshot().Total, time.Since(folderStart))
		}
	}

	tally := collector.finalize()

	tally.Elapsed = time.Since(start)

	return tally, nil
}
