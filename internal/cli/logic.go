package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/mhalvorsen/musictally/internal/musictally"
)

func logic(path string) error {
	enableProgress := isatty.IsTerminal(os.Stderr.Fd())

	ctx := context.Background()

	//nolint:forbidigo // Scan header to console
	fmt.Printf("Selected folder: %s\n", path)
	//nolint:forbidigo // Scan header to console
	fmt.Printf("Scanning for files with extensions: %s\n", strings.Join(sortedExtensions(), ", "))

	// Simple progress callback that prints directly to stderr
	var progressHook func(musictally.Progress)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(p musictally.Progress) {
			msg := fmt.Sprintf("Scanning %s… %s music files (%s so far)",
				p.Folder, humanize.Comma(p.FolderCount), humanize.Comma(p.Total))
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	options := musictally.Options{
		Path: path,
		Warn: func(p string, err error) {
			if enableProgress {
				fmt.Fprint(os.Stderr, "\r\033[2K")
			}

			fmt.Fprintf(os.Stderr, "warning: skipping %s: %v\n", p, err)
		},
		FolderDone: func(name string, count, cumulative int64, elapsed time.Duration) {
			if enableProgress {
				fmt.Fprint(os.Stderr, "\r\033[2K")
			}

			rate := 0.0
			if secs := elapsed.Seconds(); secs > 0 {
				rate = float64(count) / secs
			}

			//nolint:forbidigo // Per-subfolder progress to console
			fmt.Printf("%-40s  %8s files  %10s cumulative  (%.1f files/sec)\n",
				name, humanize.Comma(count), humanize.Comma(cumulative), rate)
		},
	}

	tally, err := musictally.Run(ctx, options, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	return PrintSummary(tally, os.Stdout)
}
