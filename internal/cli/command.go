package cli

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/pflag"

	"github.com/mhalvorsen/musictally/internal/musictally"
	"github.com/mhalvorsen/musictally/internal/picker"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

func help() {
	//nolint:forbidigo // Help output to console
	fmt.Println(heredoc.Doc(`
		musictally counts music files per top-level subfolder of a directory.

		Usage:

			musictally [flags]

		The root directory is taken from --path. When the flag is omitted,
		a graphical folder-picker dialog is opened instead; on systems
		without GUI support, --path is required.

		Recognized extensions:
		  ` + strings.Join(sortedExtensions(), ", ") + `

		Flags:
	`))
	pflag.PrintDefaults()
}

// sortedExtensions returns the recognized extension set in alphabetical order.
func sortedExtensions() []string {
	exts := make([]string, 0, len(musictally.Extensions))
	for ext := range musictally.Extensions {
		exts = append(exts, ext)
	}

	sort.Strings(exts)

	return exts
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	var (
		path        string
		showVersion bool
	)

	pflag.StringVarP(&path, "path", "p", "", "Root directory to scan. If omitted, a graphical folder picker is attempted")
	pflag.BoolVarP(&showVersion, "version", "v", false, "Show version and exit")

	pflag.CommandLine.SortFlags = false
	pflag.Usage = help
	pflag.Parse()

	if showVersion {
		//nolint:forbidigo // Version output to console
		fmt.Println(c.version)

		return nil
	}

	if path == "" {
		selected, err := picker.SelectFolder("Select folder to scan for music files")

		switch {
		case errors.Is(err, picker.ErrCancelled):
			//nolint:forbidigo // Informational output to console
			fmt.Println("No folder selected, nothing to scan.")

			return nil
		case errors.Is(err, picker.ErrUnavailable):
			return fmt.Errorf("%w: pass --path PATH, or install the GTK3 runtime", err)
		case err != nil:
			return fmt.Errorf("selecting folder: %w", err)
		}

		path = selected
	}

	return logic(path)
}
