package cli

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/mhalvorsen/musictally/internal/musictally"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// row is one rendered summary line.
type row struct {
	name  string
	count int64
}

// sortRows orders rows by count descending, name ascending as tiebreak,
// so the summary is deterministic across runs.
func sortRows(rows []row) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}

		return rows[i].name < rows[j].name
	})
}

// folderRows converts the per-subfolder tally into display order.
func folderRows(tally *musictally.Tally) []row {
	rows := make([]row, 0, len(tally.Folders))
	for name, count := range tally.Folders {
		rows = append(rows, row{name: name, count: count})
	}

	sortRows(rows)

	return rows
}

// extensionRows converts the per-extension tally into display order:
// extensions with matches first by count, then the zero-count remainder
// alphabetically.
func extensionRows(tally *musictally.Tally) []row {
	matched := make([]row, 0, len(tally.Extensions))
	empty := make([]row, 0, len(tally.Extensions))

	for ext, count := range tally.Extensions {
		if count > 0 {
			matched = append(matched, row{name: ext, count: count})
		} else {
			empty = append(empty, row{name: ext, count: count})
		}
	}

	sortRows(matched)
	sort.Slice(empty, func(i, j int) bool { return empty[i].name < empty[j].name })

	return append(matched, empty...)
}

// percent returns part as a percentage of total, 0 when total is 0.
func percent(part, total int64) float64 {
	if total == 0 {
		return 0
	}

	return 100.0 * float64(part) / float64(total)
}

// PrintSummary outputs the final tally in human-readable table format.
//
//nolint:forbidigo // This function prints output to the console.
func PrintSummary(tally *musictally.Tally, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, "\nMusic files by top-level subfolder:\t\t")

	for _, r := range folderRows(tally) {
		fmt.Fprintf(w, "  %s:\t%s\t(%.2f%%)\n",
			r.name, humanize.Comma(r.count), percent(r.count, tally.Total))
	}

	fmt.Fprintln(w, "\nMusic files by extension:\t\t")

	for _, r := range extensionRows(tally) {
		fmt.Fprintf(w, "  %s:\t%s\t(%.2f%%)\n",
			r.name, humanize.Comma(r.count), percent(r.count, tally.Total))
	}

	fmt.Fprintf(w, "\nTotal music files:\t%s\t\n", humanize.Comma(tally.Total))

	if len(tally.Skipped) > 0 {
		fmt.Fprintf(w, "Skipped (unreadable):\t%d\t\n", len(tally.Skipped))
	}

	fmt.Fprintf(w, "\nElapsed:\t%.2fs\t\n", tally.Elapsed.Seconds())

	return w.Flush()
}
