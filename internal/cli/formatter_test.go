package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhalvorsen/musictally/internal/musictally"
)

func sampleTally() *musictally.Tally {
	return &musictally.Tally{
		Folders: map[string]int64{
			"Ambient": 1,
			"Rock":    2,
			"Empty":   0,
		},
		Extensions: map[string]int64{
			".mp3":  2,
			".flac": 1,
			".wav":  0,
			".ogg":  0,
		},
		Total:   3,
		Elapsed: 1230 * time.Millisecond,
	}
}

func TestPrintSummary(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, PrintSummary(sampleTally(), &buf))

	out := buf.String()

	assert.Contains(t, out, "Music files by top-level subfolder:")
	assert.Contains(t, out, "Rock:")
	assert.Contains(t, out, "Ambient:")
	assert.Contains(t, out, "Empty:")
	assert.Contains(t, out, "Music files by extension:")
	assert.Contains(t, out, ".mp3:")
	assert.Contains(t, out, "Total music files:")
	assert.Contains(t, out, "3")
	assert.Contains(t, out, "Elapsed:")
	assert.Contains(t, out, "1.23s")
	assert.NotContains(t, out, "Skipped")
}

func TestPrintSummaryOrdering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, PrintSummary(sampleTally(), &buf))

	out := buf.String()

	// Subfolders by count descending, zero-count still present.
	assert.Less(t, strings.Index(out, "Rock:"), strings.Index(out, "Ambient:"))
	assert.Less(t, strings.Index(out, "Ambient:"), strings.Index(out, "Empty:"))

	// Matched extensions first, zero-count alphabetical afterwards.
	assert.Less(t, strings.Index(out, ".mp3:"), strings.Index(out, ".flac:"))
	assert.Less(t, strings.Index(out, ".flac:"), strings.Index(out, ".ogg:"))
	assert.Less(t, strings.Index(out, ".ogg:"), strings.Index(out, ".wav:"))
}

func TestPrintSummaryPercentages(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, PrintSummary(sampleTally(), &buf))

	out := buf.String()

	assert.Contains(t, out, "66.67%")
	assert.Contains(t, out, "33.33%")
	assert.Contains(t, out, "0.00%")
}

func TestPrintSummaryEmptyTally(t *testing.T) {
	t.Parallel()

	tally := &musictally.Tally{
		Folders:    map[string]int64{},
		Extensions: map[string]int64{".mp3": 0},
	}

	var buf bytes.Buffer

	require.NoError(t, PrintSummary(tally, &buf))

	out := buf.String()

	assert.Contains(t, out, "Total music files:")
	assert.Contains(t, out, "0")
	assert.Contains(t, out, "0.00%")
}

func TestPrintSummarySkippedLine(t *testing.T) {
	t.Parallel()

	tally := sampleTally()
	tally.Skipped = []string{"/tmp/root/locked"}

	var buf bytes.Buffer

	require.NoError(t, PrintSummary(tally, &buf))

	assert.Contains(t, buf.String(), "Skipped (unreadable):")
}

func TestSortRowsTiebreakIsAlphabetical(t *testing.T) {
	t.Parallel()

	rows := []row{
		{name: "b", count: 1},
		{name: "a", count: 1},
		{name: "c", count: 5},
	}

	sortRows(rows)

	assert.Equal(t, []row{
		{name: "c", count: 5},
		{name: "a", count: 1},
		{name: "b", count: 1},
	}, rows)
}

func TestSortedExtensionsCoversRecognizedSet(t *testing.T) {
	t.Parallel()

	exts := sortedExtensions()

	assert.Len(t, exts, len(musictally.Extensions))
	assert.IsIncreasing(t, exts)
	assert.Contains(t, exts, ".mp3")
	assert.Contains(t, exts, ".flac")
}
