package picker

import "errors"

var (
	// ErrUnavailable indicates no GUI toolkit can be used in this
	// environment or build.
	ErrUnavailable = errors.New("graphical folder picker unavailable")

	// ErrCancelled indicates the user dismissed the dialog without
	// selecting a folder.
	ErrCancelled = errors.New("folder selection cancelled")
)
