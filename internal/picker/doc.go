// Package picker wraps the GTK3 folder-selection dialog behind a
// capability-checked API. Building with the nogui tag removes the GTK
// dependency entirely; SelectFolder then reports ErrUnavailable and the
// command-line path stays fully functional on headless systems.
package picker
