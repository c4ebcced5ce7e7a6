//go:build !nogui

package picker

import (
	"fmt"

	"github.com/gotk3/gotk3/gtk"
)

// SelectFolder presents a GTK folder-selection dialog and returns the
// chosen directory. It returns ErrUnavailable wrapped with the GTK
// failure when the toolkit cannot initialize (typically a headless
// session), and ErrCancelled when the dialog is dismissed without a
// selection.
func SelectFolder(title string) (string, error) {
	if err := gtk.InitCheck(nil); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	dialog, err := gtk.FileChooserDialogNewWith2Buttons(
		title,
		nil,
		gtk.FILE_CHOOSER_ACTION_SELECT_FOLDER,
		"_Cancel", gtk.RESPONSE_CANCEL,
		"_Select", gtk.RESPONSE_ACCEPT,
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer dialog.Destroy()

	if dialog.Run() != gtk.RESPONSE_ACCEPT {
		return "", ErrCancelled
	}

	folder := dialog.GetFilename()
	if folder == "" {
		return "", ErrCancelled
	}

	return folder, nil
}
