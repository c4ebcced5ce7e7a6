//go:build nogui

package picker

// SelectFolder always reports ErrUnavailable: the binary was built with
// the nogui tag and carries no GUI toolkit.
func SelectFolder(string) (string, error) {
	return "", ErrUnavailable
}
