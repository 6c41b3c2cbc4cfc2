package assets

import (
	"fmt"
	"io/fs"
	"strings"
)

// ValidateResourceName checks that a resource name is a clean relative path.
// Segments are separated by forward slashes on every platform. Returns
// ErrInvalidResourceName for empty names, absolute paths, backslashes,
// NUL bytes, and "." or ".." segments.
func ValidateResourceName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidResourceName)
	}
	if name == "." || strings.ContainsAny(name, "\\\x00") || !fs.ValidPath(name) {
		return fmt.Errorf("%w: %q", ErrInvalidResourceName, name)
	}
	return nil
}
