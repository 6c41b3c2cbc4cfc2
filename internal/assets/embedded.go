package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
)

//go:embed conf.json data
var bundled embed.FS

// EmbeddedLoader loads resources from an fs.FS, by default the files
// compiled into the binary. Implements ResourceLoader interface.
type EmbeddedLoader struct {
	fsys fs.FS
}

// NewEmbeddedLoader creates an EmbeddedLoader over the bundled resources.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{fsys: bundled}
}

// NewFSLoader creates an EmbeddedLoader over an arbitrary filesystem.
// Useful for tests and for callers shipping their own embed.FS.
func NewFSLoader(fsys fs.FS) *EmbeddedLoader {
	return &EmbeddedLoader{fsys: fsys}
}

// ReadResource reads a resource by slash-separated name.
func (e *EmbeddedLoader) ReadResource(name string) ([]byte, error) {
	if err := ValidateResourceName(name); err != nil {
		return nil, err
	}

	content, err := fs.ReadFile(e.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrResourceNotFound, name)
		}
		return nil, fmt.Errorf("%w: %v", ErrResourceRead, err)
	}

	return content, nil
}

// List returns the names of all regular files in the loader, in lexical order.
func (e *EmbeddedLoader) List() ([]string, error) {
	var names []string
	err := fs.WalkDir(e.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			names = append(names, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResourceRead, err)
	}
	return names, nil
}

// Compile-time interface check.
var _ ResourceLoader = (*EmbeddedLoader)(nil)
