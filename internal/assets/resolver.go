package assets

import (
	"errors"
)

// Resolver combines custom and embedded loaders with fallback logic.
// When a custom loader is configured, it tries custom first, then falls back
// to embedded if the resource is not found in the custom location.
type Resolver struct {
	custom   ResourceLoader // nil if no custom path configured
	embedded ResourceLoader
}

// NewResolver creates a Resolver.
// If customBasePath is empty, only embedded resources are used.
// Returns error if customBasePath is set but invalid.
func NewResolver(customBasePath string) (*Resolver, error) {
	resolver := &Resolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// ReadResource reads a resource, trying the custom loader first if available.
func (r *Resolver) ReadResource(name string) ([]byte, error) {
	if r.custom == nil {
		return r.embedded.ReadResource(name)
	}

	content, err := r.custom.ReadResource(name)
	if err == nil {
		return content, nil
	}

	// Only fall back for "not found" errors, not validation or I/O errors
	if !errors.Is(err, ErrResourceNotFound) {
		return nil, err
	}

	return r.embedded.ReadResource(name)
}

// HasCustomLoader returns true if a custom resource directory is configured.
func (r *Resolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ ResourceLoader = (*Resolver)(nil)
