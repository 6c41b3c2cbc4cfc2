package pkgdata

import (
	"errors"

	"github.com/alnah/go-pkgdata/internal/assets"
	"github.com/alnah/go-pkgdata/internal/config"
)

// Names of the bundled resources.
const (
	// ConfigResource is the bundled configuration, a JSON object.
	ConfigResource = assets.ConfigName

	// PackageDataResource is the bundled data blob, read verbatim.
	PackageDataResource = assets.PackageDataName
)

// ResourceLoader defines the contract for reading bundled resources.
// Implementations may load from embedded files, a directory, an archive, etc.
//
// The library provides NewResourceLoader() for directory-based loading with
// fallback to embedded resources. Implement this interface for other sources.
type ResourceLoader interface {
	// ReadResource returns the raw bytes of a slash-separated resource name.
	// Returns ErrResourceNotFound if the resource doesn't exist.
	ReadResource(name string) ([]byte, error)
}

// NewResourceLoader creates a ResourceLoader for the given base path.
// If basePath is empty, returns a loader using only embedded resources.
// If basePath is set, resources found there take precedence, with fallback
// to the embedded copy for anything missing.
//
// Returns ErrInvalidAssetPath if basePath is set but not a valid, readable directory.
func NewResourceLoader(basePath string) (ResourceLoader, error) {
	resolver, err := assets.NewResolver(basePath)
	if err != nil {
		return nil, convertResourceError(err)
	}
	return &resourceLoaderAdapter{resolver: resolver}, nil
}

// resourceLoaderAdapter wraps the internal Resolver to return public errors.
type resourceLoaderAdapter struct {
	resolver *assets.Resolver
}

func (a *resourceLoaderAdapter) ReadResource(name string) ([]byte, error) {
	content, err := a.resolver.ReadResource(name)
	if err != nil {
		return nil, convertResourceError(err)
	}
	return content, nil
}

// convertResourceError maps internal resource and config errors to public errors.
func convertResourceError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case isError(err, assets.ErrResourceNotFound):
		return wrapError(ErrResourceNotFound, err)
	case isError(err, assets.ErrInvalidResourceName):
		return wrapError(ErrResourceNotFound, err) // Invalid name means not found
	case isError(err, assets.ErrResourceRead):
		return wrapError(ErrResourceRead, err)
	case isError(err, assets.ErrInvalidBasePath):
		return wrapError(ErrInvalidAssetPath, err)
	case isError(err, assets.ErrPathTraversal):
		return wrapError(ErrInvalidAssetPath, err)
	case isError(err, config.ErrConfigParse):
		return wrapError(ErrConfigParse, err)
	case isError(err, config.ErrMissingGreeting):
		return wrapError(ErrMissingGreeting, err)
	default:
		return err
	}
}

// isError checks if err wraps or equals target using errors.Is semantics.
func isError(err, target error) bool {
	return errors.Is(err, target)
}

// wrapError creates a new error that wraps the original with a public sentinel.
// The resulting error preserves the original message via Error() and supports
// errors.Is() matching against the public sentinel via Unwrap().
func wrapError(sentinel, original error) error {
	return &wrappedError{sentinel: sentinel, original: original}
}

type wrappedError struct {
	sentinel error
	original error
}

func (e *wrappedError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel for errors.Is() matching.
// Internal errors are not exposed since they're in internal/ packages.
func (e *wrappedError) Unwrap() error {
	return e.sentinel
}
