package assets

import "errors"

// Sentinel errors for resource operations.
var (
	// ErrResourceNotFound indicates the requested resource does not exist.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrInvalidResourceName indicates the resource name is not a clean,
	// slash-separated relative path.
	ErrInvalidResourceName = errors.New("invalid resource name")

	// ErrInvalidBasePath indicates the configured base path is not a valid directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrResourceRead indicates an I/O error occurred while reading a resource.
	ErrResourceRead = errors.New("failed to read resource")

	// ErrPathTraversal indicates an attempt to access files outside the base path.
	ErrPathTraversal = errors.New("path traversal detected")
)
