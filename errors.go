package pkgdata

import "errors"

// Sentinel errors for library operations.
var (
	// Bundled resource errors. These abort Load.
	ErrResourceNotFound = errors.New("bundled resource not found")
	ErrResourceRead     = errors.New("failed to read bundled resource")
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// Configuration errors.
	ErrConfigParse     = errors.New("failed to parse config")
	ErrMissingGreeting = errors.New("config has no greeting")

	// System data errors. These never leave Load; they are reported
	// through Resources.SystemDataErr.
	ErrSystemDataRead   = errors.New("failed to read system data")
	ErrPrefixUnresolved = errors.New("cannot resolve installation prefix")
	ErrInvalidEncoding  = errors.New("system data is not valid UTF-8")
)
