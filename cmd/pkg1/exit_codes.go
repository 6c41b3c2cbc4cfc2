package main

import (
	"errors"

	pkgdata "github.com/alnah/go-pkgdata"
	"github.com/alnah/go-pkgdata/internal/hints"
)

// Exit codes for pkg1 CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // Resources loaded and printed
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid command, flags, or asset path
	ExitResource = 3 // Bundled resource missing or malformed
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Bundled resource errors (exit 3)
	if errors.Is(err, pkgdata.ErrResourceNotFound) ||
		errors.Is(err, pkgdata.ErrResourceRead) ||
		errors.Is(err, pkgdata.ErrConfigParse) ||
		errors.Is(err, pkgdata.ErrMissingGreeting) {
		return ExitResource
	}

	// Usage errors (exit 2)
	if errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrUnexpectedArgs) ||
		errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrConflictingFlags) ||
		errors.Is(err, ErrConflictingFormats) ||
		errors.Is(err, ErrInvalidLogLevel) ||
		errors.Is(err, ErrInvalidLogFormat) ||
		errors.Is(err, pkgdata.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, pkgdata.ErrInvalidAssetPath):
		return hints.ForInvalidAssetPath()
	case errors.Is(err, pkgdata.ErrResourceNotFound):
		return hints.ForResourceNotFound()
	case errors.Is(err, pkgdata.ErrConfigParse), errors.Is(err, pkgdata.ErrMissingGreeting):
		return hints.ForConfigParse()
	default:
		return ""
	}
}
