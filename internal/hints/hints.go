// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// PrefixEnvVar is the environment variable that overrides the installation prefix.
const PrefixEnvVar = "PKG1_PREFIX"

// IsDevBuild reports whether the prefix looks like a `go run` or `go test`
// build directory rather than an installation.
func IsDevBuild(prefix string) bool {
	return strings.Contains(filepath.ToSlash(prefix), "/go-build")
}

// ForSystemData returns hints for a system data file that could not be read.
func ForSystemData(prefix, relPath string) string {
	if prefix == "" || IsDevBuild(prefix) {
		return format("not running from an installation; set " + PrefixEnvVar + " or use --prefix")
	}
	return format("install " + relPath + " under " + prefix + ", or set " + PrefixEnvVar)
}

// ForResourceNotFound returns hints for a missing bundled resource.
func ForResourceNotFound() string {
	return format("rebuild the binary, or provide the resource under --asset-path")
}

// ForConfigParse returns hints for a malformed configuration resource.
func ForConfigParse() string {
	return format(`conf.json must be a JSON object, e.g. {"greeting": "hello"}`)
}

// ForInvalidAssetPath returns hints for an unusable --asset-path directory.
func ForInvalidAssetPath() string {
	return format("--asset-path must be a readable directory")
}

// ForUnknownEnv returns hints listing the recognized environment variables.
func ForUnknownEnv(known []string) string {
	return formatHints([]string{"known variables: " + strings.Join(known, ", ")})
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
