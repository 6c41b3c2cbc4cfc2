package pkgdata

import (
	"fmt"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/alnah/go-pkgdata/internal/prefix"
)

// SystemDataPath is the system data file location relative to the
// installation prefix, slash-separated.
const SystemDataPath = prefix.SystemDataRelPath

// SystemDataFallback returns the value that replaces unreadable system data.
// It names the same relative path that the read attempts.
func SystemDataFallback() string {
	return "System data: (In editable mode?) Unable to load data file: " + SystemDataPath
}

// systemData is the outcome of the guarded system data load.
type systemData struct {
	content string
	prefix  string
	path    string
	err     error
}

// readSystemData reads the file at path fully as UTF-8 text.
// Failures propagate; loadSystemData is the only caller that recovers.
func readSystemData(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is prefix + fixed relative path
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSystemDataRead, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %w: %s", ErrSystemDataRead, ErrInvalidEncoding, path)
	}
	return string(data), nil
}

// loadSystemData resolves the prefix when none is given, then reads the
// system data file. Any failure is logged and replaced by
// SystemDataFallback; it never returns an error.
func loadSystemData(prefixDir string, executable func() (string, error), logger *slog.Logger) systemData {
	res := systemData{prefix: prefixDir}

	if res.prefix == "" {
		p, err := prefix.Resolve(executable)
		if err != nil {
			return res.fallback(logger, fmt.Errorf("%w: %w", ErrSystemDataRead, wrapError(ErrPrefixUnresolved, err)))
		}
		res.prefix = p
	}

	res.path = prefix.SystemDataPath(res.prefix)
	content, err := readSystemData(res.path)
	if err != nil {
		return res.fallback(logger, err)
	}

	res.content = content
	return res
}

// fallback records err, logs it and substitutes the fallback content.
func (s systemData) fallback(logger *slog.Logger, err error) systemData {
	logger.Warn("system data load error", "path", s.path, "error", err)
	s.err = err
	s.content = SystemDataFallback()
	return s
}
