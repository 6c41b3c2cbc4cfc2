// Package prefix locates the installation prefix of the running program
// and the system data file installed beneath it.
package prefix

import (
	"errors"
	"fmt"
	"path/filepath"
)

// ErrUnresolved indicates the installation prefix could not be determined.
var ErrUnresolved = errors.New("cannot resolve installation prefix")

// SystemDataRelPath is the system data file location relative to the prefix.
// Always slash-separated; use SystemDataPath for an OS path.
const SystemDataRelPath = "data/data1.dat"

// binDir is the conventional executable directory under a prefix.
const binDir = "bin"

// Resolve derives the installation prefix from the running executable.
// The executable's directory is the prefix, unless that directory is
// named "bin", in which case its parent is: /usr/local/bin/pkg1 resolves
// to /usr/local. Symlinks to the executable are followed.
func Resolve(executable func() (string, error)) (string, error) {
	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnresolved, err)
	}
	if exe == "" {
		return "", fmt.Errorf("%w: empty executable path", ErrUnresolved)
	}

	if real, err := filepath.EvalSymlinks(exe); err == nil {
		exe = real
	}

	abs, err := filepath.Abs(exe)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnresolved, err)
	}

	dir := filepath.Dir(abs)
	if filepath.Base(dir) == binDir {
		return filepath.Dir(dir), nil
	}
	return dir, nil
}

// SystemDataPath joins prefix with SystemDataRelPath.
func SystemDataPath(prefix string) string {
	return filepath.Join(prefix, filepath.FromSlash(SystemDataRelPath))
}
