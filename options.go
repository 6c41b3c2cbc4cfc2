package pkgdata

import (
	"log/slog"
	"os"
)

// loadConfig collects Load options.
type loadConfig struct {
	loader     ResourceLoader
	assetPath  string
	prefix     string
	executable func() (string, error)
	logger     *slog.Logger
}

// Option configures Load.
type Option func(*loadConfig)

func defaultLoadConfig() loadConfig {
	return loadConfig{
		executable: os.Executable,
		logger:     slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}
}

// WithAssetPath reads bundled resources from dir first, falling back to
// the embedded copy for anything missing there. Ignored when
// WithResourceLoader is also given.
func WithAssetPath(dir string) Option {
	return func(c *loadConfig) {
		c.assetPath = dir
	}
}

// WithResourceLoader replaces the bundled resource source entirely.
func WithResourceLoader(l ResourceLoader) Option {
	return func(c *loadConfig) {
		c.loader = l
	}
}

// WithPrefix sets the installation prefix instead of deriving it from the
// running executable. The system data file is read from
// {dir}/data/data1.dat.
func WithPrefix(dir string) Option {
	return func(c *loadConfig) {
		c.prefix = dir
	}
}

// WithLogger sets the logger receiving the system data warning.
// The default writes text records to os.Stderr. A nil logger keeps the
// default; pass slog.New(slog.DiscardHandler) to silence it.
func WithLogger(l *slog.Logger) Option {
	return func(c *loadConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// withExecutable overrides executable lookup for prefix resolution.
func withExecutable(fn func() (string, error)) Option {
	return func(c *loadConfig) {
		c.executable = fn
	}
}
