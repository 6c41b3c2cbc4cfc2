package pkgdata

import (
	"bytes"
	"fmt"
	"io"

	"github.com/alnah/go-pkgdata/internal/assets"
	"github.com/alnah/go-pkgdata/internal/config"
)

// Resources is the immutable bundle produced by Load.
// Every field is set once; no method mutates it.
type Resources struct {
	config      config.Config
	packageData []byte
	system      systemData
}

// Load reads the bundled configuration, the bundled package data and the
// system data file, in that order.
//
// The two bundled resources are mandatory: a missing resource returns
// ErrResourceNotFound and a malformed configuration returns ErrConfigParse.
// The system data file is optional: any failure to read it is logged at
// warn level and replaced by SystemDataFallback, and Load still succeeds.
func Load(opts ...Option) (*Resources, error) {
	cfg := defaultLoadConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	loader, err := cfg.resourceLoader()
	if err != nil {
		return nil, err
	}

	conf, err := loadConfiguration(loader)
	if err != nil {
		return nil, err
	}

	pkgData, err := loadPackageData(loader)
	if err != nil {
		return nil, err
	}

	return &Resources{
		config:      conf,
		packageData: pkgData,
		system:      loadSystemData(cfg.prefix, cfg.executable, cfg.logger),
	}, nil
}

// resourceLoader returns the configured loader, building the default
// resolver when none was given.
func (c *loadConfig) resourceLoader() (ResourceLoader, error) {
	if c.loader != nil {
		return c.loader, nil
	}
	return NewResourceLoader(c.assetPath)
}

func loadConfiguration(loader ResourceLoader) (config.Config, error) {
	data, err := loader.ReadResource(assets.ConfigName)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", assets.ConfigName, convertResourceError(err))
	}
	conf, err := config.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", assets.ConfigName, convertResourceError(err))
	}
	return conf, nil
}

func loadPackageData(loader ResourceLoader) ([]byte, error) {
	data, err := loader.ReadResource(assets.PackageDataName)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", assets.PackageDataName, convertResourceError(err))
	}
	return data, nil
}

// Greeting returns the configuration's greeting.
// Returns ErrMissingGreeting if the key is absent or not a string.
func (r *Resources) Greeting() (string, error) {
	g, err := r.config.Greeting()
	if err != nil {
		return "", convertResourceError(err)
	}
	return g, nil
}

// ConfigKeys returns the configuration's top-level keys, sorted.
func (r *Resources) ConfigKeys() []string {
	return r.config.Keys()
}

// PackageData returns a copy of the bundled package data.
func (r *Resources) PackageData() []byte {
	return bytes.Clone(r.packageData)
}

// SystemData returns the system data file contents, or SystemDataFallback
// when the file could not be read.
func (r *Resources) SystemData() string {
	return r.system.content
}

// SystemDataErr returns why the system data file could not be read, or nil.
func (r *Resources) SystemDataErr() error {
	return r.system.err
}

// Prefix returns the installation prefix used for the system data file.
// Empty when it could not be resolved.
func (r *Resources) Prefix() string {
	return r.system.prefix
}

// SystemDataFile returns the OS path the system data was read from.
// Empty when the prefix could not be resolved.
func (r *Resources) SystemDataFile() string {
	return r.system.path
}

// Hello writes the greeting, the package data and the system data to w,
// each on its own line. Blobs that already end in a newline are not given
// a second one. Nothing is written when the greeting is missing.
func (r *Resources) Hello(w io.Writer) error {
	greeting, err := r.Greeting()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	writeLine(&buf, []byte(greeting))
	writeLine(&buf, r.packageData)
	writeLine(&buf, []byte(r.system.content))

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func writeLine(buf *bytes.Buffer, b []byte) {
	buf.Write(b)
	if len(b) == 0 || b[len(b)-1] != '\n' {
		buf.WriteByte('\n')
	}
}
