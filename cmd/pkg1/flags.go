package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// Sentinel errors for flag handling.
var (
	ErrInvalidFlags       = errors.New("invalid flags")
	ErrConflictingFlags   = errors.New("conflicting flags")
	ErrConflictingFormats = errors.New("--json and --yaml are mutually exclusive")
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	prefix    string
	assetPath string
	logLevel  string
	logFormat string
	verbose   bool
	quiet     bool
}

// helloFlags holds flags for the hello command.
type helloFlags struct {
	common commonFlags
}

// doctorFlags holds flags for the doctor command.
type doctorFlags struct {
	common commonFlags
	json   bool
	yaml   bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVar(&f.prefix, "prefix", "", "installation prefix (default: derived from executable)")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory overriding bundled resources")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&f.logFormat, "log-format", "", "log format: text, json")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log debug details")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only log errors")
}

// parseHelloFlags parses hello command flags and returns positional args.
func parseHelloFlags(args []string, w io.Writer) (*helloFlags, []string, error) {
	fs := flag.NewFlagSet("hello", flag.ContinueOnError)
	fs.SetOutput(w)
	f := &helloFlags{}

	addCommonFlags(fs, &f.common)
	fs.Usage = func() { printHelloUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, wrapParseError(err)
	}
	if err := f.common.validate(); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseDoctorFlags parses doctor command flags and returns positional args.
func parseDoctorFlags(args []string, w io.Writer) (*doctorFlags, []string, error) {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	fs.SetOutput(w)
	f := &doctorFlags{}

	addCommonFlags(fs, &f.common)
	fs.BoolVar(&f.json, "json", false, "output as JSON")
	fs.BoolVar(&f.yaml, "yaml", false, "output as YAML")
	fs.Usage = func() { printDoctorUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, wrapParseError(err)
	}
	if err := f.common.validate(); err != nil {
		return nil, nil, err
	}
	if f.json && f.yaml {
		return nil, nil, ErrConflictingFormats
	}

	return f, fs.Args(), nil
}

// validate rejects flag combinations that cannot both apply.
func (f *commonFlags) validate() error {
	if f.verbose && f.quiet {
		return fmt.Errorf("%w: --verbose and --quiet", ErrConflictingFlags)
	}
	return nil
}

// wrapParseError tags pflag errors with ErrInvalidFlags, leaving ErrHelp intact.
func wrapParseError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
}
