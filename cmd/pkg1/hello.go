package main

import (
	"fmt"
	"log/slog"
	"strings"

	pkgdata "github.com/alnah/go-pkgdata"
)

// runHello loads the resources once and prints them to stdout.
func runHello(args []string, env *Environment) error {
	flags, positional, err := parseHelloFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: %s", ErrUnexpectedArgs, strings.Join(positional, " "))
	}

	applyEnvConfig(loadEnvConfig(env.Getenv), &flags.common)

	logger, err := newLogger(flags.common, env.Stderr)
	if err != nil {
		return err
	}

	res, err := pkgdata.Load(loadOptions(flags.common, logger)...)
	if err != nil {
		return err
	}
	logger.Debug("resources loaded",
		"prefix", res.Prefix(),
		"system_data", res.SystemDataFile(),
		"asset_path", flags.common.assetPath)

	return res.Hello(env.Stdout)
}

// loadOptions translates flags into pkgdata options.
func loadOptions(f commonFlags, logger *slog.Logger) []pkgdata.Option {
	opts := []pkgdata.Option{pkgdata.WithLogger(logger)}
	if f.assetPath != "" {
		opts = append(opts, pkgdata.WithAssetPath(f.assetPath))
	}
	if f.prefix != "" {
		opts = append(opts, pkgdata.WithPrefix(f.prefix))
	}
	return opts
}
