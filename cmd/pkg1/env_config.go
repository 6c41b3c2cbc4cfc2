package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/alnah/go-pkgdata/internal/hints"
)

// envConfig holds configuration from environment variables.
type envConfig struct {
	Prefix    string // PKG1_PREFIX: installation prefix
	AssetPath string // PKG1_ASSET_PATH: resource override directory
	LogLevel  string // PKG1_LOG_LEVEL: debug, info, warn, error
	LogFormat string // PKG1_LOG_FORMAT: text, json
}

// knownEnvVars lists valid PKG1_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	hints.PrefixEnvVar: true,
	"PKG1_ASSET_PATH":  true,
	"PKG1_LOG_LEVEL":   true,
	"PKG1_LOG_FORMAT":  true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(getenv func(string) string) *envConfig {
	return &envConfig{
		Prefix:    getenv(hints.PrefixEnvVar),
		AssetPath: getenv("PKG1_ASSET_PATH"),
		LogLevel:  getenv("PKG1_LOG_LEVEL"),
		LogFormat: getenv("PKG1_LOG_FORMAT"),
	}
}

// applyEnvConfig fills flags left empty from the environment.
// Precedence: CLI flags > env vars > defaults.
func applyEnvConfig(env *envConfig, f *commonFlags) {
	if env.Prefix != "" && f.prefix == "" {
		f.prefix = env.Prefix
	}
	if env.AssetPath != "" && f.assetPath == "" {
		f.assetPath = env.AssetPath
	}
	if env.LogLevel != "" && f.logLevel == "" {
		f.logLevel = env.LogLevel
	}
	if env.LogFormat != "" && f.logFormat == "" {
		f.logFormat = env.LogFormat
	}
}

// warnUnknownEnvVars writes warnings for unrecognized PKG1_* variables.
// Helps catch typos like PKG1_PREFX.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	var unknown []string
	for _, env := range environ {
		if strings.HasPrefix(env, "PKG1_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				unknown = append(unknown, name)
			}
		}
	}
	if len(unknown) == 0 {
		return
	}

	slices.Sort(unknown)
	for _, name := range unknown {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
	fmt.Fprintln(w, strings.TrimPrefix(hints.ForUnknownEnv(knownEnvNames()), "\n"))
}

// knownEnvNames returns the recognized variable names, sorted.
func knownEnvNames() []string {
	names := make([]string, 0, len(knownEnvVars))
	for name := range knownEnvVars {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
