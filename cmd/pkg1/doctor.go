package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"

	flag "github.com/spf13/pflag"

	pkgdata "github.com/alnah/go-pkgdata"
	"github.com/alnah/go-pkgdata/internal/assets"
	"github.com/alnah/go-pkgdata/internal/fileutil"
	"github.com/alnah/go-pkgdata/internal/hints"
	"github.com/alnah/go-pkgdata/internal/yamlutil"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status    string       `json:"status" yaml:"status"` // "ready", "warnings", "errors"
	Prefix    prefixInfo   `json:"prefix" yaml:"prefix"`
	Resources resourceInfo `json:"resources" yaml:"resources"`
	Env       envInfo      `json:"environment" yaml:"environment"`
	Warnings  []string     `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Errors    []string     `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// prefixInfo holds installation prefix and system data results.
type prefixInfo struct {
	Path             string `json:"path" yaml:"path"`
	Source           string `json:"source" yaml:"source"` // "configured" or "executable"
	Exists           bool   `json:"exists" yaml:"exists"`
	DevBuild         bool   `json:"dev_build" yaml:"dev_build"`
	SystemData       string `json:"system_data" yaml:"system_data"`
	SystemDataExists bool   `json:"system_data_exists" yaml:"system_data_exists"`
	SystemDataLoaded bool   `json:"system_data_loaded" yaml:"system_data_loaded"`
}

// resourceInfo holds bundled resource results.
type resourceInfo struct {
	AssetPath  string   `json:"asset_path,omitempty" yaml:"asset_path,omitempty"`
	Bundled    []string `json:"bundled" yaml:"bundled"`
	ConfigKeys []string `json:"config_keys,omitempty" yaml:"config_keys,omitempty"`
	Greeting   bool     `json:"greeting" yaml:"greeting"`
}

// envInfo holds runtime platform details.
type envInfo struct {
	OS        string `json:"os" yaml:"os"`
	Arch      string `json:"arch" yaml:"arch"`
	GoVersion string `json:"go_version" yaml:"go_version"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found, 2 = usage.
func runDoctorCmd(args []string, env *Environment) int {
	flags, positional, err := parseDoctorFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}
	if len(positional) > 0 {
		fmt.Fprintln(env.Stderr, fmt.Errorf("%w: %s", ErrUnexpectedArgs, strings.Join(positional, " ")))
		return ExitUsage
	}

	applyEnvConfig(loadEnvConfig(env.Getenv), &flags.common)

	result := runDoctor(flags.common)

	if err := writeDoctorResult(env.Stdout, result, flags); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitGeneral
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// writeDoctorResult renders result in the selected format.
func writeDoctorResult(w io.Writer, result *doctorResult, flags *doctorFlags) error {
	switch {
	case flags.json:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("writing doctor report: %w", err)
		}
	case flags.yaml:
		out, err := yamlutil.Marshal(result)
		if err != nil {
			return fmt.Errorf("encoding doctor report: %w", err)
		}
		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("writing doctor report: %w", err)
		}
	default:
		var buf bytes.Buffer
		printDoctorResult(&buf, result)
		if _, err := w.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("writing doctor report: %w", err)
		}
	}
	return nil
}

// runDoctor performs all diagnostic checks.
func runDoctor(f commonFlags) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:        runtime.GOOS,
			Arch:      runtime.GOARCH,
			GoVersion: runtime.Version(),
		},
	}

	checkBundled(result, f)
	checkResources(result, f)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkBundled lists the resources compiled into the binary.
func checkBundled(result *doctorResult, f commonFlags) {
	result.Resources.AssetPath = f.assetPath

	names, err := assets.NewEmbeddedLoader().List()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot list bundled resources: %v", err))
		return
	}
	result.Resources.Bundled = names
}

// checkResources runs the same load as hello, without printing.
func checkResources(result *doctorResult, f commonFlags) {
	result.Prefix.Source = "executable"
	if f.prefix != "" {
		result.Prefix.Source = "configured"
	}

	res, err := pkgdata.Load(loadOptions(f, slog.New(slog.DiscardHandler))...)
	if err != nil {
		result.Errors = append(result.Errors, err.Error()+hintFor(err))
		return
	}

	result.Resources.ConfigKeys = res.ConfigKeys()
	if _, err := res.Greeting(); err != nil {
		result.Errors = append(result.Errors, err.Error()+hintFor(err))
	} else {
		result.Resources.Greeting = true
	}

	result.Prefix.Path = res.Prefix()
	result.Prefix.Exists = fileutil.DirExists(res.Prefix())
	result.Prefix.DevBuild = hints.IsDevBuild(res.Prefix())
	result.Prefix.SystemData = res.SystemDataFile()
	result.Prefix.SystemDataExists = fileutil.FileExists(res.SystemDataFile())
	result.Prefix.SystemDataLoaded = res.SystemDataErr() == nil

	if err := res.SystemDataErr(); err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("System data unavailable: %v%s", err, hints.ForSystemData(res.Prefix(), pkgdata.SystemDataPath)))
	}
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "pkg1 doctor")
	fmt.Fprintln(w)

	// Prefix section
	fmt.Fprintln(w, "Installation prefix")
	switch {
	case r.Prefix.Path == "":
		fmt.Fprintln(w, "  [WARN] Path: unresolved")
	case r.Prefix.Exists:
		fmt.Fprintf(w, "  [OK] Path: %s (%s)\n", r.Prefix.Path, r.Prefix.Source)
	default:
		fmt.Fprintf(w, "  [WARN] Path: %s (%s, does not exist)\n", r.Prefix.Path, r.Prefix.Source)
	}
	if r.Prefix.DevBuild {
		fmt.Fprintln(w, "  [WARN] Running from a go build directory")
	}
	if r.Prefix.SystemDataLoaded {
		fmt.Fprintf(w, "  [OK] System data: %s\n", r.Prefix.SystemData)
	} else if r.Prefix.SystemData != "" {
		state := "missing"
		if r.Prefix.SystemDataExists {
			state = "unreadable"
		}
		fmt.Fprintf(w, "  [WARN] System data: %s (%s)\n", r.Prefix.SystemData, state)
	}
	fmt.Fprintln(w)

	// Resources section
	fmt.Fprintln(w, "Bundled resources")
	if r.Resources.AssetPath != "" {
		fmt.Fprintf(w, "  [OK] Overrides from: %s\n", r.Resources.AssetPath)
	}
	for _, name := range r.Resources.Bundled {
		fmt.Fprintf(w, "  [OK] %s\n", name)
	}
	if len(r.Resources.ConfigKeys) > 0 {
		fmt.Fprintf(w, "  [OK] Config keys: %s\n", strings.Join(r.Resources.ConfigKeys, ", "))
	}
	if r.Resources.Greeting {
		fmt.Fprintln(w, "  [OK] Greeting: present")
	} else {
		fmt.Fprintln(w, "  [ERROR] Greeting: missing")
	}
	fmt.Fprintln(w)

	// Environment section
	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s (%s)\n", r.Env.OS, r.Env.Arch, r.Env.GoVersion)
	fmt.Fprintln(w)

	// Warnings
	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	// Errors
	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	// Final status
	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
