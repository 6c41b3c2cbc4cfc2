package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pkg1 [command] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  hello      Load resources and print them (default)")
	fmt.Fprintln(w, "  doctor     Check installation and bundled resources")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'pkg1 help <command>' for details on a specific command.")
}

// printCommonFlags prints the flags shared by hello and doctor.
func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --prefix <dir>        Installation prefix (default: from executable)")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory overriding bundled resources")
	fmt.Fprintln(w, "      --log-level <s>       Log level: debug, info, warn, error")
	fmt.Fprintln(w, "      --log-format <s>      Log format: text, json")
	fmt.Fprintln(w, "  -v, --verbose             Log debug details")
	fmt.Fprintln(w, "  -q, --quiet               Only log errors")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  PKG1_PREFIX, PKG1_ASSET_PATH, PKG1_LOG_LEVEL, PKG1_LOG_FORMAT")
	fmt.Fprintln(w, "  Flags take precedence over environment variables.")
}

// printHelloUsage prints usage for the hello command.
func printHelloUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pkg1 [hello] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configured greeting, the bundled package data and the")
	fmt.Fprintln(w, "system data file from <prefix>/data/data1.dat, one per line.")
	fmt.Fprintln(w, "A missing system data file prints a warning and a placeholder.")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pkg1 doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Report the installation prefix, the system data file and the")
	fmt.Fprintln(w, "bundled resources. Exits 1 when bundled resources are broken.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "      --json                Output as JSON")
	fmt.Fprintln(w, "      --yaml                Output as YAML")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// runHelp prints help for the named command, or the main usage.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "hello":
		printHelloUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: pkg1 version")
	case "help":
		printUsage(env.Stdout)
	default:
		fmt.Fprintf(env.Stderr, "%v: %q\n", ErrUnknownCommand, args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
