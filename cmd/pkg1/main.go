package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Sentinel errors for command dispatch.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUnexpectedArgs = errors.New("unexpected arguments")
)

func main() {
	configureMaxProcs(hasVerboseFlag(os.Args[1:]), os.Stderr)
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// configureMaxProcs sets GOMAXPROCS from the container CPU quota.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func configureMaxProcs(verbose bool, w io.Writer) {
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(w, format+"\n", args...)
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
}

// hasVerboseFlag reports whether -v or --verbose appears before flag parsing.
func hasVerboseFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-v" || arg == "--verbose" || arg == "--verbose=true" {
			return true
		}
	}
	return false
}

// runMain dispatches to a command and returns the process exit code.
func runMain(args []string, env *Environment) int {
	warnUnknownEnvVars(env.Stderr, env.Environ())

	cmd, rest := splitCommand(args)

	var err error
	switch cmd {
	case "hello":
		err = runHello(rest, env)
	case "doctor":
		return runDoctorCmd(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "pkg1 %s\n", Version)
		return ExitSuccess
	case "help":
		return runHelp(rest, env)
	default:
		fmt.Fprintln(env.Stderr, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd))
		printUsage(env.Stderr)
		return ExitUsage
	}

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err.Error()+hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// splitCommand returns the command name and its arguments.
// With no command, or when the first argument is a flag, the command is hello.
func splitCommand(args []string) (string, []string) {
	if len(args) < 2 {
		return "hello", nil
	}
	first := args[1]
	switch {
	case first == "-h" || first == "--help":
		return "help", args[2:]
	case strings.HasPrefix(first, "-"):
		return "hello", args[1:]
	default:
		return first, args[2:]
	}
}
