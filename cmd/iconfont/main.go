package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-iconfont/internal/config"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	flags, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(ExitSuccess)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitUsage)
	}

	if flags.version {
		fmt.Println("iconfont " + Version)
		os.Exit(ExitSuccess)
	}

	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	cfg := config.Default()
	if flags.configName != "" {
		cfg, err = config.Load(flags.configName)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitCodeFor(err))
		}
	}
	mergeFlags(cfg, flags)

	svc, in := buildService(cfg)
	defer func() {
		if err := svc.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "iconfont: closing service: %v\n", err)
		}
	}()

	if flags.verbose {
		fmt.Fprintf(os.Stderr, "Generating %q from %s into %s\n", in.FontName, in.SVGPattern, in.OutputDir)
	}

	if err := run(context.Background(), svc, in, flags.strict); err != nil {
		// Failures were already logged by the service; only the exit code
		// changes under --strict.
		os.Exit(exitCodeFor(err))
	}
}
