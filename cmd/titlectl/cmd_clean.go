package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"titlectl/internal/domain/services"
)

func runClean(_ context.Context, args []string) {
	fs := flag.NewFlagSet("clean", flag.ExitOnError)
	var (
		settingsPath = fs.String("settings", "settings.yaml", "Path to settings file")
		debug        = fs.Bool("debug", false, "Enable debug logging")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: titlectl clean [options] <label>

Remove a title's temporary working directory under the cache root. Safe to
run repeatedly; a missing directory is not an error.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  titlectl clean firefox
`)
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: label is required\n\n")
		fs.Usage()
		os.Exit(1)
	}

	env, err := buildEnv(*settingsPath, *debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cleaner := services.NewWorkspaceCleaner(env.settings.CacheRoot())
	if err := cleaner.CleanTmp(fs.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Cleaned tmp workspace for %s\n", fs.Arg(0))
}
