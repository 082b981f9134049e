package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"titlectl/internal/domain/services"
)

func runLocate(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("locate", flag.ExitOnError)
	var (
		settingsPath = fs.String("settings", "settings.yaml", "Path to settings file")
		debug        = fs.Bool("debug", false, "Enable debug logging")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: titlectl locate [options] <label-folder>

Resolve the cached installer artifact for a managed title and print its path.
Exits non-zero when the artifact has not been cached yet.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  titlectl locate firefox_8f14e45f-ceea-467f-a0e6-74f6bd6a2a01
`)
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: label folder name is required\n\n")
		fs.Usage()
		os.Exit(1)
	}

	env, err := buildEnv(*settingsPath, *debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	app, err := env.titles.GetTitle(ctx, fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	detector := services.NewDualArchDetector(env.settings.ManagedTitlesRoot())
	locator := services.NewCacheLocator(env.settings.CacheRoot(), detector)

	path, err := locator.LocateCachedArtifact(app)
	if errors.Is(err, services.ErrArtifactNotCached) {
		fmt.Fprintf(os.Stderr, "Artifact for %s %s is not cached\n", app.LabelName, app.ExpectedVersion)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(path)
}
