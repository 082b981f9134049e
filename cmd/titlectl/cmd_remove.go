package main

import (
	"context"
	"flag"
	"fmt"
	"os"
)

func runRemove(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("remove", flag.ExitOnError)
	var (
		settingsPath = fs.String("settings", "settings.yaml", "Path to settings file")
		scriptsDir   = fs.String("scripts-dir", "scripts", "Path to label scripts directory")
		notify       = fs.Bool("notify", false, "Post a removal summary to the configured webhook")
		debug        = fs.Bool("debug", false, "Enable debug logging")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: titlectl remove [options] <label-folder>

Decommission a managed title: regenerate its metadata via the label script,
delete every matching remote inventory entry, and reconcile the local upload
marker. Individual remote deletions may fail without aborting the run.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  titlectl remove firefox_8f14e45f-ceea-467f-a0e6-74f6bd6a2a01
  titlectl remove --notify chrome_abc123
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

	labelFolder := fs.Arg(0)

	env, err := buildEnv(*settingsPath, *debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	orch := env.removalOrchestrator(*scriptsDir)

	result, err := orch.RemoveAutomation(ctx, labelFolder)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(result.Summary())
	for _, f := range result.Failed {
		fmt.Printf("  failed: %s (%s)\n", f.RemoteID, f.Reason)
	}

	if *notify {
		if err := env.notifier().SendMessage(ctx, "Title removed", result.Summary()); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: webhook notification failed: %v\n", err)
		}
	}

	if result.Partial() {
		os.Exit(1)
	}
}
