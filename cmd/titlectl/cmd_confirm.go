package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	orchestrators "titlectl/internal/domain-orchestrators"
)

func runConfirm(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("confirm", flag.ExitOnError)
	var (
		settingsPath = fs.String("settings", "settings.yaml", "Path to settings file")
		version      = fs.String("version", "", "Version string to wait for (defaults to the title's recorded actual version)")
		debug        = fs.Bool("debug", false, "Enable debug logging")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: titlectl confirm [options] <label-folder>

Poll the remote inventory until an entry for the title's tracking ID reports
the expected version. The poll is bounded: twelve attempts three seconds
apart, then the last known remote state is reported.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  titlectl confirm firefox_8f14e45f-ceea-467f-a0e6-74f6bd6a2a01
  titlectl confirm --version 128.0.1 chrome_abc123
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

	app, err := env.titles.GetTitle(ctx, labelFolder)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if app.TrackingID == "" {
		fmt.Fprintf(os.Stderr, "Error: title %s has no tracking ID\n", labelFolder)
		os.Exit(1)
	}

	// The remote reports the version that was actually packaged and
	// uploaded, which may differ from the expected one.
	expected := *version
	if expected == "" {
		expected = app.ActualVersion
	}
	if expected == "" {
		expected = app.ExpectedVersion
	}
	if expected == "" {
		fmt.Fprintf(os.Stderr, "Error: no version recorded for the title; pass --version\n")
		os.Exit(1)
	}

	inventory := env.inventoryGateway()
	token, err := inventory.GetAuthToken(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: authentication failed: %v\n", err)
		os.Exit(1)
	}

	poller := orchestrators.NewUploadPoller(inventory, env.logger)
	timedOut, apps := poller.ConfirmUpload(ctx, app.TrackingID, expected, token)

	if timedOut {
		fmt.Printf("Version %s not confirmed for %s; last known remote state:\n", expected, app.LabelName)
		if len(apps) == 0 {
			fmt.Println("  (no remote entries found)")
		}
		for _, a := range apps {
			fmt.Printf("  %s  %s %s\n", a.ID, a.DisplayName, a.PrimaryVersion)
		}
		os.Exit(1)
	}

	fmt.Printf("Upload confirmed: %s %s\n", app.LabelName, expected)
	for _, a := range apps {
		fmt.Printf("  %s  %s %s\n", a.ID, a.DisplayName, a.PrimaryVersion)
	}
}
