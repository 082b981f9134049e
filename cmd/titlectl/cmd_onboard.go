package main

import (
	"context"
	"flag"
	"fmt"
	"os"
)

func runOnboard(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("onboard", flag.ExitOnError)
	var (
		settingsPath = fs.String("settings", "settings.yaml", "Path to settings file")
		displayName  = fs.String("display", "", "Display name of the title (defaults to the label)")
		debug        = fs.Bool("debug", false, "Enable debug logging")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: titlectl onboard [options] <label>

Register a new managed title: mint a tracking ID, create the title folder
under the managed-titles root, and write a skeleton metadata file.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  titlectl onboard --display "Mozilla Firefox" firefox
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

	label := fs.Arg(0)
	display := *displayName
	if display == "" {
		display = label
	}

	env, err := buildEnv(*settingsPath, *debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	trackingID, folderName, err := env.titles.Onboard(ctx, label, display)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Onboarded %s\n", label)
	fmt.Printf("  tracking ID: %s\n", trackingID)
	fmt.Printf("  folder:      %s\n", folderName)
}
