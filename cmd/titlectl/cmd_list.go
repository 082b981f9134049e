package main

import (
	"context"
	"flag"
	"fmt"
	"os"
)

func runList(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	var (
		settingsPath = fs.String("settings", "settings.yaml", "Path to settings file")
		debug        = fs.Bool("debug", false, "Enable debug logging")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: titlectl list [options]

List all managed titles under the managed-titles root.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  titlectl list
`)
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	env, err := buildEnv(*settingsPath, *debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	folders, err := env.titles.ListTitles(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing titles: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Managed titles (%d total):\n\n", len(folders))

	for _, folder := range folders {
		app, err := env.titles.GetTitle(ctx, folder)
		if err != nil {
			fmt.Printf("  %-40s (unreadable: %v)\n", folder, err)
			continue
		}

		marker := ""
		if env.titles.HasUploadMarker(folder) {
			marker = "  [upload pending]"
		}
		fmt.Printf("  %-20s %s\n", app.LabelName, app.DisplayName)
		fmt.Printf("  %-20s Version: %s  Type: %s  Arch: %s%s\n",
			"", app.ActualVersion, app.Type, app.Arch, marker)
		fmt.Println()
	}
}
