package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"titlectl/internal/domain/entities"
	"titlectl/internal/domain/services"
)

func runExpiry(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("expiry", flag.ExitOnError)
	var (
		settingsPath = fs.String("settings", "settings.yaml", "Path to settings file")
		notify       = fs.Bool("notify", false, "Post alerts to the configured webhook")
		debug        = fs.Bool("debug", false, "Enable debug logging")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: titlectl expiry [options]

Check the configured certificate and client-secret expiration dates and
report anything expired or inside the warning window.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  titlectl expiry
  titlectl expiry --notify
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

	checker := services.NewExpiryChecker(env.settings.ExpiryWarningDays())

	var alerts []entities.ExpiryAlert
	if a := checker.Check(entities.CredentialCertificate, env.settings.CertExpiry()); a != nil {
		alerts = append(alerts, *a)
	}
	if a := checker.Check(entities.CredentialClientSecret, env.settings.SecretExpiry()); a != nil {
		alerts = append(alerts, *a)
	}

	if len(alerts) == 0 {
		fmt.Println("All credentials within their validity window")
		return
	}

	expired := false
	for _, a := range alerts {
		msg := services.FormatAlert(a)
		fmt.Println(msg)
		if a.Expired {
			expired = true
		}

		if *notify {
			if err := env.notifier().SendMessage(ctx, "Credential expiry", msg); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: webhook notification failed: %v\n", err)
			}
		}
	}

	if expired {
		os.Exit(1)
	}
}
