package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()
	command := os.Args[1]

	// Dispatch to subcommand
	switch command {
	case "remove":
		runRemove(ctx, os.Args[2:])
	case "confirm":
		runConfirm(ctx, os.Args[2:])
	case "locate":
		runLocate(ctx, os.Args[2:])
	case "clean":
		runClean(ctx, os.Args[2:])
	case "onboard":
		runOnboard(ctx, os.Args[2:])
	case "list":
		runList(ctx, os.Args[2:])
	case "verify":
		runVerify(ctx, os.Args[2:])
	case "expiry":
		runExpiry(ctx, os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`titlectl - Managed software title lifecycle manager

Usage:
  titlectl <command> [options]

Commands:
  remove   Decommission a managed title and its remote inventory entries
  confirm  Poll the remote inventory until an uploaded version appears
  locate   Resolve the cached installer artifact for a title
  clean    Remove a title's temporary working directory
  onboard  Register a new managed title and mint its tracking ID
  list     List managed titles
  verify   Verify checksum and signature of a cached artifact
  expiry   Check credential expiration dates

Use "titlectl <command> --help" for more information about a command.`)
}
