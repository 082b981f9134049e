package entities

import "time"

// ScriptResult contains the result of a label script run. Exit status and
// captured output let callers distinguish "script not found" from "script
// ran and reported failure".
type ScriptResult struct {
	Success  bool
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
	Error    error
}
