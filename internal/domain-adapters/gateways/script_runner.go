package gateways

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"titlectl/internal/domain/entities"
)

// ScriptRunner executes a label's metadata regeneration script. Each label
// has one script at "<scriptsDir>/<label>.sh" that rebuilds the title's
// descriptor on disk.
type ScriptRunner struct {
	scriptsDir     string
	defaultTimeout time.Duration
}

// NewScriptRunner creates a script runner for the given scripts directory
func NewScriptRunner(scriptsDir string) *ScriptRunner {
	return &ScriptRunner{
		scriptsDir:     scriptsDir,
		defaultTimeout: 10 * time.Minute,
	}
}

// RunLabelScript regenerates the on-disk metadata for a label by running
// its script under /bin/sh.
func (r *ScriptRunner) RunLabelScript(ctx context.Context, label string) *entities.ScriptResult {
	startTime := time.Now()
	result := &entities.ScriptResult{ExitCode: -1}

	scriptPath := filepath.Join(r.scriptsDir, label+".sh")
	if _, err := os.Stat(scriptPath); err != nil {
		result.Error = fmt.Errorf("label script not found: %w", err)
		return result
	}

	execCtx, cancel := context.WithTimeout(ctx, r.defaultTimeout)
	defer cancel()

	// Use /bin/sh for maximum compatibility
	//nolint:gosec // G204: Script execution is intentional, scripts live in a controlled directory
	cmd := exec.CommandContext(execCtx, "/bin/sh", scriptPath)
	cmd.Dir = r.scriptsDir
	cmd.Env = append(os.Environ(), "LABEL="+label)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result.Duration = time.Since(startTime)
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()

	if err != nil {
		result.Error = err
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else if execCtx.Err() == context.DeadlineExceeded {
			result.Error = fmt.Errorf("script execution timeout after %v", r.defaultTimeout)
		}
		return result
	}

	result.Success = true
	result.ExitCode = 0
	return result
}
