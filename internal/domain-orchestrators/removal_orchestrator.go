// Package orchestrators coordinates complex workflows across multiple domain services.
package orchestrators

import (
	"context"
	"fmt"
	"strings"
	"time"

	"titlectl/internal/domain/entities"
	"titlectl/internal/domain/interfaces"
	"titlectl/internal/domain/interfaces/gateways"
	"titlectl/internal/domain/interfaces/repositories"
	"titlectl/internal/domain/services"
)

// ScriptRunner interface for regenerating a label's metadata on disk
type ScriptRunner interface {
	RunLabelScript(ctx context.Context, label string) *entities.ScriptResult
}

// RemovalOrchestrator drives the decommission workflow for one managed
// title: regenerate its metadata, find every matching remote inventory
// entry, delete them best-effort, and reconcile local marker state.
type RemovalOrchestrator struct {
	titles    repositories.TitleRepository
	inventory gateways.InventoryGateway
	runner    ScriptRunner
	locks     *services.LabelLocks
	logger    interfaces.Logger
}

// NewRemovalOrchestrator creates a new removal orchestrator
func NewRemovalOrchestrator(
	titles repositories.TitleRepository,
	inventory gateways.InventoryGateway,
	runner ScriptRunner,
	locks *services.LabelLocks,
	logger interfaces.Logger,
) *RemovalOrchestrator {
	return &RemovalOrchestrator{
		titles:    titles,
		inventory: inventory,
		runner:    runner,
		locks:     locks,
		logger:    logger,
	}
}

// RemoveAutomation decommissions a managed title end to end. Stages run
// strictly in order; script failure, a missing tracking ID, authentication
// failure, and query failure are fatal and return an error. Individual
// delete failures are not: they are recorded in the result and the loop
// continues, so total removal is best effort across all matches.
func (o *RemovalOrchestrator) RemoveAutomation(ctx context.Context, labelFolderName string) (*entities.RemovalResult, error) {
	if !o.locks.TryAcquire(labelFolderName) {
		return nil, fmt.Errorf("another workflow is already running for %s", labelFolderName)
	}
	defer o.locks.Release(labelFolderName)

	startTime := time.Now()
	label := labelFromFolder(labelFolderName)
	result := &entities.RemovalResult{Label: label}

	// Step 1: Regenerate the title metadata on disk
	scriptResult := o.runner.RunLabelScript(ctx, label)
	if !scriptResult.Success {
		o.logger.Error("metadata regeneration failed",
			interfaces.F("label", label),
			interfaces.F("exit_code", scriptResult.ExitCode),
			interfaces.F("stderr", scriptResult.Stderr))
		return nil, fmt.Errorf("metadata regeneration failed for %s (exit %d): %v",
			label, scriptResult.ExitCode, scriptResult.Error)
	}

	// Step 2: Extract the regenerated descriptor
	app, err := o.titles.GetTitle(ctx, labelFolderName)
	if err != nil {
		o.logger.Error("failed to load title descriptor",
			interfaces.F("title", labelFolderName), interfaces.F("error", err))
		return nil, fmt.Errorf("failed to load title descriptor: %w", err)
	}
	if app.TrackingID == "" {
		// Without a tracking ID nothing is safely deletable remotely.
		o.logger.Error("title has no tracking ID", interfaces.F("title", labelFolderName))
		return nil, fmt.Errorf("title %s has no tracking ID", labelFolderName)
	}
	result.TrackingID = app.TrackingID

	// Step 3: Authenticate
	token, err := o.inventory.GetAuthToken(ctx)
	if err != nil {
		o.logger.Error("authentication failed", interfaces.F("error", err))
		return nil, fmt.Errorf("authentication failed: %w", err)
	}

	// Step 4: Query the remote inventory
	remoteApps, err := o.inventory.FindAppsByTrackingID(ctx, token, app.TrackingID)
	if err != nil {
		o.logger.Error("inventory query failed",
			interfaces.F("tracking_id", app.TrackingID), interfaces.F("error", err))
		return nil, fmt.Errorf("inventory query failed: %w", err)
	}
	o.logger.Info("found remote entries",
		interfaces.F("tracking_id", app.TrackingID), interfaces.F("count", len(remoteApps)))

	// Step 5: Delete every match, sequentially and in query order. The
	// token is re-fetched per deletion, trading a little latency for
	// freshness on long delete loops.
	for _, remote := range remoteApps {
		deleteToken, err := o.inventory.GetAuthToken(ctx)
		if err != nil {
			o.logger.Error("re-authentication failed",
				interfaces.F("app_id", remote.ID), interfaces.F("error", err))
			result.Failed = append(result.Failed, entities.DeleteFailure{
				RemoteID: remote.ID, Reason: err.Error(),
			})
			continue
		}

		if err := o.inventory.DeleteApp(ctx, deleteToken, remote.ID); err != nil {
			o.logger.Error("failed to delete remote entry",
				interfaces.F("app_id", remote.ID), interfaces.F("error", err))
			result.Failed = append(result.Failed, entities.DeleteFailure{
				RemoteID: remote.ID, Reason: err.Error(),
			})
			continue
		}

		o.logger.Info("deleted remote entry", interfaces.F("app_id", remote.ID))
		result.Deleted = append(result.Deleted, remote.ID)
	}

	// Step 6: Reconcile the upload marker. Absence of the directory or the
	// marker is a silent no-op.
	if _, ok := o.titles.TitleDir(labelFolderName); ok && o.titles.HasUploadMarker(labelFolderName) {
		if err := o.titles.ClearUploadMarker(labelFolderName); err != nil {
			o.logger.Warn("failed to clear upload marker",
				interfaces.F("title", labelFolderName), interfaces.F("error", err))
		} else {
			result.MarkerCleared = true
		}
	}

	result.Duration = time.Since(startTime)
	o.logger.Info("removal completed",
		interfaces.F("label", label),
		interfaces.F("deleted", len(result.Deleted)),
		interfaces.F("failed", len(result.Failed)))
	return result, nil
}

// labelFromFolder strips the tracking-ID suffix from a title folder name.
// Labels themselves may contain underscores; tracking IDs never do.
func labelFromFolder(folderName string) string {
	idx := strings.LastIndex(folderName, "_")
	if idx <= 0 {
		return folderName
	}
	return folderName[:idx]
}
