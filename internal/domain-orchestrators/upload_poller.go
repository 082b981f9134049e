package orchestrators

import (
	"context"
	"time"

	"titlectl/internal/domain/entities"
	"titlectl/internal/domain/interfaces"
)

// InventoryQuerier is the one remote capability the poller depends on
type InventoryQuerier interface {
	FindAppsByTrackingID(ctx context.Context, token, trackingID string) ([]entities.RemoteApp, error)
}

const (
	defaultConfirmAttempts = 12
	defaultConfirmInterval = 3 * time.Second
)

// UploadPoller waits for the remote inventory to converge after an upload.
// The retry budget is bounded, so a poll always terminates.
type UploadPoller struct {
	inventory InventoryQuerier
	logger    interfaces.Logger
	attempts  int
	interval  time.Duration
	sleep     func(time.Duration)
}

// NewUploadPoller creates a poller with the default budget of 12 attempts at
// a fixed 3-second interval.
func NewUploadPoller(inventory InventoryQuerier, logger interfaces.Logger) *UploadPoller {
	return &UploadPoller{
		inventory: inventory,
		logger:    logger,
		attempts:  defaultConfirmAttempts,
		interval:  defaultConfirmInterval,
		sleep:     time.Sleep,
	}
}

// ConfirmUpload re-queries the remote inventory until an entry for the
// tracking ID reports exactly expectedVersion (string equality, no semantic
// comparison). On the first match it returns immediately with
// timedOut=false and the matching entries. When the budget is exhausted it
// returns timedOut=true together with the entries of the last successful
// query, so callers can report what was found. A query error counts as a
// failed attempt; it never aborts the poll.
func (p *UploadPoller) ConfirmUpload(ctx context.Context, trackingID, expectedVersion, token string) (bool, []entities.RemoteApp) {
	var lastSeen []entities.RemoteApp

	for attempt := 1; attempt <= p.attempts; attempt++ {
		if attempt > 1 {
			p.sleep(p.interval)
		}

		apps, err := p.inventory.FindAppsByTrackingID(ctx, token, trackingID)
		if err != nil {
			p.logger.Warn("upload confirmation query failed",
				interfaces.F("tracking_id", trackingID),
				interfaces.F("attempt", attempt),
				interfaces.F("error", err))
			continue
		}
		lastSeen = apps

		var matches []entities.RemoteApp
		for _, app := range apps {
			if app.PrimaryVersion == expectedVersion {
				matches = append(matches, app)
			}
		}
		if len(matches) > 0 {
			p.logger.Info("upload confirmed",
				interfaces.F("tracking_id", trackingID),
				interfaces.F("version", expectedVersion),
				interfaces.F("attempt", attempt))
			return false, matches
		}
	}

	p.logger.Warn("upload confirmation timed out",
		interfaces.F("tracking_id", trackingID),
		interfaces.F("version", expectedVersion),
		interfaces.F("attempts", p.attempts))
	return true, lastSeen
}
