// Package gateways defines interfaces for external service adapters.
package gateways

import (
	"context"

	"titlectl/internal/domain/entities"
)

// InventoryGateway defines operations against the remote device-management
// inventory.
type InventoryGateway interface {
	// GetAuthToken obtains a fresh bearer token from the credential provider
	GetAuthToken(ctx context.Context) (string, error)

	// FindAppsByTrackingID returns every inventory entry whose tracking ID matches
	FindAppsByTrackingID(ctx context.Context, token, trackingID string) ([]entities.RemoteApp, error)

	// DeleteApp removes a single inventory entry by its remote ID
	DeleteApp(ctx context.Context, token, appID string) error
}

// Notifier delivers outbound chat-webhook notifications
type Notifier interface {
	// SendMessage posts a titled message to the configured webhook
	SendMessage(ctx context.Context, title, text string) error
}
