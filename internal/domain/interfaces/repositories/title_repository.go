// Package repositories defines interfaces for data access layers.
package repositories

import (
	"context"

	"titlectl/internal/domain/entities"
)

// TitleRepository defines the interface for accessing managed-title
// definitions on disk. A title lives in a folder named "<label>_<trackingID>"
// under the managed-titles root.
type TitleRepository interface {
	// GetTitle parses the regenerated metadata of a title folder into a ProcessedApp
	GetTitle(ctx context.Context, labelFolderName string) (*entities.ProcessedApp, error)

	// ListTitles returns all managed title folder names
	ListTitles(ctx context.Context) ([]string, error)

	// TitleDir returns the on-disk directory of a title folder and whether it exists
	TitleDir(labelFolderName string) (string, bool)

	// HasUploadMarker reports whether the title was marked as uploaded before.
	// Absence is a best-effort signal only, not proof of no upload.
	HasUploadMarker(labelFolderName string) bool

	// ClearUploadMarker removes the upload marker; clearing an absent marker
	// is a no-op
	ClearUploadMarker(labelFolderName string) error
}
