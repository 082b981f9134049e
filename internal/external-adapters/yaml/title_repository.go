package yaml

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"titlectl/internal/domain/entities"
)

// uploadMarkerName is the sentinel file signaling a title was previously
// uploaded successfully. Its presence implies at least one prior successful
// upload; absence proves nothing.
const uploadMarkerName = ".uploaded"

// TitleRepository implements repositories.TitleRepository using YAML
// descriptor files under the managed-titles root. Title folders are named
// "<label>_<trackingID>".
type TitleRepository struct {
	titlesRoot string
	parser     *TitleParser
}

// NewTitleRepository creates a new YAML-based title repository
func NewTitleRepository(titlesRoot string) *TitleRepository {
	return &TitleRepository{
		titlesRoot: titlesRoot,
		parser:     NewTitleParser(),
	}
}

// GetTitle parses the regenerated metadata of a title folder into a
// ProcessedApp. The descriptor file is "<label>.yaml" inside the folder.
func (r *TitleRepository) GetTitle(_ context.Context, labelFolderName string) (*entities.ProcessedApp, error) {
	label := labelFromFolder(labelFolderName)
	filePath := filepath.Join(r.titlesRoot, labelFolderName, label+".yaml")

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("title descriptor not found: %s", labelFolderName)
	}

	return r.parser.ParseFile(filePath)
}

// ListTitles returns all managed title folder names
func (r *TitleRepository) ListTitles(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(r.titlesRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to read managed-titles directory: %w", err)
	}

	titles := make([]string, 0)
	for _, entry := range entries {
		// Title folders carry a "label_trackingID" name
		if !entry.IsDir() || !strings.Contains(entry.Name(), "_") {
			continue
		}
		titles = append(titles, entry.Name())
	}

	return titles, nil
}

// TitleDir returns the on-disk directory of a title folder and whether it
// exists
func (r *TitleRepository) TitleDir(labelFolderName string) (string, bool) {
	dir := filepath.Join(r.titlesRoot, labelFolderName)
	info, err := os.Stat(dir)
	return dir, err == nil && info.IsDir()
}

// HasUploadMarker reports whether the title's upload marker exists
func (r *TitleRepository) HasUploadMarker(labelFolderName string) bool {
	marker := filepath.Join(r.titlesRoot, labelFolderName, uploadMarkerName)
	info, err := os.Stat(marker)
	return err == nil && !info.IsDir()
}

// ClearUploadMarker removes the title's upload marker if present. An absent
// marker is a no-op, not an error.
func (r *TitleRepository) ClearUploadMarker(labelFolderName string) error {
	marker := filepath.Join(r.titlesRoot, labelFolderName, uploadMarkerName)

	if _, err := os.Stat(marker); os.IsNotExist(err) {
		return nil
	}
	if err := os.Remove(marker); err != nil {
		return fmt.Errorf("failed to remove upload marker: %w", err)
	}
	return nil
}

// Onboard creates a new managed title folder with a freshly minted tracking
// ID and a skeleton descriptor, returning the tracking ID and the folder
// name it is embedded in.
func (r *TitleRepository) Onboard(_ context.Context, label, displayName string) (string, string, error) {
	if label == "" {
		return "", "", fmt.Errorf("label must not be empty")
	}
	if displayName == "" {
		displayName = label
	}

	trackingID := uuid.New().String()
	folderName := fmt.Sprintf("%s_%s", label, trackingID)
	dir := filepath.Join(r.titlesRoot, folderName)

	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", "", fmt.Errorf("failed to create title directory: %w", err)
	}

	skeleton := yamlTitle{
		Label:       label,
		TrackingID:  trackingID,
		DisplayName: displayName,
	}
	data, err := yaml.Marshal(&skeleton)
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal title descriptor: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, label+".yaml"), data, 0600); err != nil {
		return "", "", fmt.Errorf("failed to write title descriptor: %w", err)
	}

	return trackingID, folderName, nil
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
