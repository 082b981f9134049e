// Package yaml provides YAML-based managed-title parsing, repository, and
// settings implementations.
package yaml

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"titlectl/internal/domain/entities"
)

// yamlTitle represents the raw YAML structure written by a label's
// regeneration script
type yamlTitle struct {
	Label           string `yaml:"label"`
	TrackingID      string `yaml:"tracking_id"`
	DisplayName     string `yaml:"display_name"`
	ExpectedVersion string `yaml:"expected_version"`
	ActualVersion   string `yaml:"actual_version"`
	DeploymentType  string `yaml:"deployment_type"`
	Architecture    string `yaml:"architecture"`
	SHA256          string `yaml:"sha256"`
}

// TitleParser parses YAML title descriptor files
type TitleParser struct{}

// NewTitleParser creates a new YAML parser
func NewTitleParser() *TitleParser {
	return &TitleParser{}
}

// ParseFile parses a YAML title descriptor into a ProcessedApp entity
func (p *TitleParser) ParseFile(filePath string) (*entities.ProcessedApp, error) {
	//nolint:gosec // G304: filePath is a title descriptor path from repository
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	return p.Parse(data)
}

// Parse parses YAML bytes into a ProcessedApp entity. The tracking ID may be
// absent; callers decide whether that is fatal for their workflow.
func (p *TitleParser) Parse(data []byte) (*entities.ProcessedApp, error) {
	var yt yamlTitle
	if err := yaml.Unmarshal(data, &yt); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Validate required fields
	if yt.Label == "" {
		return nil, fmt.Errorf("title descriptor must have a label")
	}
	if yt.DisplayName == "" {
		return nil, fmt.Errorf("title descriptor must have a display name")
	}

	deployType, err := convertDeploymentType(yt.DeploymentType)
	if err != nil {
		return nil, err
	}
	arch, err := convertArchitecture(yt.Architecture)
	if err != nil {
		return nil, err
	}

	return &entities.ProcessedApp{
		LabelName:       yt.Label,
		TrackingID:      yt.TrackingID,
		DisplayName:     yt.DisplayName,
		ExpectedVersion: yt.ExpectedVersion,
		ActualVersion:   yt.ActualVersion,
		Type:            deployType,
		Arch:            arch,
		SHA256:          yt.SHA256,
	}, nil
}

func convertDeploymentType(s string) (entities.DeploymentType, error) {
	switch s {
	case "dmg":
		return entities.DeploymentDMG, nil
	case "pkg", "":
		return entities.DeploymentPKG, nil
	case "pkg-unmanaged":
		return entities.DeploymentPKGUnmanaged, nil
	default:
		return "", fmt.Errorf("unsupported deployment_type: %s", s)
	}
}

func convertArchitecture(s string) (entities.Architecture, error) {
	switch s {
	case "arm64":
		return entities.ArchARM64, nil
	case "x86_64":
		return entities.ArchX86_64, nil
	case "universal", "":
		return entities.ArchUniversal, nil
	default:
		return "", fmt.Errorf("unsupported architecture: %s", s)
	}
}
