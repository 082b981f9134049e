package yaml

import (
	"strings"
	"testing"

	"titlectl/internal/domain/entities"
)

func TestParseTitle(t *testing.T) {
	parser := NewTitleParser()

	data := []byte(`
label: firefox
tracking_id: abc123
display_name: Firefox
expected_version: "128.0"
actual_version: "128.0.1"
deployment_type: dmg
architecture: arm64
sha256: deadbeef
`)

	app, err := parser.Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if app.LabelName != "firefox" {
		t.Errorf("LabelName = %q, want firefox", app.LabelName)
	}
	if app.TrackingID != "abc123" {
		t.Errorf("TrackingID = %q, want abc123", app.TrackingID)
	}
	if app.ExpectedVersion != "128.0" || app.ActualVersion != "128.0.1" {
		t.Errorf("versions = %q/%q, want 128.0/128.0.1", app.ExpectedVersion, app.ActualVersion)
	}
	if app.Type != entities.DeploymentDMG {
		t.Errorf("Type = %q, want dmg", app.Type)
	}
	if app.Arch != entities.ArchARM64 {
		t.Errorf("Arch = %q, want arm64", app.Arch)
	}
}

func TestParseTitleDefaults(t *testing.T) {
	parser := NewTitleParser()

	// Deployment type defaults to pkg, architecture to universal, and a
	// missing tracking ID is not a parse error.
	app, err := parser.Parse([]byte("label: slack\ndisplay_name: Slack\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if app.TrackingID != "" {
		t.Errorf("TrackingID = %q, want empty", app.TrackingID)
	}
	if app.Type != entities.DeploymentPKG {
		t.Errorf("Type = %q, want pkg default", app.Type)
	}
	if app.Arch != entities.ArchUniversal {
		t.Errorf("Arch = %q, want universal default", app.Arch)
	}
}

func TestParseTitleValidation(t *testing.T) {
	parser := NewTitleParser()

	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing label",
			yaml:    "display_name: Firefox\n",
			wantErr: "must have a label",
		},
		{
			name:    "missing display name",
			yaml:    "label: firefox\n",
			wantErr: "must have a display name",
		},
		{
			name:    "unknown deployment type",
			yaml:    "label: firefox\ndisplay_name: Firefox\ndeployment_type: msi\n",
			wantErr: "unsupported deployment_type",
		},
		{
			name:    "unknown architecture",
			yaml:    "label: firefox\ndisplay_name: Firefox\narchitecture: riscv\n",
			wantErr: "unsupported architecture",
		},
		{
			name:    "malformed yaml",
			yaml:    "label: [unclosed",
			wantErr: "failed to parse YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}
