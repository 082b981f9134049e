package yaml

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadSettingsMissingFileYieldsDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "settings.yaml"))
	if err != nil {
		t.Fatalf("LoadSettings() error: %v", err)
	}

	if got := s.ManagedTitlesRoot(); got != "managed-titles" {
		t.Errorf("ManagedTitlesRoot() = %q, want default", got)
	}
	if got := s.CacheRoot(); got != "cache" {
		t.Errorf("CacheRoot() = %q, want default", got)
	}
}

func TestSettingsSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "settings.yaml")

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error: %v", err)
	}

	certExpiry := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	s.SetManagedTitlesRoot("/srv/titles")
	s.SetCredentials("tenant-1", "client-1", "s3cret")
	s.SetEndpoints("https://login.example.com/token", "https://inventory.example.com")
	s.SetWebhookURL("https://hooks.example.com/abc")
	s.SetExpiryDates(certExpiry, time.Time{})

	if err := s.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("reload error: %v", err)
	}
	if loaded.ManagedTitlesRoot() != "/srv/titles" {
		t.Errorf("ManagedTitlesRoot() = %q after reload", loaded.ManagedTitlesRoot())
	}
	if loaded.TenantID() != "tenant-1" || loaded.ClientID() != "client-1" || loaded.ClientSecret() != "s3cret" {
		t.Error("credentials did not survive the round trip")
	}
	if loaded.AuthEndpoint() != "https://login.example.com/token" {
		t.Errorf("AuthEndpoint() = %q after reload", loaded.AuthEndpoint())
	}
	if !loaded.CertExpiry().Equal(certExpiry) {
		t.Errorf("CertExpiry() = %v, want %v", loaded.CertExpiry(), certExpiry)
	}
	if !loaded.SecretExpiry().IsZero() {
		t.Errorf("SecretExpiry() = %v, want zero", loaded.SecretExpiry())
	}
}

func TestLoadSettingsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("tenant_id: [unclosed"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadSettings(path); err == nil {
		t.Error("expected error for malformed settings file")
	}
}
