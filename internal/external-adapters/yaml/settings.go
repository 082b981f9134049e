package yaml

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// settingsFile represents the raw YAML structure of the settings file
type settingsFile struct {
	ManagedTitlesRoot string    `yaml:"managed_titles_root"`
	CacheRoot         string    `yaml:"cache_root"`
	TenantID          string    `yaml:"tenant_id"`
	ClientID          string    `yaml:"client_id"`
	ClientSecret      string    `yaml:"client_secret"`
	AuthEndpoint      string    `yaml:"auth_endpoint"`
	InventoryEndpoint string    `yaml:"inventory_endpoint"`
	WebhookURL        string    `yaml:"webhook_url"`
	CertExpiry        time.Time `yaml:"cert_expiry"`
	SecretExpiry      time.Time `yaml:"secret_expiry"`
	ExpiryWarningDays int       `yaml:"expiry_warning_days"`
}

// Settings is an injected key-value configuration service backed by a single
// YAML file. Reads and writes go through typed accessors; nothing is
// persisted until Save is called. All access is guarded by a mutex so
// concurrent workflows cannot interleave a read-modify-write.
type Settings struct {
	mu   sync.Mutex
	path string
	data settingsFile
}

// LoadSettings reads the settings file at path. A missing file yields
// defaults; a malformed file is an error.
func LoadSettings(path string) (*Settings, error) {
	s := &Settings{path: path}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path is the configured settings location
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &s.data); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	return s, nil
}

// Save persists the current settings to disk, creating parent directories as
// needed.
func (s *Settings) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := yaml.Marshal(&s.data)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create settings directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// ManagedTitlesRoot returns the managed-titles directory, defaulting to
// "managed-titles".
func (s *Settings) ManagedTitlesRoot() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data.ManagedTitlesRoot == "" {
		return "managed-titles"
	}
	return s.data.ManagedTitlesRoot
}

// SetManagedTitlesRoot updates the managed-titles directory.
func (s *Settings) SetManagedTitlesRoot(root string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.ManagedTitlesRoot = root
}

// CacheRoot returns the artifact cache directory, defaulting to "cache".
func (s *Settings) CacheRoot() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data.CacheRoot == "" {
		return "cache"
	}
	return s.data.CacheRoot
}

// SetCacheRoot updates the artifact cache directory.
func (s *Settings) SetCacheRoot(root string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.CacheRoot = root
}

// TenantID returns the remote tenant identifier.
func (s *Settings) TenantID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.TenantID
}

// ClientID returns the API client identifier.
func (s *Settings) ClientID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.ClientID
}

// ClientSecret returns the API client secret.
func (s *Settings) ClientSecret() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.ClientSecret
}

// SetCredentials updates the remote API credentials.
func (s *Settings) SetCredentials(tenantID, clientID, clientSecret string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.TenantID = tenantID
	s.data.ClientID = clientID
	s.data.ClientSecret = clientSecret
}

// AuthEndpoint returns the token endpoint.
func (s *Settings) AuthEndpoint() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.AuthEndpoint
}

// InventoryEndpoint returns the remote inventory base URL.
func (s *Settings) InventoryEndpoint() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.InventoryEndpoint
}

// SetEndpoints updates the remote service endpoints.
func (s *Settings) SetEndpoints(authEndpoint, inventoryEndpoint string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.AuthEndpoint = authEndpoint
	s.data.InventoryEndpoint = inventoryEndpoint
}

// WebhookURL returns the outbound notification webhook URL.
func (s *Settings) WebhookURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.WebhookURL
}

// SetWebhookURL updates the outbound notification webhook URL.
func (s *Settings) SetWebhookURL(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.WebhookURL = url
}

// CertExpiry returns the tracked certificate expiration date.
func (s *Settings) CertExpiry() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.CertExpiry
}

// SecretExpiry returns the tracked client-secret expiration date.
func (s *Settings) SecretExpiry() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.SecretExpiry
}

// SetExpiryDates updates the tracked credential expiration dates.
func (s *Settings) SetExpiryDates(certExpiry, secretExpiry time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.CertExpiry = certExpiry
	s.data.SecretExpiry = secretExpiry
}

// ExpiryWarningDays returns the expiry warning threshold in days.
func (s *Settings) ExpiryWarningDays() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.ExpiryWarningDays
}
