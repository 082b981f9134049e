// Package gateways implements adapters for external services consumed by
// the title lifecycle workflows.
package gateways

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"titlectl/internal/domain/entities"
)

const (
	// Max retries for transient errors
	maxRetries = 3
	// Initial backoff duration
	initialBackoff = 1 * time.Second
	// Max backoff duration
	maxBackoff = 32 * time.Second
)

// InventoryConfig holds the endpoints and credentials of the remote
// device-management tenant.
type InventoryConfig struct {
	AuthEndpoint      string
	InventoryEndpoint string
	TenantID          string
	ClientID          string
	ClientSecret      string
}

// HTTPInventoryGateway implements gateways.InventoryGateway against a
// Graph-style device-management API using client-credential bearer tokens.
type HTTPInventoryGateway struct {
	client    *http.Client
	config    InventoryConfig
	userAgent string
}

// NewHTTPInventoryGateway creates a new inventory gateway
func NewHTTPInventoryGateway(config InventoryConfig) *HTTPInventoryGateway {
	return &HTTPInventoryGateway{
		client: &http.Client{
			Timeout: 2 * time.Minute,
		},
		config:    config,
		userAgent: "titlectl/1.0",
	}
}

// isRetryableError checks if an HTTP status code is retryable
func isRetryableError(statusCode int) bool {
	switch statusCode {
	case http.StatusTooManyRequests, // 429
		http.StatusInternalServerError, // 500
		http.StatusBadGateway,          // 502
		http.StatusServiceUnavailable,  // 503
		http.StatusGatewayTimeout:      // 504
		return true
	default:
		return false
	}
}

// calculateBackoff returns the backoff duration for a retry attempt
func calculateBackoff(attempt int) time.Duration {
	backoff := float64(initialBackoff) * math.Pow(2, float64(attempt))
	if backoff > float64(maxBackoff) {
		backoff = float64(maxBackoff)
	}
	return time.Duration(backoff)
}

// doWithRetry executes an HTTP request with exponential backoff retry
func (g *HTTPInventoryGateway) doWithRetry(req *http.Request) (*http.Response, error) {
	var resp *http.Response
	var err error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(calculateBackoff(attempt - 1))

			// A consumed request body cannot be re-sent; rewind it so
			// retried POSTs carry their payload again.
			if req.GetBody != nil {
				body, bodyErr := req.GetBody()
				if bodyErr != nil {
					return nil, fmt.Errorf("failed to rewind request body for retry: %w", bodyErr)
				}
				req.Body = body
			}
		}

		resp, err = g.client.Do(req)
		if err != nil {
			// Network errors are retryable
			if attempt < maxRetries {
				continue
			}
			return nil, err
		}

		// Success or non-retryable error
		if !isRetryableError(resp.StatusCode) {
			return resp, nil
		}

		// Retryable error - close body and retry
		//nolint:errcheck,gosec // G104: Best effort close before retry
		resp.Body.Close()

		if attempt < maxRetries {
			continue
		}

		// Max retries reached
		return resp, nil
	}

	return resp, err
}

// oauthToken represents the token endpoint response
type oauthToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// remoteAppJSON represents the inventory API app entry format
type remoteAppJSON struct {
	ID             string `json:"id"`
	DisplayName    string `json:"display_name"`
	PrimaryVersion string `json:"primary_bundle_version"`
	TrackingID     string `json:"tracking_id"`
}

// GetAuthToken obtains a fresh bearer token with the client-credentials
// grant. Tokens are deliberately not cached; callers re-fetch per operation
// for freshness.
func (g *HTTPInventoryGateway) GetAuthToken(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", g.config.ClientID)
	form.Set("client_secret", g.config.ClientSecret)
	form.Set("tenant_id", g.config.TenantID)

	req, err := http.NewRequestWithContext(ctx, "POST", g.config.AuthEndpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.doWithRetry(req)
	if err != nil {
		return "", fmt.Errorf("failed to obtain auth token: %w", err)
	}
	//nolint:errcheck // Defer close on HTTP response body
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("authentication failed: status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var token oauthToken
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("token response contained no access token")
	}

	return token.AccessToken, nil
}

// FindAppsByTrackingID returns every inventory entry whose tracking ID
// matches, in the order the remote returns them.
func (g *HTTPInventoryGateway) FindAppsByTrackingID(ctx context.Context, token, trackingID string) ([]entities.RemoteApp, error) {
	reqURL := fmt.Sprintf("%s/apps?tracking_id=%s",
		strings.TrimSuffix(g.config.InventoryEndpoint, "/"), url.QueryEscape(trackingID))

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.doWithRetry(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory: %w", err)
	}
	//nolint:errcheck // Defer close on HTTP response body
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("inventory query failed: status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var results []remoteAppJSON
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode inventory response: %w", err)
	}

	apps := make([]entities.RemoteApp, len(results))
	for i, a := range results {
		apps[i] = entities.RemoteApp{
			ID:             a.ID,
			DisplayName:    a.DisplayName,
			PrimaryVersion: a.PrimaryVersion,
		}
	}

	return apps, nil
}

// DeleteApp removes a single inventory entry by its remote ID
func (g *HTTPInventoryGateway) DeleteApp(ctx context.Context, token, appID string) error {
	reqURL := fmt.Sprintf("%s/apps/%s",
		strings.TrimSuffix(g.config.InventoryEndpoint, "/"), url.PathEscape(appID))

	req, err := http.NewRequestWithContext(ctx, "DELETE", reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.doWithRetry(req)
	if err != nil {
		return fmt.Errorf("failed to delete app %s: %w", appID, err)
	}
	//nolint:errcheck // Defer close on HTTP response body
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("delete failed for app %s: status %d: %s", appID, resp.StatusCode, string(bodyBytes))
	}

	return nil
}
