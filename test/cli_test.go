package test_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"
)

// buildCLI builds the titlectl binary for testing
func buildCLI(t *testing.T) string {
	t.Helper()

	buildDir := filepath.Join("..", "test-dist", "cli-bin")
	if err := os.MkdirAll(buildDir, 0750); err != nil {
		t.Fatalf("Failed to create build dir: %v", err)
	}

	cliPath := filepath.Join(buildDir, "titlectl")

	// Check if already built
	if _, err := os.Stat(cliPath); err == nil {
		return cliPath
	}

	t.Log("Building titlectl CLI...")
	cmd := exec.Command("go", "build", "-o", cliPath, "../cmd/titlectl") // #nosec G204 -- test code with controlled input
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("Failed to build CLI: %v\nOutput: %s", err, output)
	}

	return cliPath
}

// runCLI executes the binary with args and returns combined output
func runCLI(t *testing.T, cliPath string, args ...string) (string, error) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, cliPath, args...) // #nosec G204 -- test code with controlled input
	output, err := cmd.CombinedOutput()
	return string(output), err
}

// writeSettings creates a settings file rooted in dir and returns its path
func writeSettings(t *testing.T, dir string) string {
	t.Helper()

	settingsPath := filepath.Join(dir, "settings.yaml")
	content := "managed_titles_root: " + filepath.Join(dir, "managed-titles") + "\n" +
		"cache_root: " + filepath.Join(dir, "cache") + "\n"
	if err := os.WriteFile(settingsPath, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write settings: %v", err)
	}
	return settingsPath
}

func TestCLI_Help(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping CLI test in short mode")
	}
	cliPath := buildCLI(t)

	output, err := runCLI(t, cliPath, "help")
	if err != nil {
		t.Fatalf("help failed: %v\nOutput: %s", err, output)
	}

	for _, command := range []string{"remove", "confirm", "locate", "clean", "onboard", "list", "verify", "expiry"} {
		if !strings.Contains(output, command) {
			t.Errorf("help output missing command %q", command)
		}
	}
}

func TestCLI_UnknownCommand(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping CLI test in short mode")
	}
	cliPath := buildCLI(t)

	output, err := runCLI(t, cliPath, "frobnicate")
	if err == nil {
		t.Fatal("expected a non-zero exit for an unknown command")
	}
	if !strings.Contains(output, "Unknown command") {
		t.Errorf("unexpected output: %s", output)
	}
}

func TestCLI_OnboardAndList(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping CLI test in short mode")
	}
	cliPath := buildCLI(t)
	dir := t.TempDir()
	settings := writeSettings(t, dir)

	output, err := runCLI(t, cliPath, "onboard", "--settings", settings, "--display", "Mozilla Firefox", "firefox")
	if err != nil {
		t.Fatalf("onboard failed: %v\nOutput: %s", err, output)
	}

	// The printed tracking ID must be a bare UUID, not the folder name.
	idMatch := regexp.MustCompile(`tracking ID: ([^\n]+)`).FindStringSubmatch(output)
	if idMatch == nil {
		t.Fatalf("onboard output missing tracking ID: %s", output)
	}
	trackingID := strings.TrimSpace(idMatch[1])
	uuidPattern := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	if !uuidPattern.MatchString(trackingID) {
		t.Errorf("tracking ID = %q, want a bare UUID", trackingID)
	}
	if !strings.Contains(output, "folder:      firefox_"+trackingID) {
		t.Errorf("onboard output missing folder name firefox_%s: %s", trackingID, output)
	}

	output, err = runCLI(t, cliPath, "list", "--settings", settings)
	if err != nil {
		t.Fatalf("list failed: %v\nOutput: %s", err, output)
	}
	if !strings.Contains(output, "firefox") || !strings.Contains(output, "Mozilla Firefox") {
		t.Errorf("list output missing onboarded title: %s", output)
	}
	if !strings.Contains(output, "(1 total)") {
		t.Errorf("list output missing count: %s", output)
	}
}

func TestCLI_LocateMissingArtifact(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping CLI test in short mode")
	}
	cliPath := buildCLI(t)
	dir := t.TempDir()
	settings := writeSettings(t, dir)

	folder := writeTitleVersions(t, filepath.Join(dir, "managed-titles"), "chrome", "abc123", "126.0", "126.0.1")

	output, err := runCLI(t, cliPath, "locate", "--settings", settings, folder)
	if err == nil {
		t.Fatalf("expected locate to fail for an uncached artifact, got: %s", output)
	}
	// The message must name the expected version, which is what the cache
	// path is resolved from.
	if !strings.Contains(output, "chrome 126.0 is not cached") {
		t.Errorf("unexpected locate output: %s", output)
	}
}

func TestCLI_CleanIsIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping CLI test in short mode")
	}
	cliPath := buildCLI(t)
	dir := t.TempDir()
	settings := writeSettings(t, dir)

	tmpPath := filepath.Join(dir, "cache", "firefox", "tmp")
	if err := os.MkdirAll(tmpPath, 0750); err != nil {
		t.Fatalf("Failed to create tmp workspace: %v", err)
	}

	for i := 0; i < 2; i++ {
		output, err := runCLI(t, cliPath, "clean", "--settings", settings, "firefox")
		if err != nil {
			t.Fatalf("clean run %d failed: %v\nOutput: %s", i+1, err, output)
		}
	}

	if _, err := os.Stat(tmpPath); !os.IsNotExist(err) {
		t.Error("tmp workspace still present after clean")
	}
}

func TestCLI_VerifyChecksum(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping CLI test in short mode")
	}
	cliPath := buildCLI(t)
	dir := t.TempDir()

	artifact := filepath.Join(dir, "Firefox-128.0.pkg")
	payload := []byte("installer payload")
	if err := os.WriteFile(artifact, payload, 0600); err != nil {
		t.Fatalf("Failed to write artifact: %v", err)
	}

	sum := sha256.Sum256(payload)
	checksumFile := artifact + ".sha256"
	line := hex.EncodeToString(sum[:]) + "  Firefox-128.0.pkg\n"
	if err := os.WriteFile(checksumFile, []byte(line), 0600); err != nil {
		t.Fatalf("Failed to write checksum file: %v", err)
	}

	output, err := runCLI(t, cliPath, "verify", "--checksum", checksumFile, artifact)
	if err != nil {
		t.Fatalf("verify failed: %v\nOutput: %s", err, output)
	}
	if !strings.Contains(output, "Checksum verified") {
		t.Errorf("unexpected verify output: %s", output)
	}

	// Corrupt the artifact and expect failure
	if err := os.WriteFile(artifact, []byte("tampered"), 0600); err != nil {
		t.Fatalf("Failed to tamper artifact: %v", err)
	}
	output, err = runCLI(t, cliPath, "verify", "--checksum", checksumFile, artifact)
	if err == nil {
		t.Fatalf("expected verify to fail for a tampered artifact, got: %s", output)
	}
}

func TestCLI_ConfirmDefaultsToActualVersion(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping CLI test in short mode")
	}
	cliPath := buildCLI(t)
	dir := t.TempDir()
	titlesRoot := filepath.Join(dir, "managed-titles")

	// The packaged version drifted from the expected one; the remote
	// reports what was actually uploaded.
	folder := writeTitleVersions(t, titlesRoot, "chrome", "abc123", "126.0", "126.0.1")

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck // test handler
		w.Write([]byte(`{"access_token":"test-token","expires_in":3600}`))
	})
	mux.HandleFunc("/apps", func(w http.ResponseWriter, r *http.Request) {
		//nolint:errcheck // test handler
		w.Write([]byte(`[{"id":"r1","display_name":"Chrome","primary_bundle_version":"126.0.1","tracking_id":"abc123"}]`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	settingsPath := filepath.Join(dir, "settings.yaml")
	content := "managed_titles_root: " + titlesRoot + "\n" +
		"cache_root: " + filepath.Join(dir, "cache") + "\n" +
		"auth_endpoint: " + server.URL + "/token\n" +
		"inventory_endpoint: " + server.URL + "\n"
	if err := os.WriteFile(settingsPath, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write settings: %v", err)
	}

	// Without --version the poll must target the actual version; matching
	// on the first attempt keeps the command well under its timeout.
	output, err := runCLI(t, cliPath, "confirm", "--settings", settingsPath, folder)
	if err != nil {
		t.Fatalf("confirm failed: %v\nOutput: %s", err, output)
	}
	if !strings.Contains(output, "Upload confirmed: chrome 126.0.1") {
		t.Errorf("unexpected confirm output: %s", output)
	}
}

func TestCLI_ExpiryNoDatesConfigured(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping CLI test in short mode")
	}
	cliPath := buildCLI(t)
	dir := t.TempDir()
	settings := writeSettings(t, dir)

	output, err := runCLI(t, cliPath, "expiry", "--settings", settings)
	if err != nil {
		t.Fatalf("expiry failed: %v\nOutput: %s", err, output)
	}
	if !strings.Contains(output, "within their validity window") {
		t.Errorf("unexpected expiry output: %s", output)
	}
}
