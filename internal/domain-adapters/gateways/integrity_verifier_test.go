package gateways

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestIntegrityVerifier_Checksum(t *testing.T) {
	v := NewIntegrityVerifier()
	dir := t.TempDir()

	path := filepath.Join(dir, "Firefox-128.0.dmg")
	if err := os.WriteFile(path, []byte("artifact contents"), 0600); err != nil {
		t.Fatal(err)
	}

	sum, err := v.CalculateChecksum(path)
	if err != nil {
		t.Fatalf("CalculateChecksum() error: %v", err)
	}
	if len(sum) != 64 {
		t.Fatalf("CalculateChecksum() = %q, want 64 hex chars", sum)
	}

	if err := v.VerifyChecksum(context.Background(), path, sum); err != nil {
		t.Errorf("VerifyChecksum() with matching sum: %v", err)
	}

	err = v.VerifyChecksum(context.Background(), path, strings.Repeat("0", 64))
	if err == nil {
		t.Error("VerifyChecksum() should fail on mismatch")
	}
}

func TestIntegrityVerifier_ChecksumMissingFile(t *testing.T) {
	v := NewIntegrityVerifier()

	if _, err := v.CalculateChecksum("/nonexistent/artifact.pkg"); err == nil {
		t.Error("CalculateChecksum() should fail for missing file")
	}
	if err := v.VerifyChecksum(context.Background(), "/nonexistent/artifact.pkg", "00"); err == nil {
		t.Error("VerifyChecksum() should fail for missing file")
	}
}

func TestIntegrityVerifier_SignatureWithoutKeys(t *testing.T) {
	v := NewIntegrityVerifier()
	dir := t.TempDir()

	data := filepath.Join(dir, "a.pkg")
	sig := filepath.Join(dir, "a.pkg.asc")
	if err := os.WriteFile(data, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(sig, []byte("y"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := v.VerifySignature(data, sig); err == nil {
		t.Error("VerifySignature() should fail with no imported keys")
	}
}
