package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"titlectl/internal/domain/entities"
)

// ErrArtifactNotCached signals that no cached artifact exists for the
// requested title and version.
var ErrArtifactNotCached = errors.New("artifact not cached")

// CacheLocator resolves the deterministic local-cache path of a title's
// downloaded artifact. It only reads the cache; entries are created by the
// download workflow.
type CacheLocator struct {
	cacheRoot string
	dualArch  *DualArchDetector
}

// NewCacheLocator creates a cache locator rooted at the cache directory.
func NewCacheLocator(cacheRoot string, dualArch *DualArchDetector) *CacheLocator {
	return &CacheLocator{cacheRoot: cacheRoot, dualArch: dualArch}
}

// LocateCachedArtifact resolves the cache path for the given title descriptor
// and returns it only if a regular file exists there. Absence is reported
// with ErrArtifactNotCached rather than a sentinel path.
func (c *CacheLocator) LocateCachedArtifact(app *entities.ProcessedApp) (string, error) {
	dualArch := c.dualArch.IsDualArch(app.LabelName, app.TrackingID)
	path := filepath.Join(
		c.cacheRoot,
		app.LabelName,
		app.ExpectedVersion,
		CacheFileName(app, dualArch),
	)

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrArtifactNotCached, path)
		}
		return "", fmt.Errorf("failed to stat cached artifact: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrArtifactNotCached, path)
	}

	return path, nil
}

// CacheFileName builds the deterministic artifact filename for a title:
// "<display>-<expectedVersion>[-<arch>].<dmg|pkg>". Unmanaged installer
// packages never gain an architecture segment; other deployment types gain
// one only when the label is dual-arch.
func CacheFileName(app *entities.ProcessedApp, dualArch bool) string {
	name := fmt.Sprintf("%s-%s", app.DisplayName, app.ExpectedVersion)
	if dualArch && app.Type != entities.DeploymentPKGUnmanaged {
		name += "-" + string(app.Arch)
	}
	if app.Type == entities.DeploymentDMG {
		return name + ".dmg"
	}
	return name + ".pkg"
}
