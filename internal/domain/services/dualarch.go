// Package services implements domain logic for managed-title lifecycle
// operations.
package services

import (
	"fmt"
	"os"
	"path/filepath"
)

// DualArchDetector checks whether a label ships separate
// architecture-specific artifacts rather than one universal artifact.
type DualArchDetector struct {
	managedTitlesRoot string
}

// NewDualArchDetector creates a detector rooted at the managed-titles
// directory.
func NewDualArchDetector(managedTitlesRoot string) *DualArchDetector {
	return &DualArchDetector{managedTitlesRoot: managedTitlesRoot}
}

// IsDualArch reports whether the secondary-architecture descriptor exists
// for the label. Pure existence check, no side effects.
func (d *DualArchDetector) IsDualArch(label, trackingID string) bool {
	path := filepath.Join(
		d.managedTitlesRoot,
		fmt.Sprintf("%s_%s", label, trackingID),
		label+"_i386.yaml",
	)
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
