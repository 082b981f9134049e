// Package entities defines core domain models and data structures.
package entities

// DeploymentType identifies how a managed title's artifact is delivered.
type DeploymentType string

const (
	// DeploymentDMG is a disk-image delivery.
	DeploymentDMG DeploymentType = "dmg"
	// DeploymentPKG is a managed installer-package delivery.
	DeploymentPKG DeploymentType = "pkg"
	// DeploymentPKGUnmanaged is an installer package that is distributed
	// outside the managed flow; its cache filenames never carry an
	// architecture segment.
	DeploymentPKGUnmanaged DeploymentType = "pkg-unmanaged"
)

// Architecture identifies the CPU architecture a title artifact targets.
type Architecture string

const (
	ArchARM64     Architecture = "arm64"
	ArchX86_64    Architecture = "x86_64"
	ArchUniversal Architecture = "universal"
)

// ProcessedApp is the descriptor of one managed title produced by metadata
// regeneration. It is rebuilt from the title's on-disk definition on every
// run and never persisted across invocations.
type ProcessedApp struct {
	LabelName       string
	TrackingID      string
	DisplayName     string
	ExpectedVersion string
	ActualVersion   string
	Type            DeploymentType
	Arch            Architecture
	SHA256          string
}
