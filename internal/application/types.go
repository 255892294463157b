package application

import "ppw/internal/domain"

// Re-export domain types for use by adapters
type (
	ArtifactSet   = domain.ArtifactSet
	ArtifactRole  = domain.ArtifactRole
	Flow          = domain.Flow
	RunRecord     = domain.RunRecord
	DependencyLog = domain.DependencyLog
)

const (
	FlowSinglePass = domain.FlowSinglePass
	FlowTwoPass    = domain.FlowTwoPass
)

// ResolveArtifacts derives every artifact path for an input file
func ResolveArtifacts(inputPath, outputDir string) ArtifactSet {
	return domain.ResolveArtifacts(inputPath, outputDir)
}

// ParseFlow maps a flag value to a Flow
func ParseFlow(twoPass bool) Flow {
	if twoPass {
		return domain.FlowTwoPass
	}
	return domain.FlowSinglePass
}
