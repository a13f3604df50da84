package models

// ArtifactKind identifies which configuration file an artifact renders.
type ArtifactKind string

const (
	BrokerConfig       ArtifactKind = "broker"
	CoordinationConfig ArtifactKind = "coordination"
)

// GeneratedArtifact is a rendered configuration payload. Body holds
// key=value lines in render order; the order is part of the contract
// and must round-trip deterministically for the same input. Writing
// the lines to disk belongs to the caller.
type GeneratedArtifact struct {
	Kind    ArtifactKind `json:"kind"`
	LocalID int          `json:"local_id"`
	Body    []string     `json:"body"`
}
