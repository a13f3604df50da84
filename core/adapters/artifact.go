package adapters

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/PhilCANDIDO/ACM-repo/core/artifact"
	"github.com/PhilCANDIDO/ACM-repo/core/models"
	"github.com/PhilCANDIDO/ACM-repo/core/wire/out"
)

func ArtifactToWire(a models.GeneratedArtifact) out.Artifact {
	rendered := artifact.Serialize(a)
	sum := sha256.Sum256([]byte(rendered))

	return out.Artifact{
		Kind:     string(a.Kind),
		LocalID:  a.LocalID,
		Lines:    a.Body,
		Rendered: rendered,
		Checksum: hex.EncodeToString(sum[:]),
	}
}
