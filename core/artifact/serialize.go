package artifact

import (
	"strings"

	"github.com/PhilCANDIDO/ACM-repo/core/models"
)

// Serialize joins the artifact body into properties-file text with a
// trailing newline. The file-writing layer consumes this verbatim.
func Serialize(a models.GeneratedArtifact) string {
	if len(a.Body) == 0 {
		return ""
	}
	return strings.Join(a.Body, "\n") + "\n"
}
