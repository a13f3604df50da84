package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/PhilCANDIDO/ACM-repo/core/adapters"
	"github.com/PhilCANDIDO/ACM-repo/core/models"
	"github.com/PhilCANDIDO/ACM-repo/core/wire/in"
)

// ResolveTopology previews the topology the installer would use, so
// an operator can validate an override before anything is written.
func (h *Handler) ResolveTopology(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read request body", err)
		return
	}
	defer r.Body.Close()

	var request in.TopologyRequest
	if len(body) > 0 {
		if err := json.Unmarshal(body, &request); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid topology request", err)
			return
		}
	}

	resolved, err := h.resolveTopology(request.Override)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Topology validation failed", err)
		return
	}

	log.Printf("[Handlers] Resolved topology: source=%s members=%d", resolved.Source, resolved.Size())

	auditDetail := map[string]interface{}{
		"source":  resolved.Source,
		"members": resolved.Size(),
	}
	if err := h.audit(r.Context(), models.AuditKindResolve, h.config.Cluster.LocalNodeID, auditDetail); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to record audit entry", err)
		return
	}

	writeJSON(w, http.StatusOK, adapters.TopologyToWire(resolved))
}
