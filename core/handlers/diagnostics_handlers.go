package handlers

import (
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/PhilCANDIDO/ACM-repo/core/adapters"
	"github.com/PhilCANDIDO/ACM-repo/core/diag"
	"github.com/PhilCANDIDO/ACM-repo/core/models"
)

// GetDiagnostics cross-checks the live cluster against the resolved
// topology. An optional bootstrap query parameter picks the broker to
// ask; the default is the first topology member.
func (h *Handler) GetDiagnostics(w http.ResponseWriter, r *http.Request) {
	resolved, err := h.resolveTopology(r.URL.Query().Get("override"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Topology validation failed", err)
		return
	}

	bootstrapAddr := r.URL.Query().Get("bootstrap")
	if bootstrapAddr == "" {
		members := resolved.Ordered()
		bootstrapAddr = net.JoinHostPort(members[0].Host, strconv.Itoa(h.config.Cluster.ListenPort))
	}

	client, err := h.newMetadataClient(r.Context(), bootstrapAddr, defaultProbeTimeout)
	if err != nil {
		writeError(w, http.StatusBadGateway, fmt.Sprintf("Failed to connect to %s", bootstrapAddr), err)
		return
	}
	defer client.Close()

	report, err := diag.CrossCheck(r.Context(), client, resolved)
	if err != nil {
		writeError(w, http.StatusBadGateway, "Cluster diagnostics failed", err)
		return
	}

	auditDetail := map[string]interface{}{
		"healthy":      report.Healthy,
		"live_brokers": report.LiveBrokers,
		"bootstrap":    bootstrapAddr,
	}
	if err := h.audit(r.Context(), models.AuditKindDiagnostics, h.config.Cluster.LocalNodeID, auditDetail); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to record audit entry", err)
		return
	}

	writeJSON(w, http.StatusOK, adapters.DiagnosticsReportToWire(report))
}
