package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/PhilCANDIDO/ACM-repo/core/adapters"
	"github.com/PhilCANDIDO/ACM-repo/core/models"
	"github.com/PhilCANDIDO/ACM-repo/core/preflight"
	"github.com/PhilCANDIDO/ACM-repo/core/wire/in"
)

const (
	// 10 GiB, the sizing the install scripts assumed for a broker
	// data directory.
	defaultMinimumBytes uint64 = 10 * 1024 * 1024 * 1024

	defaultProbeTimeout = 5 * time.Second
)

// RunPreflight executes the standard check battery against this host
// and the resolved topology, and records the outcome.
func (h *Handler) RunPreflight(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read request body", err)
		return
	}
	defer r.Body.Close()

	var request in.PreflightRequest
	if err := json.Unmarshal(body, &request); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid preflight request", err)
		return
	}

	resolved, err := h.resolveTopology(request.Override)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Topology validation failed", err)
		return
	}

	dataDir := request.DataDir
	if dataDir == "" {
		dataDir = h.config.Cluster.DataDir
	}
	minimumBytes := request.MinimumBytes
	if minimumBytes == 0 {
		minimumBytes = defaultMinimumBytes
	}
	repoURL := request.RepoURL
	if repoURL == "" {
		repoURL = h.config.Cluster.RepoURL
	}
	brokerPort := request.BrokerPort
	if brokerPort == 0 {
		brokerPort = h.config.Cluster.ListenPort
	}
	timeout := defaultProbeTimeout
	if request.TimeoutMs > 0 {
		timeout = time.Duration(request.TimeoutMs) * time.Millisecond
	}

	env := h.newPreflightEnv(request.Privileged, resolved, timeout)
	checks := preflight.StandardChecks(dataDir, minimumBytes, repoURL, brokerPort, timeout)

	runner := preflight.NewRunner()
	report := runner.Run(r.Context(), checks, env)

	auditDetail := map[string]interface{}{
		"overall_go": report.OverallGo,
		"checks":     len(report.Results),
		"source":     resolved.Source,
	}
	if err := h.audit(r.Context(), models.AuditKindPreflight, h.config.Cluster.LocalNodeID, auditDetail); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to record audit entry", err)
		return
	}

	writeJSON(w, http.StatusOK, adapters.PreflightReportToWire(report))
}
