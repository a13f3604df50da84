package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/PhilCANDIDO/ACM-repo/core/adapters"
	"github.com/PhilCANDIDO/ACM-repo/core/artifact"
	"github.com/PhilCANDIDO/ACM-repo/core/models"
	"github.com/PhilCANDIDO/ACM-repo/core/wire/in"
)

// RenderBrokerArtifact renders the broker properties for a node and
// records the artifact checksum in the audit trail.
func (h *Handler) RenderBrokerArtifact(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read request body", err)
		return
	}
	defer r.Body.Close()

	var request in.BrokerArtifactRequest
	if err := json.Unmarshal(body, &request); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid broker artifact request", err)
		return
	}

	resolved, err := h.resolveTopology(request.Override)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Topology validation failed", err)
		return
	}

	options := artifact.BrokerOptions{
		DataDir:          request.DataDir,
		ListenPort:       request.ListenPort,
		CoordinationPort: request.CoordinationPort,
		AdvertisedHost:   request.AdvertisedHost,
		ExtraProperties:  request.ExtraProperties,
	}
	if options.DataDir == "" {
		options.DataDir = h.config.Cluster.DataDir
	}
	if options.ListenPort == 0 {
		options.ListenPort = h.config.Cluster.ListenPort
	}
	if options.CoordinationPort == 0 {
		options.CoordinationPort = h.config.Cluster.ClientPort
	}

	generated, err := artifact.RenderBrokerConfig(resolved, request.LocalID, options)
	if err != nil {
		var unknown *models.UnknownLocalIDError
		if errors.As(err, &unknown) {
			writeError(w, http.StatusBadRequest, "Unknown local node id", err)
		} else {
			writeError(w, http.StatusInternalServerError, "Failed to render broker config", err)
		}
		return
	}

	response := adapters.ArtifactToWire(generated)

	auditDetail := map[string]interface{}{
		"kind":     generated.Kind,
		"checksum": response.Checksum,
		"source":   resolved.Source,
	}
	if err := h.audit(r.Context(), models.AuditKindRender, request.LocalID, auditDetail); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to record audit entry", err)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// RenderCoordinationArtifact renders the coordination-service config
// for a node.
func (h *Handler) RenderCoordinationArtifact(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read request body", err)
		return
	}
	defer r.Body.Close()

	var request in.CoordinationArtifactRequest
	if err := json.Unmarshal(body, &request); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid coordination artifact request", err)
		return
	}

	resolved, err := h.resolveTopology(request.Override)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Topology validation failed", err)
		return
	}

	options := artifact.CoordinationOptions{
		DataDir:      request.DataDir,
		ClientPort:   request.ClientPort,
		PeerPort:     request.PeerPort,
		ElectionPort: request.ElectionPort,
	}
	if options.DataDir == "" {
		options.DataDir = h.config.Cluster.DataDir
	}
	if options.ClientPort == 0 {
		options.ClientPort = h.config.Cluster.ClientPort
	}
	if options.PeerPort == 0 {
		options.PeerPort = h.config.Cluster.PeerPort
	}
	if options.ElectionPort == 0 {
		options.ElectionPort = h.config.Cluster.ElectionPort
	}

	generated, err := artifact.RenderCoordinationConfig(resolved, request.LocalID, options)
	if err != nil {
		var unknown *models.UnknownLocalIDError
		if errors.As(err, &unknown) {
			writeError(w, http.StatusBadRequest, "Unknown local node id", err)
		} else {
			writeError(w, http.StatusInternalServerError, "Failed to render coordination config", err)
		}
		return
	}

	response := adapters.ArtifactToWire(generated)

	auditDetail := map[string]interface{}{
		"kind":     generated.Kind,
		"checksum": response.Checksum,
		"source":   resolved.Source,
	}
	if err := h.audit(r.Context(), models.AuditKindRender, request.LocalID, auditDetail); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to record audit entry", err)
		return
	}

	writeJSON(w, http.StatusOK, response)
}
