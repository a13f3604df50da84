package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/PhilCANDIDO/ACM-repo/core/config"
	"github.com/PhilCANDIDO/ACM-repo/core/diag"
	"github.com/PhilCANDIDO/ACM-repo/core/models"
	"github.com/PhilCANDIDO/ACM-repo/core/preflight"
	"github.com/PhilCANDIDO/ACM-repo/core/store"
	"github.com/PhilCANDIDO/ACM-repo/core/topology"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	config   *config.Config
	resolver *topology.Resolver
	store    store.AuditStore

	// Factories for external collaborators, replaced in tests.
	newMetadataClient func(ctx context.Context, bootstrapAddr string, timeout time.Duration) (diag.MetadataClient, error)
	newPreflightEnv   func(privileged bool, t models.Topology, timeout time.Duration) *preflight.Env
}

// NewHandler creates a new handler instance
func NewHandler(cfg *config.Config, resolver *topology.Resolver, auditStore store.AuditStore) *Handler {
	return &Handler{
		config:   cfg,
		resolver: resolver,
		store:    auditStore,
		newMetadataClient: func(ctx context.Context, bootstrapAddr string, timeout time.Duration) (diag.MetadataClient, error) {
			return diag.NewRealMetadataClient(ctx, bootstrapAddr, timeout)
		},
		newPreflightEnv: func(privileged bool, t models.Topology, timeout time.Duration) *preflight.Env {
			return &preflight.Env{
				Privileged: privileged,
				Topology:   t,
				FS:         preflight.RealFilesystemInfo{},
				HTTP:       preflight.NewRealHeadClient(timeout),
				Dialer:     &preflight.RealBrokerDialer{Timeout: timeout},
			}
		},
	}
}

// resolveTopology resolves the request override, falling back to the
// server's configured override, then to the compiled-in defaults.
func (h *Handler) resolveTopology(override string) (models.Topology, error) {
	if override == "" {
		override = h.config.Cluster.NodesOverride
	}
	return h.resolver.Resolve(override, topology.Defaults())
}

// audit appends a record to the trail. Operations that cannot be
// audited must not report success.
func (h *Handler) audit(ctx context.Context, kind string, nodeID int, detail interface{}) error {
	data, err := json.Marshal(detail)
	if err != nil {
		return err
	}
	return h.store.Append(ctx, &models.AuditRecord{
		Kind:   kind,
		NodeID: nodeID,
		Detail: string(data),
	})
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response
func writeError(w http.ResponseWriter, status int, message string, err error) {
	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}
	if err != nil {
		response["details"] = err.Error()
	}
	if err != nil {
		log.Printf("[Handlers] %s: %v", message, err)
	}
	writeJSON(w, status, response)
}
