package models

import "time"

// Audit record kinds, one per operation the service performs.
const (
	AuditKindResolve     = "resolve"
	AuditKindRender      = "render"
	AuditKindPreflight   = "preflight"
	AuditKindDiagnostics = "diagnostics"
)

// AuditRecord is one entry in the compliance audit trail: what was
// done, for which node, with enough detail to reconstruct the
// operation during a configuration-drift review.
type AuditRecord struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"`
	NodeID    int       `json:"node_id"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks the record before it is persisted.
func (a *AuditRecord) Validate() error {
	if a.Kind == "" {
		return ErrAuditKindRequired
	}
	if a.Detail == "" {
		return ErrAuditDetailRequired
	}
	return nil
}
