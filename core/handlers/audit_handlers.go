package handlers

import (
	"net/http"
	"strconv"

	"github.com/PhilCANDIDO/ACM-repo/core/adapters"
	"github.com/PhilCANDIDO/ACM-repo/core/wire/out"
)

const defaultAuditListLimit = 50

// ListAuditRecords returns the most recent audit trail entries.
func (h *Handler) ListAuditRecords(w http.ResponseWriter, r *http.Request) {
	limit := defaultAuditListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "Invalid limit parameter", err)
			return
		}
		limit = parsed
	}

	records, err := h.store.List(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list audit records", err)
		return
	}

	response := out.Paginated{
		Total: len(records),
		Items: adapters.AuditRecordsToWire(records),
	}

	writeJSON(w, http.StatusOK, response)
}
