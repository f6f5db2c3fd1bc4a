package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/sangsom/minime/internal/domain/types"
)

// StatusDependencies defines the interface for status reads.
type StatusDependencies interface {
	Status(ctx context.Context, profileID string) (types.Status, error)
}

// StatusHandler serves derived status snapshots.
type StatusHandler struct {
	deps StatusDependencies
}

// NewStatusHandler creates a new status handler.
func NewStatusHandler(deps StatusDependencies) *StatusHandler {
	return &StatusHandler{deps: deps}
}

// HandleGetStatus handles GET /status/{profile_id} requests.
func (h *StatusHandler) HandleGetStatus(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_status"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	profileID := strings.TrimPrefix(r.URL.Path, "/status/")
	if profileID == "" || strings.Contains(profileID, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", opErr(op, ErrBadRequest))
		return
	}

	status, err := h.deps.Status(r.Context(), profileID)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", opErr(op, err))
		return
	}
	writeJSON(w, http.StatusOK, status)
}
