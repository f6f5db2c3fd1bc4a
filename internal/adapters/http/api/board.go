package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/sangsom/minime/internal/domain/types"
)

// BoardDependencies defines the interface for board reads.
type BoardDependencies interface {
	Board(ctx context.Context, limit int) ([]types.BoardEntry, error)
}

// BoardHandler serves the experience board.
type BoardHandler struct {
	deps     BoardDependencies
	maxLimit int
}

// NewBoardHandler creates a new board handler.
func NewBoardHandler(deps BoardDependencies, maxLimit int) *BoardHandler {
	return &BoardHandler{
		deps:     deps,
		maxLimit: maxLimit,
	}
}

// HandleGetBoard handles GET /board?limit=N requests.
func (h *BoardHandler) HandleGetBoard(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_board"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	n, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || n < 1 {
		writeError(w, http.StatusBadRequest, "bad_request", opErr(op, ErrBadRequest))
		return
	}
	if n > h.maxLimit {
		writeError(w, http.StatusBadRequest, "limit_exceeded", opErr(op, ErrBadRequest))
		return
	}

	entries, err := h.deps.Board(r.Context(), n)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", opErr(op, err))
		return
	}
	if entries == nil {
		entries = []types.BoardEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}
