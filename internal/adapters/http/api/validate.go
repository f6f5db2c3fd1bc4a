package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sangsom/minime/internal/domain/identity"
)

// validateRequest carries candidate identity fields. Either may be absent.
type validateRequest struct {
	Username    *string `json:"username,omitempty"`
	DisplayName *string `json:"display_name,omitempty"`
}

// validateResponse reports per-field verdicts.
type validateResponse struct {
	UsernameValid      *bool  `json:"username_valid,omitempty"`
	NormalizedUsername string `json:"normalized_username,omitempty"`
	DisplayNameValid   *bool  `json:"display_name_valid,omitempty"`
}

// ValidateHandler checks identity fields against the naming rules. It is
// stateless and needs no service dependencies.
type ValidateHandler struct{}

// NewValidateHandler creates a new validate handler.
func NewValidateHandler() *ValidateHandler {
	return &ValidateHandler{}
}

// HandleValidate handles POST /validate requests.
func (h *ValidateHandler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	const op = "api.validate"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", opErrf(op, ErrBadRequest, err))
		return
	}
	if req.Username == nil && req.DisplayName == nil {
		writeError(w, http.StatusBadRequest, "bad_request",
			opErrf(op, ErrBadRequest, errors.New("nothing to validate")))
		return
	}

	var resp validateResponse
	if req.Username != nil {
		ok := identity.ValidUsername(*req.Username)
		resp.UsernameValid = &ok
		if ok {
			resp.NormalizedUsername = identity.NormalizeUsername(*req.Username)
		}
	}
	if req.DisplayName != nil {
		ok := identity.ValidDisplayName(*req.DisplayName)
		resp.DisplayNameValid = &ok
	}
	writeJSON(w, http.StatusOK, resp)
}
