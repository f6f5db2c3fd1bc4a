package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sangsom/minime/internal/domain/model"
	"github.com/sangsom/minime/internal/domain/types"
)

// DeriveDependencies defines the interface for synchronous derivation.
type DeriveDependencies interface {
	Derive(p model.Profile, hour int) types.Status
}

// deriveRequest is an ad-hoc profile snapshot to derive from. Hour is
// optional; -1 or absent means "now".
type deriveRequest struct {
	ProfileID    string  `json:"profile_id"`
	Experience   int     `json:"experience"`
	Coins        int     `json:"coins"`
	Happiness    float64 `json:"happiness"`
	EyeScale     float64 `json:"eye_scale"`
	Outfit       string  `json:"outfit"`
	Accessory    string  `json:"accessory"`
	HomeworkDone int     `json:"homework_done"`
	Hour         *int    `json:"hour,omitempty"`
}

func (d deriveRequest) validate() error {
	if d.ProfileID == "" {
		return errors.New("missing profile_id")
	}
	if d.Hour != nil && (*d.Hour < 0 || *d.Hour > 23) {
		return errors.New("hour must be between 0 and 23")
	}
	return nil
}

// DeriveHandler computes status snapshots without storing them.
type DeriveHandler struct {
	deps DeriveDependencies
	now  func() time.Time
}

// NewDeriveHandler creates a new derive handler.
func NewDeriveHandler(deps DeriveDependencies) *DeriveHandler {
	return &DeriveHandler{deps: deps, now: time.Now}
}

// HandleDerive handles POST /derive requests.
func (h *DeriveHandler) HandleDerive(w http.ResponseWriter, r *http.Request) {
	const op = "api.derive"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req deriveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", opErrf(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", opErrf(op, ErrBadRequest, err))
		return
	}

	hour := h.now().Hour()
	if req.Hour != nil {
		hour = *req.Hour
	}

	p := model.Profile{
		ProfileID:    req.ProfileID,
		Experience:   req.Experience,
		Coins:        req.Coins,
		Happiness:    req.Happiness,
		EyeScale:     req.EyeScale,
		Outfit:       req.Outfit,
		Accessory:    req.Accessory,
		HomeworkDone: req.HomeworkDone,
	}
	writeJSON(w, http.StatusOK, h.deps.Derive(p, hour))
}
