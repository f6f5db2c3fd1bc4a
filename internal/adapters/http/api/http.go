// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/sangsom/minime/internal/adapters/repository"
	"github.com/sangsom/minime/internal/domain/dedupe"
	"github.com/sangsom/minime/internal/domain/model"
	"github.com/sangsom/minime/internal/domain/types"
)

// Default request limits.
const defaultMaxBoardLimit = 100

// Dependencies required by HTTP handlers. The interface bundle keeps the
// handler layer loosely coupled to the service implementation.
type Dependencies interface {
	dedupe.Deduper

	// Enqueue pushes an event for async processing. Returns false on
	// backpressure.
	Enqueue(ctx context.Context, e model.StateEvent) bool

	// Read operations over derived state.
	Status(ctx context.Context, profileID string) (types.Status, error)
	Board(ctx context.Context, limit int) ([]types.BoardEntry, error)

	// Synchronous derivation helpers.
	Derive(p model.Profile, hour int) types.Status
	Greeting(hour int) string
	RandomAnimation() string
}

// Server wires HTTP routes for the progression API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	eventsHandler    *EventsHandler
	statusHandler    *StatusHandler
	boardHandler     *BoardHandler
	deriveHandler    *DeriveHandler
	validateHandler  *ValidateHandler
	greetingHandler  *GreetingHandler
	animationHandler *AnimationHandler

	maxBoardLimit int
}

// NewServer creates an API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...Option) *Server {
	s := &Server{
		maxBoardLimit: defaultMaxBoardLimit,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.healthHandler = NewHealthHandler()
	s.statsHandler = NewStatsHandler(statsProvider)
	s.eventsHandler = NewEventsHandler(deps)
	s.statusHandler = NewStatusHandler(deps)
	s.boardHandler = NewBoardHandler(deps, s.maxBoardLimit)
	s.deriveHandler = NewDeriveHandler(deps)
	s.validateHandler = NewValidateHandler()
	s.greetingHandler = NewGreetingHandler(deps)
	s.animationHandler = NewAnimationHandler(deps)
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/events", MetricsMiddleware(s.eventsHandler.HandlePostEvent, "events"))
	mux.HandleFunc("/status/", MetricsMiddleware(s.statusHandler.HandleGetStatus, "status"))
	mux.HandleFunc("/board", MetricsMiddleware(s.boardHandler.HandleGetBoard, "board"))
	mux.HandleFunc("/derive", MetricsMiddleware(s.deriveHandler.HandleDerive, "derive"))
	mux.HandleFunc("/validate", MetricsMiddleware(s.validateHandler.HandleValidate, "validate"))
	mux.HandleFunc("/greeting", MetricsMiddleware(s.greetingHandler.HandleGreeting, "greeting"))
	mux.HandleFunc("/animation", MetricsMiddleware(s.animationHandler.HandleAnimation, "animation"))
}

// eventRequest mirrors the wire schema for POST /events.
type eventRequest struct {
	EventID   string  `json:"event_id"`
	ProfileID string  `json:"profile_id"`
	Kind      string  `json:"kind"`
	Amount    float64 `json:"amount"`
	Animation string  `json:"animation"`
	Item      string  `json:"item"`
	TS        string  `json:"ts"`
}

func (e eventRequest) validate() error {
	switch {
	case strings.TrimSpace(e.EventID) == "":
		return errors.New("missing event_id")
	case strings.TrimSpace(e.ProfileID) == "":
		return errors.New("missing profile_id")
	case strings.TrimSpace(e.Kind) == "":
		return errors.New("missing kind")
	}
	if !model.KnownKind(model.EventKind(e.Kind)) {
		return errors.New("unknown kind")
	}
	if model.EventKind(e.Kind) == model.KindAnimationPlayed && strings.TrimSpace(e.Animation) == "" {
		return errors.New("missing animation")
	}
	switch model.EventKind(e.Kind) {
	case model.KindOutfitSet, model.KindAccessorySet:
		if strings.TrimSpace(e.Item) == "" {
			return errors.New("missing item")
		}
	}
	if e.TS != "" {
		if _, err := time.Parse(time.RFC3339, e.TS); err != nil {
			return errors.New("invalid ts; must be RFC3339")
		}
	}
	return nil
}

// toModel converts the wire request to the domain event.
func (e eventRequest) toModel() model.StateEvent {
	ts := time.Now()
	if e.TS != "" {
		if parsed, err := time.Parse(time.RFC3339, e.TS); err == nil {
			ts = parsed
		}
	}
	return model.StateEvent{
		EventID:   e.EventID,
		ProfileID: e.ProfileID,
		Kind:      model.EventKind(e.Kind),
		Amount:    e.Amount,
		Animation: e.Animation,
		Item:      e.Item,
		TS:        ts,
	}
}

type ackResponse struct {
	Status    string `json:"status"`
	Duplicate bool   `json:"duplicate"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNotFound translates upstream not-found errors to 404.
func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
