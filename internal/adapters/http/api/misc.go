package api

import (
	"net/http"
	"strconv"
	"time"
)

// GreetingDependencies defines the interface for greeting text.
type GreetingDependencies interface {
	Greeting(hour int) string
}

// GreetingHandler serves time-of-day greetings.
type GreetingHandler struct {
	deps GreetingDependencies
	now  func() time.Time
}

// NewGreetingHandler creates a new greeting handler.
func NewGreetingHandler(deps GreetingDependencies) *GreetingHandler {
	return &GreetingHandler{deps: deps, now: time.Now}
}

// HandleGreeting handles GET /greeting?hour=H requests. Without an hour
// parameter the server clock decides.
func (h *GreetingHandler) HandleGreeting(w http.ResponseWriter, r *http.Request) {
	const op = "api.greeting"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	hour := h.now().Hour()
	if raw := r.URL.Query().Get("hour"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > 23 {
			writeError(w, http.StatusBadRequest, "bad_request", opErr(op, ErrBadRequest))
			return
		}
		hour = n
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"hour":     hour,
		"greeting": h.deps.Greeting(hour),
	})
}

// AnimationDependencies defines the interface for animation picks.
type AnimationDependencies interface {
	RandomAnimation() string
}

// AnimationHandler serves random animation picks.
type AnimationHandler struct {
	deps AnimationDependencies
}

// NewAnimationHandler creates a new animation handler.
func NewAnimationHandler(deps AnimationDependencies) *AnimationHandler {
	return &AnimationHandler{deps: deps}
}

// HandleAnimation handles GET /animation requests.
func (h *AnimationHandler) HandleAnimation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"animation": h.deps.RandomAnimation(),
	})
}
