package handlers

import (
	"net/http"
	"time"

	"league-history/interfaces"
	"league-history/logging"
)

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status    string    `json:"status"`
	Source    string    `json:"source"`
	Matches   int       `json:"matches"`
	Managers  int       `json:"managers"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

// HealthHandler reports whether the league source can be loaded
type HealthHandler struct {
	league interfaces.LeagueServiceInterface
	source string
	logger *logging.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(league interfaces.LeagueServiceInterface, source string) *HealthHandler {
	return &HealthHandler{
		league: league,
		source: source,
		logger: logging.WithPrefix("HealthHandler"),
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:    "ok",
		Source:    h.source,
		CheckedAt: time.Now().UTC(),
	}

	league, err := h.league.League(r.Context())
	if err != nil {
		h.logger.Warnf("Health check failed: %v", err)
		resp.Status = "unavailable"
		resp.Error = "league data unavailable"
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	resp.Matches = len(league.Matches)
	resp.Managers = len(league.Managers)
	writeJSON(w, http.StatusOK, resp)
}
