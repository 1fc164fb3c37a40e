package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"league-history/interfaces"
	"league-history/logging"
	"league-history/services"
)

const maxLoginBody = 4 << 10

// APIHandler serves the JSON endpoints
type APIHandler struct {
	league   interfaces.LeagueServiceInterface
	auth     interfaces.AdminAuthInterface
	importer interfaces.ImportServiceInterface // nil unless league data lives in MongoDB
	dataDir  string
	logger   *logging.Logger
}

// NewAPIHandler creates a new API handler
func NewAPIHandler(
	league interfaces.LeagueServiceInterface,
	auth interfaces.AdminAuthInterface,
	importer interfaces.ImportServiceInterface,
	dataDir string,
) *APIHandler {
	return &APIHandler{
		league:   league,
		auth:     auth,
		importer: importer,
		dataDir:  dataDir,
		logger:   logging.WithPrefix("APIHandler"),
	}
}

// LeagueStats handles GET /api/league/stats
func (h *APIHandler) LeagueStats(w http.ResponseWriter, r *http.Request) {
	hof, err := h.league.HallOfFame(r.Context())
	if err != nil {
		h.logger.Errorf("Failed to build league stats: %v", err)
		writeJSONError(w, http.StatusInternalServerError, services.LoadFailureMessage)
		return
	}
	writeJSON(w, http.StatusOK, hof)
}

// LoginRequest is the admin login body
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse carries a freshly issued admin token
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AdminLogin handles POST /api/admin/login
func (h *APIHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxLoginBody)).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, expires, err := h.auth.Login(req.Password)
	switch {
	case errors.Is(err, services.ErrAdminDisabled):
		writeJSONError(w, http.StatusNotFound, "Admin access is not configured")
		return
	case errors.Is(err, services.ErrInvalidCredentials):
		writeJSONError(w, http.StatusUnauthorized, "Invalid password")
		return
	case err != nil:
		h.logger.Errorf("Admin login failed: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Token: token, ExpiresAt: expires})
}

// AdminReload handles POST /api/admin/reload - re-imports the JSON files into MongoDB
func (h *APIHandler) AdminReload(w http.ResponseWriter, r *http.Request) {
	if h.importer == nil {
		writeJSONError(w, http.StatusConflict, "Reload requires DATA_SOURCE=mongo")
		return
	}

	result, err := h.importer.ImportFrom(r.Context(), services.NewFileSource(h.dataDir))
	if err != nil {
		h.logger.Errorf("Admin reload failed: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Reload failed")
		return
	}
	writeJSON(w, http.StatusOK, result)
}
