package handlers

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"

	"league-history/interfaces"
	"league-history/logging"
	"league-history/services"
)

// LeagueHandler serves the league history pages
type LeagueHandler struct {
	renderer
	league      interfaces.LeagueServiceInterface
	chartWidth  int
	chartHeight int
}

// NewLeagueHandler creates a new league handler
func NewLeagueHandler(templates *template.Template, league interfaces.LeagueServiceInterface, chartWidth, chartHeight int) *LeagueHandler {
	return &LeagueHandler{
		renderer: renderer{
			templates:  templates,
			leagueName: league.LeagueName(),
			logger:     logging.WithPrefix("LeagueHandler"),
		},
		league:      league,
		chartWidth:  chartWidth,
		chartHeight: chartHeight,
	}
}

// Home handles GET / - links and the list of seasons
func (h *LeagueHandler) Home(w http.ResponseWriter, r *http.Request) {
	seasons, err := h.league.Seasons(r.Context())
	if err != nil {
		h.loadFailed(w, r, err)
		return
	}

	data := struct {
		Page
		Seasons []string
	}{
		Page:    h.page(r, "Home"),
		Seasons: seasons,
	}
	h.render(w, http.StatusOK, "home.html", data)
}

// HallOfFame handles GET /hall-of-fame
func (h *LeagueHandler) HallOfFame(w http.ResponseWriter, r *http.Request) {
	hof, err := h.league.HallOfFame(r.Context())
	if err != nil {
		h.loadFailed(w, r, err)
		return
	}

	data := struct {
		Page
		HallOfFame *services.HallOfFame
	}{
		Page:       h.page(r, "Hall of Fame"),
		HallOfFame: hof,
	}
	h.render(w, http.StatusOK, "hall_of_fame.html", data)
}

// Averages handles GET /averages - the chart plus the table behind it
func (h *LeagueHandler) Averages(w http.ResponseWriter, r *http.Request) {
	view, err := h.league.Averages(r.Context())
	if err != nil {
		h.loadFailed(w, r, err)
		return
	}

	data := struct {
		Page
		Averages    *services.AveragesView
		ChartWidth  int
		ChartHeight int
	}{
		Page:        h.page(r, "Season Averages"),
		Averages:    view,
		ChartWidth:  h.chartWidth,
		ChartHeight: h.chartHeight,
	}
	h.render(w, http.StatusOK, "averages.html", data)
}

// Compare handles GET /compare?manager1=&manager2=
func (h *LeagueHandler) Compare(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	view, err := h.league.Compare(r.Context(), query.Get("manager1"), query.Get("manager2"))
	if err != nil {
		h.loadFailed(w, r, err)
		return
	}

	data := struct {
		Page
		Compare *services.CompareView
	}{
		Page:    h.page(r, "Head to Head"),
		Compare: view,
	}
	h.render(w, http.StatusOK, "compare.html", data)
}

// Managers handles GET /managers
func (h *LeagueHandler) Managers(w http.ResponseWriter, r *http.Request) {
	view, err := h.league.Managers(r.Context())
	if err != nil {
		h.loadFailed(w, r, err)
		return
	}

	data := struct {
		Page
		Managers *services.ManagersView
	}{
		Page:     h.page(r, "Managers"),
		Managers: view,
	}
	h.render(w, http.StatusOK, "managers.html", data)
}

// ManagerProfile handles GET /managers/{name}
func (h *LeagueHandler) ManagerProfile(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	profile, err := h.league.ManagerProfile(r.Context(), name)
	if errors.Is(err, services.ErrManagerNotFound) {
		h.renderError(w, r, http.StatusNotFound, "Manager not found", "Manager not found.")
		return
	}
	if err != nil {
		h.loadFailed(w, r, err)
		return
	}

	data := struct {
		Page
		Profile *services.ManagerProfile
	}{
		Page:    h.page(r, profile.Manager.Name),
		Profile: profile,
	}
	h.render(w, http.StatusOK, "manager.html", data)
}
