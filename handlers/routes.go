package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Routes bundles the handlers and middleware mounted by NewRouter
type Routes struct {
	League *LeagueHandler
	Charts *ChartHandler
	Votes  *VoteHandler
	API    *APIHandler
	Health *HealthHandler

	Metrics      http.Handler
	RequireAdmin func(http.Handler) http.Handler
	LoginLimit   func(http.Handler) http.Handler
	Middleware   []mux.MiddlewareFunc
}

// NewRouter registers every route
func NewRouter(routes Routes) *mux.Router {
	r := mux.NewRouter()
	for _, mw := range routes.Middleware {
		r.Use(mw)
	}

	// Pages
	r.HandleFunc("/", routes.League.Home).Methods("GET")
	r.HandleFunc("/hall-of-fame", routes.League.HallOfFame).Methods("GET")
	r.HandleFunc("/averages", routes.League.Averages).Methods("GET")
	r.HandleFunc("/compare", routes.League.Compare).Methods("GET")
	r.HandleFunc("/managers", routes.League.Managers).Methods("GET")
	r.HandleFunc("/managers/{name}", routes.League.ManagerProfile).Methods("GET")
	r.HandleFunc("/charts/averages.{format:svg|png}", routes.Charts.AveragesChart).Methods("GET")
	r.HandleFunc("/vote", routes.Votes.Form).Methods("GET")
	r.HandleFunc("/vote", routes.Votes.Submit).Methods("POST")
	r.HandleFunc("/theme", ToggleTheme).Methods("POST")

	// Operations
	r.HandleFunc("/health", routes.Health.Health).Methods("GET")
	if routes.Metrics != nil {
		r.Handle("/metrics", routes.Metrics).Methods("GET")
	}

	// API
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/league/stats", routes.API.LeagueStats).Methods("GET")
	api.Handle("/admin/login", wrap(http.HandlerFunc(routes.API.AdminLogin), routes.LoginLimit)).Methods("POST")
	reload := http.Handler(http.HandlerFunc(adminDisabled))
	if routes.RequireAdmin != nil {
		reload = routes.RequireAdmin(http.HandlerFunc(routes.API.AdminReload))
	}
	api.Handle("/admin/reload", reload).Methods("POST")

	return r
}

func wrap(h http.Handler, mw func(http.Handler) http.Handler) http.Handler {
	if mw == nil {
		return h
	}
	return mw(h)
}

func adminDisabled(w http.ResponseWriter, r *http.Request) {
	writeJSONError(w, http.StatusNotFound, "Admin access is not configured")
}
