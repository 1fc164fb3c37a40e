package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"

	"league-history/logging"
	"league-history/services"
)

// Page carries what the shared layout needs
type Page struct {
	State      PageState
	Title      string
	LeagueName string
	Path       string
}

// renderer executes page templates into a buffer so a failed render never
// sends a partial page
type renderer struct {
	templates  *template.Template
	leagueName string
	logger     *logging.Logger
}

func (rn *renderer) page(r *http.Request, title string) Page {
	return Page{
		State:      PageStateFromRequest(r),
		Title:      title,
		LeagueName: rn.leagueName,
		Path:       r.URL.RequestURI(),
	}
}

func (rn *renderer) render(w http.ResponseWriter, status int, name string, data interface{}) {
	var buf bytes.Buffer
	if err := rn.templates.ExecuteTemplate(&buf, name, data); err != nil {
		rn.logger.Errorf("Template error rendering %s: %v", name, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (rn *renderer) renderError(w http.ResponseWriter, r *http.Request, status int, title, message string) {
	data := struct {
		Page
		Message string
	}{
		Page:    rn.page(r, title),
		Message: message,
	}
	rn.render(w, status, "error.html", data)
}

// loadFailed responds to a league that could not be loaded. Visitors only
// see the generic message.
func (rn *renderer) loadFailed(w http.ResponseWriter, r *http.Request, err error) {
	if ctxErr := r.Context().Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		rn.logger.Debugf("Request for %s cancelled: %v", r.URL.Path, err)
	} else {
		rn.logger.Errorf("Failed to load league for %s: %v", r.URL.Path, err)
	}
	http.Error(w, services.LoadFailureMessage, http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Errorf("Error encoding JSON response: %v", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
