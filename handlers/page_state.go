package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// ThemeCookie stores the visitor's colour theme
	ThemeCookie = "theme"

	ThemeLight = "light"
	ThemeDark  = "dark"
)

// PageState is the per-request presentation state handed to every template
type PageState struct {
	Theme string
}

// Dark returns true when the dark theme is selected
func (s PageState) Dark() bool {
	return s.Theme == ThemeDark
}

// PageStateFromRequest reads the theme cookie; anything but dark is light
func PageStateFromRequest(r *http.Request) PageState {
	state := PageState{Theme: ThemeLight}
	if cookie, err := r.Cookie(ThemeCookie); err == nil && cookie.Value == ThemeDark {
		state.Theme = ThemeDark
	}
	return state
}

// ToggleTheme handles POST /theme - flips the theme cookie and redirects back
func ToggleTheme(w http.ResponseWriter, r *http.Request) {
	next := ThemeDark
	if PageStateFromRequest(r).Dark() {
		next = ThemeLight
	}

	http.SetCookie(w, &http.Cookie{
		Name:     ThemeCookie,
		Value:    next,
		Path:     "/",
		Expires:  time.Now().Add(365 * 24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, safeReturnPath(r.FormValue("return")), http.StatusSeeOther)
}

// safeReturnPath only allows redirects back to a local path
func safeReturnPath(path string) string {
	if path == "" || !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") {
		return "/"
	}
	u, err := url.Parse(path)
	if err != nil || u.Host != "" || u.Scheme != "" {
		return "/"
	}
	return u.RequestURI()
}
