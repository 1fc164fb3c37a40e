package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"league-history/services"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok"))
})

func TestRateLimiterPerClient(t *testing.T) {
	limiter := NewRateLimiter(1, 2, false)
	handler := limiter.Limit(ok)

	request := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, request("10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, request("10.0.0.1:1235"))
	assert.Equal(t, http.StatusTooManyRequests, request("10.0.0.1:1236"))
	assert.Equal(t, http.StatusOK, request("10.0.0.2:1234"))
}

func TestRateLimiterForwardedFor(t *testing.T) {
	limiter := NewRateLimiter(1, 1, true)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "203.0.113.9", limiter.clientIP(req))

	direct := NewRateLimiter(1, 1, false)
	assert.Equal(t, "192.0.2.1", direct.clientIP(req))
}

func TestRateLimiterSweep(t *testing.T) {
	limiter := NewRateLimiter(60, 1, false)
	start := time.Now()
	limiter.now = func() time.Time { return start }
	limiter.Allow("a")
	limiter.Allow("b")

	limiter.now = func() time.Time { return start.Add(5 * time.Minute) }
	limiter.Allow("b")

	limiter.now = func() time.Time { return start.Add(12 * time.Minute) }
	assert.Equal(t, 1, limiter.Sweep())
	assert.Len(t, limiter.clients, 1)
}

func TestRequireAdmin(t *testing.T) {
	auth := services.NewAdminAuthService("", "test-secret", time.Hour)
	token, _, err := auth.GenerateToken()
	require.NoError(t, err)

	var seen *services.AdminClaims
	handler := NewAuthMiddleware(auth).RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = AdminClaimsFromContext(r.Context())
	}))

	tests := []struct {
		name   string
		header string
		code   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"invalid", "Bearer nope", http.StatusUnauthorized},
		{"valid", "Bearer " + token, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/admin/reload", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
	require.NotNil(t, seen)
	assert.Equal(t, "admin", seen.Role)
}

func TestSecurityMiddleware(t *testing.T) {
	handler := SecurityMiddleware(true)(ok)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "default-src 'self'")
	assert.Empty(t, rec.Header().Get("Strict-Transport-Security"))

	req.Header.Set("X-Forwarded-Proto", "https")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.NotEmpty(t, rec.Header().Get("Strict-Transport-Security"))
}

func TestRequestLoggerRecordsRouteTemplate(t *testing.T) {
	r := mux.NewRouter()
	r.Use(RequestLogger)
	r.HandleFunc("/managers/{name}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(httpRequests.WithLabelValues("/managers/{name}", "GET", "418"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/managers/alice", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("/managers/{name}", "GET", "418")))
}
