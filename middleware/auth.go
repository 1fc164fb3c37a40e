package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"league-history/interfaces"
	"league-history/logging"
	"league-history/services"
)

type contextKey string

const claimsKey contextKey = "admin_claims"

// AuthMiddleware guards the admin API with bearer tokens
type AuthMiddleware struct {
	auth   interfaces.AdminAuthInterface
	logger *logging.Logger
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(auth interfaces.AdminAuthInterface) *AuthMiddleware {
	return &AuthMiddleware{
		auth:   auth,
		logger: logging.WithPrefix("AuthMiddleware"),
	}
}

// RequireAdmin rejects requests without a valid admin token
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			unauthorized(w, "Missing bearer token")
			return
		}

		claims, err := m.auth.ValidateToken(token)
		if err != nil {
			m.logger.Debugf("Rejected admin token for %s: %v", r.URL.Path, err)
			unauthorized(w, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken extracts the token from "Authorization: Bearer <token>"
func bearerToken(r *http.Request) string {
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="admin"`)
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// AdminClaimsFromContext returns the admin claims set by RequireAdmin
func AdminClaimsFromContext(ctx context.Context) *services.AdminClaims {
	if claims, ok := ctx.Value(claimsKey).(*services.AdminClaims); ok {
		return claims
	}
	return nil
}
