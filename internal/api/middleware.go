/**
 * @description
 * Custom middleware for the HTTP router. AdminAuthMiddleware guards every
 * CMS mutation and lead inbox behind a server-issued session token; the
 * old client-side "is admin" flag has no server-side standing.
 */

package api

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/phictor/leadcitymfb-sub000/internal/app"
)

// adminIDContextKey is a custom type for the context key to avoid collisions.
type adminIDContextKey string

const adminIDKey adminIDContextKey = "adminID"

// AdminAuthMiddleware validates the Bearer session token on admin routes
// and injects the authenticated admin id into the request context.
func AdminAuthMiddleware(auth *app.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondError(w, http.StatusUnauthorized, "Authorization header required")
				return
			}
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				respondError(w, http.StatusUnauthorized, "Invalid Authorization header format")
				return
			}

			adminID, err := auth.VerifySession(tokenString)
			if err != nil {
				respondError(w, http.StatusUnauthorized, "Invalid or expired session")
				return
			}

			ctx := context.WithValue(r.Context(), adminIDKey, adminID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAdminID retrieves the authenticated admin id from the request context.
func GetAdminID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(adminIDKey).(int64)
	return id, ok
}

// clientIP extracts the submitting client's address for rate limiting,
// preferring the first X-Forwarded-For hop set by the edge proxy.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if first := strings.TrimSpace(strings.Split(fwd, ",")[0]); first != "" {
			return first
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
