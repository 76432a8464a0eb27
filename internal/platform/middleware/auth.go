package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

// TokenValidator validates staff bearer tokens.
type TokenValidator interface {
	ValidateToken(tokenString string) (*StaffClaims, error)
}

// APIKeyVerifier checks a raw API key against the configured credential.
type APIKeyVerifier interface {
	VerifyKey(key string) bool
}

// StaffClaims are the claims carried by a staff token.
type StaffClaims struct {
	Subject string
	JTI     string
}

type contextKeyStaffID struct{}

// ContextKeyStaffID is exported for use in handlers
var ContextKeyStaffID = contextKeyStaffID{}

// GetStaffID retrieves the authenticated staff identity from the context.
func GetStaffID(ctx context.Context) string {
	id, ok := ctx.Value(ContextKeyStaffID).(string)
	if !ok {
		return ""
	}
	return id
}

// AuthObserver is notified of authentication failures.
type AuthObserver interface {
	ObserveAuthFailure()
}

// RequireStaff guards the back-office endpoints. A request authenticates
// with either a staff bearer token or the X-API-Key header.
func RequireStaff(validator TokenValidator, keys APIKeyVerifier, obs AuthObserver, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if key := r.Header.Get("X-API-Key"); key != "" && keys != nil {
				if keys.VerifyKey(key) {
					ctx = context.WithValue(ctx, ContextKeyStaffID, "api-key")
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
				deny(w, r, obs, logger, "invalid api key")
				return
			}

			authHeader := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || validator == nil {
				deny(w, r, obs, logger, "missing credentials")
				return
			}
			claims, err := validator.ValidateToken(token)
			if err != nil {
				deny(w, r, obs, logger, "invalid token")
				return
			}

			ctx = context.WithValue(ctx, ContextKeyStaffID, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func deny(w http.ResponseWriter, r *http.Request, obs AuthObserver, logger *slog.Logger, reason string) {
	ctx := r.Context()
	if obs != nil {
		obs.ObserveAuthFailure()
	}
	logger.WarnContext(ctx, "unauthorized access",
		"reason", reason,
		"path", r.URL.Path,
		"request_id", GetRequestID(ctx),
	)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized","error_description":"Valid staff credentials required"}`))
}
