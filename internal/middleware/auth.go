package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/frenzyhq/frenzy-backend/internal/apperror"
	"github.com/frenzyhq/frenzy-backend/internal/token"
)

type contextKey int

const userIDKey contextKey = iota

// UserIDFromContext returns the authenticated user's id attached by
// RequireAuth.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// RequireAuth gates protected routes. A missing bearer token is 401; a token
// that fails verification, expiry included, is 403. On success the user id is
// attached to the request context for downstream handlers.
func RequireAuth(issuer *token.Issuer, responder *apperror.Responder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				responder.Write(w, apperror.Unauthorized("Access token required"))
				return
			}

			userID, err := issuer.Verify(raw)
			if err != nil {
				if errors.Is(err, token.ErrTokenExpired) || errors.Is(err, token.ErrInvalidToken) {
					responder.Write(w, apperror.Forbidden("Invalid or expired token"))
					return
				}
				responder.Write(w, apperror.Internal(err))
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header.
func bearerToken(r *http.Request) string {
	parts := strings.Split(r.Header.Get("Authorization"), " ")
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}
