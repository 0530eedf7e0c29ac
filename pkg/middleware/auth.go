package middleware

import (
	"net/http"
	"strings"

	"store-ratings/internal/data/entity"
	"store-ratings/pkg/auth"
	"store-ratings/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Auth validates the bearer token and attaches the caller's identity
// (id, role, email) to the request context.
func Auth(issuer *auth.TokenIssuer, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := issuer.Verify(parts[1])
			if err != nil {
				logger.Warn("Invalid or expired token", zap.Error(err), zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid token")
				return
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				logger.Warn("Token carries malformed user id", zap.String("id", claims.UserID))
				utils.ResponseUnauthorized(w, "Invalid token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), userID, claims.Role, claims.Email)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route to the given roles. Runs after Auth: a
// request without identity gets 401, a known identity outside the
// allowed set gets 403.
func RequireRole(logger *zap.Logger, allowed ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roleStr, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			role := entity.Role(roleStr)
			if !role.Valid() {
				logger.Warn("Unknown role in token",
					zap.String("role", roleStr),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Forbidden")
				return
			}

			for _, a := range allowed {
				if role == a {
					next.ServeHTTP(w, r)
					return
				}
			}

			logger.Warn("Role not allowed for route",
				zap.String("role", roleStr),
				zap.String("path", r.URL.Path))
			utils.ResponseForbidden(w, "Forbidden")
		})
	}
}
