package wire

import (
	"store-ratings/internal/adaptor"
	"store-ratings/pkg/auth"
	"store-ratings/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	issuer *auth.TokenIssuer,
	log *zap.Logger,
) {
	// Public routes
	r.Post("/auth/signup", authHandler.Signup)
	r.Post("/auth/login", authHandler.Login)

	// Password change needs an identity, any role
	r.With(middleware.Auth(issuer, log)).Post("/auth/password", authHandler.ChangePassword)
}
