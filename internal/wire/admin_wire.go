package wire

import (
	"store-ratings/internal/adaptor"
	"store-ratings/internal/data/entity"
	"store-ratings/pkg/auth"
	"store-ratings/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	issuer *auth.TokenIssuer,
	log *zap.Logger,
) {
	r.Route("/admin", func(r chi.Router) {
		// Middleware chain: Auth then RequireRole(ADMIN)
		r.Use(middleware.Auth(issuer, log))
		r.Use(middleware.RequireRole(log, entity.RoleAdmin))

		r.Get("/users", adminHandler.ListUsers)
		r.Post("/users", adminHandler.CreateUser)
		r.Get("/users/{id}", adminHandler.GetUser)

		r.Get("/stores", adminHandler.ListStores)
		r.Post("/stores", adminHandler.CreateStore)

		r.Get("/metrics", adminHandler.Metrics)
	})
}
