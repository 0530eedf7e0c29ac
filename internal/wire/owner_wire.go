package wire

import (
	"store-ratings/internal/adaptor"
	"store-ratings/internal/data/entity"
	"store-ratings/pkg/auth"
	"store-ratings/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOwner(
	r chi.Router,
	ownerHandler *adaptor.OwnerHandler,
	issuer *auth.TokenIssuer,
	log *zap.Logger,
) {
	r.Route("/owner", func(r chi.Router) {
		r.Use(middleware.Auth(issuer, log))
		r.Use(middleware.RequireRole(log, entity.RoleOwner, entity.RoleAdmin))

		r.Get("/summary", ownerHandler.Summary)
	})
}
