package wire

import (
	"store-ratings/internal/adaptor"
	"store-ratings/pkg/auth"
	"store-ratings/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireStore(
	r chi.Router,
	storeHandler *adaptor.StoreHandler,
	issuer *auth.TokenIssuer,
	log *zap.Logger,
) {
	// The directory is for signed-in users of any role
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(issuer, log))

		// GET /stores - browse stores with own rating and averages
		r.Get("/stores", storeHandler.ListStores)

		// POST /stores/{id}/rate - upsert own rating
		r.Post("/stores/{id}/rate", storeHandler.Rate)
	})
}
