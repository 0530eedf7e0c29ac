package wire

import (
	"net/http"

	"store-ratings/internal/adaptor"
	"store-ratings/internal/data/repository"
	"store-ratings/internal/usecase"
	"store-ratings/pkg/auth"
	"store-ratings/pkg/middleware"
	"store-ratings/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// App holds the composed application
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, issuer *auth.TokenIssuer, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, issuer, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, issuer, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	issuer *auth.TokenIssuer,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	wireAuth(r, handler.Auth, issuer, logger)
	wireStore(r, handler.Store, issuer, logger)
	wireAdmin(r, handler.Admin, issuer, logger)
	wireOwner(r, handler.Owner, issuer, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
