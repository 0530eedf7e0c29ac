package usecase

import (
	"store-ratings/internal/data/repository"
	"store-ratings/pkg/auth"
	"store-ratings/pkg/utils"

	"go.uber.org/zap"
)

// Service groups all services
type Service struct {
	Auth  AuthService
	Store StoreService
	Admin AdminService
	Owner OwnerService
}

func NewService(repo *repository.Repository, issuer *auth.TokenIssuer, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:  NewAuthService(repo, issuer, config, log),
		Store: NewStoreService(repo, log),
		Admin: NewAdminService(repo, log),
		Owner: NewOwnerService(repo, log),
	}
}
