package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"store-ratings/internal/apperr"
	"store-ratings/internal/data/entity"
	"store-ratings/internal/data/repository"
	"store-ratings/internal/dto/request"
	"store-ratings/internal/dto/response"
	"store-ratings/pkg/auth"
	"store-ratings/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Signup(ctx context.Context, req *request.SignupRequest) (*response.SignupResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req *request.ChangePasswordRequest) error
	EnsureSeedAdmin(ctx context.Context) error
}

type authService struct {
	repo   *repository.Repository
	issuer *auth.TokenIssuer
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	issuer *auth.TokenIssuer,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		issuer: issuer,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

// Signup creates a USER account. The role is never caller-controlled
// here; admin creation is the only path to other roles.
func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) (*response.SignupResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Signup validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("Validation failed", errs)
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperr.Internal("failed to check email", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("Email already registered")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, apperr.Internal("failed to process password", err)
	}

	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:         req.Name,
		Email:        req.Email,
		Address:      req.Address,
		PasswordHash: hash,
		Role:         entity.RoleUser,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		// The unique index catches signups that raced past the
		// pre-check read.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.Conflict("Email already registered")
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, apperr.Internal("failed to create account", err)
	}

	s.log.Info("User signed up",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return &response.SignupResponse{ID: user.ID.String(), Email: user.Email}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("Validation failed", errs)
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperr.Internal("failed to find user", err)
	}

	// Unknown email and wrong password are indistinguishable to the
	// caller.
	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid credentials", zap.String("email", req.Email))
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	token, err := s.issuer.Issue(user.ID, string(user.Role), user.Email)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, apperr.Internal("failed to issue token", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)))

	return &response.LoginResponse{
		Token: token,
		User:  response.UserToProfile(user),
	}, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, req *request.ChangePasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Change password validation failed", zap.Any("errors", errs))
		return apperr.Validation("Validation failed", errs)
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return apperr.Internal("failed to find user", err)
	}
	if user == nil {
		return apperr.NotFound("User not found")
	}

	if !utils.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
		return apperr.Validation("Old password incorrect", nil)
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return apperr.Internal("failed to process password", err)
	}

	if err := s.repo.User.UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		s.log.Error("Failed to update password", zap.Error(err), zap.String("user_id", user.ID.String()))
		return apperr.Internal("failed to update password", err)
	}

	s.log.Info("Password changed", zap.String("user_id", user.ID.String()))
	return nil
}

// EnsureSeedAdmin creates the configured administrator account at
// startup when it does not exist yet. No-op without seed credentials.
func (s *authService) EnsureSeedAdmin(ctx context.Context) error {
	cfg := s.config.Admin
	if cfg.Email == "" || cfg.Password == "" {
		return nil
	}

	existing, err := s.repo.User.FindByEmail(ctx, cfg.Email)
	if err != nil {
		return fmt.Errorf("check seed admin: %w", err)
	}
	if existing != nil {
		s.log.Info("Seed admin already exists", zap.String("email", cfg.Email))
		return nil
	}

	hash, err := utils.HashPassword(cfg.Password)
	if err != nil {
		return fmt.Errorf("hash seed admin password: %w", err)
	}

	admin := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:         cfg.Name,
		Email:        cfg.Email,
		Address:      cfg.Address,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
	}

	if err := s.repo.User.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// Another instance won the startup race
			return nil
		}
		return fmt.Errorf("create seed admin: %w", err)
	}

	s.log.Info("Seed admin created", zap.String("email", cfg.Email))
	return nil
}
