package usecase

import (
	"context"
	"errors"
	"time"

	"store-ratings/internal/apperr"
	"store-ratings/internal/data/entity"
	"store-ratings/internal/data/repository"
	"store-ratings/internal/dto/request"
	"store-ratings/internal/dto/response"
	"store-ratings/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdminService interface {
	CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.CreateUserResponse, error)
	ListUsers(ctx context.Context, req *request.ListUsersRequest) (*response.ListResponse[response.UserResponse], error)
	// GetUser returns user detail; for an OWNER with an assigned store
	// the detail carries the store's rounded average rating.
	GetUser(ctx context.Context, id string) (*response.UserDetailResponse, error)
	CreateStore(ctx context.Context, req *request.CreateStoreRequest) (*response.StoreResponse, error)
	ListStores(ctx context.Context, req *request.ListStoresRequest) (*response.ListResponse[response.AdminStoreItem], error)
	Metrics(ctx context.Context) (*response.MetricsResponse, error)
}

type adminService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAdminService(repo *repository.Repository, log *zap.Logger) AdminService {
	return &adminService{
		repo: repo,
		log:  log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.CreateUserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create user validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("Validation failed", errs)
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperr.Internal("failed to check email", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("Email already exists")
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
		Role:         entity.Role(req.Role),
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.Conflict("Email already exists")
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, apperr.Internal("failed to create user", err)
	}

	s.log.Info("User created by admin",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)))

	return &response.CreateUserResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

func (s *adminService) ListUsers(ctx context.Context, req *request.ListUsersRequest) (*response.ListResponse[response.UserResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("List users validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("Validation failed", errs)
	}

	filter := repository.UserFilter{
		Name:      req.Name,
		Email:     req.Email,
		Address:   req.Address,
		Role:      req.Role,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
		Skip:      req.Skip,
		Take:      req.Take,
	}

	users, total, err := s.repo.User.List(ctx, filter)
	if err != nil {
		return nil, apperr.Internal("failed to list users", err)
	}

	items := make([]response.UserResponse, len(users))
	for i, user := range users {
		items[i] = response.UserToResponse(user)
	}

	return response.NewListResponse(items, total), nil
}

func (s *adminService) GetUser(ctx context.Context, id string) (*response.UserDetailResponse, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.Validation("Invalid user ID", nil)
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("failed to find user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("Not found")
	}

	detail := &response.UserDetailResponse{
		ID:      user.ID.String(),
		Name:    user.Name,
		Email:   user.Email,
		Address: user.Address,
		Role:    user.Role,
	}

	if user.Role == entity.RoleOwner {
		store, err := s.repo.Store.FindByOwnerID(ctx, user.ID)
		if err != nil {
			return nil, apperr.Internal("failed to find owner store", err)
		}
		if store != nil {
			avg, err := s.repo.Rating.AverageForStore(ctx, store.ID)
			if err != nil {
				return nil, apperr.Internal("failed to compute average", err)
			}
			rounded := utils.Round2(avg)
			detail.Rating = &rounded
		}
	}

	return detail, nil
}

func (s *adminService) CreateStore(ctx context.Context, req *request.CreateStoreRequest) (*response.StoreResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create store validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("Validation failed", errs)
	}

	var ownerID *uuid.UUID
	if req.OwnerID != nil {
		parsed, err := uuid.Parse(*req.OwnerID)
		if err != nil {
			return nil, apperr.Validation("Invalid owner ID", nil)
		}
		owner, err := s.repo.User.FindByID(ctx, parsed)
		if err != nil {
			return nil, apperr.Internal("failed to find owner", err)
		}
		if owner == nil {
			return nil, apperr.NotFound("Owner not found")
		}
		ownerID = &parsed
	}

	store := &entity.Store{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		OwnerID: ownerID,
	}

	if err := s.repo.Store.Create(ctx, store); err != nil {
		s.log.Error("Failed to create store", zap.Error(err), zap.String("name", req.Name))
		return nil, apperr.Internal("failed to create store", err)
	}

	s.log.Info("Store created", zap.String("store_id", store.ID.String()))

	resp := response.StoreToResponse(store)
	return &resp, nil
}

func (s *adminService) ListStores(ctx context.Context, req *request.ListStoresRequest) (*response.ListResponse[response.AdminStoreItem], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("List stores validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("Validation failed", errs)
	}

	filter := repository.StoreFilter{
		Name:      req.Name,
		Email:     req.Email,
		Address:   req.Address,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
		Skip:      req.Skip,
		Take:      req.Take,
	}

	listings, total, err := s.repo.Store.List(ctx, filter, nil)
	if err != nil {
		return nil, apperr.Internal("failed to list stores", err)
	}

	items := make([]response.AdminStoreItem, len(listings))
	for i, listing := range listings {
		items[i] = response.AdminStoreItem{
			ID:      listing.Store.ID.String(),
			Name:    listing.Store.Name,
			Email:   listing.Store.Email,
			Address: listing.Store.Address,
			Rating:  utils.Round2(listing.AvgRating),
		}
	}

	return response.NewListResponse(items, total), nil
}

func (s *adminService) Metrics(ctx context.Context) (*response.MetricsResponse, error) {
	totalUsers, err := s.repo.User.Count(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to count users", err)
	}

	totalStores, err := s.repo.Store.Count(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to count stores", err)
	}

	totalRatings, err := s.repo.Rating.Count(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to count ratings", err)
	}

	return &response.MetricsResponse{
		TotalUsers:   totalUsers,
		TotalStores:  totalStores,
		TotalRatings: totalRatings,
	}, nil
}
