package usecase

import (
	"context"
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

type StoreService interface {
	// ListStores is the signed-in directory view: every row carries its
	// rounded overall average and the caller's own rating.
	ListStores(ctx context.Context, userID uuid.UUID, req *request.ListStoresRequest) (*response.ListResponse[response.StoreItem], error)
	// Rate upserts the caller's rating for a store.
	Rate(ctx context.Context, userID uuid.UUID, storeID string, req *request.RateRequest) (*response.RateResponse, error)
	// AverageFor reports a store's mean rating, 0 when unrated.
	AverageFor(ctx context.Context, storeID uuid.UUID) (float64, error)
}

type storeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewStoreService(repo *repository.Repository, log *zap.Logger) StoreService {
	return &storeService{
		repo: repo,
		log:  log.With(zap.String("service", "store")),
	}
}

func (s *storeService) ListStores(ctx context.Context, userID uuid.UUID, req *request.ListStoresRequest) (*response.ListResponse[response.StoreItem], error) {
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

	listings, total, err := s.repo.Store.List(ctx, filter, &userID)
	if err != nil {
		return nil, apperr.Internal("failed to list stores", err)
	}

	items := make([]response.StoreItem, len(listings))
	for i, listing := range listings {
		items[i] = response.StoreItem{
			ID:            listing.Store.ID.String(),
			Name:          listing.Store.Name,
			Address:       listing.Store.Address,
			OverallRating: utils.Round2(listing.AvgRating),
			UserRating:    listing.UserRating,
		}
	}

	return response.NewListResponse(items, total), nil
}

func (s *storeService) Rate(ctx context.Context, userID uuid.UUID, storeID string, req *request.RateRequest) (*response.RateResponse, error) {
	storeUUID, err := uuid.Parse(storeID)
	if err != nil {
		return nil, apperr.Validation("Invalid store ID", nil)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Rate validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("Validation failed", errs)
	}

	store, err := s.repo.Store.FindByID(ctx, storeUUID)
	if err != nil {
		return nil, apperr.Internal("failed to find store", err)
	}
	if store == nil {
		return nil, apperr.NotFound("Store not found")
	}

	rating := &entity.Rating{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:  userID,
		StoreID: storeUUID,
		Value:   req.Value,
	}

	created, err := s.repo.Rating.Upsert(ctx, rating)
	if err != nil {
		s.log.Error("Failed to upsert rating",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("store_id", storeID),
		)
		return nil, apperr.Internal("failed to save rating", err)
	}

	s.log.Info("Store rated",
		zap.String("user_id", userID.String()),
		zap.String("store_id", storeID),
		zap.Int("value", req.Value),
		zap.Bool("created", created),
	)

	return &response.RateResponse{
		Created: created,
		Updated: !created,
		Rating:  response.RatingToResponse(rating),
	}, nil
}

func (s *storeService) AverageFor(ctx context.Context, storeID uuid.UUID) (float64, error) {
	avg, err := s.repo.Rating.AverageForStore(ctx, storeID)
	if err != nil {
		return 0, apperr.Internal("failed to compute average", err)
	}
	return utils.Round2(avg), nil
}
