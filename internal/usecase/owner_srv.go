package usecase

import (
	"context"

	"store-ratings/internal/apperr"
	"store-ratings/internal/data/entity"
	"store-ratings/internal/data/repository"
	"store-ratings/internal/dto/response"
	"store-ratings/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OwnerService interface {
	// Summary resolves the owner whose store is reported. OWNER callers
	// always get their own store; an ADMIN may pass requestedOwnerID to
	// inspect another owner.
	Summary(ctx context.Context, callerID uuid.UUID, callerRole entity.Role, requestedOwnerID string) (*response.OwnerSummaryResponse, error)
}

type ownerService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOwnerService(repo *repository.Repository, log *zap.Logger) OwnerService {
	return &ownerService{
		repo: repo,
		log:  log.With(zap.String("service", "owner")),
	}
}

func (s *ownerService) Summary(ctx context.Context, callerID uuid.UUID, callerRole entity.Role, requestedOwnerID string) (*response.OwnerSummaryResponse, error) {
	ownerID := callerID

	switch callerRole {
	case entity.RoleOwner:
		// Own store only, any requested override is ignored
	case entity.RoleAdmin:
		if requestedOwnerID != "" {
			parsed, err := uuid.Parse(requestedOwnerID)
			if err != nil {
				return nil, apperr.Validation("Invalid owner ID", nil)
			}
			ownerID = parsed
		}
	case entity.RoleUser:
		return nil, apperr.Forbidden("Forbidden")
	default:
		return nil, apperr.Forbidden("Forbidden")
	}

	store, err := s.repo.Store.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, apperr.Internal("failed to find owner store", err)
	}
	if store == nil {
		return nil, apperr.NotFound("Store not assigned to owner")
	}

	avg, err := s.repo.Rating.AverageForStore(ctx, store.ID)
	if err != nil {
		return nil, apperr.Internal("failed to compute average", err)
	}

	raterRows, err := s.repo.Rating.RatersForStore(ctx, store.ID)
	if err != nil {
		return nil, apperr.Internal("failed to list raters", err)
	}

	raters := make([]response.Rater, len(raterRows))
	for i, row := range raterRows {
		raters[i] = response.Rater{
			ID:      row.UserID.String(),
			Name:    row.Name,
			Email:   row.Email,
			Value:   row.Value,
			RatedAt: row.RatedAt,
		}
	}

	return &response.OwnerSummaryResponse{
		Store: response.OwnerStore{
			ID:      store.ID.String(),
			Name:    store.Name,
			Address: store.Address,
		},
		AvgRating: utils.Round2(avg),
		Raters:    raters,
	}, nil
}
