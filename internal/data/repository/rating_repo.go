package repository

import (
	"context"
	"fmt"
	"time"

	"store-ratings/internal/data/entity"
	"store-ratings/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// RaterRow is a roster entry for the owner summary: who rated the
// store, their value and when they first rated it.
type RaterRow struct {
	UserID  uuid.UUID
	Name    string
	Email   string
	Value   int
	RatedAt time.Time
}

type RatingRepository interface {
	// Upsert inserts the rating or, when the (user, store) pair already
	// has one, replaces its value in place. Returns whether a fresh row
	// was created.
	Upsert(ctx context.Context, rating *entity.Rating) (bool, error)
	FindByUserAndStore(ctx context.Context, userID, storeID uuid.UUID) (*entity.Rating, error)
	AverageForStore(ctx context.Context, storeID uuid.UUID) (float64, error)
	RatersForStore(ctx context.Context, storeID uuid.UUID) ([]*RaterRow, error)
	Count(ctx context.Context) (int64, error)
}

type ratingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRatingRepository(db database.PgxIface, log *zap.Logger) RatingRepository {
	return &ratingRepository{
		db:  db,
		log: log.With(zap.String("repository", "rating")),
	}
}

func (r *ratingRepository) Upsert(ctx context.Context, rating *entity.Rating) (bool, error) {
	// Single-statement upsert keyed on the (user_id, store_id) unique
	// index, so concurrent calls for the same pair serialize in the
	// database and converge on one row. xmax = 0 only for rows the
	// statement inserted, which keeps the created/updated flag truthful
	// when this call loses a race. The original created_at survives an
	// update.
	query := `
		INSERT INTO ratings (id, user_id, store_id, value, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, store_id)
		DO UPDATE SET value = EXCLUDED.value
		RETURNING id, created_at, (xmax = 0) AS inserted
	`

	var inserted bool
	err := r.db.QueryRow(ctx, query,
		rating.ID,
		rating.UserID,
		rating.StoreID,
		rating.Value,
		rating.CreatedAt,
	).Scan(&rating.ID, &rating.CreatedAt, &inserted)

	if err != nil {
		r.log.Error("Failed to upsert rating",
			zap.Error(err),
			zap.String("user_id", rating.UserID.String()),
			zap.String("store_id", rating.StoreID.String()),
		)
		return false, fmt.Errorf("upsert rating for store %s by user %s: %w",
			rating.StoreID.String(), rating.UserID.String(), err)
	}

	return inserted, nil
}

func (r *ratingRepository) FindByUserAndStore(ctx context.Context, userID, storeID uuid.UUID) (*entity.Rating, error) {
	query := `
		SELECT id, user_id, store_id, value, created_at
		FROM ratings
		WHERE user_id = $1 AND store_id = $2
		LIMIT 1
	`

	var rating entity.Rating
	err := r.db.QueryRow(ctx, query, userID, storeID).Scan(
		&rating.ID,
		&rating.UserID,
		&rating.StoreID,
		&rating.Value,
		&rating.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find rating by user and store",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("store_id", storeID.String()),
		)
		return nil, fmt.Errorf("find rating by user %s and store %s: %w",
			userID.String(), storeID.String(), err)
	}

	return &rating, nil
}

// AverageForStore returns the unrounded mean of the store's ratings,
// 0 when none exist. Rounding to 2 decimals happens at the service.
func (r *ratingRepository) AverageForStore(ctx context.Context, storeID uuid.UUID) (float64, error) {
	query := `SELECT COALESCE(AVG(value), 0) FROM ratings WHERE store_id = $1`

	var avg float64
	if err := r.db.QueryRow(ctx, query, storeID).Scan(&avg); err != nil {
		r.log.Error("Failed to get store average rating",
			zap.Error(err),
			zap.String("store_id", storeID.String()),
		)
		return 0, fmt.Errorf("average rating for store %s: %w", storeID.String(), err)
	}

	return avg, nil
}

// RatersForStore lists everyone who rated the store, first rater first.
func (r *ratingRepository) RatersForStore(ctx context.Context, storeID uuid.UUID) ([]*RaterRow, error) {
	query := `
		SELECT u.id, u.name, u.email, r.value, r.created_at
		FROM ratings r
		JOIN users u ON u.id = r.user_id
		WHERE r.store_id = $1
		ORDER BY r.created_at ASC
	`

	rows, err := r.db.Query(ctx, query, storeID)
	if err != nil {
		r.log.Error("Failed to list raters",
			zap.Error(err),
			zap.String("store_id", storeID.String()),
		)
		return nil, fmt.Errorf("list raters for store %s: %w", storeID.String(), err)
	}
	defer rows.Close()

	var raters []*RaterRow
	for rows.Next() {
		var rater RaterRow
		err := rows.Scan(
			&rater.UserID,
			&rater.Name,
			&rater.Email,
			&rater.Value,
			&rater.RatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan rater row", zap.Error(err))
			return nil, fmt.Errorf("scan rater row: %w", err)
		}
		raters = append(raters, &rater)
	}

	return raters, nil
}

func (r *ratingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM ratings`).Scan(&count); err != nil {
		r.log.Error("Failed to count ratings", zap.Error(err))
		return 0, fmt.Errorf("count ratings: %w", err)
	}
	return count, nil
}
