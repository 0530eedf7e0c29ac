package repository

import (
	"context"
	"fmt"
	"strings"

	"store-ratings/internal/data/entity"
	"store-ratings/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// StoreFilter mirrors UserFilter for stores.
type StoreFilter struct {
	Name      string
	Email     string
	Address   string
	SortBy    string
	SortOrder string
	Skip      int
	Take      int
}

// StoreListing is a listing row: the store with its live average
// (unrounded, 0 when unrated) and, when the query is scoped to a
// caller, that caller's own rating.
type StoreListing struct {
	Store      entity.Store
	AvgRating  float64
	UserRating *int
}

type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Store, error)
	List(ctx context.Context, filter StoreFilter, userID *uuid.UUID) ([]*StoreListing, int64, error)
	Count(ctx context.Context) (int64, error)
}

type storeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStoreRepository(db database.PgxIface, log *zap.Logger) StoreRepository {
	return &storeRepository{
		db:  db,
		log: log.With(zap.String("repository", "store")),
	}
}

var storeSortColumns = map[string]string{
	"name":      "s.name",
	"email":     "s.email",
	"address":   "s.address",
	"createdAt": "s.created_at",
}

func (r *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	query := `
		INSERT INTO stores (id, name, email, address, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		store.ID,
		store.Name,
		store.Email,
		store.Address,
		store.OwnerID,
		store.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create store",
			zap.Error(err),
			zap.String("name", store.Name),
		)
		return fmt.Errorf("create store %s: %w", store.Name, err)
	}

	return nil
}

func (r *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	query := `
		SELECT id, name, email, address, owner_id, created_at
		FROM stores
		WHERE id = $1
	`

	var store entity.Store
	err := r.db.QueryRow(ctx, query, id).Scan(
		&store.ID,
		&store.Name,
		&store.Email,
		&store.Address,
		&store.OwnerID,
		&store.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find store by ID",
			zap.Error(err),
			zap.String("store_id", id.String()),
		)
		return nil, fmt.Errorf("find store by ID %s: %w", id.String(), err)
	}

	return &store, nil
}

func (r *storeRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Store, error) {
	query := `
		SELECT id, name, email, address, owner_id, created_at
		FROM stores
		WHERE owner_id = $1
		LIMIT 1
	`

	var store entity.Store
	err := r.db.QueryRow(ctx, query, ownerID).Scan(
		&store.ID,
		&store.Name,
		&store.Email,
		&store.Address,
		&store.OwnerID,
		&store.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find store by owner",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find store by owner %s: %w", ownerID.String(), err)
	}

	return &store, nil
}

// List returns one page of stores with their live averages. When
// userID is set each row also carries that user's own rating.
func (r *storeRepository) List(ctx context.Context, filter StoreFilter, userID *uuid.UUID) ([]*StoreListing, int64, error) {
	where, args := buildStoreWhere(filter)
	orderBy := buildOrderBy(storeSortColumns, filter.SortBy, filter.SortOrder, "s.created_at")

	userJoin := ""
	userColumn := "NULL::int"
	if userID != nil {
		args = append(args, *userID)
		userJoin = fmt.Sprintf("LEFT JOIN ratings mine ON mine.store_id = s.id AND mine.user_id = $%d", len(args))
		userColumn = "mine.value"
	}

	query := fmt.Sprintf(`
		SELECT s.id, s.name, s.email, s.address, s.owner_id, s.created_at,
			COALESCE(avg_r.avg_value, 0) AS avg_rating,
			%s AS user_rating
		FROM stores s
		LEFT JOIN (
			SELECT store_id, AVG(value) AS avg_value
			FROM ratings
			GROUP BY store_id
		) avg_r ON avg_r.store_id = s.id
		%s
		%s
		%s
		LIMIT $%d OFFSET $%d
	`, userColumn, userJoin, where, orderBy, len(args)+1, len(args)+2)

	rows, err := r.db.Query(ctx, query, append(args, filter.Take, filter.Skip)...)
	if err != nil {
		r.log.Error("Failed to list stores", zap.Error(err))
		return nil, 0, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()

	var listings []*StoreListing
	for rows.Next() {
		var listing StoreListing
		err := rows.Scan(
			&listing.Store.ID,
			&listing.Store.Name,
			&listing.Store.Email,
			&listing.Store.Address,
			&listing.Store.OwnerID,
			&listing.Store.CreatedAt,
			&listing.AvgRating,
			&listing.UserRating,
		)
		if err != nil {
			r.log.Error("Failed to scan store row", zap.Error(err))
			return nil, 0, fmt.Errorf("scan store row: %w", err)
		}
		listings = append(listings, &listing)
	}

	countWhere, countArgs := buildStoreWhere(filter)
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM stores s %s`, countWhere)

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.log.Error("Failed to count stores", zap.Error(err))
		return nil, 0, fmt.Errorf("count stores: %w", err)
	}

	return listings, total, nil
}

func (r *storeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM stores`).Scan(&count); err != nil {
		r.log.Error("Failed to count stores", zap.Error(err))
		return 0, fmt.Errorf("count stores: %w", err)
	}
	return count, nil
}

func buildStoreWhere(filter StoreFilter) (string, []any) {
	var conditions []string
	var args []any

	if filter.Name != "" {
		args = append(args, filter.Name)
		conditions = append(conditions, fmt.Sprintf("s.name ILIKE '%%' || $%d || '%%'", len(args)))
	}
	if filter.Email != "" {
		args = append(args, filter.Email)
		conditions = append(conditions, fmt.Sprintf("s.email ILIKE '%%' || $%d || '%%'", len(args)))
	}
	if filter.Address != "" {
		args = append(args, filter.Address)
		conditions = append(conditions, fmt.Sprintf("s.address ILIKE '%%' || $%d || '%%'", len(args)))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}
