package repository

import (
	"errors"

	"store-ratings/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ErrDuplicate marks a unique-constraint violation (e.g. users.email,
// ratings user+store). The database is the arbiter; services translate
// this into a conflict for the caller.
var ErrDuplicate = errors.New("duplicate key")

// Repository groups all repositories
type Repository struct {
	User   UserRepository
	Store  StoreRepository
	Rating RatingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:   NewUserRepository(db, log),
		Store:  NewStoreRepository(db, log),
		Rating: NewRatingRepository(db, log),
	}
}

// isUniqueViolation reports whether err is Postgres error 23505.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
