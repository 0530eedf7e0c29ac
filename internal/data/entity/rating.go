package entity

import (
	"github.com/google/uuid"
)

// Rating is unique per (UserID, StoreID); a re-rate replaces Value in
// place and keeps the original CreatedAt.
type Rating struct {
	Base
	UserID  uuid.UUID `db:"user_id"`
	StoreID uuid.UUID `db:"store_id"`
	Value   int       `db:"value"` // 1-5
}
