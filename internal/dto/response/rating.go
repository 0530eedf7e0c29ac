package response

import (
	"time"

	"store-ratings/internal/data/entity"
)

type RatingResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	StoreID   string    `json:"storeId"`
	Value     int       `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
}

// RateResponse reports whether the upsert inserted a fresh row or
// replaced the caller's existing value.
type RateResponse struct {
	Created bool           `json:"created,omitempty"`
	Updated bool           `json:"updated,omitempty"`
	Rating  RatingResponse `json:"rating"`
}

func RatingToResponse(rating *entity.Rating) RatingResponse {
	return RatingResponse{
		ID:        rating.ID.String(),
		UserID:    rating.UserID.String(),
		StoreID:   rating.StoreID.String(),
		Value:     rating.Value,
		CreatedAt: rating.CreatedAt,
	}
}
