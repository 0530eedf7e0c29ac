package response

import (
	"time"

	"store-ratings/internal/data/entity"
)

// StoreItem is a row of the signed-in listing: live average plus the
// caller's own rating (null when they have not rated the store).
type StoreItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	OverallRating float64 `json:"overallRating"`
	UserRating    *int    `json:"userRating"`
}

// AdminStoreItem is a row of the admin listing with the live average.
type AdminStoreItem struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   *string `json:"email"`
	Address string  `json:"address"`
	Rating  float64 `json:"rating"`
}

type StoreResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Address   string    `json:"address"`
	OwnerID   *string   `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
}

func StoreToResponse(store *entity.Store) StoreResponse {
	resp := StoreResponse{
		ID:        store.ID.String(),
		Name:      store.Name,
		Email:     store.Email,
		Address:   store.Address,
		CreatedAt: store.CreatedAt,
	}
	if store.OwnerID != nil {
		ownerID := store.OwnerID.String()
		resp.OwnerID = &ownerID
	}
	return resp
}
