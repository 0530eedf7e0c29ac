package response

import (
	"time"

	"store-ratings/internal/data/entity"
)

type UserResponse struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Address   string      `json:"address"`
	Role      entity.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

// UserDetailResponse adds the owned store's average rating, null unless
// the user is an OWNER with an assigned store.
type UserDetailResponse struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Address string      `json:"address"`
	Role    entity.Role `json:"role"`
	Rating  *float64    `json:"rating"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Address:   user.Address,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

type CreateUserResponse struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Role  entity.Role `json:"role"`
}
