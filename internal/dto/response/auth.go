package response

import (
	"store-ratings/internal/data/entity"
)

type SignupResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

type UserProfile struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Role    entity.Role `json:"role"`
	Address string      `json:"address"`
}

func UserToProfile(user *entity.User) UserProfile {
	return UserProfile{
		ID:      user.ID.String(),
		Name:    user.Name,
		Email:   user.Email,
		Role:    user.Role,
		Address: user.Address,
	}
}
