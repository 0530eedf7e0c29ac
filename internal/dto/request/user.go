package request

// CreateUserRequest is the admin variant of signup: the role is chosen
// instead of being fixed to USER.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=20,max=60"`
	Email    string `json:"email" validate:"required,email"`
	Address  string `json:"address" validate:"required,max=400"`
	Password string `json:"password" validate:"required,strongpassword"`
	Role     string `json:"role" validate:"required,oneof=ADMIN USER OWNER"`
}
