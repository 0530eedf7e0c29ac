package request

type CreateStoreRequest struct {
	Name    string  `json:"name" validate:"required"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Address string  `json:"address" validate:"required,max=400"`
	OwnerID *string `json:"ownerId,omitempty" validate:"omitempty,uuid"`
}
