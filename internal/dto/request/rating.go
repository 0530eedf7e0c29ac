package request

type RateRequest struct {
	Value int `json:"value" validate:"required,gte=1,lte=5"`
}
