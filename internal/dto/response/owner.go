package response

import "time"

type OwnerStore struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type Rater struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Value   int       `json:"value"`
	RatedAt time.Time `json:"ratedAt"`
}

// OwnerSummaryResponse: the owner's store, its rounded average and the
// roster of everyone who rated it, first rater first.
type OwnerSummaryResponse struct {
	Store     OwnerStore `json:"store"`
	AvgRating float64    `json:"avgRating"`
	Raters    []Rater    `json:"raters"`
}
