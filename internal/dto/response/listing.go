package response

// ListResponse is the paginated envelope: total is the match count
// before pagination, items the current page.
type ListResponse[T any] struct {
	Total int64 `json:"total"`
	Items []T   `json:"items"`
}

func NewListResponse[T any](items []T, total int64) *ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return &ListResponse[T]{Total: total, Items: items}
}
