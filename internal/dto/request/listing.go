package request

import (
	"net/url"

	"store-ratings/pkg/utils"
)

// ListParams is the shared part of the listing contract: skip/take
// pagination plus a sort direction. Take is clamped to [1,100]
// (default 20), skip floors at 0. The sort key lives on each request
// type because its allow-list differs per entity.
type ListParams struct {
	SortOrder string `validate:"omitempty,oneof=asc desc"`
	Skip      int    `validate:"gte=0"`
	Take      int    `validate:"gte=1,lte=100"`
}

func ParseListParams(query url.Values) ListParams {
	skip := utils.ParseInt(query.Get("skip"), 0)
	if skip < 0 {
		skip = 0
	}

	take := utils.ParseInt(query.Get("take"), 20)
	if take < 1 {
		take = 1
	}
	if take > 100 {
		take = 100
	}

	return ListParams{
		SortOrder: query.Get("sortOrder"),
		Skip:      skip,
		Take:      take,
	}
}

type ListUsersRequest struct {
	ListParams
	Name    string `validate:"-"`
	Email   string `validate:"-"`
	Address string `validate:"-"`
	Role    string `validate:"omitempty,oneof=ADMIN USER OWNER"`
	SortBy  string `validate:"omitempty,oneof=name email address role createdAt"`
}

type ListStoresRequest struct {
	ListParams
	Name    string `validate:"-"`
	Email   string `validate:"-"`
	Address string `validate:"-"`
	SortBy  string `validate:"omitempty,oneof=name email address createdAt"`
}

func ParseListUsersRequest(query url.Values) *ListUsersRequest {
	return &ListUsersRequest{
		ListParams: ParseListParams(query),
		Name:       query.Get("name"),
		Email:      query.Get("email"),
		Address:    query.Get("address"),
		Role:       query.Get("role"),
		SortBy:     query.Get("sortBy"),
	}
}

func ParseListStoresRequest(query url.Values) *ListStoresRequest {
	return &ListStoresRequest{
		ListParams: ParseListParams(query),
		Name:       query.Get("name"),
		Email:      query.Get("email"),
		Address:    query.Get("address"),
		SortBy:     query.Get("sortBy"),
	}
}
