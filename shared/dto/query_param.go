package dto

import (
	"net/http"
	"strconv"

	"ehotels/shared/constant"
)

// QueryParams carries optional pagination. Ordering is fixed per entity by the
// repository and cannot be chosen by the caller.
type QueryParams struct {
	Page  int `json:"page"  validate:"omitempty,min=1"`
	Limit int `json:"limit" validate:"omitempty,min=1,max=500"`
}

// FromRequest populates QueryParams from the HTTP request. Invalid or
// non-positive values are ignored. With defaultRequest the defaults apply to
// whatever was not provided; without it an absent page/limit means "all rows".
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}

// Paginated reports whether a LIMIT applies.
func (q QueryParams) Paginated() bool {
	return q.Limit > 0
}

// Offset is the number of rows skipped before the current page.
func (q QueryParams) Offset() int {
	if q.Page <= 1 || q.Limit <= 0 {
		return 0
	}

	return (q.Page - 1) * q.Limit
}
