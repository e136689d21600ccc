package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"ehotels/shared/constant"
	"ehotels/shared/dto"
	"ehotels/shared/model"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "employee:1",
		ModifiedBy: "employee:2",
	})

	assert.Equal(t, createdAt, mustParse(t, metadata.CreatedAt))
	assert.Equal(t, modifiedAt, mustParse(t, metadata.ModifiedAt))
	assert.Equal(t, "employee:1", metadata.CreatedBy)
	assert.Equal(t, "employee:2", metadata.ModifiedBy)
}

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse(constant.DateFormat, value)
	assert.NoError(t, err)

	return parsed.UTC()
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{name: "all valid", query: "page=2&limit=20", expected: dto.QueryParams{Page: 2, Limit: 20}},
		{name: "defaults applied", query: "", defaultRequest: true, expected: dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit}},
		{name: "no defaults means everything", query: "", expected: dto.QueryParams{}},
		{name: "invalid page ignored", query: "page=abc&limit=5", expected: dto.QueryParams{Limit: 5}},
		{name: "negative limit ignored", query: "limit=-10", defaultRequest: true, expected: dto.QueryParams{Page: 1, Limit: constant.DefaultValueLimit}},
		{name: "sort params are not accepted", query: "sort_by=password&sort_dir=DESC", expected: dto.QueryParams{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/employee/customers?"+tt.query, nil)

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParams_Offset(t *testing.T) {
	assert.Equal(t, 0, dto.QueryParams{}.Offset())
	assert.Equal(t, 0, dto.QueryParams{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, dto.QueryParams{Page: 3, Limit: 10}.Offset())
	assert.False(t, dto.QueryParams{Page: 3}.Paginated())
	assert.True(t, dto.QueryParams{Limit: 3}.Paginated())
}

func TestFilter_GetWhereClause(t *testing.T) {
	today := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		filter dto.Filter
		where  string
		args   map[string]any
	}{
		{
			name:   "eq with table",
			filter: dto.Filter{Field: "status", Value: "Confirmed", Operator: dto.FilterOperatorEq, Table: "bookings"},
			where:  "bookings.status = :bookings_status",
			args:   map[string]any{"bookings_status": "Confirmed"},
		},
		{
			name:   "greater or equal with explicit arg",
			filter: dto.Filter{ArgName: "today", Field: "check_in_date", Value: today, Operator: dto.FilterOperatorGreaterEq},
			where:  "check_in_date >= :today",
			args:   map[string]any{"today": today},
		},
		{
			name:   "in expands slice",
			filter: dto.Filter{Field: "hotel_id", Value: []int64{1, 2}, Operator: dto.FilterOperatorIn},
			where:  "hotel_id IN (:hotel_id_0, :hotel_id_1)",
			args:   map[string]any{"hotel_id_0": int64(1), "hotel_id_1": int64(2)},
		},
		{
			name:   "in with empty slice matches nothing",
			filter: dto.Filter{Field: "hotel_id", Value: []int64{}, Operator: dto.FilterOperatorIn},
			where:  "FALSE",
			args:   map[string]any{},
		},
		{
			name:   "is null",
			filter: dto.Filter{Field: "booking_id", Operator: dto.FilterIsNull, Table: "rentals"},
			where:  "rentals.booking_id IS NULL",
			args:   map[string]any{},
		},
		{
			name:   "unknown operator",
			filter: dto.Filter{Field: "x", Operator: "like"},
			where:  "",
			args:   map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.where, where)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.And(
		dto.Filter{Field: "status", Value: "Confirmed", Operator: dto.FilterOperatorEq},
		dto.FilterGroup{
			Operator: dto.FilterGroupOperatorOr,
			Filters: []any{
				dto.Filter{Field: "room_id", Value: 5, Operator: dto.FilterOperatorEq},
				dto.Filter{Field: "hotel_id", Value: 1, Operator: dto.FilterOperatorEq},
			},
		},
	)

	where, args := group.GetWhereClause()

	assert.Equal(t, "(status = :status AND (room_id = :room_id OR hotel_id = :hotel_id))", where)
	assert.Equal(t, map[string]any{"status": "Confirmed", "room_id": 5, "hotel_id": 1}, args)

	empty := dto.FilterGroup{}
	where, args = empty.GetWhereClause()
	assert.Empty(t, where)
	assert.Empty(t, args)
}
