package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"reserve/shared/dto"
	"reserve/shared/model"

	"github.com/stretchr/testify/assert"
)

func TestMetadataFromModel(t *testing.T) {
	source := model.Metadata{
		CreatedAt:  time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		ModifiedAt: time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC),
		CreatedBy:  "abc123@nyu.edu",
		ModifiedBy: "admin@nyu.edu",
	}

	metadata := dto.Metadata{}
	metadata.FromModel(source)

	assert.NotEmpty(t, metadata.CreatedAt)
	assert.NotEmpty(t, metadata.ModifiedAt)
	assert.Equal(t, "abc123@nyu.edu", metadata.CreatedBy)
	assert.Equal(t, "admin@nyu.edu", metadata.ModifiedBy)

	unset := dto.Metadata{}
	unset.FromModel(model.Metadata{CreatedBy: "system"})

	assert.Empty(t, unset.CreatedAt)
	assert.Empty(t, unset.ModifiedAt)
}

func TestQueryParamsFromRequest(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		withDefaults bool
		expected     dto.QueryParams
	}{
		{
			name:     "all parameters",
			query:    "?page=2&limit=20&sort_by=name&sort_dir=asc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "name", SortDir: dto.SortDirAsc},
		},
		{
			name:     "invalid values are ignored",
			query:    "?page=-1&limit=abc&sort_dir=sideways",
			expected: dto.QueryParams{},
		},
		{
			name:     "limit is capped",
			query:    "?limit=5000",
			expected: dto.QueryParams{Limit: 100},
		},
		{
			name:         "defaults fill the gaps",
			query:        "?sort_by=room_id",
			withDefaults: true,
			expected:     dto.QueryParams{Page: 1, Limit: 10, SortBy: "room_id", SortDir: dto.SortDirDesc},
		},
		{
			name:         "defaults with empty query",
			withDefaults: true,
			expected:     dto.QueryParams{Page: 1, Limit: 10, SortBy: "created_at", SortDir: dto.SortDirDesc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/room-settings"+tt.query, nil)

			got := dto.QueryParams{}
			got.FromRequest(req, tt.withDefaults)

			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFilterGetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "equality with table",
			filter:    dto.Filter{Field: "status", Value: "APPROVED", Operator: dto.FilterOperatorEq, Table: "bookings"},
			wantWhere: "bookings.status = :status",
			wantArgs:  map[string]any{"status": "APPROVED"},
		},
		{
			name:      "custom arg name",
			filter:    dto.Filter{ArgName: "cutoff", Field: "start_date", Value: 5, Operator: dto.FilterOperatorLessEq},
			wantWhere: "start_date <= :cutoff",
			wantArgs:  map[string]any{"cutoff": 5},
		},
		{
			name:      "like wraps the value",
			filter:    dto.Filter{Field: "name", Value: "lab", Operator: dto.FilterOperatorLike},
			wantWhere: "LOWER(name) LIKE LOWER(:name)",
			wantArgs:  map[string]any{"name": "%lab%"},
		},
		{
			name:      "in expands the slice",
			filter:    dto.Filter{Field: "room_id", Value: []string{"202", "233"}, Operator: dto.FilterOperatorIn},
			wantWhere: "room_id IN (:room_id_0, :room_id_1)",
			wantArgs:  map[string]any{"room_id_0": "202", "room_id_1": "233"},
		},
		{
			name:      "in with an empty slice matches nothing",
			filter:    dto.Filter{Field: "room_id", Value: []string{}, Operator: dto.FilterOperatorIn},
			wantWhere: "FALSE",
			wantArgs:  map[string]any{},
		},
		{
			name:      "is null",
			filter:    dto.Filter{Field: "checked_in_at", Operator: dto.FilterIsNull, Table: "bookings"},
			wantWhere: "bookings.checked_in_at IS NULL",
			wantArgs:  map[string]any{},
		},
		{
			name:      "unknown operator",
			filter:    dto.Filter{Field: "x", Operator: "between"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroupGetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "tenant", Value: "mc", Operator: dto.FilterOperatorEq},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "status", Value: "APPROVED", Operator: dto.FilterOperatorEq},
					dto.Filter{Field: "checked_in_at", Operator: dto.FilterIsNotNull},
				},
			},
			dto.FilterGroup{},
			"ignored",
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(tenant = :tenant AND (status = :status OR checked_in_at IS NOT NULL))", where)
	assert.Equal(t, map[string]any{"tenant": "mc", "status": "APPROVED"}, args)

	empty := dto.FilterGroup{}
	where, args = empty.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}
