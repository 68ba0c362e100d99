package repository

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"reserve/infras/otel/mocks"
	"reserve/shared/dto"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

type audit struct {
	CreatedAt time.Time `db:"created_at"`
}

type row struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	RoomName string `db:"room_name" table:"room_settings" column:"name"`
	Ignored  string `db:"-"`
	Untagged string
	audit
}

func newTestRepository() Repository[row] {
	return NewRepository[row]("row", "bookings", "id", nil, mocks.NewOtel())
}

func TestGetColumns(t *testing.T) {
	repo := newTestRepository()

	assert.Equal(t, []string{"id", "name", "created_at"}, repo.InsertColumns)
	assert.Equal(t, "bookings.id, bookings.name, room_settings.name AS room_name, bookings.created_at", repo.selectList())
	assert.Equal(t, "bookings.id", repo.selectList("id"))
}

func TestOrdering(t *testing.T) {
	repo := newTestRepository()

	tests := []struct {
		name     string
		params   dto.QueryParams
		expected string
	}{
		{name: "known column", params: dto.QueryParams{SortBy: "created_at", SortDir: dto.SortDirAsc}, expected: "ORDER BY bookings.created_at ASC"},
		{name: "aliased column", params: dto.QueryParams{SortBy: "room_name", SortDir: dto.SortDirDesc}, expected: "ORDER BY room_settings.name DESC"},
		{name: "unknown column is dropped", params: dto.QueryParams{SortBy: "name; DROP TABLE bookings", SortDir: dto.SortDirAsc}, expected: ""},
		{name: "missing direction", params: dto.QueryParams{SortBy: "name"}, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, repo.ordering(tt.params))
		})
	}
}

func TestBuildWhereClauseEmpty(t *testing.T) {
	repo := newTestRepository()

	where, args := repo.BuildWhereClause(dto.FilterGroup{})

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestIsUniqueViolation(t *testing.T) {
	unique := &pq.Error{Code: "23505"}

	assert.True(t, IsUniqueViolation(unique))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", unique)))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
}
