package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"reserve/shared/model"
)

const (
	TableName  = "room_settings"
	EntityName = "room_setting"

	FieldID                = "id"
	FieldTenant            = "tenant"
	FieldRoomID            = "room_id"
	FieldName              = "name"
	FieldShouldAutoApprove = "should_auto_approve"
	FieldAutoApproval      = "auto_approval"
)

// Normalized requester roles used as keys of the hour limits.
const (
	RoleAdmin   = "admin"
	RoleFaculty = "faculty"
	RoleStudent = "student"
)

// NoLimit in MinHour or MaxHour means the room does not bound that role.
const NoLimit = -1

var errInvalidAutoApproval = errors.New("invalid auto approval config")

type RoomSetting struct {
	ID                string        `db:"id"`
	Tenant            string        `db:"tenant"`
	RoomID            string        `db:"room_id"`
	Name              string        `db:"name"`
	Capacity          int           `db:"capacity"`
	ShouldAutoApprove *bool         `db:"should_auto_approve"`
	AutoApproval      *AutoApproval `db:"auto_approval"`
	model.Metadata
}

// AutoApproval holds per-role hour limits and the services a room allows without review.
type AutoApproval struct {
	MinHour    map[string]float64 `json:"minHour,omitempty"`
	MaxHour    map[string]float64 `json:"maxHour,omitempty"`
	Conditions map[string]bool    `json:"conditions,omitempty"`
}

// Enabled reports whether the room carries any auto-approval config at all.
func (a *AutoApproval) Enabled() bool {
	if a == nil {
		return false
	}

	return len(a.MinHour) > 0 || len(a.MaxHour) > 0 || len(a.Conditions) > 0
}

func (a AutoApproval) Value() (driver.Value, error) {
	raw, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidAutoApproval, err)
	}

	return raw, nil
}

func (a *AutoApproval) Scan(src any) error {
	var raw []byte

	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("%w: unsupported type %T", errInvalidAutoApproval, src)
	}

	if err := json.Unmarshal(raw, a); err != nil {
		return fmt.Errorf("%w: %w", errInvalidAutoApproval, err)
	}

	return nil
}
