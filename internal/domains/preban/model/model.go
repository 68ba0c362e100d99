package model

import "time"

const (
	TableName  = "pre_ban_logs"
	EntityName = "pre_ban_log"

	FieldID        = "id"
	FieldTenant    = "tenant"
	FieldNetID     = "net_id"
	FieldBookingID = "booking_id"
)

// PreBanLog records one policy violation. Exactly one of the dates is set.
type PreBanLog struct {
	ID             string     `db:"id"               json:"id"`
	Tenant         string     `db:"tenant"           json:"-"`
	NetID          string     `db:"net_id"           json:"netId"`
	BookingID      string     `db:"booking_id"       json:"bookingId"`
	LateCancelDate *time.Time `db:"late_cancel_date" json:"lateCancelDate,omitempty"`
	NoShowDate     *time.Time `db:"no_show_date"     json:"noShowDate,omitempty"`
	CreatedAt      time.Time  `db:"created_at"       json:"createdAt"`
}
