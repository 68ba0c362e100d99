package model

import (
	"time"

	bookingModel "reserve/internal/domains/booking/model"
)

const (
	TableName  = "booking_logs"
	EntityName = "booking_log"

	FieldID              = "id"
	FieldTenant          = "tenant"
	FieldBookingID       = "booking_id"
	FieldCalendarEventID = "calendar_event_id"
	FieldRequestNumber   = "request_number"
	FieldChangedAt       = "changed_at"
)

// BookingLog is one accepted transition. Rows are never updated.
type BookingLog struct {
	ID              string                   `db:"id"                json:"id"`
	Tenant          string                   `db:"tenant"            json:"-"`
	BookingID       string                   `db:"booking_id"        json:"bookingId"`
	CalendarEventID string                   `db:"calendar_event_id" json:"calendarEventId"`
	Status          bookingModel.StatusLabel `db:"status"            json:"status"`
	ChangedBy       string                   `db:"changed_by"        json:"changedBy"`
	ChangedAt       time.Time                `db:"changed_at"        json:"changedAt"`
	Note            string                   `db:"note"              json:"note,omitempty"`
	RequestNumber   int64                    `db:"request_number"    json:"requestNumber"`
}
