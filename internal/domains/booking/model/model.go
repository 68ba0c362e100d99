package model

import (
	"time"

	"reserve/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldTenant          = "tenant"
	FieldCalendarEventID = "calendar_event_id"
	FieldRequestNumber   = "request_number"
	FieldNetID           = "net_id"
	FieldStartDate       = "start_date"
	FieldStatus          = "status"
	FieldXState          = "xstate_data"
	FieldOrigin          = "origin"
	FieldCheckedInAt     = "checked_in_at"

	CacheKeyBooking = "booking"
)

// Origin describes how a booking entered the system.
type Origin string

const (
	OriginUser   Origin = "user"
	OriginVIP    Origin = "vip"
	OriginWalkIn Origin = "walk-in"
	OriginAdmin  Origin = "admin"
	OriginSystem Origin = "system"
)

func (o Origin) Valid() bool {
	switch o {
	case OriginUser, OriginVIP, OriginWalkIn, OriginAdmin, OriginSystem:
		return true
	default:
		return false
	}
}

// SystemActor is the changedBy value of automatic transitions.
const SystemActor = "System"

type Booking struct {
	ID                string         `db:"id"`
	Tenant            string         `db:"tenant"`
	CalendarEventID   string         `db:"calendar_event_id"`
	RequestNumber     int64          `db:"request_number"`
	Email             string         `db:"email"`
	NetID             string         `db:"net_id"`
	FirstName         string         `db:"first_name"`
	LastName          string         `db:"last_name"`
	Role              string         `db:"role"`
	Title             string         `db:"title"`
	RoomIDs           pq.StringArray `db:"room_ids"`
	StartDate         time.Time      `db:"start_date"`
	EndDate           time.Time      `db:"end_date"`
	Origin            Origin         `db:"origin"`
	ServicesRequested ServiceFlags   `db:"services_requested"`
	Status            StatusLabel    `db:"status"`
	BookingStatus
	XState *XStateData `db:"xstate_data"`
	model.Metadata
}

// BookingStatus is the audit trail of lifecycle timestamps. The machine snapshot is authoritative for the
// current state.
type BookingStatus struct {
	RequestedAt     *time.Time `db:"requested_at"`
	RequestedBy     string     `db:"requested_by"`
	FirstApprovedAt *time.Time `db:"first_approved_at"`
	FirstApprovedBy string     `db:"first_approved_by"`
	FinalApprovedAt *time.Time `db:"final_approved_at"`
	FinalApprovedBy string     `db:"final_approved_by"`
	DeclinedAt      *time.Time `db:"declined_at"`
	DeclinedBy      string     `db:"declined_by"`
	DeclineReason   string     `db:"decline_reason"`
	CanceledAt      *time.Time `db:"canceled_at"`
	CanceledBy      string     `db:"canceled_by"`
	CheckedInAt     *time.Time `db:"checked_in_at"`
	CheckedInBy     string     `db:"checked_in_by"`
	CheckedOutAt    *time.Time `db:"checked_out_at"`
	CheckedOutBy    string     `db:"checked_out_by"`
	NoShowedAt      *time.Time `db:"no_showed_at"`
	NoShowedBy      string     `db:"no_showed_by"`
	ClosedAt        *time.Time `db:"closed_at"`
	ClosedBy        string     `db:"closed_by"`
	WalkedInAt      *time.Time `db:"walked_in_at"`
	WalkedInBy      string     `db:"walked_in_by"`
}

// Stamp returns the columns recording that the booking reached state at the given time.
func (s StateName) Stamp(at time.Time, by, reason string) map[string]any {
	stamp := func(prefix string) map[string]any {
		return map[string]any{prefix + "_at": at, prefix + "_by": by}
	}

	switch s {
	case StateRequested:
		return stamp("requested")
	case StatePreApproved:
		return stamp("first_approved")
	case StateApproved:
		return stamp("final_approved")
	case StateDeclined:
		fields := stamp("declined")
		fields["decline_reason"] = reason

		return fields
	case StateCanceled:
		return stamp("canceled")
	case StateCheckedIn:
		return stamp("checked_in")
	case StateCheckedOut:
		return stamp("checked_out")
	case StateNoShow:
		return stamp("no_showed")
	case StateClosed:
		return stamp("closed")
	default:
		return map[string]any{}
	}
}

// ApplyStamp mirrors Stamp on the in-memory booking.
func (b *Booking) ApplyStamp(state StateName, at time.Time, by, reason string) {
	t := at
	s := &b.BookingStatus

	switch state {
	case StateRequested:
		s.RequestedAt, s.RequestedBy = &t, by
	case StatePreApproved:
		s.FirstApprovedAt, s.FirstApprovedBy = &t, by
	case StateApproved:
		s.FinalApprovedAt, s.FinalApprovedBy = &t, by
	case StateDeclined:
		s.DeclinedAt, s.DeclinedBy, s.DeclineReason = &t, by, reason
	case StateCanceled:
		s.CanceledAt, s.CanceledBy = &t, by
	case StateCheckedIn:
		s.CheckedInAt, s.CheckedInBy = &t, by
	case StateCheckedOut:
		s.CheckedOutAt, s.CheckedOutBy = &t, by
	case StateNoShow:
		s.NoShowedAt, s.NoShowedBy = &t, by
	case StateClosed:
		s.ClosedAt, s.ClosedBy = &t, by
	}
}

// CurrentState prefers the snapshot and falls back to the flat status mirror.
func (b *Booking) CurrentState() StateName {
	if b.XState != nil {
		if state := b.XState.Snapshot.State(); state != StateUnknown {
			return state
		}
	}

	return StateFromLabel(b.Status)
}

// StateFromLabel is the best-effort inverse of StateName.Label for legacy rows without a snapshot.
func StateFromLabel(label StatusLabel) StateName {
	switch label {
	case StatusRequested:
		return StateRequested
	case StatusPending:
		return StatePreApproved
	case StatusApproved:
		return StateApproved
	case StatusDeclined:
		return StateDeclined
	case StatusCanceled:
		return StateCanceled
	case StatusCheckedIn:
		return StateCheckedIn
	case StatusCheckedOut:
		return StateCheckedOut
	case StatusNoShow:
		return StateNoShow
	default:
		return StateUnknown
	}
}

func (b *Booking) DurationHours() float64 {
	return b.EndDate.Sub(b.StartDate).Hours()
}
