// Package penalty evaluates late cancellations and no-shows against the booking policy.
package penalty

import (
	"time"

	"reserve/internal/domains/booking/model"
)

const (
	// LateCancelWindow is how close to the start a cancellation counts as late.
	LateCancelWindow = 24.0
	// GracePeriod is how long after requesting a booking it can be canceled freely.
	GracePeriod = 1.0
)

// Kind of recorded violation.
type Kind string

const (
	KindLateCancel Kind = "late-cancel"
	KindNoShow     Kind = "no-show"
)

// IsPolicyViolation reports whether the booking is subject to the penalty policy at all.
// Only user bookings with a start date and a request timestamp qualify.
func IsPolicyViolation(booking model.Booking) bool {
	if booking.Origin != model.OriginUser {
		return false
	}

	return !booking.StartDate.IsZero() && booking.RequestedAt != nil && !booking.RequestedAt.IsZero()
}

// IsLateCancel is true when the event starts within 24h and the booking is older than the 1h grace period.
func IsLateCancel(booking model.Booking, now time.Time) bool {
	if !IsPolicyViolation(booking) {
		return false
	}

	return HoursToEvent(booking, now) <= LateCancelWindow && HoursSinceRequest(booking, now) > GracePeriod
}

func HoursToEvent(booking model.Booking, now time.Time) float64 {
	return booking.StartDate.Sub(now).Hours()
}

func HoursSinceRequest(booking model.Booking, now time.Time) float64 {
	if booking.RequestedAt == nil {
		return 0
	}

	return now.Sub(*booking.RequestedAt).Hours()
}
