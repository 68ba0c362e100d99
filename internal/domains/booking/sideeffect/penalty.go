package sideeffect

import (
	"time"

	"reserve/internal/domains/booking/gateway"
	"reserve/internal/domains/booking/machine"
	"reserve/internal/domains/booking/model"
	"reserve/internal/domains/booking/penalty"
	prebanModel "reserve/internal/domains/preban/model"
)

// violation decides whether step is penalized. Cascaded cancels, including the one after a no show, never
// count as a late cancel.
func violation(booking model.Booking, cmd gateway.Command, step machine.Step, now time.Time) (prebanModel.PreBanLog, bool) {
	entry := prebanModel.PreBanLog{
		Tenant:    booking.Tenant,
		NetID:     booking.NetID,
		BookingID: booking.ID,
		CreatedAt: now,
	}

	switch {
	case step.State == model.StateNoShow && penalty.IsPolicyViolation(booking):
		entry.NoShowDate = &now

		return entry, true
	case step.State == model.StateCanceled && !step.Cascade && cmd.Event.Type == machine.EventCancel && penalty.IsLateCancel(booking, now):
		entry.LateCancelDate = &now

		return entry, true
	default:
		return prebanModel.PreBanLog{}, false
	}
}
