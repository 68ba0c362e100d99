// Package fallback reproduces a transition from the flat booking fields when the transition gateway is
// unavailable. Its results feed the same side-effect orchestrator as the gateway path.
package fallback

//go:generate go run go.uber.org/mock/mockgen -source=./fallback.go -destination=../mocks/fallback_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"reserve/infras/otel"
	"reserve/internal/domains/booking/gateway"
	"reserve/internal/domains/booking/machine"
	"reserve/internal/domains/booking/model"
	logService "reserve/internal/domains/bookinglog/service"
	"reserve/shared/constant"
	"reserve/shared/timezone"

	"github.com/rs/zerolog/log"
)

const NoteAutoCancel = "Automatically canceled after a no show or decline"

type Fallback interface {
	Derive(ctx context.Context, booking model.Booking, cmd gateway.Command, failed gateway.Result) gateway.Result
}

type processor struct {
	logs logService.BookingLog
	otel otel.Otel
	now  func() time.Time
}

func New(logs logService.BookingLog, otel otel.Otel) Fallback {
	return &processor{
		logs: logs,
		otel: otel,
		now:  timezone.Now,
	}
}

// Derive computes the path the machine would have taken for cmd. Events it cannot reproduce leave the
// failure in place.
func (p *processor) Derive(ctx context.Context, booking model.Booking, cmd gateway.Command, failed gateway.Result) gateway.Result {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".fallback.Derive")
	defer scope.End()

	log.Warn().Err(failed.Err).
		Str("calendarEventId", booking.CalendarEventID).
		Str("event", cmd.Event.Name()).
		Msg("transition gateway failed, deriving transition from booking fields")

	current := booking.CurrentState()
	if current == model.StateUnknown {
		current = model.StateRequested
	}

	d := derivation{booking: booking, current: current, failed: failed}

	switch cmd.Event.Type {
	case machine.EventApprove:
		return d.approve()
	case machine.EventDecline:
		return d.decline(cmd.Event.Reason)
	case machine.EventCancel:
		return d.cancel(p.automaticCancel(ctx, booking))
	case machine.EventCheckIn:
		return d.from(model.StateApproved, machine.Step{State: model.StateCheckedIn})
	case machine.EventCheckOut:
		return d.checkOut()
	case machine.EventNoShow:
		return d.noShow(p.now())
	default:
		failed.Err = fmt.Errorf("%w: %s: %w", ErrUnsupported, cmd.Event.Name(), failed.Err)

		return failed
	}
}

// automaticCancel reports whether the last non-cancel log entry is a no show or a decline.
func (p *processor) automaticCancel(ctx context.Context, booking model.Booking) bool {
	logs, err := p.logs.ListByCalendarEvent(ctx, booking.Tenant, booking.CalendarEventID)
	if err != nil {
		log.Error().Err(err).Str("calendarEventId", booking.CalendarEventID).Msg("failed to read booking log, treating cancel as user initiated")

		return false
	}

	for i := len(logs) - 1; i >= 0; i-- {
		if logs[i].Status == model.StatusCanceled {
			continue
		}

		return logs[i].Status == model.StatusNoShow || logs[i].Status == model.StatusDeclined
	}

	return false
}
