package gateway

import (
	"context"
	"fmt"
	"time"

	"reserve/infras/otel"
	"reserve/internal/domains/booking/machine"
	"reserve/internal/domains/booking/model"
	"reserve/internal/domains/booking/repository"
	"reserve/shared"
	"reserve/shared/constant"
	"reserve/shared/failure"
	"reserve/shared/timezone"
)

type local struct {
	repo    repository.Booking
	machine *machine.Machine
	otel    otel.Otel
	now     func() time.Time
}

// NewLocal runs the machine in process against the stored snapshot. It does not persist anything.
func NewLocal(repo repository.Booking, m *machine.Machine, otel otel.Otel) Gateway {
	return &local{
		repo:    repo,
		machine: m,
		otel:    otel,
		now:     timezone.Now,
	}
}

func (g *local) Transition(ctx context.Context, cmd Command) Result {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelMachineScopeName, constant.OtelMachineScopeName+".local.Transition")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		"calendarEventId": cmd.CalendarEventID,
		"event":           cmd.Event.Name(),
	})

	booking, err := g.repo.Get(ctx, shared.FilterByTenant(cmd.Tenant, model.FieldCalendarEventID, cmd.CalendarEventID, model.TableName))
	if err != nil {
		scope.TraceError(err)

		return Failed(fmt.Errorf("failed to load booking: %w", err))
	}

	if booking.ID == constant.Empty {
		return Failed(failure.NotFound(model.EntityName))
	}

	t := g.machine.Send(machine.Restore(booking), cmd.Event, machine.Facts{
		Now:       g.now(),
		StartDate: booking.StartDate,
	})

	return FromTransition(t)
}
