// Package gateway sends lifecycle events to the authoritative machine instance.
package gateway

//go:generate go run go.uber.org/mock/mockgen -source=./gateway.go -destination=../mocks/gateway_mock.go -package=mocks

import (
	"context"

	"reserve/config"
	"reserve/infras/otel"
	"reserve/internal/domains/booking/machine"
	"reserve/internal/domains/booking/model"
	"reserve/internal/domains/booking/repository"

	"github.com/rs/zerolog/log"
)

const (
	ModeLocal  = "local"
	ModeRemote = "remote"
)

type Command struct {
	Tenant          string
	CalendarEventID string
	Event           machine.Event
	Actor           string
}

type Gateway interface {
	Transition(ctx context.Context, cmd Command) Result
}

// TransitionRequest is the body accepted by the transition endpoint.
type TransitionRequest struct {
	CalendarEventID string             `json:"calendarEventId" validate:"required"`
	EventType       string             `json:"eventType" validate:"required"`
	Email           string             `json:"email" validate:"required,email"`
	Reason          string             `json:"reason,omitempty"`
	Tenant          string             `json:"tenant,omitempty" validate:"omitempty,tenant"`
	Edit            model.ServiceFlags `json:"edit,omitempty"`
}

func NewTransitionRequest(cmd Command) TransitionRequest {
	return TransitionRequest{
		CalendarEventID: cmd.CalendarEventID,
		EventType:       cmd.Event.Name(),
		Email:           cmd.Actor,
		Reason:          cmd.Event.Reason,
		Tenant:          cmd.Tenant,
		Edit:            cmd.Event.Edit,
	}
}

// Command parses the wire request back into a command.
func (r TransitionRequest) Command() (Command, error) {
	event, err := machine.ParseEvent(r.EventType)
	if err != nil {
		return Command{}, err //nolint:wrapcheck
	}

	event.Reason = r.Reason
	event.Edit = r.Edit

	return Command{
		Tenant:          r.Tenant,
		CalendarEventID: r.CalendarEventID,
		Event:           event,
		Actor:           r.Email,
	}, nil
}

type TransitionResponse struct {
	Accepted bool            `json:"accepted"`
	NewState model.StateName `json:"newState"`
	Snapshot *model.Snapshot `json:"snapshot,omitempty"`
	Path     []machine.Step  `json:"path"`
}

func NewTransitionResponse(r Result) TransitionResponse {
	path := r.Path
	if path == nil {
		path = []machine.Step{}
	}

	return TransitionResponse{
		Accepted: r.Accepted,
		NewState: r.NewState,
		Snapshot: r.Snapshot,
		Path:     path,
	}
}

// Result converts a decoded response into a successful result.
func (t TransitionResponse) Result() Result {
	return Result{
		Success:  true,
		Accepted: t.Accepted,
		NewState: model.NormalizeStateName(string(t.NewState)),
		Snapshot: t.Snapshot,
		Path:     t.Path,
	}
}

// New picks the gateway configured by Booking.Transition.Mode.
func New(cfg *config.Config, repo repository.Booking, m *machine.Machine, otel otel.Otel) Gateway {
	if cfg.Booking.Transition.Mode == ModeRemote {
		log.Info().Str("endpoint", cfg.Booking.Transition.Endpoint).Msg("using remote transition gateway")

		return NewRemote(cfg, otel)
	}

	return NewLocal(repo, m, otel)
}
