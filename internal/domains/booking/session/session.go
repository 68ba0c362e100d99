// Package session is a per-booking handle for callers that drive one booking through several events.
// A session restores the snapshot when opened, serializes the events sent through it and tells subscribers
// about every real change until it is closed.
package session

//go:generate go run go.uber.org/mock/mockgen -source=./session.go -destination=../mocks/session_mock.go -package=mocks

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"reserve/internal/domains/booking/gateway"
	"reserve/internal/domains/booking/machine"
	"reserve/internal/domains/booking/model"
	"reserve/internal/domains/booking/sideeffect"
)

// Lifecycle is the part of the booking service a session needs.
type Lifecycle interface {
	Load(ctx context.Context, tenant, calendarEventID string) (model.Booking, error)
	EnsureSnapshot(ctx context.Context, booking model.Booking) (model.Booking, error)
	SendEvent(ctx context.Context, cmd gateway.Command) (sideeffect.Outcome, error)
}

// State is what subscribers receive.
type State struct {
	State    model.StateName
	Label    model.StatusLabel
	Snapshot model.Snapshot
	Path     []machine.Step
}

type Session struct {
	lifecycle Lifecycle
	tenant    string
	actor     string

	mu          sync.Mutex
	booking     model.Booking
	subscribers map[int]func(State)
	nextID      int
	closed      bool
}

// Open restores the booking's snapshot, creating and persisting the initial one for rows that have none.
func Open(ctx context.Context, lifecycle Lifecycle, tenant, calendarEventID, actor string) (*Session, error) {
	booking, err := lifecycle.Load(ctx, tenant, calendarEventID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	booking, err = lifecycle.EnsureSnapshot(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("failed to restore booking snapshot: %w", err)
	}

	return &Session{
		lifecycle:   lifecycle,
		tenant:      tenant,
		actor:       actor,
		booking:     booking,
		subscribers: map[int]func(State){},
	}, nil
}

// Subscribe registers fn for changes. The returned func removes it and is safe to call more than once.
func (s *Session) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return func() {}
	}

	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		delete(s.subscribers, id)
	}
}

// Send applies event. Subscribers are only notified when the booking actually changed, and are called after
// the session is unlocked so they may read State or unsubscribe.
func (s *Session) Send(ctx context.Context, event machine.Event) (sideeffect.Outcome, error) {
	out, state, listeners, err := s.apply(ctx, event)
	if err != nil {
		return out, err
	}

	for _, fn := range listeners {
		fn(state)
	}

	return out, nil
}

// apply runs event under the lock and returns the subscribers to notify, in subscription order.
func (s *Session) apply(ctx context.Context, event machine.Event) (sideeffect.Outcome, State, []func(State), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return sideeffect.Outcome{}, State{}, nil, ErrClosed
	}

	out, err := s.lifecycle.SendEvent(ctx, gateway.Command{
		Tenant:          s.tenant,
		CalendarEventID: s.booking.CalendarEventID,
		Event:           event,
		Actor:           s.actor,
	})
	if err != nil {
		return out, State{}, nil, err //nolint:wrapcheck
	}

	if !out.Changed {
		return out, State{}, nil, nil
	}

	s.booking = out.Booking

	state := s.current()
	state.Path = out.Path

	listeners := make([]func(State), 0, len(s.subscribers))
	for _, id := range slices.Sorted(maps.Keys(s.subscribers)) {
		listeners = append(listeners, s.subscribers[id])
	}

	return out, state, listeners, nil
}

// State is the current state held by the session.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current()
}

func (s *Session) Booking() model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.booking
}

// Close releases all subscribers. Closing twice is a no-op.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.subscribers = map[int]func(State){}
}

func (s *Session) current() State {
	snapshot := machine.Restore(s.booking)
	state := snapshot.State()

	return State{
		State:    state,
		Label:    state.Label(),
		Snapshot: snapshot,
		Path:     []machine.Step{},
	}
}
