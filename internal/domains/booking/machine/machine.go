// Package machine is the booking lifecycle state machine.
//
// The machine is a pure function of (snapshot, event, facts). It never performs I/O: the caller persists the
// resulting snapshot and runs side effects for every step on the returned path.
package machine

import (
	"time"

	"reserve/internal/domains/booking/model"
)

const MachineID = "bookingMachine"

const (
	NoteAutoApproved      = "Auto-approved"
	NoteNoShowCancel      = "Canceled due to no show"
	NoteServicesApproved  = "All requested services approved"
	NoteServiceDeclined   = "Requested service declined"
	NoteClosed            = "Booking closed"
	NoteCloseoutStarted   = "Awaiting service closeout"
	noteServiceDeclinedBy = "Service declined: "
)

// Step is one top-level state entered during a transition. Cascade steps are attributed to the system.
type Step struct {
	State   model.StateName `json:"state"`
	Cascade bool            `json:"cascade,omitempty"`
	Note    string          `json:"note,omitempty"`
}

// Facts are the guard inputs that live outside the snapshot.
type Facts struct {
	Now         time.Time
	StartDate   time.Time
	AutoApprove bool
}

type Transition struct {
	Accepted bool           `json:"accepted"`
	Event    Event          `json:"event"`
	Snapshot model.Snapshot `json:"snapshot"`
	Path     []Step         `json:"path"`
}

// State is the top-level state after the transition.
func (t Transition) State() model.StateName {
	return t.Snapshot.State()
}

type run struct {
	state model.StateName
	ctx   model.MachineContext
	event Event
	facts Facts
	path  []Step
}

type handler func(r *run) bool

// Machine holds the transition table. The zero value is not usable; call New.
type Machine struct {
	table map[model.StateName]map[EventType]handler
}

func New() *Machine {
	m := &Machine{}

	m.table = map[model.StateName]map[EventType]handler{
		model.StateRequested: {
			EventApprove: goTo(model.StatePreApproved),
			EventDecline: decline,
			EventCancel:  goTo(model.StateCanceled),
			EventEdit:    edit,
		},
		model.StatePreApproved: {
			EventApprove: finalApprove,
			EventDecline: decline,
			EventCancel:  goTo(model.StateCanceled),
			EventEdit:    edit,
		},
		model.StateServicesRequest: {
			EventServiceApprove: approveService,
			EventServiceDecline: declineService,
			EventDecline:        decline,
			EventCancel:         goTo(model.StateCanceled),
		},
		model.StateApproved: {
			EventCheckIn: goTo(model.StateCheckedIn),
			EventCancel:  goTo(model.StateCanceled),
			EventNoShow:  noShow,
		},
		model.StateCheckedIn: {
			EventCheckOut: goTo(model.StateCheckedOut),
		},
		model.StateServiceCloseout: {
			EventServiceCloseout: closeoutService,
		},
	}

	return m
}

// Start produces the initial snapshot of a new booking. Auto-approved bookings skip the human approvals.
func (m *Machine) Start(services model.ServiceFlags, facts Facts) Transition {
	r := &run{
		ctx: model.MachineContext{
			ServicesRequested: services.Clone(),
			ServicesApproved:  model.ServiceFlags{},
			ServicesDeclined:  model.ServiceFlags{},
			ServicesClosedOut: model.ServiceFlags{},
		},
		event: Event{Type: EventSubmit},
		facts: facts,
	}

	r.enter(model.StateRequested, false, "")

	if facts.AutoApprove {
		if r.ctx.ServicesRequested.Any() {
			r.enter(model.StateServicesRequest, true, NoteAutoApproved)
		} else {
			r.enter(model.StateApproved, true, NoteAutoApproved)
		}
	}

	return r.result(true)
}

// Send applies event to the snapshot. Events that are not valid from the current state leave it untouched.
func (m *Machine) Send(current model.Snapshot, event Event, facts Facts) Transition {
	rejected := Transition{Accepted: false, Event: event, Snapshot: current, Path: []Step{}}

	state := current.State()

	h, ok := m.table[state][event.Type]
	if !ok {
		return rejected
	}

	r := &run{
		state: state,
		ctx:   reconcile(current),
		event: event,
		facts: facts,
	}

	if !h(r) {
		return rejected
	}

	return r.result(true)
}

// Can reports whether event would be accepted from state, ignoring guards.
func (m *Machine) Can(state model.StateName, eventType EventType) bool {
	_, ok := m.table[state][eventType]

	return ok
}

// Restore returns the authoritative snapshot of a booking. Rows written before the machine existed get one
// derived from the flat status mirror.
func Restore(booking model.Booking) model.Snapshot {
	if booking.XState != nil && booking.XState.Snapshot.State() != model.StateUnknown {
		snapshot := booking.XState.Snapshot
		if snapshot.Context.ServicesRequested == nil {
			snapshot.Context.ServicesRequested = booking.ServicesRequested.Clone()
		}

		return snapshot
	}

	state := model.StateFromLabel(booking.Status)
	if state == model.StateUnknown {
		state = model.StateRequested
	}

	ctx := model.MachineContext{
		ServicesRequested: booking.ServicesRequested.Clone(),
		ServicesApproved:  model.ServiceFlags{},
		ServicesDeclined:  model.ServiceFlags{},
		ServicesClosedOut: model.ServiceFlags{},
		Status:            state.Label(),
		DeclineReason:     booking.DeclineReason,
	}

	return model.Snapshot{Value: model.SimpleState(state), Status: statusOf(state), Context: ctx}
}

func (r *run) enter(state model.StateName, cascade bool, note string) {
	r.state = state
	r.path = append(r.path, Step{State: state, Cascade: cascade, Note: note})

	r.always()
}

// always runs the eventless transitions of the state just entered.
func (r *run) always() {
	switch r.state {
	case model.StateNoShow:
		r.enter(model.StateCanceled, true, NoteNoShowCancel)
	case model.StateCheckedOut:
		if NeedsCloseout(r.ctx) {
			r.enter(model.StateServiceCloseout, true, NoteCloseoutStarted)
		} else {
			r.enter(model.StateClosed, true, NoteClosed)
		}
	case model.StateServicesRequest:
		r.resolveServices()
	case model.StateServiceCloseout:
		if len(pendingCloseout(r.ctx)) == 0 {
			r.enter(model.StateClosed, true, NoteClosed)
		}
	}
}

func (r *run) resolveServices() {
	switch {
	case anyDeclined(r.ctx):
		if r.ctx.DeclineReason == "" {
			r.ctx.DeclineReason = NoteServiceDeclined
		}

		r.enter(model.StateDeclined, true, r.ctx.DeclineReason)
	case allApproved(r.ctx):
		r.enter(model.StateApproved, true, NoteServicesApproved)
	}
}

func (r *run) result(accepted bool) Transition {
	r.ctx.Status = r.state.Label()

	return Transition{
		Accepted: accepted,
		Event:    r.event,
		Snapshot: model.Snapshot{
			Value:   Encode(r.state, r.ctx),
			Status:  statusOf(r.state),
			Context: r.ctx,
		},
		Path: r.path,
	}
}

func statusOf(state model.StateName) model.SnapshotStatus {
	if state.Terminal() {
		return model.SnapshotDone
	}

	return model.SnapshotActive
}

func goTo(state model.StateName) handler {
	return func(r *run) bool {
		r.enter(state, false, "")

		return true
	}
}

func decline(r *run) bool {
	r.ctx.DeclineReason = r.event.Reason
	r.enter(model.StateDeclined, false, r.event.Reason)

	return true
}

func finalApprove(r *run) bool {
	if r.ctx.ServicesRequested.Any() {
		r.enter(model.StateServicesRequest, false, "")
	} else {
		r.enter(model.StateApproved, false, "")
	}

	return true
}

// edit replaces the requested services while no approval has been finalized. It never enters a new state.
func edit(r *run) bool {
	if r.event.Edit != nil {
		r.ctx.ServicesRequested = r.event.Edit.Clone()
	}

	r.path = []Step{}

	return true
}

func noShow(r *run) bool {
	if r.facts.StartDate.IsZero() || r.facts.Now.Before(r.facts.StartDate) {
		return false
	}

	r.enter(model.StateNoShow, false, "")

	return true
}

func openTrack(r *run) bool {
	key := r.event.Service

	return key.Valid() &&
		r.ctx.ServicesRequested.Has(key) &&
		!r.ctx.ServicesApproved.Has(key) &&
		!r.ctx.ServicesDeclined.Has(key)
}

func approveService(r *run) bool {
	if !openTrack(r) {
		return false
	}

	r.ctx.ServicesApproved[r.event.Service] = true
	r.path = []Step{}
	r.resolveServices()

	return true
}

func declineService(r *run) bool {
	if !openTrack(r) {
		return false
	}

	r.ctx.ServicesDeclined[r.event.Service] = true

	if r.event.Reason != "" {
		r.ctx.DeclineReason = r.event.Reason
	} else {
		r.ctx.DeclineReason = noteServiceDeclinedBy + r.event.Service.Title()
	}

	r.path = []Step{}
	r.resolveServices()

	return true
}

func closeoutService(r *run) bool {
	key := r.event.Service
	if !key.Valid() || !r.ctx.ServicesApproved.Has(key) || r.ctx.ServicesClosedOut.Has(key) {
		return false
	}

	r.ctx.ServicesClosedOut[key] = true
	r.path = []Step{}

	if len(pendingCloseout(r.ctx)) == 0 {
		r.enter(model.StateClosed, true, NoteClosed)
	}

	return true
}
