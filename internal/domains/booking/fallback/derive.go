package fallback

import (
	"slices"
	"time"

	"reserve/internal/domains/booking/gateway"
	"reserve/internal/domains/booking/machine"
	"reserve/internal/domains/booking/model"
)

var cancelable = []model.StateName{
	model.StateRequested,
	model.StatePreApproved,
	model.StateServicesRequest,
	model.StateApproved,
}

type derivation struct {
	booking model.Booking
	current model.StateName
	failed  gateway.Result
}

func (d derivation) approve() gateway.Result {
	switch d.current {
	case model.StateRequested:
		return d.accept(machine.Step{State: model.StatePreApproved})
	case model.StatePreApproved:
		if d.booking.ServicesRequested.Any() {
			return d.accept(machine.Step{State: model.StateServicesRequest})
		}

		return d.accept(machine.Step{State: model.StateApproved})
	default:
		return d.reject()
	}
}

func (d derivation) decline(reason string) gateway.Result {
	if !slices.Contains([]model.StateName{model.StateRequested, model.StatePreApproved, model.StateServicesRequest}, d.current) {
		return d.reject()
	}

	return d.accept(machine.Step{State: model.StateDeclined, Note: reason})
}

func (d derivation) cancel(automatic bool) gateway.Result {
	if d.current == model.StateCanceled {
		return d.reject()
	}

	if automatic {
		return d.accept(machine.Step{State: model.StateCanceled, Cascade: true, Note: NoteAutoCancel})
	}

	if !slices.Contains(cancelable, d.current) {
		return d.reject()
	}

	return d.accept(machine.Step{State: model.StateCanceled})
}

func (d derivation) checkOut() gateway.Result {
	if d.current != model.StateCheckedIn {
		return d.reject()
	}

	next := machine.Step{State: model.StateClosed, Cascade: true, Note: machine.NoteClosed}
	if machine.NeedsCloseout(machine.Restore(d.booking).Context) {
		next = machine.Step{State: model.StateServiceCloseout, Cascade: true, Note: machine.NoteCloseoutStarted}
	}

	return d.accept(machine.Step{State: model.StateCheckedOut}, next)
}

// noShow only replays a no show the machine already reached.
func (d derivation) noShow(now time.Time) gateway.Result {
	if d.failed.NewState != model.StateNoShow {
		return d.failed
	}

	if d.current != model.StateApproved || now.Before(d.booking.StartDate) {
		return d.reject()
	}

	return d.accept(
		machine.Step{State: model.StateNoShow},
		machine.Step{State: model.StateCanceled, Cascade: true, Note: machine.NoteNoShowCancel},
	)
}

func (d derivation) from(source model.StateName, path ...machine.Step) gateway.Result {
	if d.current != source {
		return d.reject()
	}

	return d.accept(path...)
}

func (d derivation) accept(path ...machine.Step) gateway.Result {
	final := path[len(path)-1].State

	snapshot := machine.Restore(d.booking)
	snapshot.Context = snapshot.Context.Clone()
	snapshot.Context.Status = final.Label()
	snapshot.Value = machine.Encode(final, snapshot.Context)
	snapshot.Status = model.SnapshotActive

	if final.Terminal() {
		snapshot.Status = model.SnapshotDone
	}

	for _, step := range path {
		if step.State == model.StateDeclined && step.Note != "" {
			snapshot.Context.DeclineReason = step.Note
		}
	}

	return gateway.Result{
		Success:  true,
		Accepted: true,
		NewState: final,
		Snapshot: &snapshot,
		Path:     path,
		Fallback: true,
		Err:      d.failed.Err,
	}
}

func (d derivation) reject() gateway.Result {
	return gateway.Result{
		Success:  true,
		Accepted: false,
		NewState: d.current,
		Path:     []machine.Step{},
		Fallback: true,
		Err:      d.failed.Err,
	}
}
