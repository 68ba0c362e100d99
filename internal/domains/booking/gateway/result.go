package gateway

import (
	"reserve/internal/domains/booking/machine"
	"reserve/internal/domains/booking/model"
)

// Result is the outcome of one transition attempt. Success reports whether the machine answered at all;
// Accepted reports whether it took the event. Failures never surface as Go errors.
type Result struct {
	Success  bool
	Accepted bool
	NewState model.StateName
	Snapshot *model.Snapshot
	Path     []machine.Step
	Fallback bool
	Err      error
}

func Failed(err error) Result {
	return Result{Success: false, Err: err}
}

// FromTransition wraps a machine transition as a successful result.
func FromTransition(t machine.Transition) Result {
	snapshot := t.Snapshot

	return Result{
		Success:  true,
		Accepted: t.Accepted,
		NewState: t.State(),
		Snapshot: &snapshot,
		Path:     t.Path,
	}
}

// Recover runs fn on a failed result and returns its outcome. Successful results pass through.
func (r Result) Recover(fn func(failed Result) Result) Result {
	if r.Success {
		return r
	}

	return fn(r)
}

// Changed reports whether the transition moved the booking or rewrote its snapshot.
func (r Result) Changed() bool {
	return r.Success && r.Accepted
}
