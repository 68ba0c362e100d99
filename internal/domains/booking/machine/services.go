package machine

import (
	"strings"

	"reserve/internal/domains/booking/model"
)

// TrackState is the progress of one service inside the parallel region.
type TrackState string

const (
	TrackRequested       TrackState = "Requested"
	TrackApproved        TrackState = "Approved"
	TrackDeclined        TrackState = "Declined"
	TrackCloseoutPending TrackState = "Closeout Pending"
	TrackClosedOut       TrackState = "Closedout"
)

var trackStates = []TrackState{
	TrackCloseoutPending,
	TrackClosedOut,
	TrackRequested,
	TrackApproved,
	TrackDeclined,
}

// ServiceTracker exposes the progress of every service track.
type ServiceTracker interface {
	Track(key model.ServiceKey) (TrackState, bool)
}

// Tracks is the resolved progress of the requested services.
type Tracks map[model.ServiceKey]TrackState

func (t Tracks) Track(key model.ServiceKey) (TrackState, bool) {
	state, ok := t[key]

	return state, ok
}

func requestRegion(key model.ServiceKey) string {
	return key.Title() + " Request"
}

func closeoutRegion(key model.ServiceKey) string {
	return key.Title() + " Closeout"
}

func leaf(key model.ServiceKey, state TrackState) model.SimpleState {
	return model.SimpleState(key.Title() + " " + string(state))
}

// TracksOf derives service progress from the machine context.
func TracksOf(ctx model.MachineContext) Tracks {
	tracks := Tracks{}

	for _, key := range ctx.ServicesRequested.Keys() {
		switch {
		case ctx.ServicesDeclined.Has(key):
			tracks[key] = TrackDeclined
		case ctx.ServicesClosedOut.Has(key):
			tracks[key] = TrackClosedOut
		case ctx.ServicesApproved.Has(key):
			tracks[key] = TrackApproved
		default:
			tracks[key] = TrackRequested
		}
	}

	return tracks
}

// allApproved is true once every requested service has been approved.
func allApproved(ctx model.MachineContext) bool {
	keys := ctx.ServicesRequested.Keys()
	if len(keys) == 0 {
		return false
	}

	for _, key := range keys {
		if !ctx.ServicesApproved.Has(key) {
			return false
		}
	}

	return true
}

func anyDeclined(ctx model.MachineContext) bool {
	for _, key := range ctx.ServicesRequested.Keys() {
		if ctx.ServicesDeclined.Has(key) {
			return true
		}
	}

	return false
}

// pendingCloseout lists approved services that have not been closed out yet.
func pendingCloseout(ctx model.MachineContext) []model.ServiceKey {
	pending := []model.ServiceKey{}

	for _, key := range ctx.ServicesRequested.Keys() {
		if ctx.ServicesApproved.Has(key) && !ctx.ServicesDeclined.Has(key) && !ctx.ServicesClosedOut.Has(key) {
			pending = append(pending, key)
		}
	}

	return pending
}

// NeedsCloseout reports whether checkout must wait for service closeout.
func NeedsCloseout(ctx model.MachineContext) bool {
	for _, key := range ctx.ServicesRequested.Keys() {
		if ctx.ServicesApproved.Has(key) && !ctx.ServicesDeclined.Has(key) {
			return true
		}
	}

	return false
}

// Encode renders the state value. Region states nest one child per tracked service.
func Encode(state model.StateName, ctx model.MachineContext) model.StateValue {
	regions := model.CompositeState{}

	switch state {
	case model.StateServicesRequest:
		for key, track := range TracksOf(ctx) {
			if track == TrackClosedOut {
				track = TrackApproved
			}

			regions[requestRegion(key)] = leaf(key, track)
		}
	case model.StateServiceCloseout:
		for _, key := range ctx.ServicesRequested.Keys() {
			if !ctx.ServicesApproved.Has(key) || ctx.ServicesDeclined.Has(key) {
				continue
			}

			if ctx.ServicesClosedOut.Has(key) {
				regions[closeoutRegion(key)] = leaf(key, TrackClosedOut)
			} else {
				regions[closeoutRegion(key)] = leaf(key, TrackCloseoutPending)
			}
		}
	default:
		return model.SimpleState(state)
	}

	return model.CompositeState{string(state): regions}
}

// reconcile folds region leaves into the context so snapshots written without context flags still resolve.
func reconcile(snapshot model.Snapshot) model.MachineContext {
	ctx := snapshot.Context.Clone()

	for region, value := range model.Regions(snapshot.Value) {
		name, ok := value.(model.SimpleState)
		if !ok {
			continue
		}

		key, state, ok := parseLeaf(region, string(name))
		if !ok {
			continue
		}

		ctx.ServicesRequested[key] = true

		switch state {
		case TrackApproved, TrackCloseoutPending:
			ctx.ServicesApproved[key] = true
		case TrackClosedOut:
			ctx.ServicesApproved[key] = true
			ctx.ServicesClosedOut[key] = true
		case TrackDeclined:
			ctx.ServicesDeclined[key] = true
		case TrackRequested:
		}
	}

	return ctx
}

func parseLeaf(region, name string) (model.ServiceKey, TrackState, bool) {
	title, _, _ := strings.Cut(region, " ")

	key, ok := model.ParseServiceKey(title)
	if !ok {
		return "", "", false
	}

	rest, ok := strings.CutPrefix(name, key.Title()+" ")
	if !ok {
		return "", "", false
	}

	for _, state := range trackStates {
		if strings.EqualFold(rest, string(state)) {
			return key, state, true
		}
	}

	return "", "", false
}

// ReadTracks reads service progress from any snapshot encoding.
func ReadTracks(snapshot model.Snapshot) ServiceTracker {
	return TracksOf(reconcile(snapshot))
}
