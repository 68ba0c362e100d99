package machine_test

import (
	"encoding/json"
	"testing"
	"time"

	"reserve/internal/domains/booking/machine"
	"reserve/internal/domains/booking/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	start = time.Date(2026, 5, 4, 14, 0, 0, 0, time.UTC)
	facts = machine.Facts{Now: start.Add(-48 * time.Hour), StartDate: start}
)

func states(path []machine.Step) []model.StateName {
	out := make([]model.StateName, len(path))
	for i, step := range path {
		out[i] = step.State
	}

	return out
}

func send(t *testing.T, m *machine.Machine, snapshot model.Snapshot, name string, f machine.Facts) machine.Transition {
	t.Helper()

	event, err := machine.ParseEvent(name)
	require.NoError(t, err)

	return m.Send(snapshot, event, f)
}

func TestMachine_Start(t *testing.T) {
	m := machine.New()

	tests := []struct {
		name      string
		services  model.ServiceFlags
		auto      bool
		wantState model.StateName
		wantPath  []model.StateName
	}{
		{
			name:      "manual approval",
			wantState: model.StateRequested,
			wantPath:  []model.StateName{model.StateRequested},
		},
		{
			name:      "auto approved without services",
			auto:      true,
			wantState: model.StateApproved,
			wantPath:  []model.StateName{model.StateRequested, model.StateApproved},
		},
		{
			name:      "auto approved with services",
			services:  model.ServiceFlags{model.ServiceSetup: true},
			auto:      true,
			wantState: model.StateServicesRequest,
			wantPath:  []model.StateName{model.StateRequested, model.StateServicesRequest},
		},
		{
			name:      "services without auto approval wait for review",
			services:  model.ServiceFlags{model.ServiceSetup: true},
			wantState: model.StateRequested,
			wantPath:  []model.StateName{model.StateRequested},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := facts
			f.AutoApprove = tt.auto

			tr := m.Start(tt.services, f)

			assert.True(t, tr.Accepted)
			assert.Equal(t, tt.wantState, tr.State())
			assert.Equal(t, tt.wantPath, states(tr.Path))
			assert.False(t, tr.Path[0].Cascade)

			for _, step := range tr.Path[1:] {
				assert.True(t, step.Cascade)
				assert.Equal(t, machine.NoteAutoApproved, step.Note)
			}

			assert.Equal(t, tt.wantState.Label(), tr.Snapshot.Context.Status)
		})
	}
}

func TestMachine_ApprovalChain(t *testing.T) {
	m := machine.New()

	tr := m.Start(nil, facts)
	tr = send(t, m, tr.Snapshot, "approve", facts)
	require.True(t, tr.Accepted)
	assert.Equal(t, model.StatePreApproved, tr.State())
	assert.Equal(t, model.StatusPending, tr.Snapshot.Context.Status)

	tr = send(t, m, tr.Snapshot, "approve", facts)
	require.True(t, tr.Accepted)
	assert.Equal(t, model.StateApproved, tr.State())

	tr = send(t, m, tr.Snapshot, "checkIn", facts)
	require.True(t, tr.Accepted)
	assert.Equal(t, model.StateCheckedIn, tr.State())

	tr = send(t, m, tr.Snapshot, "checkOut", facts)
	require.True(t, tr.Accepted)
	assert.Equal(t, model.StateClosed, tr.State())
	assert.Equal(t, []model.StateName{model.StateCheckedOut, model.StateClosed}, states(tr.Path))
	assert.True(t, tr.Path[1].Cascade)
	assert.Equal(t, model.SnapshotDone, tr.Snapshot.Status)
	assert.Equal(t, model.StatusCheckedOut, tr.Snapshot.Context.Status)
}

func TestMachine_ServicesResolveToApprovedThenClosed(t *testing.T) {
	m := machine.New()
	services := model.ServiceFlags{model.ServiceSetup: true, model.ServiceCatering: true, model.ServiceSecurity: false}

	tr := m.Start(services, facts)
	tr = send(t, m, tr.Snapshot, "approve", facts)
	tr = send(t, m, tr.Snapshot, "approve", facts)
	require.Equal(t, model.StateServicesRequest, tr.State())

	leaf, ok := model.Leaf(tr.Snapshot.Value, "Services Request", "Setup Request")
	require.True(t, ok)
	assert.Equal(t, "Setup Requested", leaf)

	_, ok = model.Leaf(tr.Snapshot.Value, "Services Request", "Security Request")
	assert.False(t, ok)

	tr = send(t, m, tr.Snapshot, "approveSetup", facts)
	require.True(t, tr.Accepted)
	assert.Equal(t, model.StateServicesRequest, tr.State())
	assert.Empty(t, tr.Path)

	leaf, _ = model.Leaf(tr.Snapshot.Value, "Services Request", "Setup Request")
	assert.Equal(t, "Setup Approved", leaf)

	again := send(t, m, tr.Snapshot, "approveSetup", facts)
	assert.False(t, again.Accepted)

	tr = send(t, m, tr.Snapshot, "approveCatering", facts)
	require.True(t, tr.Accepted)
	assert.Equal(t, model.StateApproved, tr.State())
	require.Len(t, tr.Path, 1)
	assert.True(t, tr.Path[0].Cascade)

	tr = send(t, m, tr.Snapshot, "checkIn", facts)
	tr = send(t, m, tr.Snapshot, "checkOut", facts)
	require.Equal(t, model.StateServiceCloseout, tr.State())
	assert.Equal(t, []model.StateName{model.StateCheckedOut, model.StateServiceCloseout}, states(tr.Path))

	leaf, _ = model.Leaf(tr.Snapshot.Value, "Service Closeout", "Catering Closeout")
	assert.Equal(t, "Catering Closeout Pending", leaf)

	tr = send(t, m, tr.Snapshot, "closeoutCatering", facts)
	require.True(t, tr.Accepted)
	assert.Equal(t, model.StateServiceCloseout, tr.State())

	tr = send(t, m, tr.Snapshot, "closeoutSetup", facts)
	require.True(t, tr.Accepted)
	assert.Equal(t, model.StateClosed, tr.State())
	assert.Equal(t, []machine.Step{{State: model.StateClosed, Cascade: true, Note: machine.NoteClosed}}, tr.Path)
}

func TestMachine_AnyDeclinedServiceDeclinesBooking(t *testing.T) {
	m := machine.New()
	services := model.ServiceFlags{model.ServiceSetup: true, model.ServiceEquipment: true, model.ServiceCatering: true}

	for _, declined := range services.Keys() {
		t.Run(string(declined), func(t *testing.T) {
			f := facts
			f.AutoApprove = true
			tr := m.Start(services, f)

			for _, key := range services.Keys() {
				if key == declined {
					continue
				}

				tr = m.Send(tr.Snapshot, machine.Event{Type: machine.EventServiceApprove, Service: key}, facts)
				require.True(t, tr.Accepted)
			}

			tr = m.Send(tr.Snapshot, machine.Event{Type: machine.EventServiceDecline, Service: declined}, facts)
			require.True(t, tr.Accepted)
			assert.Equal(t, model.StateDeclined, tr.State())
			assert.NotEqual(t, model.StateClosed, tr.State())
			assert.Contains(t, tr.Snapshot.Context.DeclineReason, declined.Title())
			assert.Equal(t, model.SnapshotDone, tr.Snapshot.Status)

			for _, name := range []string{"checkIn", "checkOut", "approve", "cancel"} {
				assert.False(t, send(t, m, tr.Snapshot, name, facts).Accepted, name)
			}
		})
	}
}

func TestMachine_NoShowCascadesToCanceled(t *testing.T) {
	m := machine.New()

	f := facts
	f.AutoApprove = true
	tr := m.Start(nil, f)
	require.Equal(t, model.StateApproved, tr.State())

	early := send(t, m, tr.Snapshot, "noShow", machine.Facts{Now: start.Add(-time.Minute), StartDate: start})
	assert.False(t, early.Accepted)
	assert.Equal(t, tr.Snapshot, early.Snapshot)

	late := send(t, m, tr.Snapshot, "noShow", machine.Facts{Now: start, StartDate: start})
	require.True(t, late.Accepted)
	assert.Equal(t, model.StateCanceled, late.State())
	assert.Equal(t, []machine.Step{
		{State: model.StateNoShow},
		{State: model.StateCanceled, Cascade: true, Note: machine.NoteNoShowCancel},
	}, late.Path)
}

func TestMachine_InvalidEventsAreNoOps(t *testing.T) {
	m := machine.New()

	tests := []struct {
		name  string
		setup []string
		event string
	}{
		{name: "check in before approval", event: "checkIn"},
		{name: "check out before check in", setup: []string{"approve", "approve"}, event: "checkOut"},
		{name: "no show while requested", event: "noShow"},
		{name: "service approval outside services request", event: "approveSetup"},
		{name: "decline after approval", setup: []string{"approve", "approve"}, event: "decline"},
		{name: "cancel after cancel", setup: []string{"cancel"}, event: "cancel"},
		{name: "edit after approval", setup: []string{"approve", "approve"}, event: "edit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := m.Start(nil, facts)
			for _, name := range tt.setup {
				tr = send(t, m, tr.Snapshot, name, facts)
				require.True(t, tr.Accepted)
			}

			before, err := tr.Snapshot.Serialize()
			require.NoError(t, err)

			got := send(t, m, tr.Snapshot, tt.event, facts)
			assert.False(t, got.Accepted)
			assert.Empty(t, got.Path)

			after, err := got.Snapshot.Serialize()
			require.NoError(t, err)
			assert.Equal(t, before, after)
		})
	}
}

func TestMachine_EditKeepsState(t *testing.T) {
	m := machine.New()

	tr := m.Start(model.ServiceFlags{model.ServiceSetup: true}, facts)
	before, _ := tr.Snapshot.Serialize()

	edited := m.Send(tr.Snapshot, machine.Event{Type: machine.EventEdit, Edit: model.ServiceFlags{model.ServiceCleaning: true}}, facts)
	require.True(t, edited.Accepted)
	assert.Equal(t, model.StateRequested, edited.State())
	assert.Empty(t, edited.Path)
	assert.Equal(t, []model.ServiceKey{model.ServiceCleaning}, edited.Snapshot.Context.ServicesRequested.Keys())

	after, _ := edited.Snapshot.Serialize()
	assert.NotEqual(t, before, after)

	same := m.Send(tr.Snapshot, machine.Event{Type: machine.EventEdit}, facts)
	require.True(t, same.Accepted)

	unchanged, _ := same.Snapshot.Serialize()
	assert.Equal(t, before, unchanged)
}

func TestMachine_DeclineCarriesReason(t *testing.T) {
	m := machine.New()

	tr := m.Start(nil, facts)
	tr = m.Send(tr.Snapshot, machine.Event{Type: machine.EventDecline, Reason: "Room under maintenance"}, facts)

	require.True(t, tr.Accepted)
	assert.Equal(t, model.StateDeclined, tr.State())
	assert.Equal(t, "Room under maintenance", tr.Snapshot.Context.DeclineReason)
	assert.Equal(t, model.StatusDeclined, tr.Snapshot.Context.Status)
}

func TestMachine_SendOnDecodedLegacySnapshot(t *testing.T) {
	m := machine.New()

	var snapshot model.Snapshot
	require.NoError(t, json.Unmarshal([]byte(
		`{"value":{"Services Request":{"Equipment Request":"Equipment Approved","Staffing Request":"Staffing Requested"}},"status":"active","context":{}}`,
	), &snapshot))

	tracks := machine.ReadTracks(snapshot)
	state, ok := tracks.Track(model.ServiceEquipment)
	require.True(t, ok)
	assert.Equal(t, machine.TrackApproved, state)

	tr := send(t, m, snapshot, "approveStaffing", facts)
	require.True(t, tr.Accepted)
	assert.Equal(t, model.StateApproved, tr.State())
}

func TestRestore(t *testing.T) {
	legacy := model.Booking{Status: model.StatusApproved, ServicesRequested: model.ServiceFlags{model.ServiceSetup: true}}

	snapshot := machine.Restore(legacy)
	assert.Equal(t, model.StateApproved, snapshot.State())
	assert.Equal(t, model.SimpleState("Approved"), snapshot.Value)
	assert.True(t, snapshot.Context.ServicesRequested.Has(model.ServiceSetup))

	fresh := model.Booking{Status: model.StatusUnknown}
	assert.Equal(t, model.StateRequested, machine.Restore(fresh).State())

	withSnapshot := model.Booking{
		Status: model.StatusRequested,
		XState: &model.XStateData{Snapshot: model.Snapshot{Value: model.SimpleState("Checked-In")}},
	}
	assert.Equal(t, model.StateCheckedIn, machine.Restore(withSnapshot).State())
}

func TestParseEvent(t *testing.T) {
	tests := []struct {
		name    string
		want    machine.Event
		wantErr bool
	}{
		{name: "cancel", want: machine.Event{Type: machine.EventCancel}},
		{name: "checkIn", want: machine.Event{Type: machine.EventCheckIn}},
		{name: "approveEquipment", want: machine.Event{Type: machine.EventServiceApprove, Service: model.ServiceEquipment}},
		{name: "declineSecurity", want: machine.Event{Type: machine.EventServiceDecline, Service: model.ServiceSecurity}},
		{name: "closeoutCleaning", want: machine.Event{Type: machine.EventServiceCloseout, Service: model.ServiceCleaning}},
		{name: "approveParking", wantErr: true},
		{name: "submit", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := machine.ParseEvent(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, machine.ErrUnknownEvent)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.name, got.Name())
		})
	}
}
