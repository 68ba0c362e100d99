package fallback_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"reserve/config"
	calendarMocks "reserve/infras/calendar/mocks"
	"reserve/infras/mailer"
	mailerMocks "reserve/infras/mailer/mocks"
	"reserve/infras/otel/mocks"
	s3Mocks "reserve/infras/s3/mocks"
	"reserve/internal/domains/booking/fallback"
	"reserve/internal/domains/booking/gateway"
	"reserve/internal/domains/booking/machine"
	"reserve/internal/domains/booking/messages"
	bookingMocks "reserve/internal/domains/booking/mocks"
	"reserve/internal/domains/booking/model"
	"reserve/internal/domains/booking/sideeffect"
	logModel "reserve/internal/domains/bookinglog/model"
	logMocks "reserve/internal/domains/bookinglog/mocks"
	prebanMocks "reserve/internal/domains/preban/mocks"
	cacheMocks "reserve/shared/cache/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errGateway = errors.New("transition endpoint unavailable")

func flat(status model.StatusLabel, services model.ServiceFlags) model.Booking {
	now := time.Now()
	requested := now.Add(-72 * time.Hour)

	return model.Booking{
		ID:                "b-1",
		Tenant:            "mc",
		CalendarEventID:   "evt-1",
		RequestNumber:     7,
		Email:             "abc123@nyu.edu",
		NetID:             "abc123",
		Origin:            model.OriginUser,
		StartDate:         now.Add(-time.Hour),
		EndDate:           now.Add(time.Hour),
		ServicesRequested: services,
		Status:            status,
		BookingStatus:     model.BookingStatus{RequestedAt: &requested},
	}
}

func TestDerive(t *testing.T) {
	tests := []struct {
		name         string
		booking      model.Booking
		event        machine.Event
		failed       gateway.Result
		wantSuccess  bool
		wantAccepted bool
		wantPath     []model.StateName
	}{
		{
			name:         "first approval",
			booking:      flat(model.StatusRequested, nil),
			event:        machine.Event{Type: machine.EventApprove},
			wantSuccess:  true,
			wantAccepted: true,
			wantPath:     []model.StateName{model.StatePreApproved},
		},
		{
			name:         "final approval with services",
			booking:      flat(model.StatusPending, model.ServiceFlags{model.ServiceSetup: true}),
			event:        machine.Event{Type: machine.EventApprove},
			wantSuccess:  true,
			wantAccepted: true,
			wantPath:     []model.StateName{model.StateServicesRequest},
		},
		{
			name:         "final approval without services",
			booking:      flat(model.StatusPending, nil),
			event:        machine.Event{Type: machine.EventApprove},
			wantSuccess:  true,
			wantAccepted: true,
			wantPath:     []model.StateName{model.StateApproved},
		},
		{
			name:         "decline",
			booking:      flat(model.StatusRequested, nil),
			event:        machine.Event{Type: machine.EventDecline, Reason: "double booked"},
			wantSuccess:  true,
			wantAccepted: true,
			wantPath:     []model.StateName{model.StateDeclined},
		},
		{
			name:         "check in before approval is rejected",
			booking:      flat(model.StatusRequested, nil),
			event:        machine.Event{Type: machine.EventCheckIn},
			wantSuccess:  true,
			wantAccepted: false,
		},
		{
			name:         "check out closes",
			booking:      flat(model.StatusCheckedIn, nil),
			event:        machine.Event{Type: machine.EventCheckOut},
			wantSuccess:  true,
			wantAccepted: true,
			wantPath:     []model.StateName{model.StateCheckedOut, model.StateClosed},
		},
		{
			name:         "no show the machine reached",
			booking:      flat(model.StatusApproved, nil),
			event:        machine.Event{Type: machine.EventNoShow},
			failed:       gateway.Result{NewState: model.StateNoShow},
			wantSuccess:  true,
			wantAccepted: true,
			wantPath:     []model.StateName{model.StateNoShow, model.StateCanceled},
		},
		{
			name:        "no show is never speculative",
			booking:     flat(model.StatusApproved, nil),
			event:       machine.Event{Type: machine.EventNoShow},
			wantSuccess: false,
		},
		{
			name:        "service events have no fallback",
			booking:     flat(model.StatusPending, model.ServiceFlags{model.ServiceSetup: true}),
			event:       machine.Event{Type: machine.EventServiceApprove, Service: model.ServiceSetup},
			wantSuccess: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := fallback.New(logMocks.NewMockBookingLogService(ctrl), mocks.NewOtel())

			failed := tt.failed
			failed.Err = errGateway

			cmd := gateway.Command{Tenant: "mc", CalendarEventID: "evt-1", Event: tt.event, Actor: "pa@nyu.edu"}

			res := f.Derive(context.Background(), tt.booking, cmd, failed)

			assert.Equal(t, tt.wantSuccess, res.Success)
			assert.Equal(t, tt.wantAccepted, res.Accepted)
			assert.ErrorIs(t, res.Err, errGateway)

			if !tt.wantAccepted {
				return
			}

			assert.True(t, res.Fallback)

			states := []model.StateName{}
			for _, step := range res.Path {
				states = append(states, step.State)
			}

			assert.Equal(t, tt.wantPath, states)
			require.NotNil(t, res.Snapshot)
			assert.Equal(t, res.NewState, res.Snapshot.State())
			assert.Equal(t, res.NewState.Label(), res.Snapshot.Context.Status)
		})
	}
}

func TestDeriveCancel(t *testing.T) {
	entry := func(status model.StatusLabel) logModel.BookingLog {
		return logModel.BookingLog{Status: status}
	}

	tests := []struct {
		name        string
		status      model.StatusLabel
		logs        []logModel.BookingLog
		logErr      error
		wantCascade bool
		wantAccept  bool
	}{
		{
			name:       "user cancel",
			status:     model.StatusApproved,
			logs:       []logModel.BookingLog{entry(model.StatusRequested), entry(model.StatusApproved)},
			wantAccept: true,
		},
		{
			name:        "after no show",
			status:      model.StatusNoShow,
			logs:        []logModel.BookingLog{entry(model.StatusApproved), entry(model.StatusNoShow)},
			wantCascade: true,
			wantAccept:  true,
		},
		{
			name:        "after decline",
			status:      model.StatusDeclined,
			logs:        []logModel.BookingLog{entry(model.StatusRequested), entry(model.StatusDeclined)},
			wantCascade: true,
			wantAccept:  true,
		},
		{
			name:       "declined booking cannot be user canceled",
			status:     model.StatusDeclined,
			logs:       []logModel.BookingLog{entry(model.StatusDeclined), entry(model.StatusRequested)},
			wantAccept: false,
		},
		{
			name:       "already canceled",
			status:     model.StatusCanceled,
			logs:       []logModel.BookingLog{entry(model.StatusNoShow), entry(model.StatusCanceled)},
			wantAccept: false,
		},
		{
			name:       "unreadable log falls back to user cancel",
			status:     model.StatusPending,
			logErr:     errors.New("timeout"),
			wantAccept: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			logs := logMocks.NewMockBookingLogService(ctrl)
			logs.EXPECT().ListByCalendarEvent(gomock.Any(), "mc", "evt-1").Return(tt.logs, tt.logErr)

			f := fallback.New(logs, mocks.NewOtel())
			cmd := gateway.Command{Tenant: "mc", CalendarEventID: "evt-1", Event: machine.Event{Type: machine.EventCancel}, Actor: "abc123@nyu.edu"}

			res := f.Derive(context.Background(), flat(tt.status, nil), cmd, gateway.Failed(errGateway))

			require.True(t, res.Success)
			assert.Equal(t, tt.wantAccept, res.Accepted)

			if !tt.wantAccept {
				return
			}

			require.Len(t, res.Path, 1)
			assert.Equal(t, model.StateCanceled, res.Path[0].State)
			assert.Equal(t, tt.wantCascade, res.Path[0].Cascade)

			if tt.wantCascade {
				assert.Equal(t, fallback.NoteAutoCancel, res.Path[0].Note)
			}
		})
	}
}

type captured struct {
	rows []logModel.BookingLog
	mail mailer.Message
}

// applyCancel runs res through a real orchestrator and captures what it wrote.
func applyCancel(t *testing.T, booking model.Booking, cmd gateway.Command, res gateway.Result) captured {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := bookingMocks.NewMockBooking(ctrl)
	logs := logMocks.NewMockBookingLogService(ctrl)
	preBan := prebanMocks.NewMockPreBan(ctrl)
	mail := mailerMocks.NewMockMailer(ctrl)
	cal := calendarMocks.NewMockCalendar(ctrl)
	redis := cacheMocks.NewMockRedisCache(ctrl)

	var c captured

	redis.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	logs.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rows ...logModel.BookingLog) error {
		c.rows = rows

		return nil
	})
	mail.EXPECT().Send(gomock.Any(), "mc", "evt-1", gomock.Any()).DoAndReturn(func(_ context.Context, _, _ string, msg mailer.Message) error {
		c.mail = msg

		return nil
	})
	cal.EXPECT().UpdateStatusPrefix(gomock.Any(), "mc", "evt-1", "[CANCELED]").Return(nil)

	o := sideeffect.New(repo, logs, preBan, mail, cal, s3Mocks.NewMockS3(ctrl), messages.Get(), redis, &config.Config{}, mocks.NewOtel())

	_, err := o.Apply(context.Background(), booking, cmd, res)
	require.NoError(t, err)

	return c
}

func TestFallbackCancelMatchesGatewayPath(t *testing.T) {
	tr := machine.New().Start(model.ServiceFlags{}, machine.Facts{AutoApprove: true})

	booking := flat(model.StatusApproved, nil)
	booking.Origin = model.OriginAdmin
	booking.StartDate = time.Now().Add(72 * time.Hour)
	booking.XState = &model.XStateData{MachineID: machine.MachineID, Snapshot: tr.Snapshot}

	cmd := gateway.Command{Tenant: "mc", CalendarEventID: "evt-1", Event: machine.Event{Type: machine.EventCancel}, Actor: "pa@nyu.edu"}

	primary := gateway.FromTransition(machine.New().Send(machine.Restore(booking), cmd.Event, machine.Facts{Now: time.Now()}))
	viaGateway := applyCancel(t, booking, cmd, primary)

	ctrl := gomock.NewController(t)
	logs := logMocks.NewMockBookingLogService(ctrl)
	logs.EXPECT().ListByCalendarEvent(gomock.Any(), "mc", "evt-1").Return([]logModel.BookingLog{{Status: model.StatusApproved}}, nil)

	recovered := gateway.Failed(errGateway).Recover(func(failed gateway.Result) gateway.Result {
		return fallback.New(logs, mocks.NewOtel()).Derive(context.Background(), booking, cmd, failed)
	})
	viaFallback := applyCancel(t, booking, cmd, recovered)

	require.Len(t, viaGateway.rows, 1)
	require.Len(t, viaFallback.rows, 1)
	assert.Equal(t, model.StatusCanceled, viaFallback.rows[0].Status)
	assert.Equal(t, viaGateway.rows[0].Status, viaFallback.rows[0].Status)
	assert.Equal(t, viaGateway.rows[0].ChangedBy, viaFallback.rows[0].ChangedBy)

	assert.Equal(t, viaGateway.mail.Status, viaFallback.mail.Status)
	assert.Equal(t, viaGateway.mail.HeaderMessage, viaFallback.mail.HeaderMessage)
	assert.Equal(t, viaGateway.mail.TargetEmail, viaFallback.mail.TargetEmail)
	assert.Equal(t, viaGateway.mail.TemplateName, viaFallback.mail.TemplateName)
}

func TestAutomaticCancelIsNeverPenalized(t *testing.T) {
	now := time.Now()
	requested := now.Add(-3 * time.Hour)

	booking := flat(model.StatusNoShow, nil)
	booking.StartDate = now.Add(2 * time.Hour)
	booking.RequestedAt = &requested

	ctrl := gomock.NewController(t)
	logs := logMocks.NewMockBookingLogService(ctrl)
	logs.EXPECT().ListByCalendarEvent(gomock.Any(), "mc", "evt-1").Return([]logModel.BookingLog{{Status: model.StatusNoShow}}, nil)
	logs.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rows ...logModel.BookingLog) error {
		require.Len(t, rows, 1)
		assert.Equal(t, model.SystemActor, rows[0].ChangedBy)
		assert.Equal(t, fallback.NoteAutoCancel, rows[0].Note)

		return nil
	})

	repo := bookingMocks.NewMockBooking(ctrl)
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	mail := mailerMocks.NewMockMailer(ctrl)
	mail.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	cal := calendarMocks.NewMockCalendar(ctrl)
	cal.EXPECT().UpdateStatusPrefix(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	redis := cacheMocks.NewMockRedisCache(ctrl)
	redis.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	// no PreBan expectations: any Record call fails the test
	preBan := prebanMocks.NewMockPreBan(ctrl)

	cmd := gateway.Command{Tenant: "mc", CalendarEventID: "evt-1", Event: machine.Event{Type: machine.EventCancel}, Actor: "abc123@nyu.edu"}
	res := fallback.New(logs, mocks.NewOtel()).Derive(context.Background(), booking, cmd, gateway.Failed(errGateway))

	o := sideeffect.New(repo, logs, preBan, mail, cal, s3Mocks.NewMockS3(ctrl), messages.Get(), redis, &config.Config{}, mocks.NewOtel())

	out, err := o.Apply(context.Background(), booking, cmd, res)
	require.NoError(t, err)
	assert.Equal(t, model.StateCanceled, out.State)
}

func withSnapshot(status model.StatusLabel, services model.ServiceFlags, snapshot model.Snapshot) model.Booking {
	booking := flat(status, services)
	booking.XState = &model.XStateData{MachineID: machine.MachineID, Snapshot: snapshot}

	return booking
}

func TestDeriveReadsSnapshotState(t *testing.T) {
	m := machine.New()
	now := machine.Facts{Now: time.Now()}
	setup := model.ServiceFlags{model.ServiceSetup: true}

	servicesRequest := m.Start(setup, machine.Facts{AutoApprove: true}).Snapshot
	approved := m.Send(servicesRequest, machine.Event{Type: machine.EventServiceApprove, Service: model.ServiceSetup}, now).Snapshot
	checkedIn := m.Send(approved, machine.Event{Type: machine.EventCheckIn}, now).Snapshot
	closeout := m.Send(checkedIn, machine.Event{Type: machine.EventCheckOut}, now).Snapshot

	require.Equal(t, model.StateServicesRequest, servicesRequest.State())
	require.Equal(t, model.StateServiceCloseout, closeout.State())

	tests := []struct {
		name      string
		booking   model.Booking
		event     machine.Event
		wantState model.StateName
	}{
		{
			name:      "approve in services request",
			booking:   withSnapshot(model.StatusPending, setup, servicesRequest),
			event:     machine.Event{Type: machine.EventApprove},
			wantState: model.StateServicesRequest,
		},
		{
			name:      "check out in service closeout",
			booking:   withSnapshot(model.StatusCheckedOut, setup, closeout),
			event:     machine.Event{Type: machine.EventCheckOut},
			wantState: model.StateServiceCloseout,
		},
		{
			name:      "cancel in service closeout",
			booking:   withSnapshot(model.StatusCheckedOut, setup, closeout),
			event:     machine.Event{Type: machine.EventCancel},
			wantState: model.StateServiceCloseout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			logs := logMocks.NewMockBookingLogService(ctrl)
			logs.EXPECT().ListByCalendarEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return([]logModel.BookingLog{}, nil).AnyTimes()

			cmd := gateway.Command{Tenant: "mc", CalendarEventID: "evt-1", Event: tt.event, Actor: "pa@nyu.edu"}

			viaMachine := m.Send(machine.Restore(tt.booking), tt.event, now)
			res := fallback.New(logs, mocks.NewOtel()).Derive(context.Background(), tt.booking, cmd, gateway.Failed(errGateway))

			assert.False(t, viaMachine.Accepted)
			assert.True(t, res.Success)
			assert.False(t, res.Accepted)
			assert.Equal(t, tt.wantState, res.NewState)
			assert.Empty(t, res.Path)
		})
	}
}

func TestDeriveEncodesServiceRegions(t *testing.T) {
	m := machine.New()
	now := machine.Facts{Now: time.Now()}
	setup := model.ServiceFlags{model.ServiceSetup: true}

	requested := m.Start(setup, machine.Facts{}).Snapshot
	preApproved := m.Send(requested, machine.Event{Type: machine.EventApprove}, now).Snapshot
	require.Equal(t, model.StatePreApproved, preApproved.State())

	booking := withSnapshot(model.StatusPending, setup, preApproved)
	event := machine.Event{Type: machine.EventApprove}
	cmd := gateway.Command{Tenant: "mc", CalendarEventID: "evt-1", Event: event, Actor: "pa@nyu.edu"}

	viaMachine := m.Send(preApproved, event, now)
	res := fallback.New(logMocks.NewMockBookingLogService(gomock.NewController(t)), mocks.NewOtel()).
		Derive(context.Background(), booking, cmd, gateway.Failed(errGateway))

	require.True(t, res.Accepted)
	require.NotNil(t, res.Snapshot)
	assert.Equal(t, viaMachine.State(), res.NewState)
	assert.Equal(t, viaMachine.Snapshot.Value, res.Snapshot.Value)
}
