package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"reserve/config"
	"reserve/infras/otel/mocks"
	"reserve/internal/domains/booking/gateway"
	"reserve/internal/domains/booking/machine"
	bookingMocks "reserve/internal/domains/booking/mocks"
	"reserve/internal/domains/booking/model"
	"reserve/internal/domains/booking/model/dto"
	"reserve/internal/domains/booking/service"
	"reserve/internal/domains/booking/sideeffect"
	logModel "reserve/internal/domains/bookinglog/model"
	logMocks "reserve/internal/domains/bookinglog/mocks"
	prebanMocks "reserve/internal/domains/preban/mocks"
	roomModel "reserve/internal/domains/room/model"
	roomMocks "reserve/internal/domains/room/mocks"
	cacheMocks "reserve/shared/cache/mocks"
	"reserve/shared/constant"
	gDto "reserve/shared/dto"
	"reserve/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errBoom = errors.New("boom")

type deps struct {
	repo         *bookingMocks.MockBooking
	rooms        *roomMocks.MockRoomSettingService
	logs         *logMocks.MockBookingLogService
	preBan       *prebanMocks.MockPreBan
	gateway      *bookingMocks.MockGateway
	fallback     *bookingMocks.MockFallback
	orchestrator *bookingMocks.MockOrchestrator
	cache        *cacheMocks.MockRedisCache
}

func setup(t *testing.T) (service.Booking, deps) {
	t.Helper()

	return setupBatch(t, 10)
}

func setupBatch(t *testing.T, batch int) (service.Booking, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)

	d := deps{
		repo:         bookingMocks.NewMockBooking(ctrl),
		rooms:        roomMocks.NewMockRoomSettingService(ctrl),
		logs:         logMocks.NewMockBookingLogService(ctrl),
		preBan:       prebanMocks.NewMockPreBan(ctrl),
		gateway:      bookingMocks.NewMockGateway(ctrl),
		fallback:     bookingMocks.NewMockFallback(ctrl),
		orchestrator: bookingMocks.NewMockOrchestrator(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Booking.NoShow.GraceMinutes = 30
	cfg.Booking.NoShow.BatchSize = batch

	svc := service.New(d.repo, d.rooms, d.logs, d.preBan, machine.New(), d.gateway, d.fallback, d.orchestrator, cfg, d.cache, mocks.NewOtel())

	return svc, d
}

func tenantCtx() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyTenant, "mc")

	return context.WithValue(ctx, constant.ContextKeyUserEmail, "abc123@nyu.edu")
}

func createRequest(origin model.Origin, services model.ServiceFlags) dto.CreateBookingRequest {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	return dto.CreateBookingRequest{
		Email:     "abc123@nyu.edu",
		NetID:     "abc123",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Role:      "Student",
		Title:     "Study group",
		RoomIDs:   []string{"202"},
		StartDate: start,
		EndDate:   start.Add(2 * time.Hour),
		Origin:    origin,
		Services:  services,
	}
}

func autoRoom() roomModel.RoomSetting {
	return roomModel.RoomSetting{
		Tenant: "mc",
		RoomID: "202",
		AutoApproval: &roomModel.AutoApproval{
			MaxHour:    map[string]float64{roomModel.RoleStudent: 4},
			Conditions: map[string]bool{string(model.ServiceSetup): true},
		},
	}
}

func stepStates(path []machine.Step) []model.StateName {
	states := make([]model.StateName, 0, len(path))
	for _, s := range path {
		states = append(states, s.State)
	}

	return states
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name     string
		origin   model.Origin
		services model.ServiceFlags
		rooms    []roomModel.RoomSetting
		want     []model.StateName
	}{
		{
			name:  "room without settings needs review",
			rooms: nil,
			want:  []model.StateName{model.StateRequested},
		},
		{
			name:  "auto-approved room",
			rooms: []roomModel.RoomSetting{autoRoom()},
			want:  []model.StateName{model.StateRequested, model.StateApproved},
		},
		{
			name:     "auto-approved with services waits for service review",
			services: model.ServiceFlags{model.ServiceSetup: true},
			rooms:    []roomModel.RoomSetting{autoRoom()},
			want:     []model.StateName{model.StateRequested, model.StateServicesRequest},
		},
		{
			name:   "vip bypasses room rules",
			origin: model.OriginVIP,
			want:   []model.StateName{model.StateRequested, model.StateApproved},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := setup(t)

			var inserted model.Booking

			d.rooms.EXPECT().GetByRoomIDs(gomock.Any(), "mc", []string{"202"}).Return(tt.rooms, nil)
			d.repo.EXPECT().NextRequestNumber(gomock.Any()).Return(int64(7), nil)
			d.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b model.Booking) error {
				inserted = b

				return nil
			})
			d.orchestrator.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, b model.Booking, cmd gateway.Command, res gateway.Result) (sideeffect.Outcome, error) {
					assert.Equal(t, machine.EventSubmit, cmd.Event.Type)
					assert.Equal(t, "abc123@nyu.edu", cmd.Actor)
					assert.True(t, res.Changed())
					assert.Equal(t, tt.want, stepStates(res.Path))

					b.XState = &model.XStateData{MachineID: machine.MachineID, Snapshot: *res.Snapshot}
					b.Status = res.NewState.Label()

					return sideeffect.Outcome{Accepted: true, Changed: true, State: res.NewState, Booking: b}, nil
				})

			res, err := svc.Create(tenantCtx(), createRequest(tt.origin, tt.services))
			require.NoError(t, err)

			assert.Equal(t, "mc", inserted.Tenant)
			assert.Equal(t, int64(7), inserted.RequestNumber)
			assert.Equal(t, model.StatusRequested, inserted.Status)
			assert.NotEmpty(t, res.CalendarEventID)
			assert.Equal(t, tt.want[len(tt.want)-1], res.State)
		})
	}
}

func TestCreateConflict(t *testing.T) {
	svc, d := setup(t)

	req := createRequest(model.OriginUser, nil)
	req.CalendarEventID = "evt-1"

	d.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

	_, err := svc.Create(tenantCtx(), req)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestCreateInsertFailure(t *testing.T) {
	svc, d := setup(t)

	d.rooms.EXPECT().GetByRoomIDs(gomock.Any(), "mc", gomock.Any()).Return(nil, nil)
	d.repo.EXPECT().NextRequestNumber(gomock.Any()).Return(int64(1), nil)
	d.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errBoom)

	_, err := svc.Create(tenantCtx(), createRequest(model.OriginUser, nil))
	require.ErrorIs(t, err, errBoom)
}

func requestedBooking() model.Booking {
	tr := machine.New().Start(model.ServiceFlags{}, machine.Facts{})

	return model.Booking{
		ID:              "b-1",
		Tenant:          "mc",
		CalendarEventID: "evt-1",
		RequestNumber:   7,
		Status:          model.StatusRequested,
		XState:          &model.XStateData{MachineID: machine.MachineID, Snapshot: tr.Snapshot},
	}
}

func TestSendEvent(t *testing.T) {
	cmd := gateway.Command{Tenant: "mc", CalendarEventID: "evt-1", Event: machine.Event{Type: machine.EventCancel}, Actor: "abc123@nyu.edu"}
	canceled := gateway.Result{Success: true, Accepted: true, NewState: model.StateCanceled}

	tests := []struct {
		name     string
		gateway  gateway.Result
		fallback *gateway.Result
		wantCode int
		applied  bool
	}{
		{
			name:    "gateway result is applied",
			gateway: canceled,
			applied: true,
		},
		{
			name:     "failed gateway is recovered by the fallback",
			gateway:  gateway.Failed(errBoom),
			fallback: &gateway.Result{Success: true, Accepted: true, Fallback: true, NewState: model.StateCanceled},
			applied:  true,
		},
		{
			name:     "fallback that cannot derive the transition",
			gateway:  gateway.Failed(errBoom),
			fallback: &gateway.Result{Err: errBoom},
			wantCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := setup(t)

			booking := requestedBooking()

			d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
			d.gateway.EXPECT().Transition(gomock.Any(), cmd).Return(tt.gateway)

			if tt.fallback != nil {
				d.fallback.EXPECT().Derive(gomock.Any(), booking, cmd, tt.gateway).Return(*tt.fallback)
			}

			if tt.applied {
				d.orchestrator.EXPECT().Apply(gomock.Any(), booking, cmd, gomock.Any()).
					Return(sideeffect.Outcome{Accepted: true, Changed: true, State: model.StateCanceled}, nil)
			}

			out, err := svc.SendEvent(context.Background(), cmd)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, model.StateCanceled, out.State)
		})
	}
}

func TestSendEventNotFound(t *testing.T) {
	svc, d := setup(t)

	d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

	_, err := svc.SendEvent(context.Background(), gateway.Command{Tenant: "mc", CalendarEventID: "missing", Event: machine.Event{Type: machine.EventCancel}})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestEnsureSnapshot(t *testing.T) {
	t.Run("keeps an existing snapshot", func(t *testing.T) {
		svc, _ := setup(t)

		booking := requestedBooking()

		got, err := svc.EnsureSnapshot(context.Background(), booking)
		require.NoError(t, err)
		assert.Equal(t, booking, got)
	})

	t.Run("persists a snapshot for a legacy row", func(t *testing.T) {
		svc, d := setup(t)

		booking := model.Booking{ID: "b-2", Tenant: "mc", CalendarEventID: "evt-2", Status: model.StatusApproved}

		d.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			xstate, ok := fields[model.FieldXState].(model.XStateData)
			require.True(t, ok)
			assert.Equal(t, model.StateApproved, xstate.Snapshot.State())

			return nil
		})

		got, err := svc.EnsureSnapshot(context.Background(), booking)
		require.NoError(t, err)
		require.NotNil(t, got.XState)
		assert.Equal(t, model.StateApproved, got.CurrentState())
	})

	t.Run("store failure", func(t *testing.T) {
		svc, d := setup(t)

		d.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errBoom)

		_, err := svc.EnsureSnapshot(context.Background(), model.Booking{ID: "b-2", Status: model.StatusRequested})
		require.ErrorIs(t, err, errBoom)
	})
}

func TestHistory(t *testing.T) {
	t.Run("returns the log", func(t *testing.T) {
		svc, d := setup(t)

		at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
		logs := []logModel.BookingLog{
			{Status: model.StatusRequested, ChangedBy: "abc123@nyu.edu", ChangedAt: at},
			{Status: model.StatusCanceled, ChangedBy: "abc123@nyu.edu", ChangedAt: at.Add(time.Hour)},
		}

		d.logs.EXPECT().History(gomock.Any(), "mc", int64(7)).Return(logs, nil)

		res, err := svc.History(context.Background(), "mc", 7)
		require.NoError(t, err)
		assert.False(t, res.Legacy)
		require.Len(t, res.Entries, 2)
		assert.Equal(t, model.StatusCanceled, res.Entries[1].Status)
	})

	t.Run("rebuilds legacy requests from timestamps", func(t *testing.T) {
		svc, d := setup(t)

		requested := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
		approved := requested.Add(time.Hour)
		canceled := requested.Add(2 * time.Hour)

		booking := model.Booking{ID: "b-3", Tenant: "mc", RequestNumber: 7}
		booking.CanceledAt, booking.CanceledBy = &canceled, "abc123@nyu.edu"
		booking.RequestedAt, booking.RequestedBy = &requested, "abc123@nyu.edu"
		booking.FinalApprovedAt, booking.FinalApprovedBy = &approved, "admin@nyu.edu"

		d.logs.EXPECT().History(gomock.Any(), "mc", int64(7)).Return(nil, nil)
		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		res, err := svc.History(context.Background(), "mc", 7)
		require.NoError(t, err)
		assert.True(t, res.Legacy)

		got := make([]model.StatusLabel, 0, len(res.Entries))
		for _, e := range res.Entries {
			got = append(got, e.Status)
		}

		assert.Equal(t, []model.StatusLabel{model.StatusRequested, model.StatusApproved, model.StatusCanceled}, got)
	})

	t.Run("unknown request", func(t *testing.T) {
		svc, d := setup(t)

		d.logs.EXPECT().History(gomock.Any(), "mc", int64(9)).Return(nil, nil)
		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := svc.History(context.Background(), "mc", 9)
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestGet(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		svc, d := setup(t)

		d.cache.EXPECT().Get(gomock.Any(), "booking:mc:evt-1", gomock.Any()).Return(nil)

		_, err := svc.Get(context.Background(), "mc", "evt-1")
		require.NoError(t, err)
	})

	t.Run("cache miss loads the booking", func(t *testing.T) {
		svc, d := setup(t)

		d.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errBoom)
		d.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(requestedBooking(), nil)

		res, err := svc.Get(context.Background(), "mc", "evt-1")
		require.NoError(t, err)
		assert.Equal(t, model.StateRequested, res.State)
		assert.Equal(t, model.StatusRequested, res.Status)
	})
}

func TestViolationCount(t *testing.T) {
	svc, d := setup(t)

	d.preBan.EXPECT().ViolationCount(gomock.Any(), "mc", "abc123").Return(2, nil)

	res, err := svc.ViolationCount(context.Background(), "mc", "abc123")
	require.NoError(t, err)
	assert.Equal(t, dto.ViolationResponse{NetID: "abc123", Count: 2}, res)
}

func TestSweepNoShows(t *testing.T) {
	svc, d := setup(t)

	first := requestedBooking()
	second := requestedBooking()
	second.ID, second.CalendarEventID, second.Tenant = "b-2", "evt-2", "itp"

	d.repo.EXPECT().DueNoShows(gomock.Any(), gomock.Any(), 10, 0).Return([]model.Booking{first, second}, nil)
	d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(first, nil)
	d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(second, nil)

	d.gateway.EXPECT().Transition(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cmd gateway.Command) gateway.Result {
		assert.Equal(t, machine.EventNoShow, cmd.Event.Type)
		assert.Equal(t, model.SystemActor, cmd.Actor)

		if cmd.CalendarEventID == "evt-2" {
			return gateway.Result{Success: true, Accepted: false, NewState: model.StateApproved}
		}

		return gateway.Result{Success: true, Accepted: true, NewState: model.StateCanceled}
	}).Times(2)

	d.orchestrator.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ model.Booking, _ gateway.Command, res gateway.Result) (sideeffect.Outcome, error) {
			return sideeffect.Outcome{Accepted: res.Accepted, Changed: res.Changed()}, nil
		}).Times(2)

	swept, err := svc.SweepNoShows(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, swept)
}

func TestSweepNoShowsSkipsStuckBookings(t *testing.T) {
	svc, d := setupBatch(t, 2)

	stuck := requestedBooking()
	stuck.ID, stuck.CalendarEventID = "b-stuck", "evt-stuck"

	next := requestedBooking()
	next.ID, next.CalendarEventID = "b-2", "evt-2"

	last := requestedBooking()
	last.ID, last.CalendarEventID = "b-3", "evt-3"

	gomock.InOrder(
		d.repo.EXPECT().DueNoShows(gomock.Any(), gomock.Any(), 2, 0).Return([]model.Booking{stuck, next}, nil),
		d.repo.EXPECT().DueNoShows(gomock.Any(), gomock.Any(), 2, 1).Return([]model.Booking{last}, nil),
	)

	gomock.InOrder(
		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stuck, nil),
		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(next, nil),
		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(last, nil),
	)

	d.gateway.EXPECT().Transition(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cmd gateway.Command) gateway.Result {
		if cmd.CalendarEventID == "evt-stuck" {
			return gateway.Failed(errBoom)
		}

		return gateway.Result{Success: true, Accepted: true, NewState: model.StateCanceled}
	}).Times(3)

	d.fallback.EXPECT().Derive(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ model.Booking, _ gateway.Command, failed gateway.Result) gateway.Result {
			return failed
		})

	d.orchestrator.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ model.Booking, _ gateway.Command, res gateway.Result) (sideeffect.Outcome, error) {
			return sideeffect.Outcome{Accepted: res.Accepted, Changed: res.Changed()}, nil
		}).Times(2)

	swept, err := svc.SweepNoShows(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, swept)
}
