package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"reserve/config"
	"reserve/infras/otel"
	"reserve/internal/domains/booking/autoapproval"
	"reserve/internal/domains/booking/fallback"
	"reserve/internal/domains/booking/gateway"
	"reserve/internal/domains/booking/machine"
	"reserve/internal/domains/booking/model"
	"reserve/internal/domains/booking/model/dto"
	"reserve/internal/domains/booking/repository"
	"reserve/internal/domains/booking/sideeffect"
	logModel "reserve/internal/domains/bookinglog/model"
	logService "reserve/internal/domains/bookinglog/service"
	prebanService "reserve/internal/domains/preban/service"
	roomModel "reserve/internal/domains/room/model"
	roomService "reserve/internal/domains/room/service"
	"reserve/shared"
	"reserve/shared/cache"
	"reserve/shared/constant"
	"reserve/shared/failure"
	"reserve/shared/timezone"

	"github.com/rs/zerolog/log"
)

const noteLegacy = "Reconstructed from booking timestamps"

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, tenant, calendarEventID string) (dto.BookingResponse, error)
	Load(ctx context.Context, tenant, calendarEventID string) (model.Booking, error)
	EnsureSnapshot(ctx context.Context, booking model.Booking) (model.Booking, error)
	SendEvent(ctx context.Context, cmd gateway.Command) (sideeffect.Outcome, error)
	History(ctx context.Context, tenant string, requestNumber int64) (dto.HistoryResponse, error)
	ViolationCount(ctx context.Context, tenant, netID string) (dto.ViolationResponse, error)
	SweepNoShows(ctx context.Context) (int, error)
}

type serviceImpl struct {
	repo         repository.Booking
	rooms        roomService.RoomSetting
	logs         logService.BookingLog
	preBan       prebanService.PreBan
	machine      *machine.Machine
	gateway      gateway.Gateway
	fallback     fallback.Fallback
	orchestrator sideeffect.Orchestrator
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	now          func() time.Time
}

func New(
	repo repository.Booking,
	rooms roomService.RoomSetting,
	logs logService.BookingLog,
	preBan prebanService.PreBan,
	m *machine.Machine,
	gw gateway.Gateway,
	fb fallback.Fallback,
	orchestrator sideeffect.Orchestrator,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		rooms:        rooms,
		logs:         logs,
		preBan:       preBan,
		machine:      m,
		gateway:      gw,
		fallback:     fb,
		orchestrator: orchestrator,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		now:          timezone.Now,
	}
}

// Create submits a booking. The initial snapshot already reflects auto-approval.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	tenant := shared.TenantFromContext(ctx)
	actor := shared.ActorFromContext(ctx)

	if req.CalendarEventID != constant.Empty {
		exist, err := s.repo.Exist(ctx, shared.FilterByTenant(tenant, model.FieldCalendarEventID, req.CalendarEventID, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check booking existence")

			return res, fmt.Errorf("failed to check booking existence: %w", err)
		}

		if exist {
			return res, failure.Conflict("booking already exists for calendar event " + req.CalendarEventID) //nolint:wrapcheck
		}
	}

	rooms, err := s.roomSettings(ctx, tenant, req.RoomIDs)
	if err != nil {
		return res, err
	}

	number, err := s.repo.NextRequestNumber(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	now := s.now()
	booking := req.ToModel(tenant, actor, number, now)

	decision := autoapproval.Evaluate(autoapproval.Request{
		Rooms:         rooms,
		Role:          booking.Role,
		IsVIP:         booking.Origin == model.OriginVIP,
		IsWalkIn:      booking.Origin == model.OriginWalkIn,
		DurationHours: booking.DurationHours(),
		Services:      booking.ServicesRequested,
	})

	log.Info().Str("calendarEventId", booking.CalendarEventID).Bool("autoApprove", decision.CanAutoApprove).
		Str("reason", decision.Reason).Msg("evaluated auto-approval")

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Str("calendarEventId", booking.CalendarEventID).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	start := s.machine.Start(booking.ServicesRequested, machine.Facts{
		Now:         now,
		StartDate:   booking.StartDate,
		AutoApprove: decision.CanAutoApprove,
	})

	cmd := gateway.Command{
		Tenant:          tenant,
		CalendarEventID: booking.CalendarEventID,
		Event:           start.Event,
		Actor:           actor,
	}

	out, err := s.orchestrator.Apply(ctx, booking, cmd, gateway.FromTransition(start))
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.FromModel(out.Booking)

	return res, nil
}

// roomSettings returns one setting per selected room. Rooms nobody configured are auto-approval disabled.
func (s *serviceImpl) roomSettings(ctx context.Context, tenant string, roomIDs []string) ([]roomModel.RoomSetting, error) {
	found, err := s.rooms.GetByRoomIDs(ctx, tenant, roomIDs)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	byID := make(map[string]roomModel.RoomSetting, len(found))
	for _, room := range found {
		byID[room.RoomID] = room
	}

	rooms := make([]roomModel.RoomSetting, 0, len(roomIDs))

	for _, id := range roomIDs {
		room, ok := byID[id]
		if !ok {
			room = roomModel.RoomSetting{Tenant: tenant, RoomID: id}
		}

		rooms = append(rooms, room)
	}

	return rooms, nil
}

func (s *serviceImpl) Get(ctx context.Context, tenant, calendarEventID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKey(model.CacheKeyBooking, tenant, calendarEventID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.Load(ctx, tenant, calendarEventID)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Load(ctx context.Context, tenant, calendarEventID string) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Load")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if calendarEventID == constant.Empty {
		return res, failure.BadRequestFromString("calendarEventId is required") //nolint:wrapcheck
	}

	res, err = s.repo.Get(ctx, shared.FilterByTenant(tenant, model.FieldCalendarEventID, calendarEventID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("calendarEventId", calendarEventID).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if res.ID == constant.Empty {
		return res, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	return res, nil
}

// EnsureSnapshot persists a snapshot derived from the flat status for rows that predate the machine. It writes
// no history: nothing transitioned.
func (s *serviceImpl) EnsureSnapshot(ctx context.Context, booking model.Booking) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EnsureSnapshot")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if booking.XState != nil && booking.XState.Snapshot.State() != model.StateUnknown {
		return booking, nil
	}

	xstate := model.XStateData{
		MachineID: machine.MachineID,
		Snapshot:  machine.Restore(booking),
	}

	fields := map[string]any{
		model.FieldXState: xstate,
		model.FieldStatus: xstate.Snapshot.State().Label(),
	}

	err = s.repo.Update(ctx, fields, shared.FilterByTenant(booking.Tenant, model.FieldID, booking.ID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("calendarEventId", booking.CalendarEventID).Msg("failed to persist restored snapshot")

		return booking, fmt.Errorf("failed to persist restored snapshot: %w", err)
	}

	booking.XState = &xstate
	booking.Status = xstate.Snapshot.State().Label()

	return booking, nil
}

// SendEvent drives one transition: the gateway decides, the fallback recovers a failed gateway, and the
// orchestrator applies whatever was decided. A rejected event is returned with Accepted false.
func (s *serviceImpl) SendEvent(ctx context.Context, cmd gateway.Command) (out sideeffect.Outcome, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendEvent")
	defer scope.End()
	defer scope.TraceIfError(&err)

	scope.SetAttribute("event", cmd.Event.Name())

	booking, err := s.Load(ctx, cmd.Tenant, cmd.CalendarEventID)
	if err != nil {
		return out, err
	}

	res := s.gateway.Transition(ctx, cmd).Recover(func(failed gateway.Result) gateway.Result {
		log.Warn().Err(failed.Err).Str("calendarEventId", cmd.CalendarEventID).Str("event", cmd.Event.Name()).
			Msg("transition gateway failed, using fallback")

		return s.fallback.Derive(ctx, booking, cmd, failed)
	})

	if !res.Success {
		log.Error().Err(res.Err).Str("calendarEventId", cmd.CalendarEventID).Msg("failed to transition booking")

		return out, failure.BadGateway(fmt.Sprintf("failed to %s booking: %v", cmd.Event.Name(), res.Err)) //nolint:wrapcheck
	}

	return s.orchestrator.Apply(ctx, booking, cmd, res) //nolint:wrapcheck
}

// History returns the status log of a request, oldest first. Requests without log rows are rebuilt from the
// lifecycle timestamps on the booking.
func (s *serviceImpl) History(ctx context.Context, tenant string, requestNumber int64) (res dto.HistoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".History")
	defer scope.End()
	defer scope.TraceIfError(&err)

	logs, err := s.logs.History(ctx, tenant, requestNumber)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if len(logs) > 0 {
		res.FromLogs(requestNumber, false, logs)

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByTenant(tenant, model.FieldRequestNumber, requestNumber, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("requestNumber", requestNumber).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound(model.EntityName + " " + strconv.FormatInt(requestNumber, 10)) //nolint:wrapcheck
	}

	res.FromLogs(requestNumber, true, reconstruct(booking))

	return res, nil
}

func (s *serviceImpl) ViolationCount(ctx context.Context, tenant, netID string) (res dto.ViolationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ViolationCount")
	defer scope.End()
	defer scope.TraceIfError(&err)

	count, err := s.preBan.ViolationCount(ctx, tenant, netID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return dto.ViolationResponse{NetID: netID, Count: count}, nil
}

// SweepNoShows marks approved bookings that were never checked in as no-shows. It returns how many changed.
func (s *serviceImpl) SweepNoShows(ctx context.Context) (swept int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SweepNoShows")
	defer scope.End()
	defer scope.TraceIfError(&err)

	grace := time.Duration(s.cfg.Booking.NoShow.GraceMinutes) * time.Minute
	cutoff := s.now().Add(-grace)

	batch := s.cfg.Booking.NoShow.BatchSize

	// Bookings that changed leave the due set, the rest stay in it and are skipped by offset.
	for skipped := 0; ; {
		due, err := s.repo.DueNoShows(ctx, cutoff, batch, skipped)
		if err != nil {
			log.Error().Err(err).Msg("failed to list due no-shows")

			return swept, fmt.Errorf("failed to list due no-shows: %w", err)
		}

		for _, booking := range due {
			if s.markNoShow(ctx, booking) {
				swept++
			} else {
				skipped++
			}
		}

		if len(due) == 0 || len(due) < batch {
			break
		}
	}

	return swept, nil
}

func (s *serviceImpl) markNoShow(ctx context.Context, booking model.Booking) bool {
	out, err := s.SendEvent(ctx, gateway.Command{
		Tenant:          booking.Tenant,
		CalendarEventID: booking.CalendarEventID,
		Event:           machine.Event{Type: machine.EventNoShow},
		Actor:           model.SystemActor,
	})
	if err != nil {
		log.Error().Err(err).Str("calendarEventId", booking.CalendarEventID).Msg("failed to mark no-show")

		return false
	}

	return out.Changed
}

// reconstruct turns the timestamp bag of a booking into log rows.
func reconstruct(booking model.Booking) []logModel.BookingLog {
	b := booking.BookingStatus

	entries := []struct {
		status model.StatusLabel
		at     *time.Time
		by     string
		note   string
	}{
		{model.StatusRequested, b.RequestedAt, b.RequestedBy, ""},
		{model.StatusWalkIn, b.WalkedInAt, b.WalkedInBy, ""},
		{model.StatusPending, b.FirstApprovedAt, b.FirstApprovedBy, ""},
		{model.StatusApproved, b.FinalApprovedAt, b.FinalApprovedBy, ""},
		{model.StatusDeclined, b.DeclinedAt, b.DeclinedBy, b.DeclineReason},
		{model.StatusCheckedIn, b.CheckedInAt, b.CheckedInBy, ""},
		{model.StatusNoShow, b.NoShowedAt, b.NoShowedBy, ""},
		{model.StatusCanceled, b.CanceledAt, b.CanceledBy, ""},
		{model.StatusCheckedOut, b.CheckedOutAt, b.CheckedOutBy, ""},
		{model.StatusCheckedOut, b.ClosedAt, b.ClosedBy, machine.NoteClosed},
	}

	logs := []logModel.BookingLog{}

	for _, e := range entries {
		if e.at == nil {
			continue
		}

		note := e.note
		if note == constant.Empty {
			note = noteLegacy
		}

		logs = append(logs, logModel.BookingLog{
			Tenant:          booking.Tenant,
			BookingID:       booking.ID,
			CalendarEventID: booking.CalendarEventID,
			Status:          e.status,
			ChangedBy:       e.by,
			ChangedAt:       *e.at,
			Note:            note,
			RequestNumber:   booking.RequestNumber,
		})
	}

	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].ChangedAt.Before(logs[j].ChangedAt)
	})

	return logs
}
