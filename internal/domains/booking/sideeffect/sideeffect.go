// Package sideeffect applies an accepted transition to the world: the booking row, its history log, penalty
// records, the status email, the calendar prefix and the snapshot archive, in that order.
package sideeffect

//go:generate go run go.uber.org/mock/mockgen -source=./sideeffect.go -destination=../mocks/sideeffect_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"time"

	"reserve/config"
	"reserve/infras/calendar"
	"reserve/infras/mailer"
	"reserve/infras/otel"
	"reserve/infras/s3"
	"reserve/internal/domains/booking/gateway"
	"reserve/internal/domains/booking/machine"
	"reserve/internal/domains/booking/messages"
	"reserve/internal/domains/booking/model"
	"reserve/internal/domains/booking/repository"
	logModel "reserve/internal/domains/bookinglog/model"
	logService "reserve/internal/domains/bookinglog/service"
	prebanService "reserve/internal/domains/preban/service"
	"reserve/shared"
	"reserve/shared/cache"
	"reserve/shared/constant"
	"reserve/shared/timezone"

	"github.com/rs/zerolog/log"
)

const archiveCollection = "xstate-archive"

// Outcome is what the caller sees of a transition.
type Outcome struct {
	Accepted bool              `json:"accepted"`
	Changed  bool              `json:"changed"`
	State    model.StateName   `json:"state"`
	Label    model.StatusLabel `json:"status"`
	Path     []machine.Step    `json:"path"`
	Fallback bool              `json:"fallback"`
	Booking  model.Booking     `json:"-"`
}

type Orchestrator interface {
	Apply(ctx context.Context, booking model.Booking, cmd gateway.Command, res gateway.Result) (Outcome, error)
}

type orchestrator struct {
	repo      repository.Booking
	logs      logService.BookingLog
	preBan    prebanService.PreBan
	mailer    mailer.Mailer
	calendar  calendar.Calendar
	archive   s3.S3
	templates *messages.Templates
	cache     cache.RedisCache
	cfg       *config.Config
	otel      otel.Otel
	now       func() time.Time
}

func New(
	repo repository.Booking,
	logs logService.BookingLog,
	preBan prebanService.PreBan,
	mailer mailer.Mailer,
	calendar calendar.Calendar,
	archive s3.S3,
	templates *messages.Templates,
	cache cache.RedisCache,
	cfg *config.Config,
	otel otel.Otel,
) Orchestrator {
	return &orchestrator{
		repo:      repo,
		logs:      logs,
		preBan:    preBan,
		mailer:    mailer,
		calendar:  calendar,
		archive:   archive,
		templates: templates,
		cache:     cache,
		cfg:       cfg,
		otel:      otel,
		now:       timezone.Now,
	}
}

// Apply runs the side effects of res against booking. Only a failed status write is returned as an error;
// every later effect is logged and skipped.
func (o *orchestrator) Apply(ctx context.Context, booking model.Booking, cmd gateway.Command, res gateway.Result) (out Outcome, err error) {
	ctx, scope := o.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".sideeffect.Apply")
	defer scope.End()
	defer scope.TraceIfError(&err)

	before := booking.CurrentState()

	out = Outcome{
		Accepted: res.Accepted,
		State:    before,
		Label:    before.Label(),
		Path:     []machine.Step{},
		Fallback: res.Fallback,
		Booking:  booking,
	}

	if !res.Changed() {
		return out, nil
	}

	snapshot := snapshotOf(booking, res)

	next, err := snapshot.Serialize()
	if err != nil {
		return out, err //nolint:wrapcheck
	}

	if prev := serialized(booking); prev == next {
		log.Debug().Str("calendarEventId", booking.CalendarEventID).Msg("snapshot unchanged, skipping side effects")

		return out, nil
	}

	path := res.Path
	if path == nil {
		path = []machine.Step{}
	}

	now := o.now()

	booking, err = o.persist(ctx, booking, cmd, snapshot, path, now)
	if err != nil {
		return out, err
	}

	out.Changed = true
	out.State = snapshot.State()
	out.Label = out.State.Label()
	out.Path = path
	out.Booking = booking

	defer o.invalidate(ctx, booking)

	if err := o.logs.Append(ctx, logRows(booking, cmd, before, snapshot, path, now)...); err != nil {
		log.Error().Err(err).Str("calendarEventId", booking.CalendarEventID).Msg("failed to write booking log, skipping notifications")

		return out, nil
	}

	penalized := o.recordViolations(ctx, booking, cmd, path, now)

	if len(path) == 0 {
		return out, nil
	}

	label := notifyLabel(path)
	detached := context.WithoutCancel(ctx)

	o.sendEmail(detached, booking, label, penalized)
	o.syncCalendar(detached, booking, label)
	o.archiveSnapshot(detached, booking)

	return out, nil
}

func (o *orchestrator) persist(ctx context.Context, booking model.Booking, cmd gateway.Command, snapshot model.Snapshot, path []machine.Step, now time.Time) (model.Booking, error) {
	xstate := model.XStateData{
		MachineID:      machine.MachineID,
		LastTransition: cmd.Event.Name(),
		Snapshot:       snapshot,
	}

	label := snapshot.State().Label()

	fields := map[string]any{
		model.FieldXState:        xstate,
		model.FieldStatus:        label,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: actorOf(cmd, machine.Step{}),
	}

	for _, step := range path {
		maps.Copy(fields, step.State.Stamp(now, actorOf(cmd, step), reasonOf(snapshot, step)))
	}

	filter := shared.FilterByTenant(booking.Tenant, model.FieldID, booking.ID, model.TableName)

	if err := o.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Str("calendarEventId", booking.CalendarEventID).Msg("failed to persist booking state")

		return booking, fmt.Errorf("failed to persist booking state: %w", err)
	}

	for _, step := range path {
		booking.ApplyStamp(step.State, now, actorOf(cmd, step), reasonOf(snapshot, step))
	}

	booking.XState = &xstate
	booking.Status = label
	booking.ModifiedAt = now
	booking.ModifiedBy = actorOf(cmd, machine.Step{})

	return booking, nil
}

func (o *orchestrator) recordViolations(ctx context.Context, booking model.Booking, cmd gateway.Command, path []machine.Step, now time.Time) bool {
	recorded := false

	for _, step := range path {
		entry, ok := violation(booking, cmd, step, now)
		if !ok {
			continue
		}

		if err := o.preBan.Record(ctx, entry); err != nil {
			log.Error().Err(err).Str("netId", booking.NetID).Msg("failed to record policy violation")

			continue
		}

		recorded = true
	}

	return recorded
}

func (o *orchestrator) sendEmail(ctx context.Context, booking model.Booking, label model.StatusLabel, penalized bool) {
	header := o.templates.Header(booking.Tenant, label)
	contents := contentsOf(booking, label)

	if penalized {
		count, err := o.preBan.ViolationCount(ctx, booking.Tenant, booking.NetID)
		if err != nil {
			log.Error().Err(err).Str("netId", booking.NetID).Msg("failed to count violations for email")
		} else {
			contents["violationCount"] = count

			if notice := o.templates.Penalty(count); notice != constant.Empty {
				header += " " + notice
			}
		}
	}

	msg := mailer.Message{
		TargetEmail:   booking.Email,
		TemplateName:  mailer.TemplateBookingDetail,
		Status:        string(label),
		HeaderMessage: header,
		Contents:      contents,
	}

	if err := o.mailer.Send(ctx, booking.Tenant, booking.CalendarEventID, msg); err != nil {
		log.Error().Err(err).Str("calendarEventId", booking.CalendarEventID).Str("status", string(label)).Msg("failed to send status email")
	}
}

func (o *orchestrator) syncCalendar(ctx context.Context, booking model.Booking, label model.StatusLabel) {
	if err := o.calendar.UpdateStatusPrefix(ctx, booking.Tenant, booking.CalendarEventID, label.CalendarPrefix()); err != nil {
		log.Error().Err(err).Str("calendarEventId", booking.CalendarEventID).Msg("failed to update calendar status")
	}
}

func (o *orchestrator) archiveSnapshot(ctx context.Context, booking model.Booking) {
	if !o.cfg.Booking.Archive.Enable || booking.XState == nil || !booking.XState.Snapshot.State().Terminal() {
		return
	}

	data, err := json.Marshal(booking.XState)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal snapshot for archive")

		return
	}

	dir := shared.TenantCollection(booking.Tenant, archiveCollection)

	if _, err := o.archive.PutObject(ctx, dir, booking.CalendarEventID+".json", constant.ContentTypeJSON, data); err != nil {
		log.Error().Err(err).Str("calendarEventId", booking.CalendarEventID).Msg("failed to archive snapshot")
	}
}

func (o *orchestrator) invalidate(ctx context.Context, booking model.Booking) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := o.cache.Delete(c, shared.BuildCacheKey(model.CacheKeyBooking, booking.Tenant, booking.CalendarEventID)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking cache")
		}
	}()
}

func snapshotOf(booking model.Booking, res gateway.Result) model.Snapshot {
	if res.Snapshot != nil {
		return *res.Snapshot
	}

	snapshot := machine.Restore(booking)
	snapshot.Value = model.SimpleState(res.NewState)
	snapshot.Context.Status = res.NewState.Label()
	snapshot.Status = model.SnapshotActive

	if res.NewState.Terminal() {
		snapshot.Status = model.SnapshotDone
	}

	return snapshot
}

func serialized(booking model.Booking) string {
	if booking.XState == nil {
		return constant.Empty
	}

	s, err := booking.XState.Snapshot.Serialize()
	if err != nil {
		return constant.Empty
	}

	return s
}

func actorOf(cmd gateway.Command, step machine.Step) string {
	if step.Cascade || cmd.Actor == constant.Empty {
		return model.SystemActor
	}

	return cmd.Actor
}

func reasonOf(snapshot model.Snapshot, step machine.Step) string {
	if step.State != model.StateDeclined {
		return constant.Empty
	}

	if snapshot.Context.DeclineReason != constant.Empty {
		return snapshot.Context.DeclineReason
	}

	return step.Note
}

// notifyLabel is the status announced for a path. A no show is announced as such even though it cascades.
func notifyLabel(path []machine.Step) model.StatusLabel {
	for _, step := range path {
		if step.State == model.StateNoShow {
			return model.StatusNoShow
		}
	}

	return path[len(path)-1].State.Label()
}

func contentsOf(booking model.Booking, label model.StatusLabel) map[string]any {
	contents := map[string]any{
		"calendarEventId": booking.CalendarEventID,
		"requestNumber":   booking.RequestNumber,
		"title":           booking.Title,
		"firstName":       booking.FirstName,
		"lastName":        booking.LastName,
		"netId":           booking.NetID,
		"roomIds":         []string(booking.RoomIDs),
		"startDate":       booking.StartDate.Format(constant.DateFormat),
		"endDate":         booking.EndDate.Format(constant.DateFormat),
		"status":          string(label),
	}

	if label == model.StatusDeclined && booking.DeclineReason != constant.Empty {
		contents["declineReason"] = booking.DeclineReason
	}

	return contents
}

// logRows is one row per state entered. Sub-events that stay in place leave one annotation row instead.
func logRows(booking model.Booking, cmd gateway.Command, before model.StateName, snapshot model.Snapshot, path []machine.Step, now time.Time) []logModel.BookingLog {
	rows := []logModel.BookingLog{}

	row := func(status model.StatusLabel, by, note string) logModel.BookingLog {
		return logModel.BookingLog{
			Tenant:          booking.Tenant,
			BookingID:       booking.ID,
			CalendarEventID: booking.CalendarEventID,
			RequestNumber:   booking.RequestNumber,
			Status:          status,
			ChangedBy:       by,
			ChangedAt:       now.Add(time.Duration(len(rows)) * time.Microsecond),
			Note:            note,
		}
	}

	switch {
	case cmd.Event.Type == machine.EventEdit:
		rows = append(rows, row(model.StatusModified, actorOf(cmd, machine.Step{}), noteEdited))
	case cmd.Event.IsServiceEvent():
		rows = append(rows, row(before.Label(), actorOf(cmd, machine.Step{}), serviceNote(cmd.Event)))
	}

	for _, step := range path {
		status := step.State.Label()
		if step.State == model.StateRequested && booking.Origin == model.OriginWalkIn {
			status = model.StatusWalkIn
		}

		note := step.Note
		if step.State == model.StateDeclined && !step.Cascade {
			note = reasonOf(snapshot, step)
		}

		rows = append(rows, row(status, actorOf(cmd, step), note))
	}

	return rows
}
