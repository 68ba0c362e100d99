package dto

import (
	"time"

	"reserve/internal/domains/booking/machine"
	"reserve/internal/domains/booking/model"
	"reserve/internal/domains/booking/sideeffect"
	logModel "reserve/internal/domains/bookinglog/model"
	gModel "reserve/shared/model"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	CalendarEventID string             `json:"calendarEventId" validate:"omitempty,max=255"`
	Email           string             `json:"email"           validate:"required,email"`
	NetID           string             `json:"netId"           validate:"required,max=32"`
	FirstName       string             `json:"firstName"       validate:"required,max=100"`
	LastName        string             `json:"lastName"        validate:"required,max=100"`
	Role            string             `json:"role"            validate:"required,max=100"`
	Title           string             `json:"title"           validate:"required,max=255"`
	RoomIDs         []string           `json:"roomIds"         validate:"required,min=1,dive,required"`
	StartDate       time.Time          `json:"startDate"       validate:"required"`
	EndDate         time.Time          `json:"endDate"         validate:"required,gtfield=StartDate"`
	Origin          model.Origin       `json:"origin"          validate:"omitempty,valid"`
	Services        model.ServiceFlags `json:"services"`
}

// ToModel builds the row inserted on submission. Lifecycle stamps are written by the first transition.
func (c *CreateBookingRequest) ToModel(tenant, actor string, requestNumber int64, now time.Time) model.Booking {
	origin := c.Origin
	if origin == "" {
		origin = model.OriginUser
	}

	calendarEventID := c.CalendarEventID
	if calendarEventID == "" {
		calendarEventID = uuid.NewString()
	}

	booking := model.Booking{
		ID:                uuid.NewString(),
		Tenant:            tenant,
		CalendarEventID:   calendarEventID,
		RequestNumber:     requestNumber,
		Email:             c.Email,
		NetID:             c.NetID,
		FirstName:         c.FirstName,
		LastName:          c.LastName,
		Role:              c.Role,
		Title:             c.Title,
		RoomIDs:           c.RoomIDs,
		StartDate:         c.StartDate,
		EndDate:           c.EndDate,
		Origin:            origin,
		ServicesRequested: c.Services.Clone(),
		Status:            model.StatusRequested,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}

	if origin == model.OriginWalkIn {
		booking.WalkedInAt, booking.WalkedInBy = &now, actor
	}

	return booking
}

type SendEventRequest struct {
	Event    string             `json:"event"    validate:"required,max=64"`
	Reason   string             `json:"reason"   validate:"omitempty,max=1000"`
	Services model.ServiceFlags `json:"services"`
}

// ToEvent resolves the wire name. Services only matter for edit.
func (r *SendEventRequest) ToEvent() (machine.Event, error) {
	event, err := machine.ParseEvent(r.Event)
	if err != nil {
		return machine.Event{}, err //nolint:wrapcheck
	}

	event.Reason = r.Reason

	if event.Type == machine.EventEdit {
		event.Edit = r.Services.Clone()
	}

	return event, nil
}

type BookingResponse struct {
	ID                string                                  `json:"id"`
	CalendarEventID   string                                  `json:"calendarEventId"`
	RequestNumber     int64                                   `json:"requestNumber"`
	Email             string                                  `json:"email"`
	NetID             string                                  `json:"netId"`
	FirstName         string                                  `json:"firstName"`
	LastName          string                                  `json:"lastName"`
	Role              string                                  `json:"role"`
	Title             string                                  `json:"title"`
	RoomIDs           []string                                `json:"roomIds"`
	StartDate         time.Time                               `json:"startDate"`
	EndDate           time.Time                               `json:"endDate"`
	Origin            model.Origin                            `json:"origin"`
	ServicesRequested model.ServiceFlags                      `json:"servicesRequested"`
	Services          map[model.ServiceKey]machine.TrackState `json:"services"`
	State             model.StateName                         `json:"state"`
	Status            model.StatusLabel                       `json:"status"`
	DeclineReason     string                                  `json:"declineReason,omitempty"`
	Snapshot          model.Snapshot                          `json:"snapshot"`
	CreatedAt         time.Time                               `json:"createdAt"`
	ModifiedAt        time.Time                               `json:"modifiedAt"`
}

func (r *BookingResponse) FromModel(b model.Booking) {
	snapshot := machine.Restore(b)

	r.ID = b.ID
	r.CalendarEventID = b.CalendarEventID
	r.RequestNumber = b.RequestNumber
	r.Email = b.Email
	r.NetID = b.NetID
	r.FirstName = b.FirstName
	r.LastName = b.LastName
	r.Role = b.Role
	r.Title = b.Title
	r.RoomIDs = b.RoomIDs
	r.StartDate = b.StartDate
	r.EndDate = b.EndDate
	r.Origin = b.Origin
	r.ServicesRequested = b.ServicesRequested.Clone()
	r.Services, _ = machine.ReadTracks(snapshot).(machine.Tracks)
	r.State = snapshot.State()
	r.Status = r.State.Label()
	r.DeclineReason = b.DeclineReason
	r.Snapshot = snapshot
	r.CreatedAt = b.CreatedAt
	r.ModifiedAt = b.ModifiedAt
}

type EventResponse struct {
	sideeffect.Outcome
	Booking BookingResponse `json:"booking"`
}

func (r *EventResponse) FromOutcome(out sideeffect.Outcome) {
	r.Outcome = out
	r.Booking.FromModel(out.Booking)
}

type HistoryEntry struct {
	Status    model.StatusLabel `json:"status"`
	ChangedBy string            `json:"changedBy"`
	ChangedAt time.Time         `json:"changedAt"`
	Note      string            `json:"note,omitempty"`
}

type HistoryResponse struct {
	RequestNumber int64          `json:"requestNumber"`
	Legacy        bool           `json:"legacy"`
	Entries       []HistoryEntry `json:"entries"`
}

func (r *HistoryResponse) FromLogs(requestNumber int64, legacy bool, logs []logModel.BookingLog) {
	r.RequestNumber = requestNumber
	r.Legacy = legacy
	r.Entries = make([]HistoryEntry, 0, len(logs))

	for _, l := range logs {
		r.Entries = append(r.Entries, HistoryEntry{
			Status:    l.Status,
			ChangedBy: l.ChangedBy,
			ChangedAt: l.ChangedAt,
			Note:      l.Note,
		})
	}
}

type ViolationResponse struct {
	NetID string `json:"netId"`
	Count int    `json:"count"`
}
