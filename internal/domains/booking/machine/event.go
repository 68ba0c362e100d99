package machine

import (
	"errors"
	"fmt"
	"strings"

	"reserve/internal/domains/booking/model"
)

var ErrUnknownEvent = errors.New("unknown event")

type EventType string

const (
	EventSubmit          EventType = "submit"
	EventApprove         EventType = "approve"
	EventDecline         EventType = "decline"
	EventCancel          EventType = "cancel"
	EventCheckIn         EventType = "checkIn"
	EventCheckOut        EventType = "checkOut"
	EventNoShow          EventType = "noShow"
	EventEdit            EventType = "edit"
	EventServiceApprove  EventType = "approveService"
	EventServiceDecline  EventType = "declineService"
	EventServiceCloseout EventType = "closeoutService"
)

var servicePrefixes = map[EventType]string{
	EventServiceApprove:  "approve",
	EventServiceDecline:  "decline",
	EventServiceCloseout: "closeout",
}

var plainEvents = []EventType{
	EventApprove,
	EventDecline,
	EventCancel,
	EventCheckIn,
	EventCheckOut,
	EventNoShow,
	EventEdit,
}

type Event struct {
	Type    EventType          `json:"type"`
	Service model.ServiceKey   `json:"service,omitempty"`
	Reason  string             `json:"reason,omitempty"`
	Edit    model.ServiceFlags `json:"edit,omitempty"`
}

// Name is the wire name of the event, e.g. "cancel" or "approveCatering".
func (e Event) Name() string {
	if prefix, ok := servicePrefixes[e.Type]; ok {
		return prefix + e.Service.Title()
	}

	return string(e.Type)
}

// IsServiceEvent reports whether the event targets a single service track.
func (e Event) IsServiceEvent() bool {
	_, ok := servicePrefixes[e.Type]

	return ok
}

// ParseEvent resolves a wire name onto an Event. Per-service names are the verb followed by the service title.
func ParseEvent(name string) (Event, error) {
	for _, eventType := range plainEvents {
		if string(eventType) == name {
			return Event{Type: eventType}, nil
		}
	}

	for eventType, prefix := range servicePrefixes {
		title, ok := strings.CutPrefix(name, prefix)
		if !ok {
			continue
		}

		if key, ok := model.ParseServiceKey(title); ok {
			return Event{Type: eventType, Service: key}, nil
		}
	}

	return Event{}, fmt.Errorf("%w: %s", ErrUnknownEvent, name)
}
