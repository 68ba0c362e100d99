package model

import (
	"strings"
)

// StatusLabel is the flat booking status understood by the wire and the UI.
type StatusLabel string

const (
	StatusRequested  StatusLabel = "REQUESTED"
	StatusPending    StatusLabel = "PENDING"
	StatusApproved   StatusLabel = "APPROVED"
	StatusDeclined   StatusLabel = "DECLINED"
	StatusCanceled   StatusLabel = "CANCELED"
	StatusCheckedIn  StatusLabel = "CHECKED-IN"
	StatusCheckedOut StatusLabel = "CHECKED-OUT"
	StatusNoShow     StatusLabel = "NO-SHOW"
	StatusModified   StatusLabel = "MODIFIED"
	StatusWalkIn     StatusLabel = "WALK-IN"
	StatusUnknown    StatusLabel = "UNKNOWN"
)

var statusLabels = []StatusLabel{
	StatusRequested,
	StatusPending,
	StatusApproved,
	StatusDeclined,
	StatusCanceled,
	StatusCheckedIn,
	StatusCheckedOut,
	StatusNoShow,
	StatusModified,
	StatusWalkIn,
	StatusUnknown,
}

// StatusLabels returns the closed set of status labels.
func StatusLabels() []StatusLabel {
	return append([]StatusLabel(nil), statusLabels...)
}

// ParseStatusLabel matches a label exactly. Anything else is UNKNOWN.
func ParseStatusLabel(s string) (StatusLabel, bool) {
	for _, label := range statusLabels {
		if string(label) == s {
			return label, true
		}
	}

	return StatusUnknown, false
}

func (l StatusLabel) String() string {
	return string(l)
}

// CalendarPrefix is the marker written in front of the external calendar event title.
func (l StatusLabel) CalendarPrefix() string {
	return "[" + string(l) + "]"
}

// StateName is a display name of a top-level machine state.
type StateName string

const (
	StateRequested       StateName = "Requested"
	StatePreApproved     StateName = "Pre-approved"
	StateApproved        StateName = "Approved"
	StateDeclined        StateName = "Declined"
	StateCanceled        StateName = "Canceled"
	StateCheckedIn       StateName = "Checked In"
	StateCheckedOut      StateName = "Checked Out"
	StateNoShow          StateName = "No Show"
	StateClosed          StateName = "Closed"
	StateServicesRequest StateName = "Services Request"
	StateServiceCloseout StateName = "Service Closeout"
	StateUnknown         StateName = ""
)

var stateLabels = map[StateName]StatusLabel{
	StateRequested:       StatusRequested,
	StatePreApproved:     StatusPending,
	StateServicesRequest: StatusPending,
	StateApproved:        StatusApproved,
	StateDeclined:        StatusDeclined,
	StateCanceled:        StatusCanceled,
	StateCheckedIn:       StatusCheckedIn,
	StateCheckedOut:      StatusCheckedOut,
	StateServiceCloseout: StatusCheckedOut,
	StateClosed:          StatusCheckedOut,
	StateNoShow:          StatusNoShow,
}

// legacy machines used hyphenated and differently cased names
var stateAliases = map[string]StateName{
	"requested":        StateRequested,
	"pre-approved":     StatePreApproved,
	"pre approved":     StatePreApproved,
	"preapproved":      StatePreApproved,
	"approved":         StateApproved,
	"declined":         StateDeclined,
	"canceled":         StateCanceled,
	"cancelled":        StateCanceled,
	"checked in":       StateCheckedIn,
	"checked-in":       StateCheckedIn,
	"checked out":      StateCheckedOut,
	"checked-out":      StateCheckedOut,
	"no show":          StateNoShow,
	"no-show":          StateNoShow,
	"closed":           StateClosed,
	"services request": StateServicesRequest,
	"service closeout": StateServiceCloseout,
}

// NormalizeStateName maps any known spelling onto its display name.
func NormalizeStateName(s string) StateName {
	if name, ok := stateAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return name
	}

	return StateUnknown
}

// Label maps the state onto the flat status enum.
func (s StateName) Label() StatusLabel {
	if label, ok := stateLabels[s]; ok {
		return label
	}

	return StatusUnknown
}

// Terminal reports whether the booking can no longer change state.
func (s StateName) Terminal() bool {
	switch s {
	case StateDeclined, StateCanceled, StateClosed:
		return true
	default:
		return false
	}
}

func (s StateName) String() string {
	return string(s)
}
