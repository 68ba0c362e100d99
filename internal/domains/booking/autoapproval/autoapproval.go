// Package autoapproval decides whether a booking may skip human final approval.
//
// Evaluate is pure: it only looks at the selected room settings and the booking shape.
package autoapproval

import (
	"fmt"
	"math"
	"strings"

	"reserve/internal/domains/booking/model"
	roomModel "reserve/internal/domains/room/model"
)

const (
	ReasonVIP             = "VIP booking bypasses auto-approval rules"
	ReasonWalkIn          = "Walk-in booking bypasses auto-approval rules"
	ReasonNoRooms         = "No rooms selected"
	ReasonApproved        = "All conditions met for auto-approval"
	reasonDisabled        = "Auto-approval is not enabled for room %s"
	reasonFlagOff         = "Room %s requires manual approval"
	reasonBelowMinimum    = "Duration %.2fh is below minimum %.2fh for %s"
	reasonExceedsMaximum  = "Duration %.2fh exceeds maximum %.2fh for %s"
	reasonServiceNotAllow = "Service %q is not allowed for auto-approval in room %s"
)

var (
	adminKeywords   = []string{"admin", "staff", "chair", "director"}
	facultyKeywords = []string{"faculty", "fellow", "residen"}
)

type Request struct {
	Rooms         []roomModel.RoomSetting
	Role          string
	IsVIP         bool
	IsWalkIn      bool
	DurationHours float64
	Services      model.ServiceFlags
}

type Details struct {
	Role               string             `json:"role,omitempty"`
	MinHour            *float64           `json:"minHour,omitempty"`
	MaxHour            *float64           `json:"maxHour,omitempty"`
	DisallowedServices []model.ServiceKey `json:"disallowedServices,omitempty"`
	RoomID             string             `json:"roomId,omitempty"`
}

type Decision struct {
	CanAutoApprove bool     `json:"canAutoApprove"`
	Reason         string   `json:"reason"`
	Details        *Details `json:"details,omitempty"`
}

// Limits is the most restrictive hour window across the selected rooms. A nil bound is unbounded.
type Limits struct {
	Min *float64
	Max *float64
}

func Evaluate(req Request) Decision {
	if req.IsVIP {
		return Decision{CanAutoApprove: true, Reason: ReasonVIP}
	}

	if req.IsWalkIn {
		return Decision{CanAutoApprove: true, Reason: ReasonWalkIn}
	}

	if len(req.Rooms) == 0 {
		return Decision{Reason: ReasonNoRooms}
	}

	for _, room := range req.Rooms {
		if room.ShouldAutoApprove != nil && !*room.ShouldAutoApprove {
			return reject(fmt.Sprintf(reasonFlagOff, roomName(room)), &Details{RoomID: room.RoomID})
		}

		if !room.AutoApproval.Enabled() {
			return reject(fmt.Sprintf(reasonDisabled, roomName(room)), &Details{RoomID: room.RoomID})
		}
	}

	role := NormalizeRole(req.Role)
	limits := CombineLimits(req.Rooms, role)

	if limits.Min != nil && req.DurationHours < *limits.Min {
		return reject(
			fmt.Sprintf(reasonBelowMinimum, req.DurationHours, *limits.Min, role),
			&Details{Role: role, MinHour: limits.Min, MaxHour: limits.Max},
		)
	}

	if limits.Max != nil && req.DurationHours > *limits.Max {
		return reject(
			fmt.Sprintf(reasonExceedsMaximum, req.DurationHours, *limits.Max, role),
			&Details{Role: role, MinHour: limits.Min, MaxHour: limits.Max},
		)
	}

	for _, service := range req.Services.Keys() {
		for _, room := range req.Rooms {
			if !room.AutoApproval.Conditions[string(service)] {
				return reject(
					fmt.Sprintf(reasonServiceNotAllow, string(service), roomName(room)),
					&Details{Role: role, DisallowedServices: []model.ServiceKey{service}, RoomID: room.RoomID},
				)
			}
		}
	}

	return Decision{
		CanAutoApprove: true,
		Reason:         ReasonApproved,
		Details:        &Details{Role: role, MinHour: limits.Min, MaxHour: limits.Max},
	}
}

// NormalizeRole folds a free-form requester role onto admin, faculty or student.
func NormalizeRole(role string) string {
	lower := strings.ToLower(role)

	for _, keyword := range adminKeywords {
		if strings.Contains(lower, keyword) {
			return roomModel.RoleAdmin
		}
	}

	for _, keyword := range facultyKeywords {
		if strings.Contains(lower, keyword) {
			return roomModel.RoleFaculty
		}
	}

	return roomModel.RoleStudent
}

// CombineLimits takes the highest minimum and the lowest maximum for role. NoLimit values are ignored.
func CombineLimits(rooms []roomModel.RoomSetting, role string) Limits {
	minHour := math.Inf(-1)
	maxHour := math.Inf(1)

	for _, room := range rooms {
		if room.AutoApproval == nil {
			continue
		}

		if v, ok := room.AutoApproval.MinHour[role]; ok && v != roomModel.NoLimit {
			minHour = math.Max(minHour, v)
		}

		if v, ok := room.AutoApproval.MaxHour[role]; ok && v != roomModel.NoLimit {
			maxHour = math.Min(maxHour, v)
		}
	}

	var limits Limits

	if !math.IsInf(minHour, -1) {
		limits.Min = &minHour
	}

	if !math.IsInf(maxHour, 1) {
		limits.Max = &maxHour
	}

	return limits
}

func reject(reason string, details *Details) Decision {
	return Decision{CanAutoApprove: false, Reason: reason, Details: details}
}

func roomName(room roomModel.RoomSetting) string {
	if room.Name != "" {
		return room.Name
	}

	return room.RoomID
}
