package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

var (
	ErrInvalidStateValue = errors.New("invalid state value")
	errInvalidXState     = errors.New("invalid xstate data")
)

// StateValue is either a SimpleState or a CompositeState.
type StateValue interface {
	isStateValue()
}

// SimpleState is a leaf state name.
type SimpleState string

// CompositeState maps a state or region name onto its child value.
type CompositeState map[string]StateValue

func (SimpleState) isStateValue()    {}
func (CompositeState) isStateValue() {}

// ParseStateValue accepts a plain string or an arbitrarily nested object of strings.
func ParseStateValue(raw json.RawMessage) (StateValue, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil //nolint:nilnil
	}

	switch raw[0] {
	case '"':
		var name string
		if err := json.Unmarshal(raw, &name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidStateValue, err)
		}

		return SimpleState(name), nil
	case '{':
		children := map[string]json.RawMessage{}
		if err := json.Unmarshal(raw, &children); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidStateValue, err)
		}

		out := CompositeState{}

		for key, child := range children {
			value, err := ParseStateValue(child)
			if err != nil {
				return nil, err
			}

			if value != nil {
				out[key] = value
			}
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidStateValue, string(raw))
	}
}

// TopLevel returns the normalized top-level state of any encoding.
func TopLevel(v StateValue) StateName {
	switch value := v.(type) {
	case SimpleState:
		return NormalizeStateName(string(value))
	case CompositeState:
		keys := value.keys()
		if len(keys) == 0 {
			return StateUnknown
		}

		return NormalizeStateName(keys[0])
	default:
		return StateUnknown
	}
}

// Leaf walks the region path and returns the leaf name found at its end.
func Leaf(v StateValue, path ...string) (string, bool) {
	current := v

	for _, segment := range path {
		composite, ok := current.(CompositeState)
		if !ok {
			return "", false
		}

		current, ok = composite[segment]
		if !ok {
			return "", false
		}
	}

	simple, ok := current.(SimpleState)

	return string(simple), ok
}

// Regions returns the child values of the top-level state, or nil for a flat state.
func Regions(v StateValue) CompositeState {
	composite, ok := v.(CompositeState)
	if !ok {
		return nil
	}

	keys := composite.keys()
	if len(keys) == 0 {
		return nil
	}

	regions, _ := composite[keys[0]].(CompositeState)

	return regions
}

// Matches reports whether the value's top-level state is name.
func Matches(v StateValue, name StateName) bool {
	return TopLevel(v) == name
}

func (c CompositeState) keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

type SnapshotStatus string

const (
	SnapshotActive SnapshotStatus = "active"
	SnapshotDone   SnapshotStatus = "done"
)

// MachineContext is the extended state carried by the booking machine.
type MachineContext struct {
	ServicesRequested ServiceFlags `json:"servicesRequested"`
	ServicesApproved  ServiceFlags `json:"servicesApproved"`
	ServicesDeclined  ServiceFlags `json:"servicesDeclined"`
	ServicesClosedOut ServiceFlags `json:"servicesClosedOut"`
	Status            StatusLabel  `json:"status"`
	DeclineReason     string       `json:"declineReason,omitempty"`
}

// Clone returns a context whose flag maps can be mutated independently.
func (c MachineContext) Clone() MachineContext {
	c.ServicesRequested = c.ServicesRequested.Clone()
	c.ServicesApproved = c.ServicesApproved.Clone()
	c.ServicesDeclined = c.ServicesDeclined.Clone()
	c.ServicesClosedOut = c.ServicesClosedOut.Clone()

	return c
}

type Snapshot struct {
	Value   StateValue     `json:"value"`
	Status  SnapshotStatus `json:"status"`
	Context MachineContext `json:"context"`
}

type snapshotJSON struct {
	Value   json.RawMessage `json:"value"`
	Status  SnapshotStatus  `json:"status"`
	Context MachineContext  `json:"context"`
}

func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var raw snapshotJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %w", errInvalidXState, err)
	}

	value, err := ParseStateValue(raw.Value)
	if err != nil {
		return err
	}

	s.Value = value
	s.Status = raw.Status
	s.Context = raw.Context

	return nil
}

// State is the normalized top-level state of the snapshot.
func (s Snapshot) State() StateName {
	return TopLevel(s.Value)
}

// Serialize renders the snapshot deterministically. Two snapshots are the same iff their serializations are.
func (s Snapshot) Serialize() (string, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	return string(raw), nil
}

// XStateData is the persisted machine instance attached to a booking.
type XStateData struct {
	MachineID      string   `json:"machineId"`
	LastTransition string   `json:"lastTransition"`
	Snapshot       Snapshot `json:"snapshot"`
}

func (x XStateData) Value() (driver.Value, error) {
	raw, err := json.Marshal(x)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidXState, err)
	}

	return raw, nil
}

func (x *XStateData) Scan(src any) error {
	var raw []byte

	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("%w: unsupported type %T", errInvalidXState, src)
	}

	if err := json.Unmarshal(raw, x); err != nil {
		return fmt.Errorf("%w: %w", errInvalidXState, err)
	}

	return nil
}
