package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// ServiceKey is one of the independently approvable add-on services of a booking.
type ServiceKey string

const (
	ServiceSetup     ServiceKey = "setup"
	ServiceEquipment ServiceKey = "equipment"
	ServiceStaffing  ServiceKey = "staffing"
	ServiceCatering  ServiceKey = "catering"
	ServiceCleaning  ServiceKey = "cleaning"
	ServiceSecurity  ServiceKey = "security"
)

var serviceKeys = []ServiceKey{
	ServiceSetup,
	ServiceEquipment,
	ServiceStaffing,
	ServiceCatering,
	ServiceCleaning,
	ServiceSecurity,
}

var serviceTitles = map[ServiceKey]string{
	ServiceSetup:     "Setup",
	ServiceEquipment: "Equipment",
	ServiceStaffing:  "Staffing",
	ServiceCatering:  "Catering",
	ServiceCleaning:  "Cleaning",
	ServiceSecurity:  "Security",
}

var errInvalidServiceFlags = errors.New("invalid service flags")

// ServiceKeys returns every service key in a stable order.
func ServiceKeys() []ServiceKey {
	return append([]ServiceKey(nil), serviceKeys...)
}

// ParseServiceKey accepts the key itself or its title.
func ParseServiceKey(s string) (ServiceKey, bool) {
	for _, key := range serviceKeys {
		if string(key) == s || serviceTitles[key] == s {
			return key, true
		}
	}

	return "", false
}

// Title is the capitalized name used in state and event names.
func (k ServiceKey) Title() string {
	return serviceTitles[k]
}

func (k ServiceKey) Valid() bool {
	_, ok := serviceTitles[k]

	return ok
}

// ServiceFlags maps a service onto a boolean. Unknown keys are dropped on decode.
type ServiceFlags map[ServiceKey]bool

// Any reports whether at least one service is flagged.
func (f ServiceFlags) Any() bool {
	for _, v := range f {
		if v {
			return true
		}
	}

	return false
}

func (f ServiceFlags) Has(key ServiceKey) bool {
	return f[key]
}

// Keys returns flagged services in ServiceKeys order.
func (f ServiceFlags) Keys() []ServiceKey {
	keys := []ServiceKey{}

	for _, key := range serviceKeys {
		if f[key] {
			keys = append(keys, key)
		}
	}

	return keys
}

func (f ServiceFlags) Clone() ServiceFlags {
	out := ServiceFlags{}
	for k, v := range f {
		out[k] = v
	}

	return out
}

func (f ServiceFlags) MarshalJSON() ([]byte, error) {
	raw := map[string]bool{}

	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, string(k))
	}

	sort.Strings(keys)

	for _, k := range keys {
		raw[k] = f[ServiceKey(k)]
	}

	return json.Marshal(raw) //nolint:wrapcheck
}

func (f *ServiceFlags) UnmarshalJSON(data []byte) error {
	raw := map[string]bool{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %w", errInvalidServiceFlags, err)
	}

	out := ServiceFlags{}

	for k, v := range raw {
		if key, ok := ParseServiceKey(k); ok {
			out[key] = v
		}
	}

	*f = out

	return nil
}

func (f ServiceFlags) Value() (driver.Value, error) {
	raw, err := f.MarshalJSON()
	if err != nil {
		return nil, err
	}

	return raw, nil
}

func (f *ServiceFlags) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*f = ServiceFlags{}

		return nil
	case []byte:
		return f.UnmarshalJSON(v)
	case string:
		return f.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("%w: unsupported type %T", errInvalidServiceFlags, src)
	}
}
