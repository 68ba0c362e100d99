package permissions

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

var ErrInvalidEndpoint = errors.New("invalid permission endpoint")

// Permission lists the roles allowed on one chi route pattern. An empty list admits any authenticated
// caller; Skip bypasses token checks entirely.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

func (p Permission) Allows(role string) bool {
	return len(p.Permissions) == 0 || slices.Contains(p.Permissions, role)
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	index map[string]int
}

func routeKey(method, path string) string {
	return strings.ToUpper(method) + " " + path
}

func (r *PermissionData) FindPermissions(path, method string) Permission {
	if idx, ok := r.index[routeKey(method, path)]; ok {
		return r.Endpoints[idx]
	}

	return Permission{}
}

// Parse decodes and indexes a permissions document. Duplicate routes are rejected.
func Parse(raw []byte) (*PermissionData, error) {
	data := &PermissionData{}
	if err := json.Unmarshal(raw, data); err != nil {
		return nil, fmt.Errorf("decoding permissions: %w", err)
	}

	data.index = make(map[string]int, len(data.Endpoints))

	for idx, endpoint := range data.Endpoints {
		if endpoint.Path == "" || endpoint.Method == "" {
			return nil, fmt.Errorf("%w: entry %d needs a path and a method", ErrInvalidEndpoint, idx)
		}

		key := routeKey(endpoint.Method, endpoint.Path)
		if _, dup := data.index[key]; dup {
			return nil, fmt.Errorf("%w: %s is listed twice", ErrInvalidEndpoint, key)
		}

		data.index[key] = idx
	}

	return data, nil
}

// Get returns the embedded permissions, or nil when they cannot be parsed. A nil set denies every route.
func Get() *PermissionData {
	data, err := Parse(permissionsData)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(data.Endpoints)).Msg("Loaded embedded permissions")

	return data
}
