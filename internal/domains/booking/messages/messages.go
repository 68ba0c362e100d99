// Package messages holds the tenant status-message templates used as email headers.
package messages

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"reserve/internal/domains/booking/model"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//go:embed messages.yaml
var templatesData []byte

const countPlaceholder = "{count}"

type Templates struct {
	Default       map[model.StatusLabel]string            `yaml:"default"`
	PenaltyNotice string                                   `yaml:"penaltyNotice"`
	Tenants       map[string]map[model.StatusLabel]string `yaml:"tenants"`
}

// Parse decodes a templates document. Every label must have a default.
func Parse(data []byte) (*Templates, error) {
	var t Templates

	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to decode message templates: %w", err)
	}

	for _, label := range model.StatusLabels() {
		if t.Default[label] == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingDefault, label)
		}
	}

	return &t, nil
}

// Get returns the embedded templates and exits the process when they do not decode.
func Get() *Templates {
	t, err := Parse(templatesData)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to decode embedded message templates")
	}

	log.Info().Int("tenants", len(t.Tenants)).Msg("Successfully loaded embedded message templates")

	return t
}

// Header is the tenant's message for status, falling back to the default.
func (t *Templates) Header(tenant string, status model.StatusLabel) string {
	if msg, ok := t.Tenants[tenant][status]; ok && msg != "" {
		return msg
	}

	if msg, ok := t.Default[status]; ok {
		return msg
	}

	return t.Default[model.StatusUnknown]
}

// Penalty renders the violation notice. Zero violations render nothing.
func (t *Templates) Penalty(count int) string {
	if count <= 0 {
		return ""
	}

	return strings.ReplaceAll(t.PenaltyNotice, countPlaceholder, strconv.Itoa(count))
}
