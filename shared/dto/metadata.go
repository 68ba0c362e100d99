package dto

import (
	"time"

	"reserve/shared/constant"
	"reserve/shared/model"
	"reserve/shared/timezone"
)

// Metadata is the audit block embedded in every response. Timestamps are rendered in the application
// timezone; unset ones are omitted.
type Metadata struct {
	CreatedAt  string `json:"createdAt,omitempty"`
	ModifiedAt string `json:"modifiedAt,omitempty"`
	CreatedBy  string `json:"createdBy,omitempty"`
	ModifiedBy string `json:"modifiedBy,omitempty"`
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return timezone.Format(t, constant.DateFormat)
}

func (m *Metadata) FromModel(source model.Metadata) {
	m.CreatedAt = formatTimestamp(source.CreatedAt)
	m.ModifiedAt = formatTimestamp(source.ModifiedAt)
	m.CreatedBy = source.CreatedBy
	m.ModifiedBy = source.ModifiedBy
}
