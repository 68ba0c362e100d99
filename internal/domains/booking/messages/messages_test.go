package messages_test

import (
	"testing"

	"reserve/internal/domains/booking/messages"
	"reserve/internal/domains/booking/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedTemplates(t *testing.T) {
	tpl := messages.Get()
	require.NotNil(t, tpl)

	tests := []struct {
		name   string
		tenant string
		status model.StatusLabel
		want   string
	}{
		{
			name:   "tenant override",
			tenant: "mc",
			status: model.StatusApproved,
			want:   "Your Media Commons reservation request has been approved. Please check in at the front desk on arrival.",
		},
		{
			name:   "falls back to default",
			tenant: "mc",
			status: model.StatusDeclined,
			want:   "Your reservation request has been declined.",
		},
		{
			name:   "unknown tenant uses default",
			tenant: "nope",
			status: model.StatusCanceled,
			want:   "Your reservation has been canceled.",
		},
		{
			name:   "unknown label uses UNKNOWN",
			tenant: "mc",
			status: model.StatusLabel("ARCHIVED"),
			want:   "The status of your reservation has changed.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tpl.Header(tt.tenant, tt.status))
		})
	}
}

func TestPenalty(t *testing.T) {
	tpl, err := messages.Parse([]byte(`
default: {REQUESTED: a, PENDING: a, APPROVED: a, DECLINED: a, CANCELED: a, CHECKED-IN: a, CHECKED-OUT: a,
  NO-SHOW: a, MODIFIED: a, WALK-IN: a, UNKNOWN: a}
penaltyNotice: "{count} violation(s)"
`))
	require.NoError(t, err)

	assert.Equal(t, "", tpl.Penalty(0))
	assert.Equal(t, "3 violation(s)", tpl.Penalty(3))
}

func TestParseRequiresEveryDefault(t *testing.T) {
	_, err := messages.Parse([]byte("default: {REQUESTED: a}"))

	assert.ErrorIs(t, err, messages.ErrMissingDefault)
}
