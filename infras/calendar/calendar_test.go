package calendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"reserve/config"
	"reserve/infras/calendar"
	"reserve/infras/otel/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(endpoint string) *config.Config {
	cfg := &config.Config{}
	cfg.Booking.Calendar.Endpoint = endpoint
	cfg.Booking.Calendar.TimeoutSeconds = 2

	return cfg
}

func TestUpdateStatusPrefix(t *testing.T) {
	var got map[string]any

	var tenant string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)

		tenant = r.Header.Get("X-Tenant")

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	cal := calendar.New(newConfig(server.URL), mocks.NewOtel())

	err := cal.UpdateStatusPrefix(context.Background(), "mc", "evt-1", "[APPROVED]")
	require.NoError(t, err)

	assert.Equal(t, "mc", tenant)
	assert.Equal(t, "evt-1", got["calendarEventId"])
	assert.Equal(t, map[string]any{"statusPrefix": "[APPROVED]"}, got["newValues"])
}

func TestUpdateStatusPrefixErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "event not found", http.StatusNotFound)
	}))
	defer server.Close()

	tests := []struct {
		name     string
		endpoint string
		wantErr  error
	}{
		{name: "non 2xx is an error", endpoint: server.URL, wantErr: calendar.ErrCalendarRejected},
		{name: "unconfigured endpoint is skipped", endpoint: "", wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal := calendar.New(newConfig(tt.endpoint), mocks.NewOtel())

			err := cal.UpdateStatusPrefix(context.Background(), "mc", "evt-1", "[CANCELED]")
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
