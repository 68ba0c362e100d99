package calendar

//go:generate go run go.uber.org/mock/mockgen -source=./calendar.go -destination=./mocks/calendar_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"reserve/config"
	"reserve/infras/otel"
	"reserve/shared/constant"

	"github.com/rs/zerolog/log"
)

const maxErrorBody = 1024

type updateRequest struct {
	CalendarEventID string    `json:"calendarEventId"`
	NewValues       newValues `json:"newValues"`
}

type newValues struct {
	StatusPrefix string `json:"statusPrefix"`
}

type Calendar interface {
	UpdateStatusPrefix(ctx context.Context, tenant, calendarEventID, prefix string) error
}

type httpCalendar struct {
	client *http.Client
	cfg    *config.Config
	otel   otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Calendar {
	return &httpCalendar{
		client: &http.Client{Timeout: time.Duration(cfg.Booking.Calendar.TimeoutSeconds) * time.Second},
		cfg:    cfg,
		otel:   otel,
	}
}

// UpdateStatusPrefix rewrites the "[STATUS]" prefix of the calendar event title.
func (c *httpCalendar) UpdateStatusPrefix(ctx context.Context, tenant, calendarEventID, prefix string) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".calendar.UpdateStatusPrefix")
	defer scope.End()
	defer scope.TraceIfError(&err)

	endpoint := c.cfg.Booking.Calendar.Endpoint
	if endpoint == constant.Empty {
		log.Debug().Str("calendarEventId", calendarEventID).Msg("calendar endpoint not configured, skipping status sync")

		return nil
	}

	body, err := json.Marshal(updateRequest{
		CalendarEventID: calendarEventID,
		NewValues:       newValues{StatusPrefix: prefix},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal calendar update: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build calendar request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	req.Header.Set(constant.RequestHeaderTenant, tenant)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call calendar: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return fmt.Errorf("%w: status %d: %s", ErrCalendarRejected, resp.StatusCode, bytes.TrimSpace(msg))
	}

	return nil
}
