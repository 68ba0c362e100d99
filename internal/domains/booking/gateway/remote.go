package gateway

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
	"reserve/internal/domains/booking/model"
	"reserve/shared/constant"
)

const maxResponseBody = 1 << 20

// envelope is the response body. Error bodies may still report the state the machine reached.
type envelope struct {
	Data     *TransitionResponse `json:"data"`
	Error    *string             `json:"error"`
	NewState model.StateName     `json:"newState"`
}

type remote struct {
	client   *http.Client
	endpoint string
	apiKey   string
	otel     otel.Otel
}

// NewRemote posts events to the transition endpoint of another instance.
func NewRemote(cfg *config.Config, otel otel.Otel) Gateway {
	return &remote{
		client:   &http.Client{Timeout: time.Duration(cfg.Booking.Transition.TimeoutSeconds) * time.Second},
		endpoint: cfg.Booking.Transition.Endpoint,
		apiKey:   cfg.App.APIKey,
		otel:     otel,
	}
}

func (g *remote) Transition(ctx context.Context, cmd Command) Result {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".remote.Transition")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		"calendarEventId": cmd.CalendarEventID,
		"event":           cmd.Event.Name(),
	})

	res, err := g.post(ctx, NewTransitionRequest(cmd))
	if err != nil {
		scope.TraceError(err)

		failed := Failed(err)
		failed.NewState = model.NormalizeStateName(string(res.NewState))

		return failed
	}

	return res.Result()
}

func (g *remote) post(ctx context.Context, body TransitionRequest) (TransitionResponse, error) {
	if g.endpoint == constant.Empty {
		return TransitionResponse{}, ErrNoEndpoint
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return TransitionResponse{}, fmt.Errorf("failed to marshal transition request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(payload))
	if err != nil {
		return TransitionResponse{}, fmt.Errorf("failed to build transition request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	req.Header.Set(constant.RequestHeaderAPIKey, g.apiKey)
	req.Header.Set(constant.RequestHeaderTenant, body.Tenant)

	resp, err := g.client.Do(req)
	if err != nil {
		return TransitionResponse{}, fmt.Errorf("failed to call transition endpoint: %w", err)
	}
	defer resp.Body.Close()

	var env envelope

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBody)).Decode(&env); err != nil {
		return TransitionResponse{}, fmt.Errorf("%w: status %d: %w", ErrBadResponse, resp.StatusCode, err)
	}

	if env.Error != nil {
		return TransitionResponse{NewState: env.NewState}, fmt.Errorf("%w: %s", ErrRemoteRejected, *env.Error)
	}

	if resp.StatusCode >= http.StatusMultipleChoices || env.Data == nil {
		return TransitionResponse{}, fmt.Errorf("%w: status %d", ErrBadResponse, resp.StatusCode)
	}

	return *env.Data, nil
}
