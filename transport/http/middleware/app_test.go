package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"reserve/config"
	otelMocks "reserve/infras/otel/mocks"
	"reserve/shared/cache/mocks"
	"reserve/shared/constant"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestMiddleware(t *testing.T, cfg *config.Config) (*appMiddleware, *mocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	redisCache := mocks.NewMockRedisCache(ctrl)

	return &appMiddleware{otel: otelMocks.NewOtel(), config: cfg, cache: redisCache}, redisCache
}

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name          string
		enable        bool
		count         int64
		incrementErr  error
		wantStatus    int
		wantRemaining string
		wantIncrement bool
	}{
		{name: "disabled passes through", enable: false, wantStatus: http.StatusOK},
		{name: "first request", enable: true, count: 1, wantStatus: http.StatusOK, wantRemaining: "2", wantIncrement: true},
		{name: "last allowed request", enable: true, count: 3, wantStatus: http.StatusOK, wantRemaining: "0", wantIncrement: true},
		{name: "over the limit", enable: true, count: 4, wantStatus: http.StatusTooManyRequests, wantRemaining: "0", wantIncrement: true},
		{name: "cache down fails open", enable: true, incrementErr: errors.New("connection refused"), wantStatus: http.StatusOK, wantIncrement: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.App.DefaultTenant = "mc"
			cfg.App.RateLimiter.Enable = tt.enable
			cfg.App.RateLimiter.MaxRequests = 3
			cfg.App.RateLimiter.WindowSeconds = 60

			m, redisCache := newTestMiddleware(t, cfg)

			if tt.wantIncrement {
				redisCache.EXPECT().
					Increment(gomock.Any(), "limiter:itp:10.0.0.1:tester", 60).
					Return(tt.count, tt.incrementErr)
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/bookings/abc", nil)
			req.RemoteAddr = "10.0.0.1:52311"
			req.Header.Set(constant.RequestHeaderUserAgent, "tester")
			req = req.WithContext(context.WithValue(req.Context(), constant.ContextKeyTenant, "itp"))

			rec := httptest.NewRecorder()
			m.RateLimit()(http.HandlerFunc(okHandler)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantRemaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "forwarded chain", headers: map[string]string{constant.RequestHeaderForwardedFor: "1.1.1.1, 2.2.2.2"}, remote: "3.3.3.3:1", want: "1.1.1.1"},
		{name: "real ip", headers: map[string]string{constant.RequestHeaderRealIP: " 4.4.4.4 "}, remote: "3.3.3.3:1", want: "4.4.4.4"},
		{name: "socket address", remote: "3.3.3.3:443", want: "3.3.3.3"},
		{name: "socket without port", remote: "pipe", want: "pipe"},
	}

	m, _ := newTestMiddleware(t, &config.Config{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote

			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			assert.Equal(t, tt.want, m.getClientIP(req))
		})
	}
}

func TestTenant(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.DefaultTenant = "mc"

	m, _ := newTestMiddleware(t, cfg)

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "explicit tenant", header: "itp", want: "itp"},
		{name: "default tenant", header: "", want: "mc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string

			next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				got, _ = r.Context().Value(constant.ContextKeyTenant).(string)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(constant.RequestHeaderTenant, tt.header)
			}

			m.Tenant(next).ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequestID(t *testing.T) {
	m, _ := newTestMiddleware(t, &config.Config{})

	t.Run("reuses caller id", func(t *testing.T) {
		var got string

		next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			got, _ = r.Context().Value(constant.ContextKeyRequestID).(string)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constant.RequestHeaderRequestID, "req-1")

		rec := httptest.NewRecorder()
		m.RequestID(next).ServeHTTP(rec, req)

		assert.Equal(t, "req-1", got)
		assert.Equal(t, "req-1", rec.Header().Get(constant.RequestHeaderRequestID))
	})

	t.Run("mints one when absent", func(t *testing.T) {
		rec := httptest.NewRecorder()
		m.RequestID(http.HandlerFunc(okHandler)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Len(t, rec.Header().Get(constant.RequestHeaderRequestID), 36)
	})
}
