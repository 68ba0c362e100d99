package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.Booking.Transition.Mode = transitionModeLocal
	cfg.Booking.NoShow.GraceMinutes = 30
	cfg.Booking.NoShow.BatchSize = 100

	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{
			name: "remote with endpoint",
			mutate: func(cfg *Config) {
				cfg.Booking.Transition.Mode = transitionModeRemote
				cfg.Booking.Transition.Endpoint = "http://xstate:3000"
			},
		},
		{
			name:    "remote without endpoint",
			mutate:  func(cfg *Config) { cfg.Booking.Transition.Mode = transitionModeRemote },
			wantErr: "BOOKING_TRANSITION_ENDPOINT is required in remote mode",
		},
		{
			name:    "unknown mode",
			mutate:  func(cfg *Config) { cfg.Booking.Transition.Mode = "hybrid" },
			wantErr: `unknown BOOKING_TRANSITION_MODE "hybrid"`,
		},
		{
			name:    "zero batch",
			mutate:  func(cfg *Config) { cfg.Booking.NoShow.BatchSize = 0 },
			wantErr: "BOOKING_NO_SHOW_BATCH_SIZE must be positive",
		},
		{
			name:    "negative grace",
			mutate:  func(cfg *Config) { cfg.Booking.NoShow.GraceMinutes = -5 },
			wantErr: "BOOKING_NO_SHOW_GRACE_MINUTES must not be negative",
		},
		{
			name: "limiter without window",
			mutate: func(cfg *Config) {
				cfg.App.RateLimiter.Enable = true
				cfg.App.RateLimiter.MaxRequests = 10
			},
			wantErr: "APP_RATE_LIMITER needs a positive MAX_REQUESTS and WINDOW_SECONDS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	cfg := validConfig()
	cfg.Booking.Transition.Mode = ""
	cfg.Booking.NoShow.BatchSize = -1

	err := cfg.Validate()

	assert.ErrorContains(t, err, "unknown BOOKING_TRANSITION_MODE")
	assert.ErrorContains(t, err, "BOOKING_NO_SHOW_BATCH_SIZE")
}
