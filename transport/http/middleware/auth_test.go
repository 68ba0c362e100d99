package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"reserve/config"
	"reserve/infras/jwt"
	jwtMocks "reserve/infras/jwt/mocks"
	otelMocks "reserve/infras/otel/mocks"
	"reserve/permissions"
	"reserve/shared"
	"reserve/shared/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testPermissions = `{
	"endpoints": [
		{"path": "/health", "method": "GET", "skip": true},
		{"path": "/v1/room-settings", "method": "POST", "permissions": ["ADMIN"]},
		{"path": "/v1/bookings", "method": "POST", "permissions": []}
	]
}`

func newTestGate(t *testing.T, apiKey string) (AuthRole, *jwtMocks.MockJWT) {
	t.Helper()

	data, err := permissions.Parse([]byte(testPermissions))
	require.NoError(t, err)

	tokens := jwtMocks.NewMockJWT(gomock.NewController(t))
	cfg := &config.Config{}
	cfg.App.APIKey = apiKey

	return NewAuthRoleMiddleware(tokens, otelMocks.NewOtel(), data, cfg), tokens
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		header   string
		claims   *jwt.Claims
		tokenErr error
		wantCode int
	}{
		{name: "skipped route", method: http.MethodGet, path: "/health", wantCode: http.StatusOK},
		{name: "missing header", method: http.MethodPost, path: "/v1/bookings", wantCode: http.StatusUnauthorized},
		{name: "not a bearer", method: http.MethodPost, path: "/v1/bookings", header: "Basic abc", wantCode: http.StatusUnauthorized},
		{
			name:     "expired token",
			method:   http.MethodPost,
			path:     "/v1/bookings",
			header:   "Bearer old",
			tokenErr: jwt.ErrExpiredToken,
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "valid token",
			method:   http.MethodPost,
			path:     "/v1/bookings",
			header:   "Bearer good",
			claims:   &jwt.Claims{Email: "ab1@nyu.edu", NetID: "ab1", Role: constant.RoleBooking, Tenant: "itp"},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate, tokens := newTestGate(t, "")

			if tt.claims != nil || tt.tokenErr != nil {
				tokens.EXPECT().ValidateToken(gomock.Any(), gomock.Any()).Return(tt.claims, tt.tokenErr)
			}

			var tenant, actor string

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tenant, _ = r.Context().Value(constant.ContextKeyTenant).(string)
				actor = shared.ActorFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set(constant.RequestHeaderAuthorization, tt.header)
			}

			rec := httptest.NewRecorder()
			gate.Auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.claims != nil {
				assert.Equal(t, "itp", tenant)
				assert.Equal(t, "ab1@nyu.edu", actor)
			}
		})
	}
}

func TestRBAC(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		role     string
		wantCode int
	}{
		{name: "role allowed", path: "/v1/room-settings", role: constant.RoleAdmin, wantCode: http.StatusOK},
		{name: "role refused", path: "/v1/room-settings", role: constant.RoleBooking, wantCode: http.StatusForbidden},
		{name: "open to any role", path: "/v1/bookings", role: constant.RoleBooking, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate, _ := newTestGate(t, "")

			req := httptest.NewRequest(http.MethodPost, tt.path, nil)
			req = req.WithContext(withIdentity(req.Context(), &jwt.Claims{Role: tt.role}))

			rec := httptest.NewRecorder()
			gate.RBAC(http.HandlerFunc(okHandler)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestAPIKey(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		wantCode     int
		wantInternal bool
	}{
		{name: "no key falls through", wantCode: http.StatusOK},
		{name: "wrong key", key: "nope", wantCode: http.StatusForbidden},
		{name: "valid key", key: "secret", wantCode: http.StatusOK, wantInternal: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate, _ := newTestGate(t, "secret")

			internal := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				internal = internalCaller(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/v1/xstate/transition", nil)
			if tt.key != "" {
				req.Header.Set(constant.RequestHeaderAPIKey, tt.key)
			}

			rec := httptest.NewRecorder()
			gate.APIKey(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantInternal, internal)
		})
	}
}

func TestRequireAPIKey(t *testing.T) {
	gate, _ := newTestGate(t, "secret")
	handler := gate.APIKey(gate.RequireAPIKey(http.HandlerFunc(okHandler)))

	req := httptest.NewRequest(http.MethodPost, "/v1/xstate/transition", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/v1/xstate/transition", nil)
	req.Header.Set(constant.RequestHeaderAPIKey, "secret")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
