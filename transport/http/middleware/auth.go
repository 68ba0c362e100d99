package middleware

import (
	"context"
	"errors"
	"net/http"

	"reserve/config"
	"reserve/infras/jwt"
	"reserve/infras/otel"
	"reserve/permissions"
	"reserve/shared/constant"
	"reserve/shared/failure"
	"reserve/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type callerKey struct{}

// Auth authenticates callers, either by bearer token or by the internal API key.
type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
	RequireAPIKey(http.Handler) http.Handler
}

type Role interface {
	RBAC(http.Handler) http.Handler
}

type AuthRole interface {
	Auth
	Role
}

type gate struct {
	tokens      jwt.JWT
	otel        otel.Otel
	permissions *permissions.PermissionData
	apiKey      string
}

func NewAuthRoleMiddleware(tokens jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &gate{
		tokens:      tokens,
		otel:        otel,
		permissions: permissions,
		apiKey:      cfg.App.APIKey,
	}
}

// routePattern resolves the chi pattern of the request, e.g. /v1/bookings/{calendarEventId}.
func routePattern(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return request.URL.Path
	}

	if path := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path); path != constant.Empty {
		return path
	}

	return request.URL.Path
}

// internalCaller reports whether APIKey already admitted the request with a valid key.
func internalCaller(ctx context.Context) bool {
	internal, _ := ctx.Value(callerKey{}).(bool)

	return internal
}

func tokenFailure(err error) error {
	switch {
	case errors.Is(err, jwt.ErrExpiredToken):
		return failure.Unauthorized("Token has expired")
	case errors.Is(err, jwt.ErrInvalidClaim):
		return failure.Unauthorized("Invalid token claims")
	default:
		return failure.Unauthorized("Invalid token")
	}
}

func withIdentity(ctx context.Context, claims *jwt.Claims) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
	ctx = context.WithValue(ctx, constant.ContextKeyUserNetID, claims.NetID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
	ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.ID)

	if claims.Tenant != constant.Empty {
		ctx = context.WithValue(ctx, constant.ContextKeyTenant, claims.Tenant)
	}

	return ctx
}

func deny(writer http.ResponseWriter, scope otel.Scope, err error) {
	scope.TraceError(err)
	response.WithError(writer, err)
}

// Auth validates the bearer token and stores the caller's identity in the context. Routes marked skip in
// the permission table and callers admitted by APIKey pass through untouched.
func (g *gate) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := g.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "middleware.auth")
		defer scope.End()

		path := routePattern(request)

		if internalCaller(ctx) || (g.permissions != nil && g.permissions.FindPermissions(path, request.Method).Skip) {
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttributes(map[string]any{
			"http.path":   path,
			"http.method": request.Method,
		})

		header := request.Header.Get(constant.RequestHeaderAuthorization)
		if header == constant.Empty {
			deny(writer, scope, failure.Unauthorized("Missing authorization header"))

			return
		}

		token, err := jwt.ExtractTokenFromHeader(header)
		if err != nil {
			deny(writer, scope, failure.Unauthorized("Invalid authorization header format"))

			return
		}

		claims, err := g.tokens.ValidateToken(ctx, token)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("rejected access token")
			deny(writer, scope, tokenFailure(err))

			return
		}

		next.ServeHTTP(writer, request.WithContext(withIdentity(request.Context(), claims)))
	})
}

// RBAC checks the caller's permission level against the route's allow-list. Requires Auth.
func (g *gate) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := g.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "middleware.rbac")
		defer scope.End()

		if internalCaller(ctx) {
			next.ServeHTTP(writer, request)

			return
		}

		if g.permissions == nil {
			deny(writer, scope, failure.ForbiddenError)

			return
		}

		if g.permissions.Skip {
			next.ServeHTTP(writer, request)

			return
		}

		route := g.permissions.FindPermissions(routePattern(request), request.Method)
		role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

		if route.Skip || route.Allows(role) {
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttributes(map[string]any{
			"user_role":     role,
			"allowed_roles": route.Permissions,
		})
		deny(writer, scope, failure.ForbiddenError)
	})
}

// APIKey admits internal callers presenting the configured key. Requests without a key fall through to Auth,
// a wrong key is rejected outright.
func (g *gate) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := g.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "middleware.api_key")
		defer scope.End()

		key := request.Header.Get(constant.RequestHeaderAPIKey)
		if key == constant.Empty {
			scope.SetAttribute("http.source", "client")
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttribute("http.source", "internal")

		if g.apiKey == constant.Empty || key != g.apiKey {
			deny(writer, scope, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(writer, request.WithContext(context.WithValue(ctx, callerKey{}, true)))
	})
}

// RequireAPIKey guards internal-only routes. Unlike APIKey, a missing key is rejected.
func (g *gate) RequireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if !internalCaller(request.Context()) {
			response.WithError(writer, failure.Unauthorized("Missing or invalid API key"))

			return
		}

		next.ServeHTTP(writer, request)
	})
}
