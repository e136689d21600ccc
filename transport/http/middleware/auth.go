package middleware

import (
	"errors"
	"net/http"

	"ehotels/infras/jwt"
	"ehotels/infras/otel"
	"ehotels/permissions"
	"ehotels/shared/constant"
	"ehotels/shared/failure"
	"ehotels/shared/session"
	"ehotels/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Auth resolves the caller of a request.
type Auth interface {
	Auth(http.Handler) http.Handler
}

// Role defines the interface for role-based access control middleware
type Role interface {
	RBAC(http.Handler) http.Handler
}

// AuthRole combines all middleware interfaces
type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
	}
}

// route returns the chi pattern the request will be dispatched to, or an
// empty string when no route matches.
func route(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return constant.Empty
	}

	return rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)
}

// lookup resolves the permission of the request. Unmatched routes pass
// through to the router's 404; matched routes missing from the table are refused.
func (m *authRoleImpl) lookup(request *http.Request) (permissions.Permission, bool, bool) {
	path := route(request)
	if path == constant.Empty {
		return permissions.Permission{}, false, false
	}

	permission, declared := m.permission.FindPermissions(path, request.Method)

	return permission, true, declared
}

// Auth validates the access token and stores the caller's session in the
// request context. Public routes are let through without a token.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		permission, matched, declared := m.lookup(request)
		if !matched || (declared && permission.Capability == permissions.CapabilityPublic) {
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       permission.Path,
			"http.method":     request.Method,
		})

		tokenString, err := jwt.ExtractTokenFromHeader(request.Header.Get(constant.RequestHeaderAuthorization))
		if err != nil {
			message := "Invalid authorization header format"
			if errors.Is(err, jwt.ErrMissingHeader) {
				message = "Missing authorization header"
			}

			err := failure.Unauthorized(message)
			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString, jwt.AccessToken)
		if err != nil {
			var message string

			switch {
			case errors.Is(err, jwt.ErrExpiredToken):
				message = "Token has expired"
			case errors.Is(err, jwt.ErrInvalidClaim):
				message = "Invalid token claims"
			default:
				message = "Invalid token"
			}

			err := failure.Unauthorized(message)
			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		identity := claims.Identity()
		sess := session.Session{
			AccountID: identity.AccountID,
			UserType:  identity.UserType,
			UserID:    identity.UserID,
			Position:  identity.Position,
		}

		ctx = session.WithSession(ctx, sess)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RBAC checks the capability the permission table requires for the route.
// It must run after Auth and before any handler touches data.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "rbac.middleware")
		defer scope.End()

		permission, matched, declared := m.lookup(request)
		if !matched {
			next.ServeHTTP(writer, request)

			return
		}

		if !declared {
			log.Warn().Str("path", request.URL.Path).Str("method", request.Method).Msg("route missing from permission table")

			err := failure.ForbiddenError
			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		if permission.Capability == permissions.CapabilityPublic {
			next.ServeHTTP(writer, request)

			return
		}

		sess, ok := session.FromContext(request.Context())
		if !ok {
			err := failure.Unauthorized("Authentication required")
			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		if !permission.Capability.Allows(sess) {
			err := failure.ForbiddenError
			scope.TraceError(err)
			scope.SetAttributes(map[string]any{
				"user_type":  sess.UserType,
				"position":   sess.Position,
				"capability": string(permission.Capability),
				"reason":     "capability_not_held",
			})
			response.WithError(writer, err)

			return
		}

		next.ServeHTTP(writer, request)
	})
}
