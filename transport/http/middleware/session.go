package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rentello/config"
	"rentello/infras/otel"
	"rentello/internal/domains/access"
	sessionModel "rentello/internal/domains/session/model"
	sessionService "rentello/internal/domains/session/service"
	"rentello/permissions"
	"rentello/shared/constant"
	"rentello/shared/failure"
	"rentello/transport/http/response"
)

// RedirectHeader carries the route the frontend should navigate to when a
// request is turned away.
const RedirectHeader = "X-Redirect-To"

// Session resolves the gateway session cookie into a principal and gates each
// route by role. There is no per-page cache: every request re-evaluates the
// session and the permitted role set, so a revoked session or changed role
// takes effect on the next navigation.
type Session interface {
	Authenticate(next http.Handler) http.Handler
}

type sessionImpl struct {
	session    sessionService.Session
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewSession(session sessionService.Session, otel otel.Otel, permission *permissions.PermissionData, cfg *config.Config) Session {
	return &sessionImpl{
		session:    session,
		otel:       otel,
		permission: permission,
		cfg:        cfg,
	}
}

func (m *sessionImpl) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "session.middleware")
		defer scope.End()

		permission := m.routePermission(ctx, request)

		sessionID := m.sessionID(request)

		// A cookie is resolved even on public routes so anonymous-or-not
		// surfaces like vehicle browsing can use the credential when present.
		record, err := m.resolve(ctx, sessionID)
		if err != nil {
			m.clearCookie(writer)

			if permission.Skip {
				next.ServeHTTP(writer, request)

				return
			}

			writer.Header().Set(RedirectHeader, constant.RedirectLogin)
			scope.TraceError(err)
			response.WithError(writer, failure.SessionExpiredError)

			return
		}

		var principal *sessionModel.Principal
		if record != nil {
			ctx = context.WithValue(ctx, constant.ContextKeySessionID, sessionID)
			ctx = context.WithValue(ctx, constant.ContextKeyPrincipal, record.Principal)
			principal = &record.Principal
		}

		if permission.Skip {
			next.ServeHTTP(writer, request.WithContext(ctx))

			return
		}

		decision := access.Admit(principal, permission.Roles)
		if !decision.Allowed {
			writer.Header().Set(RedirectHeader, decision.Redirect)

			if decision.Redirect == constant.RedirectLogin {
				err := failure.SessionExpiredError
				scope.TraceError(err)
				response.WithError(writer, err)

				return
			}

			scope.SetAttributes(map[string]any{
				"session.role":  principal.RoleName(),
				"allowed_roles": permission.Roles,
			})
			scope.TraceError(failure.ForbiddenError)
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// resolve loads the session record for a cookie. A missing cookie is
// anonymous, not an error; an expired or unknown session is an error so the
// caller can clear the cookie.
func (m *sessionImpl) resolve(ctx context.Context, sessionID string) (*sessionModel.Record, error) {
	if sessionID == "" {
		return nil, nil
	}

	record, err := m.session.Principal(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (m *sessionImpl) routePermission(ctx context.Context, request *http.Request) permissions.Permission {
	if m.permission == nil {
		return permissions.Permission{Skip: true}
	}

	if m.permission.Skip {
		return permissions.Permission{Skip: true}
	}

	rctx := chi.RouteContext(ctx)
	path := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)

	return m.permission.FindPermissions(path, request.Method)
}

func (m *sessionImpl) sessionID(request *http.Request) string {
	cookie, err := request.Cookie(m.cfg.Session.CookieName)
	if err != nil {
		return constant.Empty
	}

	return cookie.Value
}

func (m *sessionImpl) clearCookie(writer http.ResponseWriter) {
	http.SetCookie(writer, &http.Cookie{
		Name:     m.cfg.Session.CookieName,
		Value:    constant.Empty,
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
