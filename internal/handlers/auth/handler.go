package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"rentello/config"
	"rentello/infras/otel"
	"rentello/internal/domains/session/model/dto"
	"rentello/internal/domains/session/service"
	"rentello/shared/constant"
	"rentello/shared/validator"
	"rentello/transport/http/response"
)

type Handler struct {
	service service.Session
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Session, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", handler.Register)
		r.Post("/login", handler.Login)
		r.Post("/logout", handler.Logout)
		r.Post("/change-password", handler.ChangePassword)
		r.Get("/profile", handler.Profile)
		r.Post("/profile/refresh", handler.RefreshProfile)
	})
}

// Register handles user registration
// @Summary Register a new user
// @Description Register a new account against the rental platform.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} response.Message "User registered successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/register [post]
func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	req := dto.RegisterRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Register(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register user")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "User registered successfully")
}

// Login handles user sign-in
// @Summary Sign in
// @Description Authenticate against the rental platform and establish a gateway session cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} dto.PrincipalResponse "Signed in"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	sessionID, principal, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to sign in user")

		response.WithError(w, err)

		return
	}

	handler.setSessionCookie(w, sessionID, handler.cfg.Session.TTLSeconds)

	res := dto.PrincipalResponse{}
	res.FromModel(principal)

	response.WithJSON(w, http.StatusOK, res)
}

// Logout handles sign-out
// @Summary Sign out
// @Description Tear down the gateway session and clear the session cookie.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Message "Signed out"
// @Failure 500 {object} response.Error
// @Router /v1/auth/logout [post]
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	if err := handler.service.Logout(ctx, sessionID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to sign out user")

		response.WithError(w, err)

		return
	}

	handler.setSessionCookie(w, constant.Empty, -1)

	response.WithMessage(w, http.StatusOK, "Signed out")
}

// ChangePassword handles password changes for the signed-in user
// @Summary Change password
// @Description Change the signed-in user's password.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Change Password Request"
// @Success 200 {object} response.Message "Password changed"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/auth/change-password [post]
func (handler *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChangePassword")
	defer scope.End()

	req := dto.ChangePasswordRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	if err := handler.service.ChangePassword(ctx, sessionID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to change password")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Password changed")
}

// Profile returns the signed-in user's profile
// @Summary Current profile
// @Description Return the principal attached to the current session.
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.PrincipalResponse
// @Failure 401 {object} response.Error
// @Router /v1/auth/profile [get]
func (handler *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Profile")
	defer scope.End()

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	record, err := handler.service.Principal(ctx, sessionID)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res := dto.PrincipalResponse{}
	res.FromModel(record.Principal)

	response.WithJSON(w, http.StatusOK, res)
}

// RefreshProfile re-fetches the profile from the rental platform
// @Summary Refresh profile
// @Description Re-fetch the profile from the rental platform and update the session.
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.PrincipalResponse
// @Failure 401 {object} response.Error
// @Router /v1/auth/profile/refresh [post]
func (handler *Handler) RefreshProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshProfile")
	defer scope.End()

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	principal, err := handler.service.RefreshProfile(ctx, sessionID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to refresh profile")

		response.WithError(w, err)

		return
	}

	res := dto.PrincipalResponse{}
	res.FromModel(principal)

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) setSessionCookie(w http.ResponseWriter, sessionID string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     handler.cfg.Session.CookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   handler.cfg.Server.Env == constant.ServerEnvProduction,
	})
}
