package admin

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"rentello/infras/otel"
	"rentello/internal/domains/admin/model/dto"
	"rentello/internal/domains/admin/service"
	"rentello/shared/constant"
	"rentello/shared/failure"
	"rentello/shared/validator"
	"rentello/transport/http/response"
)

type Handler struct {
	service service.Admin
	otel    otel.Otel
}

func New(service service.Admin, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Get("/users", handler.Users)
		r.Put("/users/{id}/role", handler.UpdateRole)
		r.Put("/users/{id}/toggle-status", handler.ToggleStatus)
		r.Get("/roles", handler.Roles)
		r.Get("/dashboard/stats", handler.Dashboard)
	})
}

// Users pages through user accounts
// @Summary List users
// @Description Page through user accounts, optionally filtered by a search term.
// @Tags Admin
// @Produce json
// @Param page query int false "Page number, zero-based"
// @Param size query int false "Page size"
// @Param sort_by query string false "Sort column"
// @Param sort_direction query string false "asc or desc"
// @Param search query string false "Search term"
// @Success 200 {object} dto.UserPageResponse
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/admin/users [get]
func (handler *Handler) Users(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdminUsers")
	defer scope.End()

	query := r.URL.Query()

	req := dto.ListUsersRequest{
		SortBy:        query.Get("sort_by"),
		SortDirection: query.Get("sort_direction"),
		SearchTerm:    query.Get("search"),
	}

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			response.WithError(w, failure.BadRequestFromString("invalid page"))

			return
		}
		req.Page = page
	}

	if raw := query.Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			response.WithError(w, failure.BadRequestFromString("invalid size"))

			return
		}
		req.Size = size
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	res, err := handler.service.Users(ctx, sessionID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list users")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateRole assigns a role to a user
// @Summary Update a user's role
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body dto.UpdateRoleRequest true "New role"
// @Success 200 {object} dto.ActionResponse
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/admin/users/{id}/role [put]
func (handler *Handler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdminUpdateRole")
	defer scope.End()

	userID, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid user id"))

		return
	}

	var req dto.UpdateRoleRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	res, err := handler.service.UpdateRole(ctx, sessionID, userID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update user role")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ToggleStatus flips a user between active and inactive
// @Summary Toggle a user's status
// @Tags Admin
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.ActionResponse
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/admin/users/{id}/toggle-status [put]
func (handler *Handler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdminToggleStatus")
	defer scope.End()

	userID, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid user id"))

		return
	}

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	res, err := handler.service.ToggleStatus(ctx, sessionID, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to toggle user status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Roles lists the assignable roles
// @Summary List roles
// @Tags Admin
// @Produce json
// @Success 200 {array} dto.RoleResponse
// @Failure 403 {object} response.Error
// @Router /v1/admin/roles [get]
func (handler *Handler) Roles(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdminRoles")
	defer scope.End()

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	res, err := handler.service.Roles(ctx, sessionID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list roles")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Dashboard returns fleet and revenue statistics
// @Summary Dashboard statistics
// @Tags Admin
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Failure 403 {object} response.Error
// @Router /v1/admin/dashboard/stats [get]
func (handler *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdminDashboard")
	defer scope.End()

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	res, err := handler.service.Dashboard(ctx, sessionID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load dashboard stats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
