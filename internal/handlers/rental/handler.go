package rental

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"rentello/infras/otel"
	"rentello/internal/domains/rental/model/dto"
	"rentello/internal/domains/rental/service"
	"rentello/shared/constant"
	"rentello/shared/failure"
	"rentello/shared/validator"
	"rentello/transport/http/response"
)

type Handler struct {
	service service.Rental
	otel    otel.Otel
}

func New(service service.Rental, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/rentals", func(r chi.Router) {
		r.Get("/my", handler.My)
		r.Post("/{id}/cancel", handler.Cancel)
		r.Post("/{id}/activate", handler.Activate)
		r.Post("/{id}/complete", handler.Complete)
		r.Put("/{id}/status", handler.UpdateStatus)
	})
}

// My lists the caller's rentals
// @Summary My rentals
// @Tags Rental
// @Produce json
// @Success 200 {array} dto.RentalResponse
// @Failure 401 {object} response.Error
// @Router /v1/rentals/my [get]
func (handler *Handler) My(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MyRentals")
	defer scope.End()

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	res, err := handler.service.My(ctx, sessionID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list rentals")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Cancel cancels one of the caller's reserved rentals
// @Summary Cancel a rental
// @Tags Rental
// @Produce json
// @Param id path int true "Rental ID"
// @Success 200 {object} dto.RentalResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/rentals/{id}/cancel [post]
func (handler *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelRental")
	defer scope.End()

	handler.transition(ctx, w, r, scope, handler.service.Cancel)
}

// Activate marks a rental picked up
// @Summary Activate a rental
// @Description Mark a reserved rental as picked up. Desk staff only.
// @Tags Rental
// @Produce json
// @Param id path int true "Rental ID"
// @Success 200 {object} dto.RentalResponse
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/rentals/{id}/activate [post]
func (handler *Handler) Activate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ActivateRental")
	defer scope.End()

	handler.transition(ctx, w, r, scope, handler.service.Activate)
}

// Complete marks a rental returned
// @Summary Complete a rental
// @Description Mark an active rental as returned. Desk staff only.
// @Tags Rental
// @Produce json
// @Param id path int true "Rental ID"
// @Success 200 {object} dto.RentalResponse
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/rentals/{id}/complete [post]
func (handler *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompleteRental")
	defer scope.End()

	handler.transition(ctx, w, r, scope, handler.service.Complete)
}

// UpdateStatus sets an arbitrary rental status
// @Summary Update rental status
// @Description Set a rental's status directly. Back office only.
// @Tags Rental
// @Accept json
// @Produce json
// @Param id path int true "Rental ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} dto.RentalResponse
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/rentals/{id}/status [put]
func (handler *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRentalStatus")
	defer scope.End()

	rentalID, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid rental id"))

		return
	}

	req := dto.UpdateStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	res, err := handler.service.UpdateStatus(ctx, sessionID, rentalID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update rental status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

type transitionFunc func(ctx context.Context, sessionID string, rentalID int64) (dto.RentalResponse, error)

func (handler *Handler) transition(ctx context.Context, w http.ResponseWriter, r *http.Request, scope otel.Scope, fn transitionFunc) {
	rentalID, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid rental id"))

		return
	}

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	res, err := fn(ctx, sessionID, rentalID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update rental")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
