package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"rentello/infras/otel"
	"rentello/internal/domains/booking/model"
	"rentello/internal/domains/booking/model/dto"
	"rentello/internal/domains/booking/service"
	"rentello/shared/constant"
	"rentello/shared/validator"
	"rentello/transport/http/response"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/bookings/draft", func(r chi.Router) {
		r.Post("/", handler.Open)
		r.Get("/", handler.Draft)
		r.Patch("/", handler.Update)
		r.Delete("/", handler.Cancel)
		r.Post("/confirm", handler.Confirm)
		r.Post("/submit", handler.Submit)
		r.Post("/retry", handler.Retry)
	})
}

// Open starts a booking draft for a vehicle
// @Summary Open a booking draft
// @Description Start a booking draft with default dates and an initial price preview.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.OpenDraftRequest true "Open Draft Request"
// @Success 201 {object} dto.DraftResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/bookings/draft [post]
func (handler *Handler) Open(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".OpenDraft")
	defer scope.End()

	req := dto.OpenDraftRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	draft, err := handler.service.Open(ctx, sessionID, req.VehicleID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to open booking draft")

		response.WithError(w, err)

		return
	}

	handler.writeDraft(w, http.StatusCreated, draft)
}

// Draft returns the session's current booking draft
// @Summary Current booking draft
// @Tags Booking
// @Produce json
// @Success 200 {object} dto.DraftResponse
// @Failure 404 {object} response.Error
// @Router /v1/bookings/draft [get]
func (handler *Handler) Draft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Draft")
	defer scope.End()

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	draft, err := handler.service.Draft(ctx, sessionID)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	handler.writeDraft(w, http.StatusOK, draft)
}

// Update edits the draft and recomputes its price preview
// @Summary Update the booking draft
// @Description Apply edited dates, locations and notes, then reprice the draft.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.UpdateDraftRequest true "Update Draft Request"
// @Success 200 {object} dto.DraftResponse
// @Failure 400 {object} response.Error
// @Router /v1/bookings/draft [patch]
func (handler *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDraft")
	defer scope.End()

	req := dto.UpdateDraftRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	draft, err := handler.service.Update(ctx, sessionID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking draft")

		response.WithError(w, err)

		return
	}

	handler.writeDraft(w, http.StatusOK, draft)
}

// Confirm locks the draft for submission
// @Summary Confirm the booking draft
// @Tags Booking
// @Produce json
// @Success 200 {object} dto.DraftResponse
// @Failure 400 {object} response.Error
// @Router /v1/bookings/draft/confirm [post]
func (handler *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmDraft")
	defer scope.End()

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	draft, err := handler.service.Confirm(ctx, sessionID)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	handler.writeDraft(w, http.StatusOK, draft)
}

// Submit creates the rental on the rental platform
// @Summary Submit the booking
// @Description Re-check availability and create the rental. The draft ends in succeeded or failed.
// @Tags Booking
// @Produce json
// @Success 200 {object} dto.DraftResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/bookings/draft/submit [post]
func (handler *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitDraft")
	defer scope.End()

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	draft, err := handler.service.Submit(ctx, sessionID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit booking")

		response.WithError(w, err)

		return
	}

	if draft.State == model.StateSucceeded {
		scope.AddEvent("Booking submitted successfully")
	}

	handler.writeDraft(w, http.StatusOK, draft)
}

// Retry returns a failed draft to editing
// @Summary Retry a failed booking
// @Tags Booking
// @Produce json
// @Success 200 {object} dto.DraftResponse
// @Failure 400 {object} response.Error
// @Router /v1/bookings/draft/retry [post]
func (handler *Handler) Retry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RetryDraft")
	defer scope.End()

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	draft, err := handler.service.Retry(ctx, sessionID)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	handler.writeDraft(w, http.StatusOK, draft)
}

// Cancel abandons the draft
// @Summary Cancel the booking draft
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Router /v1/bookings/draft [delete]
func (handler *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelDraft")
	defer scope.End()

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	if err := handler.service.Cancel(ctx, sessionID); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Booking draft cancelled")
}

func (handler *Handler) writeDraft(w http.ResponseWriter, code int, draft model.Draft) {
	res := dto.DraftResponse{}
	res.FromModel(draft)

	response.WithJSON(w, code, res)
}
