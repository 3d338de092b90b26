package vehicle

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"rentello/infras/otel"
	"rentello/internal/domains/vehicle/model/dto"
	"rentello/internal/domains/vehicle/service"
	"rentello/shared/constant"
	"rentello/shared/failure"
	"rentello/shared/validator"
	"rentello/transport/http/response"
)

type Handler struct {
	service service.Vehicle
	otel    otel.Otel
}

func New(service service.Vehicle, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/vehicles", func(r chi.Router) {
		r.Get("/", handler.Browse)
		r.Get("/{id}", handler.Detail)
	})
	r.Get("/locations", handler.Locations)
}

// Browse lists vehicles available for a date range
// @Summary Browse vehicles
// @Description List vehicles available between the given dates. Defaults to a week starting tomorrow.
// @Tags Vehicle
// @Produce json
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} dto.VehicleResponse
// @Failure 400 {object} response.Error
// @Router /v1/vehicles [get]
func (handler *Handler) Browse(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BrowseVehicles")
	defer scope.End()

	req := dto.BrowseRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	res, err := handler.service.Browse(ctx, sessionID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to browse vehicles")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Detail returns a single vehicle
// @Summary Vehicle detail
// @Description Return one vehicle by id.
// @Tags Vehicle
// @Produce json
// @Param id path int true "Vehicle ID"
// @Success 200 {object} dto.VehicleResponse
// @Failure 404 {object} response.Error
// @Router /v1/vehicles/{id} [get]
func (handler *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VehicleDetail")
	defer scope.End()

	vehicleID, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid vehicle id"))

		return
	}

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	res, err := handler.service.Detail(ctx, sessionID, vehicleID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load vehicle")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Locations lists pickup and return locations
// @Summary Locations
// @Description List the pickup and return locations.
// @Tags Vehicle
// @Produce json
// @Success 200 {array} dto.LocationResponse
// @Router /v1/locations [get]
func (handler *Handler) Locations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Locations")
	defer scope.End()

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	res, err := handler.service.Locations(ctx, sessionID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list locations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
