package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"rentello/infras/otel"
	"rentello/infras/rentello"
	sessionService "rentello/internal/domains/session/service"
	"rentello/internal/domains/vehicle/model/dto"
	"rentello/shared/constant"
	"rentello/shared/failure"
	"rentello/shared/timezone"
)

const (
	defaultSearchOffsetDays = 1
	defaultSearchRangeDays  = 7
)

// Vehicle exposes the rentable fleet. Listings are public: no session is
// required to browse, so methods take an optional session id and fall back to
// an anonymous remote call when it is empty.
type Vehicle interface {
	Browse(ctx context.Context, sessionID string, req dto.BrowseRequest) ([]dto.VehicleResponse, error)
	Detail(ctx context.Context, sessionID string, vehicleID int64) (dto.VehicleResponse, error)
	Locations(ctx context.Context, sessionID string) ([]dto.LocationResponse, error)
}

type serviceImpl struct {
	remote  rentello.Client
	session sessionService.Session
	otel    otel.Otel
}

func New(remote rentello.Client, session sessionService.Session, ot otel.Otel) Vehicle {
	return &serviceImpl{
		remote:  remote,
		session: session,
		otel:    ot,
	}
}

// Browse lists vehicles available for a date range. A fleet that cannot be
// listed is shown as empty rather than as an error page; the remote being
// down should not take the storefront with it.
func (s *serviceImpl) Browse(ctx context.Context, sessionID string, req dto.BrowseRequest) (res []dto.VehicleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BrowseVehicles")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, end := req.StartDate, req.EndDate
	if start == "" || end == "" {
		pickup := timezone.Now().AddDate(0, 0, defaultSearchOffsetDays)
		start = pickup.Format(constant.DateFormat)
		end = pickup.AddDate(0, 0, defaultSearchRangeDays).Format(constant.DateFormat)
	}

	vehicles, err := s.remote.AvailableVehicles(ctx, s.token(ctx, sessionID), start, end)
	if err != nil {
		log.Warn().Err(err).Msg("failed to list vehicles, degrading to empty fleet")

		return []dto.VehicleResponse{}, nil
	}

	res = make([]dto.VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		var item dto.VehicleResponse
		item.FromRemote(v)
		res = append(res, item)
	}

	return res, nil
}

func (s *serviceImpl) Detail(ctx context.Context, sessionID string, vehicleID int64) (res dto.VehicleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VehicleDetail")
	defer scope.End()
	defer scope.TraceIfError(err)

	vehicle, err := s.remote.Vehicle(ctx, s.token(ctx, sessionID), vehicleID)
	if err != nil {
		var f *failure.Failure
		if errors.As(err, &f) {
			return dto.VehicleResponse{}, err
		}

		log.Error().Err(err).Int64("vehicle_id", vehicleID).Msg("failed to load vehicle")

		return dto.VehicleResponse{}, fmt.Errorf("failed to load vehicle: %w", err)
	}

	res.FromRemote(vehicle)

	return res, nil
}

func (s *serviceImpl) Locations(ctx context.Context, sessionID string) (res []dto.LocationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Locations")
	defer scope.End()
	defer scope.TraceIfError(err)

	locations, err := s.remote.Locations(ctx, s.token(ctx, sessionID))
	if err != nil {
		log.Warn().Err(err).Msg("failed to list locations, degrading to empty list")

		return []dto.LocationResponse{}, nil
	}

	res = make([]dto.LocationResponse, 0, len(locations))
	for _, l := range locations {
		var item dto.LocationResponse
		item.FromRemote(l)
		res = append(res, item)
	}

	return res, nil
}

// token resolves the session's credential when there is one. Browsing works
// anonymously, so a missing or expired session simply means no bearer token.
func (s *serviceImpl) token(ctx context.Context, sessionID string) string {
	if sessionID == "" {
		return constant.Empty
	}

	record, err := s.session.Principal(ctx, sessionID)
	if err != nil {
		return constant.Empty
	}

	return record.Token
}
