package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"rentello/infras/otel"
	"rentello/infras/rentello"
	"rentello/internal/domains/rental/model/dto"
	sessionService "rentello/internal/domains/session/service"
	"rentello/shared/constant"
	"rentello/shared/failure"
)

// Rental covers the lifecycle of existing rentals: the caller's rental
// history, customer-initiated cancellation, and the pickup and return desk
// operations. The backend owns every status; the gateway never reports a
// transition it has not seen confirmed.
type Rental interface {
	My(ctx context.Context, sessionID string) ([]dto.RentalResponse, error)
	Cancel(ctx context.Context, sessionID string, rentalID int64) (dto.RentalResponse, error)
	Activate(ctx context.Context, sessionID string, rentalID int64) (dto.RentalResponse, error)
	Complete(ctx context.Context, sessionID string, rentalID int64) (dto.RentalResponse, error)
	UpdateStatus(ctx context.Context, sessionID string, rentalID int64, req dto.UpdateStatusRequest) (dto.RentalResponse, error)
}

type serviceImpl struct {
	remote  rentello.Client
	session sessionService.Session
	otel    otel.Otel
}

func New(remote rentello.Client, session sessionService.Session, ot otel.Otel) Rental {
	return &serviceImpl{
		remote:  remote,
		session: session,
		otel:    ot,
	}
}

func (s *serviceImpl) My(ctx context.Context, sessionID string) (res []dto.RentalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MyRentals")
	defer scope.End()
	defer scope.TraceIfError(err)

	record, err := s.session.Principal(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	rentals, err := s.remote.MyRentals(ctx, record.Token)
	if err != nil {
		return nil, s.mapRemoteErr(ctx, sessionID, err, "failed to list rentals")
	}

	res = make([]dto.RentalResponse, 0, len(rentals))
	for _, rental := range rentals {
		var item dto.RentalResponse
		item.FromRemote(rental)
		res = append(res, item)
	}

	return res, nil
}

// Cancel cancels one of the caller's own reserved rentals. Ownership and the
// current status are checked against the caller's rental list first so a
// customer can neither touch someone else's rental nor cancel one already
// picked up.
func (s *serviceImpl) Cancel(ctx context.Context, sessionID string, rentalID int64) (res dto.RentalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelRental")
	defer scope.End()
	defer scope.TraceIfError(err)

	record, err := s.session.Principal(ctx, sessionID)
	if err != nil {
		return dto.RentalResponse{}, err
	}

	rentals, err := s.remote.MyRentals(ctx, record.Token)
	if err != nil {
		return dto.RentalResponse{}, s.mapRemoteErr(ctx, sessionID, err, "failed to list rentals")
	}

	var owned *rentello.Rental
	for i := range rentals {
		if rentals[i].RentalID == rentalID {
			owned = &rentals[i]
			break
		}
	}

	if owned == nil {
		return dto.RentalResponse{}, failure.NotFound("rental")
	}

	if owned.RentalStatus.StatusID != constant.RentalStatusReserved {
		return dto.RentalResponse{}, failure.BadRequestFromString("only reserved rentals can be cancelled")
	}

	return s.updateStatus(ctx, sessionID, record.Token, rentalID, constant.RentalStatusCancelled)
}

// Activate marks a rental picked up. Desk operation; role checks happen at the
// route.
func (s *serviceImpl) Activate(ctx context.Context, sessionID string, rentalID int64) (res dto.RentalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ActivateRental")
	defer scope.End()
	defer scope.TraceIfError(err)

	record, err := s.session.Principal(ctx, sessionID)
	if err != nil {
		return dto.RentalResponse{}, err
	}

	return s.updateStatus(ctx, sessionID, record.Token, rentalID, constant.RentalStatusActive)
}

// Complete marks a rental returned.
func (s *serviceImpl) Complete(ctx context.Context, sessionID string, rentalID int64) (res dto.RentalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CompleteRental")
	defer scope.End()
	defer scope.TraceIfError(err)

	record, err := s.session.Principal(ctx, sessionID)
	if err != nil {
		return dto.RentalResponse{}, err
	}

	return s.updateStatus(ctx, sessionID, record.Token, rentalID, constant.RentalStatusCompleted)
}

// UpdateStatus sets an arbitrary status. It exists for the back office; the
// backend remains the judge of which transitions are legal.
func (s *serviceImpl) UpdateStatus(ctx context.Context, sessionID string, rentalID int64, req dto.UpdateStatusRequest) (res dto.RentalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateRentalStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	record, err := s.session.Principal(ctx, sessionID)
	if err != nil {
		return dto.RentalResponse{}, err
	}

	return s.updateStatus(ctx, sessionID, record.Token, rentalID, req.StatusID)
}

func (s *serviceImpl) updateStatus(ctx context.Context, sessionID, token string, rentalID int64, statusID int) (dto.RentalResponse, error) {
	rental, err := s.remote.UpdateRentalStatus(ctx, token, rentalID, statusID)
	if err != nil {
		return dto.RentalResponse{}, s.mapRemoteErr(ctx, sessionID, err, "failed to update rental status")
	}

	var res dto.RentalResponse
	res.FromRemote(rental)

	return res, nil
}

func (s *serviceImpl) mapRemoteErr(ctx context.Context, sessionID string, err error, msg string) error {
	if errors.Is(err, rentello.ErrUnauthorized) {
		if invErr := s.session.Invalidate(ctx, sessionID); invErr != nil {
			log.Error().Err(invErr).Msg("failed to invalidate session after remote rejection")
		}

		return failure.SessionExpiredError
	}

	var f *failure.Failure
	if errors.As(err, &f) {
		return err
	}

	log.Error().Err(err).Msg(msg)

	return fmt.Errorf("%s: %w", msg, err)
}
