package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"rentello/infras/otel"
	"rentello/infras/rentello"
	"rentello/internal/domains/booking/model"
	"rentello/internal/domains/booking/model/dto"
	"rentello/internal/domains/booking/store"
	pricingService "rentello/internal/domains/pricing/service"
	sessionService "rentello/internal/domains/session/service"
	"rentello/shared/constant"
	"rentello/shared/failure"
	"rentello/shared/timezone"
)

const (
	defaultPickupTime = "10:00"
	defaultReturnTime = "18:00"

	// Defaults relative to today: pickup tomorrow, return a week after that.
	defaultPickupOffsetDays = 1
	defaultRentalDays       = 7
)

var ErrNoDraft = failure.NotFound("booking draft")

// Booking drives the rental booking workflow for a session: one draft at a
// time, moved through configure, preview, confirm and submit. Every transition
// is validated here so handlers stay thin.
type Booking interface {
	Open(ctx context.Context, sessionID string, vehicleID int64) (model.Draft, error)
	Draft(ctx context.Context, sessionID string) (model.Draft, error)
	Update(ctx context.Context, sessionID string, req dto.UpdateDraftRequest) (model.Draft, error)
	Confirm(ctx context.Context, sessionID string) (model.Draft, error)
	Submit(ctx context.Context, sessionID string) (model.Draft, error)
	Retry(ctx context.Context, sessionID string) (model.Draft, error)
	Cancel(ctx context.Context, sessionID string) error
}

type serviceImpl struct {
	remote    rentello.Client
	estimator pricingService.Estimator
	session   sessionService.Session
	drafts    store.Store
	otel      otel.Otel
}

func New(remote rentello.Client, estimator pricingService.Estimator, session sessionService.Session, drafts store.Store, ot otel.Otel) Booking {
	s := &serviceImpl{
		remote:    remote,
		estimator: estimator,
		session:   session,
		drafts:    drafts,
		otel:      ot,
	}

	// Drafts are bound to the session that opened them. When that session ends,
	// whatever was in progress is abandoned.
	session.Subscribe(func(event sessionService.Event) {
		if event.Kind == sessionService.EventLogout {
			s.drafts.Delete(event.SessionID)
		}
	})

	return s
}

// Open starts a draft for a vehicle with default dates and an initial price
// preview. An existing draft for the session is replaced.
func (s *serviceImpl) Open(ctx context.Context, sessionID string, vehicleID int64) (draft model.Draft, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".OpenDraft")
	defer scope.End()
	defer scope.TraceIfError(err)

	record, err := s.session.Principal(ctx, sessionID)
	if err != nil {
		return model.Draft{}, err
	}

	vehicle, err := s.remote.Vehicle(ctx, record.Token, vehicleID)
	if err != nil {
		return model.Draft{}, s.mapRemoteErr(ctx, sessionID, err, "failed to load vehicle")
	}

	today := startOfDay(timezone.Now())
	pickup := today.AddDate(0, 0, defaultPickupOffsetDays)

	draft = model.Draft{
		State: model.StateConfiguring,
		Vehicle: model.VehicleSnapshot{
			VehicleID:    vehicle.VehicleID,
			Label:        vehicleLabel(vehicle),
			Registration: vehicle.VehicleRegistration,
			DailyRate:    vehicle.DailyRentalRate,
		},
		PickupDate:       pickup,
		ReturnDate:       pickup.AddDate(0, 0, defaultRentalDays),
		PickupTime:       defaultPickupTime,
		ReturnTime:       defaultReturnTime,
		PickupLocationID: vehicle.CurrentLocation.LocationID,
		ReturnLocationID: vehicle.CurrentLocation.LocationID,
	}

	s.drafts.Save(sessionID, draft)

	return s.preview(ctx, sessionID, record.Token, draft)
}

func (s *serviceImpl) Draft(ctx context.Context, sessionID string) (draft model.Draft, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Draft")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, ok := s.drafts.Get(sessionID)
	if !ok {
		return model.Draft{}, ErrNoDraft
	}

	return draft, nil
}

// Update applies edited dates and locations, bumps the revision, and
// recomputes the preview. A preview computed for an older revision is thrown
// away so the latest edit always wins.
func (s *serviceImpl) Update(ctx context.Context, sessionID string, req dto.UpdateDraftRequest) (draft model.Draft, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateDraft")
	defer scope.End()
	defer scope.TraceIfError(err)

	record, err := s.session.Principal(ctx, sessionID)
	if err != nil {
		return model.Draft{}, err
	}

	draft, ok := s.drafts.Get(sessionID)
	if !ok {
		return model.Draft{}, ErrNoDraft
	}

	switch draft.State {
	case model.StateConfiguring, model.StatePreviewing, model.StateConfirming:
	default:
		return model.Draft{}, failure.BadRequestFromString("booking can no longer be edited")
	}

	pickup, returnAt, err := req.Dates()
	if err != nil {
		return model.Draft{}, err
	}

	draft.PickupDate = pickup
	draft.ReturnDate = returnAt
	draft.PickupTime = req.PickupTime
	draft.ReturnTime = req.ReturnTime
	draft.PickupLocationID = req.PickupLocationID
	draft.ReturnLocationID = req.ReturnLocationID
	draft.Notes = req.Notes

	draft.Revision++
	draft.State = model.StateConfiguring
	draft.Breakdown = nil

	s.drafts.Save(sessionID, draft)

	return s.preview(ctx, sessionID, record.Token, draft)
}

// preview prices the draft and attaches the breakdown, unless the draft was
// edited again while the estimate was in flight. Pricing is per calendar day;
// the clock times only matter once the rental is submitted.
func (s *serviceImpl) preview(ctx context.Context, sessionID, token string, draft model.Draft) (model.Draft, error) {
	breakdown, err := s.estimator.Estimate(ctx, token, draft.Vehicle.VehicleID, draft.Vehicle.DailyRate,
		draft.PickupDate, draft.ReturnDate)
	if err != nil {
		if errors.Is(err, rentello.ErrUnauthorized) {
			return model.Draft{}, s.mapRemoteErr(ctx, sessionID, err, "failed to price booking")
		}

		// Invalid ranges leave the draft configuring without a price.
		if errors.Is(err, pricingService.ErrInvalidRange) || errors.Is(err, pricingService.ErrInvalidRate) {
			return draft, nil
		}

		log.Error().Err(err).Msg("failed to price booking draft")

		return model.Draft{}, fmt.Errorf("failed to price booking draft: %w", err)
	}

	current, ok := s.drafts.Get(sessionID)
	if !ok {
		// The draft was cancelled while the estimate was in flight.
		return model.Draft{}, ErrNoDraft
	}

	if current.Revision != draft.Revision {
		// A newer edit owns the draft now; this preview is stale.
		return current, nil
	}

	current.Breakdown = &breakdown
	current.State = model.StatePreviewing

	s.drafts.Save(sessionID, current)

	return current, nil
}

// Confirm locks the draft for submission. The dates are re-checked here: the
// draft may have been sitting open past midnight.
func (s *serviceImpl) Confirm(ctx context.Context, sessionID string) (draft model.Draft, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConfirmDraft")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, ok := s.drafts.Get(sessionID)
	if !ok {
		return model.Draft{}, ErrNoDraft
	}

	if draft.State != model.StatePreviewing {
		return model.Draft{}, failure.BadRequestFromString("booking is not ready to confirm")
	}

	if draft.Breakdown == nil {
		return model.Draft{}, failure.BadRequestFromString("booking has no price yet")
	}

	if draft.PickupDate.Before(startOfDay(timezone.Now())) {
		return model.Draft{}, failure.BadRequestFromString("pickup date is in the past")
	}

	if !draft.ReturnDate.After(draft.PickupDate) {
		return model.Draft{}, failure.BadRequestFromString("return must be after pickup")
	}

	draft.State = model.StateConfirming

	s.drafts.Save(sessionID, draft)

	return draft, nil
}

// Submit creates the rental on the backend. Availability is re-checked first;
// a vehicle taken since the preview fails the workflow without attempting
// creation. Submission is one-way: from here the draft ends in Succeeded or
// Failed.
func (s *serviceImpl) Submit(ctx context.Context, sessionID string) (draft model.Draft, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SubmitDraft")
	defer scope.End()
	defer scope.TraceIfError(err)

	record, err := s.session.Principal(ctx, sessionID)
	if err != nil {
		return model.Draft{}, err
	}

	draft, ok := s.drafts.Get(sessionID)
	if !ok {
		return model.Draft{}, ErrNoDraft
	}

	if draft.State != model.StateConfirming {
		return model.Draft{}, failure.BadRequestFromString("booking is not confirmed")
	}

	draft.State = model.StateSubmitting
	s.drafts.Save(sessionID, draft)

	// Date and time are combined only here; the rest of the workflow works
	// with the calendar dates.
	pickupAt := draft.PickupAt().Format(constant.DateTimeFormat)
	returnAt := draft.ReturnAt().Format(constant.DateTimeFormat)

	available, err := s.remote.IsVehicleAvailable(ctx, record.Token, draft.Vehicle.VehicleID, pickupAt, returnAt)
	if err != nil {
		if errors.Is(err, rentello.ErrUnauthorized) {
			return model.Draft{}, s.mapRemoteErr(ctx, sessionID, err, "availability check failed")
		}

		return s.fail(sessionID, draft, remoteReason(err, "availability check failed"))
	}

	if !available {
		return s.fail(sessionID, draft, failure.VehicleUnavailableError.Message)
	}

	result, err := s.remote.CreateRental(ctx, record.Token, rentello.CreateRentalRequest{
		CustomerID:        record.Principal.UserID,
		VehicleID:         draft.Vehicle.VehicleID,
		PickupLocationID:  draft.PickupLocationID,
		ReturnLocationID:  draft.ReturnLocationID,
		PlannedPickupDate: pickupAt,
		PlannedReturnDate: returnAt,
		CreatedBy:         record.Principal.UserID,
	})
	if err != nil {
		if errors.Is(err, rentello.ErrUnauthorized) {
			return model.Draft{}, s.mapRemoteErr(ctx, sessionID, err, "failed to create rental")
		}

		return s.fail(sessionID, draft, remoteReason(err, "failed to create rental"))
	}

	if !result.IsSuccess {
		reason := result.ErrorMessage
		if reason == "" {
			reason = "the backend rejected the booking"
		}

		return s.fail(sessionID, draft, reason)
	}

	// The backend's amount is authoritative; older versions return zero, in
	// which case the previewed total stands.
	amount := result.TotalAmount
	if amount <= 0 && draft.Breakdown != nil {
		amount = draft.Breakdown.TotalPrice
	}

	days := 0
	if draft.Breakdown != nil {
		days = draft.Breakdown.TotalDays
	}
	if days == 0 {
		days = pricingService.DayCount(draft.PickupDate, draft.ReturnDate)
	}

	draft.State = model.StateSucceeded
	draft.Reservation = &model.Reservation{
		RentalID:    result.RentalID,
		TotalAmount: amount,
		TotalDays:   days,
	}

	s.drafts.Save(sessionID, draft)

	return draft, nil
}

// Retry returns a failed draft to configuring so the user can adjust and
// resubmit.
func (s *serviceImpl) Retry(ctx context.Context, sessionID string) (draft model.Draft, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RetryDraft")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, ok := s.drafts.Get(sessionID)
	if !ok {
		return model.Draft{}, ErrNoDraft
	}

	if draft.State != model.StateFailed {
		return model.Draft{}, failure.BadRequestFromString("booking has not failed")
	}

	draft.State = model.StateConfiguring
	draft.FailReason = ""
	draft.Breakdown = nil
	draft.Revision++

	s.drafts.Save(sessionID, draft)

	return draft, nil
}

// Cancel abandons the draft. A submission in flight cannot be cancelled;
// terminal drafts are simply dismissed.
func (s *serviceImpl) Cancel(ctx context.Context, sessionID string) (err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelDraft")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, ok := s.drafts.Get(sessionID)
	if !ok {
		return ErrNoDraft
	}

	if draft.State == model.StateSubmitting {
		return failure.BadRequestFromString("booking is being submitted and can no longer be cancelled")
	}

	s.drafts.Delete(sessionID)

	return nil
}

func (s *serviceImpl) fail(sessionID string, draft model.Draft, reason string) (model.Draft, error) {
	draft.State = model.StateFailed
	draft.FailReason = reason

	s.drafts.Save(sessionID, draft)

	return draft, nil
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

// remoteReason renders a submission-time remote error as a user-facing
// failure reason.
func remoteReason(err error, fallback string) string {
	var f *failure.Failure
	if errors.As(err, &f) && f.Message != "" {
		return f.Message
	}

	log.Error().Err(err).Msg(fallback)

	return fallback
}

func vehicleLabel(vehicle rentello.Vehicle) string {
	label := vehicle.Model.Brand.BrandName + " " + vehicle.Model.ModelName
	if label == " " {
		return vehicle.VehicleRegistration
	}

	return label
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
