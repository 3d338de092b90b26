package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"rentello/infras/otel/mocks"
	"rentello/infras/rentello"
	rentelloMocks "rentello/infras/rentello/mocks"
	"rentello/internal/domains/rental/service"
	sessionModel "rentello/internal/domains/session/model"
	sessionMocks "rentello/internal/domains/session/service/mocks"
	"rentello/shared/constant"
	"rentello/shared/failure"
)

func newService(t *testing.T) (service.Rental, *rentelloMocks.MockClient, *sessionMocks.MockSession) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRemote := rentelloMocks.NewMockClient(ctrl)
	mockSession := sessionMocks.NewMockSession(ctrl)

	return service.New(mockRemote, mockSession, mocks.NewOtel()), mockRemote, mockSession
}

var record = sessionModel.Record{
	Token:     "remote-token",
	Principal: sessionModel.Principal{UserID: 7},
}

func rentalWithStatus(id int64, statusID int64, statusName string) rentello.Rental {
	return rentello.Rental{
		RentalID:          id,
		PlannedPickupDate: "2026-04-01",
		PlannedReturnDate: "2026-04-05",
		TotalAmount:       826,
		RentalStatus:      rentello.RentalStatus{StatusID: statusID, StatusName: statusName},
		Vehicle: rentello.Vehicle{
			VehicleRegistration: "34 ABC 123",
			Model: rentello.VehicleModel{
				ModelName: "Corolla",
				Brand:     rentello.VehicleBrand{BrandName: "Toyota"},
			},
		},
	}
}

func TestRentalService_My(t *testing.T) {
	t.Run("lists the caller's rentals", func(t *testing.T) {
		svc, mockRemote, mockSession := newService(t)

		mockSession.EXPECT().Principal(gomock.Any(), "sid-1").Return(record, nil)
		mockRemote.EXPECT().
			MyRentals(gomock.Any(), "remote-token").
			Return([]rentello.Rental{rentalWithStatus(501, 1, "Reserved")}, nil)

		res, err := svc.My(context.Background(), "sid-1")

		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, "Toyota Corolla", res[0].VehicleLabel)
		assert.Equal(t, "$826.00", res[0].TotalDisplay)
		assert.Equal(t, "Reserved", res[0].StatusName)
	})

	t.Run("remote rejection invalidates the session", func(t *testing.T) {
		svc, mockRemote, mockSession := newService(t)

		mockSession.EXPECT().Principal(gomock.Any(), "sid-1").Return(record, nil)
		mockRemote.EXPECT().MyRentals(gomock.Any(), "remote-token").Return(nil, rentello.ErrUnauthorized)
		mockSession.EXPECT().Invalidate(gomock.Any(), "sid-1").Return(nil)

		_, err := svc.My(context.Background(), "sid-1")

		assert.ErrorIs(t, err, failure.SessionExpiredError)
	})
}

func TestRentalService_Cancel(t *testing.T) {
	t.Run("reserved rental cancels", func(t *testing.T) {
		svc, mockRemote, mockSession := newService(t)

		mockSession.EXPECT().Principal(gomock.Any(), "sid-1").Return(record, nil)
		mockRemote.EXPECT().
			MyRentals(gomock.Any(), "remote-token").
			Return([]rentello.Rental{rentalWithStatus(501, constant.RentalStatusReserved, "Reserved")}, nil)
		mockRemote.EXPECT().
			UpdateRentalStatus(gomock.Any(), "remote-token", int64(501), constant.RentalStatusCancelled).
			Return(rentalWithStatus(501, constant.RentalStatusCancelled, "Cancelled"), nil)

		res, err := svc.Cancel(context.Background(), "sid-1", 501)

		assert.NoError(t, err)
		assert.Equal(t, "Cancelled", res.StatusName)
	})

	t.Run("rental owned by someone else is not found", func(t *testing.T) {
		svc, mockRemote, mockSession := newService(t)

		mockSession.EXPECT().Principal(gomock.Any(), "sid-1").Return(record, nil)
		mockRemote.EXPECT().MyRentals(gomock.Any(), "remote-token").Return([]rentello.Rental{}, nil)

		_, err := svc.Cancel(context.Background(), "sid-1", 501)

		var f *failure.Failure
		assert.ErrorAs(t, err, &f)
		assert.Equal(t, 404, f.Code)
	})

	t.Run("active rental cannot be cancelled", func(t *testing.T) {
		svc, mockRemote, mockSession := newService(t)

		mockSession.EXPECT().Principal(gomock.Any(), "sid-1").Return(record, nil)
		mockRemote.EXPECT().
			MyRentals(gomock.Any(), "remote-token").
			Return([]rentello.Rental{rentalWithStatus(501, constant.RentalStatusActive, "Active")}, nil)

		_, err := svc.Cancel(context.Background(), "sid-1", 501)

		var f *failure.Failure
		assert.ErrorAs(t, err, &f)
		assert.Equal(t, 400, f.Code)
	})
}

func TestRentalService_DeskOperations(t *testing.T) {
	t.Run("activate marks the rental picked up", func(t *testing.T) {
		svc, mockRemote, mockSession := newService(t)

		mockSession.EXPECT().Principal(gomock.Any(), "sid-1").Return(record, nil)
		mockRemote.EXPECT().
			UpdateRentalStatus(gomock.Any(), "remote-token", int64(501), constant.RentalStatusActive).
			Return(rentalWithStatus(501, constant.RentalStatusActive, "Active"), nil)

		res, err := svc.Activate(context.Background(), "sid-1", 501)

		assert.NoError(t, err)
		assert.Equal(t, int64(constant.RentalStatusActive), res.StatusID)
	})

	t.Run("complete marks the rental returned", func(t *testing.T) {
		svc, mockRemote, mockSession := newService(t)

		mockSession.EXPECT().Principal(gomock.Any(), "sid-1").Return(record, nil)
		mockRemote.EXPECT().
			UpdateRentalStatus(gomock.Any(), "remote-token", int64(501), constant.RentalStatusCompleted).
			Return(rentalWithStatus(501, constant.RentalStatusCompleted, "Completed"), nil)

		res, err := svc.Complete(context.Background(), "sid-1", 501)

		assert.NoError(t, err)
		assert.Equal(t, "Completed", res.StatusName)
	})

	t.Run("illegal transition surfaces the backend message", func(t *testing.T) {
		svc, mockRemote, mockSession := newService(t)

		mockSession.EXPECT().Principal(gomock.Any(), "sid-1").Return(record, nil)
		mockRemote.EXPECT().
			UpdateRentalStatus(gomock.Any(), "remote-token", int64(501), constant.RentalStatusActive).
			Return(rentello.Rental{}, &failure.Failure{Code: 409, Message: "rental is not reserved"})

		_, err := svc.Activate(context.Background(), "sid-1", 501)

		var f *failure.Failure
		assert.ErrorAs(t, err, &f)
		assert.Equal(t, 409, f.Code)
	})
}
