package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"rentello/infras/otel/mocks"
	"rentello/infras/rentello"
	rentelloMocks "rentello/infras/rentello/mocks"
	"rentello/internal/domains/admin/model/dto"
	"rentello/internal/domains/admin/service"
	sessionModel "rentello/internal/domains/session/model"
	sessionMocks "rentello/internal/domains/session/service/mocks"
	"rentello/shared/failure"
)

func newService(t *testing.T) (service.Admin, *rentelloMocks.MockClient, *sessionMocks.MockSession) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRemote := rentelloMocks.NewMockClient(ctrl)
	mockSession := sessionMocks.NewMockSession(ctrl)

	return service.New(mockRemote, mockSession, mocks.NewOtel()), mockRemote, mockSession
}

var record = sessionModel.Record{
	Token:     "remote-token",
	Principal: sessionModel.Principal{UserID: 1, Username: "root"},
}

func TestAdminService_Users(t *testing.T) {
	t.Run("pages users with backend defaults", func(t *testing.T) {
		svc, mockRemote, mockSession := newService(t)

		mockSession.EXPECT().Principal(gomock.Any(), "sid-1").Return(record, nil)
		mockRemote.EXPECT().
			Users(gomock.Any(), "remote-token", 0, 10, "createdDate", "desc").
			Return(rentello.UserPage{
				Content: []rentello.AdminUser{{
					UserID:    42,
					Username:  "mehmet",
					FirstName: "Mehmet",
					LastName:  "Demir",
					IsActive:  true,
					RoleID:    2,
					RoleName:  "Mudur",
				}},
				TotalElements: 37,
				TotalPages:    4,
				Number:        0,
			}, nil)

		res, err := svc.Users(context.Background(), "sid-1", dto.ListUsersRequest{})

		assert.NoError(t, err)
		assert.Len(t, res.Users, 1)
		assert.Equal(t, "Mehmet Demir", res.Users[0].DisplayName)
		assert.Equal(t, "Mudur", res.Users[0].RoleName)
		assert.Equal(t, "manager", res.Users[0].Role)
		assert.Equal(t, int64(37), res.TotalElements)
	})

	t.Run("search term switches to the search endpoint", func(t *testing.T) {
		svc, mockRemote, mockSession := newService(t)

		mockSession.EXPECT().Principal(gomock.Any(), "sid-1").Return(record, nil)
		mockRemote.EXPECT().
			SearchUsers(gomock.Any(), "remote-token", "demir", 2, 25).
			Return(rentello.UserPage{Number: 2}, nil)

		res, err := svc.Users(context.Background(), "sid-1", dto.ListUsersRequest{
			Page:       2,
			Size:       25,
			SearchTerm: "demir",
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, res.Page)
		assert.NotNil(t, res.Users)
	})

	t.Run("expired session surfaces as such", func(t *testing.T) {
		svc, mockRemote, mockSession := newService(t)

		mockSession.EXPECT().Principal(gomock.Any(), "sid-1").Return(record, nil)
		mockRemote.EXPECT().
			Users(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(rentello.UserPage{}, rentello.ErrUnauthorized)
		mockSession.EXPECT().Invalidate(gomock.Any(), "sid-1").Return(nil)

		_, err := svc.Users(context.Background(), "sid-1", dto.ListUsersRequest{})

		assert.ErrorIs(t, err, failure.SessionExpiredError)
	})
}

func TestAdminService_UpdateRole(t *testing.T) {
	t.Run("acknowledged change is relayed", func(t *testing.T) {
		svc, mockRemote, mockSession := newService(t)

		mockSession.EXPECT().Principal(gomock.Any(), "sid-1").Return(record, nil)
		mockRemote.EXPECT().
			UpdateUserRole(gomock.Any(), "remote-token", int64(42), int64(3)).
			Return(rentello.AdminActionResult{Success: true, Message: "role updated"}, nil)

		res, err := svc.UpdateRole(context.Background(), "sid-1", 42, dto.UpdateRoleRequest{RoleID: 3})

		assert.NoError(t, err)
		assert.Equal(t, "role updated", res.Message)
	})

	t.Run("refusal carries the backend message", func(t *testing.T) {
		svc, mockRemote, mockSession := newService(t)

		mockSession.EXPECT().Principal(gomock.Any(), "sid-1").Return(record, nil)
		mockRemote.EXPECT().
			UpdateUserRole(gomock.Any(), "remote-token", int64(42), int64(9)).
			Return(rentello.AdminActionResult{Success: false, Message: "role not found"}, nil)

		_, err := svc.UpdateRole(context.Background(), "sid-1", 42, dto.UpdateRoleRequest{RoleID: 9})

		var f *failure.Failure
		assert.ErrorAs(t, err, &f)
		assert.Equal(t, 400, f.Code)
		assert.Equal(t, "role not found", f.Message)
	})

	t.Run("silent refusal gets a readable message", func(t *testing.T) {
		svc, mockRemote, mockSession := newService(t)

		mockSession.EXPECT().Principal(gomock.Any(), "sid-1").Return(record, nil)
		mockRemote.EXPECT().
			UpdateUserRole(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(rentello.AdminActionResult{}, nil)

		_, err := svc.UpdateRole(context.Background(), "sid-1", 42, dto.UpdateRoleRequest{RoleID: 3})

		var f *failure.Failure
		assert.ErrorAs(t, err, &f)
		assert.Equal(t, "the backend rejected the role change", f.Message)
	})
}

func TestAdminService_ToggleStatus(t *testing.T) {
	t.Run("acknowledged toggle is relayed", func(t *testing.T) {
		svc, mockRemote, mockSession := newService(t)

		mockSession.EXPECT().Principal(gomock.Any(), "sid-1").Return(record, nil)
		mockRemote.EXPECT().
			ToggleUserStatus(gomock.Any(), "remote-token", int64(42)).
			Return(rentello.AdminActionResult{Success: true, Message: "user deactivated"}, nil)

		res, err := svc.ToggleStatus(context.Background(), "sid-1", 42)

		assert.NoError(t, err)
		assert.Equal(t, "user deactivated", res.Message)
	})

	t.Run("refusal fails the call", func(t *testing.T) {
		svc, mockRemote, mockSession := newService(t)

		mockSession.EXPECT().Principal(gomock.Any(), "sid-1").Return(record, nil)
		mockRemote.EXPECT().
			ToggleUserStatus(gomock.Any(), "remote-token", int64(42)).
			Return(rentello.AdminActionResult{Success: false, Message: "user not found"}, nil)

		_, err := svc.ToggleStatus(context.Background(), "sid-1", 42)

		assert.Error(t, err)
	})
}

func TestAdminService_Roles(t *testing.T) {
	svc, mockRemote, mockSession := newService(t)

	mockSession.EXPECT().Principal(gomock.Any(), "sid-1").Return(record, nil)
	mockRemote.EXPECT().
		Roles(gomock.Any(), "remote-token").
		Return([]rentello.Role{
			{RoleID: 1, RoleName: "Yonetici", RoleDescription: "full access"},
			{RoleID: 4, RoleName: "Musteri"},
		}, nil)

	res, err := svc.Roles(context.Background(), "sid-1")

	assert.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, "administrator", res[0].Role)
	assert.Equal(t, "customer", res[1].Role)
}

func TestAdminService_Dashboard(t *testing.T) {
	svc, mockRemote, mockSession := newService(t)

	mockSession.EXPECT().Principal(gomock.Any(), "sid-1").Return(record, nil)
	mockRemote.EXPECT().
		DashboardStats(gomock.Any(), "remote-token").
		Return(rentello.DashboardStats{
			TotalUsers:     120,
			TotalVehicles:  35,
			ActiveRentals:  9,
			TotalRevenue:   125350.5,
			MonthlyRevenue: 18200,
		}, nil)

	res, err := svc.Dashboard(context.Background(), "sid-1")

	assert.NoError(t, err)
	assert.Equal(t, int64(120), res.TotalUsers)
	assert.Equal(t, "$125,350.50", res.TotalRevenue)
	assert.Equal(t, "$18,200.00", res.MonthlyRevenue)
}
