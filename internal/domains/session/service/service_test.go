package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"rentello/config"
	"rentello/infras/otel/mocks"
	"rentello/infras/rentello"
	rentelloMocks "rentello/infras/rentello/mocks"
	"rentello/infras/token"
	tokenMocks "rentello/infras/token/mocks"
	"rentello/internal/domains/session/model"
	"rentello/internal/domains/session/model/dto"
	"rentello/internal/domains/session/service"
	"rentello/internal/domains/session/store"
	storeMocks "rentello/internal/domains/session/store/mocks"
	"rentello/shared/failure"
)

func newService(t *testing.T) (service.Session, *rentelloMocks.MockClient, *storeMocks.MockStore, *tokenMocks.MockInspector) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRemote := rentelloMocks.NewMockClient(ctrl)
	mockStore := storeMocks.NewMockStore(ctrl)
	mockInspector := tokenMocks.NewMockInspector(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRemote, mockStore, mockInspector, &config.Config{}, mockOtel)

	return svc, mockRemote, mockStore, mockInspector
}

func TestSessionService_Login(t *testing.T) {
	remoteUser := rentello.User{
		UserID:    7,
		Username:  "ayse",
		Email:     "ayse@example.com",
		FirstName: "Ayse",
		LastName:  "Demir",
		UserRole:  &rentello.UserRole{RoleID: 2, RoleName: "Mudur"},
	}

	t.Run("successful login stores record and emits event", func(t *testing.T) {
		svc, mockRemote, mockStore, _ := newService(t)

		var events []service.Event
		svc.Subscribe(func(e service.Event) { events = append(events, e) })

		mockRemote.EXPECT().
			Login(gomock.Any(), rentello.LoginRequest{Username: "ayse", Password: "secret"}).
			Return(rentello.LoginResponse{Token: "remote-token", User: remoteUser}, nil)

		var saved model.Record
		mockStore.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, record model.Record) error {
				saved = record
				return nil
			})

		sessionID, principal, err := svc.Login(context.Background(), dto.LoginRequest{Username: "ayse", Password: "secret"})

		assert.NoError(t, err)
		assert.NotEmpty(t, sessionID)
		assert.Equal(t, "remote-token", saved.Token)
		assert.Equal(t, "Mudur", principal.RoleName())
		assert.Len(t, events, 1)
		assert.Equal(t, service.EventLogin, events[0].Kind)
		assert.Equal(t, sessionID, events[0].SessionID)
	})

	t.Run("rejected credentials map to unauthorized", func(t *testing.T) {
		svc, mockRemote, _, _ := newService(t)

		mockRemote.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(rentello.LoginResponse{}, rentello.ErrUnauthorized)

		_, _, err := svc.Login(context.Background(), dto.LoginRequest{Username: "ayse", Password: "wrong"})

		assert.Error(t, err)
		var f *failure.Failure
		assert.ErrorAs(t, err, &f)
		assert.Equal(t, 401, f.Code)
	})

	t.Run("empty remote token is rejected", func(t *testing.T) {
		svc, mockRemote, _, _ := newService(t)

		mockRemote.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(rentello.LoginResponse{User: remoteUser}, nil)

		_, _, err := svc.Login(context.Background(), dto.LoginRequest{Username: "ayse", Password: "secret"})

		assert.Error(t, err)
	})
}

func TestSessionService_Principal(t *testing.T) {
	record := model.Record{
		Token:     "remote-token",
		Principal: model.Principal{UserID: 7, Username: "ayse", RoleRef: "Mudur"},
	}

	t.Run("restores a live session", func(t *testing.T) {
		svc, _, mockStore, mockInspector := newService(t)

		mockStore.EXPECT().Get(gomock.Any(), "sid-1").Return(record, nil)
		mockInspector.EXPECT().Inspect("remote-token").Return(&token.Claims{}, nil)

		got, err := svc.Principal(context.Background(), "sid-1")

		assert.NoError(t, err)
		assert.Equal(t, record, got)
	})

	t.Run("missing session maps to expiry failure", func(t *testing.T) {
		svc, _, mockStore, _ := newService(t)

		mockStore.EXPECT().Get(gomock.Any(), "sid-1").Return(model.Record{}, store.ErrNotFound)

		_, err := svc.Principal(context.Background(), "sid-1")

		assert.ErrorIs(t, err, failure.SessionExpiredError)
	})

	t.Run("empty session id never reaches the store", func(t *testing.T) {
		svc, _, _, _ := newService(t)

		_, err := svc.Principal(context.Background(), "")

		assert.ErrorIs(t, err, failure.SessionExpiredError)
	})

	t.Run("expired credential purges the record and emits logout", func(t *testing.T) {
		svc, _, mockStore, mockInspector := newService(t)

		var events []service.Event
		svc.Subscribe(func(e service.Event) { events = append(events, e) })

		mockStore.EXPECT().Get(gomock.Any(), "sid-1").Return(record, nil)
		mockInspector.EXPECT().Inspect("remote-token").Return(nil, token.ErrExpiredToken)
		mockStore.EXPECT().Delete(gomock.Any(), "sid-1").Return(nil)

		_, err := svc.Principal(context.Background(), "sid-1")

		assert.ErrorIs(t, err, failure.SessionExpiredError)
		assert.Len(t, events, 1)
		assert.Equal(t, service.EventLogout, events[0].Kind)
	})
}

func TestSessionService_RefreshProfile(t *testing.T) {
	record := model.Record{
		Token:     "remote-token",
		Principal: model.Principal{UserID: 7, Username: "ayse", RoleRef: "Mudur"},
	}

	t.Run("replaces stored principal", func(t *testing.T) {
		svc, mockRemote, mockStore, mockInspector := newService(t)

		mockStore.EXPECT().Get(gomock.Any(), "sid-1").Return(record, nil)
		mockInspector.EXPECT().Inspect("remote-token").Return(&token.Claims{}, nil)
		mockRemote.EXPECT().
			Profile(gomock.Any(), "remote-token").
			Return(rentello.User{UserID: 7, Username: "ayse", PhoneNumber: "+90 555 000 00 00", Role: "manager"}, nil)
		mockStore.EXPECT().
			Save(gomock.Any(), "sid-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, saved model.Record) error {
				assert.Equal(t, "remote-token", saved.Token)
				assert.Equal(t, "+90 555 000 00 00", saved.Principal.PhoneNumber)
				return nil
			})

		principal, err := svc.RefreshProfile(context.Background(), "sid-1")

		assert.NoError(t, err)
		assert.Equal(t, "manager", principal.RoleName())
	})

	t.Run("remote rejection invalidates the session", func(t *testing.T) {
		svc, mockRemote, mockStore, mockInspector := newService(t)

		mockStore.EXPECT().Get(gomock.Any(), "sid-1").Return(record, nil)
		mockInspector.EXPECT().Inspect("remote-token").Return(&token.Claims{}, nil)
		mockRemote.EXPECT().Profile(gomock.Any(), "remote-token").Return(rentello.User{}, rentello.ErrUnauthorized)
		mockStore.EXPECT().Delete(gomock.Any(), "sid-1").Return(nil)

		_, err := svc.RefreshProfile(context.Background(), "sid-1")

		assert.ErrorIs(t, err, failure.SessionExpiredError)
	})
}

func TestSessionService_Logout(t *testing.T) {
	svc, _, mockStore, _ := newService(t)

	var events []service.Event
	svc.Subscribe(func(e service.Event) { events = append(events, e) })

	mockStore.EXPECT().Delete(gomock.Any(), "sid-1").Return(nil)

	err := svc.Logout(context.Background(), "sid-1")

	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, service.EventLogout, events[0].Kind)
}

func TestSessionService_ChangePassword(t *testing.T) {
	record := model.Record{
		Token:     "remote-token",
		Principal: model.Principal{UserID: 7, Username: "ayse"},
	}

	t.Run("forwards credentials to remote", func(t *testing.T) {
		svc, mockRemote, mockStore, mockInspector := newService(t)

		mockStore.EXPECT().Get(gomock.Any(), "sid-1").Return(record, nil)
		mockInspector.EXPECT().Inspect("remote-token").Return(&token.Claims{}, nil)
		mockRemote.EXPECT().
			ChangePassword(gomock.Any(), "remote-token", "old-pass", "new-pass-123").
			Return(nil)

		err := svc.ChangePassword(context.Background(), "sid-1", dto.ChangePasswordRequest{
			CurrentPassword: "old-pass",
			NewPassword:     "new-pass-123",
		})

		assert.NoError(t, err)
	})

	t.Run("remote failure passes through with its code", func(t *testing.T) {
		svc, mockRemote, mockStore, mockInspector := newService(t)

		mockStore.EXPECT().Get(gomock.Any(), "sid-1").Return(record, nil)
		mockInspector.EXPECT().Inspect("remote-token").Return(&token.Claims{}, nil)
		mockRemote.EXPECT().
			ChangePassword(gomock.Any(), "remote-token", "old-pass", "new-pass-123").
			Return(&failure.Failure{Code: 400, Message: "current password is incorrect"})

		err := svc.ChangePassword(context.Background(), "sid-1", dto.ChangePasswordRequest{
			CurrentPassword: "old-pass",
			NewPassword:     "new-pass-123",
		})

		var f *failure.Failure
		assert.ErrorAs(t, err, &f)
		assert.Equal(t, 400, f.Code)
	})
}

func TestSessionService_Register(t *testing.T) {
	svc, mockRemote, _, _ := newService(t)

	mockRemote.EXPECT().
		Register(gomock.Any(), rentello.RegisterRequest{
			Username:  "mehmet",
			Email:     "mehmet@example.com",
			Password:  "hunter2hunter2",
			FirstName: "Mehmet",
			LastName:  "Kaya",
		}).
		Return(errors.New("connection refused"))

	err := svc.Register(context.Background(), dto.RegisterRequest{
		Username:  "mehmet",
		Email:     "mehmet@example.com",
		Password:  "hunter2hunter2",
		FirstName: "Mehmet",
		LastName:  "Kaya",
	})

	assert.Error(t, err)
}
