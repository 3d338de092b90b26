package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"rentello/infras/otel"
	"rentello/infras/rentello"
	"rentello/internal/domains/admin/model/dto"
	sessionService "rentello/internal/domains/session/service"
	"rentello/shared/constant"
	"rentello/shared/failure"
)

const (
	defaultPageSize      = 10
	defaultSortBy        = "createdDate"
	defaultSortDirection = "desc"
)

// Admin is the back-office surface: user management, role reference data and
// dashboard statistics. Every mutation waits for the backend's acknowledgement
// before reporting anything; a refusal surfaces with the backend's message.
type Admin interface {
	Users(ctx context.Context, sessionID string, req dto.ListUsersRequest) (dto.UserPageResponse, error)
	UpdateRole(ctx context.Context, sessionID string, userID int64, req dto.UpdateRoleRequest) (dto.ActionResponse, error)
	ToggleStatus(ctx context.Context, sessionID string, userID int64) (dto.ActionResponse, error)
	Roles(ctx context.Context, sessionID string) ([]dto.RoleResponse, error)
	Dashboard(ctx context.Context, sessionID string) (dto.StatsResponse, error)
}

type serviceImpl struct {
	remote  rentello.Client
	session sessionService.Session
	otel    otel.Otel
}

func New(remote rentello.Client, session sessionService.Session, ot otel.Otel) Admin {
	return &serviceImpl{
		remote:  remote,
		session: session,
		otel:    ot,
	}
}

// Users pages through the user accounts, filtered when a search term is given.
func (s *serviceImpl) Users(ctx context.Context, sessionID string, req dto.ListUsersRequest) (res dto.UserPageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AdminUsers")
	defer scope.End()
	defer scope.TraceIfError(err)

	record, err := s.session.Principal(ctx, sessionID)
	if err != nil {
		return dto.UserPageResponse{}, err
	}

	if req.Size == 0 {
		req.Size = defaultPageSize
	}
	if req.SortBy == "" {
		req.SortBy = defaultSortBy
	}
	if req.SortDirection == "" {
		req.SortDirection = defaultSortDirection
	}

	var page rentello.UserPage
	if req.SearchTerm != "" {
		page, err = s.remote.SearchUsers(ctx, record.Token, req.SearchTerm, req.Page, req.Size)
	} else {
		page, err = s.remote.Users(ctx, record.Token, req.Page, req.Size, req.SortBy, req.SortDirection)
	}
	if err != nil {
		return dto.UserPageResponse{}, s.mapRemoteErr(ctx, sessionID, err, "failed to list users")
	}

	res.FromRemote(page)

	return res, nil
}

// UpdateRole assigns a role to a user. The backend decides whether the change
// is legal; nothing is reported as changed until it acknowledges.
func (s *serviceImpl) UpdateRole(ctx context.Context, sessionID string, userID int64, req dto.UpdateRoleRequest) (res dto.ActionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AdminUpdateRole")
	defer scope.End()
	defer scope.TraceIfError(err)

	record, err := s.session.Principal(ctx, sessionID)
	if err != nil {
		return dto.ActionResponse{}, err
	}

	result, err := s.remote.UpdateUserRole(ctx, record.Token, userID, req.RoleID)
	if err != nil {
		return dto.ActionResponse{}, s.mapRemoteErr(ctx, sessionID, err, "failed to update user role")
	}

	if !result.Success {
		return dto.ActionResponse{}, refused(result.Message, "the backend rejected the role change")
	}

	return dto.ActionResponse{Message: result.Message}, nil
}

// ToggleStatus flips a user between active and inactive.
func (s *serviceImpl) ToggleStatus(ctx context.Context, sessionID string, userID int64) (res dto.ActionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AdminToggleStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	record, err := s.session.Principal(ctx, sessionID)
	if err != nil {
		return dto.ActionResponse{}, err
	}

	result, err := s.remote.ToggleUserStatus(ctx, record.Token, userID)
	if err != nil {
		return dto.ActionResponse{}, s.mapRemoteErr(ctx, sessionID, err, "failed to toggle user status")
	}

	if !result.Success {
		return dto.ActionResponse{}, refused(result.Message, "the backend rejected the status change")
	}

	return dto.ActionResponse{Message: result.Message}, nil
}

func (s *serviceImpl) Roles(ctx context.Context, sessionID string) (res []dto.RoleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AdminRoles")
	defer scope.End()
	defer scope.TraceIfError(err)

	record, err := s.session.Principal(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	roles, err := s.remote.Roles(ctx, record.Token)
	if err != nil {
		return nil, s.mapRemoteErr(ctx, sessionID, err, "failed to list roles")
	}

	res = make([]dto.RoleResponse, 0, len(roles))
	for _, role := range roles {
		var item dto.RoleResponse
		item.FromRemote(role)
		res = append(res, item)
	}

	return res, nil
}

func (s *serviceImpl) Dashboard(ctx context.Context, sessionID string) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AdminDashboard")
	defer scope.End()
	defer scope.TraceIfError(err)

	record, err := s.session.Principal(ctx, sessionID)
	if err != nil {
		return dto.StatsResponse{}, err
	}

	stats, err := s.remote.DashboardStats(ctx, record.Token)
	if err != nil {
		return dto.StatsResponse{}, s.mapRemoteErr(ctx, sessionID, err, "failed to load dashboard stats")
	}

	res.FromRemote(stats)

	return res, nil
}

func refused(message, fallback string) error {
	if message == "" {
		message = fallback
	}

	return failure.BadRequestFromString(message)
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
