package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"rentello/config"
	"rentello/infras/otel"
	"rentello/infras/rentello"
	"rentello/infras/token"
	"rentello/internal/domains/session/model"
	"rentello/internal/domains/session/model/dto"
	"rentello/internal/domains/session/store"
	"rentello/shared/constant"
	"rentello/shared/failure"
)

// EventKind tells subscribers what happened to a session.
type EventKind int

const (
	EventLogin EventKind = iota + 1
	EventLogout
)

// Event is published whenever a session is established or torn down, so other
// domains can drop per-session state they hold in memory.
type Event struct {
	Kind      EventKind
	SessionID string
}

type Session interface {
	Login(ctx context.Context, req dto.LoginRequest) (sessionID string, principal model.Principal, err error)
	Logout(ctx context.Context, sessionID string) error
	Register(ctx context.Context, req dto.RegisterRequest) error
	ChangePassword(ctx context.Context, sessionID string, req dto.ChangePasswordRequest) error
	Principal(ctx context.Context, sessionID string) (model.Record, error)
	RefreshProfile(ctx context.Context, sessionID string) (model.Principal, error)
	Invalidate(ctx context.Context, sessionID string) error
	Subscribe(fn func(Event))
}

type serviceImpl struct {
	remote    rentello.Client
	store     store.Store
	inspector token.Inspector
	cfg       *config.Config
	otel      otel.Otel

	mu          sync.RWMutex
	subscribers []func(Event)
}

func New(remote rentello.Client, st store.Store, inspector token.Inspector, cfg *config.Config, ot otel.Otel) Session {
	return &serviceImpl{
		remote:    remote,
		store:     st,
		inspector: inspector,
		cfg:       cfg,
		otel:      ot,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (sessionID string, principal model.Principal, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err := s.remote.Login(ctx, rentello.LoginRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, rentello.ErrUnauthorized) {
			return "", model.Principal{}, failure.Unauthorized("invalid username or password")
		}

		log.Error().Err(err).Msg("failed to sign in against remote API")

		return "", model.Principal{}, fmt.Errorf("failed to sign in: %w", err)
	}

	if res.Token == "" {
		return "", model.Principal{}, failure.Unauthorized("remote API returned no credential")
	}

	principal = dto.PrincipalFromRemote(res.User)
	sessionID = uuid.NewString()

	record := model.Record{
		Token:     res.Token,
		Principal: principal,
	}

	if err = s.store.Save(ctx, sessionID, record); err != nil {
		return "", model.Principal{}, err
	}

	s.publish(Event{Kind: EventLogin, SessionID: sessionID})

	return sessionID, principal, nil
}

func (s *serviceImpl) Logout(ctx context.Context, sessionID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.store.Delete(ctx, sessionID); err != nil {
		return err
	}

	s.publish(Event{Kind: EventLogout, SessionID: sessionID})

	return nil
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.remote.Register(ctx, req.ToRemote()); err != nil {
		var f *failure.Failure
		if errors.As(err, &f) {
			return err
		}

		log.Error().Err(err).Msg("failed to register user against remote API")

		return fmt.Errorf("failed to register user: %w", err)
	}

	return nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, sessionID string, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	record, err := s.Principal(ctx, sessionID)
	if err != nil {
		return err
	}

	if err = s.remote.ChangePassword(ctx, record.Token, req.CurrentPassword, req.NewPassword); err != nil {
		return s.mapRemoteErr(ctx, sessionID, err, "failed to change password")
	}

	return nil
}

// Principal restores the session record for a gateway session. The stored
// credential is inspected on every restore: an expired or malformed token is
// treated the same as an absent one, and the record is purged.
func (s *serviceImpl) Principal(ctx context.Context, sessionID string) (record model.Record, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Principal")
	defer scope.End()
	defer scope.TraceIfError(err)

	if sessionID == "" {
		return model.Record{}, failure.SessionExpiredError
	}

	record, err = s.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.Record{}, failure.SessionExpiredError
		}

		return model.Record{}, err
	}

	if _, err = s.inspector.Inspect(record.Token); err != nil {
		if delErr := s.store.Delete(ctx, sessionID); delErr != nil {
			log.Error().Err(delErr).Msg("failed to purge expired session record")
		}

		s.publish(Event{Kind: EventLogout, SessionID: sessionID})

		return model.Record{}, failure.SessionExpiredError
	}

	return record, nil
}

// RefreshProfile re-fetches the principal from the remote API and replaces the
// stored record, keeping the credential as-is.
func (s *serviceImpl) RefreshProfile(ctx context.Context, sessionID string) (principal model.Principal, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshProfile")
	defer scope.End()
	defer scope.TraceIfError(err)

	record, err := s.Principal(ctx, sessionID)
	if err != nil {
		return model.Principal{}, err
	}

	user, err := s.remote.Profile(ctx, record.Token)
	if err != nil {
		return model.Principal{}, s.mapRemoteErr(ctx, sessionID, err, "failed to fetch profile")
	}

	record.Principal = dto.PrincipalFromRemote(user)

	if err = s.store.Save(ctx, sessionID, record); err != nil {
		return model.Principal{}, err
	}

	return record.Principal, nil
}

// Invalidate drops a session without contacting the remote API. It is the
// reaction to a remote 401: the credential is gone either way.
func (s *serviceImpl) Invalidate(ctx context.Context, sessionID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Invalidate")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.store.Delete(ctx, sessionID); err != nil {
		return err
	}

	s.publish(Event{Kind: EventLogout, SessionID: sessionID})

	return nil
}

func (s *serviceImpl) Subscribe(fn func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subscribers = append(s.subscribers, fn)
}

func (s *serviceImpl) publish(event Event) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, fn := range s.subscribers {
		fn(event)
	}
}

// mapRemoteErr turns a remote 401 into an invalidated session plus the shared
// expiry failure. Other errors pass through, wrapped when they carry no code.
func (s *serviceImpl) mapRemoteErr(ctx context.Context, sessionID string, err error, msg string) error {
	if errors.Is(err, rentello.ErrUnauthorized) {
		if invErr := s.Invalidate(ctx, sessionID); invErr != nil {
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
