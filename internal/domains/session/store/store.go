package store

//go:generate go run go.uber.org/mock/mockgen -source=./store.go -destination=./mocks/store_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"rentello/config"
	"rentello/internal/domains/session/model"
	"rentello/shared"
	"rentello/shared/cache"
)

// keyPrefix is the fixed name under which credentials are stored, the gateway
// equivalent of the browser's fixed local-storage key.
const keyPrefix = "rentello:session"

var ErrNotFound = errors.New("session not found")

// Store persists one Record per gateway session. Writes replace the whole
// record so readers never observe a half-updated principal.
type Store interface {
	Save(ctx context.Context, sessionID string, record model.Record) error
	Get(ctx context.Context, sessionID string) (model.Record, error)
	Delete(ctx context.Context, sessionID string) error
}

type storeImpl struct {
	cache cache.RedisCache
	cfg   *config.Config
}

func New(cache cache.RedisCache, cfg *config.Config) Store {
	return &storeImpl{
		cache: cache,
		cfg:   cfg,
	}
}

func (s *storeImpl) Save(ctx context.Context, sessionID string, record model.Record) error {
	key := shared.BuildCacheKey(keyPrefix, sessionID)

	if err := s.cache.Save(ctx, key, record, s.cfg.Session.TTLSeconds); err != nil {
		log.Error().Err(err).Msg("failed to save session record")

		return fmt.Errorf("failed to save session record: %w", err)
	}

	return nil
}

func (s *storeImpl) Get(ctx context.Context, sessionID string) (model.Record, error) {
	var record model.Record

	key := shared.BuildCacheKey(keyPrefix, sessionID)

	if err := s.cache.Get(ctx, key, &record); err != nil {
		if errors.Is(err, cache.Nil) {
			return model.Record{}, ErrNotFound
		}

		return model.Record{}, fmt.Errorf("failed to load session record: %w", err)
	}

	if record.Token == "" {
		return model.Record{}, ErrNotFound
	}

	return record, nil
}

func (s *storeImpl) Delete(ctx context.Context, sessionID string) error {
	key := shared.BuildCacheKey(keyPrefix, sessionID)

	if err := s.cache.Delete(ctx, key); err != nil {
		log.Error().Err(err).Msg("failed to delete session record")

		return fmt.Errorf("failed to delete session record: %w", err)
	}

	return nil
}
