package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/excursion-service/internal/domain/repository"
	"github.com/excursion-service/internal/itinerary"
	"github.com/excursion-service/internal/pkg/errors"
)

const draftKeyPrefix = "draft:session:"

type draftRepository struct {
	client *redis.Client
	logger *zap.Logger
	ttl    time.Duration
}

// NewDraftRepository создаёт хранилище сессий редактирования черновиков.
// Каждая сессия хранится одним JSON-документом с TTL, обращение к
// сессии продлевает её жизнь.
func NewDraftRepository(redis *Redis, ttl time.Duration) repository.DraftRepository {
	return &draftRepository{
		client: redis.Client(),
		logger: redis.logger,
		ttl:    ttl,
	}
}

func (r *draftRepository) Get(ctx context.Context, sessionID string) (*itinerary.Draft, error) {
	key := draftKeyPrefix + sessionID

	data, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, errors.ErrDraftNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get draft session", zap.String("session_id", sessionID), zap.Error(err))
		return nil, errors.ErrCacheError
	}

	var draft itinerary.Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		r.logger.Error("Failed to unmarshal draft session", zap.String("session_id", sessionID), zap.Error(err))
		return nil, errors.ErrCacheError
	}

	// продлеваем сессию при каждом чтении
	if err := r.client.Expire(ctx, key, r.ttl).Err(); err != nil {
		r.logger.Warn("Failed to extend draft session TTL", zap.String("session_id", sessionID), zap.Error(err))
	}

	return &draft, nil
}

func (r *draftRepository) Save(ctx context.Context, sessionID string, draft *itinerary.Draft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		r.logger.Error("Failed to marshal draft session", zap.String("session_id", sessionID), zap.Error(err))
		return fmt.Errorf("draft marshal error: %w", err)
	}

	if err := r.client.Set(ctx, draftKeyPrefix+sessionID, data, r.ttl).Err(); err != nil {
		r.logger.Error("Failed to save draft session", zap.String("session_id", sessionID), zap.Error(err))
		return errors.ErrCacheError
	}
	return nil
}

func (r *draftRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, draftKeyPrefix+sessionID).Err(); err != nil {
		r.logger.Error("Failed to delete draft session", zap.String("session_id", sessionID), zap.Error(err))
		return errors.ErrCacheError
	}
	return nil
}
