package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/rail-booking-service/internal/domain/repository"
	"github.com/rail-booking-service/internal/pkg/errors"
)

type availabilityCache struct {
	client *redis.Client
	logger *zap.Logger
}

// NewAvailabilityCache - совещательный кэш свободных мест по рейсам.
// Короткий TTL: значение может устареть сразу после чтения, защиту от
// овербукинга даёт не кэш, а уникальный констрейнт в транзакции заказа.
func NewAvailabilityCache(r *Redis) repository.AvailabilityCache {
	return &availabilityCache{
		client: r.client,
		logger: r.logger,
	}
}

func availabilityKey(journeyID int64) string {
	return fmt.Sprintf("journey:%d:tickets_available", journeyID)
}

func (c *availabilityCache) Get(ctx context.Context, journeyID int64) (int, bool, error) {
	seats, err := c.client.Get(ctx, availabilityKey(journeyID)).Int()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		c.logger.Warn("Failed to read availability from cache",
			zap.Int64("journey_id", journeyID), zap.Error(err))
		return 0, false, errors.ErrCacheError
	}

	return seats, true, nil
}

func (c *availabilityCache) Set(ctx context.Context, journeyID int64, seats int, ttl time.Duration) error {
	if err := c.client.Set(ctx, availabilityKey(journeyID), seats, ttl).Err(); err != nil {
		c.logger.Warn("Failed to cache availability",
			zap.Int64("journey_id", journeyID), zap.Error(err))
		return errors.ErrCacheError
	}

	return nil
}

func (c *availabilityCache) Invalidate(ctx context.Context, journeyIDs ...int64) error {
	if len(journeyIDs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(journeyIDs))
	for _, id := range journeyIDs {
		keys = append(keys, availabilityKey(id))
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("Failed to invalidate availability cache", zap.Error(err))
		return errors.ErrCacheError
	}

	return nil
}
