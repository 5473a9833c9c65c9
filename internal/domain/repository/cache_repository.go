package repository

import (
	"context"
	"time"
)

// AvailabilityCache - совещательный кэш количества свободных мест.
// Значения могут устаревать между чтением и записью; путь коммита заказа
// кэш не читает вообще.
type AvailabilityCache interface {
	// Get возвращает закэшированное значение и признак попадания
	Get(ctx context.Context, journeyID int64) (int, bool, error)

	Set(ctx context.Context, journeyID int64, seats int, ttl time.Duration) error

	// Invalidate сбрасывает значения после коммита заказа
	Invalidate(ctx context.Context, journeyIDs ...int64) error
}
