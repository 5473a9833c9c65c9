package repository

import (
	"context"

	"github.com/rail-booking-service/internal/domain"
)

// StationRepository определяет методы для работы со станциями
type StationRepository interface {
	// Create сохраняет станцию и проставляет ей ID
	Create(ctx context.Context, station *domain.Station) error

	// GetByID возвращает станцию по ID
	GetByID(ctx context.Context, id int64) (*domain.Station, error)

	// List возвращает все станции
	List(ctx context.Context) ([]domain.Station, error)
}
