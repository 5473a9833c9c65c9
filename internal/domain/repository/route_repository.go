package repository

import (
	"context"

	"github.com/rail-booking-service/internal/domain"
)

// RouteRepository определяет методы для работы с маршрутами
type RouteRepository interface {
	// Create сохраняет маршрут и проставляет ему ID.
	// Дубликат пары (source, destination) возвращает ErrRouteAlreadyExists.
	Create(ctx context.Context, route *domain.Route) error

	// GetByID возвращает маршрут вместе со станциями
	GetByID(ctx context.Context, id int64) (*domain.RouteDetail, error)

	// List возвращает все маршруты вместе со станциями
	List(ctx context.Context) ([]domain.RouteDetail, error)
}
