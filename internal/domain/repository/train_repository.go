package repository

import (
	"context"

	"github.com/rail-booking-service/internal/domain"
)

// TrainTypeRepository определяет методы для работы с типами поездов
type TrainTypeRepository interface {
	Create(ctx context.Context, trainType *domain.TrainType) error
	GetByID(ctx context.Context, id int64) (*domain.TrainType, error)
	List(ctx context.Context) ([]domain.TrainType, error)
	Update(ctx context.Context, trainType *domain.TrainType) error
}

// TrainRepository определяет методы для работы с подвижным составом
type TrainRepository interface {
	Create(ctx context.Context, train *domain.Train) error

	GetByID(ctx context.Context, id int64) (*domain.Train, error)

	// List возвращает поезда, опционально отфильтрованные по типам
	List(ctx context.Context, trainTypeIDs []int64) ([]domain.Train, error)

	Update(ctx context.Context, train *domain.Train) error

	Delete(ctx context.Context, id int64) error
}
