package repository

import (
	"context"

	"github.com/rail-booking-service/internal/domain"
)

// CrewRepository определяет методы для работы с экипажем
type CrewRepository interface {
	Create(ctx context.Context, crew *domain.Crew) error
	GetByID(ctx context.Context, id int64) (*domain.Crew, error)
	List(ctx context.Context) ([]domain.Crew, error)
	Update(ctx context.Context, crew *domain.Crew) error
	Delete(ctx context.Context, id int64) error
}
