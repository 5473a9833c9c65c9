package repository

import (
	"context"

	"github.com/rail-booking-service/internal/domain"
)

// OrderRepository определяет методы для работы с заказами
type OrderRepository interface {
	// Create сохраняет заказ и все его билеты одной транзакцией:
	// либо записываются все билеты, либо ни одного. Нарушение уникального
	// констрейнта (journey, cargo, seat) конкурентным заказом откатывает
	// всё и возвращает ErrSeatAlreadyTaken.
	Create(ctx context.Context, order *domain.Order, claims []domain.TicketClaim) ([]domain.Ticket, error)

	// List возвращает заказы владельца. Фильтр по владельцу жёсткий:
	// чужие заказы не возвращаются никогда.
	List(ctx context.Context, userID string, filter domain.OrderFilter) ([]domain.OrderWithTickets, error)

	// GetByID возвращает заказ владельца по ID
	GetByID(ctx context.Context, userID string, id int64) (*domain.OrderWithTickets, error)
}
