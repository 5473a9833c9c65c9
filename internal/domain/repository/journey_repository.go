package repository

import (
	"context"

	"github.com/rail-booking-service/internal/domain"
)

// JourneyRepository определяет методы для работы с рейсами
type JourneyRepository interface {
	// Create сохраняет рейс и связки с экипажем в одной транзакции.
	// Строка поезда блокируется (SELECT ... FOR UPDATE), затем выполняется
	// инклюзивная проверка пересечения окон: два конкурентных создания рейса
	// для одного поезда - та же гонка, что и выкуп места, и защищается так же.
	// При пересечении возвращает ErrTrainScheduleConflict.
	Create(ctx context.Context, journey *domain.Journey, crewIDs []int64) error

	// GetByID возвращает рейс с маршрутом, поездом и экипажем
	GetByID(ctx context.Context, id int64) (*domain.JourneyDetail, error)

	// List возвращает рейсы по фильтру. Результат DISTINCT: join-фильтры
	// по станциям могут размножать строки.
	List(ctx context.Context, filter domain.JourneyFilter) ([]domain.JourneyDetail, error)

	// TakenSeats возвращает занятые места рейса
	TakenSeats(ctx context.Context, journeyID int64) ([]domain.SeatPosition, error)

	// TicketCounts возвращает количество проданных билетов по рейсам
	// одним запросом. Значения совещательные: между чтением и записью
	// счётчик может устареть, финальную защиту даёт уникальный констрейнт.
	TicketCounts(ctx context.Context, journeyIDs []int64) (map[int64]int, error)
}
