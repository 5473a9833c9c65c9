package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/rail-booking-service/internal/domain"
	"github.com/rail-booking-service/internal/domain/repository"
	"github.com/rail-booking-service/internal/pkg/errors"
	"github.com/rail-booking-service/internal/usecase/dto"
)

type OrderUseCase struct {
	orderRepo         repository.OrderRepository
	journeyRepo       repository.JourneyRepository
	availabilityCache repository.AvailabilityCache
	logger            *zap.Logger
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	journeyRepo repository.JourneyRepository,
	availabilityCache repository.AvailabilityCache,
	logger *zap.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:         orderRepo,
		journeyRepo:       journeyRepo,
		availabilityCache: availabilityCache,
		logger:            logger,
	}
}

// PlaceOrder оформляет заказ на места. Владелец передаётся явным аргументом,
// никакого неявного "текущего пользователя" нет. Каждая заявка проверяется
// на диапазоны вагона и места; первая же ошибка отменяет весь заказ -
// частичных коммитов не бывает. Занятость мест проверяет не этот код, а
// уникальный констрейнт в транзакции репозитория.
func (uc *OrderUseCase) PlaceOrder(ctx context.Context, userID string, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if userID == "" {
		return nil, errors.ErrUnauthorized
	}
	if len(req.Tickets) == 0 {
		return nil, errors.ErrEmptyOrder
	}

	claims := make([]domain.TicketClaim, 0, len(req.Tickets))
	journeys := make(map[int64]*domain.JourneyDetail, len(req.Tickets))

	for _, ticket := range req.Tickets {
		journey, ok := journeys[ticket.Journey]
		if !ok {
			var err error
			journey, err = uc.journeyRepo.GetByID(ctx, ticket.Journey)
			if err != nil {
				return nil, err
			}
			journeys[ticket.Journey] = journey
		}

		if err := domain.ValidateSeat(ticket.Seat, journey.Train.PlacesInCargo); err != nil {
			return nil, err
		}
		if err := domain.ValidateCargo(ticket.Cargo, journey.Train.CargoNumber); err != nil {
			return nil, err
		}

		claims = append(claims, domain.TicketClaim{
			Cargo:     ticket.Cargo,
			Seat:      ticket.Seat,
			JourneyID: ticket.Journey,
		})
	}

	order := domain.Order{UserID: userID}
	tickets, err := uc.orderRepo.Create(ctx, &order, claims)
	if err != nil {
		return nil, err
	}

	journeyIDs := make([]int64, 0, len(journeys))
	for id := range journeys {
		journeyIDs = append(journeyIDs, id)
	}
	if err := uc.availabilityCache.Invalidate(ctx, journeyIDs...); err != nil {
		uc.logger.Debug("Skipping availability cache invalidation", zap.Error(err))
	}

	resp := dto.ConvertOrder(order, tickets)
	return &resp, nil
}

// ListOrders возвращает только заказы запрашивающего владельца.
// Дата/время применяются транзитивно через билет -> рейс.
func (uc *OrderUseCase) ListOrders(ctx context.Context, userID string, req dto.OrderListRequest) ([]dto.OrderResponse, error) {
	if userID == "" {
		return nil, errors.ErrUnauthorized
	}

	date, timeOfDay, err := validateDateTimeFilter(req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	orders, err := uc.orderRepo.List(ctx, userID, domain.OrderFilter{
		DepartureDate: date,
		DepartureTime: timeOfDay,
	})
	if err != nil {
		return nil, err
	}

	result := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, dto.ConvertOrder(o.Order, o.Tickets))
	}

	return result, nil
}

func (uc *OrderUseCase) GetOrder(ctx context.Context, userID string, id int64) (*dto.OrderResponse, error) {
	if userID == "" {
		return nil, errors.ErrUnauthorized
	}

	order, err := uc.orderRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	resp := dto.ConvertOrder(order.Order, order.Tickets)
	return &resp, nil
}
