package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/rail-booking-service/internal/domain"
	"github.com/rail-booking-service/internal/domain/repository"
	"github.com/rail-booking-service/internal/usecase/dto"
)

type JourneyUseCase struct {
	journeyRepo       repository.JourneyRepository
	routeRepo         repository.RouteRepository
	trainTypeRepo     repository.TrainTypeRepository
	availabilityCache repository.AvailabilityCache
	logger            *zap.Logger
	availabilityTTL   time.Duration

	// now - источник текущего времени для проверки окна рейса
	now func() time.Time
}

func NewJourneyUseCase(
	journeyRepo repository.JourneyRepository,
	routeRepo repository.RouteRepository,
	trainTypeRepo repository.TrainTypeRepository,
	availabilityCache repository.AvailabilityCache,
	logger *zap.Logger,
	availabilityTTL time.Duration,
) *JourneyUseCase {
	return &JourneyUseCase{
		journeyRepo:       journeyRepo,
		routeRepo:         routeRepo,
		trainTypeRepo:     trainTypeRepo,
		availabilityCache: availabilityCache,
		logger:            logger,
		availabilityTTL:   availabilityTTL,
		now:               time.Now,
	}
}

// CreateJourney создает рейс. Временное окно проверяется здесь, пересечение
// расписаний - в репозитории, в одной транзакции со вставкой: два конкурентных
// создания рейса для одного поезда - та же гонка, что и выкуп места.
func (uc *JourneyUseCase) CreateJourney(ctx context.Context, req dto.CreateJourneyRequest) (*dto.JourneyListItem, error) {
	if err := domain.ValidateJourneyTime(req.DepartureTime, req.ArrivalTime, uc.now()); err != nil {
		return nil, err
	}

	if _, err := uc.routeRepo.GetByID(ctx, req.Route); err != nil {
		return nil, err
	}

	journey := domain.Journey{
		RouteID:       req.Route,
		TrainID:       req.Train,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
	}
	if err := uc.journeyRepo.Create(ctx, &journey, req.Crew); err != nil {
		return nil, err
	}

	detail, err := uc.journeyRepo.GetByID(ctx, journey.ID)
	if err != nil {
		return nil, err
	}

	// Новый рейс: билетов ещё нет, доступна вся вместимость
	item := dto.ConvertJourneyListItem(*detail, detail.Train.Capacity())
	return &item, nil
}

// ListJourneys возвращает рейсы по фильтру с количеством свободных мест.
// Значения tickets_available совещательные: они могут устареть между
// чтением и оформлением заказа.
func (uc *JourneyUseCase) ListJourneys(ctx context.Context, req dto.JourneyListRequest) ([]dto.JourneyListItem, error) {
	date, timeOfDay, err := validateDateTimeFilter(req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	journeys, err := uc.journeyRepo.List(ctx, domain.JourneyFilter{
		SourceContains:      req.Source,
		DestinationContains: req.Destination,
		DepartureDate:       date,
		DepartureTime:       timeOfDay,
	})
	if err != nil {
		return nil, err
	}

	journeyIDs := make([]int64, 0, len(journeys))
	for _, j := range journeys {
		journeyIDs = append(journeyIDs, j.ID)
	}

	counts, err := uc.journeyRepo.TicketCounts(ctx, journeyIDs)
	if err != nil {
		return nil, err
	}

	result := make([]dto.JourneyListItem, 0, len(journeys))
	for _, j := range journeys {
		available := j.Train.Capacity() - counts[j.ID]
		uc.cacheAvailability(ctx, j.ID, available)
		result = append(result, dto.ConvertJourneyListItem(j, available))
	}

	return result, nil
}

func (uc *JourneyUseCase) GetJourney(ctx context.Context, id int64) (*dto.JourneyDetailResponse, error) {
	detail, err := uc.journeyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	trainType, err := uc.trainTypeRepo.GetByID(ctx, detail.Train.TrainTypeID)
	if err != nil {
		return nil, err
	}

	takenSeats, err := uc.journeyRepo.TakenSeats(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.ConvertJourneyDetail(*detail, trainType.Name, takenSeats)
	return &resp, nil
}

// AvailableSeats возвращает количество свободных мест рейса:
// вместимость поезда минус проданные билеты. Всегда вычисляется, нигде не
// хранится. Значение совещательное даже при попадании в кэш: гарантию от
// овербукинга даёт уникальный констрейнт в транзакции заказа.
func (uc *JourneyUseCase) AvailableSeats(ctx context.Context, journeyID int64) (int, error) {
	if seats, hit, err := uc.availabilityCache.Get(ctx, journeyID); err == nil && hit {
		return seats, nil
	}

	detail, err := uc.journeyRepo.GetByID(ctx, journeyID)
	if err != nil {
		return 0, err
	}

	counts, err := uc.journeyRepo.TicketCounts(ctx, []int64{journeyID})
	if err != nil {
		return 0, err
	}

	available := detail.Train.Capacity() - counts[journeyID]
	uc.cacheAvailability(ctx, journeyID, available)

	return available, nil
}

func (uc *JourneyUseCase) cacheAvailability(ctx context.Context, journeyID int64, seats int) {
	if err := uc.availabilityCache.Set(ctx, journeyID, seats, uc.availabilityTTL); err != nil {
		uc.logger.Debug("Skipping availability cache write", zap.Int64("journey_id", journeyID))
	}
}
