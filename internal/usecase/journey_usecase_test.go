package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/rail-booking-service/internal/domain"
	"github.com/rail-booking-service/internal/pkg/errors"
	"github.com/rail-booking-service/internal/usecase"
	"github.com/rail-booking-service/internal/usecase/dto"
)

const testAvailabilityTTL = 5 * time.Second

func journeyDetailFixture(id int64, departure, arrival time.Time) *domain.JourneyDetail {
	return &domain.JourneyDetail{
		Journey: domain.Journey{
			ID:            id,
			RouteID:       1,
			TrainID:       1,
			DepartureTime: departure,
			ArrivalTime:   arrival,
		},
		Route: domain.RouteDetail{
			Route:       domain.Route{ID: 1, SourceID: 1, DestinationID: 2},
			Source:      domain.Station{ID: 1, Name: "Central", Latitude: 50.45, Longitude: 30.52},
			Destination: domain.Station{ID: 2, Name: "Western", Latitude: 49.84, Longitude: 24.03},
		},
		Train: domain.Train{
			ID:            1,
			Name:          "AAA00001",
			CargoNumber:   2,
			PlacesInCargo: 2,
			TrainTypeID:   1,
		},
	}
}

func newJourneyUseCase(
	journeyRepo *MockJourneyRepository,
	routeRepo *MockRouteRepository,
	trainTypeRepo *MockTrainTypeRepository,
	cache *MockAvailabilityCache,
) *usecase.JourneyUseCase {
	return usecase.NewJourneyUseCase(
		journeyRepo, routeRepo, trainTypeRepo, cache, zap.NewNop(), testAvailabilityTTL,
	)
}

func TestJourneyUseCase_CreateJourney(t *testing.T) {
	ctx := context.Background()

	t.Run("departure in the past is rejected", func(t *testing.T) {
		mockJourney := &MockJourneyRepository{}
		mockRoute := &MockRouteRepository{}
		uc := newJourneyUseCase(mockJourney, mockRoute, &MockTrainTypeRepository{}, &MockAvailabilityCache{})

		resp, err := uc.CreateJourney(ctx, dto.CreateJourneyRequest{
			Route:         1,
			Train:         1,
			DepartureTime: time.Date(2020, 1, 1, 8, 0, 0, 0, time.UTC),
			ArrivalTime:   time.Date(2020, 1, 1, 14, 0, 0, 0, time.UTC),
		})

		assert.Nil(t, resp)
		appErr, ok := err.(*errors.AppError)
		assert.True(t, ok)
		assert.Equal(t, "INVALID_TIME_WINDOW", appErr.Code)
		mockJourney.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("departure after arrival is rejected", func(t *testing.T) {
		mockJourney := &MockJourneyRepository{}
		uc := newJourneyUseCase(mockJourney, &MockRouteRepository{}, &MockTrainTypeRepository{}, &MockAvailabilityCache{})

		departure := time.Now().Add(48 * time.Hour)

		resp, err := uc.CreateJourney(ctx, dto.CreateJourneyRequest{
			Route:         1,
			Train:         1,
			DepartureTime: departure,
			ArrivalTime:   departure.Add(-time.Hour),
		})

		assert.Nil(t, resp)
		appErr, ok := err.(*errors.AppError)
		assert.True(t, ok)
		assert.Equal(t, "INVALID_TIME_WINDOW", appErr.Code)
		mockJourney.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown route is rejected before insert", func(t *testing.T) {
		mockJourney := &MockJourneyRepository{}
		mockRoute := &MockRouteRepository{}
		uc := newJourneyUseCase(mockJourney, mockRoute, &MockTrainTypeRepository{}, &MockAvailabilityCache{})

		mockRoute.On("GetByID", ctx, int64(99)).Return(nil, errors.ErrRouteNotFound)

		departure := time.Now().Add(48 * time.Hour)

		resp, err := uc.CreateJourney(ctx, dto.CreateJourneyRequest{
			Route:         99,
			Train:         1,
			DepartureTime: departure,
			ArrivalTime:   departure.Add(6 * time.Hour),
		})

		assert.Nil(t, resp)
		assert.Equal(t, errors.ErrRouteNotFound, err)
		mockJourney.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("schedule conflict propagates from repository", func(t *testing.T) {
		mockJourney := &MockJourneyRepository{}
		mockRoute := &MockRouteRepository{}
		uc := newJourneyUseCase(mockJourney, mockRoute, &MockTrainTypeRepository{}, &MockAvailabilityCache{})

		departure := time.Now().Add(48 * time.Hour)
		detail := journeyDetailFixture(1, departure, departure.Add(6*time.Hour))

		mockRoute.On("GetByID", ctx, int64(1)).Return(&detail.Route, nil)
		mockJourney.On("Create", ctx, mock.Anything, []int64(nil)).
			Return(errors.ErrTrainScheduleConflict)

		resp, err := uc.CreateJourney(ctx, dto.CreateJourneyRequest{
			Route:         1,
			Train:         1,
			DepartureTime: departure,
			ArrivalTime:   departure.Add(6 * time.Hour),
		})

		assert.Nil(t, resp)
		assert.Equal(t, errors.ErrTrainScheduleConflict, err)
	})

	t.Run("new journey starts with full capacity", func(t *testing.T) {
		mockJourney := &MockJourneyRepository{}
		mockRoute := &MockRouteRepository{}
		uc := newJourneyUseCase(mockJourney, mockRoute, &MockTrainTypeRepository{}, &MockAvailabilityCache{})

		departure := time.Now().Add(48 * time.Hour)
		detail := journeyDetailFixture(7, departure, departure.Add(6*time.Hour))

		mockRoute.On("GetByID", ctx, int64(1)).Return(&detail.Route, nil)
		mockJourney.On("Create", ctx, mock.MatchedBy(func(j *domain.Journey) bool {
			return j.RouteID == 1 && j.TrainID == 1
		}), []int64{5}).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Journey).ID = 7
		}).Return(nil)
		mockJourney.On("GetByID", ctx, int64(7)).Return(detail, nil)

		resp, err := uc.CreateJourney(ctx, dto.CreateJourneyRequest{
			Route:         1,
			Train:         1,
			DepartureTime: departure,
			ArrivalTime:   departure.Add(6 * time.Hour),
			Crew:          []int64{5},
		})

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Equal(t, int64(7), resp.ID)
		assert.Equal(t, "Central -> Western", resp.Route)
		assert.Equal(t, 4, resp.TicketsAvailable)
		mockJourney.AssertExpectations(t)
	})
}

func TestJourneyUseCase_ListJourneys(t *testing.T) {
	ctx := context.Background()

	t.Run("availability is capacity minus sold tickets", func(t *testing.T) {
		mockJourney := &MockJourneyRepository{}
		mockCache := &MockAvailabilityCache{}
		uc := newJourneyUseCase(mockJourney, &MockRouteRepository{}, &MockTrainTypeRepository{}, mockCache)

		departure := time.Date(2026, 9, 10, 8, 0, 0, 0, time.UTC)
		detail := journeyDetailFixture(10, departure, departure.Add(6*time.Hour))

		mockJourney.On("List", ctx, domain.JourneyFilter{}).
			Return([]domain.JourneyDetail{*detail}, nil)
		mockJourney.On("TicketCounts", ctx, []int64{10}).
			Return(map[int64]int{10: 3}, nil)
		mockCache.On("Set", ctx, int64(10), 1, testAvailabilityTTL).Return(nil)

		resp, err := uc.ListJourneys(ctx, dto.JourneyListRequest{})

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		// Train AAA00001: 2 cargos x 2 places, 3 tickets sold
		assert.Equal(t, 1, resp[0].TicketsAvailable)
		mockCache.AssertExpectations(t)
	})

	t.Run("journey without tickets has full capacity", func(t *testing.T) {
		mockJourney := &MockJourneyRepository{}
		mockCache := &MockAvailabilityCache{}
		uc := newJourneyUseCase(mockJourney, &MockRouteRepository{}, &MockTrainTypeRepository{}, mockCache)

		departure := time.Date(2026, 9, 10, 8, 0, 0, 0, time.UTC)
		detail := journeyDetailFixture(11, departure, departure.Add(6*time.Hour))

		mockJourney.On("List", ctx, domain.JourneyFilter{}).
			Return([]domain.JourneyDetail{*detail}, nil)
		mockJourney.On("TicketCounts", ctx, []int64{11}).
			Return(map[int64]int{}, nil)
		mockCache.On("Set", ctx, int64(11), 4, testAvailabilityTTL).Return(nil)

		resp, err := uc.ListJourneys(ctx, dto.JourneyListRequest{})

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, 4, resp[0].TicketsAvailable)
	})

	t.Run("filters are passed through", func(t *testing.T) {
		mockJourney := &MockJourneyRepository{}
		uc := newJourneyUseCase(mockJourney, &MockRouteRepository{}, &MockTrainTypeRepository{}, &MockAvailabilityCache{})

		expected := domain.JourneyFilter{
			SourceContains:      "Cen",
			DestinationContains: "Wes",
			DepartureDate:       "2026-09-10",
			DepartureTime:       "08:00",
		}
		mockJourney.On("List", ctx, expected).Return([]domain.JourneyDetail{}, nil)
		mockJourney.On("TicketCounts", ctx, []int64{}).Return(map[int64]int{}, nil)

		resp, err := uc.ListJourneys(ctx, dto.JourneyListRequest{
			Source:      "Cen",
			Destination: "Wes",
			Date:        "2026-09-10",
			Time:        "08:00",
		})

		assert.NoError(t, err)
		assert.Empty(t, resp)
		mockJourney.AssertExpectations(t)
	})

	t.Run("invalid date format", func(t *testing.T) {
		mockJourney := &MockJourneyRepository{}
		uc := newJourneyUseCase(mockJourney, &MockRouteRepository{}, &MockTrainTypeRepository{}, &MockAvailabilityCache{})

		resp, err := uc.ListJourneys(ctx, dto.JourneyListRequest{Date: "2026/09/10"})

		assert.Nil(t, resp)
		appErr, ok := err.(*errors.AppError)
		assert.True(t, ok)
		assert.Equal(t, "INVALID_DATE_FORMAT", appErr.Code)
		mockJourney.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("invalid time format", func(t *testing.T) {
		mockJourney := &MockJourneyRepository{}
		uc := newJourneyUseCase(mockJourney, &MockRouteRepository{}, &MockTrainTypeRepository{}, &MockAvailabilityCache{})

		resp, err := uc.ListJourneys(ctx, dto.JourneyListRequest{
			Date: "2026-09-10",
			Time: "8 o'clock",
		})

		assert.Nil(t, resp)
		appErr, ok := err.(*errors.AppError)
		assert.True(t, ok)
		assert.Equal(t, "INVALID_TIME_FORMAT", appErr.Code)
	})
}

func TestJourneyUseCase_GetJourney(t *testing.T) {
	ctx := context.Background()

	t.Run("detail includes taken seats", func(t *testing.T) {
		mockJourney := &MockJourneyRepository{}
		mockTrainType := &MockTrainTypeRepository{}
		uc := newJourneyUseCase(mockJourney, &MockRouteRepository{}, mockTrainType, &MockAvailabilityCache{})

		departure := time.Date(2026, 9, 10, 8, 0, 0, 0, time.UTC)
		detail := journeyDetailFixture(10, departure, departure.Add(6*time.Hour))
		taken := []domain.SeatPosition{{Cargo: 1, Seat: 1}, {Cargo: 2, Seat: 2}}

		mockJourney.On("GetByID", ctx, int64(10)).Return(detail, nil)
		mockTrainType.On("GetByID", ctx, int64(1)).Return(&domain.TrainType{ID: 1, Name: "Intercity"}, nil)
		mockJourney.On("TakenSeats", ctx, int64(10)).Return(taken, nil)

		resp, err := uc.GetJourney(ctx, 10)

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Equal(t, "Intercity", resp.Train.TrainType)
		assert.Equal(t, 4, resp.Train.Capacity)
		assert.Equal(t, taken, resp.TakenSeats)
	})

	t.Run("not found", func(t *testing.T) {
		mockJourney := &MockJourneyRepository{}
		uc := newJourneyUseCase(mockJourney, &MockRouteRepository{}, &MockTrainTypeRepository{}, &MockAvailabilityCache{})

		mockJourney.On("GetByID", ctx, int64(99)).Return(nil, errors.ErrJourneyNotFound)

		resp, err := uc.GetJourney(ctx, 99)

		assert.Nil(t, resp)
		assert.Equal(t, errors.ErrJourneyNotFound, err)
	})
}

func TestJourneyUseCase_AvailableSeats(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips the database", func(t *testing.T) {
		mockJourney := &MockJourneyRepository{}
		mockCache := &MockAvailabilityCache{}
		uc := newJourneyUseCase(mockJourney, &MockRouteRepository{}, &MockTrainTypeRepository{}, mockCache)

		mockCache.On("Get", ctx, int64(10)).Return(3, true, nil)

		seats, err := uc.AvailableSeats(ctx, 10)

		assert.NoError(t, err)
		assert.Equal(t, 3, seats)
		mockJourney.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("cache miss computes and caches", func(t *testing.T) {
		mockJourney := &MockJourneyRepository{}
		mockCache := &MockAvailabilityCache{}
		uc := newJourneyUseCase(mockJourney, &MockRouteRepository{}, &MockTrainTypeRepository{}, mockCache)

		departure := time.Date(2026, 9, 10, 8, 0, 0, 0, time.UTC)
		detail := journeyDetailFixture(10, departure, departure.Add(6*time.Hour))

		mockCache.On("Get", ctx, int64(10)).Return(0, false, nil)
		mockJourney.On("GetByID", ctx, int64(10)).Return(detail, nil)
		mockJourney.On("TicketCounts", ctx, []int64{10}).Return(map[int64]int{10: 1}, nil)
		mockCache.On("Set", ctx, int64(10), 3, testAvailabilityTTL).Return(nil)

		seats, err := uc.AvailableSeats(ctx, 10)

		assert.NoError(t, err)
		assert.Equal(t, 3, seats)
		mockCache.AssertExpectations(t)
	})
}
