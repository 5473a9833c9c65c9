package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/rail-booking-service/internal/domain"
)

// MockStationRepository is a mock of StationRepository
type MockStationRepository struct {
	mock.Mock
}

func (m *MockStationRepository) Create(ctx context.Context, station *domain.Station) error {
	args := m.Called(ctx, station)
	return args.Error(0)
}

func (m *MockStationRepository) GetByID(ctx context.Context, id int64) (*domain.Station, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Station), args.Error(1)
}

func (m *MockStationRepository) List(ctx context.Context) ([]domain.Station, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Station), args.Error(1)
}

// MockRouteRepository is a mock of RouteRepository
type MockRouteRepository struct {
	mock.Mock
}

func (m *MockRouteRepository) Create(ctx context.Context, route *domain.Route) error {
	args := m.Called(ctx, route)
	return args.Error(0)
}

func (m *MockRouteRepository) GetByID(ctx context.Context, id int64) (*domain.RouteDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RouteDetail), args.Error(1)
}

func (m *MockRouteRepository) List(ctx context.Context) ([]domain.RouteDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RouteDetail), args.Error(1)
}

// MockTrainTypeRepository is a mock of TrainTypeRepository
type MockTrainTypeRepository struct {
	mock.Mock
}

func (m *MockTrainTypeRepository) Create(ctx context.Context, trainType *domain.TrainType) error {
	args := m.Called(ctx, trainType)
	return args.Error(0)
}

func (m *MockTrainTypeRepository) GetByID(ctx context.Context, id int64) (*domain.TrainType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrainType), args.Error(1)
}

func (m *MockTrainTypeRepository) List(ctx context.Context) ([]domain.TrainType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrainType), args.Error(1)
}

func (m *MockTrainTypeRepository) Update(ctx context.Context, trainType *domain.TrainType) error {
	args := m.Called(ctx, trainType)
	return args.Error(0)
}

// MockTrainRepository is a mock of TrainRepository
type MockTrainRepository struct {
	mock.Mock
}

func (m *MockTrainRepository) Create(ctx context.Context, train *domain.Train) error {
	args := m.Called(ctx, train)
	return args.Error(0)
}

func (m *MockTrainRepository) GetByID(ctx context.Context, id int64) (*domain.Train, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Train), args.Error(1)
}

func (m *MockTrainRepository) List(ctx context.Context, trainTypeIDs []int64) ([]domain.Train, error) {
	args := m.Called(ctx, trainTypeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Train), args.Error(1)
}

func (m *MockTrainRepository) Update(ctx context.Context, train *domain.Train) error {
	args := m.Called(ctx, train)
	return args.Error(0)
}

func (m *MockTrainRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockJourneyRepository is a mock of JourneyRepository
type MockJourneyRepository struct {
	mock.Mock
}

func (m *MockJourneyRepository) Create(ctx context.Context, journey *domain.Journey, crewIDs []int64) error {
	args := m.Called(ctx, journey, crewIDs)
	return args.Error(0)
}

func (m *MockJourneyRepository) GetByID(ctx context.Context, id int64) (*domain.JourneyDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JourneyDetail), args.Error(1)
}

func (m *MockJourneyRepository) List(ctx context.Context, filter domain.JourneyFilter) ([]domain.JourneyDetail, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JourneyDetail), args.Error(1)
}

func (m *MockJourneyRepository) TakenSeats(ctx context.Context, journeyID int64) ([]domain.SeatPosition, error) {
	args := m.Called(ctx, journeyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SeatPosition), args.Error(1)
}

func (m *MockJourneyRepository) TicketCounts(ctx context.Context, journeyIDs []int64) (map[int64]int, error) {
	args := m.Called(ctx, journeyIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]int), args.Error(1)
}

// MockOrderRepository is a mock of OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *domain.Order, claims []domain.TicketClaim) ([]domain.Ticket, error) {
	args := m.Called(ctx, order, claims)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ticket), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, userID string, filter domain.OrderFilter) ([]domain.OrderWithTickets, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderWithTickets), args.Error(1)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, userID string, id int64) (*domain.OrderWithTickets, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderWithTickets), args.Error(1)
}

// MockAvailabilityCache is a mock of AvailabilityCache
type MockAvailabilityCache struct {
	mock.Mock
}

func (m *MockAvailabilityCache) Get(ctx context.Context, journeyID int64) (int, bool, error) {
	args := m.Called(ctx, journeyID)
	return args.Int(0), args.Bool(1), args.Error(2)
}

func (m *MockAvailabilityCache) Set(ctx context.Context, journeyID int64, seats int, ttl time.Duration) error {
	args := m.Called(ctx, journeyID, seats, ttl)
	return args.Error(0)
}

func (m *MockAvailabilityCache) Invalidate(ctx context.Context, journeyIDs ...int64) error {
	callArgs := make([]interface{}, 0, len(journeyIDs)+1)
	callArgs = append(callArgs, ctx)
	for _, id := range journeyIDs {
		callArgs = append(callArgs, id)
	}
	args := m.Called(callArgs...)
	return args.Error(0)
}

// MockGeocoderRepository is a mock of GeocoderRepository
type MockGeocoderRepository struct {
	mock.Mock
}

func (m *MockGeocoderRepository) ReverseGeocode(ctx context.Context, lat, lon float64) (*domain.Address, error) {
	args := m.Called(ctx, lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Address), args.Error(1)
}
