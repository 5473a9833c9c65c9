package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/rail-booking-service/internal/domain"
	"github.com/rail-booking-service/internal/domain/repository"
	"github.com/rail-booking-service/internal/pkg/errors"
	"github.com/rail-booking-service/internal/repository/postgres/testhelpers"
)

// StationRepositoryTestSuite tests StationRepository and RouteRepository together:
// routes are meaningless without stations
type StationRepositoryTestSuite struct {
	suite.Suite
	testDB      *testhelpers.TestDB
	stationRepo repository.StationRepository
	routeRepo   repository.RouteRepository
	ctx         context.Context
}

// SetupSuite runs once before all tests in the suite
func (s *StationRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	// Apply migrations (skip if tables already exist)
	_ = testhelpers.ApplyMigrations(
		s.testDB.DB.DB,
		"../../../migrations",
	)

	s.stationRepo = testhelpers.NewStationRepositoryForTest(s.testDB.DB, s.testDB.Logger)
	s.routeRepo = testhelpers.NewRouteRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

// TearDownSuite runs once after all tests in the suite
func (s *StationRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

// SetupTest runs before each test
func (s *StationRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	err := s.testDB.Cleanup(s.ctx)
	s.NoError(err, "Failed to cleanup test database")
}

// ============================================================================
// Station Tests
// ============================================================================

func (s *StationRepositoryTestSuite) TestCreateStation_WithAddress() {
	country := "Ukraine"
	city := "Kyiv"
	station := domain.Station{
		Name:      "Central",
		Latitude:  50.4501,
		Longitude: 30.5234,
		Country:   &country,
		City:      &city,
	}

	err := s.stationRepo.Create(s.ctx, &station)

	s.NoError(err)
	s.NotZero(station.ID)
	s.False(station.CreatedAt.IsZero())

	found, err := s.stationRepo.GetByID(s.ctx, station.ID)
	s.NoError(err)
	s.Equal("Central", found.Name)
	s.NotNil(found.Country)
	s.Equal("Ukraine", *found.Country)
}

func (s *StationRepositoryTestSuite) TestCreateStation_DuplicateName() {
	station := domain.Station{Name: "Central", Latitude: 50.4501, Longitude: 30.5234}
	s.Require().NoError(s.stationRepo.Create(s.ctx, &station))

	duplicate := domain.Station{Name: "Central", Latitude: 49.8397, Longitude: 24.0297}
	err := s.stationRepo.Create(s.ctx, &duplicate)

	s.Error(err)
	appErr, ok := err.(*errors.AppError)
	s.True(ok)
	s.Equal("STATION_ALREADY_EXISTS", appErr.Code)
}

func (s *StationRepositoryTestSuite) TestGetStation_NotFound() {
	_, err := s.stationRepo.GetByID(s.ctx, 999999)

	s.Error(err)
	appErr, ok := err.(*errors.AppError)
	s.True(ok)
	s.Equal("STATION_NOT_FOUND", appErr.Code)
}

func (s *StationRepositoryTestSuite) TestListStations_OrderedByName() {
	for _, name := range []string{"Western", "Central", "Eastern"} {
		station := domain.Station{Name: name, Latitude: 50, Longitude: 30}
		s.Require().NoError(s.stationRepo.Create(s.ctx, &station))
	}

	stations, err := s.stationRepo.List(s.ctx)

	s.NoError(err)
	s.Len(stations, 3)
	s.Equal("Central", stations[0].Name)
	s.Equal("Eastern", stations[1].Name)
	s.Equal("Western", stations[2].Name)
}

// ============================================================================
// Route Tests
// ============================================================================

func (s *StationRepositoryTestSuite) seedStationPair() (int64, int64) {
	sourceID, err := testhelpers.SeedStation(s.testDB.DB, "Central", 50.4501, 30.5234)
	s.Require().NoError(err)
	destID, err := testhelpers.SeedStation(s.testDB.DB, "Western", 49.8397, 24.0297)
	s.Require().NoError(err)
	return sourceID, destID
}

func (s *StationRepositoryTestSuite) TestCreateRoute_AndGet() {
	sourceID, destID := s.seedStationPair()

	route := domain.Route{SourceID: sourceID, DestinationID: destID}
	err := s.routeRepo.Create(s.ctx, &route)

	s.NoError(err)
	s.NotZero(route.ID)

	detail, err := s.routeRepo.GetByID(s.ctx, route.ID)
	s.NoError(err)
	s.Equal("Central", detail.Source.Name)
	s.Equal("Western", detail.Destination.Name)
}

func (s *StationRepositoryTestSuite) TestCreateRoute_DuplicatePair() {
	sourceID, destID := s.seedStationPair()

	first := domain.Route{SourceID: sourceID, DestinationID: destID}
	s.Require().NoError(s.routeRepo.Create(s.ctx, &first))

	duplicate := domain.Route{SourceID: sourceID, DestinationID: destID}
	err := s.routeRepo.Create(s.ctx, &duplicate)

	s.Error(err)
	appErr, ok := err.(*errors.AppError)
	s.True(ok)
	s.Equal("ROUTE_ALREADY_EXISTS", appErr.Code)
}

func (s *StationRepositoryTestSuite) TestCreateRoute_ReversePairAllowed() {
	sourceID, destID := s.seedStationPair()

	forward := domain.Route{SourceID: sourceID, DestinationID: destID}
	s.Require().NoError(s.routeRepo.Create(s.ctx, &forward))

	// Opposite direction is a different route
	reverse := domain.Route{SourceID: destID, DestinationID: sourceID}
	s.NoError(s.routeRepo.Create(s.ctx, &reverse))
}

func (s *StationRepositoryTestSuite) TestGetRoute_NotFound() {
	_, err := s.routeRepo.GetByID(s.ctx, 999999)

	s.Error(err)
	appErr, ok := err.(*errors.AppError)
	s.True(ok)
	s.Equal("ROUTE_NOT_FOUND", appErr.Code)
}

func TestStationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(StationRepositoryTestSuite))
}
