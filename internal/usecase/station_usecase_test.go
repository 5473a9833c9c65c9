package usecase_test

import (
	"context"
	"testing"

	stderrors "errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/rail-booking-service/internal/domain"
	"github.com/rail-booking-service/internal/pkg/errors"
	"github.com/rail-booking-service/internal/usecase"
	"github.com/rail-booking-service/internal/usecase/dto"
)

func TestStationUseCase_CreateStation(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("address from geocoder", func(t *testing.T) {
		mockStation := &MockStationRepository{}
		mockGeocoder := &MockGeocoderRepository{}
		uc := usecase.NewStationUseCase(mockStation, mockGeocoder, logger)

		mockGeocoder.On("ReverseGeocode", ctx, 50.4501, 30.5234).
			Return(&domain.Address{Country: "Ukraine", City: "Kyiv"}, nil)
		mockStation.On("Create", ctx, mock.MatchedBy(func(s *domain.Station) bool {
			return s.Name == "Central" && s.Country != nil && *s.Country == "Ukraine"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Station).ID = 1
		}).Return(nil)

		resp, err := uc.CreateStation(ctx, dto.CreateStationRequest{
			Name:      "Central",
			Latitude:  50.4501,
			Longitude: 30.5234,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Ukraine", resp.Country)
		assert.Equal(t, "Kyiv", resp.City)
		mockStation.AssertExpectations(t)
	})

	t.Run("geocoder failure is not fatal", func(t *testing.T) {
		mockStation := &MockStationRepository{}
		mockGeocoder := &MockGeocoderRepository{}
		uc := usecase.NewStationUseCase(mockStation, mockGeocoder, logger)

		mockGeocoder.On("ReverseGeocode", ctx, 50.4501, 30.5234).
			Return(nil, stderrors.New("connection refused"))
		mockStation.On("Create", ctx, mock.MatchedBy(func(s *domain.Station) bool {
			return s.Country == nil && s.City == nil
		})).Return(nil)

		resp, err := uc.CreateStation(ctx, dto.CreateStationRequest{
			Name:      "Central",
			Latitude:  50.4501,
			Longitude: 30.5234,
		})

		assert.NoError(t, err)
		assert.Empty(t, resp.Country)
		assert.Empty(t, resp.City)
		mockStation.AssertExpectations(t)
	})

	t.Run("geocoder miss leaves address empty", func(t *testing.T) {
		mockStation := &MockStationRepository{}
		mockGeocoder := &MockGeocoderRepository{}
		uc := usecase.NewStationUseCase(mockStation, mockGeocoder, logger)

		mockGeocoder.On("ReverseGeocode", ctx, 0.0, 0.0).Return(nil, nil)
		mockStation.On("Create", ctx, mock.MatchedBy(func(s *domain.Station) bool {
			return s.Country == nil && s.City == nil
		})).Return(nil)

		resp, err := uc.CreateStation(ctx, dto.CreateStationRequest{
			Name:      "Sea Platform",
			Latitude:  0,
			Longitude: 0,
		})

		assert.NoError(t, err)
		assert.Empty(t, resp.Country)
	})

	t.Run("invalid coordinates rejected before geocoding", func(t *testing.T) {
		mockStation := &MockStationRepository{}
		mockGeocoder := &MockGeocoderRepository{}
		uc := usecase.NewStationUseCase(mockStation, mockGeocoder, logger)

		resp, err := uc.CreateStation(ctx, dto.CreateStationRequest{
			Name:      "Nowhere",
			Latitude:  91,
			Longitude: 0,
		})

		assert.Nil(t, resp)
		assert.Equal(t, errors.ErrInvalidCoordinates, err)
		mockGeocoder.AssertNotCalled(t, "ReverseGeocode", mock.Anything, mock.Anything, mock.Anything)
		mockStation.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
