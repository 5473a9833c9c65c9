package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/rail-booking-service/internal/domain"
	"github.com/rail-booking-service/internal/domain/repository"
	"github.com/rail-booking-service/internal/pkg/errors"
	"github.com/rail-booking-service/internal/pkg/utils"
	"github.com/rail-booking-service/internal/usecase/dto"
)

type StationUseCase struct {
	stationRepo repository.StationRepository
	geocoder    repository.GeocoderRepository
	logger      *zap.Logger
}

func NewStationUseCase(
	stationRepo repository.StationRepository,
	geocoder repository.GeocoderRepository,
	logger *zap.Logger,
) *StationUseCase {
	return &StationUseCase{
		stationRepo: stationRepo,
		geocoder:    geocoder,
		logger:      logger,
	}
}

// CreateStation создает станцию, добывая адрес обратным геокодированием.
// Отказ геокодера не фатален: станция сохраняется без адреса.
func (uc *StationUseCase) CreateStation(ctx context.Context, req dto.CreateStationRequest) (*dto.StationResponse, error) {
	if !utils.ValidateCoordinates(req.Latitude, req.Longitude) {
		return nil, errors.ErrInvalidCoordinates
	}

	station := domain.Station{
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}

	address, err := uc.geocoder.ReverseGeocode(ctx, req.Latitude, req.Longitude)
	if err != nil {
		uc.logger.Warn("Reverse geocoding failed, creating station without address",
			zap.String("name", req.Name),
			zap.Error(err))
	} else if address != nil {
		station.Country = &address.Country
		station.City = &address.City
	}

	if err := uc.stationRepo.Create(ctx, &station); err != nil {
		return nil, err
	}

	resp := dto.ConvertStation(station)
	return &resp, nil
}

func (uc *StationUseCase) ListStations(ctx context.Context) ([]dto.StationResponse, error) {
	stations, err := uc.stationRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.StationResponse, 0, len(stations))
	for _, s := range stations {
		result = append(result, dto.ConvertStation(s))
	}

	return result, nil
}

func (uc *StationUseCase) GetStation(ctx context.Context, id int64) (*dto.StationResponse, error) {
	station, err := uc.stationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.ConvertStation(*station)
	return &resp, nil
}
