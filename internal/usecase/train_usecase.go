package usecase

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/rail-booking-service/internal/domain"
	"github.com/rail-booking-service/internal/domain/repository"
	"github.com/rail-booking-service/internal/pkg/errors"
	"github.com/rail-booking-service/internal/usecase/dto"
)

type TrainUseCase struct {
	trainRepo     repository.TrainRepository
	trainTypeRepo repository.TrainTypeRepository
	logger        *zap.Logger
}

func NewTrainUseCase(
	trainRepo repository.TrainRepository,
	trainTypeRepo repository.TrainTypeRepository,
	logger *zap.Logger,
) *TrainUseCase {
	return &TrainUseCase{
		trainRepo:     trainRepo,
		trainTypeRepo: trainTypeRepo,
		logger:        logger,
	}
}

func (uc *TrainUseCase) CreateTrain(ctx context.Context, req dto.CreateTrainRequest) (*dto.TrainResponse, error) {
	if err := domain.ValidateTrainName(req.Name); err != nil {
		return nil, err
	}

	trainType, err := uc.trainTypeRepo.GetByID(ctx, req.TrainType)
	if err != nil {
		return nil, err
	}

	train := domain.Train{
		Name:          req.Name,
		CargoNumber:   req.CargoNumber,
		PlacesInCargo: req.PlacesInCargo,
		TrainTypeID:   req.TrainType,
	}
	if err := uc.trainRepo.Create(ctx, &train); err != nil {
		return nil, err
	}

	resp := dto.ConvertTrain(train, trainType.Name)
	return &resp, nil
}

// ListTrains возвращает поезда, опционально отфильтрованные по типам.
// trainTypeParam - список ID через запятую, как в query-параметре.
func (uc *TrainUseCase) ListTrains(ctx context.Context, trainTypeParam string) ([]dto.TrainResponse, error) {
	trainTypeIDs, err := parseIDList(trainTypeParam)
	if err != nil {
		return nil, errors.ErrInvalidRequest.WithDetail(
			"train_type", "Train type filter must be a comma-separated list of IDs",
		)
	}

	trains, err := uc.trainRepo.List(ctx, trainTypeIDs)
	if err != nil {
		return nil, err
	}

	typeNames, err := uc.typeNames(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.TrainResponse, 0, len(trains))
	for _, t := range trains {
		result = append(result, dto.ConvertTrain(t, typeNames[t.TrainTypeID]))
	}

	return result, nil
}

func (uc *TrainUseCase) GetTrain(ctx context.Context, id int64) (*dto.TrainResponse, error) {
	train, err := uc.trainRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	trainType, err := uc.trainTypeRepo.GetByID(ctx, train.TrainTypeID)
	if err != nil {
		return nil, err
	}

	resp := dto.ConvertTrain(*train, trainType.Name)
	return &resp, nil
}

func (uc *TrainUseCase) UpdateTrain(ctx context.Context, id int64, req dto.CreateTrainRequest) (*dto.TrainResponse, error) {
	if err := domain.ValidateTrainName(req.Name); err != nil {
		return nil, err
	}

	trainType, err := uc.trainTypeRepo.GetByID(ctx, req.TrainType)
	if err != nil {
		return nil, err
	}

	train := domain.Train{
		ID:            id,
		Name:          req.Name,
		CargoNumber:   req.CargoNumber,
		PlacesInCargo: req.PlacesInCargo,
		TrainTypeID:   req.TrainType,
	}
	if err := uc.trainRepo.Update(ctx, &train); err != nil {
		return nil, err
	}

	resp := dto.ConvertTrain(train, trainType.Name)
	return &resp, nil
}

func (uc *TrainUseCase) DeleteTrain(ctx context.Context, id int64) error {
	return uc.trainRepo.Delete(ctx, id)
}

func (uc *TrainUseCase) typeNames(ctx context.Context) (map[int64]string, error) {
	types, err := uc.trainTypeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(types))
	for _, t := range types {
		names[t.ID] = t.Name
	}
	return names, nil
}

func parseIDList(param string) ([]int64, error) {
	if param == "" {
		return nil, nil
	}

	parts := strings.Split(param, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
