package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/rail-booking-service/internal/domain"
	"github.com/rail-booking-service/internal/domain/repository"
	"github.com/rail-booking-service/internal/usecase/dto"
)

type TrainTypeUseCase struct {
	trainTypeRepo repository.TrainTypeRepository
	logger        *zap.Logger
}

func NewTrainTypeUseCase(trainTypeRepo repository.TrainTypeRepository, logger *zap.Logger) *TrainTypeUseCase {
	return &TrainTypeUseCase{
		trainTypeRepo: trainTypeRepo,
		logger:        logger,
	}
}

func (uc *TrainTypeUseCase) CreateTrainType(ctx context.Context, req dto.CreateTrainTypeRequest) (*domain.TrainType, error) {
	trainType := domain.TrainType{Name: req.Name}
	if err := uc.trainTypeRepo.Create(ctx, &trainType); err != nil {
		return nil, err
	}

	return &trainType, nil
}

func (uc *TrainTypeUseCase) ListTrainTypes(ctx context.Context) ([]domain.TrainType, error) {
	return uc.trainTypeRepo.List(ctx)
}

func (uc *TrainTypeUseCase) UpdateTrainType(ctx context.Context, id int64, req dto.UpdateTrainTypeRequest) (*domain.TrainType, error) {
	trainType := domain.TrainType{ID: id, Name: req.Name}
	if err := uc.trainTypeRepo.Update(ctx, &trainType); err != nil {
		return nil, err
	}

	return &trainType, nil
}
