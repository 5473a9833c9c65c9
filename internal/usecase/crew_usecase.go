package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/rail-booking-service/internal/domain"
	"github.com/rail-booking-service/internal/domain/repository"
	"github.com/rail-booking-service/internal/usecase/dto"
)

type CrewUseCase struct {
	crewRepo repository.CrewRepository
	logger   *zap.Logger
}

func NewCrewUseCase(crewRepo repository.CrewRepository, logger *zap.Logger) *CrewUseCase {
	return &CrewUseCase{
		crewRepo: crewRepo,
		logger:   logger,
	}
}

func (uc *CrewUseCase) CreateCrew(ctx context.Context, req dto.CreateCrewRequest) (*domain.Crew, error) {
	crew := domain.Crew{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if err := uc.crewRepo.Create(ctx, &crew); err != nil {
		return nil, err
	}

	return &crew, nil
}

func (uc *CrewUseCase) GetCrew(ctx context.Context, id int64) (*domain.Crew, error) {
	return uc.crewRepo.GetByID(ctx, id)
}

func (uc *CrewUseCase) ListCrew(ctx context.Context) ([]domain.Crew, error) {
	return uc.crewRepo.List(ctx)
}

func (uc *CrewUseCase) UpdateCrew(ctx context.Context, id int64, req dto.CreateCrewRequest) (*domain.Crew, error) {
	crew := domain.Crew{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if err := uc.crewRepo.Update(ctx, &crew); err != nil {
		return nil, err
	}

	return &crew, nil
}

func (uc *CrewUseCase) DeleteCrew(ctx context.Context, id int64) error {
	return uc.crewRepo.Delete(ctx, id)
}
