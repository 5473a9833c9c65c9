package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/rail-booking-service/internal/domain"
	"github.com/rail-booking-service/internal/domain/repository"
	"github.com/rail-booking-service/internal/usecase/dto"
)

type RouteUseCase struct {
	routeRepo   repository.RouteRepository
	stationRepo repository.StationRepository
	logger      *zap.Logger
}

func NewRouteUseCase(
	routeRepo repository.RouteRepository,
	stationRepo repository.StationRepository,
	logger *zap.Logger,
) *RouteUseCase {
	return &RouteUseCase{
		routeRepo:   routeRepo,
		stationRepo: stationRepo,
		logger:      logger,
	}
}

// CreateRoute создает маршрут. Совпадение станций отклоняется до обращения
// к хранилищу; дистанция нигде не сохраняется - она производная от координат.
func (uc *RouteUseCase) CreateRoute(ctx context.Context, req dto.CreateRouteRequest) (*dto.RouteDetailResponse, error) {
	if err := domain.ValidateRouteStations(req.Source, req.Destination); err != nil {
		return nil, err
	}

	source, err := uc.stationRepo.GetByID(ctx, req.Source)
	if err != nil {
		return nil, err
	}
	destination, err := uc.stationRepo.GetByID(ctx, req.Destination)
	if err != nil {
		return nil, err
	}

	route := domain.Route{
		SourceID:      req.Source,
		DestinationID: req.Destination,
	}
	if err := uc.routeRepo.Create(ctx, &route); err != nil {
		return nil, err
	}

	resp := dto.ConvertRouteDetail(domain.RouteDetail{
		Route:       route,
		Source:      *source,
		Destination: *destination,
	})
	return &resp, nil
}

func (uc *RouteUseCase) ListRoutes(ctx context.Context) ([]dto.RouteListItem, error) {
	routes, err := uc.routeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.RouteListItem, 0, len(routes))
	for _, r := range routes {
		result = append(result, dto.ConvertRouteListItem(r))
	}

	return result, nil
}

func (uc *RouteUseCase) GetRoute(ctx context.Context, id int64) (*dto.RouteDetailResponse, error) {
	route, err := uc.routeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.ConvertRouteDetail(*route)
	return &resp, nil
}
