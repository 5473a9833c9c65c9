package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/rail-booking-service/internal/pkg/utils"
	"github.com/rail-booking-service/internal/pkg/validator"
	"github.com/rail-booking-service/internal/usecase"
	"github.com/rail-booking-service/internal/usecase/dto"
)

// StationHandler - обработчик для станций
type StationHandler struct {
	stationUC *usecase.StationUseCase
	logger    *zap.Logger
}

// NewStationHandler - создание нового StationHandler
func NewStationHandler(stationUC *usecase.StationUseCase, logger *zap.Logger) *StationHandler {
	return &StationHandler{
		stationUC: stationUC,
		logger:    logger,
	}
}

// ListStations godoc
// @Summary Список станций
// @Tags Stations
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.StationResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/stations [get]
func (h *StationHandler) ListStations(c *fiber.Ctx) error {
	result, err := h.stationUC.ListStations(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result),
	})
}

// GetStation godoc
// @Summary Станция по ID
// @Tags Stations
// @Produce json
// @Param id path int true "ID станции"
// @Success 200 {object} utils.SuccessResponse{data=dto.StationResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/stations/{id} [get]
func (h *StationHandler) GetStation(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.stationUC.GetStation(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// CreateStation godoc
// @Summary Создание станции
// @Description Создает станцию; адрес добывается обратным геокодированием по координатам
// @Tags Stations
// @Accept json
// @Produce json
// @Param request body dto.CreateStationRequest true "Данные станции"
// @Success 201 {object} utils.SuccessResponse{data=dto.StationResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/stations [post]
func (h *StationHandler) CreateStation(c *fiber.Ctx) error {
	var req dto.CreateStationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.stationUC.CreateStation(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, result)
}
