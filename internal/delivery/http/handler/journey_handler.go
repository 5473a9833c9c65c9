package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/rail-booking-service/internal/pkg/utils"
	"github.com/rail-booking-service/internal/pkg/validator"
	"github.com/rail-booking-service/internal/usecase"
	"github.com/rail-booking-service/internal/usecase/dto"
)

// JourneyHandler - обработчик для рейсов
type JourneyHandler struct {
	journeyUC *usecase.JourneyUseCase
	logger    *zap.Logger
}

// NewJourneyHandler - создание нового JourneyHandler
func NewJourneyHandler(journeyUC *usecase.JourneyUseCase, logger *zap.Logger) *JourneyHandler {
	return &JourneyHandler{
		journeyUC: journeyUC,
		logger:    logger,
	}
}

// ListJourneys godoc
// @Summary Список рейсов
// @Description Возвращает рейсы с количеством свободных мест; фильтры по станциям и дате отправления
// @Tags Journeys
// @Produce json
// @Param source query string false "Подстрока имени станции отправления"
// @Param destination query string false "Подстрока имени станции прибытия"
// @Param date query string false "Дата отправления, YYYY-MM-DD"
// @Param time query string false "Время отправления, HH:MM (учитывается только вместе с date)"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.JourneyListItem}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/journeys [get]
func (h *JourneyHandler) ListJourneys(c *fiber.Ctx) error {
	req := dto.JourneyListRequest{
		Source:      c.Query("source"),
		Destination: c.Query("destination"),
		Date:        c.Query("date"),
		Time:        c.Query("time"),
	}

	result, err := h.journeyUC.ListJourneys(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result),
	})
}

// GetJourney godoc
// @Summary Рейс по ID
// @Description Возвращает рейс с полным маршрутом, экипажем и списком занятых мест
// @Tags Journeys
// @Produce json
// @Param id path int true "ID рейса"
// @Success 200 {object} utils.SuccessResponse{data=dto.JourneyDetailResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/journeys/{id} [get]
func (h *JourneyHandler) GetJourney(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.journeyUC.GetJourney(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// CreateJourney godoc
// @Summary Создание рейса
// @Description Создает рейс, проверяя окно времени и пересечения расписания поезда
// @Tags Journeys
// @Accept json
// @Produce json
// @Param request body dto.CreateJourneyRequest true "Данные рейса"
// @Success 201 {object} utils.SuccessResponse{data=dto.JourneyListItem}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/journeys [post]
func (h *JourneyHandler) CreateJourney(c *fiber.Ctx) error {
	var req dto.CreateJourneyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.journeyUC.CreateJourney(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, result)
}
