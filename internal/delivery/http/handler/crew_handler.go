package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/rail-booking-service/internal/pkg/utils"
	"github.com/rail-booking-service/internal/pkg/validator"
	"github.com/rail-booking-service/internal/usecase"
	"github.com/rail-booking-service/internal/usecase/dto"
)

// CrewHandler - обработчик для экипажа
type CrewHandler struct {
	crewUC *usecase.CrewUseCase
	logger *zap.Logger
}

// NewCrewHandler - создание нового CrewHandler
func NewCrewHandler(crewUC *usecase.CrewUseCase, logger *zap.Logger) *CrewHandler {
	return &CrewHandler{
		crewUC: crewUC,
		logger: logger,
	}
}

// ListCrew godoc
// @Summary Список членов экипажа
// @Tags Crew
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Crew}
// @Router /api/v1/crews [get]
func (h *CrewHandler) ListCrew(c *fiber.Ctx) error {
	result, err := h.crewUC.ListCrew(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result),
	})
}

// GetCrew godoc
// @Summary Член экипажа по ID
// @Tags Crew
// @Produce json
// @Param id path int true "ID члена экипажа"
// @Success 200 {object} utils.SuccessResponse{data=domain.Crew}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/crews/{id} [get]
func (h *CrewHandler) GetCrew(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.crewUC.GetCrew(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// CreateCrew godoc
// @Summary Создание члена экипажа
// @Tags Crew
// @Accept json
// @Produce json
// @Param request body dto.CreateCrewRequest true "Данные члена экипажа"
// @Success 201 {object} utils.SuccessResponse{data=domain.Crew}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/crews [post]
func (h *CrewHandler) CreateCrew(c *fiber.Ctx) error {
	var req dto.CreateCrewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.crewUC.CreateCrew(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, result)
}

// UpdateCrew godoc
// @Summary Обновление члена экипажа
// @Tags Crew
// @Accept json
// @Produce json
// @Param id path int true "ID члена экипажа"
// @Param request body dto.CreateCrewRequest true "Данные члена экипажа"
// @Success 200 {object} utils.SuccessResponse{data=domain.Crew}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/crews/{id} [put]
func (h *CrewHandler) UpdateCrew(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.CreateCrewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.crewUC.UpdateCrew(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// DeleteCrew godoc
// @Summary Удаление члена экипажа
// @Tags Crew
// @Param id path int true "ID члена экипажа"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/crews/{id} [delete]
func (h *CrewHandler) DeleteCrew(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.crewUC.DeleteCrew(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
