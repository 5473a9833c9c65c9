package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/rail-booking-service/internal/pkg/utils"
	"github.com/rail-booking-service/internal/pkg/validator"
	"github.com/rail-booking-service/internal/usecase"
	"github.com/rail-booking-service/internal/usecase/dto"
)

// TrainHandler - обработчик для поездов и типов поездов
type TrainHandler struct {
	trainUC     *usecase.TrainUseCase
	trainTypeUC *usecase.TrainTypeUseCase
	logger      *zap.Logger
}

// NewTrainHandler - создание нового TrainHandler
func NewTrainHandler(trainUC *usecase.TrainUseCase, trainTypeUC *usecase.TrainTypeUseCase, logger *zap.Logger) *TrainHandler {
	return &TrainHandler{
		trainUC:     trainUC,
		trainTypeUC: trainTypeUC,
		logger:      logger,
	}
}

// ListTrains godoc
// @Summary Список поездов
// @Tags Trains
// @Produce json
// @Param train_type query string false "Фильтр по типам поездов, ID через запятую"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.TrainResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/trains [get]
func (h *TrainHandler) ListTrains(c *fiber.Ctx) error {
	result, err := h.trainUC.ListTrains(c.Context(), c.Query("train_type"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result),
	})
}

// GetTrain godoc
// @Summary Поезд по ID
// @Tags Trains
// @Produce json
// @Param id path int true "ID поезда"
// @Success 200 {object} utils.SuccessResponse{data=dto.TrainResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/trains/{id} [get]
func (h *TrainHandler) GetTrain(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.trainUC.GetTrain(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// CreateTrain godoc
// @Summary Создание поезда
// @Tags Trains
// @Accept json
// @Produce json
// @Param request body dto.CreateTrainRequest true "Данные поезда"
// @Success 201 {object} utils.SuccessResponse{data=dto.TrainResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/trains [post]
func (h *TrainHandler) CreateTrain(c *fiber.Ctx) error {
	var req dto.CreateTrainRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.trainUC.CreateTrain(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, result)
}

// UpdateTrain godoc
// @Summary Обновление поезда
// @Tags Trains
// @Accept json
// @Produce json
// @Param id path int true "ID поезда"
// @Param request body dto.CreateTrainRequest true "Данные поезда"
// @Success 200 {object} utils.SuccessResponse{data=dto.TrainResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/trains/{id} [put]
func (h *TrainHandler) UpdateTrain(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.CreateTrainRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.trainUC.UpdateTrain(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// DeleteTrain godoc
// @Summary Удаление поезда
// @Tags Trains
// @Param id path int true "ID поезда"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/trains/{id} [delete]
func (h *TrainHandler) DeleteTrain(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.trainUC.DeleteTrain(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ListTrainTypes godoc
// @Summary Список типов поездов
// @Tags Trains
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.TrainType}
// @Router /api/v1/train-types [get]
func (h *TrainHandler) ListTrainTypes(c *fiber.Ctx) error {
	result, err := h.trainTypeUC.ListTrainTypes(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result),
	})
}

// CreateTrainType godoc
// @Summary Создание типа поезда
// @Tags Trains
// @Accept json
// @Produce json
// @Param request body dto.CreateTrainTypeRequest true "Данные типа поезда"
// @Success 201 {object} utils.SuccessResponse{data=domain.TrainType}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/train-types [post]
func (h *TrainHandler) CreateTrainType(c *fiber.Ctx) error {
	var req dto.CreateTrainTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.trainTypeUC.CreateTrainType(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, result)
}

// UpdateTrainType godoc
// @Summary Обновление типа поезда
// @Tags Trains
// @Accept json
// @Produce json
// @Param id path int true "ID типа поезда"
// @Param request body dto.UpdateTrainTypeRequest true "Данные типа поезда"
// @Success 200 {object} utils.SuccessResponse{data=domain.TrainType}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/train-types/{id} [put]
func (h *TrainHandler) UpdateTrainType(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdateTrainTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.trainTypeUC.UpdateTrainType(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
