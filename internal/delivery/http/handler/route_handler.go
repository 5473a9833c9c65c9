package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/rail-booking-service/internal/pkg/utils"
	"github.com/rail-booking-service/internal/pkg/validator"
	"github.com/rail-booking-service/internal/usecase"
	"github.com/rail-booking-service/internal/usecase/dto"
)

// RouteHandler - обработчик для маршрутов
type RouteHandler struct {
	routeUC *usecase.RouteUseCase
	logger  *zap.Logger
}

// NewRouteHandler - создание нового RouteHandler
func NewRouteHandler(routeUC *usecase.RouteUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		logger:  logger,
	}
}

// ListRoutes godoc
// @Summary Список маршрутов
// @Tags Routes
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.RouteListItem}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/routes [get]
func (h *RouteHandler) ListRoutes(c *fiber.Ctx) error {
	result, err := h.routeUC.ListRoutes(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result),
	})
}

// GetRoute godoc
// @Summary Маршрут по ID
// @Tags Routes
// @Produce json
// @Param id path int true "ID маршрута"
// @Success 200 {object} utils.SuccessResponse{data=dto.RouteDetailResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/routes/{id} [get]
func (h *RouteHandler) GetRoute(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.routeUC.GetRoute(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// CreateRoute godoc
// @Summary Создание маршрута
// @Description Создает маршрут между двумя разными станциями; дистанция вычисляется по координатам
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body dto.CreateRouteRequest true "Данные маршрута"
// @Success 201 {object} utils.SuccessResponse{data=dto.RouteDetailResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/routes [post]
func (h *RouteHandler) CreateRoute(c *fiber.Ctx) error {
	var req dto.CreateRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.routeUC.CreateRoute(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, result)
}
