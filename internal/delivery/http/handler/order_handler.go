package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/rail-booking-service/internal/delivery/http/middleware"
	"github.com/rail-booking-service/internal/pkg/utils"
	"github.com/rail-booking-service/internal/pkg/validator"
	"github.com/rail-booking-service/internal/usecase"
	"github.com/rail-booking-service/internal/usecase/dto"
)

// OrderHandler - обработчик для заказов
type OrderHandler struct {
	orderUC *usecase.OrderUseCase
	logger  *zap.Logger
}

// NewOrderHandler - создание нового OrderHandler
func NewOrderHandler(orderUC *usecase.OrderUseCase, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orderUC: orderUC,
		logger:  logger,
	}
}

// ListOrders godoc
// @Summary Список заказов текущего пользователя
// @Tags Orders
// @Produce json
// @Param X-User-ID header string true "Идентификатор пользователя"
// @Param date query string false "Дата отправления рейса в билетах, YYYY-MM-DD"
// @Param time query string false "Время отправления, HH:MM (учитывается только вместе с date)"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.OrderResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/orders [get]
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	req := dto.OrderListRequest{
		Date: c.Query("date"),
		Time: c.Query("time"),
	}

	result, err := h.orderUC.ListOrders(c.Context(), middleware.UserID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result),
	})
}

// GetOrder godoc
// @Summary Заказ по ID
// @Description Возвращает заказ только если он принадлежит текущему пользователю
// @Tags Orders
// @Produce json
// @Param X-User-ID header string true "Идентификатор пользователя"
// @Param id path int true "ID заказа"
// @Success 200 {object} utils.SuccessResponse{data=dto.OrderResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.orderUC.GetOrder(c.Context(), middleware.UserID(c), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// PlaceOrder godoc
// @Summary Создание заказа
// @Description Атомарно бронирует все места заказа; при конфликте мест не создается ничего
// @Tags Orders
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Идентификатор пользователя"
// @Param request body dto.CreateOrderRequest true "Билеты заказа"
// @Success 201 {object} utils.SuccessResponse{data=dto.OrderResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/orders [post]
func (h *OrderHandler) PlaceOrder(c *fiber.Ctx) error {
	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.orderUC.PlaceOrder(c.Context(), middleware.UserID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, result)
}
