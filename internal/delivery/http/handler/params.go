package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/rail-booking-service/internal/pkg/errors"
)

// parseIDParam читает числовой path-параметр :id
func parseIDParam(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.ErrInvalidRequest.WithDetail("id", "ID must be a positive integer")
	}
	return id, nil
}
