package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/excursion-service/internal/pkg/errors"
)

// parseIDParam читает числовой параметр пути
func parseIDParam(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil {
		return 0, errors.ErrInvalidRequest
	}
	return id, nil
}

// parseIndexParam читает индекс элемента из пути
func parseIndexParam(c *fiber.Ctx, name string) (int, error) {
	index, err := strconv.Atoi(c.Params(name))
	if err != nil || index < 0 {
		return 0, errors.ErrInvalidRequest
	}
	return index, nil
}
