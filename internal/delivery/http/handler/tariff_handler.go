package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/excursion-service/internal/delivery/http/middleware"
	"github.com/excursion-service/internal/pkg/utils"
	"github.com/excursion-service/internal/pkg/validator"
	"github.com/excursion-service/internal/usecase"
	"github.com/excursion-service/internal/usecase/dto"
)

// TariffHandler - обработчик тарифов
type TariffHandler struct {
	tariffUC *usecase.TariffUseCase
	logger   *zap.Logger
}

// NewTariffHandler - создание нового TariffHandler
func NewTariffHandler(tariffUC *usecase.TariffUseCase, logger *zap.Logger) *TariffHandler {
	return &TariffHandler{
		tariffUC: tariffUC,
		logger:   logger,
	}
}

// List - список тарифов
func (h *TariffHandler) List(c *fiber.Ctx) error {
	tariffs, err := h.tariffUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, tariffs, &utils.Meta{
		Total: len(tariffs),
	})
}

// Get - тариф по ID
func (h *TariffHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	tariff, err := h.tariffUC.Get(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, tariff, nil)
}

// Create - создание тарифа
func (h *TariffHandler) Create(c *fiber.Ctx) error {
	var req dto.TariffRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	tariff, err := h.tariffUC.Create(c.Context(), middleware.CurrentUser(c).ID, &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, tariff, nil)
}

// Update - изменение тарифа
func (h *TariffHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.TariffRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	tariff, err := h.tariffUC.Update(c.Context(), middleware.CurrentUser(c).ID, id, &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, tariff, nil)
}

// Delete - удаление тарифа
func (h *TariffHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.tariffUC.Delete(c.Context(), middleware.CurrentUser(c).ID, id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}
