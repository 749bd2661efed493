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

// RuleHandler - обработчик правил доступа
type RuleHandler struct {
	ruleUC *usecase.RuleUseCase
	logger *zap.Logger
}

// NewRuleHandler - создание нового RuleHandler
func NewRuleHandler(ruleUC *usecase.RuleUseCase, logger *zap.Logger) *RuleHandler {
	return &RuleHandler{
		ruleUC: ruleUC,
		logger: logger,
	}
}

// List - список правил
func (h *RuleHandler) List(c *fiber.Ctx) error {
	rules, err := h.ruleUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, rules, &utils.Meta{
		Total: len(rules),
	})
}

// Get - правило по ID
func (h *RuleHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	rule, err := h.ruleUC.Get(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, rule, nil)
}

// Create - создание правила; при привязке к роли выдаётся её пользователям
func (h *RuleHandler) Create(c *fiber.Ctx) error {
	var req dto.RuleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	rule, err := h.ruleUC.Create(c.Context(), middleware.CurrentUser(c).ID, &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, rule, nil)
}

// Update - изменение правила
func (h *RuleHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.RuleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	rule, err := h.ruleUC.Update(c.Context(), middleware.CurrentUser(c).ID, id, &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, rule, nil)
}

// Delete - удаление правила вместе с выдачами
func (h *RuleHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.ruleUC.Delete(c.Context(), middleware.CurrentUser(c).ID, id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}
