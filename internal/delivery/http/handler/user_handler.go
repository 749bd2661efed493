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

// UserHandler - обработчик управления сотрудниками
type UserHandler struct {
	userUC *usecase.UserUseCase
	logger *zap.Logger
}

// NewUserHandler - создание нового UserHandler
func NewUserHandler(userUC *usecase.UserUseCase, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userUC: userUC,
		logger: logger,
	}
}

// List - список сотрудников
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.userUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, users, &utils.Meta{
		Total: len(users),
	})
}

// Get - сотрудник по ID
func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	user, err := h.userUC.Get(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, user, nil)
}

// Create - создание сотрудника; роль определяет выдаваемые правила
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req dto.UserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	user, err := h.userUC.Create(c.Context(), middleware.CurrentUser(c).ID, &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, user, nil)
}

// Update - изменение сотрудника; при смене роли правила пересчитываются
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	user, err := h.userUC.Update(c.Context(), middleware.CurrentUser(c).ID, id, &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, user, nil)
}

// ListRules - правила доступа сотрудника
func (h *UserHandler) ListRules(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	rules, err := h.userUC.ListRules(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, rules, &utils.Meta{
		Total: len(rules),
	})
}
