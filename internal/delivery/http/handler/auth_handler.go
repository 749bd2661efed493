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

// AuthHandler - обработчик аутентификации сотрудников
type AuthHandler struct {
	authUC *usecase.AuthUseCase
	logger *zap.Logger
}

// NewAuthHandler - создание нового AuthHandler
func NewAuthHandler(authUC *usecase.AuthUseCase, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		logger: logger,
	}
}

// Login godoc
// @Summary Вход сотрудника
// @Description Проверяет учётные данные и выдаёт access-токен
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Учётные данные"
// @Success 200 {object} utils.SuccessResponse{data=dto.TokenResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.authUC.Login(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Me - данные текущего пользователя
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return utils.SendSuccess(c, middleware.CurrentUser(c), nil)
}
