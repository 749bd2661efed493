package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/excursion-service/internal/domain"
	"github.com/excursion-service/internal/pkg/errors"
	"github.com/excursion-service/internal/pkg/security"
	"github.com/excursion-service/internal/pkg/utils"
	"github.com/excursion-service/internal/usecase"
)

const userContextKey = "current_user"

// Auth - middleware аутентификации по Bearer токену.
// Загруженный пользователь кладётся в контекст запроса.
func Auth(authUC *usecase.AuthUseCase, secret string, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		claims, err := security.ParseAccessToken(secret, tokenString)
		if err != nil {
			logger.Debug("Token rejected", zap.Error(err))
			return utils.SendError(c, errors.ErrInvalidToken)
		}

		userID, err := claims.UserID()
		if err != nil {
			return utils.SendError(c, errors.ErrInvalidToken)
		}

		user, err := authUC.GetUser(c.Context(), userID)
		if err != nil {
			return utils.SendError(c, err)
		}

		c.Locals(userContextKey, user)
		return c.Next()
	}
}

// RequireRule - middleware проверки правила доступа.
// Ставится после Auth; суперпользователь проходит всегда.
func RequireRule(authUC *usecase.AuthUseCase, code string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		if err := authUC.CheckRule(c.Context(), user, code); err != nil {
			return utils.SendError(c, err)
		}

		return c.Next()
	}
}

// CurrentUser возвращает аутентифицированного пользователя запроса
func CurrentUser(c *fiber.Ctx) *domain.User {
	user, _ := c.Locals(userContextKey).(*domain.User)
	return user
}
