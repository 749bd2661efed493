package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/excursion-service/internal/domain"
	"github.com/excursion-service/internal/domain/repository"
	"github.com/excursion-service/internal/pkg/errors"
	"github.com/excursion-service/internal/pkg/security"
	"github.com/excursion-service/internal/usecase/dto"
)

type AuthUseCase struct {
	userRepo  repository.UserRepository
	ruleRepo  repository.RuleRepository
	audit     *AuditPublisher
	secretKey string
	tokenTTL  time.Duration
	logger    *zap.Logger
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	ruleRepo repository.RuleRepository,
	audit *AuditPublisher,
	secretKey string,
	tokenTTL time.Duration,
	logger *zap.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:  userRepo,
		ruleRepo:  ruleRepo,
		audit:     audit,
		secretKey: secretKey,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Login проверяет учётные данные и выдаёт токен доступа
func (uc *AuthUseCase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == errors.ErrUserNotFound {
			return nil, errors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !security.VerifyPassword(req.Password, user.HashedPassword) {
		return nil, errors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, errors.ErrUserBlocked
	}

	token, err := security.CreateAccessToken(uc.secretKey, user.ID, string(user.Role), uc.tokenTTL)
	if err != nil {
		uc.logger.Error("Failed to create access token", zap.Int64("user_id", user.ID), zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	uc.audit.Publish(ctx, &user.ID, "auth.login", map[string]interface{}{
		"email": user.Email,
	})

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	}, nil
}

// GetUser возвращает активного пользователя по ID из токена
func (uc *AuthUseCase) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, errors.ErrUserBlocked
	}
	return user, nil
}

// CheckRule проверяет право пользователя на операцию.
// Суперпользователь проходит любую проверку. Для остальных ищется
// привязка правила; при отказе используется настроенный текст ошибки
// правила, если он задан.
func (uc *AuthUseCase) CheckRule(ctx context.Context, user *domain.User, code string) error {
	if user.Role == domain.UserRoleSuperuser {
		return nil
	}

	has, err := uc.ruleRepo.UserHasRule(ctx, user.ID, code)
	if err != nil {
		return err
	}
	if has {
		return nil
	}

	rule, err := uc.ruleRepo.GetByCode(ctx, code)
	if err == nil && rule.ErrorMessage != nil && *rule.ErrorMessage != "" {
		return errors.ErrForbidden.WithMessage(*rule.ErrorMessage)
	}
	return errors.ErrForbidden
}

// EnsureDefaultAdmin создаёт суперпользователя при первом запуске,
// если в системе ещё нет пользователя с настроенным email
func (uc *AuthUseCase) EnsureDefaultAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	_, err := uc.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if err != errors.ErrUserNotFound {
		return err
	}

	hashed, err := security.HashPassword(password)
	if err != nil {
		return err
	}

	user, err := uc.userRepo.Create(ctx, &domain.User{
		FullName:       "Администратор",
		Email:          email,
		HashedPassword: hashed,
		Role:           domain.UserRoleSuperuser,
		IsActive:       true,
	})
	if err != nil {
		return err
	}

	uc.logger.Info("Default admin created", zap.Int64("user_id", user.ID))
	return nil
}
