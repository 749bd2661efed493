package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/excursion-service/internal/domain"
	"github.com/excursion-service/internal/domain/repository"
	"github.com/excursion-service/internal/pkg/errors"
	"github.com/excursion-service/internal/pkg/security"
	"github.com/excursion-service/internal/usecase/dto"
)

type UserUseCase struct {
	userRepo repository.UserRepository
	ruleRepo repository.RuleRepository
	audit    *AuditPublisher
	logger   *zap.Logger
}

func NewUserUseCase(
	userRepo repository.UserRepository,
	ruleRepo repository.RuleRepository,
	audit *AuditPublisher,
	logger *zap.Logger,
) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		ruleRepo: ruleRepo,
		audit:    audit,
		logger:   logger,
	}
}

// List возвращает всех сотрудников
func (uc *UserUseCase) List(ctx context.Context) ([]*domain.User, error) {
	return uc.userRepo.List(ctx)
}

// Get возвращает сотрудника по ID
func (uc *UserUseCase) Get(ctx context.Context, id int64) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

// Create заводит сотрудника и привязывает ему ролевые правила
func (uc *UserUseCase) Create(ctx context.Context, actorID int64, req *dto.UserCreateRequest) (*domain.User, error) {
	role := domain.UserRole(req.Role)
	if !role.IsValid() {
		return nil, errors.ErrInvalidRequest.WithDetails("неизвестная роль: " + req.Role)
	}

	hashed, err := security.HashPassword(req.Password)
	if err != nil {
		uc.logger.Error("Failed to hash password", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	user, err := uc.userRepo.Create(ctx, &domain.User{
		FullName:       req.FullName,
		Email:          req.Email,
		HashedPassword: hashed,
		Role:           role,
		IsActive:       true,
	})
	if err != nil {
		return nil, err
	}

	if err := uc.ruleRepo.SyncUserRules(ctx, user.ID, user.Role); err != nil {
		uc.logger.Error("Failed to sync user rules", zap.Int64("user_id", user.ID), zap.Error(err))
		return nil, err
	}

	uc.audit.Publish(ctx, &actorID, "user.create", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    string(user.Role),
	})

	return user, nil
}

// Update изменяет сотрудника. Смена роли пересобирает набор
// ролевых правил, пароль меняется только если передан.
func (uc *UserUseCase) Update(ctx context.Context, actorID, id int64, req *dto.UserUpdateRequest) (*domain.User, error) {
	role := domain.UserRole(req.Role)
	if !role.IsValid() {
		return nil, errors.ErrInvalidRequest.WithDetails("неизвестная роль: " + req.Role)
	}

	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	roleChanged := user.Role != role

	user.FullName = req.FullName
	user.Email = req.Email
	user.Role = role
	user.IsActive = req.IsActive

	if req.Password != nil && *req.Password != "" {
		hashed, err := security.HashPassword(*req.Password)
		if err != nil {
			uc.logger.Error("Failed to hash password", zap.Error(err))
			return nil, errors.ErrInternalServer
		}
		user.HashedPassword = hashed
	}

	updated, err := uc.userRepo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	if roleChanged {
		if err := uc.ruleRepo.SyncUserRules(ctx, updated.ID, updated.Role); err != nil {
			uc.logger.Error("Failed to sync user rules", zap.Int64("user_id", updated.ID), zap.Error(err))
			return nil, err
		}
	}

	uc.audit.Publish(ctx, &actorID, "user.update", map[string]interface{}{
		"user_id":      id,
		"role":         string(role),
		"role_changed": roleChanged,
	})

	return updated, nil
}

// ListRules возвращает правила, привязанные к сотруднику
func (uc *UserUseCase) ListRules(ctx context.Context, id int64) ([]*domain.Rule, error) {
	if _, err := uc.userRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return uc.ruleRepo.ListUserRules(ctx, id)
}
