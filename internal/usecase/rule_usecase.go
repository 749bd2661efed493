package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/excursion-service/internal/domain"
	"github.com/excursion-service/internal/domain/repository"
	"github.com/excursion-service/internal/pkg/errors"
	"github.com/excursion-service/internal/usecase/dto"
)

type RuleUseCase struct {
	ruleRepo repository.RuleRepository
	audit    *AuditPublisher
	logger   *zap.Logger
}

func NewRuleUseCase(
	ruleRepo repository.RuleRepository,
	audit *AuditPublisher,
	logger *zap.Logger,
) *RuleUseCase {
	return &RuleUseCase{
		ruleRepo: ruleRepo,
		audit:    audit,
		logger:   logger,
	}
}

// List возвращает все правила доступа
func (uc *RuleUseCase) List(ctx context.Context) ([]*domain.Rule, error) {
	return uc.ruleRepo.List(ctx)
}

// Get возвращает правило по ID
func (uc *RuleUseCase) Get(ctx context.Context, id int64) (*domain.Rule, error) {
	return uc.ruleRepo.GetByID(ctx, id)
}

// Create создаёт правило. Название и код уникальны; правило с ролью
// сразу привязывается ко всем пользователям этой роли.
func (uc *RuleUseCase) Create(ctx context.Context, actorID int64, req *dto.RuleRequest) (*domain.Rule, error) {
	if _, err := uc.ruleRepo.GetByTitle(ctx, req.Title); err == nil {
		return nil, errors.ErrRuleTitleTaken
	} else if err != errors.ErrRuleNotFound {
		return nil, err
	}

	rule, err := uc.ruleRepo.Create(ctx, ruleFromRequest(0, req))
	if err != nil {
		return nil, err
	}

	if rule.AssociatedRole != nil {
		if err := uc.ruleRepo.AttachRuleToRoleUsers(ctx, rule.ID, *rule.AssociatedRole); err != nil {
			return nil, err
		}
	}

	uc.audit.Publish(ctx, &actorID, "rule.create", map[string]interface{}{
		"rule_id": rule.ID,
		"code":    rule.Code,
	})

	return rule, nil
}

// Update изменяет правило и пересобирает его привязки при смене роли
func (uc *RuleUseCase) Update(ctx context.Context, actorID, id int64, req *dto.RuleRequest) (*domain.Rule, error) {
	current, err := uc.ruleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing, err := uc.ruleRepo.GetByTitle(ctx, req.Title); err == nil && existing.ID != id {
		return nil, errors.ErrRuleTitleTaken
	} else if err != nil && err != errors.ErrRuleNotFound {
		return nil, err
	}

	updated, err := uc.ruleRepo.Update(ctx, ruleFromRequest(id, req))
	if err != nil {
		return nil, err
	}

	if !rolesEqual(current.AssociatedRole, updated.AssociatedRole) {
		if err := uc.ruleRepo.DetachRuleFromUsers(ctx, id); err != nil {
			return nil, err
		}
		if updated.AssociatedRole != nil {
			if err := uc.ruleRepo.AttachRuleToRoleUsers(ctx, id, *updated.AssociatedRole); err != nil {
				return nil, err
			}
		}
	}

	uc.audit.Publish(ctx, &actorID, "rule.update", map[string]interface{}{
		"rule_id": id,
		"code":    updated.Code,
	})

	return updated, nil
}

// Delete удаляет правило вместе с привязками
func (uc *RuleUseCase) Delete(ctx context.Context, actorID, id int64) error {
	if err := uc.ruleRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Publish(ctx, &actorID, "rule.delete", map[string]interface{}{
		"rule_id": id,
	})
	return nil
}

func ruleFromRequest(id int64, req *dto.RuleRequest) *domain.Rule {
	rule := &domain.Rule{
		ID:           id,
		Code:         req.Code,
		Title:        req.Title,
		Description:  req.Description,
		ErrorMessage: req.ErrorMessage,
	}
	if req.AssociatedRole != nil {
		role := domain.UserRole(*req.AssociatedRole)
		rule.AssociatedRole = &role
	}
	return rule
}

func rolesEqual(a, b *domain.UserRole) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
