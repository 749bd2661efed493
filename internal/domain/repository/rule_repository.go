package repository

import (
	"context"

	"github.com/excursion-service/internal/domain"
)

// RuleRepository определяет методы для работы с правилами доступа
// и их привязкой к пользователям
type RuleRepository interface {
	// List возвращает все правила
	List(ctx context.Context) ([]*domain.Rule, error)

	// GetByID возвращает правило по ID
	GetByID(ctx context.Context, id int64) (*domain.Rule, error)

	// GetByCode возвращает правило по коду
	GetByCode(ctx context.Context, code string) (*domain.Rule, error)

	// GetByTitle возвращает правило по названию
	GetByTitle(ctx context.Context, title string) (*domain.Rule, error)

	// Create создаёт правило
	Create(ctx context.Context, rule *domain.Rule) (*domain.Rule, error)

	// Update обновляет правило
	Update(ctx context.Context, rule *domain.Rule) (*domain.Rule, error)

	// Delete удаляет правило вместе с привязками к пользователям
	Delete(ctx context.Context, id int64) error

	// UserHasRule проверяет, привязано ли к пользователю правило с кодом code
	UserHasRule(ctx context.Context, userID int64, code string) (bool, error)

	// ListUserRules возвращает правила, привязанные к пользователю
	ListUserRules(ctx context.Context, userID int64) ([]*domain.Rule, error)

	// SyncUserRules приводит набор правил пользователя в соответствие
	// с его ролью: добавляет недостающие ролевые правила и убирает
	// ролевые правила чужих ролей. Привязки правил без роли сохраняются.
	SyncUserRules(ctx context.Context, userID int64, role domain.UserRole) error

	// AttachRuleToRoleUsers привязывает правило ко всем пользователям,
	// чья роль наследует указанную
	AttachRuleToRoleUsers(ctx context.Context, ruleID int64, role domain.UserRole) error

	// DetachRuleFromUsers снимает привязку правила у всех пользователей
	DetachRuleFromUsers(ctx context.Context, ruleID int64) error
}
