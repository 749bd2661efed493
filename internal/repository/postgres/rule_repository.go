package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/excursion-service/internal/domain"
	"github.com/excursion-service/internal/domain/repository"
	"github.com/excursion-service/internal/pkg/errors"
)

type ruleRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewRuleRepository(db *DB) repository.RuleRepository {
	return &ruleRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const ruleColumns = `id, associated_role, code, title, description, error_message`

func (r *ruleRepository) List(ctx context.Context) ([]*domain.Rule, error) {
	rules := []*domain.Rule{}
	err := r.db.SelectContext(ctx, &rules,
		`SELECT `+ruleColumns+` FROM rules ORDER BY id`)
	if err != nil {
		r.logger.Error("Failed to list rules", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return rules, nil
}

func (r *ruleRepository) GetByID(ctx context.Context, id int64) (*domain.Rule, error) {
	var rule domain.Rule
	err := r.db.GetContext(ctx, &rule,
		`SELECT `+ruleColumns+` FROM rules WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrRuleNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get rule", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &rule, nil
}

func (r *ruleRepository) GetByCode(ctx context.Context, code string) (*domain.Rule, error) {
	var rule domain.Rule
	err := r.db.GetContext(ctx, &rule,
		`SELECT `+ruleColumns+` FROM rules WHERE code = $1`, code)
	if err == sql.ErrNoRows {
		return nil, errors.ErrRuleNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get rule by code", zap.String("code", code), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &rule, nil
}

func (r *ruleRepository) GetByTitle(ctx context.Context, title string) (*domain.Rule, error) {
	var rule domain.Rule
	err := r.db.GetContext(ctx, &rule,
		`SELECT `+ruleColumns+` FROM rules WHERE title = $1`, title)
	if err == sql.ErrNoRows {
		return nil, errors.ErrRuleNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get rule by title", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &rule, nil
}

func (r *ruleRepository) Create(ctx context.Context, rule *domain.Rule) (*domain.Rule, error) {
	query := `
		INSERT INTO rules (associated_role, code, title, description, error_message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		rule.AssociatedRole, rule.Code, rule.Title, rule.Description, rule.ErrorMessage,
	).Scan(&rule.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.ErrRuleCodeTaken
		}
		r.logger.Error("Failed to create rule", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return rule, nil
}

func (r *ruleRepository) Update(ctx context.Context, rule *domain.Rule) (*domain.Rule, error) {
	query := `
		UPDATE rules
		SET associated_role = $2, code = $3, title = $4, description = $5, error_message = $6
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		rule.ID, rule.AssociatedRole, rule.Code, rule.Title, rule.Description, rule.ErrorMessage)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.ErrRuleCodeTaken
		}
		r.logger.Error("Failed to update rule", zap.Int64("id", rule.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return nil, errors.ErrRuleNotFound
	}
	return r.GetByID(ctx, rule.ID)
}

func (r *ruleRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM user_rules WHERE rule_id = $1`, id); err != nil {
		r.logger.Error("Failed to delete rule bindings", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM rules WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete rule", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return errors.ErrRuleNotFound
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit rule delete", zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *ruleRepository) UserHasRule(ctx context.Context, userID int64, code string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM user_rules ur
			JOIN rules rl ON rl.id = ur.rule_id
			WHERE ur.user_id = $1 AND rl.code = $2
		)
	`

	var has bool
	if err := r.db.GetContext(ctx, &has, query, userID, code); err != nil {
		r.logger.Error("Failed to check user rule", zap.Int64("user_id", userID), zap.Error(err))
		return false, errors.ErrDatabaseError
	}
	return has, nil
}

func (r *ruleRepository) ListUserRules(ctx context.Context, userID int64) ([]*domain.Rule, error) {
	query := `
		SELECT rl.id, rl.associated_role, rl.code, rl.title, rl.description, rl.error_message
		FROM user_rules ur
		JOIN rules rl ON rl.id = ur.rule_id
		WHERE ur.user_id = $1
		ORDER BY rl.id
	`

	rules := []*domain.Rule{}
	if err := r.db.SelectContext(ctx, &rules, query, userID); err != nil {
		r.logger.Error("Failed to list user rules", zap.Int64("user_id", userID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return rules, nil
}

// SyncUserRules приводит ролевые правила пользователя в соответствие
// с ролью. Роль admin наследует правила роли manager, superuser
// проверки правил не проходит и привязок не требует.
func (r *ruleRepository) SyncUserRules(ctx context.Context, userID int64, role domain.UserRole) error {
	roles := inheritedRoles(role)

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer tx.Rollback()

	removeQuery := `
		DELETE FROM user_rules ur
		USING rules rl
		WHERE ur.rule_id = rl.id
		  AND ur.user_id = $1
		  AND rl.associated_role IS NOT NULL
		  AND NOT (rl.associated_role = ANY($2))
	`
	if _, err := tx.ExecContext(ctx, removeQuery, userID, rolesArray(roles)); err != nil {
		r.logger.Error("Failed to remove stale role rules", zap.Int64("user_id", userID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	addQuery := `
		INSERT INTO user_rules (user_id, rule_id)
		SELECT $1, rl.id
		FROM rules rl
		WHERE rl.associated_role = ANY($2)
		ON CONFLICT (user_id, rule_id) DO NOTHING
	`
	if _, err := tx.ExecContext(ctx, addQuery, userID, rolesArray(roles)); err != nil {
		r.logger.Error("Failed to attach role rules", zap.Int64("user_id", userID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit rule sync", zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *ruleRepository) AttachRuleToRoleUsers(ctx context.Context, ruleID int64, role domain.UserRole) error {
	// правило роли manager получают и администраторы
	roles := []domain.UserRole{role}
	if role == domain.UserRoleManager {
		roles = append(roles, domain.UserRoleAdmin)
	}

	query := `
		INSERT INTO user_rules (user_id, rule_id)
		SELECT u.id, $1
		FROM users u
		WHERE u.role = ANY($2)
		ON CONFLICT (user_id, rule_id) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, ruleID, rolesArray(roles)); err != nil {
		r.logger.Error("Failed to attach rule to role users", zap.Int64("rule_id", ruleID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *ruleRepository) DetachRuleFromUsers(ctx context.Context, ruleID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM user_rules WHERE rule_id = $1`, ruleID); err != nil {
		r.logger.Error("Failed to detach rule from users", zap.Int64("rule_id", ruleID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

// inheritedRoles возвращает роли, чьи ролевые правила положены
// пользователю с данной ролью
func inheritedRoles(role domain.UserRole) []domain.UserRole {
	switch role {
	case domain.UserRoleAdmin:
		return []domain.UserRole{domain.UserRoleManager, domain.UserRoleAdmin}
	case domain.UserRoleSuperuser:
		return []domain.UserRole{}
	default:
		return []domain.UserRole{domain.UserRoleManager}
	}
}

func rolesArray(roles []domain.UserRole) interface{} {
	out := make([]string, 0, len(roles))
	for _, role := range roles {
		out = append(out, string(role))
	}
	return pq.Array(out)
}
