package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/excursion-service/internal/domain"
	"github.com/excursion-service/internal/domain/repository"
	"github.com/excursion-service/internal/pkg/errors"
)

type userRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewUserRepository(db *DB) repository.UserRepository {
	return &userRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	err := r.db.GetContext(ctx, &user,
		`SELECT id, full_name, email, hashed_password, role, is_active, created_at
		 FROM users WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrUserNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get user", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.db.GetContext(ctx, &user,
		`SELECT id, full_name, email, hashed_password, role, is_active, created_at
		 FROM users WHERE lower(email) = lower($1)`, strings.TrimSpace(email))
	if err == sql.ErrNoRows {
		return nil, errors.ErrUserNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get user by email", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]*domain.User, error) {
	users := []*domain.User{}
	err := r.db.SelectContext(ctx, &users,
		`SELECT id, full_name, email, hashed_password, role, is_active, created_at
		 FROM users ORDER BY created_at`)
	if err != nil {
		r.logger.Error("Failed to list users", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return users, nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (full_name, email, hashed_password, role, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		user.FullName, user.Email, user.HashedPassword, user.Role, user.IsActive,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.ErrEmailTaken
		}
		r.logger.Error("Failed to create user", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return user, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		UPDATE users
		SET full_name = $2, email = $3, hashed_password = $4, role = $5, is_active = $6
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		user.ID, user.FullName, user.Email, user.HashedPassword, user.Role, user.IsActive)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.ErrEmailTaken
		}
		r.logger.Error("Failed to update user", zap.Int64("id", user.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return nil, errors.ErrUserNotFound
	}
	return r.GetByID(ctx, user.ID)
}
