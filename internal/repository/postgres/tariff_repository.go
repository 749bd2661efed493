package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/excursion-service/internal/domain"
	"github.com/excursion-service/internal/domain/repository"
	"github.com/excursion-service/internal/pkg/errors"
)

type tariffRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewTariffRepository(db *DB) repository.TariffRepository {
	return &tariffRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *tariffRepository) List(ctx context.Context) ([]*domain.Tariff, error) {
	tariffs := []*domain.Tariff{}
	err := r.db.SelectContext(ctx, &tariffs,
		`SELECT id, title, description, multiplier FROM tariffs ORDER BY id`)
	if err != nil {
		r.logger.Error("Failed to list tariffs", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return tariffs, nil
}

func (r *tariffRepository) GetByID(ctx context.Context, id int64) (*domain.Tariff, error) {
	var tariff domain.Tariff
	err := r.db.GetContext(ctx, &tariff,
		`SELECT id, title, description, multiplier FROM tariffs WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrTariffNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get tariff", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &tariff, nil
}

func (r *tariffRepository) GetByTitle(ctx context.Context, title string) (*domain.Tariff, error) {
	var tariff domain.Tariff
	err := r.db.GetContext(ctx, &tariff,
		`SELECT id, title, description, multiplier FROM tariffs WHERE title = $1`, title)
	if err == sql.ErrNoRows {
		return nil, errors.ErrTariffNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get tariff by title", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &tariff, nil
}

func (r *tariffRepository) Create(ctx context.Context, tariff *domain.Tariff) (*domain.Tariff, error) {
	query := `
		INSERT INTO tariffs (title, description, multiplier)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query, tariff.Title, tariff.Description, tariff.Multiplier).
		Scan(&tariff.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.ErrTariffTitleTaken
		}
		r.logger.Error("Failed to create tariff", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return tariff, nil
}

func (r *tariffRepository) Update(ctx context.Context, tariff *domain.Tariff) (*domain.Tariff, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tariffs SET title = $2, description = $3, multiplier = $4 WHERE id = $1`,
		tariff.ID, tariff.Title, tariff.Description, tariff.Multiplier)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.ErrTariffTitleTaken
		}
		r.logger.Error("Failed to update tariff", zap.Int64("id", tariff.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return nil, errors.ErrTariffNotFound
	}
	return r.GetByID(ctx, tariff.ID)
}

func (r *tariffRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tariffs WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete tariff", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return errors.ErrTariffNotFound
	}
	return nil
}
