package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/excursion-service/internal/domain"
	"github.com/excursion-service/internal/domain/repository"
	"github.com/excursion-service/internal/pkg/errors"
)

type auditRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewAuditRepository(db *DB) repository.AuditRepository {
	return &auditRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *auditRepository) Insert(ctx context.Context, record *domain.AuditRecord) error {
	query := `
		INSERT INTO audit_log (user_id, action, details, created_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.ExecContext(ctx, query,
		record.UserID, record.Action, record.Details, record.CreatedAt,
	); err != nil {
		r.logger.Error("Failed to insert audit record", zap.String("action", record.Action), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *auditRepository) List(ctx context.Context, limit int) ([]*domain.AuditRecord, error) {
	records := []*domain.AuditRecord{}
	err := r.db.SelectContext(ctx, &records,
		`SELECT id, user_id, action, details, created_at
		 FROM audit_log ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		r.logger.Error("Failed to list audit records", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return records, nil
}
