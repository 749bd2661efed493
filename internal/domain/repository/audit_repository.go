package repository

import (
	"context"

	"github.com/excursion-service/internal/domain"
)

// AuditRepository определяет методы для работы с журналом аудита
type AuditRepository interface {
	// Insert сохраняет запись журнала аудита
	Insert(ctx context.Context, record *domain.AuditRecord) error

	// List возвращает последние записи журнала
	List(ctx context.Context, limit int) ([]*domain.AuditRecord, error)
}
