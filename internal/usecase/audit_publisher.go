package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/excursion-service/internal/domain"
	"github.com/excursion-service/internal/domain/repository"
)

// AuditPublisher публикует события аудита в Redis Stream.
// Публикация не влияет на исход операции: при ошибке событие
// теряется с записью в лог.
type AuditPublisher struct {
	streamRepo repository.StreamRepository
	logger     *zap.Logger
}

func NewAuditPublisher(streamRepo repository.StreamRepository, logger *zap.Logger) *AuditPublisher {
	return &AuditPublisher{
		streamRepo: streamRepo,
		logger:     logger,
	}
}

// Publish отправляет событие аудита в стрим
func (p *AuditPublisher) Publish(ctx context.Context, userID *int64, action string, details map[string]interface{}) {
	event := domain.AuditEvent{
		UserID:  userID,
		Action:  action,
		Details: details,
	}

	if err := p.streamRepo.PublishToStream(ctx, domain.StreamAuditLog, event); err != nil {
		p.logger.Warn("Failed to publish audit event",
			zap.String("action", action),
			zap.Error(err))
	}
}
