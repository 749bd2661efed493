package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/excursion-service/internal/domain"
	"github.com/excursion-service/internal/domain/repository"
	"github.com/excursion-service/internal/worker"
)

// AuditLogWorker переносит события аудита из Redis Stream
// в журнал в базе данных
type AuditLogWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	auditRepo    repository.AuditRepository
	consumerName string
}

// NewAuditLogWorker создает новый AuditLogWorker
func NewAuditLogWorker(
	streamRepo repository.StreamRepository,
	auditRepo repository.AuditRepository,
	consumerGroup string,
	logger *zap.Logger,
) *AuditLogWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &AuditLogWorker{
		BaseWorker:   worker.NewBaseWorker("audit-log", consumerGroup, logger),
		streamRepo:   streamRepo,
		auditRepo:    auditRepo,
		consumerName: consumerName,
	}
}

// Start запускает воркер
func (w *AuditLogWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting AuditLogWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamAuditLog, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	messages, err := w.streamRepo.ConsumeStream(ctx, domain.StreamAuditLog, w.ConsumerGroup(), w.consumerName)
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case msg, ok := <-messages:
			if !ok {
				logger.Info("Stream channel closed")
				return nil
			}
			w.handleMessage(ctx, msg)
		}
	}
}

// handleMessage сохраняет одно событие аудита.
// Битые сообщения подтверждаются, чтобы не блокировать стрим.
func (w *AuditLogWorker) handleMessage(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger()

	record, err := w.parseMessage(msg)
	if err != nil {
		logger.Warn("Failed to parse audit message, skipping",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		_ = w.streamRepo.AckMessage(ctx, domain.StreamAuditLog, w.ConsumerGroup(), msg.ID)
		return
	}

	if err := w.auditRepo.Insert(ctx, record); err != nil {
		logger.Error("Failed to insert audit record",
			zap.String("message_id", msg.ID),
			zap.String("action", record.Action),
			zap.Error(err))
		// без ACK - сообщение будет переобработано
		return
	}

	if err := w.streamRepo.AckMessage(ctx, domain.StreamAuditLog, w.ConsumerGroup(), msg.ID); err != nil {
		logger.Error("Failed to ack message",
			zap.String("message_id", msg.ID),
			zap.Error(err))
	}
}

// parseMessage разбирает сообщение стрима в запись журнала
func (w *AuditLogWorker) parseMessage(msg domain.StreamMessage) (*domain.AuditRecord, error) {
	var event domain.AuditEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.Action == "" {
		return nil, fmt.Errorf("event has no action")
	}

	details := "{}"
	if event.Details != nil {
		raw, err := json.Marshal(event.Details)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal details: %w", err)
		}
		details = string(raw)
	}

	return &domain.AuditRecord{
		UserID:  event.UserID,
		Action:  event.Action,
		Details: details,
	}, nil
}
