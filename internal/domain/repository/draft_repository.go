package repository

import (
	"context"

	"github.com/excursion-service/internal/itinerary"
)

// DraftRepository определяет методы для хранения сессий редактирования
// черновиков маршрутов
type DraftRepository interface {
	// Get возвращает черновик сессии
	Get(ctx context.Context, sessionID string) (*itinerary.Draft, error)

	// Save сохраняет черновик сессии и продлевает её TTL
	Save(ctx context.Context, sessionID string, draft *itinerary.Draft) error

	// Delete удаляет сессию
	Delete(ctx context.Context, sessionID string) error
}
