package repository

import (
	"context"

	"github.com/excursion-service/internal/domain"
)

// DirectionsRepository определяет методы для работы с внешним
// сервисом маршрутизации
type DirectionsRepository interface {
	// GetRouteLine возвращает ломаную маршрута, проходящую через
	// точки в заданном порядке
	GetRouteLine(ctx context.Context, points []domain.Coordinate) ([]domain.Coordinate, error)
}
