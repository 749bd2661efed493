package repository

import (
	"context"

	"github.com/excursion-service/internal/domain"
)

// TariffRepository определяет методы для работы с тарифами
type TariffRepository interface {
	// List возвращает все тарифы
	List(ctx context.Context) ([]*domain.Tariff, error)

	// GetByID возвращает тариф по ID
	GetByID(ctx context.Context, id int64) (*domain.Tariff, error)

	// GetByTitle возвращает тариф по названию
	GetByTitle(ctx context.Context, title string) (*domain.Tariff, error)

	// Create создаёт тариф
	Create(ctx context.Context, tariff *domain.Tariff) (*domain.Tariff, error)

	// Update обновляет тариф
	Update(ctx context.Context, tariff *domain.Tariff) (*domain.Tariff, error)

	// Delete удаляет тариф
	Delete(ctx context.Context, id int64) error
}
