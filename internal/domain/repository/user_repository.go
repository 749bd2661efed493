package repository

import (
	"context"

	"github.com/excursion-service/internal/domain"
)

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	// GetByID возвращает пользователя по ID
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail возвращает пользователя по email
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List возвращает всех пользователей
	List(ctx context.Context) ([]*domain.User, error)

	// Create создаёт пользователя
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// Update обновляет атрибуты пользователя
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
}
