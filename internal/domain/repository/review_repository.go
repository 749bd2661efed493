package repository

import (
	"context"

	"github.com/excursion-service/internal/domain"
)

// ReviewRepository определяет методы для работы с проведёнными
// экскурсиями и отзывами
type ReviewRepository interface {
	// CreateExcursion регистрирует проведённую экскурсию
	CreateExcursion(ctx context.Context, excursion *domain.CompletedExcursion) (*domain.CompletedExcursion, error)

	// ListExcursions возвращает проведённые экскурсии маршрута
	ListExcursions(ctx context.Context, routeID int64) ([]*domain.CompletedExcursion, error)

	// GetExcursion возвращает проведённую экскурсию по ID
	GetExcursion(ctx context.Context, id int64) (*domain.CompletedExcursion, error)

	// CreateReview сохраняет отзыв
	CreateReview(ctx context.Context, review *domain.Review) (*domain.Review, error)

	// GetReview возвращает отзыв по ID
	GetReview(ctx context.Context, id int64) (*domain.Review, error)

	// ListByRoute возвращает отзывы по маршруту.
	// При approvedOnly=true возвращаются только одобренные.
	ListByRoute(ctx context.Context, routeID int64, approvedOnly bool) ([]*domain.ReviewWithExcursion, error)

	// ListPending возвращает отзывы, ожидающие модерации
	ListPending(ctx context.Context) ([]*domain.ReviewWithExcursion, error)

	// SetApproval одобряет или отклоняет отзыв
	SetApproval(ctx context.Context, id int64, approved bool) (*domain.Review, error)

	// DeleteReview удаляет отзыв
	DeleteReview(ctx context.Context, id int64) error
}
