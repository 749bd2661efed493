package repository

import (
	"context"
	"time"

	"github.com/excursion-service/internal/domain"
)

// RouteRepository определяет методы для работы с маршрутами и их датами
type RouteRepository interface {
	// List возвращает маршруты с точками и фотографиями.
	// При includeUnpublished=false скрытые маршруты не возвращаются.
	List(ctx context.Context, includeUnpublished bool, search string) ([]*domain.Route, error)

	// GetByID возвращает маршрут с точками и фотографиями
	GetByID(ctx context.Context, id int64) (*domain.Route, error)

	// Create создаёт маршрут вместе с точками и фотографиями одной транзакцией
	Create(ctx context.Context, route *domain.Route) (*domain.Route, error)

	// Replace целиком заменяет маршрут: атрибуты, точки и фотографии
	// перезаписываются состоянием из route одной транзакцией
	Replace(ctx context.Context, route *domain.Route) (*domain.Route, error)

	// Archive снимает маршрут с публикации
	Archive(ctx context.Context, id int64) error

	// ListDates возвращает даты проведения маршрута
	ListDates(ctx context.Context, routeID int64) ([]*domain.RouteDate, error)

	// ListAvailableDates возвращает даты, открытые для бронирования:
	// активные, не занятые заявками и не прошедшие
	ListAvailableDates(ctx context.Context, routeID int64) ([]*domain.RouteDate, error)

	// GetDate возвращает дату проведения по ID
	GetDate(ctx context.Context, dateID int64) (*domain.RouteDate, error)

	// FindDate возвращает дату проведения маршрута на конкретный день
	FindDate(ctx context.Context, routeID int64, date time.Time) (*domain.RouteDate, error)

	// CreateDate добавляет дату проведения маршрута
	CreateDate(ctx context.Context, date *domain.RouteDate) (*domain.RouteDate, error)

	// UpdateDate обновляет признак активности даты
	UpdateDate(ctx context.Context, dateID int64, isActive bool) (*domain.RouteDate, error)

	// DeleteDate удаляет дату проведения
	DeleteDate(ctx context.Context, dateID int64) error

	// CountDateBookings возвращает число активных бронирований на дату
	CountDateBookings(ctx context.Context, dateID int64) (int, error)
}
