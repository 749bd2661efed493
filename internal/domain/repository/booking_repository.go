package repository

import (
	"context"

	"github.com/excursion-service/internal/domain"
)

// BookingRepository определяет методы для работы с бронированиями
type BookingRepository interface {
	// Create сохраняет бронирование
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)

	// GetByID возвращает бронирование по ID
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)

	// GetByCode возвращает бронирование по коду
	GetByCode(ctx context.Context, code string) (*domain.Booking, error)

	// List возвращает бронирования с данными маршрута по фильтру
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.BookingWithRoute, error)

	// Update меняет статус бронирования и служебные заметки;
	// nil-поля не затрагиваются
	Update(ctx context.Context, id int64, status *domain.BookingStatus, internalNotes *string) (*domain.Booking, error)

	// CountByCodePrefix возвращает число бронирований с кодом,
	// начинающимся с prefix. Используется для генерации порядкового
	// номера в коде бронирования.
	CountByCodePrefix(ctx context.Context, prefix string) (int, error)

	// SumParticipants возвращает число участников в активных
	// бронированиях на дату проведения
	SumParticipants(ctx context.Context, routeDateID int64) (int, error)
}
