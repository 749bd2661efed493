package domain

import "time"

// BookingStatus - статус заявки на бронирование
type BookingStatus string

const (
	BookingStatusNew        BookingStatus = "new"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusCanceled   BookingStatus = "canceled"
)

// IsValid проверяет, что статус известен
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusNew, BookingStatusInProgress, BookingStatusConfirmed, BookingStatusCanceled:
		return true
	}
	return false
}

// Booking - заявка на бронирование экскурсии
type Booking struct {
	ID              int64         `json:"id" db:"id"`
	Code            string        `json:"code" db:"code"`
	RouteID         int64         `json:"route_id" db:"route_id"`
	ClientName      string        `json:"client_name" db:"client_name"`
	Phone           string        `json:"phone" db:"phone"`
	Email           string        `json:"email" db:"email"`
	DesiredDate     time.Time     `json:"desired_date" db:"desired_date"`
	Participants    int           `json:"participants" db:"participants"`
	Comment         *string       `json:"comment" db:"comment"`
	Status          BookingStatus `json:"status" db:"status"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
	StatusUpdatedAt time.Time     `json:"status_updated_at" db:"status_updated_at"`
	InternalNotes   *string       `json:"internal_notes" db:"internal_notes"`
}

// BookingWithRoute - заявка вместе с названием маршрута
type BookingWithRoute struct {
	Booking
	RouteTitle string `json:"route_title" db:"route_title"`
}

// BookingFilter - фильтры списка заявок
type BookingFilter struct {
	Status   *BookingStatus
	RouteID  *int64
	Search   string
	DateFrom *time.Time
	DateTo   *time.Time
}
