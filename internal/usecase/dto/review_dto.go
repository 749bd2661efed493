package dto

import "time"

// ExcursionCreateRequest - регистрация проведённой экскурсии
type ExcursionCreateRequest struct {
	RouteID  int64  `json:"route_id" validate:"required"`
	StartsAt string `json:"starts_at" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

// ParseStartsAt разбирает дату начала экскурсии
func (r *ExcursionCreateRequest) ParseStartsAt() (time.Time, error) {
	return time.Parse(time.RFC3339, r.StartsAt)
}

// ReviewApprovalRequest - решение модератора по отзыву
type ReviewApprovalRequest struct {
	Approved bool `json:"approved"`
}

// ReviewCreateRequest - отзыв участника; подлинность подтверждается
// кодом бронирования
type ReviewCreateRequest struct {
	ExcursionID int64   `json:"excursion_id" validate:"required"`
	BookingCode string  `json:"booking_code" validate:"required"`
	AuthorName  string  `json:"author_name" validate:"required,min=2,max=150"`
	Email       string  `json:"email" validate:"required,email"`
	Rating      int     `json:"rating" validate:"required,min=1,max=5"`
	Comment     *string `json:"comment"`
}
