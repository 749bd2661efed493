package domain

import "time"

// CompletedExcursion - проведённая экскурсия по маршруту,
// к которой могут оставлять отзывы участники
type CompletedExcursion struct {
	ID        int64     `json:"id" db:"id"`
	RouteID   int64     `json:"route_id" db:"route_id"`
	StartsAt  time.Time `json:"starts_at" db:"starts_at"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Review - отзыв участника экскурсии
type Review struct {
	ID          int64     `json:"id" db:"id"`
	ExcursionID int64     `json:"excursion_id" db:"excursion_id"`
	AuthorName  string    `json:"author_name" db:"author_name"`
	Email       string    `json:"-" db:"email"`
	Rating      int       `json:"rating" db:"rating"`
	Comment     *string   `json:"comment" db:"comment"`
	IsApproved  bool      `json:"is_approved" db:"is_approved"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// ReviewWithExcursion - отзыв вместе с датой проведения экскурсии
type ReviewWithExcursion struct {
	Review
	ExcursionStartsAt time.Time `json:"excursion_starts_at" db:"excursion_starts_at"`
}
