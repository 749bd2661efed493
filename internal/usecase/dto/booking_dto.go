package dto

import "time"

// BookingCreateRequest - заявка на бронирование с витрины
type BookingCreateRequest struct {
	RouteID      int64   `json:"route_id" validate:"required"`
	ClientName   string  `json:"client_name" validate:"required,min=2,max=150"`
	Phone        string  `json:"phone" validate:"required,min=5,max=30"`
	Email        string  `json:"email" validate:"required,email"`
	DesiredDate  string  `json:"desired_date" validate:"required,datetime=2006-01-02"`
	Participants int     `json:"participants" validate:"required,gt=0"`
	Comment      *string `json:"comment"`
	Consent      bool    `json:"consent"`
}

// ParseDesiredDate разбирает желаемую дату экскурсии
func (r *BookingCreateRequest) ParseDesiredDate() (time.Time, error) {
	return time.Parse("2006-01-02", r.DesiredDate)
}

// BookingUpdateRequest - запрос изменения заявки менеджером:
// статус и служебные заметки обновляются независимо
type BookingUpdateRequest struct {
	Status        *string `json:"status" validate:"omitempty,oneof=new in_progress confirmed canceled"`
	InternalNotes *string `json:"internal_notes"`
}

// BookingListQuery - фильтры списка заявок
type BookingListQuery struct {
	Status   string `query:"status"`
	RouteID  int64  `query:"route_id"`
	Search   string `query:"search"`
	DateFrom string `query:"date_from"`
	DateTo   string `query:"date_to"`
}
