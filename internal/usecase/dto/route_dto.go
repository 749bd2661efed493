package dto

import (
	"time"

	"github.com/excursion-service/internal/domain"
)

// PointRequest - точка маршрута в запросе сохранения
type PointRequest struct {
	Title        string  `json:"title" validate:"required"`
	Description  string  `json:"description"`
	Lat          float64 `json:"lat" validate:"required"`
	Lng          float64 `json:"lng" validate:"required"`
	PointType    string  `json:"point_type" validate:"required"`
	VisitMinutes int     `json:"visit_minutes" validate:"gte=0"`
	OrderIndex   int     `json:"order_index" validate:"gte=0"`
}

// PhotoRequest - фотография маршрута в запросе сохранения
type PhotoRequest struct {
	FilePath  string `json:"file_path" validate:"required"`
	SortOrder int    `json:"sort_order" validate:"gte=0"`
	IsCover   bool   `json:"is_cover"`
}

// RouteSaveRequest - запрос создания или полной замены маршрута
type RouteSaveRequest struct {
	Title           string         `json:"title" validate:"required,min=3,max=200"`
	Description     string         `json:"description"`
	DurationHours   float64        `json:"duration_hours" validate:"gt=0"`
	PriceAdult      float64        `json:"price_adult" validate:"gte=0"`
	PriceChild      *float64       `json:"price_child" validate:"omitempty,gte=0"`
	PriceGroup      *float64       `json:"price_group" validate:"omitempty,gte=0"`
	MaxParticipants int            `json:"max_participants" validate:"gt=0"`
	IsPublished     bool           `json:"is_published"`
	Points          []PointRequest `json:"points" validate:"dive"`
	Photos          []PhotoRequest `json:"photos" validate:"dive"`
}

// RouteListItem - маршрут в списке каталога
type RouteListItem struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	DurationHours float64  `json:"duration_hours"`
	PriceAdult    float64  `json:"price_adult"`
	IsPublished   bool     `json:"is_published"`
	CoverPhoto    *string  `json:"cover_photo"`
	PointsCount   int      `json:"points_count"`
	PriceChild    *float64 `json:"price_child"`
	PriceGroup    *float64 `json:"price_group"`
}

// RouteListResponse - список маршрутов
type RouteListResponse struct {
	Routes []RouteListItem `json:"routes"`
	Total  int             `json:"total"`
}

// NewRouteListItem собирает элемент списка из маршрута
func NewRouteListItem(r *domain.Route) RouteListItem {
	return RouteListItem{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		DurationHours: r.DurationHours,
		PriceAdult:    r.PriceAdult,
		IsPublished:   r.IsPublished,
		CoverPhoto:    r.CoverPhoto(),
		PointsCount:   len(r.Points),
		PriceChild:    r.PriceChild,
		PriceGroup:    r.PriceGroup,
	}
}

// RouteDateRequest - запрос добавления даты проведения
type RouteDateRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

// RouteDateUpdateRequest - запрос изменения активности даты
type RouteDateUpdateRequest struct {
	IsActive bool `json:"is_active"`
}

// ParseDate разбирает дату запроса
func (r *RouteDateRequest) ParseDate() (time.Time, error) {
	return time.Parse("2006-01-02", r.Date)
}
