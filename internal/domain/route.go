package domain

import "time"

// PointType - категория точки маршрута
type PointType string

const (
	PointTypeMuseum   PointType = "museum"
	PointTypeTemple   PointType = "temple"
	PointTypeMonument PointType = "monument"
	PointTypeNature   PointType = "nature"
	PointTypePark     PointType = "park"
	PointTypeCafe     PointType = "cafe"
	PointTypeOther    PointType = "other"
)

// IsValid проверяет, что категория точки известна
func (t PointType) IsValid() bool {
	switch t {
	case PointTypeMuseum, PointTypeTemple, PointTypeMonument,
		PointTypeNature, PointTypePark, PointTypeCafe, PointTypeOther:
		return true
	}
	return false
}

// Route - экскурсионный маршрут с упорядоченными точками и фотографиями
type Route struct {
	ID              int64     `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Description     string    `json:"description" db:"description"`
	DurationHours   float64   `json:"duration_hours" db:"duration_hours"`
	PriceAdult      float64   `json:"price_adult" db:"price_adult"`
	PriceChild      *float64  `json:"price_child" db:"price_child"`
	PriceGroup      *float64  `json:"price_group" db:"price_group"`
	MaxParticipants int       `json:"max_participants" db:"max_participants"`
	IsPublished     bool      `json:"is_published" db:"is_published"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
	Points          []Point   `json:"points"`
	Photos          []Photo   `json:"photos"`
}

// CoverPhoto возвращает путь к обложке: помеченное фото либо первое в списке
func (r *Route) CoverPhoto() *string {
	for i := range r.Photos {
		if r.Photos[i].IsCover {
			return &r.Photos[i].FilePath
		}
	}
	if len(r.Photos) > 0 {
		return &r.Photos[0].FilePath
	}
	return nil
}

// Point - точка интереса на маршруте
type Point struct {
	ID           int64     `json:"id" db:"id"`
	RouteID      int64     `json:"route_id" db:"route_id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	Lat          float64   `json:"lat" db:"lat"`
	Lng          float64   `json:"lng" db:"lng"`
	PointType    PointType `json:"point_type" db:"point_type"`
	VisitMinutes int       `json:"visit_minutes" db:"visit_minutes"`
	OrderIndex   int       `json:"order_index" db:"order_index"`
}

// Photo - фотография маршрута
type Photo struct {
	ID        int64  `json:"id" db:"id"`
	RouteID   int64  `json:"route_id" db:"route_id"`
	FilePath  string `json:"file_path" db:"file_path"`
	SortOrder int    `json:"sort_order" db:"sort_order"`
	IsCover   bool   `json:"is_cover" db:"is_cover"`
}

// RouteDate - доступная дата проведения экскурсии
type RouteDate struct {
	ID        int64     `json:"id" db:"id"`
	RouteID   int64     `json:"route_id" db:"route_id"`
	Date      time.Time `json:"date" db:"date"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	IsBooked  bool      `json:"is_booked" db:"is_booked"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
