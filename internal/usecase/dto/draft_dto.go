package dto

import (
	"github.com/excursion-service/internal/itinerary"
)

// DraftStartRequest - запрос открытия сессии редактирования.
// RouteID задан - редактирование существующего маршрута,
// иначе создаётся черновик нового.
type DraftStartRequest struct {
	RouteID *int64 `json:"route_id"`
}

// DraftSessionResponse - состояние сессии редактирования
type DraftSessionResponse struct {
	SessionID string           `json:"session_id"`
	Draft     *itinerary.Draft `json:"draft"`
	Stats     itinerary.Stats  `json:"stats"`
}

// DraftMetaRequest - запрос обновления атрибутов черновика
type DraftMetaRequest struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	DurationHours   float64 `json:"duration_hours" validate:"gte=0"`
	PriceAdult      float64 `json:"price_adult" validate:"gte=0"`
	PriceChild      string  `json:"price_child"`
	PriceGroup      string  `json:"price_group"`
	MaxParticipants int     `json:"max_participants" validate:"gte=0"`
}

// AddWaypointRequest - запрос добавления точки; позиция необязательна
type AddWaypointRequest struct {
	Position *itinerary.LatLng `json:"position"`
}

// UpdateWaypointRequest - запрос замены точки по индексу
type UpdateWaypointRequest struct {
	Waypoint itinerary.Waypoint `json:"waypoint"`
}

// MoveWaypointRequest - запрос сдвига точки на соседнюю позицию
type MoveWaypointRequest struct {
	Direction int `json:"direction" validate:"required,oneof=-1 1"`
}

// DragReorderRequest - запрос переноса точки перетаскиванием
type DragReorderRequest struct {
	FromIndex int `json:"from_index" validate:"gte=0"`
	ToIndex   int `json:"to_index" validate:"gte=0"`
}

// AddPhotosRequest - запрос добавления загруженных фотографий
type AddPhotosRequest struct {
	FilePaths []string `json:"file_paths" validate:"required,min=1"`
}

// MovePhotoRequest - запрос сдвига фотографии
type MovePhotoRequest struct {
	Direction int `json:"direction" validate:"required,oneof=-1 1"`
}

// DraftSaveRequest - запрос сохранения черновика в маршрут
type DraftSaveRequest struct {
	Publish bool `json:"publish"`
}

// DraftSaveResponse - результат сохранения черновика
type DraftSaveResponse struct {
	RouteID int64 `json:"route_id"`
}
