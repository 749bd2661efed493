// Package itinerary реализует модель черновика маршрута:
// упорядоченный набор точек, операции редактирования с поддержанием
// непрерывной нумерации, инвариант обложки в списке фотографий,
// расчёт производной статистики и сборку полезной нагрузки сохранения.
package itinerary

import (
	"strconv"

	"github.com/excursion-service/internal/domain"
)

// Координаты центра по умолчанию (Москва) для первой точки пустого маршрута
const (
	fallbackLat = 55.751244
	fallbackLng = 37.618423
)

// LatLng - географическая позиция точки
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Waypoint - точка маршрута в состоянии редактирования.
// ID появляется только после сохранения на сервере.
type Waypoint struct {
	ID           *int64           `json:"id,omitempty"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	PointType    domain.PointType `json:"point_type"`
	Lat          float64          `json:"lat"`
	Lng          float64          `json:"lng"`
	VisitMinutes int              `json:"visit_minutes"`
	OrderIndex   int              `json:"order_index"`
}

// Photo - фотография в состоянии редактирования
type Photo struct {
	FilePath  string `json:"file_path"`
	SortOrder int    `json:"sort_order"`
	IsCover   bool   `json:"is_cover"`
}

// Draft - редактируемый черновик маршрута. Черновик принадлежит
// одной сессии редактирования, конкурентного доступа нет.
//
// Необязательные цены хранятся как текст полей формы: пустая строка
// означает отсутствие значения и превращается в null при сборке
// полезной нагрузки сохранения.
type Draft struct {
	RouteID         *int64     `json:"route_id,omitempty"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	DurationHours   float64    `json:"duration_hours"`
	PriceAdult      float64    `json:"price_adult"`
	PriceChild      string     `json:"price_child"`
	PriceGroup      string     `json:"price_group"`
	MaxParticipants int        `json:"max_participants"`
	IsPublished     bool       `json:"is_published"`
	Waypoints       []Waypoint `json:"waypoints"`
	Photos          []Photo    `json:"photos"`
}

// NewDraft создаёт черновик нового маршрута со значениями по умолчанию
func NewDraft() *Draft {
	return &Draft{
		DurationHours:   3,
		PriceAdult:      1500,
		MaxParticipants: 15,
		Waypoints:       []Waypoint{},
		Photos:          []Photo{},
	}
}

// FromRoute создаёт черновик из сохранённого маршрута.
// Порядковые индексы выводятся заново из позиции в массиве,
// сохранённое значение order_index не используется.
func FromRoute(r *domain.Route) *Draft {
	d := &Draft{
		RouteID:         &r.ID,
		Title:           r.Title,
		Description:     r.Description,
		DurationHours:   r.DurationHours,
		PriceAdult:      r.PriceAdult,
		PriceChild:      formatOptionalPrice(r.PriceChild),
		PriceGroup:      formatOptionalPrice(r.PriceGroup),
		MaxParticipants: r.MaxParticipants,
		IsPublished:     r.IsPublished,
		Waypoints:       make([]Waypoint, 0, len(r.Points)),
		Photos:          make([]Photo, 0, len(r.Photos)),
	}

	for i, p := range r.Points {
		id := p.ID
		d.Waypoints = append(d.Waypoints, Waypoint{
			ID:           &id,
			Title:        p.Title,
			Description:  p.Description,
			PointType:    p.PointType,
			Lat:          p.Lat,
			Lng:          p.Lng,
			VisitMinutes: p.VisitMinutes,
			OrderIndex:   i,
		})
	}
	for i, ph := range r.Photos {
		d.Photos = append(d.Photos, Photo{
			FilePath:  ph.FilePath,
			SortOrder: i,
			IsCover:   ph.IsCover,
		})
	}

	return d
}

// AddWaypoint добавляет точку из шаблона по умолчанию в конец списка.
// Позиция берётся из pos, иначе наследуется от последней точки,
// для пустого маршрута используется центр по умолчанию.
func (d *Draft) AddWaypoint(pos *LatLng) Waypoint {
	w := Waypoint{
		Title:        "Новая точка",
		PointType:    domain.PointTypeOther,
		Lat:          fallbackLat,
		Lng:          fallbackLng,
		VisitMinutes: 30,
		OrderIndex:   len(d.Waypoints),
	}

	if last := len(d.Waypoints) - 1; last >= 0 {
		w.Lat = d.Waypoints[last].Lat
		w.Lng = d.Waypoints[last].Lng
	}
	if pos != nil {
		w.Lat = pos.Lat
		w.Lng = pos.Lng
	}

	d.Waypoints = append(d.Waypoints, w)
	return w
}

// UpdateWaypoint заменяет точку по индексу.
// Выход за границы - no-op: интерфейс передаёт только индексы
// из текущего отображаемого списка.
func (d *Draft) UpdateWaypoint(index int, w Waypoint) {
	if index < 0 || index >= len(d.Waypoints) {
		return
	}
	d.Waypoints[index] = w
}

// MoveWaypoint меняет точку местами с соседней (direction: -1 вверх, +1 вниз)
// и перенумеровывает весь список, чтобы гарантировать непрерывность
// индексов даже при накопившемся дрейфе.
func (d *Draft) MoveWaypoint(index, direction int) {
	target := index + direction
	if index < 0 || index >= len(d.Waypoints) || target < 0 || target >= len(d.Waypoints) {
		return
	}
	d.Waypoints[index], d.Waypoints[target] = d.Waypoints[target], d.Waypoints[index]
	d.reindexWaypoints()
}

// RemoveWaypoint удаляет точку по индексу и перенумеровывает остальные
func (d *Draft) RemoveWaypoint(index int) {
	if index < 0 || index >= len(d.Waypoints) {
		return
	}
	d.Waypoints = append(d.Waypoints[:index], d.Waypoints[index+1:]...)
	d.reindexWaypoints()
}

// ReorderByDrag вырезает точку и вставляет её на новое место.
// Поле order_index намеренно НЕ перенумеровывается: порядком при
// сериализации владеет позиция в массиве, индексы выставляются
// заново при сборке полезной нагрузки (см. BuildSavePayload).
func (d *Draft) ReorderByDrag(fromIndex, toIndex int) {
	if fromIndex == toIndex {
		return
	}
	if fromIndex < 0 || fromIndex >= len(d.Waypoints) || toIndex < 0 || toIndex >= len(d.Waypoints) {
		return
	}
	w := d.Waypoints[fromIndex]
	rest := append(d.Waypoints[:fromIndex:fromIndex], d.Waypoints[fromIndex+1:]...)
	d.Waypoints = append(rest[:toIndex:toIndex], append([]Waypoint{w}, rest[toIndex:]...)...)
}

func (d *Draft) reindexWaypoints() {
	for i := range d.Waypoints {
		d.Waypoints[i].OrderIndex = i
	}
}

func formatOptionalPrice(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
