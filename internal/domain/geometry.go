package domain

// Coordinate - координата в порядке (lng, lat), как в ответах маршрутизатора
type Coordinate struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

// Источники геометрии маршрута
const (
	GeometrySourceDirections = "directions"
	GeometrySourceStraight   = "straight"
)

// RouteGeometry - ломаная маршрута для отображения на карте
type RouteGeometry struct {
	RouteID     int64        `json:"route_id"`
	Source      string       `json:"source"`
	Coordinates []Coordinate `json:"coordinates"`
}
