package itinerary

import (
	"github.com/excursion-service/internal/pkg/utils"
)

// Средняя скорость перемещения между точками, км/ч
const averageSpeedKmh = 30.0

// Stats - производная статистика маршрута
type Stats struct {
	DistanceKm    float64 `json:"distance_km"`
	TravelMinutes float64 `json:"travel_minutes"`
	VisitMinutes  int     `json:"visit_minutes"`
	TotalMinutes  float64 `json:"total_minutes"`
}

// ComputeStatistics считает статистику маршрута заново по текущему
// списку точек: суммарную длину ломаной между последовательными
// точками, время в пути при средней скорости 30 км/ч, суммарное
// время осмотра и общую длительность. Менее двух точек - нулевые
// дистанция и время в пути.
func ComputeStatistics(waypoints []Waypoint) Stats {
	var s Stats

	for _, w := range waypoints {
		s.VisitMinutes += w.VisitMinutes
	}

	if len(waypoints) < 2 {
		s.TotalMinutes = float64(s.VisitMinutes)
		return s
	}

	for i := 1; i < len(waypoints); i++ {
		prev, cur := waypoints[i-1], waypoints[i]
		s.DistanceKm += utils.HaversineDistance(prev.Lat, prev.Lng, cur.Lat, cur.Lng)
	}

	s.TravelMinutes = s.DistanceKm / averageSpeedKmh * 60
	s.TotalMinutes = s.TravelMinutes + float64(s.VisitMinutes)

	return s
}
