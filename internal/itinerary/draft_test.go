package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/excursion-service/internal/domain"
)

func wp(title string, lat, lng float64, index int) Waypoint {
	return Waypoint{
		Title:        title,
		PointType:    domain.PointTypeOther,
		Lat:          lat,
		Lng:          lng,
		VisitMinutes: 30,
		OrderIndex:   index,
	}
}

func titles(ws []Waypoint) []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.Title)
	}
	return out
}

func indices(ws []Waypoint) []int {
	out := make([]int, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.OrderIndex)
	}
	return out
}

func TestDraft_AddWaypoint_Defaults(t *testing.T) {
	d := NewDraft()

	w := d.AddWaypoint(nil)

	assert.Equal(t, "Новая точка", w.Title)
	assert.Equal(t, domain.PointTypeOther, w.PointType)
	assert.Equal(t, 30, w.VisitMinutes)
	assert.Equal(t, 0, w.OrderIndex)
	assert.Equal(t, 55.751244, w.Lat)
	assert.Equal(t, 37.618423, w.Lng)
}

func TestDraft_AddWaypoint_InheritsLastPosition(t *testing.T) {
	d := NewDraft()
	d.Waypoints = []Waypoint{wp("A", 59.93, 30.33, 0)}

	w := d.AddWaypoint(nil)

	assert.Equal(t, 59.93, w.Lat)
	assert.Equal(t, 30.33, w.Lng)
	assert.Equal(t, 1, w.OrderIndex)
}

func TestDraft_AddWaypoint_ExplicitPositionWins(t *testing.T) {
	d := NewDraft()
	d.Waypoints = []Waypoint{wp("A", 59.93, 30.33, 0)}

	w := d.AddWaypoint(&LatLng{Lat: 55.03, Lng: 82.92})

	assert.Equal(t, 55.03, w.Lat)
	assert.Equal(t, 82.92, w.Lng)
}

func TestDraft_UpdateWaypoint(t *testing.T) {
	d := NewDraft()
	d.Waypoints = []Waypoint{wp("A", 1, 1, 0), wp("B", 2, 2, 1)}

	updated := wp("B2", 3, 3, 1)
	updated.PointType = domain.PointTypeMuseum
	d.UpdateWaypoint(1, updated)

	assert.Equal(t, "B2", d.Waypoints[1].Title)
	assert.Equal(t, domain.PointTypeMuseum, d.Waypoints[1].PointType)
}

func TestDraft_UpdateWaypoint_OutOfRangeNoop(t *testing.T) {
	d := NewDraft()
	d.Waypoints = []Waypoint{wp("A", 1, 1, 0)}

	d.UpdateWaypoint(5, wp("X", 0, 0, 5))
	d.UpdateWaypoint(-1, wp("X", 0, 0, 0))

	assert.Equal(t, []string{"A"}, titles(d.Waypoints))
}

func TestDraft_MoveWaypoint(t *testing.T) {
	tests := []struct {
		name      string
		index     int
		direction int
		want      []string
	}{
		{name: "вниз из начала", index: 0, direction: 1, want: []string{"B", "A", "C"}},
		{name: "вверх из конца", index: 2, direction: -1, want: []string{"A", "C", "B"}},
		{name: "вверх за границу - no-op", index: 0, direction: -1, want: []string{"A", "B", "C"}},
		{name: "вниз за границу - no-op", index: 2, direction: 1, want: []string{"A", "B", "C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDraft()
			d.Waypoints = []Waypoint{wp("A", 0, 0, 0), wp("B", 0, 1, 1), wp("C", 1, 1, 2)}

			d.MoveWaypoint(tt.index, tt.direction)

			assert.Equal(t, tt.want, titles(d.Waypoints))
			assert.Equal(t, []int{0, 1, 2}, indices(d.Waypoints))
		})
	}
}

func TestDraft_MoveWaypoint_RepairsDriftedIndices(t *testing.T) {
	d := NewDraft()
	// индексы намеренно рассинхронизированы с позицией в массиве
	d.Waypoints = []Waypoint{wp("A", 0, 0, 2), wp("B", 0, 1, 0), wp("C", 1, 1, 1)}

	d.MoveWaypoint(1, 1)

	assert.Equal(t, []string{"A", "C", "B"}, titles(d.Waypoints))
	assert.Equal(t, []int{0, 1, 2}, indices(d.Waypoints))
}

func TestDraft_RemoveWaypoint(t *testing.T) {
	d := NewDraft()
	d.Waypoints = []Waypoint{wp("A", 0, 0, 0), wp("B", 0, 1, 1), wp("C", 1, 1, 2)}

	d.RemoveWaypoint(1)

	assert.Equal(t, []string{"A", "C"}, titles(d.Waypoints))
	assert.Equal(t, []int{0, 1}, indices(d.Waypoints))
}

func TestDraft_RemoveWaypoint_OutOfRangeNoop(t *testing.T) {
	d := NewDraft()
	d.Waypoints = []Waypoint{wp("A", 0, 0, 0)}

	d.RemoveWaypoint(3)

	assert.Len(t, d.Waypoints, 1)
}

func TestDraft_ReorderByDrag_DoesNotReindex(t *testing.T) {
	d := NewDraft()
	d.Waypoints = []Waypoint{wp("A", 0, 0, 0), wp("B", 0, 1, 1), wp("C", 1, 1, 2)}

	d.ReorderByDrag(2, 0)

	// порядок в массиве изменился, но старые индексы сохранились:
	// их чинит сборка полезной нагрузки
	assert.Equal(t, []string{"C", "A", "B"}, titles(d.Waypoints))
	assert.Equal(t, []int{2, 0, 1}, indices(d.Waypoints))
}

func TestDraft_ReorderByDrag_SamePositionNoop(t *testing.T) {
	d := NewDraft()
	d.Waypoints = []Waypoint{wp("A", 0, 0, 0), wp("B", 0, 1, 1)}

	d.ReorderByDrag(1, 1)

	assert.Equal(t, []string{"A", "B"}, titles(d.Waypoints))
}

func TestFromRoute_ReindexesFromArrayOrder(t *testing.T) {
	child := 500.0
	r := &domain.Route{
		ID:            7,
		Title:         "Центр города",
		DurationHours: 2,
		PriceAdult:    1000,
		PriceChild:    &child,
		Points: []domain.Point{
			{ID: 11, Title: "A", PointType: domain.PointTypeMuseum, Lat: 1, Lng: 1, VisitMinutes: 20, OrderIndex: 5},
			{ID: 12, Title: "B", PointType: domain.PointTypeCafe, Lat: 2, Lng: 2, VisitMinutes: 40, OrderIndex: 0},
		},
		Photos: []domain.Photo{
			{FilePath: "media/a.jpg", SortOrder: 3, IsCover: false},
			{FilePath: "media/b.jpg", SortOrder: 1, IsCover: true},
		},
	}

	d := FromRoute(r)

	require.NotNil(t, d.RouteID)
	assert.Equal(t, int64(7), *d.RouteID)
	assert.Equal(t, "500", d.PriceChild)
	assert.Equal(t, "", d.PriceGroup)
	assert.Equal(t, []int{0, 1}, indices(d.Waypoints))
	require.NotNil(t, d.Waypoints[0].ID)
	assert.Equal(t, int64(11), *d.Waypoints[0].ID)
	assert.Equal(t, []int{0, 1}, []int{d.Photos[0].SortOrder, d.Photos[1].SortOrder})
	assert.True(t, d.Photos[1].IsCover)
}
