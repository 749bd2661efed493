package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/excursion-service/internal/domain"
)

func TestBuildSavePayload_ForcesIndicesToArrayPosition(t *testing.T) {
	d := NewDraft()
	d.Title = "Вечерняя прогулка"
	d.Waypoints = []Waypoint{wp("A", 0, 0, 0), wp("B", 0, 1, 1), wp("C", 1, 1, 2)}

	// перетаскивание оставляет устаревшие индексы
	d.ReorderByDrag(2, 0)
	require.Equal(t, []int{2, 0, 1}, indices(d.Waypoints))

	p, err := BuildSavePayload(d, false)
	require.NoError(t, err)

	require.Len(t, p.Points, 3)
	assert.Equal(t, "C", p.Points[0].Title)
	assert.Equal(t, "A", p.Points[1].Title)
	assert.Equal(t, "B", p.Points[2].Title)
	for i, pt := range p.Points {
		assert.Equal(t, i, pt.OrderIndex)
	}
}

func TestBuildSavePayload_PriceCoercion(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    *float64
		wantErr bool
	}{
		{name: "пустая строка - null", raw: "", want: nil},
		{name: "пробелы - null", raw: "   ", want: nil},
		{name: "число", raw: "750.5", want: ptrFloat(750.5)},
		{name: "мусор - ошибка", raw: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDraft()
			d.PriceChild = tt.raw

			p, err := BuildSavePayload(d, false)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, p.PriceChild)
			} else {
				require.NotNil(t, p.PriceChild)
				assert.Equal(t, *tt.want, *p.PriceChild)
			}
		})
	}
}

func TestBuildSavePayload_PublishFlag(t *testing.T) {
	d := NewDraft()
	d.IsPublished = false

	p, err := BuildSavePayload(d, true)
	require.NoError(t, err)
	assert.True(t, p.IsPublished)

	p, err = BuildSavePayload(d, false)
	require.NoError(t, err)
	assert.False(t, p.IsPublished)
}

func TestBuildSavePayload_PhotoCoverInvariant(t *testing.T) {
	d := NewDraft()
	d.Photos = []Photo{
		{FilePath: "media/a.jpg", SortOrder: 0},
		{FilePath: "media/b.jpg", SortOrder: 1},
	}

	p, err := BuildSavePayload(d, false)
	require.NoError(t, err)

	// ни одна не помечена - обложкой становится первая
	require.Len(t, p.Photos, 2)
	assert.True(t, p.Photos[0].IsCover)
	assert.False(t, p.Photos[1].IsCover)

	// помечены обе - остаётся только первая из помеченных
	d.Photos[0].IsCover = true
	d.Photos[1].IsCover = true

	p, err = BuildSavePayload(d, false)
	require.NoError(t, err)
	assert.True(t, p.Photos[0].IsCover)
	assert.False(t, p.Photos[1].IsCover)
}

func TestBuildSavePayload_RoundTripWithoutEdits(t *testing.T) {
	child := 400.0
	r := roundTripRoute(&child)

	d := FromRoute(r)
	p, err := BuildSavePayload(d, r.IsPublished)
	require.NoError(t, err)

	require.Len(t, p.Points, len(r.Points))
	for i, pt := range p.Points {
		assert.Equal(t, r.Points[i].Title, pt.Title)
		assert.Equal(t, r.Points[i].PointType, pt.PointType)
		assert.Equal(t, r.Points[i].Lat, pt.Lat)
		assert.Equal(t, r.Points[i].Lng, pt.Lng)
		assert.Equal(t, r.Points[i].VisitMinutes, pt.VisitMinutes)
		assert.Equal(t, i, pt.OrderIndex)
	}
	require.NotNil(t, p.PriceChild)
	assert.Equal(t, 400.0, *p.PriceChild)
	assert.Nil(t, p.PriceGroup)
}

func ptrFloat(v float64) *float64 { return &v }

func roundTripRoute(priceChild *float64) *domain.Route {
	return &domain.Route{
		ID:            3,
		Title:         "Старый город",
		DurationHours: 2.5,
		PriceAdult:    1200,
		PriceChild:    priceChild,
		IsPublished:   true,
		Points: []domain.Point{
			{ID: 1, Title: "Кремль", PointType: domain.PointTypeMuseum, Lat: 55.752, Lng: 37.617, VisitMinutes: 60, OrderIndex: 0},
			{ID: 2, Title: "Набережная", PointType: domain.PointTypeNature, Lat: 55.747, Lng: 37.610, VisitMinutes: 20, OrderIndex: 1},
		},
	}
}
