package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStatistics_Empty(t *testing.T) {
	s := ComputeStatistics(nil)

	assert.Zero(t, s.DistanceKm)
	assert.Zero(t, s.TravelMinutes)
	assert.Zero(t, s.VisitMinutes)
	assert.Zero(t, s.TotalMinutes)
}

func TestComputeStatistics_SingleWaypoint(t *testing.T) {
	ws := []Waypoint{{Lat: 55.75, Lng: 37.62, VisitMinutes: 45}}

	s := ComputeStatistics(ws)

	assert.Zero(t, s.DistanceKm)
	assert.Zero(t, s.TravelMinutes)
	assert.Equal(t, 45, s.VisitMinutes)
	assert.Equal(t, 45.0, s.TotalMinutes)
}

func TestComputeStatistics_TwoWaypoints(t *testing.T) {
	ws := []Waypoint{
		{Lat: 55.7512, Lng: 37.6184, VisitMinutes: 30},
		{Lat: 55.7512, Lng: 37.6294, VisitMinutes: 30},
	}

	s := ComputeStatistics(ws)

	assert.InDelta(t, 0.69, s.DistanceKm, 0.05)
	assert.InDelta(t, 1.38, s.TravelMinutes, 0.1)
	assert.Equal(t, 60, s.VisitMinutes)
	assert.InDelta(t, 61.38, s.TotalMinutes, 0.1)
}

func TestComputeStatistics_UsesCurrentAdjacency(t *testing.T) {
	a := wp("A", 0, 0, 0)
	b := wp("B", 0, 1, 1)
	c := wp("C", 1, 1, 2)

	d := NewDraft()
	d.Waypoints = []Waypoint{a, b, c}
	before := ComputeStatistics(d.Waypoints)

	d.MoveWaypoint(2, -1)

	after := ComputeStatistics(d.Waypoints)

	assert.Equal(t, []string{"A", "C", "B"}, titles(d.Waypoints))
	// A-C по диагонали длиннее A-B вдоль параллели, дистанция должна вырасти
	assert.Greater(t, after.DistanceKm, before.DistanceKm)
	assert.Equal(t, before.VisitMinutes, after.VisitMinutes)
}
