package osrm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/excursion-service/internal/config"
	"github.com/excursion-service/internal/domain"
)

func newTestClient(baseURL string) *client {
	return NewClient(&config.DirectionsConfig{
		BaseURL:        baseURL,
		Profile:        "driving",
		RequestTimeout: 5,
	}, zap.NewNop()).(*client)
}

func TestGetRouteLine_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/route/v1/driving/")
		assert.Equal(t, "full", r.URL.Query().Get("overview"))
		assert.Equal(t, "geojson", r.URL.Query().Get("geometries"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"code": "Ok",
			"routes": [{
				"geometry": {
					"coordinates": [[37.6184, 55.7512], [37.6200, 55.7530], [37.6294, 55.7512]]
				}
			}]
		}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	line, err := c.GetRouteLine(context.Background(), []domain.Coordinate{
		{Lng: 37.6184, Lat: 55.7512},
		{Lng: 37.6294, Lat: 55.7512},
	})

	require.NoError(t, err)
	require.Len(t, line, 3)
	assert.Equal(t, 37.6184, line[0].Lng)
	assert.Equal(t, 55.7512, line[0].Lat)
	assert.Equal(t, 37.6294, line[2].Lng)
}

func TestGetRouteLine_TooFewPoints(t *testing.T) {
	c := newTestClient("http://localhost")

	_, err := c.GetRouteLine(context.Background(), []domain.Coordinate{{Lng: 37.6, Lat: 55.7}})

	assert.Error(t, err)
}

func TestGetRouteLine_NonOKCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code": "NoRoute", "routes": []}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	_, err := c.GetRouteLine(context.Background(), []domain.Coordinate{
		{Lng: 0, Lat: 0},
		{Lng: 1, Lat: 1},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "NoRoute")
}

func TestGetRouteLine_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Bad Request", http.StatusBadRequest)
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	_, err := c.GetRouteLine(context.Background(), []domain.Coordinate{
		{Lng: 0, Lat: 0},
		{Lng: 1, Lat: 1},
	})

	assert.Error(t, err)
}
