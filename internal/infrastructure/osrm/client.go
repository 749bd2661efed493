// Package osrm содержит клиент OSRM Route API для построения
// геометрии маршрута по дорожной сети.
package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/excursion-service/internal/config"
	"github.com/excursion-service/internal/domain"
	"github.com/excursion-service/internal/domain/repository"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	profile    string
	logger     *zap.Logger
}

// NewClient создает новый клиент для OSRM API
func NewClient(cfg *config.DirectionsConfig, logger *zap.Logger) repository.DirectionsRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		profile: cfg.Profile,
		logger:  logger,
	}
}

type routeResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

// GetRouteLine возвращает геометрию маршрута через точки в заданном порядке
func (c *client) GetRouteLine(ctx context.Context, points []domain.Coordinate) ([]domain.Coordinate, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("at least two points are required")
	}

	coordinates := make([]string, 0, len(points))
	for _, p := range points {
		coordinates = append(coordinates, fmt.Sprintf("%f,%f", p.Lng, p.Lat))
	}

	url := fmt.Sprintf("%s/route/v1/%s/%s?overview=full&geometries=geojson",
		c.baseURL,
		c.profile,
		strings.Join(coordinates, ";"),
	)

	c.logger.Debug("Calling OSRM Route API",
		zap.String("url", url),
		zap.Int("points_count", len(points)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("OSRM API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("osrm API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var routeResp routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&routeResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if routeResp.Code != "Ok" {
		c.logger.Error("OSRM API returned non-OK code", zap.String("code", routeResp.Code))
		return nil, fmt.Errorf("osrm API returned code: %s", routeResp.Code)
	}
	if len(routeResp.Routes) == 0 {
		return nil, fmt.Errorf("osrm API returned no routes")
	}

	line := make([]domain.Coordinate, 0, len(routeResp.Routes[0].Geometry.Coordinates))
	for _, c := range routeResp.Routes[0].Geometry.Coordinates {
		if len(c) < 2 {
			continue
		}
		line = append(line, domain.Coordinate{Lng: c[0], Lat: c[1]})
	}

	c.logger.Debug("OSRM Route API call successful", zap.Int("line_points", len(line)))
	return line, nil
}
