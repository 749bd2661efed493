package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/excursion-service/internal/config"
)

func newTestServer() *Server {
	cfg := &config.Config{}
	cfg.Server.CORSOrigins = []string{"http://localhost:3000"}
	cfg.Auth.SecretKey = "test-secret"
	cfg.Media.Dir = "media"
	cfg.Media.PublicURL = "/media"

	return NewServer(cfg, zap.NewNop(), nil, nil, nil, nil, nil, nil, nil, nil, nil, nil)
}

// Модерация отзывов не должна жить под префиксом /admin/routes:
// там группа навешивает правило управления маршрутами, и модератор
// без него получал бы отказ.
func TestServer_ModerationEndpointsOutsideRoutesPrefix(t *testing.T) {
	srv := newTestServer()

	var excursionsList bool
	for _, route := range srv.app.GetRoutes(true) {
		if route.Method == "GET" && route.Path == "/api/v1/admin/excursions" {
			excursionsList = true
		}
		assert.NotContains(t, route.Path, "/admin/routes/:id/excursions")
	}

	assert.True(t, excursionsList, "листинг проведённых экскурсий должен быть зарегистрирован вне группы маршрутов")
}
