package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/excursion-service/internal/domain"
	"github.com/excursion-service/internal/pkg/errors"
	"github.com/excursion-service/internal/usecase"
	"github.com/excursion-service/internal/usecase/dto"
)

func newRouteUseCase(routeRepo *MockRouteRepository, cacheRepo *MockCacheRepository, directionsRepo *MockDirectionsRepository, streamRepo *MockStreamRepository) *usecase.RouteUseCase {
	logger := zap.NewNop()
	return usecase.NewRouteUseCase(routeRepo, &MockBookingRepository{}, cacheRepo, directionsRepo, usecase.NewAuditPublisher(streamRepo, logger), time.Minute, time.Minute, logger)
}

func TestRouteUseCase_Replace_ForcesChildOrder(t *testing.T) {
	routeRepo := &MockRouteRepository{}
	cacheRepo := &MockCacheRepository{}
	streamRepo := &MockStreamRepository{}
	ctx := context.Background()

	var replaced *domain.Route
	routeRepo.On("Replace", ctx, mock.AnythingOfType("*domain.Route")).
		Run(func(args mock.Arguments) {
			replaced = args.Get(1).(*domain.Route)
		}).
		Return(&domain.Route{ID: 5}, nil)
	cacheRepo.On("Delete", ctx, mock.AnythingOfType("string")).Return(nil)
	streamRepo.On("PublishToStream", ctx, domain.StreamAuditLog, mock.Anything).Return(nil)

	uc := newRouteUseCase(routeRepo, cacheRepo, &MockDirectionsRepository{}, streamRepo)
	_, err := uc.Replace(ctx, 1, 5, &dto.RouteSaveRequest{
		Title:           "Центр",
		DurationHours:   2,
		MaxParticipants: 10,
		Points: []dto.PointRequest{
			// индексы в запросе рассинхронизированы с порядком
			{Title: "A", Lat: 55.75, Lng: 37.61, PointType: "museum", VisitMinutes: 30, OrderIndex: 9},
			{Title: "B", Lat: 55.76, Lng: 37.62, PointType: "cafe", VisitMinutes: 20, OrderIndex: 0},
		},
		Photos: []dto.PhotoRequest{
			{FilePath: "media/a.jpg", SortOrder: 4},
			{FilePath: "media/b.jpg", SortOrder: 1},
		},
	})

	require.NoError(t, err)
	require.NotNil(t, replaced)
	assert.Equal(t, []int{0, 1}, []int{replaced.Points[0].OrderIndex, replaced.Points[1].OrderIndex})
	assert.Equal(t, "A", replaced.Points[0].Title)
	// обложка не задана - назначается первая фотография
	assert.True(t, replaced.Photos[0].IsCover)
	assert.Equal(t, []int{0, 1}, []int{replaced.Photos[0].SortOrder, replaced.Photos[1].SortOrder})
}

func TestRouteUseCase_Replace_UnknownPointType(t *testing.T) {
	uc := newRouteUseCase(&MockRouteRepository{}, &MockCacheRepository{}, &MockDirectionsRepository{}, &MockStreamRepository{})

	_, err := uc.Replace(context.Background(), 1, 5, &dto.RouteSaveRequest{
		Title:           "Центр",
		DurationHours:   2,
		MaxParticipants: 10,
		Points: []dto.PointRequest{
			{Title: "A", Lat: 55.75, Lng: 37.61, PointType: "castle", VisitMinutes: 30},
		},
	})

	require.Error(t, err)
}

func TestRouteUseCase_GetPublished_HidesUnpublished(t *testing.T) {
	routeRepo := &MockRouteRepository{}
	cacheRepo := &MockCacheRepository{}
	ctx := context.Background()

	cacheRepo.On("Get", ctx, mock.AnythingOfType("string")).Return(nil, nil)
	cacheRepo.On("Set", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	routeRepo.On("GetByID", ctx, int64(5)).Return(&domain.Route{ID: 5, IsPublished: false}, nil)

	uc := newRouteUseCase(routeRepo, cacheRepo, &MockDirectionsRepository{}, &MockStreamRepository{})
	_, err := uc.GetPublished(ctx, 5)

	assert.Equal(t, errors.ErrRouteNotFound, err)
}

func TestRouteUseCase_DeleteDate_BookedDateProtected(t *testing.T) {
	routeRepo := &MockRouteRepository{}
	ctx := context.Background()

	routeRepo.On("CountDateBookings", ctx, int64(3)).Return(2, nil)

	uc := newRouteUseCase(routeRepo, &MockCacheRepository{}, &MockDirectionsRepository{}, &MockStreamRepository{})
	err := uc.DeleteDate(ctx, 1, 3)

	assert.Equal(t, errors.ErrRouteDateBooked, err)
	routeRepo.AssertNotCalled(t, "DeleteDate", mock.Anything, mock.Anything)
}

func TestRouteUseCase_AddDate_DuplicateRejected(t *testing.T) {
	routeRepo := &MockRouteRepository{}
	ctx := context.Background()

	date, _ := time.Parse("2006-01-02", "2026-09-15")
	routeRepo.On("GetByID", ctx, int64(5)).Return(&domain.Route{ID: 5}, nil)
	routeRepo.On("FindDate", ctx, int64(5), date).Return(&domain.RouteDate{ID: 1}, nil)

	uc := newRouteUseCase(routeRepo, &MockCacheRepository{}, &MockDirectionsRepository{}, &MockStreamRepository{})
	_, err := uc.AddDate(ctx, 1, 5, &dto.RouteDateRequest{Date: "2026-09-15"})

	assert.Equal(t, errors.ErrRouteDateExists, err)
}

func TestRouteUseCase_GetGeometry_FallsBackToStraightLine(t *testing.T) {
	routeRepo := &MockRouteRepository{}
	cacheRepo := &MockCacheRepository{}
	directionsRepo := &MockDirectionsRepository{}
	ctx := context.Background()

	route := &domain.Route{
		ID:          5,
		IsPublished: true,
		Points: []domain.Point{
			{Lat: 55.75, Lng: 37.61},
			{Lat: 55.76, Lng: 37.62},
		},
	}
	cacheRepo.On("Get", ctx, mock.AnythingOfType("string")).Return(nil, nil)
	cacheRepo.On("Set", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	routeRepo.On("GetByID", ctx, int64(5)).Return(route, nil)
	directionsRepo.On("GetRouteLine", ctx, mock.Anything).Return(nil, assert.AnError)

	uc := newRouteUseCase(routeRepo, cacheRepo, directionsRepo, &MockStreamRepository{})
	geometry, err := uc.GetGeometry(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, domain.GeometrySourceStraight, geometry.Source)
	require.Len(t, geometry.Coordinates, 2)
	assert.Equal(t, 37.61, geometry.Coordinates[0].Lng)
}

func TestRouteUseCase_GetGeometry_UsesDirections(t *testing.T) {
	routeRepo := &MockRouteRepository{}
	cacheRepo := &MockCacheRepository{}
	directionsRepo := &MockDirectionsRepository{}
	ctx := context.Background()

	route := &domain.Route{
		ID:          5,
		IsPublished: true,
		Points: []domain.Point{
			{Lat: 55.75, Lng: 37.61},
			{Lat: 55.76, Lng: 37.62},
		},
	}
	line := []domain.Coordinate{
		{Lng: 37.61, Lat: 55.75},
		{Lng: 37.615, Lat: 55.755},
		{Lng: 37.62, Lat: 55.76},
	}
	cacheRepo.On("Get", ctx, mock.AnythingOfType("string")).Return(nil, nil)
	cacheRepo.On("Set", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	routeRepo.On("GetByID", ctx, int64(5)).Return(route, nil)
	directionsRepo.On("GetRouteLine", ctx, mock.Anything).Return(line, nil)

	uc := newRouteUseCase(routeRepo, cacheRepo, directionsRepo, &MockStreamRepository{})
	geometry, err := uc.GetGeometry(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, domain.GeometrySourceDirections, geometry.Source)
	assert.Len(t, geometry.Coordinates, 3)
}
