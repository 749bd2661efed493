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
	"github.com/excursion-service/internal/itinerary"
	"github.com/excursion-service/internal/usecase"
	"github.com/excursion-service/internal/usecase/dto"
)

func newDraftUseCase(draftRepo *MockDraftRepository, routeRepo *MockRouteRepository, cacheRepo *MockCacheRepository, streamRepo *MockStreamRepository) *usecase.DraftUseCase {
	logger := zap.NewNop()
	audit := usecase.NewAuditPublisher(streamRepo, logger)
	routes := usecase.NewRouteUseCase(routeRepo, &MockBookingRepository{}, cacheRepo, &MockDirectionsRepository{}, audit, time.Minute, time.Minute, logger)
	return usecase.NewDraftUseCase(draftRepo, routeRepo, routes, logger)
}

func TestDraftUseCase_Start_NewRoute(t *testing.T) {
	draftRepo := &MockDraftRepository{}
	routeRepo := &MockRouteRepository{}
	ctx := context.Background()

	draftRepo.On("Save", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("*itinerary.Draft")).Return(nil)

	uc := newDraftUseCase(draftRepo, routeRepo, &MockCacheRepository{}, &MockStreamRepository{})
	resp, err := uc.Start(ctx, &dto.DraftStartRequest{})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.SessionID)
	assert.Nil(t, resp.Draft.RouteID)
	assert.Empty(t, resp.Draft.Waypoints)
	assert.Zero(t, resp.Stats.TotalMinutes)
	draftRepo.AssertExpectations(t)
}

func TestDraftUseCase_Start_ExistingRoute(t *testing.T) {
	draftRepo := &MockDraftRepository{}
	routeRepo := &MockRouteRepository{}
	ctx := context.Background()

	route := &domain.Route{
		ID:    7,
		Title: "Центр города",
		Points: []domain.Point{
			{ID: 1, Title: "Кремль", PointType: domain.PointTypeMuseum, Lat: 55.752, Lng: 37.617, VisitMinutes: 60, OrderIndex: 3},
		},
	}
	routeRepo.On("GetByID", ctx, int64(7)).Return(route, nil)
	draftRepo.On("Save", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("*itinerary.Draft")).Return(nil)

	uc := newDraftUseCase(draftRepo, routeRepo, &MockCacheRepository{}, &MockStreamRepository{})
	routeID := int64(7)
	resp, err := uc.Start(ctx, &dto.DraftStartRequest{RouteID: &routeID})

	require.NoError(t, err)
	require.NotNil(t, resp.Draft.RouteID)
	assert.Equal(t, int64(7), *resp.Draft.RouteID)
	require.Len(t, resp.Draft.Waypoints, 1)
	// индекс выводится из позиции в массиве, а не из сохранённого значения
	assert.Equal(t, 0, resp.Draft.Waypoints[0].OrderIndex)
	routeRepo.AssertExpectations(t)
}

func TestDraftUseCase_AddWaypoint_PersistsDraft(t *testing.T) {
	draftRepo := &MockDraftRepository{}
	ctx := context.Background()

	draft := itinerary.NewDraft()
	draftRepo.On("Get", ctx, "s1").Return(draft, nil)

	var saved *itinerary.Draft
	draftRepo.On("Save", ctx, "s1", mock.AnythingOfType("*itinerary.Draft")).
		Run(func(args mock.Arguments) {
			saved = args.Get(2).(*itinerary.Draft)
		}).Return(nil)

	uc := newDraftUseCase(draftRepo, &MockRouteRepository{}, &MockCacheRepository{}, &MockStreamRepository{})
	resp, err := uc.AddWaypoint(ctx, "s1", &dto.AddWaypointRequest{})

	require.NoError(t, err)
	require.NotNil(t, saved)
	require.Len(t, saved.Waypoints, 1)
	assert.Equal(t, "Новая точка", saved.Waypoints[0].Title)
	assert.Equal(t, 30, saved.Waypoints[0].VisitMinutes)
	assert.Equal(t, resp.Draft, saved)
}

func TestDraftUseCase_Save_CreatesRouteAndBindsSession(t *testing.T) {
	draftRepo := &MockDraftRepository{}
	routeRepo := &MockRouteRepository{}
	cacheRepo := &MockCacheRepository{}
	streamRepo := &MockStreamRepository{}
	ctx := context.Background()

	draft := itinerary.NewDraft()
	draft.Title = "Вечерняя прогулка"
	draft.Waypoints = []itinerary.Waypoint{
		{Title: "A", PointType: domain.PointTypeOther, Lat: 55.75, Lng: 37.61, VisitMinutes: 30, OrderIndex: 0},
	}
	draftRepo.On("Get", ctx, "s1").Return(draft, nil)

	created := &domain.Route{ID: 42, Title: "Вечерняя прогулка"}
	routeRepo.On("Create", ctx, mock.AnythingOfType("*domain.Route")).Return(created, nil)
	cacheRepo.On("Delete", ctx, mock.AnythingOfType("string")).Return(nil)
	streamRepo.On("PublishToStream", ctx, domain.StreamAuditLog, mock.Anything).Return(nil)

	var saved *itinerary.Draft
	draftRepo.On("Save", ctx, "s1", mock.AnythingOfType("*itinerary.Draft")).
		Run(func(args mock.Arguments) {
			saved = args.Get(2).(*itinerary.Draft)
		}).Return(nil)

	uc := newDraftUseCase(draftRepo, routeRepo, cacheRepo, streamRepo)
	resp, err := uc.Save(ctx, 1, "s1", &dto.DraftSaveRequest{Publish: false})

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.RouteID)
	// после сохранения сессия редактирует созданный маршрут
	require.NotNil(t, saved)
	require.NotNil(t, saved.RouteID)
	assert.Equal(t, int64(42), *saved.RouteID)
	routeRepo.AssertExpectations(t)
}

func TestDraftUseCase_Save_InvalidPriceLeavesSessionUntouched(t *testing.T) {
	draftRepo := &MockDraftRepository{}
	ctx := context.Background()

	draft := itinerary.NewDraft()
	draft.PriceChild = "не число"
	draftRepo.On("Get", ctx, "s1").Return(draft, nil)

	uc := newDraftUseCase(draftRepo, &MockRouteRepository{}, &MockCacheRepository{}, &MockStreamRepository{})
	_, err := uc.Save(ctx, 1, "s1", &dto.DraftSaveRequest{})

	require.Error(t, err)
	draftRepo.AssertNotCalled(t, "Save", ctx, "s1", mock.Anything)
}

func TestDraftUseCase_Save_ReplacesExistingRoute(t *testing.T) {
	draftRepo := &MockDraftRepository{}
	routeRepo := &MockRouteRepository{}
	cacheRepo := &MockCacheRepository{}
	streamRepo := &MockStreamRepository{}
	ctx := context.Background()

	routeID := int64(7)
	draft := itinerary.NewDraft()
	draft.RouteID = &routeID
	draft.Title = "Старый город"
	draftRepo.On("Get", ctx, "s1").Return(draft, nil)
	draftRepo.On("Save", ctx, "s1", mock.Anything).Return(nil)

	var replaced *domain.Route
	routeRepo.On("Replace", ctx, mock.AnythingOfType("*domain.Route")).
		Run(func(args mock.Arguments) {
			replaced = args.Get(1).(*domain.Route)
		}).
		Return(&domain.Route{ID: 7, Title: "Старый город"}, nil)
	cacheRepo.On("Delete", ctx, mock.AnythingOfType("string")).Return(nil)
	streamRepo.On("PublishToStream", ctx, domain.StreamAuditLog, mock.Anything).Return(nil)

	uc := newDraftUseCase(draftRepo, routeRepo, cacheRepo, streamRepo)
	resp, err := uc.Save(ctx, 1, "s1", &dto.DraftSaveRequest{Publish: true})

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.RouteID)
	require.NotNil(t, replaced)
	assert.Equal(t, int64(7), replaced.ID)
	assert.True(t, replaced.IsPublished)
}

func TestDraftUseCase_DragThenSave_RenumbersPoints(t *testing.T) {
	draftRepo := &MockDraftRepository{}
	routeRepo := &MockRouteRepository{}
	cacheRepo := &MockCacheRepository{}
	streamRepo := &MockStreamRepository{}
	ctx := context.Background()

	draft := itinerary.NewDraft()
	draft.Title = "Три точки"
	draft.Waypoints = []itinerary.Waypoint{
		{Title: "A", PointType: domain.PointTypeOther, Lat: 0, Lng: 0, VisitMinutes: 30, OrderIndex: 0},
		{Title: "B", PointType: domain.PointTypeOther, Lat: 0, Lng: 1, VisitMinutes: 30, OrderIndex: 1},
		{Title: "C", PointType: domain.PointTypeOther, Lat: 1, Lng: 1, VisitMinutes: 30, OrderIndex: 2},
	}
	draft.ReorderByDrag(2, 0)

	draftRepo.On("Get", ctx, "s1").Return(draft, nil)
	draftRepo.On("Save", ctx, "s1", mock.Anything).Return(nil)
	cacheRepo.On("Delete", ctx, mock.AnythingOfType("string")).Return(nil)
	streamRepo.On("PublishToStream", ctx, domain.StreamAuditLog, mock.Anything).Return(nil)

	var created *domain.Route
	routeRepo.On("Create", ctx, mock.AnythingOfType("*domain.Route")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.Route)
		}).
		Return(&domain.Route{ID: 9}, nil)

	uc := newDraftUseCase(draftRepo, routeRepo, cacheRepo, streamRepo)
	_, err := uc.Save(ctx, 1, "s1", &dto.DraftSaveRequest{})

	require.NoError(t, err)
	require.NotNil(t, created)
	require.Len(t, created.Points, 3)
	// порядок из массива, индексы пересчитаны несмотря на дрейф
	assert.Equal(t, "C", created.Points[0].Title)
	assert.Equal(t, "A", created.Points[1].Title)
	assert.Equal(t, "B", created.Points[2].Title)
	for i, p := range created.Points {
		assert.Equal(t, i, p.OrderIndex)
	}
}
