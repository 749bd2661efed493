package usecase

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/excursion-service/internal/domain"
	"github.com/excursion-service/internal/domain/repository"
	"github.com/excursion-service/internal/pkg/errors"
	"github.com/excursion-service/internal/pkg/utils"
	"github.com/excursion-service/internal/usecase/dto"
)

type RouteUseCase struct {
	routeRepo       repository.RouteRepository
	bookingRepo     repository.BookingRepository
	cacheRepo       repository.CacheRepository
	directionsRepo  repository.DirectionsRepository
	audit           *AuditPublisher
	catalogCacheTTL time.Duration
	routeCacheTTL   time.Duration
	logger          *zap.Logger
}

func NewRouteUseCase(
	routeRepo repository.RouteRepository,
	bookingRepo repository.BookingRepository,
	cacheRepo repository.CacheRepository,
	directionsRepo repository.DirectionsRepository,
	audit *AuditPublisher,
	catalogCacheTTL time.Duration,
	routeCacheTTL time.Duration,
	logger *zap.Logger,
) *RouteUseCase {
	return &RouteUseCase{
		routeRepo:       routeRepo,
		bookingRepo:     bookingRepo,
		cacheRepo:       cacheRepo,
		directionsRepo:  directionsRepo,
		audit:           audit,
		catalogCacheTTL: catalogCacheTTL,
		routeCacheTTL:   routeCacheTTL,
		logger:          logger,
	}
}

const catalogCacheKey = "catalog:routes"

// ListPublished возвращает каталог опубликованных маршрутов (с кешем)
func (uc *RouteUseCase) ListPublished(ctx context.Context) (*dto.RouteListResponse, error) {
	if cached, err := uc.cacheRepo.Get(ctx, catalogCacheKey); err == nil && cached != nil {
		var resp dto.RouteListResponse
		if err := json.Unmarshal(cached, &resp); err == nil {
			return &resp, nil
		}
		uc.logger.Warn("Failed to unmarshal cached catalog", zap.Error(err))
	}

	routes, err := uc.routeRepo.List(ctx, false, "")
	if err != nil {
		return nil, err
	}

	resp := buildRouteList(routes)

	if data, err := json.Marshal(resp); err == nil {
		if err := uc.cacheRepo.Set(ctx, catalogCacheKey, data, uc.catalogCacheTTL); err != nil {
			uc.logger.Warn("Failed to cache catalog", zap.Error(err))
		}
	}

	return resp, nil
}

// ListAll возвращает все маршруты для бэк-офиса, включая скрытые
func (uc *RouteUseCase) ListAll(ctx context.Context, search string) (*dto.RouteListResponse, error) {
	routes, err := uc.routeRepo.List(ctx, true, search)
	if err != nil {
		return nil, err
	}
	return buildRouteList(routes), nil
}

func buildRouteList(routes []*domain.Route) *dto.RouteListResponse {
	items := make([]dto.RouteListItem, 0, len(routes))
	for _, r := range routes {
		items = append(items, dto.NewRouteListItem(r))
	}
	return &dto.RouteListResponse{Routes: items, Total: len(items)}
}

// Get возвращает маршрут с точками и фотографиями
func (uc *RouteUseCase) Get(ctx context.Context, id int64) (*domain.Route, error) {
	key := routeCacheKey(id)
	if cached, err := uc.cacheRepo.Get(ctx, key); err == nil && cached != nil {
		var route domain.Route
		if err := json.Unmarshal(cached, &route); err == nil {
			return &route, nil
		}
	}

	route, err := uc.routeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(route); err == nil {
		if err := uc.cacheRepo.Set(ctx, key, data, uc.routeCacheTTL); err != nil {
			uc.logger.Warn("Failed to cache route", zap.Int64("id", id), zap.Error(err))
		}
	}

	return route, nil
}

// GetPublished возвращает маршрут для витрины; скрытые недоступны
func (uc *RouteUseCase) GetPublished(ctx context.Context, id int64) (*domain.Route, error) {
	route, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !route.IsPublished {
		return nil, errors.ErrRouteNotFound
	}
	return route, nil
}

// Create создаёт маршрут из запроса сохранения
func (uc *RouteUseCase) Create(ctx context.Context, userID int64, req *dto.RouteSaveRequest) (*domain.Route, error) {
	route, err := routeFromSaveRequest(0, req)
	if err != nil {
		return nil, err
	}

	created, err := uc.routeRepo.Create(ctx, route)
	if err != nil {
		return nil, err
	}

	uc.invalidateCache(ctx, created.ID)
	uc.audit.Publish(ctx, &userID, "route.create", map[string]interface{}{
		"route_id": created.ID,
		"title":    created.Title,
	})

	return created, nil
}

// Replace целиком заменяет маршрут состоянием из запроса:
// точки и фотографии перезаписываются, частичных обновлений нет
func (uc *RouteUseCase) Replace(ctx context.Context, userID, id int64, req *dto.RouteSaveRequest) (*domain.Route, error) {
	route, err := routeFromSaveRequest(id, req)
	if err != nil {
		return nil, err
	}

	updated, err := uc.routeRepo.Replace(ctx, route)
	if err != nil {
		return nil, err
	}

	uc.invalidateCache(ctx, id)
	uc.audit.Publish(ctx, &userID, "route.replace", map[string]interface{}{
		"route_id": id,
		"title":    updated.Title,
	})

	return updated, nil
}

// Archive снимает маршрут с публикации; сам маршрут и история
// заявок сохраняются
func (uc *RouteUseCase) Archive(ctx context.Context, userID, id int64) error {
	if err := uc.routeRepo.Archive(ctx, id); err != nil {
		return err
	}

	uc.invalidateCache(ctx, id)
	uc.audit.Publish(ctx, &userID, "route.archive", map[string]interface{}{
		"route_id": id,
	})
	return nil
}

func routeFromSaveRequest(id int64, req *dto.RouteSaveRequest) (*domain.Route, error) {
	route := &domain.Route{
		ID:              id,
		Title:           req.Title,
		Description:     req.Description,
		DurationHours:   req.DurationHours,
		PriceAdult:      req.PriceAdult,
		PriceChild:      req.PriceChild,
		PriceGroup:      req.PriceGroup,
		MaxParticipants: req.MaxParticipants,
		IsPublished:     req.IsPublished,
		Points:          make([]domain.Point, 0, len(req.Points)),
		Photos:          make([]domain.Photo, 0, len(req.Photos)),
	}

	for i, p := range req.Points {
		pointType := domain.PointType(p.PointType)
		if !pointType.IsValid() {
			return nil, errors.ErrInvalidRequest.WithDetails("неизвестная категория точки: " + p.PointType)
		}
		if !utils.ValidateCoordinates(p.Lat, p.Lng) {
			return nil, errors.ErrInvalidCoordinates
		}
		// порядок определяется позицией в списке
		route.Points = append(route.Points, domain.Point{
			Title:        p.Title,
			Description:  p.Description,
			Lat:          p.Lat,
			Lng:          p.Lng,
			PointType:    pointType,
			VisitMinutes: p.VisitMinutes,
			OrderIndex:   i,
		})
	}

	coverSeen := false
	for i, ph := range req.Photos {
		isCover := ph.IsCover && !coverSeen
		if isCover {
			coverSeen = true
		}
		route.Photos = append(route.Photos, domain.Photo{
			FilePath:  ph.FilePath,
			SortOrder: i,
			IsCover:   isCover,
		})
	}
	if len(route.Photos) > 0 && !coverSeen {
		route.Photos[0].IsCover = true
	}

	return route, nil
}

func routeCacheKey(id int64) string {
	return "route:" + strconv.FormatInt(id, 10)
}

func (uc *RouteUseCase) invalidateCache(ctx context.Context, routeID int64) {
	if err := uc.cacheRepo.Delete(ctx, catalogCacheKey); err != nil {
		uc.logger.Warn("Failed to invalidate catalog cache", zap.Error(err))
	}
	if err := uc.cacheRepo.Delete(ctx, routeCacheKey(routeID)); err != nil {
		uc.logger.Warn("Failed to invalidate route cache", zap.Int64("route_id", routeID), zap.Error(err))
	}
}

// ListAvailableDates возвращает даты, открытые для бронирования на витрине
func (uc *RouteUseCase) ListAvailableDates(ctx context.Context, routeID int64) ([]*domain.RouteDate, error) {
	if _, err := uc.GetPublished(ctx, routeID); err != nil {
		return nil, err
	}
	return uc.routeRepo.ListAvailableDates(ctx, routeID)
}

// ListDates возвращает даты проведения маршрута
func (uc *RouteUseCase) ListDates(ctx context.Context, routeID int64) ([]*domain.RouteDate, error) {
	if _, err := uc.routeRepo.GetByID(ctx, routeID); err != nil {
		return nil, err
	}
	return uc.routeRepo.ListDates(ctx, routeID)
}

// AddDate добавляет дату проведения; повторная дата - конфликт
func (uc *RouteUseCase) AddDate(ctx context.Context, userID, routeID int64, req *dto.RouteDateRequest) (*domain.RouteDate, error) {
	if _, err := uc.routeRepo.GetByID(ctx, routeID); err != nil {
		return nil, err
	}

	date, err := req.ParseDate()
	if err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails("некорректная дата")
	}

	if _, err := uc.routeRepo.FindDate(ctx, routeID, date); err == nil {
		return nil, errors.ErrRouteDateExists
	} else if err != errors.ErrRouteDateNotFound {
		return nil, err
	}

	created, err := uc.routeRepo.CreateDate(ctx, &domain.RouteDate{
		RouteID:  routeID,
		Date:     date,
		IsActive: true,
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Publish(ctx, &userID, "route.date.add", map[string]interface{}{
		"route_id": routeID,
		"date":     req.Date,
	})
	return created, nil
}

// UpdateDate включает или выключает дату проведения
func (uc *RouteUseCase) UpdateDate(ctx context.Context, userID, dateID int64, isActive bool) (*domain.RouteDate, error) {
	updated, err := uc.routeRepo.UpdateDate(ctx, dateID, isActive)
	if err != nil {
		return nil, err
	}

	uc.audit.Publish(ctx, &userID, "route.date.update", map[string]interface{}{
		"date_id":   dateID,
		"is_active": isActive,
	})
	return updated, nil
}

// DeleteDate удаляет дату проведения. Дата с активными
// бронированиями не удаляется.
func (uc *RouteUseCase) DeleteDate(ctx context.Context, userID, dateID int64) error {
	count, err := uc.routeRepo.CountDateBookings(ctx, dateID)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.ErrRouteDateBooked
	}

	if err := uc.routeRepo.DeleteDate(ctx, dateID); err != nil {
		return err
	}

	uc.audit.Publish(ctx, &userID, "route.date.delete", map[string]interface{}{
		"date_id": dateID,
	})
	return nil
}

// GetGeometry возвращает ломаную маршрута для карты. При недоступности
// сервиса маршрутизации возвращаются отрезки между точками.
func (uc *RouteUseCase) GetGeometry(ctx context.Context, id int64) (*domain.RouteGeometry, error) {
	route, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	points := make([]domain.Coordinate, 0, len(route.Points))
	for _, p := range route.Points {
		points = append(points, domain.Coordinate{Lng: p.Lng, Lat: p.Lat})
	}

	if len(points) < 2 {
		return &domain.RouteGeometry{
			RouteID:     id,
			Source:      domain.GeometrySourceStraight,
			Coordinates: points,
		}, nil
	}

	line, err := uc.directionsRepo.GetRouteLine(ctx, points)
	if err != nil {
		uc.logger.Warn("Directions service unavailable, falling back to straight line",
			zap.Int64("route_id", id),
			zap.Error(err))
		return &domain.RouteGeometry{
			RouteID:     id,
			Source:      domain.GeometrySourceStraight,
			Coordinates: points,
		}, nil
	}

	return &domain.RouteGeometry{
		RouteID:     id,
		Source:      domain.GeometrySourceDirections,
		Coordinates: line,
	}, nil
}
