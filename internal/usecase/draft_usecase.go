package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/excursion-service/internal/domain/repository"
	"github.com/excursion-service/internal/itinerary"
	"github.com/excursion-service/internal/pkg/errors"
	"github.com/excursion-service/internal/usecase/dto"
)

// DraftUseCase управляет сессиями редактирования черновиков маршрутов.
// Сессия живёт в Redis и хранит черновик целиком, каждая операция
// читает черновик, меняет его и сохраняет обратно.
type DraftUseCase struct {
	draftRepo repository.DraftRepository
	routeRepo repository.RouteRepository
	routes    *RouteUseCase
	logger    *zap.Logger
}

func NewDraftUseCase(
	draftRepo repository.DraftRepository,
	routeRepo repository.RouteRepository,
	routes *RouteUseCase,
	logger *zap.Logger,
) *DraftUseCase {
	return &DraftUseCase{
		draftRepo: draftRepo,
		routeRepo: routeRepo,
		routes:    routes,
		logger:    logger,
	}
}

// Start открывает сессию редактирования: для нового маршрута создаётся
// пустой черновик, для существующего черновик собирается из маршрута
func (uc *DraftUseCase) Start(ctx context.Context, req *dto.DraftStartRequest) (*dto.DraftSessionResponse, error) {
	var draft *itinerary.Draft

	if req.RouteID != nil {
		route, err := uc.routeRepo.GetByID(ctx, *req.RouteID)
		if err != nil {
			return nil, err
		}
		draft = itinerary.FromRoute(route)
	} else {
		draft = itinerary.NewDraft()
	}

	sessionID := uuid.New().String()
	if err := uc.draftRepo.Save(ctx, sessionID, draft); err != nil {
		return nil, err
	}

	uc.logger.Info("Draft session started",
		zap.String("session_id", sessionID),
		zap.Bool("existing_route", req.RouteID != nil))

	return uc.response(sessionID, draft), nil
}

// Get возвращает текущее состояние черновика со статистикой
func (uc *DraftUseCase) Get(ctx context.Context, sessionID string) (*dto.DraftSessionResponse, error) {
	draft, err := uc.draftRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return uc.response(sessionID, draft), nil
}

// Statistics пересчитывает статистику черновика по текущему порядку точек
func (uc *DraftUseCase) Statistics(ctx context.Context, sessionID string) (itinerary.Stats, error) {
	draft, err := uc.draftRepo.Get(ctx, sessionID)
	if err != nil {
		return itinerary.Stats{}, err
	}
	return itinerary.ComputeStatistics(draft.Waypoints), nil
}

// Close завершает сессию без сохранения
func (uc *DraftUseCase) Close(ctx context.Context, sessionID string) error {
	return uc.draftRepo.Delete(ctx, sessionID)
}

// UpdateMeta обновляет атрибуты черновика
func (uc *DraftUseCase) UpdateMeta(ctx context.Context, sessionID string, req *dto.DraftMetaRequest) (*dto.DraftSessionResponse, error) {
	return uc.mutate(ctx, sessionID, func(d *itinerary.Draft) {
		d.Title = req.Title
		d.Description = req.Description
		d.DurationHours = req.DurationHours
		d.PriceAdult = req.PriceAdult
		d.PriceChild = req.PriceChild
		d.PriceGroup = req.PriceGroup
		d.MaxParticipants = req.MaxParticipants
	})
}

// AddWaypoint добавляет точку в конец маршрута
func (uc *DraftUseCase) AddWaypoint(ctx context.Context, sessionID string, req *dto.AddWaypointRequest) (*dto.DraftSessionResponse, error) {
	return uc.mutate(ctx, sessionID, func(d *itinerary.Draft) {
		d.AddWaypoint(req.Position)
	})
}

// UpdateWaypoint заменяет точку по индексу
func (uc *DraftUseCase) UpdateWaypoint(ctx context.Context, sessionID string, index int, req *dto.UpdateWaypointRequest) (*dto.DraftSessionResponse, error) {
	if !req.Waypoint.PointType.IsValid() {
		return nil, errors.ErrInvalidRequest.WithDetails("неизвестная категория точки")
	}
	return uc.mutate(ctx, sessionID, func(d *itinerary.Draft) {
		d.UpdateWaypoint(index, req.Waypoint)
	})
}

// MoveWaypoint сдвигает точку на соседнюю позицию
func (uc *DraftUseCase) MoveWaypoint(ctx context.Context, sessionID string, index int, req *dto.MoveWaypointRequest) (*dto.DraftSessionResponse, error) {
	return uc.mutate(ctx, sessionID, func(d *itinerary.Draft) {
		d.MoveWaypoint(index, req.Direction)
	})
}

// RemoveWaypoint удаляет точку
func (uc *DraftUseCase) RemoveWaypoint(ctx context.Context, sessionID string, index int) (*dto.DraftSessionResponse, error) {
	return uc.mutate(ctx, sessionID, func(d *itinerary.Draft) {
		d.RemoveWaypoint(index)
	})
}

// DragReorder переносит точку перетаскиванием
func (uc *DraftUseCase) DragReorder(ctx context.Context, sessionID string, req *dto.DragReorderRequest) (*dto.DraftSessionResponse, error) {
	return uc.mutate(ctx, sessionID, func(d *itinerary.Draft) {
		d.ReorderByDrag(req.FromIndex, req.ToIndex)
	})
}

// AddPhotos добавляет загруженные фотографии
func (uc *DraftUseCase) AddPhotos(ctx context.Context, sessionID string, req *dto.AddPhotosRequest) (*dto.DraftSessionResponse, error) {
	return uc.mutate(ctx, sessionID, func(d *itinerary.Draft) {
		d.AddPhotos(req.FilePaths)
	})
}

// SetCoverPhoto назначает обложку
func (uc *DraftUseCase) SetCoverPhoto(ctx context.Context, sessionID string, index int) (*dto.DraftSessionResponse, error) {
	return uc.mutate(ctx, sessionID, func(d *itinerary.Draft) {
		d.SetCoverPhoto(index)
	})
}

// MovePhoto сдвигает фотографию
func (uc *DraftUseCase) MovePhoto(ctx context.Context, sessionID string, index int, req *dto.MovePhotoRequest) (*dto.DraftSessionResponse, error) {
	return uc.mutate(ctx, sessionID, func(d *itinerary.Draft) {
		d.MovePhoto(index, req.Direction)
	})
}

// RemovePhoto удаляет фотографию
func (uc *DraftUseCase) RemovePhoto(ctx context.Context, sessionID string, index int) (*dto.DraftSessionResponse, error) {
	return uc.mutate(ctx, sessionID, func(d *itinerary.Draft) {
		d.RemovePhoto(index)
	})
}

// Save собирает из черновика полезную нагрузку сохранения и записывает
// маршрут: новый создаётся, существующий заменяется целиком. Сессия
// остаётся открытой, при ошибке черновик не меняется.
func (uc *DraftUseCase) Save(ctx context.Context, userID int64, sessionID string, req *dto.DraftSaveRequest) (*dto.DraftSaveResponse, error) {
	draft, err := uc.draftRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	payload, err := itinerary.BuildSavePayload(draft, req.Publish)
	if err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(err.Error())
	}

	saveReq := savePayloadToRequest(payload)

	var routeID int64
	if draft.RouteID != nil {
		updated, err := uc.routes.Replace(ctx, userID, *draft.RouteID, saveReq)
		if err != nil {
			return nil, err
		}
		routeID = updated.ID
	} else {
		created, err := uc.routes.Create(ctx, userID, saveReq)
		if err != nil {
			return nil, err
		}
		routeID = created.ID
	}

	// после первого сохранения сессия редактирует созданный маршрут
	draft.RouteID = &routeID
	draft.IsPublished = req.Publish
	if err := uc.draftRepo.Save(ctx, sessionID, draft); err != nil {
		uc.logger.Warn("Failed to update draft session after save",
			zap.String("session_id", sessionID),
			zap.Error(err))
	}

	return &dto.DraftSaveResponse{RouteID: routeID}, nil
}

func savePayloadToRequest(p *itinerary.SavePayload) *dto.RouteSaveRequest {
	req := &dto.RouteSaveRequest{
		Title:           p.Title,
		Description:     p.Description,
		DurationHours:   p.DurationHours,
		PriceAdult:      p.PriceAdult,
		PriceChild:      p.PriceChild,
		PriceGroup:      p.PriceGroup,
		MaxParticipants: p.MaxParticipants,
		IsPublished:     p.IsPublished,
		Points:          make([]dto.PointRequest, 0, len(p.Points)),
		Photos:          make([]dto.PhotoRequest, 0, len(p.Photos)),
	}

	for _, pt := range p.Points {
		req.Points = append(req.Points, dto.PointRequest{
			Title:        pt.Title,
			Description:  pt.Description,
			Lat:          pt.Lat,
			Lng:          pt.Lng,
			PointType:    string(pt.PointType),
			VisitMinutes: pt.VisitMinutes,
			OrderIndex:   pt.OrderIndex,
		})
	}
	for _, ph := range p.Photos {
		req.Photos = append(req.Photos, dto.PhotoRequest{
			FilePath:  ph.FilePath,
			SortOrder: ph.SortOrder,
			IsCover:   ph.IsCover,
		})
	}

	return req
}

func (uc *DraftUseCase) mutate(ctx context.Context, sessionID string, fn func(*itinerary.Draft)) (*dto.DraftSessionResponse, error) {
	draft, err := uc.draftRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	fn(draft)

	if err := uc.draftRepo.Save(ctx, sessionID, draft); err != nil {
		return nil, err
	}

	return uc.response(sessionID, draft), nil
}

func (uc *DraftUseCase) response(sessionID string, draft *itinerary.Draft) *dto.DraftSessionResponse {
	return &dto.DraftSessionResponse{
		SessionID: sessionID,
		Draft:     draft,
		Stats:     itinerary.ComputeStatistics(draft.Waypoints),
	}
}
