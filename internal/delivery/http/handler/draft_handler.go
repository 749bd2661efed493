package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/excursion-service/internal/delivery/http/middleware"
	"github.com/excursion-service/internal/pkg/utils"
	"github.com/excursion-service/internal/pkg/validator"
	"github.com/excursion-service/internal/usecase"
	"github.com/excursion-service/internal/usecase/dto"
)

// DraftHandler - обработчик сессий конструктора маршрутов.
// Каждая операция возвращает полное состояние черновика
// с пересчитанной статистикой.
type DraftHandler struct {
	draftUC *usecase.DraftUseCase
	logger  *zap.Logger
}

// NewDraftHandler - создание нового DraftHandler
func NewDraftHandler(draftUC *usecase.DraftUseCase, logger *zap.Logger) *DraftHandler {
	return &DraftHandler{
		draftUC: draftUC,
		logger:  logger,
	}
}

// Start godoc
// @Summary Открытие сессии редактирования маршрута
// @Description Без route_id создаётся черновик нового маршрута, с route_id - загружается существующий
// @Tags Drafts
// @Accept json
// @Produce json
// @Param request body dto.DraftStartRequest true "Параметры сессии"
// @Success 200 {object} utils.SuccessResponse{data=dto.DraftSessionResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/admin/drafts [post]
func (h *DraftHandler) Start(c *fiber.Ctx) error {
	var req dto.DraftStartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.draftUC.Start(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Get - текущее состояние сессии
func (h *DraftHandler) Get(c *fiber.Ctx) error {
	result, err := h.draftUC.Get(c.Context(), c.Params("session_id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Stats - статистика черновика (дистанция, время в пути, время осмотра)
func (h *DraftHandler) Stats(c *fiber.Ctx) error {
	result, err := h.draftUC.Statistics(c.Context(), c.Params("session_id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Close - закрытие сессии без сохранения
func (h *DraftHandler) Close(c *fiber.Ctx) error {
	if err := h.draftUC.Close(c.Context(), c.Params("session_id")); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"closed": true}, nil)
}

// UpdateMeta - обновление атрибутов черновика
func (h *DraftHandler) UpdateMeta(c *fiber.Ctx) error {
	var req dto.DraftMetaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.draftUC.UpdateMeta(c.Context(), c.Params("session_id"), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// AddWaypoint godoc
// @Summary Добавление точки маршрута
// @Description Новая точка наследует координаты последней; без точек используются координаты по умолчанию
// @Tags Drafts
// @Accept json
// @Produce json
// @Param session_id path string true "ID сессии"
// @Param request body dto.AddWaypointRequest true "Позиция точки (необязательна)"
// @Success 200 {object} utils.SuccessResponse{data=dto.DraftSessionResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/admin/drafts/{session_id}/waypoints [post]
func (h *DraftHandler) AddWaypoint(c *fiber.Ctx) error {
	var req dto.AddWaypointRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.draftUC.AddWaypoint(c.Context(), c.Params("session_id"), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// UpdateWaypoint - замена точки по индексу
func (h *DraftHandler) UpdateWaypoint(c *fiber.Ctx) error {
	index, err := parseIndexParam(c, "index")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdateWaypointRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.draftUC.UpdateWaypoint(c.Context(), c.Params("session_id"), index, &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// MoveWaypoint - сдвиг точки на соседнюю позицию
func (h *DraftHandler) MoveWaypoint(c *fiber.Ctx) error {
	index, err := parseIndexParam(c, "index")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.MoveWaypointRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.draftUC.MoveWaypoint(c.Context(), c.Params("session_id"), index, &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// RemoveWaypoint - удаление точки
func (h *DraftHandler) RemoveWaypoint(c *fiber.Ctx) error {
	index, err := parseIndexParam(c, "index")
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.draftUC.RemoveWaypoint(c.Context(), c.Params("session_id"), index)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// DragReorder - перенос точки перетаскиванием
func (h *DraftHandler) DragReorder(c *fiber.Ctx) error {
	var req dto.DragReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.draftUC.DragReorder(c.Context(), c.Params("session_id"), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// AddPhotos - добавление загруженных фотографий в черновик
func (h *DraftHandler) AddPhotos(c *fiber.Ctx) error {
	var req dto.AddPhotosRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.draftUC.AddPhotos(c.Context(), c.Params("session_id"), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// SetCoverPhoto - назначение обложки; остальные отметки снимаются
func (h *DraftHandler) SetCoverPhoto(c *fiber.Ctx) error {
	index, err := parseIndexParam(c, "index")
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.draftUC.SetCoverPhoto(c.Context(), c.Params("session_id"), index)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// MovePhoto - сдвиг фотографии в галерее
func (h *DraftHandler) MovePhoto(c *fiber.Ctx) error {
	index, err := parseIndexParam(c, "index")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.MovePhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.draftUC.MovePhoto(c.Context(), c.Params("session_id"), index, &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// RemovePhoto - удаление фотографии из черновика
func (h *DraftHandler) RemovePhoto(c *fiber.Ctx) error {
	index, err := parseIndexParam(c, "index")
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.draftUC.RemovePhoto(c.Context(), c.Params("session_id"), index)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Save godoc
// @Summary Сохранение черновика в маршрут
// @Description Создаёт маршрут или полностью заменяет существующий; порядок точек и фотографий берётся из массива
// @Tags Drafts
// @Accept json
// @Produce json
// @Param session_id path string true "ID сессии"
// @Param request body dto.DraftSaveRequest true "Флаг публикации"
// @Success 200 {object} utils.SuccessResponse{data=dto.DraftSaveResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/admin/drafts/{session_id}/save [post]
func (h *DraftHandler) Save(c *fiber.Ctx) error {
	var req dto.DraftSaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.draftUC.Save(c.Context(), middleware.CurrentUser(c).ID, c.Params("session_id"), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
