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

// RouteHandler - обработчик маршрутов: витрина и административный CRUD
type RouteHandler struct {
	routeUC *usecase.RouteUseCase
	logger  *zap.Logger
}

// NewRouteHandler - создание нового RouteHandler
func NewRouteHandler(routeUC *usecase.RouteUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		logger:  logger,
	}
}

// ListPublished godoc
// @Summary Каталог опубликованных маршрутов
// @Tags Routes
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.RouteListResponse}
// @Router /api/v1/routes [get]
func (h *RouteHandler) ListPublished(c *fiber.Ctx) error {
	result, err := h.routeUC.ListPublished(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// GetPublished godoc
// @Summary Карточка опубликованного маршрута
// @Tags Routes
// @Produce json
// @Param id path int true "ID маршрута"
// @Success 200 {object} utils.SuccessResponse{data=domain.Route}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/routes/{id} [get]
func (h *RouteHandler) GetPublished(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	route, err := h.routeUC.GetPublished(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, route, nil)
}

// GetGeometry godoc
// @Summary Геометрия маршрута для карты
// @Description Линия по дорогам; при недоступности сервиса маршрутизации - отрезки между точками
// @Tags Routes
// @Produce json
// @Param id path int true "ID маршрута"
// @Success 200 {object} utils.SuccessResponse{data=domain.RouteGeometry}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/routes/{id}/geometry [get]
func (h *RouteHandler) GetGeometry(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	geometry, err := h.routeUC.GetGeometry(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, geometry, nil)
}

// ListAll - список всех маршрутов для админ-панели
func (h *RouteHandler) ListAll(c *fiber.Ctx) error {
	result, err := h.routeUC.ListAll(c.Context(), c.Query("search"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// Get - маршрут по ID, включая неопубликованные
func (h *RouteHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	route, err := h.routeUC.Get(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, route, nil)
}

// Create - создание маршрута
func (h *RouteHandler) Create(c *fiber.Ctx) error {
	var req dto.RouteSaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	route, err := h.routeUC.Create(c.Context(), middleware.CurrentUser(c).ID, &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, route, nil)
}

// Replace - полная замена маршрута вместе с точками и фотографиями
func (h *RouteHandler) Replace(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.RouteSaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	route, err := h.routeUC.Replace(c.Context(), middleware.CurrentUser(c).ID, id, &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, route, nil)
}

// Archive - снятие маршрута с публикации
func (h *RouteHandler) Archive(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.routeUC.Archive(c.Context(), middleware.CurrentUser(c).ID, id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"archived": true}, nil)
}

// ListAvailableDates godoc
// @Summary Доступные даты проведения маршрута
// @Description Возвращает активные, не занятые заявками и не прошедшие даты опубликованного маршрута
// @Tags Routes
// @Produce json
// @Param id path int true "ID маршрута"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.RouteDate}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/routes/{id}/dates [get]
func (h *RouteHandler) ListAvailableDates(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	dates, err := h.routeUC.ListAvailableDates(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dates, &utils.Meta{
		Total: len(dates),
	})
}

// ListDates - даты проведения маршрута
func (h *RouteHandler) ListDates(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	dates, err := h.routeUC.ListDates(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dates, &utils.Meta{
		Total: len(dates),
	})
}

// AddDate - добавление даты проведения
func (h *RouteHandler) AddDate(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.RouteDateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	date, err := h.routeUC.AddDate(c.Context(), middleware.CurrentUser(c).ID, id, &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, date, nil)
}

// UpdateDate - включение и отключение даты
func (h *RouteHandler) UpdateDate(c *fiber.Ctx) error {
	dateID, err := parseIDParam(c, "date_id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.RouteDateUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	date, err := h.routeUC.UpdateDate(c.Context(), middleware.CurrentUser(c).ID, dateID, req.IsActive)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, date, nil)
}

// DeleteDate - удаление даты; забронированные даты защищены
func (h *RouteHandler) DeleteDate(c *fiber.Ctx) error {
	dateID, err := parseIDParam(c, "date_id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.routeUC.DeleteDate(c.Context(), middleware.CurrentUser(c).ID, dateID); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}
