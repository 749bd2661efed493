package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/excursion-service/internal/delivery/http/middleware"
	"github.com/excursion-service/internal/pkg/errors"
	"github.com/excursion-service/internal/pkg/utils"
	"github.com/excursion-service/internal/pkg/validator"
	"github.com/excursion-service/internal/usecase"
	"github.com/excursion-service/internal/usecase/dto"
)

// ReviewHandler - обработчик отзывов и проведённых экскурсий
type ReviewHandler struct {
	reviewUC *usecase.ReviewUseCase
	logger   *zap.Logger
}

// NewReviewHandler - создание нового ReviewHandler
func NewReviewHandler(reviewUC *usecase.ReviewUseCase, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: reviewUC,
		logger:   logger,
	}
}

// ListByRoute godoc
// @Summary Одобренные отзывы маршрута
// @Tags Reviews
// @Produce json
// @Param id path int true "ID маршрута"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.ReviewWithExcursion}
// @Router /api/v1/routes/{id}/reviews [get]
func (h *ReviewHandler) ListByRoute(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	reviews, err := h.reviewUC.ListByRoute(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, reviews, &utils.Meta{
		Total: len(reviews),
	})
}

// Submit godoc
// @Summary Отправка отзыва участником
// @Description Отзыв принимается только с кодом подтверждённого бронирования на маршрут экскурсии
// @Tags Reviews
// @Accept json
// @Produce json
// @Param request body dto.ReviewCreateRequest true "Данные отзыва"
// @Success 200 {object} utils.SuccessResponse{data=domain.Review}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Router /api/v1/reviews [post]
func (h *ReviewHandler) Submit(c *fiber.Ctx) error {
	var req dto.ReviewCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	review, err := h.reviewUC.Submit(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, review, nil)
}

// CreateExcursion - регистрация проведённой экскурсии
func (h *ReviewHandler) CreateExcursion(c *fiber.Ctx) error {
	var req dto.ExcursionCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	excursion, err := h.reviewUC.CreateExcursion(c.Context(), middleware.CurrentUser(c).ID, &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, excursion, nil)
}

// ListExcursions - проведённые экскурсии маршрута, route_id в query
func (h *ReviewHandler) ListExcursions(c *fiber.Ctx) error {
	routeID, err := strconv.ParseInt(c.Query("route_id"), 10, 64)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails("некорректный route_id"))
	}

	excursions, err := h.reviewUC.ListExcursions(c.Context(), routeID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, excursions, &utils.Meta{
		Total: len(excursions),
	})
}

// ListPending - отзывы в очереди модерации
func (h *ReviewHandler) ListPending(c *fiber.Ctx) error {
	reviews, err := h.reviewUC.ListPending(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, reviews, &utils.Meta{
		Total: len(reviews),
	})
}

// SetApproval - решение модератора по отзыву
func (h *ReviewHandler) SetApproval(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.ReviewApprovalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	review, err := h.reviewUC.SetApproval(c.Context(), middleware.CurrentUser(c).ID, id, req.Approved)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, review, nil)
}

// Delete - удаление отзыва
func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.reviewUC.Delete(c.Context(), middleware.CurrentUser(c).ID, id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}
