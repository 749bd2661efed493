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

// BookingHandler - обработчик заявок на бронирование
type BookingHandler struct {
	bookingUC *usecase.BookingUseCase
	logger    *zap.Logger
}

// NewBookingHandler - создание нового BookingHandler
func NewBookingHandler(bookingUC *usecase.BookingUseCase, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		bookingUC: bookingUC,
		logger:    logger,
	}
}

// Create godoc
// @Summary Заявка на бронирование с витрины
// @Description Принимает заявку посетителя; требуется согласие на обработку данных
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body dto.BookingCreateRequest true "Данные заявки"
// @Success 200 {object} utils.SuccessResponse{data=domain.Booking}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/bookings [post]
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var req dto.BookingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	booking, err := h.bookingUC.Create(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, booking, nil)
}

// List - список заявок с фильтрами для админ-панели
func (h *BookingHandler) List(c *fiber.Ctx) error {
	var query dto.BookingListQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.SendError(c, err)
	}

	bookings, err := h.bookingUC.List(c.Context(), &query)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, bookings, &utils.Meta{
		Total: len(bookings),
	})
}

// Get - заявка по ID
func (h *BookingHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	booking, err := h.bookingUC.Get(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, booking, nil)
}

// Update - изменение статуса и служебных заметок заявки
func (h *BookingHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.BookingUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	booking, err := h.bookingUC.Update(c.Context(), middleware.CurrentUser(c).ID, id, &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, booking, nil)
}
