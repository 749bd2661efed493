package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/excursion-service/internal/domain"
	"github.com/excursion-service/internal/domain/repository"
	"github.com/excursion-service/internal/pkg/errors"
	"github.com/excursion-service/internal/usecase/dto"
)

type BookingUseCase struct {
	bookingRepo repository.BookingRepository
	routeRepo   repository.RouteRepository
	audit       *AuditPublisher
	logger      *zap.Logger
}

func NewBookingUseCase(
	bookingRepo repository.BookingRepository,
	routeRepo repository.RouteRepository,
	audit *AuditPublisher,
	logger *zap.Logger,
) *BookingUseCase {
	return &BookingUseCase{
		bookingRepo: bookingRepo,
		routeRepo:   routeRepo,
		audit:       audit,
		logger:      logger,
	}
}

// Create регистрирует заявку с витрины. Требуется согласие на
// обработку данных, опубликованный маршрут, активная дата проведения
// и свободные места в группе.
func (uc *BookingUseCase) Create(ctx context.Context, req *dto.BookingCreateRequest) (*domain.Booking, error) {
	if !req.Consent {
		return nil, errors.ErrConsentRequired
	}

	route, err := uc.routeRepo.GetByID(ctx, req.RouteID)
	if err != nil {
		return nil, err
	}
	if !route.IsPublished {
		return nil, errors.ErrRouteNotFound
	}

	desiredDate, err := req.ParseDesiredDate()
	if err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails("некорректная дата")
	}

	routeDate, err := uc.routeRepo.FindDate(ctx, req.RouteID, desiredDate)
	if err != nil {
		return nil, err
	}
	if !routeDate.IsActive {
		return nil, errors.ErrRouteDateNotFound
	}

	booked, err := uc.bookingRepo.SumParticipants(ctx, routeDate.ID)
	if err != nil {
		return nil, err
	}
	if booked+req.Participants > route.MaxParticipants {
		return nil, errors.ErrTooManyParticipants
	}

	var booking *domain.Booking
	for attempt := 0; attempt < codeAttempts; attempt++ {
		code, err := uc.generateCode(ctx, attempt)
		if err != nil {
			return nil, err
		}

		booking, err = uc.bookingRepo.Create(ctx, &domain.Booking{
			Code:         code,
			RouteID:      req.RouteID,
			ClientName:   req.ClientName,
			Phone:        req.Phone,
			Email:        req.Email,
			DesiredDate:  desiredDate,
			Participants: req.Participants,
			Comment:      req.Comment,
			Status:       domain.BookingStatusNew,
		})
		if err == errors.ErrBookingCodeConflict {
			uc.logger.Warn("Booking code already taken, retrying", zap.String("code", code))
			continue
		}
		if err != nil {
			return nil, err
		}
		break
	}
	if booking == nil {
		return nil, errors.ErrBookingCodeConflict
	}

	uc.audit.Publish(ctx, nil, "booking.create", map[string]interface{}{
		"booking_id": booking.ID,
		"code":       booking.Code,
		"route_id":   booking.RouteID,
	})

	uc.logger.Info("Booking created",
		zap.String("code", booking.Code),
		zap.Int64("route_id", booking.RouteID))

	return booking, nil
}

// codeAttempts - число попыток подобрать свободный код заявки
const codeAttempts = 3

// generateCode выдаёт код заявки вида ZAV-<год>-NNNNN со сквозной
// нумерацией в пределах года. Номер считается от количества заявок
// года, поэтому после удаления заявки код может оказаться занят;
// offset сдвигает номер при повторной попытке.
func (uc *BookingUseCase) generateCode(ctx context.Context, offset int) (string, error) {
	prefix := fmt.Sprintf("ZAV-%d-", time.Now().Year())

	count, err := uc.bookingRepo.CountByCodePrefix(ctx, prefix)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%05d", prefix, count+1+offset), nil
}

// List возвращает заявки по фильтрам бэк-офиса
func (uc *BookingUseCase) List(ctx context.Context, query *dto.BookingListQuery) ([]*domain.BookingWithRoute, error) {
	filter := domain.BookingFilter{Search: query.Search}

	if query.Status != "" {
		status := domain.BookingStatus(query.Status)
		if !status.IsValid() {
			return nil, errors.ErrInvalidRequest.WithDetails("неизвестный статус: " + query.Status)
		}
		filter.Status = &status
	}
	if query.RouteID != 0 {
		filter.RouteID = &query.RouteID
	}
	if query.DateFrom != "" {
		from, err := time.Parse("2006-01-02", query.DateFrom)
		if err != nil {
			return nil, errors.ErrInvalidRequest.WithDetails("некорректная дата date_from")
		}
		filter.DateFrom = &from
	}
	if query.DateTo != "" {
		to, err := time.Parse("2006-01-02", query.DateTo)
		if err != nil {
			return nil, errors.ErrInvalidRequest.WithDetails("некорректная дата date_to")
		}
		filter.DateTo = &to
	}

	return uc.bookingRepo.List(ctx, filter)
}

// Get возвращает заявку по ID
func (uc *BookingUseCase) Get(ctx context.Context, id int64) (*domain.Booking, error) {
	return uc.bookingRepo.GetByID(ctx, id)
}

// Update меняет статус заявки и служебные заметки менеджера.
// Смена статуса обновляет отметку времени, заметки статус не трогают.
func (uc *BookingUseCase) Update(ctx context.Context, userID, id int64, req *dto.BookingUpdateRequest) (*domain.Booking, error) {
	var status *domain.BookingStatus
	if req.Status != nil {
		s := domain.BookingStatus(*req.Status)
		if !s.IsValid() {
			return nil, errors.ErrInvalidRequest.WithDetails("неизвестный статус: " + *req.Status)
		}
		status = &s
	}

	booking, err := uc.bookingRepo.Update(ctx, id, status, req.InternalNotes)
	if err != nil {
		return nil, err
	}

	details := map[string]interface{}{"booking_id": id}
	if status != nil {
		details["status"] = string(*status)
	}
	uc.audit.Publish(ctx, &userID, "booking.update", details)

	return booking, nil
}
