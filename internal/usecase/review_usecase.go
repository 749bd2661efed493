package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/excursion-service/internal/domain"
	"github.com/excursion-service/internal/domain/repository"
	"github.com/excursion-service/internal/pkg/errors"
	"github.com/excursion-service/internal/usecase/dto"
)

type ReviewUseCase struct {
	reviewRepo  repository.ReviewRepository
	bookingRepo repository.BookingRepository
	routeRepo   repository.RouteRepository
	audit       *AuditPublisher
	logger      *zap.Logger
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	bookingRepo repository.BookingRepository,
	routeRepo repository.RouteRepository,
	audit *AuditPublisher,
	logger *zap.Logger,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
		routeRepo:   routeRepo,
		audit:       audit,
		logger:      logger,
	}
}

// CreateExcursion регистрирует проведённую экскурсию по маршруту
func (uc *ReviewUseCase) CreateExcursion(ctx context.Context, actorID int64, req *dto.ExcursionCreateRequest) (*domain.CompletedExcursion, error) {
	if _, err := uc.routeRepo.GetByID(ctx, req.RouteID); err != nil {
		return nil, err
	}

	startsAt, err := req.ParseStartsAt()
	if err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails("некорректная дата начала")
	}

	excursion, err := uc.reviewRepo.CreateExcursion(ctx, &domain.CompletedExcursion{
		RouteID:  req.RouteID,
		StartsAt: startsAt,
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Publish(ctx, &actorID, "excursion.create", map[string]interface{}{
		"excursion_id": excursion.ID,
		"route_id":     req.RouteID,
	})

	return excursion, nil
}

// ListExcursions возвращает проведённые экскурсии маршрута
func (uc *ReviewUseCase) ListExcursions(ctx context.Context, routeID int64) ([]*domain.CompletedExcursion, error) {
	return uc.reviewRepo.ListExcursions(ctx, routeID)
}

// Submit принимает отзыв участника. Подлинность подтверждается кодом
// подтверждённого бронирования на маршрут экскурсии; отзыв попадает
// на модерацию и до одобрения на витрине не виден.
func (uc *ReviewUseCase) Submit(ctx context.Context, req *dto.ReviewCreateRequest) (*domain.Review, error) {
	excursion, err := uc.reviewRepo.GetExcursion(ctx, req.ExcursionID)
	if err != nil {
		return nil, err
	}

	booking, err := uc.bookingRepo.GetByCode(ctx, req.BookingCode)
	if err != nil {
		return nil, err
	}
	if booking.RouteID != excursion.RouteID || booking.Status != domain.BookingStatusConfirmed {
		return nil, errors.ErrForbidden.WithMessage("Отзыв доступен только участникам экскурсии")
	}

	review, err := uc.reviewRepo.CreateReview(ctx, &domain.Review{
		ExcursionID: req.ExcursionID,
		AuthorName:  req.AuthorName,
		Email:       req.Email,
		Rating:      req.Rating,
		Comment:     req.Comment,
		IsApproved:  false,
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Review submitted",
		zap.Int64("review_id", review.ID),
		zap.Int64("excursion_id", req.ExcursionID))

	return review, nil
}

// ListByRoute возвращает одобренные отзывы маршрута для витрины
func (uc *ReviewUseCase) ListByRoute(ctx context.Context, routeID int64) ([]*domain.ReviewWithExcursion, error) {
	return uc.reviewRepo.ListByRoute(ctx, routeID, true)
}

// ListPending возвращает отзывы на модерации
func (uc *ReviewUseCase) ListPending(ctx context.Context) ([]*domain.ReviewWithExcursion, error) {
	return uc.reviewRepo.ListPending(ctx)
}

// SetApproval одобряет или отклоняет отзыв
func (uc *ReviewUseCase) SetApproval(ctx context.Context, actorID, id int64, approved bool) (*domain.Review, error) {
	review, err := uc.reviewRepo.SetApproval(ctx, id, approved)
	if err != nil {
		return nil, err
	}

	uc.audit.Publish(ctx, &actorID, "review.moderate", map[string]interface{}{
		"review_id": id,
		"approved":  approved,
	})

	return review, nil
}

// Delete удаляет отзыв
func (uc *ReviewUseCase) Delete(ctx context.Context, actorID, id int64) error {
	if err := uc.reviewRepo.DeleteReview(ctx, id); err != nil {
		return err
	}

	uc.audit.Publish(ctx, &actorID, "review.delete", map[string]interface{}{
		"review_id": id,
	})
	return nil
}
