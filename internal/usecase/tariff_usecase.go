package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/excursion-service/internal/domain"
	"github.com/excursion-service/internal/domain/repository"
	"github.com/excursion-service/internal/pkg/errors"
	"github.com/excursion-service/internal/usecase/dto"
)

type TariffUseCase struct {
	tariffRepo repository.TariffRepository
	audit      *AuditPublisher
	logger     *zap.Logger
}

func NewTariffUseCase(
	tariffRepo repository.TariffRepository,
	audit *AuditPublisher,
	logger *zap.Logger,
) *TariffUseCase {
	return &TariffUseCase{
		tariffRepo: tariffRepo,
		audit:      audit,
		logger:     logger,
	}
}

// List возвращает все тарифы
func (uc *TariffUseCase) List(ctx context.Context) ([]*domain.Tariff, error) {
	return uc.tariffRepo.List(ctx)
}

// Get возвращает тариф по ID
func (uc *TariffUseCase) Get(ctx context.Context, id int64) (*domain.Tariff, error) {
	return uc.tariffRepo.GetByID(ctx, id)
}

// Create создаёт тариф; название уникально
func (uc *TariffUseCase) Create(ctx context.Context, actorID int64, req *dto.TariffRequest) (*domain.Tariff, error) {
	if _, err := uc.tariffRepo.GetByTitle(ctx, req.Title); err == nil {
		return nil, errors.ErrTariffTitleTaken
	} else if err != errors.ErrTariffNotFound {
		return nil, err
	}

	tariff, err := uc.tariffRepo.Create(ctx, &domain.Tariff{
		Title:       req.Title,
		Description: req.Description,
		Multiplier:  req.Multiplier,
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Publish(ctx, &actorID, "tariff.create", map[string]interface{}{
		"tariff_id": tariff.ID,
		"title":     tariff.Title,
	})

	return tariff, nil
}

// Update изменяет тариф
func (uc *TariffUseCase) Update(ctx context.Context, actorID, id int64, req *dto.TariffRequest) (*domain.Tariff, error) {
	if existing, err := uc.tariffRepo.GetByTitle(ctx, req.Title); err == nil && existing.ID != id {
		return nil, errors.ErrTariffTitleTaken
	} else if err != nil && err != errors.ErrTariffNotFound {
		return nil, err
	}

	tariff, err := uc.tariffRepo.Update(ctx, &domain.Tariff{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Multiplier:  req.Multiplier,
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Publish(ctx, &actorID, "tariff.update", map[string]interface{}{
		"tariff_id": id,
	})

	return tariff, nil
}

// Delete удаляет тариф
func (uc *TariffUseCase) Delete(ctx context.Context, actorID, id int64) error {
	if err := uc.tariffRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Publish(ctx, &actorID, "tariff.delete", map[string]interface{}{
		"tariff_id": id,
	})
	return nil
}
