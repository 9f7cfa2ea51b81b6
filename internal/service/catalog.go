package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/pickup-point-service/internal/entities"
	"github.com/SergeyBogomolovv/pickup-point-service/pkg/trm"
	"github.com/SergeyBogomolovv/pickup-point-service/pkg/utils"
)

type CatalogRepo interface {
	// Операции идемпотентны: пункт перезаписывается, часы работы заменяются целиком
	UpsertPickupPoint(ctx context.Context, p entities.PickupPoint) error
	ReplaceBusinessHours(ctx context.Context, pointID string, hours []entities.BusinessHour) error
}

type catalogService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      CatalogRepo
}

func NewCatalogService(logger *slog.Logger, txManager trm.Manager, repo CatalogRepo) *catalogService {
	return &catalogService{
		logger:    logger.With(slog.String("service", "catalog")),
		txManager: txManager,
		repo:      repo,
	}
}

func (s *catalogService) SavePickupPoint(ctx context.Context, point entities.PickupPoint) error {
	if point.ID == "" {
		return entities.ErrInvalidPickupPoint
	}

	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.repo.UpsertPickupPoint(ctx, point); err != nil {
				return fmt.Errorf("failed to save pickup point: %w", err)
			}
			if err := s.repo.ReplaceBusinessHours(ctx, point.ID, point.BusinessHours); err != nil {
				return fmt.Errorf("failed to save business hours: %w", err)
			}

			s.logger.Debug("pickup point saved", slog.String("id", point.ID))
			return nil
		})
	}

	return utils.Retry(ctx, utils.DefaultRetryConfig, fn)
}
