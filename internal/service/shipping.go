package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/pickup-point-service/internal/entities"
	"github.com/SergeyBogomolovv/pickup-point-service/pkg/trm"
	"github.com/SergeyBogomolovv/pickup-point-service/pkg/utils"
)

type SelectionRepo interface {
	SaveShippingSelection(ctx context.Context, s entities.ShippingSelection) (int64, error)
}

type shippingService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      SelectionRepo
}

func NewShippingService(logger *slog.Logger, txManager trm.Manager, repo SelectionRepo) *shippingService {
	return &shippingService{
		logger:    logger.With(slog.String("service", "shipping")),
		txManager: txManager,
		repo:      repo,
	}
}

// UpdateShippingData сохраняет подтвержденный пункт самовывоза. У позиций, которые
// можно забрать в выбранном пункте, выбранной становится sla этого пункта.
func (s *shippingService) UpdateShippingData(ctx context.Context, address entities.Address, logistics []entities.LogisticsInfo, selection entities.PickupOption) error {
	if selection.PickupPointID == "" {
		return entities.ErrInvalidPickupPoint
	}

	record := entities.ShippingSelection{
		PickupOptionID:     selection.ID,
		PickupPointID:      selection.PickupPointID,
		ResidentialAddress: address,
		LogisticsInfo:      applySelection(logistics, selection),
	}

	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			id, err := s.repo.SaveShippingSelection(ctx, record)
			if err != nil {
				return fmt.Errorf("failed to save shipping selection: %w", err)
			}

			s.logger.Debug("shipping selection saved",
				slog.Int64("id", id),
				slog.String("pickup_point_id", record.PickupPointID),
			)
			return nil
		})
	}

	return utils.Retry(ctx, utils.DefaultRetryConfig, fn)
}

func applySelection(logistics []entities.LogisticsInfo, selection entities.PickupOption) []entities.LogisticsInfo {
	result := make([]entities.LogisticsInfo, len(logistics))
	for i, li := range logistics {
		result[i] = li
		for _, sla := range li.Slas {
			if sla.ID == selection.ID && sla.IsPickup() {
				result[i].SelectedSla = sla.ID
				break
			}
		}
	}
	return result
}
