package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SergeyBogomolovv/pickup-point-service/internal/entities"
	"github.com/SergeyBogomolovv/pickup-point-service/pkg/utils"
)

type PickupPointRepo interface {
	SearchPickupPoints(ctx context.Context, query entities.SearchQuery) ([]entities.PickupPoint, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

type searchService struct {
	logger *slog.Logger
	repo   PickupPointRepo
	cache  Cache
}

func NewSearchService(logger *slog.Logger, repo PickupPointRepo, cache Cache) *searchService {
	return &searchService{
		logger: logger.With(slog.String("service", "search")),
		repo:   repo,
		cache:  cache,
	}
}

// ResolveAddress ищет пункты самовывоза. Пустой результат считается ошибкой ErrAddressNotFound,
// запрос по геолокации без координат ErrLocationUnavailable.
func (s *searchService) ResolveAddress(ctx context.Context, query entities.SearchQuery) ([]entities.PickupPoint, error) {
	if query.Geolocation && query.Location == nil {
		return nil, entities.ErrLocationUnavailable
	}
	if !query.Geolocation && query.PostalCode == "" && query.City == "" && query.Street == "" {
		return nil, fmt.Errorf("%w: empty address", entities.ErrAddressNotFound)
	}

	key := searchCacheKey(query)
	if data, ok := s.cache.Get(key); ok {
		var res entities.SearchResult
		err := res.Unmarshal(data)
		if err == nil {
			searchCacheHits.WithLabelValues("hit").Inc()
			return res.Points, nil
		}
		s.logger.Error("failed to unmarshal search result", slog.String("key", key), slog.Any("error", err))
	}
	searchCacheHits.WithLabelValues("miss").Inc()

	var points []entities.PickupPoint
	fn := func() error {
		var err error
		points, err = s.repo.SearchPickupPoints(ctx, query)
		return err
	}
	if err := utils.Retry(ctx, utils.DefaultRetryConfig, fn); err != nil {
		return nil, fmt.Errorf("failed to search pickup points: %w", err)
	}

	if len(points) == 0 {
		return nil, entities.ErrAddressNotFound
	}

	res := entities.SearchResult{Points: points}
	data, err := res.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal search result", slog.String("key", key), slog.Any("error", err))
		return points, nil
	}
	s.cache.Set(key, data)

	return points, nil
}

func searchCacheKey(q entities.SearchQuery) string {
	if q.Geolocation {
		return fmt.Sprintf("geo:%.4f:%.4f:%d", q.Location.Latitude, q.Location.Longitude, q.Limit)
	}
	return fmt.Sprintf("addr:%s:%s:%s:%d",
		strings.ToLower(q.PostalCode), strings.ToLower(q.City), strings.ToLower(q.Street), q.Limit)
}
