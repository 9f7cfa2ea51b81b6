package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/pickup-point-service/internal/entities"
	"github.com/SergeyBogomolovv/pickup-point-service/internal/service"
	mocks "github.com/SergeyBogomolovv/pickup-point-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSearchService_ResolveAddress(t *testing.T) {
	type MockBehavior func(repo *mocks.MockPickupPointRepo, cache *mocks.MockCache)

	points := testPoints()
	res := entities.SearchResult{Points: points}
	data, err := res.Marshal()
	require.NoError(t, err)

	byPostalCode := entities.SearchQuery{PostalCode: "01310-100", Limit: 20}
	const key = "addr:01310-100:::20"

	testCases := []struct {
		name         string
		query        entities.SearchQuery
		mockBehavior MockBehavior
		want         []entities.PickupPoint
		wantErr      error
	}{
		{
			name:  "success from cache",
			query: byPostalCode,
			mockBehavior: func(_ *mocks.MockPickupPointRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get(key).Return(data, true).Once()
			},
			want: points,
		},
		{
			name:  "broken cache entry falls back to repo",
			query: byPostalCode,
			mockBehavior: func(repo *mocks.MockPickupPointRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get(key).Return([]byte("broken"), true).Once()
				repo.EXPECT().SearchPickupPoints(mock.Anything, byPostalCode).Return(points, nil).Once()
				cache.EXPECT().Set(key, data).Return().Once()
			},
			want: points,
		},
		{
			name:  "success from repo and set to cache",
			query: byPostalCode,
			mockBehavior: func(repo *mocks.MockPickupPointRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get(key).Return(nil, false).Once()
				repo.EXPECT().SearchPickupPoints(mock.Anything, byPostalCode).Return(points, nil).Once()
				cache.EXPECT().Set(key, data).Return().Once()
			},
			want: points,
		},
		{
			name:  "second attempt from repo",
			query: byPostalCode,
			mockBehavior: func(repo *mocks.MockPickupPointRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get(key).Return(nil, false).Once()
				repo.EXPECT().SearchPickupPoints(mock.Anything, byPostalCode).
					Return(nil, errors.New("some error")).Once()
				repo.EXPECT().SearchPickupPoints(mock.Anything, byPostalCode).
					Return(points, nil).Once()
				cache.EXPECT().Set(key, data).Return().Once()
			},
			want: points,
		},
		{
			name:  "nothing found",
			query: byPostalCode,
			mockBehavior: func(repo *mocks.MockPickupPointRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get(key).Return(nil, false).Once()
				repo.EXPECT().SearchPickupPoints(mock.Anything, byPostalCode).
					Return([]entities.PickupPoint{}, nil).Once()
			},
			wantErr: entities.ErrAddressNotFound,
		},
		{
			name:         "empty address",
			query:        entities.SearchQuery{Limit: 20},
			mockBehavior: func(_ *mocks.MockPickupPointRepo, _ *mocks.MockCache) {},
			wantErr:      entities.ErrAddressNotFound,
		},
		{
			name:         "geolocation without coordinates",
			query:        entities.SearchQuery{Geolocation: true},
			mockBehavior: func(_ *mocks.MockPickupPointRepo, _ *mocks.MockCache) {},
			wantErr:      entities.ErrLocationUnavailable,
		},
		{
			name: "geolocation",
			query: entities.SearchQuery{
				Geolocation: true,
				Location:    &entities.GeoCoordinates{Latitude: -23.56123, Longitude: -46.65567},
				Limit:       5,
			},
			mockBehavior: func(repo *mocks.MockPickupPointRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("geo:-23.5612:-46.6557:5").Return(nil, false).Once()
				repo.EXPECT().SearchPickupPoints(mock.Anything, mock.Anything).Return(points, nil).Once()
				cache.EXPECT().Set("geo:-23.5612:-46.6557:5", data).Return().Once()
			},
			want: points,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockPickupPointRepo(t)
			cache := mocks.NewMockCache(t)

			tc.mockBehavior(repo, cache)

			svc := service.NewSearchService(discardLogger(), repo, cache)

			got, err := svc.ResolveAddress(context.Background(), tc.query)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
