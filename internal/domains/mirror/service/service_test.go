package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"staysync/config"
	"staysync/infras/otel/mocks"
	mirrorMocks "staysync/internal/domains/mirror/mocks"
	"staysync/internal/domains/mirror/model"
	"staysync/internal/domains/mirror/service"
	cacheMocks "staysync/shared/cache/mocks"
	gDto "staysync/shared/dto"
	"staysync/shared/failure"
	gModel "staysync/shared/model"
	"staysync/shared/timezone"
)

func newMirrorService(t *testing.T) (service.Mirror, *mirrorMocks.MockBooking, *mirrorMocks.MockListing, *cacheMocks.MockRedisCache) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mirrorMocks.NewMockBooking(ctrl)
	mockListingRepo := mirrorMocks.NewMockListing(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockListingRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockListingRepo, mockCache
}

func sampleBooking(id string) model.UnifiedBooking {
	price := 780.0

	return model.UnifiedBooking{
		ID:            id,
		Code:          "HMABC123",
		ListingID:     "101",
		ApartmentCode: "AP-04",
		ListingName:   "Loft Vila Madalena",
		Type:          model.TypeNormal,
		Status:        "confirmed",
		CheckIn:       timezone.Now(),
		CheckOut:      timezone.Now().AddDate(0, 0, 2),
		Nights:        2,
		GuestName:     "Maria Silva",
		Adults:        2,
		Platform:      "airbnb",
		Price:         &price,
		Currency:      "BRL",
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			UpdatedAt:  timezone.Now(),
		},
	}
}

func TestMirrorService_GetAll(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *mirrorMocks.MockBooking, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantTotal int
	}{
		{
			name: "cache hit",
			setupMock: func(repo *mirrorMocks.MockBooking, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			setupMock: func(repo *mirrorMocks.MockBooking, cache *cacheMocks.MockRedisCache) {
				// One miss for the list key, one for the count key.
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.UnifiedBooking{sampleBooking("bk-1")}, nil)

				cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantTotal: 1,
		},
		{
			name: "count error",
			setupMock: func(repo *mirrorMocks.MockBooking, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
		{
			name: "get all error",
			setupMock: func(repo *mirrorMocks.MockBooking, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("get all error"))

				cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _, mockCache := newMirrorService(t)
			tt.setupMock(mockRepo, mockCache)

			result, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10, Page: 1}, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, result.TotalData)
			}
		})
	}
}

func TestMirrorService_Get(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(repo *mirrorMocks.MockBooking, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantCode  int
		wantGuest string
	}{
		{
			name: "cache hit",
			id:   "bk-1",
			setupMock: func(repo *mirrorMocks.MockBooking, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			id:   "bk-1",
			setupMock: func(repo *mirrorMocks.MockBooking, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(sampleBooking("bk-1"), nil)

				cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantGuest: "Maria Silva",
		},
		{
			name: "booking not found",
			id:   "nonexistent-id",
			setupMock: func(repo *mirrorMocks.MockBooking, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.UnifiedBooking{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "repository error",
			id:   "bk-1",
			setupMock: func(repo *mirrorMocks.MockBooking, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.UnifiedBooking{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _, mockCache := newMirrorService(t)
			tt.setupMock(mockRepo, mockCache)

			result, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				if tt.wantGuest != "" {
					assert.Equal(t, tt.wantGuest, result.GuestName)
				}
			}
		})
	}
}

func TestMirrorService_GetListings(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *mirrorMocks.MockListing, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantTotal int
	}{
		{
			name: "cache hit",
			setupMock: func(repo *mirrorMocks.MockListing, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			setupMock: func(repo *mirrorMocks.MockListing, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(2, nil)

				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Listing{
						{ID: "101", Code: "AP-04", Name: "Loft Vila Madalena"},
						{ID: "102", Code: "AP-05", Name: "Studio Pinheiros"},
					}, nil)

				cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantTotal: 2,
		},
		{
			name: "count error",
			setupMock: func(repo *mirrorMocks.MockListing, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, mockListingRepo, mockCache := newMirrorService(t)
			tt.setupMock(mockListingRepo, mockCache)

			result, err := svc.GetListings(context.Background(), gDto.QueryParams{Limit: 10, Page: 1})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, result.TotalData)
			}
		})
	}
}
