package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"stayhub/config"
	"stayhub/infras/otel/mocks"
	hotelMocks "stayhub/internal/domains/hotel/mocks"
	roomTypeMocks "stayhub/internal/domains/roomtype/mocks"
	"stayhub/internal/domains/roomtype/model"
	"stayhub/internal/domains/roomtype/model/dto"
	"stayhub/internal/domains/roomtype/service"
	cacheMocks "stayhub/shared/cache/mocks"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/failure"
)

type fixture struct {
	svc       service.RoomType
	repo      *roomTypeMocks.MockRoomType
	hotelRepo *hotelMocks.MockHotel
	cache     *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := roomTypeMocks.NewMockRoomType(ctrl)
	hotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return fixture{
		svc:       service.New(repo, hotelRepo, cfg, mockCache, mocks.NewOtel()),
		repo:      repo,
		hotelRepo: hotelRepo,
		cache:     mockCache,
	}
}

func validCreateRequest() dto.CreateRoomTypeRequest {
	return dto.CreateRoomTypeRequest{
		HotelID:    "hotel-1",
		Name:       "Deluxe King",
		MaxAdults:  2,
		TotalUnits: 2,
		BasePrice:  5000,
	}
}

func TestRoomTypeService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateRoomTypeRequest
		setupMock func(f fixture)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  validCreateRequest(),
			setupMock: func(f fixture) {
				f.hotelRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
				f.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "unknown hotel",
			req:  validCreateRequest(),
			setupMock: func(f fixture) {
				f.hotelRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "repository error",
			req:  validCreateRequest(),
			setupMock: func(f fixture) {
				f.hotelRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-1")
			res, err := f.svc.Create(ctx, tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.True(t, res.IsActive)
		})
	}
}

func TestRoomTypeService_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.RoomType{}, nil)

		_, err := f.svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("found with rules", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.RoomType{
				ID:         "rt-1",
				Name:       "Deluxe King",
				TotalUnits: 2,
				BasePrice:  5000,
				WeekendPricing: model.WeekendPricing{
					Enabled: true,
					Price:   6000,
					Days:    []time.Weekday{time.Friday, time.Saturday},
				},
			}, nil)
		f.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := f.svc.Get(context.Background(), "rt-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, []int{5, 6}, res.WeekendPricing.Days)
	})
}

func TestRoomTypeService_Update(t *testing.T) {
	t.Run("empty patch rejected", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.Update(context.Background(), dto.UpdateRoomTypeRequest{}, "rt-1")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("total units patch", func(t *testing.T) {
		f := newFixture(t)

		units := 5

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, 5, fields[model.FieldTotalUnits])
				return nil
			})
		f.cache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()
		f.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := f.svc.Update(context.Background(), dto.UpdateRoomTypeRequest{TotalUnits: &units}, "rt-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})
}

func TestRoomTypeService_Deactivate(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)
	f.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, false, fields[model.FieldIsActive])
			return nil
		})
	f.cache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	f.cache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	err := f.svc.Deactivate(context.Background(), "rt-1")

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
}
