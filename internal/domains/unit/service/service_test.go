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
	roomTypeMocks "stayhub/internal/domains/roomtype/mocks"
	roomTypeModel "stayhub/internal/domains/roomtype/model"
	unitMocks "stayhub/internal/domains/unit/mocks"
	"stayhub/internal/domains/unit/model"
	"stayhub/internal/domains/unit/model/dto"
	"stayhub/internal/domains/unit/service"
	cacheMocks "stayhub/shared/cache/mocks"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/failure"
)

type fixture struct {
	svc          service.Unit
	repo         *unitMocks.MockUnit
	roomTypeRepo *roomTypeMocks.MockRoomType
	cache        *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := unitMocks.NewMockUnit(ctrl)
	roomTypeRepo := roomTypeMocks.NewMockRoomType(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return fixture{
		svc:          service.New(repo, roomTypeRepo, cfg, mockCache, mocks.NewOtel()),
		repo:         repo,
		roomTypeRepo: roomTypeRepo,
		cache:        mockCache,
	}
}

func TestUnitService_Create(t *testing.T) {
	t.Run("inherits housekeeping default", func(t *testing.T) {
		f := newFixture(t)

		f.roomTypeRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomTypeModel.RoomType{ID: "rt-1", HousekeepingDefault: model.StatusInspecting}, nil)
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, unit model.Unit) error {
				assert.Equal(t, model.StatusInspecting, unit.HousekeepingStatus)
				return nil
			})
		f.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-1")
		res, err := f.svc.Create(ctx, dto.CreateUnitRequest{RoomTypeID: "rt-1", Label: "101"})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.True(t, res.IsActive)
	})

	t.Run("unknown room type", func(t *testing.T) {
		f := newFixture(t)

		f.roomTypeRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomTypeModel.RoomType{}, nil)

		_, err := f.svc.Create(context.Background(), dto.CreateUnitRequest{RoomTypeID: "missing", Label: "101"})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("explicit status wins over default", func(t *testing.T) {
		f := newFixture(t)

		f.roomTypeRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomTypeModel.RoomType{ID: "rt-1", HousekeepingDefault: model.StatusClean}, nil)
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, unit model.Unit) error {
				assert.Equal(t, model.StatusMaintenance, unit.HousekeepingStatus)
				return nil
			})
		f.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		_, err := f.svc.Create(context.Background(), dto.CreateUnitRequest{
			RoomTypeID:         "rt-1",
			Label:              "102",
			HousekeepingStatus: model.StatusMaintenance,
		})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})
}

func TestUnitService_SetHousekeepingStatus(t *testing.T) {
	t.Run("unknown status rejected", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.SetHousekeepingStatus(context.Background(), "unit-1", "sparkling")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("valid transition", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusClean, fields[model.FieldHousekeepingStatus])
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

		err := f.svc.SetHousekeepingStatus(context.Background(), "unit-1", model.StatusClean)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("unit not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := f.svc.SetHousekeepingStatus(context.Background(), "missing", model.StatusDirty)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestUnitService_Update(t *testing.T) {
	t.Run("empty patch rejected", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.Update(context.Background(), dto.UpdateUnitRequest{}, "unit-1")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("retire unit", func(t *testing.T) {
		f := newFixture(t)

		inactive := false

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		f.cache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()
		f.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := f.svc.Update(context.Background(), dto.UpdateUnitRequest{IsActive: &inactive}, "unit-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})
}

func TestUnitService_Get(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))
	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Unit{}, nil)

	_, err := f.svc.Get(context.Background(), "missing")

	assert.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}
