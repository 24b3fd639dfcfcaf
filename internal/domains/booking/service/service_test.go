package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"stayhub/config"
	kafkaMocks "stayhub/infras/kafka/mocks"
	"stayhub/infras/otel/mocks"
	bookingMocks "stayhub/internal/domains/booking/mocks"
	"stayhub/internal/domains/booking/model"
	"stayhub/internal/domains/booking/model/dto"
	"stayhub/internal/domains/booking/service"
	roomTypeModel "stayhub/internal/domains/roomtype/model"
	unitModel "stayhub/internal/domains/unit/model"
	"stayhub/internal/pricing"
	cacheMocks "stayhub/shared/cache/mocks"
	"stayhub/shared/constant"
	"stayhub/shared/failure"
)

type fixture struct {
	svc   service.Booking
	repo  *bookingMocks.MockBooking
	cache *cacheMocks.MockRedisCache
	kafka *kafkaMocks.MockClient
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Cache.AvailabilityTTL = 30

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockKafka.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return fixture{
		svc:   service.New(repo, cfg, mockCache, mocks.NewOtel(), mockKafka),
		repo:  repo,
		cache: mockCache,
		kafka: mockKafka,
	}
}

// expectCacheMiss makes every read path fall through to the repository.
func (f fixture) expectCacheMiss() {
	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
}

// expectTransact runs the supplied closure against a nil transaction so
// the Tx expectations on the repo mock fire.
func (f fixture) expectTransact() {
	f.repo.EXPECT().
		Transact(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		})
}

func day(value string) time.Time {
	parsed, _ := time.Parse("2006-01-02", value)
	return pricing.Day(parsed)
}

func deluxeRoomType() roomTypeModel.RoomType {
	roomType := roomTypeModel.RoomType{
		ID:         "rt-1",
		HotelID:    "hotel-1",
		Name:       "Deluxe King",
		TotalUnits: 2,
		BasePrice:  5000,
		WeekendPricing: roomTypeModel.WeekendPricing{
			Enabled: true,
			Days:    []time.Weekday{time.Saturday, time.Sunday},
			Price:   7000,
		},
		IsActive: true,
	}

	return roomType
}

func pendingBooking() model.Booking {
	return model.Booking{
		ID:          "bk-1",
		HotelID:     "hotel-1",
		RoomTypeID:  "rt-1",
		CheckIn:     day("2024-12-23"),
		CheckOut:    day("2024-12-26"),
		Nights:      3,
		GuestName:   "Alice",
		GuestPhone:  "+8801712345678",
		Subtotal:    15000,
		Taxes:       1000,
		TotalAmount: 16000,
		Status:      model.StatusPending,
	}
}

func validCreateRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		RoomTypeID: "rt-1",
		CheckIn:    "2024-12-23",
		CheckOut:   "2024-12-26",
		GuestName:  "Alice",
		GuestPhone: "+8801712345678",
		Channel:    model.ChannelOnline,
	}
}

func TestBookingService_CheckAvailability(t *testing.T) {
	tests := []struct {
		name          string
		req           dto.CheckAvailabilityRequest
		setupMock     func(f fixture)
		wantErr       bool
		wantCode      int
		wantAvailable bool
		wantReason    string
		wantTotal     float64
	}{
		{
			name: "available range is priced",
			// Thursday through Saturday: two weekday nights and one
			// weekend night.
			req: dto.CheckAvailabilityRequest{RoomTypeID: "rt-1", CheckIn: "2024-12-26", CheckOut: "2024-12-29"},
			setupMock: func(f fixture) {
				f.expectCacheMiss()
				f.repo.EXPECT().RoomType(gomock.Any(), "rt-1").Return(deluxeRoomType(), nil)
				f.repo.EXPECT().
					NightCounts(gomock.Any(), "rt-1", day("2024-12-26"), day("2024-12-29")).
					Return([]model.NightCount{{Night: day("2024-12-26"), Count: 1}}, nil)
			},
			wantAvailable: true,
			wantTotal:     17000,
		},
		{
			name: "fully booked night short-circuits",
			req:  dto.CheckAvailabilityRequest{RoomTypeID: "rt-1", CheckIn: "2024-12-23", CheckOut: "2024-12-26"},
			setupMock: func(f fixture) {
				f.expectCacheMiss()
				f.repo.EXPECT().RoomType(gomock.Any(), "rt-1").Return(deluxeRoomType(), nil)
				f.repo.EXPECT().
					NightCounts(gomock.Any(), "rt-1", day("2024-12-23"), day("2024-12-26")).
					Return([]model.NightCount{
						{Night: day("2024-12-23"), Count: 1},
						{Night: day("2024-12-24"), Count: 2},
					}, nil)
			},
			wantAvailable: false,
			wantReason:    "room type is fully booked on 2024-12-24",
		},
		{
			name: "unit under maintenance reports a reason",
			req:  dto.CheckAvailabilityRequest{RoomTypeID: "rt-1", UnitID: "u-1", CheckIn: "2024-12-23", CheckOut: "2024-12-26"},
			setupMock: func(f fixture) {
				f.expectCacheMiss()
				f.repo.EXPECT().RoomType(gomock.Any(), "rt-1").Return(deluxeRoomType(), nil)
				f.repo.EXPECT().
					NightCounts(gomock.Any(), "rt-1", gomock.Any(), gomock.Any()).
					Return(nil, nil)
				f.repo.EXPECT().Unit(gomock.Any(), "u-1").Return(unitModel.Unit{
					ID:                 "u-1",
					RoomTypeID:         "rt-1",
					HousekeepingStatus: unitModel.StatusMaintenance,
					IsActive:           true,
				}, nil)
			},
			wantAvailable: false,
			wantReason:    "unit is under maintenance",
		},
		{
			name:      "inverted range rejected",
			req:       dto.CheckAvailabilityRequest{RoomTypeID: "rt-1", CheckIn: "2024-12-26", CheckOut: "2024-12-23"},
			setupMock: func(f fixture) { f.expectCacheMiss() },
			wantErr:   true,
			wantCode:  http.StatusUnprocessableEntity,
		},
		{
			name: "unknown room type",
			req:  dto.CheckAvailabilityRequest{RoomTypeID: "rt-x", CheckIn: "2024-12-23", CheckOut: "2024-12-26"},
			setupMock: func(f fixture) {
				f.expectCacheMiss()
				f.repo.EXPECT().RoomType(gomock.Any(), "rt-x").Return(roomTypeModel.RoomType{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.CheckAvailability(context.Background(), tt.req)
			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantAvailable, res.Available)
			assert.Equal(t, tt.wantReason, res.Reason)

			if tt.wantAvailable {
				assert.Equal(t, tt.wantTotal, res.Total)
				assert.Len(t, res.Nights, 3)
			}
		})
	}
}

func TestBookingService_Create(t *testing.T) {
	tests := []struct {
		name       string
		req        dto.CreateBookingRequest
		setupMock  func(f fixture)
		wantErr    bool
		wantCode   int
		wantKind   string
		wantStatus string
	}{
		{
			name: "successful online booking stays pending",
			req:  validCreateRequest(),
			setupMock: func(f fixture) {
				f.expectTransact()
				f.repo.EXPECT().LockRoomTypeTx(gomock.Any(), gomock.Any(), "rt-1").Return(deluxeRoomType(), nil)
				f.repo.EXPECT().
					NightCountsTx(gomock.Any(), gomock.Any(), "rt-1", day("2024-12-23"), day("2024-12-26")).
					Return(nil, nil)
				f.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
						assert.Equal(t, 3, booking.Nights)
						assert.Equal(t, booking.Subtotal+booking.Taxes-booking.Discount, booking.TotalAmount)
						return nil
					})
				f.repo.EXPECT().
					InsertNightsTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, nights []model.Night) error {
						assert.Len(t, nights, 3)
						assert.Equal(t, day("2024-12-23"), nights[0].Night)
						assert.Equal(t, day("2024-12-25"), nights[2].Night)
						return nil
					})
			},
			wantStatus: model.StatusPending,
		},
		{
			name: "offline booking confirms immediately",
			req: func() dto.CreateBookingRequest {
				req := validCreateRequest()
				req.Channel = model.ChannelOffline
				return req
			}(),
			setupMock: func(f fixture) {
				f.expectTransact()
				f.repo.EXPECT().LockRoomTypeTx(gomock.Any(), gomock.Any(), "rt-1").Return(deluxeRoomType(), nil)
				f.repo.EXPECT().NightCountsTx(gomock.Any(), gomock.Any(), "rt-1", gomock.Any(), gomock.Any()).Return(nil, nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().InsertNightsTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: model.StatusConfirmed,
		},
		{
			name: "recount inside the transaction rejects the last slot",
			req:  validCreateRequest(),
			setupMock: func(f fixture) {
				f.expectTransact()
				f.repo.EXPECT().LockRoomTypeTx(gomock.Any(), gomock.Any(), "rt-1").Return(deluxeRoomType(), nil)
				f.repo.EXPECT().
					NightCountsTx(gomock.Any(), gomock.Any(), "rt-1", gomock.Any(), gomock.Any()).
					Return([]model.NightCount{{Night: day("2024-12-24"), Count: 2}}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
			wantKind: model.KindRoomUnavailable,
		},
		{
			name: "requested unit already pinned",
			req: func() dto.CreateBookingRequest {
				req := validCreateRequest()
				req.UnitID = "u-1"
				return req
			}(),
			setupMock: func(f fixture) {
				f.expectTransact()
				f.repo.EXPECT().LockRoomTypeTx(gomock.Any(), gomock.Any(), "rt-1").Return(deluxeRoomType(), nil)
				f.repo.EXPECT().NightCountsTx(gomock.Any(), gomock.Any(), "rt-1", gomock.Any(), gomock.Any()).Return(nil, nil)
				f.repo.EXPECT().GetUnitTx(gomock.Any(), gomock.Any(), "u-1").Return(unitModel.Unit{
					ID:                 "u-1",
					RoomTypeID:         "rt-1",
					HousekeepingStatus: unitModel.StatusClean,
					IsActive:           true,
				}, nil)
				f.repo.EXPECT().
					UnitConflictTx(gomock.Any(), gomock.Any(), "u-1", gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
			wantKind: model.KindUnitUnavailable,
		},
		{
			// The check passed but another transaction pinned the unit
			// first; the partial unique index fires on the night insert.
			name: "unique index backstops a lost unit race",
			req: func() dto.CreateBookingRequest {
				req := validCreateRequest()
				req.UnitID = "u-1"
				return req
			}(),
			setupMock: func(f fixture) {
				f.expectTransact()
				f.repo.EXPECT().LockRoomTypeTx(gomock.Any(), gomock.Any(), "rt-1").Return(deluxeRoomType(), nil)
				f.repo.EXPECT().NightCountsTx(gomock.Any(), gomock.Any(), "rt-1", gomock.Any(), gomock.Any()).Return(nil, nil)
				f.repo.EXPECT().GetUnitTx(gomock.Any(), gomock.Any(), "u-1").Return(unitModel.Unit{
					ID:                 "u-1",
					RoomTypeID:         "rt-1",
					HousekeepingStatus: unitModel.StatusClean,
					IsActive:           true,
				}, nil)
				f.repo.EXPECT().
					UnitConflictTx(gomock.Any(), gomock.Any(), "u-1", gomock.Any(), gomock.Any()).
					Return(false, nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().
					InsertNightsTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: "23505"})
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
			wantKind: model.KindUnitUnavailable,
		},
		{
			name: "blank guest name rejected",
			req: func() dto.CreateBookingRequest {
				req := validCreateRequest()
				req.GuestName = "   "
				return req
			}(),
			setupMock: func(f fixture) {},
			wantErr:   true,
			wantCode:  http.StatusUnprocessableEntity,
			wantKind:  model.KindInvalidGuestDetails,
		},
		{
			name: "equal check-in and check-out rejected",
			req: func() dto.CreateBookingRequest {
				req := validCreateRequest()
				req.CheckOut = req.CheckIn
				return req
			}(),
			setupMock: func(f fixture) {},
			wantErr:   true,
			wantCode:  http.StatusUnprocessableEntity,
			wantKind:  model.KindInvalidDateRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(context.Background(), tt.req)
			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, 3, res.Nights)
			assert.Equal(t, 15000.0, res.Subtotal)
			assert.Equal(t, 15000.0, res.TotalAmount)
		})
	}

	t.Run("guest cannot set status or channel", func(t *testing.T) {
		f := newFixture(t)

		req := validCreateRequest()
		req.Channel = model.ChannelOffline
		ctx := context.WithValue(context.Background(), constant.ContextKeyUserRole, constant.RoleGuest)

		_, err := f.svc.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})
}

func TestBookingService_Transition(t *testing.T) {
	tests := []struct {
		name      string
		booking   model.Booking
		req       dto.TransitionRequest
		setupMock func(f fixture)
		wantErr   bool
		wantKind  string
	}{
		{
			name:    "confirm a pending booking",
			booking: pendingBooking(),
			req:     dto.TransitionRequest{Action: model.ActionConfirm},
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					UpdateStatus(gomock.Any(), "bk-1", model.StatusPending, gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _ string, fields map[string]any) (bool, error) {
						assert.Equal(t, model.StatusConfirmed, fields[model.FieldStatus])
						return true, nil
					})
			},
		},
		{
			// A cancel committed after our read; the guarded update
			// must not overwrite it.
			name:    "confirm after a concurrent cancel is rejected",
			booking: pendingBooking(),
			req:     dto.TransitionRequest{Action: model.ActionConfirm},
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					UpdateStatus(gomock.Any(), "bk-1", model.StatusPending, gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantKind: model.KindInvalidTransition,
		},
		{
			name: "confirm twice is rejected",
			booking: func() model.Booking {
				b := pendingBooking()
				b.Status = model.StatusConfirmed
				return b
			}(),
			req:       dto.TransitionRequest{Action: model.ActionConfirm},
			setupMock: func(f fixture) {},
			wantErr:   true,
			wantKind:  model.KindInvalidTransition,
		},
		{
			name: "check-in auto-assigns the first clean unit",
			booking: func() model.Booking {
				b := pendingBooking()
				b.Status = model.StatusConfirmed
				return b
			}(),
			req: dto.TransitionRequest{Action: model.ActionCheckIn},
			setupMock: func(f fixture) {
				f.expectTransact()
				f.repo.EXPECT().
					FirstCleanUnitTx(gomock.Any(), gomock.Any(), "rt-1", day("2024-12-23"), day("2024-12-26")).
					Return(unitModel.Unit{ID: "u-2", RoomTypeID: "rt-1", HousekeepingStatus: unitModel.StatusClean, IsActive: true}, nil)
				f.repo.EXPECT().
					UpdateStatusTx(gomock.Any(), gomock.Any(), "bk-1", model.StatusConfirmed, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, _, _ string, fields map[string]any) (bool, error) {
						assert.Equal(t, model.StatusCheckedIn, fields[model.FieldStatus])
						assert.Equal(t, model.AssignedUnit("u-2"), fields[model.FieldUnitID])
						return true, nil
					})
				f.repo.EXPECT().
					SetNightUnitTx(gomock.Any(), gomock.Any(), "bk-1", model.AssignedUnit("u-2")).
					Return(nil)
			},
		},
		{
			name: "check-in with no clean unit",
			booking: func() model.Booking {
				b := pendingBooking()
				b.Status = model.StatusConfirmed
				return b
			}(),
			req: dto.TransitionRequest{Action: model.ActionCheckIn},
			setupMock: func(f fixture) {
				f.expectTransact()
				f.repo.EXPECT().
					FirstCleanUnitTx(gomock.Any(), gomock.Any(), "rt-1", gomock.Any(), gomock.Any()).
					Return(unitModel.Unit{}, nil)
			},
			wantErr:  true,
			wantKind: model.KindNoCleanUnit,
		},
		{
			name: "check-out marks the unit dirty",
			booking: func() model.Booking {
				b := pendingBooking()
				b.Status = model.StatusCheckedIn
				b.Unit = model.AssignedUnit("u-2")
				return b
			}(),
			req: dto.TransitionRequest{Action: model.ActionCheckOut},
			setupMock: func(f fixture) {
				f.expectTransact()
				f.repo.EXPECT().
					UpdateStatusTx(gomock.Any(), gomock.Any(), "bk-1", model.StatusCheckedIn, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, _, _ string, fields map[string]any) (bool, error) {
						assert.Equal(t, model.StatusCheckedOut, fields[model.FieldStatus])
						assert.Equal(t, model.UnitRef{}, fields[model.FieldUnitID])
						return true, nil
					})
				f.repo.EXPECT().
					SetUnitStatusTx(gomock.Any(), gomock.Any(), "u-2", unitModel.StatusDirty, gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "check-in after check-out is rejected",
			booking: func() model.Booking {
				b := pendingBooking()
				b.Status = model.StatusCheckedOut
				return b
			}(),
			req:       dto.TransitionRequest{Action: model.ActionCheckIn},
			setupMock: func(f fixture) {},
			wantErr:   true,
			wantKind:  model.KindInvalidTransition,
		},
		{
			name: "cancel releases the nights",
			booking: func() model.Booking {
				b := pendingBooking()
				b.Status = model.StatusConfirmed
				return b
			}(),
			req: dto.TransitionRequest{Action: model.ActionCancel},
			setupMock: func(f fixture) {
				f.expectTransact()
				f.repo.EXPECT().
					UpdateStatusTx(gomock.Any(), gomock.Any(), "bk-1", model.StatusConfirmed, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, _, _ string, fields map[string]any) (bool, error) {
						assert.Equal(t, model.StatusCancelled, fields[model.FieldStatus])
						return true, nil
					})
				f.repo.EXPECT().DeleteNightsTx(gomock.Any(), gomock.Any(), "bk-1").Return(nil)
			},
		},
		{
			// The nights survive: the update matched no row, so the
			// delete never runs.
			name: "cancel after a concurrent transition releases nothing",
			booking: func() model.Booking {
				b := pendingBooking()
				b.Status = model.StatusConfirmed
				return b
			}(),
			req: dto.TransitionRequest{Action: model.ActionCancel},
			setupMock: func(f fixture) {
				f.expectTransact()
				f.repo.EXPECT().
					UpdateStatusTx(gomock.Any(), gomock.Any(), "bk-1", model.StatusConfirmed, gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantKind: model.KindInvalidTransition,
		},
		{
			name: "cancel twice is rejected",
			booking: func() model.Booking {
				b := pendingBooking()
				b.Status = model.StatusCancelled
				return b
			}(),
			req:       dto.TransitionRequest{Action: model.ActionCancel},
			setupMock: func(f fixture) {},
			wantErr:   true,
			wantKind:  model.KindInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.expectCacheMiss()
			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.booking, nil)
			tt.setupMock(f)

			err := f.svc.Transition(context.Background(), "bk-1", tt.req)
			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestBookingService_AssignUnit(t *testing.T) {
	tests := []struct {
		name      string
		booking   model.Booking
		unitID    string
		setupMock func(f fixture)
		wantErr   bool
		wantKind  string
	}{
		{
			name:    "pins a free unit",
			booking: pendingBooking(),
			unitID:  "u-1",
			setupMock: func(f fixture) {
				f.expectTransact()
				f.repo.EXPECT().GetUnitTx(gomock.Any(), gomock.Any(), "u-1").Return(unitModel.Unit{
					ID:                 "u-1",
					RoomTypeID:         "rt-1",
					HousekeepingStatus: unitModel.StatusClean,
					IsActive:           true,
				}, nil)
				f.repo.EXPECT().
					UnitConflictTx(gomock.Any(), gomock.Any(), "u-1", day("2024-12-23"), day("2024-12-26")).
					Return(false, nil)
				f.repo.EXPECT().
					UpdateStatusTx(gomock.Any(), gomock.Any(), "bk-1", model.StatusPending, gomock.Any()).
					Return(true, nil)
				f.repo.EXPECT().SetNightUnitTx(gomock.Any(), gomock.Any(), "bk-1", model.AssignedUnit("u-1")).Return(nil)
			},
		},
		{
			name: "re-assigning the held unit is a no-op",
			booking: func() model.Booking {
				b := pendingBooking()
				b.Unit = model.AssignedUnit("u-1")
				return b
			}(),
			unitID:    "u-1",
			setupMock: func(f fixture) {},
		},
		{
			name: "terminal booking cannot take a unit",
			booking: func() model.Booking {
				b := pendingBooking()
				b.Status = model.StatusCancelled
				return b
			}(),
			unitID:    "u-1",
			setupMock: func(f fixture) {},
			wantErr:   true,
			wantKind:  model.KindInvalidTransition,
		},
		{
			name:    "unit in maintenance is rejected",
			booking: pendingBooking(),
			unitID:  "u-1",
			setupMock: func(f fixture) {
				f.expectTransact()
				f.repo.EXPECT().GetUnitTx(gomock.Any(), gomock.Any(), "u-1").Return(unitModel.Unit{
					ID:                 "u-1",
					RoomTypeID:         "rt-1",
					HousekeepingStatus: unitModel.StatusMaintenance,
					IsActive:           true,
				}, nil)
			},
			wantErr:  true,
			wantKind: model.KindUnitUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.expectCacheMiss()
			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.booking, nil)
			tt.setupMock(f)

			err := f.svc.AssignUnit(context.Background(), "bk-1", tt.unitID)
			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestBookingService_Update(t *testing.T) {
	guestName := "Bob"
	discount := 2000.0
	tooLarge := 20000.0

	tests := []struct {
		name      string
		req       dto.UpdateBookingRequest
		setupMock func(f fixture)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "discount change recomputes the total",
			req:  dto.UpdateBookingRequest{Discount: &discount},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking(), nil)
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, 2000.0, fields[model.FieldDiscount])
						assert.Equal(t, 14000.0, fields[model.FieldTotalAmount])
						return nil
					})
			},
		},
		{
			name: "guest rename",
			req:  dto.UpdateBookingRequest{GuestName: &guestName},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking(), nil)
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, "Bob", fields["guest_name"])
						return nil
					})
			},
		},
		{
			name: "discount larger than the stay is rejected",
			req:  dto.UpdateBookingRequest{Discount: &tooLarge},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:      "empty update rejected",
			req:       dto.UpdateBookingRequest{},
			setupMock: func(f fixture) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown booking",
			req:  dto.UpdateBookingRequest{GuestName: &guestName},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.expectCacheMiss()
			tt.setupMock(f)

			err := f.svc.Update(context.Background(), tt.req, "bk-1")
			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newFixture(t)
		f.expectCacheMiss()
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking(), nil)

		res, err := f.svc.Get(context.Background(), "bk-1")
		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, "bk-1", res.ID)
		assert.Equal(t, model.StatusPending, res.Status)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.expectCacheMiss()
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := f.svc.Get(context.Background(), "bk-x")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
