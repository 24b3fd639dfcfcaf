package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stayhub/internal/domains/roomtype/model/dto"
	"stayhub/shared/validator"
)

func TestCreateRoomTypeRequestToModel(t *testing.T) {
	t.Run("full rule set", func(t *testing.T) {
		req := dto.CreateRoomTypeRequest{
			HotelID:    "hotel-1",
			Name:       "Deluxe King",
			MaxAdults:  2,
			TotalUnits: 4,
			BasePrice:  5000,
			SeasonalPricing: []dto.SeasonalRateRequest{
				{Name: "Winter", StartDate: "2024-12-20", EndDate: "2025-01-05", Price: 8000, Priority: 1, Active: true},
			},
			WeekendPricing: &dto.WeekendPricingRequest{Enabled: true, Price: 6000, Days: []int{5, 6}},
			SpecialRates: []dto.SpecialRateRequest{
				{Date: "2024-12-31", Price: 12000, Note: "New Year's Eve"},
			},
		}

		m, err := req.ToModel("user-1")

		assert.NoError(t, err)
		assert.NotEmpty(t, m.ID)
		assert.True(t, m.IsActive)
		assert.Equal(t, "clean", m.HousekeepingDefault)
		assert.Len(t, m.SeasonalPricing, 1)
		assert.Equal(t, []time.Weekday{time.Friday, time.Saturday}, m.WeekendPricing.Days)
		assert.Len(t, m.SpecialRates, 1)

		plan := m.RatePlan()
		assert.Equal(t, float64(12000), plan.PriceForDate(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("zero base price is a valid price", func(t *testing.T) {
		req := dto.CreateRoomTypeRequest{
			HotelID:    "hotel-1",
			Name:       "Comp Room",
			MaxAdults:  2,
			TotalUnits: 1,
			BasePrice:  0,
		}

		assert.NoError(t, validator.ValidateStruct(&req))

		m, err := req.ToModel("user-1")

		assert.NoError(t, err)
		assert.Zero(t, m.RatePlan().PriceForDate(time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("inverted seasonal window rejected", func(t *testing.T) {
		req := dto.CreateRoomTypeRequest{
			HotelID:    "hotel-1",
			Name:       "Deluxe King",
			MaxAdults:  2,
			TotalUnits: 4,
			BasePrice:  5000,
			SeasonalPricing: []dto.SeasonalRateRequest{
				{Name: "Backwards", StartDate: "2025-01-05", EndDate: "2024-12-20", Price: 8000, Active: true},
			},
		}

		_, err := req.ToModel("user-1")

		assert.Error(t, err)
	})
}

func TestUpdateRoomTypeRequestFields(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		req := dto.UpdateRoomTypeRequest{}

		assert.True(t, req.IsEmpty())
	})

	t.Run("rule replacement", func(t *testing.T) {
		req := dto.UpdateRoomTypeRequest{
			SpecialRates: []dto.SpecialRateRequest{{Date: "2025-03-01", Price: 7000}},
		}

		assert.False(t, req.IsEmpty())

		fields, err := req.Fields("user-1")

		assert.NoError(t, err)
		assert.Contains(t, fields, "special_rates")
		assert.Contains(t, fields, "modified_by")
	})

	t.Run("bad date propagates", func(t *testing.T) {
		req := dto.UpdateRoomTypeRequest{
			SpecialRates: []dto.SpecialRateRequest{{Date: "not-a-date", Price: 7000}},
		}

		_, err := req.Fields("user-1")

		assert.Error(t, err)
	})
}
