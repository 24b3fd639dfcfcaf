package pricing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stayhub/internal/pricing"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPriceForDate(t *testing.T) {
	plan := pricing.RatePlan{
		BasePrice: 5000,
		SeasonalRates: []pricing.SeasonalRate{
			{
				Name:      "Winter Holidays",
				StartDate: date(2024, 12, 20),
				EndDate:   date(2025, 1, 5),
				Price:     8000,
				Priority:  1,
				Active:    true,
			},
		},
		WeekendRate: pricing.WeekendRate{
			Enabled: true,
			Price:   6000,
			Days:    []time.Weekday{time.Friday, time.Saturday},
		},
		SpecialRates: []pricing.SpecialRate{
			{Date: date(2024, 12, 31), Price: 12000, Note: "New Year's Eve"},
		},
	}

	t.Run("SpecialRateBeatsSeasonal", func(t *testing.T) {
		// 2024-12-31 is inside the seasonal window too.
		assert.Equal(t, float64(12000), plan.PriceForDate(date(2024, 12, 31)))
	})

	t.Run("SeasonalBeatsWeekend", func(t *testing.T) {
		// 2024-12-20 is a Friday inside the seasonal window.
		assert.Equal(t, float64(8000), plan.PriceForDate(date(2024, 12, 20)))
	})

	t.Run("WeekendBeatsBase", func(t *testing.T) {
		// 2024-11-29 is a Friday outside any season.
		assert.Equal(t, float64(6000), plan.PriceForDate(date(2024, 11, 29)))
	})

	t.Run("BaseOnPlainWeekday", func(t *testing.T) {
		// 2024-11-27 is a Wednesday.
		assert.Equal(t, float64(5000), plan.PriceForDate(date(2024, 11, 27)))
	})

	t.Run("SeasonalWindowIsInclusive", func(t *testing.T) {
		assert.Equal(t, float64(8000), plan.PriceForDate(date(2025, 1, 5)))
		assert.Equal(t, float64(5000), plan.PriceForDate(date(2025, 1, 6)))
	})

	t.Run("InactiveSeasonalIgnored", func(t *testing.T) {
		inactive := plan
		inactive.SeasonalRates = []pricing.SeasonalRate{
			{StartDate: date(2024, 11, 1), EndDate: date(2024, 11, 30), Price: 9000, Active: false},
		}

		assert.Equal(t, float64(5000), inactive.PriceForDate(date(2024, 11, 27)))
	})

	t.Run("TimeOfDayStripped", func(t *testing.T) {
		late := time.Date(2024, 12, 31, 23, 45, 0, 0, time.UTC)
		assert.Equal(t, float64(12000), plan.PriceForDate(late))
	})
}

func TestPriceForDateOverlappingSeasons(t *testing.T) {
	t.Run("HigherPriorityWins", func(t *testing.T) {
		plan := pricing.RatePlan{
			BasePrice: 5000,
			SeasonalRates: []pricing.SeasonalRate{
				{Name: "High Season", StartDate: date(2024, 12, 1), EndDate: date(2025, 1, 31), Price: 7000, Priority: 1, Active: true},
				{Name: "Festival Week", StartDate: date(2024, 12, 24), EndDate: date(2024, 12, 31), Price: 9500, Priority: 5, Active: true},
			},
		}

		assert.Equal(t, float64(9500), plan.PriceForDate(date(2024, 12, 25)))
		assert.Equal(t, float64(7000), plan.PriceForDate(date(2024, 12, 10)))
	})

	t.Run("EqualPriorityEarlierStartWins", func(t *testing.T) {
		plan := pricing.RatePlan{
			BasePrice: 5000,
			SeasonalRates: []pricing.SeasonalRate{
				{Name: "Late", StartDate: date(2024, 12, 10), EndDate: date(2024, 12, 31), Price: 8800, Priority: 2, Active: true},
				{Name: "Early", StartDate: date(2024, 12, 1), EndDate: date(2024, 12, 31), Price: 7700, Priority: 2, Active: true},
			},
		}

		assert.Equal(t, float64(7700), plan.PriceForDate(date(2024, 12, 15)))
	})

	t.Run("FullTieKeepsDeclarationOrder", func(t *testing.T) {
		plan := pricing.RatePlan{
			BasePrice: 5000,
			SeasonalRates: []pricing.SeasonalRate{
				{Name: "First", StartDate: date(2024, 12, 1), EndDate: date(2024, 12, 31), Price: 7100, Priority: 2, Active: true},
				{Name: "Second", StartDate: date(2024, 12, 1), EndDate: date(2024, 12, 31), Price: 7200, Priority: 2, Active: true},
			},
		}

		assert.Equal(t, float64(7100), plan.PriceForDate(date(2024, 12, 15)))
	})
}

func TestPriceForDateWeekendFallback(t *testing.T) {
	plan := pricing.RatePlan{
		BasePrice: 5000,
		WeekendRate: pricing.WeekendRate{
			Enabled: true,
			Price:   0,
			Days:    []time.Weekday{time.Friday, time.Saturday},
		},
	}

	// Enabled weekend with no price falls back to base.
	assert.Equal(t, float64(5000), plan.PriceForDate(date(2024, 11, 29)))
}

func TestQuoteRange(t *testing.T) {
	plan := pricing.RatePlan{
		BasePrice: 5000,
		WeekendRate: pricing.WeekendRate{
			Enabled: true,
			Price:   6000,
			Days:    []time.Weekday{time.Friday, time.Saturday},
		},
	}

	t.Run("ThursdayToSunday", func(t *testing.T) {
		// 2024-11-28 is a Thursday; three nights: Thu, Fri, Sat.
		quote := plan.QuoteRange(date(2024, 11, 28), date(2024, 12, 1))

		assert.Len(t, quote.Nights, 3)
		assert.Equal(t, float64(5000), quote.Nights[0].Price)
		assert.Equal(t, float64(6000), quote.Nights[1].Price)
		assert.Equal(t, float64(6000), quote.Nights[2].Price)
		assert.Equal(t, float64(17000), quote.Subtotal)
	})

	t.Run("CheckoutNightExcluded", func(t *testing.T) {
		quote := plan.QuoteRange(date(2024, 11, 25), date(2024, 11, 28))

		assert.Len(t, quote.Nights, 3)
		for _, night := range quote.Nights {
			assert.True(t, night.Date.Before(date(2024, 11, 28)))
		}
	})

	t.Run("EmptyRange", func(t *testing.T) {
		quote := plan.QuoteRange(date(2024, 11, 25), date(2024, 11, 25))

		assert.Empty(t, quote.Nights)
		assert.Zero(t, quote.Subtotal)
	})

	t.Run("InvertedRange", func(t *testing.T) {
		quote := plan.QuoteRange(date(2024, 11, 28), date(2024, 11, 25))

		assert.Empty(t, quote.Nights)
	})
}

func TestNights(t *testing.T) {
	assert.Equal(t, 3, pricing.Nights(date(2024, 12, 24), date(2024, 12, 27)))
	assert.Equal(t, 1, pricing.Nights(date(2024, 12, 24), date(2024, 12, 25)))
	assert.Equal(t, 0, pricing.Nights(date(2024, 12, 24), date(2024, 12, 24)))
}
