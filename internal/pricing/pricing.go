// Package pricing resolves nightly room prices from layered rate rules.
// It is pure: a RatePlan carries everything needed, so callers can price
// stays without touching a data store.
package pricing

import (
	"sort"
	"time"
)

// SeasonalRate prices every night inside an inclusive date window.
// When windows overlap, the highest Priority wins; ties go to the
// window with the earlier start date, then to declaration order.
type SeasonalRate struct {
	Name      string    `json:"name"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Price     float64   `json:"price"`
	Priority  int       `json:"priority"`
	Active    bool      `json:"active"`
}

// WeekendRate overrides the base price on configured weekdays.
type WeekendRate struct {
	Enabled bool           `json:"enabled"`
	Price   float64        `json:"price"`
	Days    []time.Weekday `json:"days"`
}

// SpecialRate pins an exact calendar date to a price, beating every
// other rule.
type SpecialRate struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
	Note  string    `json:"note,omitempty"`
}

// RatePlan is the full pricing rule set of one room type.
type RatePlan struct {
	BasePrice      float64        `json:"basePrice"`
	ExtraBedCharge float64        `json:"extraBedCharge"`
	SeasonalRates  []SeasonalRate `json:"seasonalRates,omitempty"`
	WeekendRate    WeekendRate    `json:"weekendRate"`
	SpecialRates   []SpecialRate  `json:"specialRates,omitempty"`
}

// NightPrice is the resolved price of a single night.
type NightPrice struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
}

// Quote is the per-night breakdown of a stay. The checkout night is
// never included.
type Quote struct {
	Nights   []NightPrice `json:"nights"`
	Subtotal float64      `json:"subtotal"`
}

// Day strips the time-of-day portion, leaving a calendar date in UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// PriceForDate resolves one night. Resolution order: special rate,
// seasonal rate, weekend rate, base price. First layer that matches wins.
func (p RatePlan) PriceForDate(date time.Time) float64 {
	day := Day(date)

	for _, special := range p.SpecialRates {
		if Day(special.Date).Equal(day) {
			return special.Price
		}
	}

	if seasonal, ok := p.seasonalFor(day); ok {
		return seasonal.Price
	}

	if p.WeekendRate.Enabled && p.isWeekendDay(day.Weekday()) {
		if p.WeekendRate.Price > 0 {
			return p.WeekendRate.Price
		}
		// Enabled but unpriced weekend falls through to base.
		return p.BasePrice
	}

	return p.BasePrice
}

// QuoteRange prices every night in [checkIn, checkOut). An empty or
// inverted range yields an empty quote.
func (p RatePlan) QuoteRange(checkIn, checkOut time.Time) Quote {
	var quote Quote

	for day := Day(checkIn); day.Before(Day(checkOut)); day = day.AddDate(0, 0, 1) {
		price := p.PriceForDate(day)
		quote.Nights = append(quote.Nights, NightPrice{Date: day, Price: price})
		quote.Subtotal += price
	}

	return quote
}

func (p RatePlan) seasonalFor(day time.Time) (SeasonalRate, bool) {
	var matches []SeasonalRate

	for _, seasonal := range p.SeasonalRates {
		if !seasonal.Active {
			continue
		}

		start := Day(seasonal.StartDate)
		end := Day(seasonal.EndDate)
		if day.Before(start) || day.After(end) {
			continue
		}

		matches = append(matches, seasonal)
	}

	if len(matches) == 0 {
		return SeasonalRate{}, false
	}

	// SliceStable keeps declaration order as the final tie-break.
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Priority != matches[j].Priority {
			return matches[i].Priority > matches[j].Priority
		}

		return Day(matches[i].StartDate).Before(Day(matches[j].StartDate))
	})

	return matches[0], true
}

func (p RatePlan) isWeekendDay(weekday time.Weekday) bool {
	for _, day := range p.WeekendRate.Days {
		if day == weekday {
			return true
		}
	}

	return false
}

// Nights counts whole nights between two dates; the checkout date is
// not a night.
func Nights(checkIn, checkOut time.Time) int {
	return int(Day(checkOut).Sub(Day(checkIn)).Hours() / 24)
}
