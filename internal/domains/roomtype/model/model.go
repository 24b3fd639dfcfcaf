package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"stayhub/internal/pricing"
	"stayhub/shared/model"
)

const (
	TableName  = "room_types"
	EntityName = "room_type"

	FieldID                  = "id"
	FieldHotelID             = "hotel_id"
	FieldName                = "name"
	FieldTotalUnits          = "total_units"
	FieldBasePrice           = "base_price"
	FieldExtraBedCharge      = "extra_bed_charge"
	FieldSeasonalPricing     = "seasonal_pricing"
	FieldWeekendPricing      = "weekend_pricing"
	FieldSpecialRates        = "special_rates"
	FieldHousekeepingDefault = "housekeeping_default"
	FieldIsActive            = "is_active"
)

// SeasonalRates is the seasonal rule set stored as a JSONB column.
type SeasonalRates []pricing.SeasonalRate

func (s SeasonalRates) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *SeasonalRates) Scan(src any) error {
	return scanJSON(src, s)
}

// WeekendPricing is the weekend override stored as a JSONB column.
type WeekendPricing pricing.WeekendRate

func (w WeekendPricing) Value() (driver.Value, error) {
	return json.Marshal(w)
}

func (w *WeekendPricing) Scan(src any) error {
	return scanJSON(src, w)
}

// SpecialRates is the per-date override set stored as a JSONB column.
type SpecialRates []pricing.SpecialRate

func (s SpecialRates) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *SpecialRates) Scan(src any) error {
	return scanJSON(src, s)
}

func scanJSON(src, dst any) error {
	switch data := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(data, dst)
	case string:
		return json.Unmarshal([]byte(data), dst)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
}

type RoomType struct {
	ID                  string         `db:"id"`
	HotelID             string         `db:"hotel_id"`
	Name                string         `db:"name"`
	Description         string         `db:"description"`
	MaxAdults           int            `db:"max_adults"`
	MaxChildren         int            `db:"max_children"`
	ExtraBedAllowed     bool           `db:"extra_bed_allowed"`
	TotalUnits          int            `db:"total_units"`
	BasePrice           float64        `db:"base_price"`
	ExtraBedCharge      float64        `db:"extra_bed_charge"`
	SeasonalPricing     SeasonalRates  `db:"seasonal_pricing"`
	WeekendPricing      WeekendPricing `db:"weekend_pricing"`
	SpecialRates        SpecialRates   `db:"special_rates"`
	HousekeepingDefault string         `db:"housekeeping_default"`
	IsActive            bool           `db:"is_active"`
	model.Metadata
}

// RatePlan assembles the rule columns into the pricing engine's value
// object. Bookings price against this snapshot, never the row directly.
func (r RoomType) RatePlan() pricing.RatePlan {
	return pricing.RatePlan{
		BasePrice:      r.BasePrice,
		ExtraBedCharge: r.ExtraBedCharge,
		SeasonalRates:  r.SeasonalPricing,
		WeekendRate:    pricing.WeekendRate(r.WeekendPricing),
		SpecialRates:   r.SpecialRates,
	}
}
