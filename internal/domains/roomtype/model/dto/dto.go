package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"stayhub/internal/domains/roomtype/model"
	"stayhub/internal/pricing"
	"stayhub/shared"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/failure"
	gModel "stayhub/shared/model"
	"stayhub/shared/timezone"
)

type SeasonalRateRequest struct {
	Name      string  `json:"name"       validate:"required,max=100"`
	StartDate string  `json:"start_date" validate:"required,daydate"`
	EndDate   string  `json:"end_date"   validate:"required,daydate"`
	Price     float64 `json:"price"      validate:"gte=0"`
	Priority  int     `json:"priority"   validate:"gte=0"`
	Active    bool    `json:"active"`
}

func (s *SeasonalRateRequest) ToRate() (pricing.SeasonalRate, error) {
	start, err := time.Parse(constant.DayFormat, s.StartDate)
	if err != nil {
		return pricing.SeasonalRate{}, fmt.Errorf("parsing seasonal start date: %w", err)
	}

	end, err := time.Parse(constant.DayFormat, s.EndDate)
	if err != nil {
		return pricing.SeasonalRate{}, fmt.Errorf("parsing seasonal end date: %w", err)
	}

	if end.Before(start) {
		return pricing.SeasonalRate{}, failure.BadRequestFromString(
			fmt.Sprintf("seasonal rate %q: end date is before start date", s.Name))
	}

	return pricing.SeasonalRate{
		Name:      s.Name,
		StartDate: start,
		EndDate:   end,
		Price:     s.Price,
		Priority:  s.Priority,
		Active:    s.Active,
	}, nil
}

type WeekendPricingRequest struct {
	Enabled bool    `json:"enabled"`
	Price   float64 `json:"price" validate:"gte=0"`
	Days    []int   `json:"days"  validate:"omitempty,dive,weekday"`
}

func (w *WeekendPricingRequest) ToRate() pricing.WeekendRate {
	days := make([]time.Weekday, 0, len(w.Days))
	for _, day := range w.Days {
		days = append(days, time.Weekday(day))
	}

	return pricing.WeekendRate{
		Enabled: w.Enabled,
		Price:   w.Price,
		Days:    days,
	}
}

type SpecialRateRequest struct {
	Date  string  `json:"date"  validate:"required,daydate"`
	Price float64 `json:"price" validate:"gte=0"`
	Note  string  `json:"note"  validate:"omitempty,max=300"`
}

func (s *SpecialRateRequest) ToRate() (pricing.SpecialRate, error) {
	date, err := time.Parse(constant.DayFormat, s.Date)
	if err != nil {
		return pricing.SpecialRate{}, fmt.Errorf("parsing special rate date: %w", err)
	}

	return pricing.SpecialRate{
		Date:  date,
		Price: s.Price,
		Note:  s.Note,
	}, nil
}

type CreateRoomTypeRequest struct {
	HotelID             string                 `json:"hotel_id"             validate:"required"`
	Name                string                 `json:"name"                 validate:"required,max=150"`
	Description         string                 `json:"description"          validate:"omitempty,max=2000"`
	MaxAdults           int                    `json:"max_adults"           validate:"required,gte=1"`
	MaxChildren         int                    `json:"max_children"         validate:"gte=0"`
	ExtraBedAllowed     bool                   `json:"extra_bed_allowed"`
	TotalUnits          int                    `json:"total_units"          validate:"required,gte=1"`
	BasePrice           float64                `json:"base_price"           validate:"gte=0"`
	ExtraBedCharge      float64                `json:"extra_bed_charge"     validate:"gte=0"`
	SeasonalPricing     []SeasonalRateRequest  `json:"seasonal_pricing"     validate:"omitempty,dive"`
	WeekendPricing      *WeekendPricingRequest `json:"weekend_pricing"      validate:"omitempty"`
	SpecialRates        []SpecialRateRequest   `json:"special_rates"        validate:"omitempty,dive"`
	HousekeepingDefault string                 `json:"housekeeping_default" validate:"omitempty,oneof=clean dirty maintenance inspecting"`
}

func (c *CreateRoomTypeRequest) ToModel(user string) (model.RoomType, error) {
	seasonal := make(model.SeasonalRates, 0, len(c.SeasonalPricing))
	for _, req := range c.SeasonalPricing {
		rate, err := req.ToRate()
		if err != nil {
			return model.RoomType{}, err
		}

		seasonal = append(seasonal, rate)
	}

	special := make(model.SpecialRates, 0, len(c.SpecialRates))
	for _, req := range c.SpecialRates {
		rate, err := req.ToRate()
		if err != nil {
			return model.RoomType{}, err
		}

		special = append(special, rate)
	}

	var weekend model.WeekendPricing
	if c.WeekendPricing != nil {
		weekend = model.WeekendPricing(c.WeekendPricing.ToRate())
	}

	housekeepingDefault := c.HousekeepingDefault
	if housekeepingDefault == "" {
		housekeepingDefault = "clean"
	}

	return model.RoomType{
		ID:                  uuid.NewString(),
		HotelID:             c.HotelID,
		Name:                c.Name,
		Description:         c.Description,
		MaxAdults:           c.MaxAdults,
		MaxChildren:         c.MaxChildren,
		ExtraBedAllowed:     c.ExtraBedAllowed,
		TotalUnits:          c.TotalUnits,
		BasePrice:           c.BasePrice,
		ExtraBedCharge:      c.ExtraBedCharge,
		SeasonalPricing:     seasonal,
		WeekendPricing:      weekend,
		SpecialRates:        special,
		HousekeepingDefault: housekeepingDefault,
		IsActive:            true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

// UpdateRoomTypeRequest patches the catalog record. Rule sets are
// replaced wholesale when present, never merged.
type UpdateRoomTypeRequest struct {
	Name                *string                `json:"name"                 validate:"omitempty,max=150"`
	Description         *string                `json:"description"          validate:"omitempty,max=2000"`
	MaxAdults           *int                   `json:"max_adults"           validate:"omitempty,gte=1"`
	MaxChildren         *int                   `json:"max_children"         validate:"omitempty,gte=0"`
	ExtraBedAllowed     *bool                  `json:"extra_bed_allowed"`
	TotalUnits          *int                   `json:"total_units"          validate:"omitempty,gte=1"`
	BasePrice           *float64               `json:"base_price"           validate:"omitempty,gte=0"`
	ExtraBedCharge      *float64               `json:"extra_bed_charge"     validate:"omitempty,gte=0"`
	SeasonalPricing     []SeasonalRateRequest  `json:"seasonal_pricing"     validate:"omitempty,dive"`
	WeekendPricing      *WeekendPricingRequest `json:"weekend_pricing"      validate:"omitempty"`
	SpecialRates        []SpecialRateRequest   `json:"special_rates"        validate:"omitempty,dive"`
	HousekeepingDefault *string                `json:"housekeeping_default" validate:"omitempty,oneof=clean dirty maintenance inspecting"`
	IsActive            *bool                  `json:"is_active"`
}

func (u *UpdateRoomTypeRequest) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.MaxAdults == nil &&
		u.MaxChildren == nil && u.ExtraBedAllowed == nil && u.TotalUnits == nil &&
		u.BasePrice == nil && u.ExtraBedCharge == nil && u.SeasonalPricing == nil &&
		u.WeekendPricing == nil && u.SpecialRates == nil &&
		u.HousekeepingDefault == nil && u.IsActive == nil
}

// Fields flattens the patch into repository update columns.
func (u *UpdateRoomTypeRequest) Fields(user string) (map[string]any, error) {
	fields := map[string]any{
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if u.Name != nil {
		fields[model.FieldName] = *u.Name
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.MaxAdults != nil {
		fields["max_adults"] = *u.MaxAdults
	}
	if u.MaxChildren != nil {
		fields["max_children"] = *u.MaxChildren
	}
	if u.ExtraBedAllowed != nil {
		fields["extra_bed_allowed"] = *u.ExtraBedAllowed
	}
	if u.TotalUnits != nil {
		fields[model.FieldTotalUnits] = *u.TotalUnits
	}
	if u.BasePrice != nil {
		fields[model.FieldBasePrice] = *u.BasePrice
	}
	if u.ExtraBedCharge != nil {
		fields[model.FieldExtraBedCharge] = *u.ExtraBedCharge
	}
	if u.SeasonalPricing != nil {
		seasonal := make(model.SeasonalRates, 0, len(u.SeasonalPricing))
		for _, req := range u.SeasonalPricing {
			rate, err := req.ToRate()
			if err != nil {
				return nil, err
			}

			seasonal = append(seasonal, rate)
		}

		fields[model.FieldSeasonalPricing] = seasonal
	}
	if u.WeekendPricing != nil {
		fields[model.FieldWeekendPricing] = model.WeekendPricing(u.WeekendPricing.ToRate())
	}
	if u.SpecialRates != nil {
		special := make(model.SpecialRates, 0, len(u.SpecialRates))
		for _, req := range u.SpecialRates {
			rate, err := req.ToRate()
			if err != nil {
				return nil, err
			}

			special = append(special, rate)
		}

		fields[model.FieldSpecialRates] = special
	}
	if u.HousekeepingDefault != nil {
		fields[model.FieldHousekeepingDefault] = *u.HousekeepingDefault
	}
	if u.IsActive != nil {
		fields[model.FieldIsActive] = *u.IsActive
	}

	return fields, nil
}

type SeasonalRateResponse struct {
	Name      string  `json:"name"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Price     float64 `json:"price"`
	Priority  int     `json:"priority"`
	Active    bool    `json:"active"`
}

type WeekendPricingResponse struct {
	Enabled bool    `json:"enabled"`
	Price   float64 `json:"price"`
	Days    []int   `json:"days"`
}

type SpecialRateResponse struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
	Note  string  `json:"note,omitempty"`
}

type RoomTypeResponse struct {
	ID                  string                 `json:"id"`
	HotelID             string                 `json:"hotel_id"`
	Name                string                 `json:"name"`
	Description         string                 `json:"description"`
	MaxAdults           int                    `json:"max_adults"`
	MaxChildren         int                    `json:"max_children"`
	ExtraBedAllowed     bool                   `json:"extra_bed_allowed"`
	TotalUnits          int                    `json:"total_units"`
	BasePrice           float64                `json:"base_price"`
	ExtraBedCharge      float64                `json:"extra_bed_charge"`
	SeasonalPricing     []SeasonalRateResponse `json:"seasonal_pricing"`
	WeekendPricing      WeekendPricingResponse `json:"weekend_pricing"`
	SpecialRates        []SpecialRateResponse  `json:"special_rates"`
	HousekeepingDefault string                 `json:"housekeeping_default"`
	IsActive            bool                   `json:"is_active"`
	Metadata            gDto.Metadata          `json:"metadata"`
}

func (r *RoomTypeResponse) FromModel(m model.RoomType) {
	r.ID = m.ID
	r.HotelID = m.HotelID
	r.Name = m.Name
	r.Description = m.Description
	r.MaxAdults = m.MaxAdults
	r.MaxChildren = m.MaxChildren
	r.ExtraBedAllowed = m.ExtraBedAllowed
	r.TotalUnits = m.TotalUnits
	r.BasePrice = m.BasePrice
	r.ExtraBedCharge = m.ExtraBedCharge
	r.HousekeepingDefault = m.HousekeepingDefault
	r.IsActive = m.IsActive
	r.Metadata.FromModel(m.Metadata)

	r.SeasonalPricing = make([]SeasonalRateResponse, 0, len(m.SeasonalPricing))
	for _, rate := range m.SeasonalPricing {
		r.SeasonalPricing = append(r.SeasonalPricing, SeasonalRateResponse{
			Name:      rate.Name,
			StartDate: rate.StartDate.Format(constant.DayFormat),
			EndDate:   rate.EndDate.Format(constant.DayFormat),
			Price:     rate.Price,
			Priority:  rate.Priority,
			Active:    rate.Active,
		})
	}

	days := make([]int, 0, len(m.WeekendPricing.Days))
	for _, day := range m.WeekendPricing.Days {
		days = append(days, int(day))
	}
	r.WeekendPricing = WeekendPricingResponse{
		Enabled: m.WeekendPricing.Enabled,
		Price:   m.WeekendPricing.Price,
		Days:    days,
	}

	r.SpecialRates = make([]SpecialRateResponse, 0, len(m.SpecialRates))
	for _, rate := range m.SpecialRates {
		r.SpecialRates = append(r.SpecialRates, SpecialRateResponse{
			Date:  rate.Date.Format(constant.DayFormat),
			Price: rate.Price,
			Note:  rate.Note,
		})
	}
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
	Total     int                `json:"total"`
	TotalPage int                `json:"total_page"`
}

func (g *GetRoomTypesResponse) FromModels(models []model.RoomType, total, limit int) {
	g.RoomTypes = make([]RoomTypeResponse, 0, len(models))
	for _, m := range models {
		var res RoomTypeResponse
		res.FromModel(m)
		g.RoomTypes = append(g.RoomTypes, res)
	}

	g.Total = total
	g.TotalPage = shared.CalculateTotalPage(total, limit)
}
