package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"stayhub/internal/domains/booking/model"
	"stayhub/internal/pricing"
	"stayhub/shared"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	gModel "stayhub/shared/model"
	"stayhub/shared/timezone"
)

// ParseDateRange turns wire dates into a validated [checkIn, checkOut)
// pair. Both must parse and check-in must precede check-out.
func ParseDateRange(checkIn, checkOut string) (time.Time, time.Time, error) {
	if checkIn == "" || checkOut == "" {
		return time.Time{}, time.Time{}, model.ErrInvalidDateRange("check-in and check-out dates are required")
	}

	from, err := time.Parse(constant.DayFormat, checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, model.ErrInvalidDateRange(fmt.Sprintf("invalid check-in date %q", checkIn))
	}

	to, err := time.Parse(constant.DayFormat, checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, model.ErrInvalidDateRange(fmt.Sprintf("invalid check-out date %q", checkOut))
	}

	if !from.Before(to) {
		return time.Time{}, time.Time{}, model.ErrInvalidDateRange("check-in date must be before check-out date")
	}

	return from, to, nil
}

type CheckAvailabilityRequest struct {
	RoomTypeID string `json:"room_type_id" validate:"required"`
	CheckIn    string `json:"check_in"     validate:"required,daydate"`
	CheckOut   string `json:"check_out"    validate:"required,daydate"`
	UnitID     string `json:"unit_id"      validate:"omitempty"`
}

type NightPriceResponse struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

type AvailabilityResponse struct {
	Available bool                 `json:"available"`
	Reason    string               `json:"reason,omitempty"`
	Nights    []NightPriceResponse `json:"nights,omitempty"`
	Total     float64              `json:"total"`
}

func (a *AvailabilityResponse) FromQuote(quote pricing.Quote) {
	a.Available = true
	a.Total = quote.Subtotal
	a.Nights = make([]NightPriceResponse, 0, len(quote.Nights))
	for _, night := range quote.Nights {
		a.Nights = append(a.Nights, NightPriceResponse{
			Date:  night.Date.Format(constant.DayFormat),
			Price: night.Price,
		})
	}
}

type AdditionalGuestRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Age  int    `json:"age"  validate:"omitempty,gte=0,lte=150"`
	NID  string `json:"nid"  validate:"omitempty,max=50"`
}

type CreateBookingRequest struct {
	RoomTypeID       string                   `json:"room_type_id"      validate:"required"`
	UnitID           string                   `json:"unit_id"           validate:"omitempty"`
	CheckIn          string                   `json:"check_in"          validate:"required,daydate"`
	CheckOut         string                   `json:"check_out"         validate:"required,daydate"`
	GuestName        string                   `json:"guest_name"        validate:"required,max=100"`
	GuestPhone       string                   `json:"guest_phone"       validate:"required,max=20"`
	GuestEmail       string                   `json:"guest_email"       validate:"omitempty,email,max=100"`
	GuestNID         string                   `json:"guest_nid"         validate:"omitempty,max=50"`
	GuestAddress     string                   `json:"guest_address"     validate:"omitempty,max=300"`
	GuestDocuments   []string                 `json:"guest_documents"   validate:"omitempty,dive,url"`
	AdditionalGuests []AdditionalGuestRequest `json:"additional_guests" validate:"omitempty,dive"`
	SpecialRequests  string                   `json:"special_requests"  validate:"omitempty,max=2000"`
	Channel          string                   `json:"channel"           validate:"omitempty,oneof=online offline"`
	Status           string                   `json:"status"            validate:"omitempty,oneof=pending confirmed"`
	Taxes            float64                  `json:"taxes"             validate:"gte=0"`
	Discount         float64                  `json:"discount"          validate:"gte=0"`
}

// InitialStatus resolves the creation status: explicit choice first,
// then confirmed for offline (staff) bookings, pending otherwise.
func (c *CreateBookingRequest) InitialStatus() string {
	if c.Status != "" {
		return c.Status
	}
	if c.Channel == model.ChannelOffline {
		return model.StatusConfirmed
	}

	return model.StatusPending
}

func (c *CreateBookingRequest) ToModel(user, hotelID string, checkIn, checkOut time.Time, quote pricing.Quote) model.Booking {
	channel := c.Channel
	if channel == "" {
		channel = model.ChannelOnline
	}

	unit := model.UnitRef{}
	if c.UnitID != "" {
		unit = model.AssignedUnit(c.UnitID)
	}

	guests := make(model.AdditionalGuests, 0, len(c.AdditionalGuests))
	for _, guest := range c.AdditionalGuests {
		guests = append(guests, model.AdditionalGuest{
			Name: guest.Name,
			Age:  guest.Age,
			NID:  guest.NID,
		})
	}

	return model.Booking{
		ID:              uuid.NewString(),
		HotelID:         hotelID,
		RoomTypeID:      c.RoomTypeID,
		Unit:            unit,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Nights:          pricing.Nights(checkIn, checkOut),
		GuestName:       c.GuestName,
		GuestPhone:      c.GuestPhone,
		GuestEmail:      c.GuestEmail,
		GuestNID:        c.GuestNID,
		GuestAddress:    c.GuestAddress,
		GuestDocuments:  c.GuestDocuments,
		AdditionalGuest: guests,
		Subtotal:        quote.Subtotal,
		Taxes:           c.Taxes,
		Discount:        c.Discount,
		TotalAmount:     quote.Subtotal + c.Taxes - c.Discount,
		PriceBreakdown:  quote.Nights,
		Status:          c.InitialStatus(),
		PaymentStatus:   model.PaymentPending,
		SpecialRequests: c.SpecialRequests,
		Channel:         channel,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// TransitionRequest applies one lifecycle edge. UnitID is an optional
// payload for check_in when staff pick the room themselves.
type TransitionRequest struct {
	Action string `json:"action"  validate:"required,oneof=confirm check_in check_out cancel"`
	UnitID string `json:"unit_id" validate:"omitempty"`
}

// UpdateBookingRequest edits guest details, payment state, and the
// adjustable pricing fields. Dates and unit are deliberately absent:
// changing dates is cancel + recreate, units go through assignment.
type UpdateBookingRequest struct {
	GuestName        *string                  `json:"guest_name"        validate:"omitempty,max=100"`
	GuestPhone       *string                  `json:"guest_phone"       validate:"omitempty,max=20"`
	GuestEmail       *string                  `json:"guest_email"       validate:"omitempty,email,max=100"`
	GuestNID         *string                  `json:"guest_nid"         validate:"omitempty,max=50"`
	GuestAddress     *string                  `json:"guest_address"     validate:"omitempty,max=300"`
	GuestDocuments   []string                 `json:"guest_documents"   validate:"omitempty,dive,url"`
	AdditionalGuests []AdditionalGuestRequest `json:"additional_guests" validate:"omitempty,dive"`
	SpecialRequests  *string                  `json:"special_requests"  validate:"omitempty,max=2000"`
	Discount         *float64                 `json:"discount"          validate:"omitempty,gte=0"`
	PaymentStatus    *string                  `json:"payment_status"    validate:"omitempty,oneof=pending partial paid refunded"`
	AmountPaid       *float64                 `json:"amount_paid"       validate:"omitempty,gte=0"`
}

func (u *UpdateBookingRequest) IsEmpty() bool {
	return u.GuestName == nil && u.GuestPhone == nil && u.GuestEmail == nil &&
		u.GuestNID == nil && u.GuestAddress == nil && u.GuestDocuments == nil &&
		u.AdditionalGuests == nil && u.SpecialRequests == nil && u.Discount == nil &&
		u.PaymentStatus == nil && u.AmountPaid == nil
}

type AssignUnitRequest struct {
	UnitID string `json:"unit_id" validate:"required"`
}

type AdditionalGuestResponse struct {
	Name string `json:"name"`
	Age  int    `json:"age,omitempty"`
	NID  string `json:"nid,omitempty"`
}

type BookingResponse struct {
	ID               string                    `json:"id"`
	HotelID          string                    `json:"hotel_id"`
	RoomTypeID       string                    `json:"room_type_id"`
	UnitID           string                    `json:"unit_id,omitempty"`
	CheckIn          string                    `json:"check_in"`
	CheckOut         string                    `json:"check_out"`
	Nights           int                       `json:"nights"`
	GuestName        string                    `json:"guest_name"`
	GuestPhone       string                    `json:"guest_phone"`
	GuestEmail       string                    `json:"guest_email,omitempty"`
	GuestNID         string                    `json:"guest_nid,omitempty"`
	GuestAddress     string                    `json:"guest_address,omitempty"`
	GuestDocuments   []string                  `json:"guest_documents,omitempty"`
	AdditionalGuests []AdditionalGuestResponse `json:"additional_guests,omitempty"`
	Subtotal         float64                   `json:"subtotal"`
	Taxes            float64                   `json:"taxes"`
	Discount         float64                   `json:"discount"`
	TotalAmount      float64                   `json:"total_amount"`
	AmountPaid       float64                   `json:"amount_paid"`
	Nightly          []NightPriceResponse      `json:"nightly,omitempty"`
	Status           string                    `json:"status"`
	PaymentStatus    string                    `json:"payment_status"`
	SpecialRequests  string                    `json:"special_requests,omitempty"`
	Channel          string                    `json:"channel"`
	Metadata         gDto.Metadata             `json:"metadata"`
}

func (b *BookingResponse) FromModel(m model.Booking) {
	b.ID = m.ID
	b.HotelID = m.HotelID
	b.RoomTypeID = m.RoomTypeID
	if m.Unit.Assigned {
		b.UnitID = m.Unit.ID
	}
	b.CheckIn = m.CheckIn.Format(constant.DayFormat)
	b.CheckOut = m.CheckOut.Format(constant.DayFormat)
	b.Nights = m.Nights
	b.GuestName = m.GuestName
	b.GuestPhone = m.GuestPhone
	b.GuestEmail = m.GuestEmail
	b.GuestNID = m.GuestNID
	b.GuestAddress = m.GuestAddress
	b.GuestDocuments = m.GuestDocuments
	b.Subtotal = m.Subtotal
	b.Taxes = m.Taxes
	b.Discount = m.Discount
	b.TotalAmount = m.TotalAmount
	b.AmountPaid = m.AmountPaid
	b.Status = m.Status
	b.PaymentStatus = m.PaymentStatus
	b.SpecialRequests = m.SpecialRequests
	b.Channel = m.Channel
	b.Metadata.FromModel(m.Metadata)

	b.AdditionalGuests = make([]AdditionalGuestResponse, 0, len(m.AdditionalGuest))
	for _, guest := range m.AdditionalGuest {
		b.AdditionalGuests = append(b.AdditionalGuests, AdditionalGuestResponse(guest))
	}

	b.Nightly = make([]NightPriceResponse, 0, len(m.PriceBreakdown))
	for _, night := range m.PriceBreakdown {
		b.Nightly = append(b.Nightly, NightPriceResponse{
			Date:  night.Date.Format(constant.DayFormat),
			Price: night.Price,
		})
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	Total     int               `json:"total"`
	TotalPage int               `json:"total_page"`
}

func (g *GetBookingsResponse) FromModels(models []model.Booking, total, limit int) {
	g.Bookings = make([]BookingResponse, 0, len(models))
	for _, m := range models {
		var res BookingResponse
		res.FromModel(m)
		g.Bookings = append(g.Bookings, res)
	}

	g.Total = total
	g.TotalPage = shared.CalculateTotalPage(total, limit)
}

// BookingEvent is the envelope published to the notification topic.
type BookingEvent struct {
	Type       string    `json:"type"`
	BookingID  string    `json:"booking_id"`
	HotelID    string    `json:"hotel_id"`
	RoomTypeID string    `json:"room_type_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
