package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"stayhub/internal/pricing"
	"stayhub/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldHotelID       = "hotel_id"
	FieldRoomTypeID    = "room_type_id"
	FieldUnitID        = "unit_id"
	FieldCheckIn       = "check_in"
	FieldCheckOut      = "check_out"
	FieldStatus        = "status"
	FieldPaymentStatus = "payment_status"
	FieldDiscount      = "discount"
	FieldTotalAmount   = "total_amount"

	NightsTableName = "booking_nights"
)

// Booking statuses. Cancelled and checked_out are terminal for
// inventory purposes.
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"
)

const (
	PaymentPending  = "pending"
	PaymentPartial  = "partial"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

const (
	ChannelOnline  = "online"
	ChannelOffline = "offline"
)

// Lifecycle actions applied through the transition endpoint.
const (
	ActionConfirm  = "confirm"
	ActionCheckIn  = "check_in"
	ActionCheckOut = "check_out"
	ActionCancel   = "cancel"
)

// UnitRef is the booking's unit-assignment state. A booking always owns
// a room-type capacity slot; it optionally also owns a physical unit.
// The two modes are explicit here rather than hidden in a nullable FK.
type UnitRef struct {
	ID       string
	Assigned bool
}

func AssignedUnit(id string) UnitRef {
	return UnitRef{ID: id, Assigned: true}
}

func (u UnitRef) Value() (driver.Value, error) {
	if !u.Assigned {
		return nil, nil
	}

	return u.ID, nil
}

func (u *UnitRef) Scan(src any) error {
	switch val := src.(type) {
	case nil:
		*u = UnitRef{}
		return nil
	case string:
		*u = AssignedUnit(val)
		return nil
	case []byte:
		*u = AssignedUnit(string(val))
		return nil
	default:
		return fmt.Errorf("unsupported unit reference source type %T", src)
	}
}

type AdditionalGuest struct {
	Name string `json:"name"`
	Age  int    `json:"age,omitempty"`
	NID  string `json:"nid,omitempty"`
}

// AdditionalGuests is stored as a JSONB column.
type AdditionalGuests []AdditionalGuest

func (a AdditionalGuests) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *AdditionalGuests) Scan(src any) error {
	return scanJSON(src, a)
}

// Documents holds upload-service URLs for guest ID documents, stored
// verbatim as a JSONB column.
type Documents []string

func (d Documents) Value() (driver.Value, error) {
	return json.Marshal(d)
}

func (d *Documents) Scan(src any) error {
	return scanJSON(src, d)
}

// PriceBreakdown is the per-night pricing snapshot taken at creation.
type PriceBreakdown []pricing.NightPrice

func (p PriceBreakdown) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *PriceBreakdown) Scan(src any) error {
	return scanJSON(src, p)
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

type Booking struct {
	ID              string           `db:"id"`
	HotelID         string           `db:"hotel_id"`
	RoomTypeID      string           `db:"room_type_id"`
	Unit            UnitRef          `db:"unit_id"`
	CheckIn         time.Time        `db:"check_in"`
	CheckOut        time.Time        `db:"check_out"`
	Nights          int              `db:"nights"`
	GuestName       string           `db:"guest_name"`
	GuestPhone      string           `db:"guest_phone"`
	GuestEmail      string           `db:"guest_email"`
	GuestNID        string           `db:"guest_nid"`
	GuestAddress    string           `db:"guest_address"`
	GuestDocuments  Documents        `db:"guest_documents"`
	AdditionalGuest AdditionalGuests `db:"additional_guests"`
	Subtotal        float64          `db:"subtotal"`
	Taxes           float64          `db:"taxes"`
	Discount        float64          `db:"discount"`
	TotalAmount     float64          `db:"total_amount"`
	AmountPaid      float64          `db:"amount_paid"`
	PriceBreakdown  PriceBreakdown   `db:"price_breakdown"`
	Status          string           `db:"status"`
	PaymentStatus   string           `db:"payment_status"`
	SpecialRequests string           `db:"special_requests"`
	Channel         string           `db:"channel"`
	model.Metadata
}

// Terminal reports whether the booking can no longer hold inventory.
func (b Booking) Terminal() bool {
	return b.Status == StatusCancelled || b.Status == StatusCheckedOut
}

// Night is one occupancy row: a booking consuming one room-type slot
// for one calendar night, optionally pinned to a physical unit. A
// partial unique index on (unit_id, night) makes double unit
// assignment fail at insert time.
type Night struct {
	BookingID  string    `db:"booking_id"`
	RoomTypeID string    `db:"room_type_id"`
	UnitID     UnitRef   `db:"unit_id"`
	Night      time.Time `db:"night"`
}

// NightCount is the occupancy of one night of a room type.
type NightCount struct {
	Night time.Time `db:"night"`
	Count int       `db:"cnt"`
}
