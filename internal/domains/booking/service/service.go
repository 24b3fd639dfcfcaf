package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"stayhub/config"
	"stayhub/infras/kafka"
	"stayhub/infras/otel"
	"stayhub/internal/domains/booking/model"
	"stayhub/internal/domains/booking/model/dto"
	"stayhub/internal/domains/booking/repository"
	roomTypeModel "stayhub/internal/domains/roomtype/model"
	unitModel "stayhub/internal/domains/unit/model"
	"stayhub/internal/pricing"
	"stayhub/shared"
	"stayhub/shared/cache"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/failure"
	"stayhub/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
	cacheAvailability  = "availability"
)

const (
	eventCreated      = "booking.created"
	eventConfirmed    = "booking.confirmed"
	eventCheckedIn    = "booking.checked_in"
	eventCheckedOut   = "booking.checked_out"
	eventCancelled    = "booking.cancelled"
	eventUnitAssigned = "booking.unit_assigned"
)

type Booking interface {
	CheckAvailability(ctx context.Context, req dto.CheckAvailabilityRequest) (dto.AvailabilityResponse, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	AssignUnit(ctx context.Context, bookingID, unitID string) error
	Transition(ctx context.Context, bookingID string, req dto.TransitionRequest) error
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
}

type serviceImpl struct {
	repo  repository.Booking
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	kafka kafka.Client
}

func New(repo repository.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, kafka kafka.Client) Booking {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		kafka: kafka,
	}
}

// CheckAvailability is the advisory read: it answers quickly from the
// read connection and a short-lived cache. Create re-validates the same
// range atomically, so a stale answer here can never over-book.
func (s *serviceImpl) CheckAvailability(ctx context.Context, req dto.CheckAvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	from, to, err := dto.ParseDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheAvailability, req.RoomTypeID, req.UnitID, req.CheckIn, req.CheckOut)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	roomType, err := s.getActiveRoomType(ctx, req.RoomTypeID)
	if err != nil {
		return res, err
	}

	counts, err := s.repo.NightCounts(ctx, req.RoomTypeID, from, to)
	if err != nil {
		return res, err
	}

	if full, found := firstFullNight(counts, from, to, roomType.TotalUnits); found {
		res.Available = false
		res.Reason = fmt.Sprintf("room type is fully booked on %s", full.Format(constant.DayFormat))

		return res, nil
	}

	if req.UnitID != "" {
		reason, err := s.unitObjection(ctx, req.UnitID, req.RoomTypeID, from, to)
		if err != nil {
			return res, err
		}

		if reason != "" {
			res.Available = false
			res.Reason = reason

			return res, nil
		}
	}

	// Price only once the whole range is known to be available.
	res.FromQuote(roomType.RatePlan().QuoteRange(from, to))

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.AvailabilityTTL); err != nil {
			log.Error().Err(err).Msg("failed to save availability to cache")
		}
	}()

	return res, nil
}

// Create reserves inventory. The whole check-and-insert runs in one
// transaction holding the room type row lock, so two concurrent
// requests for the last slot serialize and exactly one succeeds.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	from, to, err := dto.ParseDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return res, err
	}

	if strings.TrimSpace(req.GuestName) == "" || strings.TrimSpace(req.GuestPhone) == "" {
		return res, model.ErrInvalidGuestDetails("guest name and phone are required")
	}

	// Walk-in channel and pre-confirmed status are staff knobs; a guest
	// booking always starts online and pending.
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if role == constant.RoleGuest && (req.Status != "" || req.Channel == model.ChannelOffline) {
		return res, failure.Forbidden("guests cannot set booking status or channel") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var booking model.Booking

	err = s.repo.Transact(ctx, func(tx *sqlx.Tx) error {
		roomType, err := s.lockActiveRoomType(ctx, tx, req.RoomTypeID)
		if err != nil {
			return err
		}

		counts, err := s.repo.NightCountsTx(ctx, tx, req.RoomTypeID, from, to)
		if err != nil {
			return err
		}

		if full, found := firstFullNight(counts, from, to, roomType.TotalUnits); found {
			return model.ErrRoomUnavailable(full)
		}

		if req.UnitID != "" {
			if err := s.validateUnitTx(ctx, tx, req.UnitID, req.RoomTypeID, from, to); err != nil {
				return err
			}
		}

		quote := roomType.RatePlan().QuoteRange(from, to)

		booking = req.ToModel(user, roomType.HotelID, from, to, quote)
		if booking.TotalAmount < 0 {
			return failure.BadRequestFromString("discount exceeds subtotal and taxes") // nolint:wrapcheck
		}

		if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
			return asUnavailable(err)
		}

		if err := s.repo.InsertNightsTx(ctx, tx, buildNights(booking)); err != nil {
			return asUnavailable(err)
		}

		return nil
	})
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	s.publishEvent(ctx, eventCreated, booking)
	s.invalidateLists(ctx, booking.ID)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// AssignUnit re-links a booking to a specific unit, releasing any prior
// one. The unique night index backs this up: a concurrent pin of the
// same unit fails at commit.
func (s *serviceImpl) AssignUnit(ctx context.Context, bookingID, unitID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AssignUnit")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if booking.Terminal() {
		return failure.WithKind(http.StatusConflict, model.KindInvalidTransition,
			fmt.Sprintf("cannot assign a unit to a %s booking", booking.Status)) // nolint:wrapcheck
	}

	if booking.Unit.Assigned && booking.Unit.ID == unitID {
		return nil
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	err = s.repo.Transact(ctx, func(tx *sqlx.Tx) error {
		if err := s.validateUnitTx(ctx, tx, unitID, booking.RoomTypeID, booking.CheckIn, booking.CheckOut); err != nil {
			return err
		}

		unit := model.AssignedUnit(unitID)

		fields := map[string]any{
			model.FieldUnitID:        unit,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		// Guarded on the status we read so a concurrent cancel
		// cannot end up holding a unit.
		ok, err := s.repo.UpdateStatusTx(ctx, tx, bookingID, booking.Status, fields)
		if err != nil {
			return asUnavailable(err)
		}

		if !ok {
			return failure.WithKind(http.StatusConflict, model.KindInvalidTransition,
				"booking status changed concurrently, cannot assign unit") // nolint:wrapcheck
		}

		if err := s.repo.SetNightUnitTx(ctx, tx, bookingID, unit); err != nil {
			return asUnavailable(err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	booking.Unit = model.AssignedUnit(unitID)

	s.publishEvent(ctx, eventUnitAssigned, booking)
	s.invalidateLists(ctx, bookingID)

	return nil
}

// Transition applies one edge of the lifecycle state machine.
func (s *serviceImpl) Transition(ctx context.Context, bookingID string, req dto.TransitionRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Transition")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	switch req.Action {
	case model.ActionConfirm:
		err = s.confirm(ctx, booking)
	case model.ActionCheckIn:
		err = s.checkIn(ctx, booking, req.UnitID)
	case model.ActionCheckOut:
		err = s.checkOut(ctx, booking)
	case model.ActionCancel:
		err = s.cancel(ctx, booking)
	default:
		err = failure.BadRequestFromString(fmt.Sprintf("unknown action %q", req.Action)) // nolint:wrapcheck
	}

	if err != nil {
		return err
	}

	s.invalidateLists(ctx, bookingID)

	return nil
}

func (s *serviceImpl) confirm(ctx context.Context, booking model.Booking) error {
	if booking.Status != model.StatusPending {
		return model.ErrInvalidTransition(booking.Status, model.StatusConfirmed)
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields := map[string]any{
		model.FieldStatus:        model.StatusConfirmed,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	ok, err := s.repo.UpdateStatus(ctx, booking.ID, model.StatusPending, fields)
	if err != nil {
		log.Error().Err(err).Msg("failed to confirm booking")

		return fmt.Errorf("failed to confirm booking: %w", err)
	}

	if !ok {
		return model.ErrStaleTransition(model.StatusConfirmed)
	}

	booking.Status = model.StatusConfirmed
	s.publishEvent(ctx, eventConfirmed, booking)

	return nil
}

// checkIn requires a unit: the payload's choice first, then the
// booking's pre-assigned unit, otherwise the first clean unit of the
// room type. All three paths re-validate inside the transaction.
func (s *serviceImpl) checkIn(ctx context.Context, booking model.Booking, requestedUnitID string) error {
	if booking.Status != model.StatusPending && booking.Status != model.StatusConfirmed {
		return model.ErrInvalidTransition(booking.Status, model.StatusCheckedIn)
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	err := s.repo.Transact(ctx, func(tx *sqlx.Tx) error {
		unit := booking.Unit

		switch {
		case requestedUnitID != "" && requestedUnitID != booking.Unit.ID:
			if err := s.validateUnitTx(ctx, tx, requestedUnitID, booking.RoomTypeID, booking.CheckIn, booking.CheckOut); err != nil {
				return err
			}

			unit = model.AssignedUnit(requestedUnitID)
		case booking.Unit.Assigned:
			// Re-read the held unit: housekeeping may have pulled it
			// into maintenance since assignment.
			held, err := s.repo.GetUnitTx(ctx, tx, booking.Unit.ID)
			if err != nil {
				return err
			}

			if held.HousekeepingStatus == unitModel.StatusMaintenance {
				return model.ErrUnitUnavailable("assigned unit is under maintenance")
			}
		default:
			clean, err := s.repo.FirstCleanUnitTx(ctx, tx, booking.RoomTypeID, booking.CheckIn, booking.CheckOut)
			if err != nil {
				return err
			}

			if clean.ID == constant.Empty {
				return model.ErrNoCleanUnit()
			}

			unit = model.AssignedUnit(clean.ID)
		}

		fields := map[string]any{
			model.FieldStatus:        model.StatusCheckedIn,
			model.FieldUnitID:        unit,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		ok, err := s.repo.UpdateStatusTx(ctx, tx, booking.ID, booking.Status, fields)
		if err != nil {
			return asUnavailable(err)
		}

		if !ok {
			return model.ErrStaleTransition(model.StatusCheckedIn)
		}

		if unit.ID != booking.Unit.ID {
			if err := s.repo.SetNightUnitTx(ctx, tx, booking.ID, unit); err != nil {
				return asUnavailable(err)
			}
		}

		booking.Unit = unit

		return nil
	})
	if err != nil {
		return err
	}

	booking.Status = model.StatusCheckedIn
	s.publishEvent(ctx, eventCheckedIn, booking)

	return nil
}

// checkOut releases the unit to housekeeping as dirty and clears the
// link. Night rows stay: a checked-out stay still consumed its nights.
func (s *serviceImpl) checkOut(ctx context.Context, booking model.Booking) error {
	if booking.Status != model.StatusCheckedIn {
		return model.ErrInvalidTransition(booking.Status, model.StatusCheckedOut)
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	err := s.repo.Transact(ctx, func(tx *sqlx.Tx) error {
		fields := map[string]any{
			model.FieldStatus:        model.StatusCheckedOut,
			model.FieldUnitID:        model.UnitRef{},
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		ok, err := s.repo.UpdateStatusTx(ctx, tx, booking.ID, model.StatusCheckedIn, fields)
		if err != nil {
			return err
		}

		if !ok {
			return model.ErrStaleTransition(model.StatusCheckedOut)
		}

		if booking.Unit.Assigned {
			if err := s.repo.SetUnitStatusTx(ctx, tx, booking.Unit.ID, unitModel.StatusDirty, user); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	booking.Status = model.StatusCheckedOut
	s.publishEvent(ctx, eventCheckedOut, booking)

	return nil
}

// cancel releases every held slot. Cancelling an already-cancelled
// booking is rejected, so a unit can never be double-released.
func (s *serviceImpl) cancel(ctx context.Context, booking model.Booking) error {
	if booking.Terminal() {
		return model.ErrInvalidTransition(booking.Status, model.StatusCancelled)
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	err := s.repo.Transact(ctx, func(tx *sqlx.Tx) error {
		fields := map[string]any{
			model.FieldStatus:        model.StatusCancelled,
			model.FieldUnitID:        model.UnitRef{},
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		// The guard keeps a lost race from releasing nights a
		// concurrent transition still counts on.
		ok, err := s.repo.UpdateStatusTx(ctx, tx, booking.ID, booking.Status, fields)
		if err != nil {
			return err
		}

		if !ok {
			return model.ErrStaleTransition(model.StatusCancelled)
		}

		return s.repo.DeleteNightsTx(ctx, tx, booking.ID)
	})
	if err != nil {
		return err
	}

	booking.Status = model.StatusCancelled
	s.publishEvent(ctx, eventCancelled, booking)

	return nil
}

// Update edits guest details, payment state, and the adjustable pricing
// fields. Metadata edits are allowed on terminal bookings too; they do
// not reopen the lifecycle.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields := map[string]any{
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if req.GuestName != nil {
		if strings.TrimSpace(*req.GuestName) == "" {
			return model.ErrInvalidGuestDetails("guest name cannot be empty")
		}

		fields["guest_name"] = *req.GuestName
	}
	if req.GuestPhone != nil {
		if strings.TrimSpace(*req.GuestPhone) == "" {
			return model.ErrInvalidGuestDetails("guest phone cannot be empty")
		}

		fields["guest_phone"] = *req.GuestPhone
	}
	if req.GuestEmail != nil {
		fields["guest_email"] = *req.GuestEmail
	}
	if req.GuestNID != nil {
		fields["guest_nid"] = *req.GuestNID
	}
	if req.GuestAddress != nil {
		fields["guest_address"] = *req.GuestAddress
	}
	if req.GuestDocuments != nil {
		fields["guest_documents"] = model.Documents(req.GuestDocuments)
	}
	if req.AdditionalGuests != nil {
		guests := make(model.AdditionalGuests, 0, len(req.AdditionalGuests))
		for _, guest := range req.AdditionalGuests {
			guests = append(guests, model.AdditionalGuest{Name: guest.Name, Age: guest.Age, NID: guest.NID})
		}

		fields["additional_guests"] = guests
	}
	if req.SpecialRequests != nil {
		fields["special_requests"] = *req.SpecialRequests
	}
	if req.PaymentStatus != nil {
		fields[model.FieldPaymentStatus] = *req.PaymentStatus
	}
	if req.AmountPaid != nil {
		fields["amount_paid"] = *req.AmountPaid
	}
	if req.Discount != nil {
		total := booking.Subtotal + booking.Taxes - *req.Discount
		if total < 0 {
			return failure.BadRequestFromString("discount exceeds subtotal and taxes") // nolint:wrapcheck
		}

		fields[model.FieldDiscount] = *req.Discount
		fields[model.FieldTotalAmount] = total
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	s.invalidateLists(ctx, id)

	return nil
}

func (s *serviceImpl) getBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) getActiveRoomType(ctx context.Context, roomTypeID string) (roomTypeModel.RoomType, error) {
	roomType, err := s.repo.RoomType(ctx, roomTypeID)
	if err != nil {
		return roomType, err
	}

	if roomType.ID == constant.Empty || !roomType.IsActive {
		return roomType, failure.NotFound("room type not found") // nolint:wrapcheck
	}

	return roomType, nil
}

func (s *serviceImpl) lockActiveRoomType(ctx context.Context, tx *sqlx.Tx, roomTypeID string) (roomTypeModel.RoomType, error) {
	roomType, err := s.repo.LockRoomTypeTx(ctx, tx, roomTypeID)
	if err != nil {
		return roomType, err
	}

	if roomType.ID == constant.Empty || !roomType.IsActive {
		return roomType, failure.NotFound("room type not found") // nolint:wrapcheck
	}

	return roomType, nil
}

// validateUnitTx enforces the unit-level rules with the row locked:
// right room type, in service, not in maintenance, no overlapping pin.
func (s *serviceImpl) validateUnitTx(ctx context.Context, tx *sqlx.Tx, unitID, roomTypeID string, from, to time.Time) error {
	unit, err := s.repo.GetUnitTx(ctx, tx, unitID)
	if err != nil {
		return err
	}

	if unit.ID == constant.Empty {
		return failure.BadRequestFromString("unit does not exist") // nolint:wrapcheck
	}

	if unit.RoomTypeID != roomTypeID {
		return failure.BadRequestFromString("unit does not belong to the requested room type") // nolint:wrapcheck
	}

	if !unit.IsActive {
		return model.ErrUnitUnavailable("unit is retired")
	}

	if unit.HousekeepingStatus == unitModel.StatusMaintenance {
		return model.ErrUnitUnavailable("unit is under maintenance")
	}

	conflict, err := s.repo.UnitConflictTx(ctx, tx, unitID, from, to)
	if err != nil {
		return err
	}

	if conflict {
		return model.ErrUnitUnavailable("unit is already booked for the requested dates")
	}

	return nil
}

// unitObjection is the advisory-path version of the unit rules: it
// reports a reason string instead of failing the request.
func (s *serviceImpl) unitObjection(ctx context.Context, unitID, roomTypeID string, from, to time.Time) (string, error) {
	unit, err := s.repo.Unit(ctx, unitID)
	if err != nil {
		return "", err
	}

	if unit.ID == constant.Empty || unit.RoomTypeID != roomTypeID || !unit.IsActive {
		return "unit is not available for this room type", nil
	}

	if unit.HousekeepingStatus == unitModel.StatusMaintenance {
		return "unit is under maintenance", nil
	}

	conflict, err := s.repo.UnitConflict(ctx, unitID, from, to)
	if err != nil {
		return "", err
	}

	if conflict {
		return "unit is already booked for the requested dates", nil
	}

	return "", nil
}

// publishEvent notifies collaborators fire-and-forget; a broker outage
// never rolls back a committed booking.
func (s *serviceImpl) publishEvent(ctx context.Context, eventType string, booking model.Booking) {
	go func() {
		c := context.WithoutCancel(ctx)

		event := dto.BookingEvent{
			Type:       eventType,
			BookingID:  booking.ID,
			HotelID:    booking.HotelID,
			RoomTypeID: booking.RoomTypeID,
			Status:     booking.Status,
			OccurredAt: timezone.Now(),
		}

		err := s.kafka.Publish(c, constant.KafkaTopicBookingEvents, kafka.Message{Key: booking.ID, Value: event})
		if err != nil {
			log.Error().Err(err).Str("type", eventType).Str("bookingID", booking.ID).Msg("failed to publish booking event")
		}
	}()
}

func (s *serviceImpl) invalidateLists(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheAvailability)
	}()
}

// buildNights expands a booking into one occupancy row per night.
func buildNights(booking model.Booking) []model.Night {
	nights := make([]model.Night, 0, booking.Nights)
	for day := pricing.Day(booking.CheckIn); day.Before(pricing.Day(booking.CheckOut)); day = day.AddDate(0, 0, 1) {
		nights = append(nights, model.Night{
			BookingID:  booking.ID,
			RoomTypeID: booking.RoomTypeID,
			UnitID:     booking.Unit,
			Night:      day,
		})
	}

	return nights
}

// firstFullNight walks [from, to) in order and returns the first night
// whose occupancy has reached capacity.
func firstFullNight(counts []model.NightCount, from, to time.Time, totalUnits int) (time.Time, bool) {
	occupancy := make(map[time.Time]int, len(counts))
	for _, count := range counts {
		occupancy[pricing.Day(count.Night)] = count.Count
	}

	for day := pricing.Day(from); day.Before(pricing.Day(to)); day = day.AddDate(0, 0, 1) {
		if occupancy[day] >= totalUnits {
			return day, true
		}
	}

	return time.Time{}, false
}

// asUnavailable converts a unique-index violation on the night table
// into the business conflict it represents.
func asUnavailable(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
		return model.ErrUnitUnavailable("unit is already booked for the requested dates")
	}

	return err
}
