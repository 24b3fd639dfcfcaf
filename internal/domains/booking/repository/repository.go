package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"stayhub/infras/otel"
	"stayhub/infras/postgres"
	"stayhub/internal/domains/booking/model"
	roomTypeModel "stayhub/internal/domains/roomtype/model"
	unitModel "stayhub/internal/domains/unit/model"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	gRepo "stayhub/shared/repository"
)

type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateStatus(ctx context.Context, bookingID, expected string, fields map[string]any) (bool, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, bookingID, expected string, fields map[string]any) (bool, error)
	Transact(ctx context.Context, fn func(tx *sqlx.Tx) error) error

	NightCounts(ctx context.Context, roomTypeID string, from, to time.Time) ([]model.NightCount, error)
	NightCountsTx(ctx context.Context, tx *sqlx.Tx, roomTypeID string, from, to time.Time) ([]model.NightCount, error)
	UnitConflict(ctx context.Context, unitID string, from, to time.Time) (bool, error)
	UnitConflictTx(ctx context.Context, tx *sqlx.Tx, unitID string, from, to time.Time) (bool, error)

	RoomType(ctx context.Context, roomTypeID string) (roomTypeModel.RoomType, error)
	Unit(ctx context.Context, unitID string) (unitModel.Unit, error)
	LockRoomTypeTx(ctx context.Context, tx *sqlx.Tx, roomTypeID string) (roomTypeModel.RoomType, error)
	GetUnitTx(ctx context.Context, tx *sqlx.Tx, unitID string) (unitModel.Unit, error)
	FirstCleanUnitTx(ctx context.Context, tx *sqlx.Tx, roomTypeID string, from, to time.Time) (unitModel.Unit, error)
	SetUnitStatusTx(ctx context.Context, tx *sqlx.Tx, unitID, status, user string) error

	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Booking) error
	InsertNightsTx(ctx context.Context, tx *sqlx.Tx, nights []model.Night) error
	SetNightUnitTx(ctx context.Context, tx *sqlx.Tx, bookingID string, unit model.UnitRef) error
	DeleteNightsTx(ctx context.Context, tx *sqlx.Tx, bookingID string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// NightCounts returns per-night occupancy of a room type over
// [from, to). Nights without bookings are simply absent. Cancelled
// bookings never appear because their night rows are deleted.
func (r *repositoryImpl) NightCounts(ctx context.Context, roomTypeID string, from, to time.Time) ([]model.NightCount, error) {
	return r.nightCounts(ctx, r.db.Read, roomTypeID, from, to)
}

func (r *repositoryImpl) NightCountsTx(ctx context.Context, tx *sqlx.Tx, roomTypeID string, from, to time.Time) ([]model.NightCount, error) {
	return r.nightCounts(ctx, tx, roomTypeID, from, to)
}

func (r *repositoryImpl) nightCounts(ctx context.Context, q sqlx.QueryerContext, roomTypeID string, from, to time.Time) ([]model.NightCount, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".nightCounts")
	defer scope.End()

	query := `
		SELECT night, COUNT(*) AS cnt
		FROM booking_nights
		WHERE room_type_id = $1 AND night >= $2 AND night < $3
		GROUP BY night
		ORDER BY night`

	var counts []model.NightCount
	err := sqlx.SelectContext(ctx, q, &counts, query, roomTypeID, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("roomTypeID", roomTypeID).Msg("failed to count booking nights")

		return nil, fmt.Errorf("counting booking nights: %w", err)
	}

	return counts, nil
}

// UnitConflict reports whether any night in [from, to) already pins the
// given unit.
func (r *repositoryImpl) UnitConflict(ctx context.Context, unitID string, from, to time.Time) (bool, error) {
	return r.unitConflict(ctx, r.db.Read, unitID, from, to)
}

func (r *repositoryImpl) UnitConflictTx(ctx context.Context, tx *sqlx.Tx, unitID string, from, to time.Time) (bool, error) {
	return r.unitConflict(ctx, tx, unitID, from, to)
}

func (r *repositoryImpl) unitConflict(ctx context.Context, q sqlx.QueryerContext, unitID string, from, to time.Time) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".unitConflict")
	defer scope.End()

	query := `
		SELECT EXISTS (
			SELECT 1 FROM booking_nights
			WHERE unit_id = $1 AND night >= $2 AND night < $3
		)`

	var exists bool
	err := sqlx.GetContext(ctx, q, &exists, query, unitID, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("unitID", unitID).Msg("failed to check unit conflict")

		return false, fmt.Errorf("checking unit conflict: %w", err)
	}

	return exists, nil
}

// RoomType reads the room type a booking or availability check targets.
// The bookings domain owns its own reads here to keep the advisory path
// on a single repository.
func (r *repositoryImpl) RoomType(ctx context.Context, roomTypeID string) (roomTypeModel.RoomType, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".roomType")
	defer scope.End()

	query := `SELECT * FROM room_types WHERE id = $1`

	var roomType roomTypeModel.RoomType
	err := r.db.Read.GetContext(ctx, &roomType, query, roomTypeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return roomTypeModel.RoomType{}, nil
		}

		scope.TraceError(err)
		log.Error().Err(err).Str("roomTypeID", roomTypeID).Msg("failed to get room type")

		return roomTypeModel.RoomType{}, fmt.Errorf("getting room type: %w", err)
	}

	return roomType, nil
}

func (r *repositoryImpl) Unit(ctx context.Context, unitID string) (unitModel.Unit, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".unit")
	defer scope.End()

	query := `SELECT * FROM units WHERE id = $1`

	var unit unitModel.Unit
	err := r.db.Read.GetContext(ctx, &unit, query, unitID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return unitModel.Unit{}, nil
		}

		scope.TraceError(err)
		log.Error().Err(err).Str("unitID", unitID).Msg("failed to get unit")

		return unitModel.Unit{}, fmt.Errorf("getting unit: %w", err)
	}

	return unit, nil
}

// LockRoomTypeTx reads the room type row with FOR UPDATE, serializing
// concurrent booking creation for the same room type. This is the
// capacity guard: the occupancy recount that follows cannot race
// another insert.
func (r *repositoryImpl) LockRoomTypeTx(ctx context.Context, tx *sqlx.Tx, roomTypeID string) (roomTypeModel.RoomType, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".lockRoomType")
	defer scope.End()

	query := `SELECT * FROM room_types WHERE id = $1 FOR UPDATE`

	var roomType roomTypeModel.RoomType
	err := tx.GetContext(ctx, &roomType, query, roomTypeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return roomTypeModel.RoomType{}, nil
		}

		scope.TraceError(err)
		log.Error().Err(err).Str("roomTypeID", roomTypeID).Msg("failed to lock room type")

		return roomTypeModel.RoomType{}, fmt.Errorf("locking room type: %w", err)
	}

	return roomType, nil
}

// GetUnitTx re-reads a unit inside the transaction, guarding against a
// housekeeping status change between validation and commit.
func (r *repositoryImpl) GetUnitTx(ctx context.Context, tx *sqlx.Tx, unitID string) (unitModel.Unit, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".getUnit")
	defer scope.End()

	query := `SELECT * FROM units WHERE id = $1 FOR UPDATE`

	var unit unitModel.Unit
	err := tx.GetContext(ctx, &unit, query, unitID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return unitModel.Unit{}, nil
		}

		scope.TraceError(err)
		log.Error().Err(err).Str("unitID", unitID).Msg("failed to get unit")

		return unitModel.Unit{}, fmt.Errorf("getting unit: %w", err)
	}

	return unit, nil
}

// FirstCleanUnitTx picks the first clean, active unit of the room type
// with no pinned night in [from, to), locking it for the transaction.
func (r *repositoryImpl) FirstCleanUnitTx(ctx context.Context, tx *sqlx.Tx, roomTypeID string, from, to time.Time) (unitModel.Unit, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".firstCleanUnit")
	defer scope.End()

	query := `
		SELECT u.* FROM units u
		WHERE u.room_type_id = $1
		  AND u.housekeeping_status = $2
		  AND u.is_active = TRUE
		  AND NOT EXISTS (
			SELECT 1 FROM booking_nights bn
			WHERE bn.unit_id = u.id AND bn.night >= $3 AND bn.night < $4
		  )
		ORDER BY u.label
		LIMIT 1
		FOR UPDATE OF u`

	var unit unitModel.Unit
	err := tx.GetContext(ctx, &unit, query, roomTypeID, unitModel.StatusClean, from, to)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return unitModel.Unit{}, nil
		}

		scope.TraceError(err)
		log.Error().Err(err).Str("roomTypeID", roomTypeID).Msg("failed to find clean unit")

		return unitModel.Unit{}, fmt.Errorf("finding clean unit: %w", err)
	}

	return unit, nil
}

// UpdateStatus writes a lifecycle transition guarded by the status the
// caller read. Returns false, leaving the row untouched, when a
// concurrent writer moved the booking on first.
func (r *repositoryImpl) UpdateStatus(ctx context.Context, bookingID, expected string, fields map[string]any) (bool, error) {
	return r.updateStatus(ctx, r.db.Write, bookingID, expected, fields)
}

func (r *repositoryImpl) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, bookingID, expected string, fields map[string]any) (bool, error) {
	return r.updateStatus(ctx, tx, bookingID, expected, fields)
}

func (r *repositoryImpl) updateStatus(ctx context.Context, ext sqlx.ExtContext, bookingID, expected string, fields map[string]any) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".updateStatus")
	defer scope.End()

	sets := make([]string, 0, len(fields))
	for col := range maps.Keys(fields) {
		sets = append(sets, fmt.Sprintf("%s = :%s", col, col))
	}

	args := map[string]any{
		"guard_id":     bookingID,
		"guard_status": expected,
	}
	maps.Copy(args, fields)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = :guard_id AND %s = :guard_status",
		model.TableName, strings.Join(sets, ", "), model.FieldID, model.FieldStatus)

	result, err := sqlx.NamedExecContext(ctx, ext, query, args)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to update booking status")

		return false, fmt.Errorf("updating booking status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading affected rows: %w", err)
	}

	return affected > 0, nil
}

func (r *repositoryImpl) SetUnitStatusTx(ctx context.Context, tx *sqlx.Tx, unitID, status, user string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".setUnitStatus")
	defer scope.End()

	query := `UPDATE units SET housekeeping_status = $1, modified_at = NOW(), modified_by = $2 WHERE id = $3`

	if _, err := tx.ExecContext(ctx, query, status, user, unitID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("unitID", unitID).Msg("failed to set unit status")

		return fmt.Errorf("setting unit status: %w", err)
	}

	return nil
}

func (r *repositoryImpl) InsertNightsTx(ctx context.Context, tx *sqlx.Tx, nights []model.Night) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".insertNights")
	defer scope.End()

	query := `
		INSERT INTO booking_nights (booking_id, room_type_id, unit_id, night)
		VALUES (:booking_id, :room_type_id, :unit_id, :night)`

	if _, err := tx.NamedExecContext(ctx, query, nights); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to insert booking nights")

		return fmt.Errorf("inserting booking nights: %w", err)
	}

	return nil
}

// SetNightUnitTx re-pins (or clears) the unit on every night row of a
// booking. The partial unique index on (unit_id, night) rejects a pin
// that would double-assign the unit.
func (r *repositoryImpl) SetNightUnitTx(ctx context.Context, tx *sqlx.Tx, bookingID string, unit model.UnitRef) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".setNightUnit")
	defer scope.End()

	query := `UPDATE booking_nights SET unit_id = $1 WHERE booking_id = $2`

	unitValue, err := unit.Value()
	if err != nil {
		return fmt.Errorf("encoding unit reference: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, unitValue, bookingID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to set unit on booking nights")

		return fmt.Errorf("setting unit on booking nights: %w", err)
	}

	return nil
}

// DeleteNightsTx releases every occupancy slot of a booking. Called on
// cancellation only; checked-out stays keep their historical rows.
func (r *repositoryImpl) DeleteNightsTx(ctx context.Context, tx *sqlx.Tx, bookingID string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".deleteNights")
	defer scope.End()

	query := `DELETE FROM booking_nights WHERE booking_id = $1`

	if _, err := tx.ExecContext(ctx, query, bookingID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to delete booking nights")

		return fmt.Errorf("deleting booking nights: %w", err)
	}

	return nil
}
