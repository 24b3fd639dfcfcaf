package model

import (
	"fmt"
	"net/http"
	"time"

	"stayhub/shared/constant"
	"stayhub/shared/failure"
)

// Business error kinds surfaced to callers. Each carries enough context
// (offending date, unit, transition) to render a user-facing message.
const (
	KindInvalidDateRange    = "INVALID_DATE_RANGE"
	KindInvalidGuestDetails = "INVALID_GUEST_DETAILS"
	KindRoomUnavailable     = "ROOM_UNAVAILABLE"
	KindUnitUnavailable     = "UNIT_UNAVAILABLE"
	KindNoCleanUnit         = "NO_CLEAN_UNIT_AVAILABLE"
	KindInvalidTransition   = "INVALID_TRANSITION"
)

func ErrInvalidDateRange(message string) error {
	return failure.WithKind(http.StatusUnprocessableEntity, KindInvalidDateRange, message)
}

func ErrInvalidGuestDetails(message string) error {
	return failure.WithKind(http.StatusUnprocessableEntity, KindInvalidGuestDetails, message)
}

func ErrRoomUnavailable(date time.Time) error {
	return failure.WithKind(http.StatusConflict, KindRoomUnavailable,
		fmt.Sprintf("room type is fully booked on %s", date.Format(constant.DayFormat)))
}

func ErrUnitUnavailable(message string) error {
	return failure.WithKind(http.StatusConflict, KindUnitUnavailable, message)
}

func ErrNoCleanUnit() error {
	return failure.WithKind(http.StatusConflict, KindNoCleanUnit,
		"no clean unit is available for check-in")
}

func ErrInvalidTransition(from, to string) error {
	return failure.WithKind(http.StatusConflict, KindInvalidTransition,
		fmt.Sprintf("cannot transition booking from %s to %s", from, to))
}

// ErrStaleTransition reports a lifecycle write whose guarded update
// matched no row: a concurrent writer moved the booking on first.
func ErrStaleTransition(to string) error {
	return failure.WithKind(http.StatusConflict, KindInvalidTransition,
		fmt.Sprintf("booking status changed concurrently, cannot transition to %s", to))
}
