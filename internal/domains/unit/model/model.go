package model

import (
	"stayhub/shared/model"
)

const (
	TableName  = "units"
	EntityName = "unit"

	FieldID                 = "id"
	FieldRoomTypeID         = "room_type_id"
	FieldLabel              = "label"
	FieldHousekeepingStatus = "housekeeping_status"
	FieldIsActive           = "is_active"
)

// Housekeeping statuses. A unit in maintenance is never offered for
// assignment; only a clean unit may be auto-assigned at check-in.
const (
	StatusClean       = "clean"
	StatusDirty       = "dirty"
	StatusMaintenance = "maintenance"
	StatusInspecting  = "inspecting"
)

func ValidStatus(status string) bool {
	switch status {
	case StatusClean, StatusDirty, StatusMaintenance, StatusInspecting:
		return true
	default:
		return false
	}
}

type Unit struct {
	ID                 string `db:"id"`
	RoomTypeID         string `db:"room_type_id"`
	Label              string `db:"label"`
	HousekeepingStatus string `db:"housekeeping_status"`
	IsActive           bool   `db:"is_active"`
	model.Metadata
}
