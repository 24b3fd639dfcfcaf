package dto

import (
	"github.com/google/uuid"

	"stayhub/internal/domains/unit/model"
	"stayhub/shared"
	gDto "stayhub/shared/dto"
	gModel "stayhub/shared/model"
	"stayhub/shared/timezone"
)

type CreateUnitRequest struct {
	RoomTypeID         string `json:"room_type_id"        validate:"required"`
	Label              string `json:"label"               validate:"required,max=50"`
	HousekeepingStatus string `json:"housekeeping_status" validate:"omitempty,oneof=clean dirty maintenance inspecting"`
}

func (c *CreateUnitRequest) ToModel(user, defaultStatus string) model.Unit {
	status := c.HousekeepingStatus
	if status == "" {
		status = defaultStatus
	}
	if status == "" {
		status = model.StatusClean
	}

	return model.Unit{
		ID:                 uuid.NewString(),
		RoomTypeID:         c.RoomTypeID,
		Label:              c.Label,
		HousekeepingStatus: status,
		IsActive:           true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// HousekeepingStatusRequest is the dedicated housekeeping transition
// payload used by cleaning staff.
type HousekeepingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=clean dirty maintenance inspecting"`
}

// UpdateUnitRequest drives the housekeeping workflow and unit retirement.
type UpdateUnitRequest struct {
	Label              *string `db:"label"               json:"label"               validate:"omitempty,max=50"`
	HousekeepingStatus *string `db:"housekeeping_status" json:"housekeeping_status" validate:"omitempty,oneof=clean dirty maintenance inspecting"`
	IsActive           *bool   `db:"is_active"           json:"is_active"           validate:"omitempty"`
}

type UnitResponse struct {
	ID                 string        `json:"id"`
	RoomTypeID         string        `json:"room_type_id"`
	Label              string        `json:"label"`
	HousekeepingStatus string        `json:"housekeeping_status"`
	IsActive           bool          `json:"is_active"`
	Metadata           gDto.Metadata `json:"metadata"`
}

func (u *UnitResponse) FromModel(m model.Unit) {
	u.ID = m.ID
	u.RoomTypeID = m.RoomTypeID
	u.Label = m.Label
	u.HousekeepingStatus = m.HousekeepingStatus
	u.IsActive = m.IsActive
	u.Metadata.FromModel(m.Metadata)
}

type GetUnitsResponse struct {
	Units     []UnitResponse `json:"units"`
	Total     int            `json:"total"`
	TotalPage int            `json:"total_page"`
}

func (g *GetUnitsResponse) FromModels(models []model.Unit, total, limit int) {
	g.Units = make([]UnitResponse, 0, len(models))
	for _, m := range models {
		var res UnitResponse
		res.FromModel(m)
		g.Units = append(g.Units, res)
	}

	g.Total = total
	g.TotalPage = shared.CalculateTotalPage(total, limit)
}
