package dto

import (
	"github.com/google/uuid"

	"stayhub/internal/domains/hotel/model"
	"stayhub/shared"
	gDto "stayhub/shared/dto"
	gModel "stayhub/shared/model"
	"stayhub/shared/timezone"
)

type CreateHotelRequest struct {
	Name        string `json:"name"        validate:"required,max=150"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Address     string `json:"address"     validate:"required,max=300"`
	City        string `json:"city"        validate:"required,max=100"`
	Country     string `json:"country"     validate:"required,max=100"`
	Phone       string `json:"phone"       validate:"required,max=20"`
	Email       string `json:"email"       validate:"omitempty,email,max=100"`
}

func (c *CreateHotelRequest) ToModel(user string) model.Hotel {
	return model.Hotel{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		Address:     c.Address,
		City:        c.City,
		Country:     c.Country,
		Phone:       c.Phone,
		Email:       c.Email,
		IsActive:    true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateHotelRequest struct {
	Name        *string `db:"name"        json:"name"        validate:"omitempty,max=150"`
	Description *string `db:"description" json:"description" validate:"omitempty,max=2000"`
	Address     *string `db:"address"     json:"address"     validate:"omitempty,max=300"`
	City        *string `db:"city"        json:"city"        validate:"omitempty,max=100"`
	Country     *string `db:"country"     json:"country"     validate:"omitempty,max=100"`
	Phone       *string `db:"phone"       json:"phone"       validate:"omitempty,max=20"`
	Email       *string `db:"email"       json:"email"       validate:"omitempty,email,max=100"`
	IsActive    *bool   `db:"is_active"   json:"is_active"   validate:"omitempty"`
}

type HotelResponse struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Address     string        `json:"address"`
	City        string        `json:"city"`
	Country     string        `json:"country"`
	Phone       string        `json:"phone"`
	Email       string        `json:"email"`
	IsActive    bool          `json:"is_active"`
	Metadata    gDto.Metadata `json:"metadata"`
}

func (h *HotelResponse) FromModel(m model.Hotel) {
	h.ID = m.ID
	h.Name = m.Name
	h.Description = m.Description
	h.Address = m.Address
	h.City = m.City
	h.Country = m.Country
	h.Phone = m.Phone
	h.Email = m.Email
	h.IsActive = m.IsActive
	h.Metadata.FromModel(m.Metadata)
}

type GetHotelsResponse struct {
	Hotels    []HotelResponse `json:"hotels"`
	Total     int             `json:"total"`
	TotalPage int             `json:"total_page"`
}

func (g *GetHotelsResponse) FromModels(models []model.Hotel, total, limit int) {
	g.Hotels = make([]HotelResponse, 0, len(models))
	for _, m := range models {
		var res HotelResponse
		res.FromModel(m)
		g.Hotels = append(g.Hotels, res)
	}

	g.Total = total
	g.TotalPage = shared.CalculateTotalPage(total, limit)
}
