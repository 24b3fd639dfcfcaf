package model

import (
	"stayhub/shared/model"
)

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID       = "id"
	FieldName     = "name"
	FieldAddress  = "address"
	FieldCity     = "city"
	FieldCountry  = "country"
	FieldPhone    = "phone"
	FieldEmail    = "email"
	FieldIsActive = "is_active"
)

type Hotel struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Address     string `db:"address"`
	City        string `db:"city"`
	Country     string `db:"country"`
	Phone       string `db:"phone"`
	Email       string `db:"email"`
	IsActive    bool   `db:"is_active"`
	model.Metadata
}
