package model

import (
	"lodge/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldNumber        = "number"
	FieldType          = "type"
	FieldDescription   = "description"
	FieldPricePerNight = "price_per_night"
	FieldMaxGuests     = "max_guests"
	FieldIsActive      = "is_active"
)

type Room struct {
	ID            string          `db:"id"`
	Number        string          `db:"number"`
	Type          string          `db:"type"`
	Description   string          `db:"description"`
	PricePerNight decimal.Decimal `db:"price_per_night"`
	MaxGuests     int             `db:"max_guests"`
	IsActive      bool            `db:"is_active"`
	model.Metadata
}
