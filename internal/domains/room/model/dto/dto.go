package dto

import (
	"lodge/internal/domains/room/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateRoomRequest struct {
	Number        string          `json:"number"          validate:"required,max=10"`
	Type          string          `json:"type"            validate:"omitempty,max=50"`
	Description   string          `json:"description"     validate:"omitempty"`
	PricePerNight decimal.Decimal `json:"price_per_night" validate:"required"`
	MaxGuests     int             `json:"max_guests"      validate:"omitempty,gte=0"`
	IsActive      *bool           `json:"is_active"       validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	// Rooms are rentable unless the caller says otherwise.
	isActive := true
	if c.IsActive != nil {
		isActive = *c.IsActive
	}

	return model.Room{
		ID:            uuid.NewString(),
		Number:        c.Number,
		Type:          c.Type,
		Description:   c.Description,
		PricePerNight: c.PricePerNight,
		MaxGuests:     c.MaxGuests,
		IsActive:      isActive,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Number        *string          `db:"number"          json:"number"          validate:"omitempty,max=10"`
	Type          *string          `db:"type"            json:"type"            validate:"omitempty,max=50"`
	Description   *string          `db:"description"     json:"description"     validate:"omitempty"`
	PricePerNight *decimal.Decimal `db:"price_per_night" json:"price_per_night" validate:"omitempty"`
	MaxGuests     *int             `db:"max_guests"      json:"max_guests"      validate:"omitempty,gte=0"`
	IsActive      *bool            `db:"is_active"       json:"is_active"       validate:"omitempty"`
}

type RoomResponse struct {
	ID            string          `json:"id"`
	Number        string          `json:"number"`
	Type          string          `json:"type"`
	Description   string          `json:"description"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
	MaxGuests     int             `json:"max_guests"`
	IsActive      bool            `json:"is_active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.Type = model.Type
	r.Description = model.Description
	r.PricePerNight = model.PricePerNight
	r.MaxGuests = model.MaxGuests
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
