package dto

import (
	"lodge/internal/domains/guest/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateGuestRequest struct {
	FirstName    string `json:"first_name"    validate:"omitempty,max=100"`
	LastName     string `json:"last_name"     validate:"omitempty,max=100"`
	Email        string `json:"email"         validate:"omitempty,email,max=100"`
	PhoneNumber  string `json:"phone_number"  validate:"omitempty,max=20"`
	PassportData string `json:"passport_data" validate:"omitempty,max=255"`
}

func (c *CreateGuestRequest) ToModel(user string) model.Guest {
	return model.Guest{
		ID:           uuid.NewString(),
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Email:        c.Email,
		PhoneNumber:  c.PhoneNumber,
		PassportData: c.PassportData,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateGuestRequest struct {
	FirstName    *string `db:"first_name"    json:"first_name"    validate:"omitempty,max=100"`
	LastName     *string `db:"last_name"     json:"last_name"     validate:"omitempty,max=100"`
	Email        *string `db:"email"         json:"email"         validate:"omitempty,email,max=100"`
	PhoneNumber  *string `db:"phone_number"  json:"phone_number"  validate:"omitempty,max=20"`
	PassportData *string `db:"passport_data" json:"passport_data" validate:"omitempty,max=255"`
}

type GuestResponse struct {
	ID           string `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phone_number"`
	PassportData string `json:"passport_data"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Email = model.Email
	r.PhoneNumber = model.PhoneNumber
	r.PassportData = model.PassportData
	r.Metadata.FromModel(model.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}
