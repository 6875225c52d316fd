package dto

import (
	"lodge/internal/domains/admin/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateAdministratorRequest struct {
	Role         string `json:"role"          validate:"omitempty,max=50"`
	Username     string `json:"username"      validate:"required,max=50"`
	PasswordHash string `json:"password_hash" validate:"required"`
	FirstName    string `json:"first_name"    validate:"omitempty,max=100"`
	LastName     string `json:"last_name"     validate:"omitempty,max=100"`
}

func (c *CreateAdministratorRequest) ToModel(user string) model.Administrator {
	return model.Administrator{
		ID:           uuid.NewString(),
		Role:         c.Role,
		Username:     c.Username,
		PasswordHash: c.PasswordHash,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateAdministratorRequest struct {
	Role         *string `db:"role"          json:"role"          validate:"omitempty,max=50"`
	Username     *string `db:"username"      json:"username"      validate:"omitempty,max=50"`
	PasswordHash *string `db:"password_hash" json:"password_hash" validate:"omitempty"`
	FirstName    *string `db:"first_name"    json:"first_name"    validate:"omitempty,max=100"`
	LastName     *string `db:"last_name"     json:"last_name"     validate:"omitempty,max=100"`
}

// AdministratorResponse deliberately omits the password hash.
type AdministratorResponse struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	gDto.Metadata
}

func (r *AdministratorResponse) FromModel(model model.Administrator) {
	r.ID = model.ID
	r.Role = model.Role
	r.Username = model.Username
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Metadata.FromModel(model.Metadata)
}

type GetAdministratorsResponse struct {
	Administrators []AdministratorResponse `json:"administrators"`
	TotalPage      int                     `json:"total_page"`
	TotalData      int                     `json:"total_data"`
}

func (r *GetAdministratorsResponse) FromModels(models []model.Administrator, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Administrators = make([]AdministratorResponse, len(models))
	for i, mod := range models {
		r.Administrators[i].FromModel(mod)
	}
}
