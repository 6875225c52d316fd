package dto

import (
	"time"

	"lodge/internal/domains/service/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateServiceRequest struct {
	GuestID     *string `json:"guest_id"     validate:"omitempty,uuid"`
	BookingID   *string `json:"booking_id"   validate:"omitempty,uuid"`
	Type        string  `json:"type"         validate:"required,max=100"`
	Employee    string  `json:"employee"     validate:"omitempty,max=100"`
	Status      string  `json:"status"       validate:"omitempty,max=50"`
	ServiceTime *string `json:"service_time" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

func (c *CreateServiceRequest) ToModel(user string) (model.Service, error) {
	var serviceTime *time.Time

	if c.ServiceTime != nil {
		parsed, err := timezone.Parse(constant.DateFormat, *c.ServiceTime)
		if err != nil {
			return model.Service{}, err
		}

		serviceTime = &parsed
	}

	return model.Service{
		ID:          uuid.NewString(),
		GuestID:     c.GuestID,
		BookingID:   c.BookingID,
		Type:        c.Type,
		Employee:    c.Employee,
		Status:      c.Status,
		ServiceTime: serviceTime,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateServiceRequest struct {
	GuestID     *string `db:"guest_id"     json:"guest_id"     validate:"omitempty,uuid"`
	BookingID   *string `db:"booking_id"   json:"booking_id"   validate:"omitempty,uuid"`
	Type        *string `db:"type"         json:"type"         validate:"omitempty,max=100"`
	Employee    *string `db:"employee"     json:"employee"     validate:"omitempty,max=100"`
	Status      *string `db:"status"       json:"status"       validate:"omitempty,max=50"`
	ServiceTime *string `db:"service_time" json:"service_time" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

type ServiceResponse struct {
	ID          string  `json:"id"`
	GuestID     *string `json:"guest_id"`
	BookingID   *string `json:"booking_id"`
	Type        string  `json:"type"`
	Employee    string  `json:"employee"`
	Status      string  `json:"status"`
	ServiceTime *string `json:"service_time"`
	gDto.Metadata
}

func (r *ServiceResponse) FromModel(model model.Service) {
	r.ID = model.ID
	r.GuestID = model.GuestID
	r.BookingID = model.BookingID
	r.Type = model.Type
	r.Employee = model.Employee
	r.Status = model.Status

	if model.ServiceTime != nil {
		serviceTime := timezone.Format(*model.ServiceTime, constant.DateFormat)
		r.ServiceTime = &serviceTime
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetServicesResponse struct {
	Services  []ServiceResponse `json:"services"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetServicesResponse) FromModels(models []model.Service, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Services = make([]ServiceResponse, len(models))
	for i, mod := range models {
		r.Services[i].FromModel(mod)
	}
}
