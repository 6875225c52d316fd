package dto

import (
	"lodge/internal/domains/booking/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateBookingRequest struct {
	GuestID      *string         `json:"guest_id"       validate:"omitempty,uuid"`
	RoomID       *string         `json:"room_id"        validate:"omitempty,uuid"`
	AdminID      *string         `json:"admin_id"       validate:"omitempty,uuid"`
	CheckInDate  string          `json:"check_in_date"  validate:"required,datetime=2006-01-02"`
	CheckOutDate string          `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	Status       string          `json:"status"         validate:"omitempty,max=50"`
	TotalPrice   decimal.Decimal `json:"total_price"    validate:"required"`
	GuestsCount  int             `json:"guests_count"   validate:"omitempty,gte=0"`
}

func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	checkIn, err := timezone.Parse(constant.DateOnlyFormat, c.CheckInDate)
	if err != nil {
		return model.Booking{}, err
	}

	checkOut, err := timezone.Parse(constant.DateOnlyFormat, c.CheckOutDate)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		ID:           uuid.NewString(),
		GuestID:      c.GuestID,
		RoomID:       c.RoomID,
		AdminID:      c.AdminID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Status:       c.Status,
		TotalPrice:   c.TotalPrice,
		GuestsCount:  c.GuestsCount,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateBookingRequest struct {
	GuestID      *string          `db:"guest_id"       json:"guest_id"       validate:"omitempty,uuid"`
	RoomID       *string          `db:"room_id"        json:"room_id"        validate:"omitempty,uuid"`
	AdminID      *string          `db:"admin_id"       json:"admin_id"       validate:"omitempty,uuid"`
	CheckInDate  *string          `db:"check_in_date"  json:"check_in_date"  validate:"omitempty,datetime=2006-01-02"`
	CheckOutDate *string          `db:"check_out_date" json:"check_out_date" validate:"omitempty,datetime=2006-01-02"`
	Status       *string          `db:"status"         json:"status"         validate:"omitempty,max=50"`
	TotalPrice   *decimal.Decimal `db:"total_price"    json:"total_price"    validate:"omitempty"`
	GuestsCount  *int             `db:"guests_count"   json:"guests_count"   validate:"omitempty,gte=0"`
}

type BookingResponse struct {
	ID           string          `json:"id"`
	GuestID      *string         `json:"guest_id"`
	RoomID       *string         `json:"room_id"`
	AdminID      *string         `json:"admin_id"`
	CheckInDate  string          `json:"check_in_date"`
	CheckOutDate string          `json:"check_out_date"`
	Status       string          `json:"status"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	GuestsCount  int             `json:"guests_count"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.GuestID = model.GuestID
	r.RoomID = model.RoomID
	r.AdminID = model.AdminID
	r.CheckInDate = model.CheckInDate.Format(constant.DateOnlyFormat)
	r.CheckOutDate = model.CheckOutDate.Format(constant.DateOnlyFormat)
	r.Status = model.Status
	r.TotalPrice = model.TotalPrice
	r.GuestsCount = model.GuestsCount
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type BookingDetailResponse struct {
	BookingID  string          `json:"booking_id"`
	Guest      *string         `json:"guest"`
	RoomNumber *string         `json:"room_number"`
	Status     string          `json:"status"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

func (r *BookingDetailResponse) FromModel(model model.BookingDetail) {
	r.BookingID = model.BookingID
	r.Guest = model.Guest
	r.RoomNumber = model.RoomNumber
	r.Status = model.Status
	r.TotalPrice = model.TotalPrice
}

type GetBookingDetailsResponse struct {
	Details []BookingDetailResponse `json:"details"`
}

func (r *GetBookingDetailsResponse) FromModels(models []model.BookingDetail) {
	r.Details = make([]BookingDetailResponse, len(models))
	for i, mod := range models {
		r.Details[i].FromModel(mod)
	}
}
