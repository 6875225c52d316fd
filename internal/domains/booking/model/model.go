package model

import (
	"time"

	"lodge/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldGuestID      = "guest_id"
	FieldRoomID       = "room_id"
	FieldAdminID      = "admin_id"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldStatus       = "status"
	FieldTotalPrice   = "total_price"
	FieldGuestsCount  = "guests_count"
)

// Booking references are nullable on purpose: the stored model allows a
// reservation without a guest, room or administrator attached yet.
type Booking struct {
	ID           string          `db:"id"`
	GuestID      *string         `db:"guest_id"`
	RoomID       *string         `db:"room_id"`
	AdminID      *string         `db:"admin_id"`
	CheckInDate  time.Time       `db:"check_in_date"`
	CheckOutDate time.Time       `db:"check_out_date"`
	Status       string          `db:"status"`
	TotalPrice   decimal.Decimal `db:"total_price"`
	GuestsCount  int             `db:"guests_count"`
	model.Metadata
}

// BookingDetail is the denormalized projection served by the details
// listing. Guest and RoomNumber are nil when the booking has no guest or
// room reference.
type BookingDetail struct {
	BookingID  string          `db:"booking_id"`
	Guest      *string         `db:"guest"`
	RoomNumber *string         `db:"room_number"`
	Status     string          `db:"status"`
	TotalPrice decimal.Decimal `db:"total_price"`
}
