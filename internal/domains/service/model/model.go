package model

import (
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "services"
	EntityName = "service"

	FieldID          = "id"
	FieldGuestID     = "guest_id"
	FieldBookingID   = "booking_id"
	FieldType        = "type"
	FieldEmployee    = "employee"
	FieldStatus      = "status"
	FieldServiceTime = "service_time"
)

type Service struct {
	ID          string     `db:"id"`
	GuestID     *string    `db:"guest_id"`
	BookingID   *string    `db:"booking_id"`
	Type        string     `db:"type"`
	Employee    string     `db:"employee"`
	Status      string     `db:"status"`
	ServiceTime *time.Time `db:"service_time"`
	model.Metadata
}
