package model

import "lodge/shared/model"

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID           = "id"
	FieldFirstName    = "first_name"
	FieldLastName     = "last_name"
	FieldEmail        = "email"
	FieldPhoneNumber  = "phone_number"
	FieldPassportData = "passport_data"
)

type Guest struct {
	ID           string `db:"id"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	Email        string `db:"email"`
	PhoneNumber  string `db:"phone_number"`
	PassportData string `db:"passport_data"`
	model.Metadata
}
