package model

import "lodge/shared/model"

const (
	TableName  = "administrators"
	EntityName = "administrator"

	FieldID        = "id"
	FieldRole      = "role"
	FieldUsername  = "username"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
)

// Administrator stores the password hash opaquely, exactly as supplied
// by the caller. Credential verification is not this service's concern.
type Administrator struct {
	ID           string `db:"id"`
	Role         string `db:"role"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	model.Metadata
}
