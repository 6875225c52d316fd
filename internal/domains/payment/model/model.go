package model

import (
	"time"

	"lodge/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID            = "id"
	FieldBookingID     = "booking_id"
	FieldAmount        = "amount"
	FieldPaymentMethod = "payment_method"
	FieldStatus        = "status"
	FieldTransactionID = "transaction_id"
	FieldPaidAt        = "paid_at"
)

type Payment struct {
	ID            string          `db:"id"`
	BookingID     *string         `db:"booking_id"`
	Amount        decimal.Decimal `db:"amount"`
	PaymentMethod string          `db:"payment_method"`
	Status        string          `db:"status"`
	TransactionID *string         `db:"transaction_id"`
	PaidAt        *time.Time      `db:"paid_at"`
	model.Metadata
}
