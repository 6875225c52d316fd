package dto

import (
	"time"

	"lodge/internal/domains/payment/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreatePaymentRequest struct {
	BookingID     *string         `json:"booking_id"     validate:"omitempty,uuid"`
	Amount        decimal.Decimal `json:"amount"         validate:"required"`
	PaymentMethod string          `json:"payment_method" validate:"omitempty,max=50"`
	Status        string          `json:"status"         validate:"omitempty,max=50"`
	TransactionID *string         `json:"transaction_id" validate:"omitempty,max=100"`
	PaidAt        *string         `json:"paid_at"        validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

func (c *CreatePaymentRequest) ToModel(user string) (model.Payment, error) {
	var paidAt *time.Time

	if c.PaidAt != nil {
		parsed, err := timezone.Parse(constant.DateFormat, *c.PaidAt)
		if err != nil {
			return model.Payment{}, err
		}

		paidAt = &parsed
	}

	return model.Payment{
		ID:            uuid.NewString(),
		BookingID:     c.BookingID,
		Amount:        c.Amount,
		PaymentMethod: c.PaymentMethod,
		Status:        c.Status,
		TransactionID: c.TransactionID,
		PaidAt:        paidAt,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdatePaymentRequest struct {
	BookingID     *string          `db:"booking_id"     json:"booking_id"     validate:"omitempty,uuid"`
	Amount        *decimal.Decimal `db:"amount"         json:"amount"         validate:"omitempty"`
	PaymentMethod *string          `db:"payment_method" json:"payment_method" validate:"omitempty,max=50"`
	Status        *string          `db:"status"         json:"status"         validate:"omitempty,max=50"`
	TransactionID *string          `db:"transaction_id" json:"transaction_id" validate:"omitempty,max=100"`
	PaidAt        *string          `db:"paid_at"        json:"paid_at"        validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

type PaymentResponse struct {
	ID            string          `json:"id"`
	BookingID     *string         `json:"booking_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	Status        string          `json:"status"`
	TransactionID *string         `json:"transaction_id"`
	PaidAt        *string         `json:"paid_at"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.Amount = model.Amount
	r.PaymentMethod = model.PaymentMethod
	r.Status = model.Status
	r.TransactionID = model.TransactionID

	if model.PaidAt != nil {
		paidAt := timezone.Format(*model.PaidAt, constant.DateFormat)
		r.PaidAt = &paidAt
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}
