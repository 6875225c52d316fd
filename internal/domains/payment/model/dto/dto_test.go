package dto_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"lodge/internal/domains/payment/model"
	"lodge/internal/domains/payment/model/dto"
)

func TestCreatePaymentRequest_WireNames(t *testing.T) {
	body := `{
		"booking_id": "6f1d2e54-9f2a-4f19-b6d8-1f2a3b4c5d6e",
		"amount": "150",
		"payment_method": "card",
		"status": "paid"
	}`

	var req dto.CreatePaymentRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.PaymentMethod != "card" {
		t.Errorf("expected payment_method to decode to 'card', got %q", req.PaymentMethod)
	}

	payment, err := req.ToModel("test-user")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if payment.PaymentMethod != "card" {
		t.Errorf("expected model payment method 'card', got %q", payment.PaymentMethod)
	}
}

func TestPaymentResponse_WireNames(t *testing.T) {
	res := dto.PaymentResponse{}
	res.FromModel(model.Payment{
		ID:            "payment-id",
		Amount:        decimal.NewFromInt(150),
		PaymentMethod: "card",
		Status:        "paid",
	})

	encoded, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(string(encoded), `"payment_method":"card"`) {
		t.Errorf("expected payment_method in response body, got %s", encoded)
	}

	if strings.Contains(string(encoded), `"method"`) {
		t.Errorf("expected no bare method field in response body, got %s", encoded)
	}
}
