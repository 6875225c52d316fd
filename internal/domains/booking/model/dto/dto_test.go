package dto_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/shared/constant"
	"lodge/shared/timezone"
)

func stringPtr(s string) *string {
	return &s
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	t.Run("valid dates", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			GuestID:      stringPtr("guest-id"),
			CheckInDate:  "2025-09-25",
			CheckOutDate: "2025-09-28",
			Status:       "confirmed",
			TotalPrice:   decimal.NewFromInt(150),
			GuestsCount:  2,
		}

		booking, err := req.ToModel("test-user")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if booking.ID == "" {
			t.Error("expected a generated id")
		}

		if booking.CheckInDate.Format(constant.DateOnlyFormat) != "2025-09-25" {
			t.Errorf("unexpected check-in date %v", booking.CheckInDate)
		}

		if booking.CheckOutDate.Format(constant.DateOnlyFormat) != "2025-09-28" {
			t.Errorf("unexpected check-out date %v", booking.CheckOutDate)
		}

		if booking.Metadata.CreatedBy != "test-user" || booking.Metadata.ModifiedBy != "test-user" {
			t.Errorf("unexpected audit fields %+v", booking.Metadata)
		}
	})

	t.Run("omitted guests count stays zero", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			CheckInDate:  "2025-09-25",
			CheckOutDate: "2025-09-28",
			TotalPrice:   decimal.NewFromInt(150),
		}

		booking, err := req.ToModel("test-user")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if booking.GuestsCount != 0 {
			t.Errorf("expected guests count 0, got %d", booking.GuestsCount)
		}
	})

	t.Run("malformed check-in date", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			CheckInDate:  "25-09-2025",
			CheckOutDate: "2025-09-28",
			TotalPrice:   decimal.NewFromInt(150),
		}

		if _, err := req.ToModel("test-user"); err == nil {
			t.Error("expected a parse error")
		}
	})
}

func TestBookingResponse_FromModel(t *testing.T) {
	checkIn, _ := timezone.Parse(constant.DateOnlyFormat, "2025-09-25")
	checkOut, _ := timezone.Parse(constant.DateOnlyFormat, "2025-09-28")

	booking := model.Booking{
		ID:           "booking-id",
		GuestID:      stringPtr("guest-id"),
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Status:       "confirmed",
		TotalPrice:   decimal.NewFromInt(150),
		GuestsCount:  2,
	}

	res := dto.BookingResponse{}
	res.FromModel(booking)

	if res.CheckInDate != "2025-09-25" || res.CheckOutDate != "2025-09-28" {
		t.Errorf("expected date-only formatting, got %s and %s", res.CheckInDate, res.CheckOutDate)
	}

	if res.GuestID == nil || *res.GuestID != "guest-id" {
		t.Errorf("unexpected guest id %v", res.GuestID)
	}

	if !res.TotalPrice.Equal(decimal.NewFromInt(150)) {
		t.Errorf("unexpected total price %s", res.TotalPrice)
	}
}
