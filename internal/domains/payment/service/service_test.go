package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	bookingMocks "lodge/internal/domains/booking/mocks"
	paymentMocks "lodge/internal/domains/payment/mocks"
	"lodge/internal/domains/payment/model"
	"lodge/internal/domains/payment/model/dto"
	"lodge/internal/domains/payment/service"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
)

func stringPtr(s string) *string {
	return &s
}

func newPaymentService(t *testing.T) (
	service.Payment,
	*paymentMocks.MockPayment,
	*bookingMocks.MockBooking,
	*cacheMocks.MockRedisCache,
) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := paymentMocks.NewMockPayment(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockBookingRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockBookingRepo, mockCache
}

func TestPaymentService_Create(t *testing.T) {
	svc, mockRepo, mockBookingRepo, mockCache := newPaymentService(t)

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	tests := []struct {
		name      string
		req       dto.CreatePaymentRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation with booking",
			req: dto.CreatePaymentRequest{
				BookingID:     stringPtr("6f1d2e54-9f2a-4f19-b6d8-1f2a3b4c5d6e"),
				Amount:        decimal.NewFromInt(150),
				PaymentMethod: "card",
				Status:        "paid",
				TransactionID: stringPtr("tx-0001"),
				PaidAt:        stringPtr("2025-09-25T12:00:00Z"),
			},
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "unknown booking reference",
			req: dto.CreatePaymentRequest{
				BookingID: stringPtr("6f1d2e54-9f2a-4f19-b6d8-1f2a3b4c5d6e"),
				Amount:    decimal.NewFromInt(150),
			},
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "duplicate transaction id",
			req: dto.CreatePaymentRequest{
				Amount:        decimal.NewFromInt(150),
				TransactionID: stringPtr("tx-0001"),
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(failure.Conflict(`insert payment: violates unique constraint "payments_transaction_id_key"`))
			},
			wantErr:  true,
			wantCode: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, res.ID)
				assert.Equal(t, "card", res.PaymentMethod)
				assert.NotNil(t, res.PaidAt)
			}
		})
	}
}

func TestPaymentService_GetByBooking(t *testing.T) {
	svc, mockRepo, _, mockCache := newPaymentService(t)

	bookingID := "6f1d2e54-9f2a-4f19-b6d8-1f2a3b4c5d6e"

	payment := model.Payment{
		ID:            "test-id",
		BookingID:     &bookingID,
		Amount:        decimal.NewFromInt(150),
		PaymentMethod: "card",
		Status:        "paid",
	}

	queryParams := gDto.QueryParams{
		Page:    constant.DefaultValuePage,
		Limit:   10,
		SortBy:  constant.DefaultValueSortBy,
		SortDir: constant.DefaultValueSortDir,
	}

	t.Run("booking has payments", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Payment{payment}, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.GetByBooking(context.Background(), bookingID, queryParams)

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.Len(t, res.Payments, 1)
	})

	t.Run("booking has no payments", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Payment{}, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		_, err := svc.GetByBooking(context.Background(), bookingID, queryParams)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestPaymentService_Update(t *testing.T) {
	svc, mockRepo, _, mockCache := newPaymentService(t)

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	mockCache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	payment := model.Payment{
		ID:     "test-id",
		Amount: decimal.NewFromInt(150),
		Status: "refunded",
	}

	t.Run("successful update", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(payment, nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		res, err := svc.Update(ctx, dto.UpdatePaymentRequest{Status: stringPtr("refunded")}, "test-id")

		assert.NoError(t, err)
		assert.Equal(t, "refunded", res.Status)
	})

	t.Run("empty update request", func(t *testing.T) {
		_, err := svc.Update(context.Background(), dto.UpdatePaymentRequest{}, "test-id")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("payment not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := svc.Update(context.Background(), dto.UpdatePaymentRequest{Status: stringPtr("refunded")}, "missing-id")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
