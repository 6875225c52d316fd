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
	adminMocks "lodge/internal/domains/admin/mocks"
	bookingMocks "lodge/internal/domains/booking/mocks"
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/service"
	guestMocks "lodge/internal/domains/guest/mocks"
	roomMocks "lodge/internal/domains/room/mocks"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

func stringPtr(s string) *string {
	return &s
}

func defaultQueryParams() gDto.QueryParams {
	return gDto.QueryParams{
		Page:    constant.DefaultValuePage,
		Limit:   10,
		SortBy:  constant.DefaultValueSortBy,
		SortDir: constant.DefaultValueSortDir,
	}
}

func newBookingService(t *testing.T) (
	service.Booking,
	*bookingMocks.MockBooking,
	*guestMocks.MockGuest,
	*roomMocks.MockRoom,
	*adminMocks.MockAdministrator,
	*cacheMocks.MockRedisCache,
) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockGuestRepo := guestMocks.NewMockGuest(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockAdminRepo := adminMocks.NewMockAdministrator(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockGuestRepo, mockRoomRepo, mockAdminRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockGuestRepo, mockRoomRepo, mockAdminRepo, mockCache
}

func TestBookingService_Create(t *testing.T) {
	svc, mockRepo, mockGuestRepo, mockRoomRepo, _, mockCache := newBookingService(t)

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation without references",
			req: dto.CreateBookingRequest{
				CheckInDate:  "2025-09-25",
				CheckOutDate: "2025-09-28",
				Status:       "confirmed",
				TotalPrice:   decimal.NewFromInt(150),
				GuestsCount:  1,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "successful creation with guest and room",
			req: dto.CreateBookingRequest{
				GuestID:      stringPtr("6f1d2e54-9f2a-4f19-b6d8-1f2a3b4c5d6e"),
				RoomID:       stringPtr("7a2e3f65-0a3b-5029-c7e9-2a3b4c5d6e7f"),
				CheckInDate:  "2025-09-25",
				CheckOutDate: "2025-09-28",
				TotalPrice:   decimal.NewFromInt(150),
			},
			setupMock: func() {
				mockGuestRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "unknown guest reference",
			req: dto.CreateBookingRequest{
				GuestID:      stringPtr("6f1d2e54-9f2a-4f19-b6d8-1f2a3b4c5d6e"),
				CheckInDate:  "2025-09-25",
				CheckOutDate: "2025-09-28",
				TotalPrice:   decimal.NewFromInt(150),
			},
			setupMock: func() {
				mockGuestRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "repository error",
			req: dto.CreateBookingRequest{
				CheckInDate:  "2025-09-25",
				CheckOutDate: "2025-09-28",
				TotalPrice:   decimal.NewFromInt(150),
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
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
				assert.Equal(t, "2025-09-25", res.CheckInDate)
				assert.Equal(t, "2025-09-28", res.CheckOutDate)
			}
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	svc, mockRepo, _, _, _, mockCache := newBookingService(t)

	booking := model.Booking{
		ID:           "test-id",
		CheckInDate:  timezone.Now(),
		CheckOutDate: timezone.Now(),
		Status:       "confirmed",
		TotalPrice:   decimal.NewFromInt(150),
		GuestsCount:  1,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "cache miss, found in db",
			id:   "test-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			id:   "nonexistent-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "repository error",
			id:   "test-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "test-id", res.ID)
			}
		})
	}
}

func TestBookingService_GetByGuest(t *testing.T) {
	svc, mockRepo, _, _, _, mockCache := newBookingService(t)

	guestID := "6f1d2e54-9f2a-4f19-b6d8-1f2a3b4c5d6e"

	booking := model.Booking{
		ID:           "test-id",
		GuestID:      &guestID,
		CheckInDate:  timezone.Now(),
		CheckOutDate: timezone.Now(),
		TotalPrice:   decimal.NewFromInt(150),
	}

	queryParams := defaultQueryParams()

	t.Run("guest has bookings", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{booking}, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.GetByGuest(context.Background(), guestID, queryParams)

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.Len(t, res.Bookings, 1)
	})

	t.Run("guest has no bookings", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{}, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		_, err := svc.GetByGuest(context.Background(), guestID, queryParams)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestBookingService_GetDetails(t *testing.T) {
	svc, mockRepo, _, _, _, mockCache := newBookingService(t)

	guest := "Ivan Ivanov"
	roomNumber := "101"

	details := []model.BookingDetail{
		{
			BookingID:  "test-id",
			Guest:      &guest,
			RoomNumber: &roomNumber,
			Status:     "confirmed",
			TotalPrice: decimal.NewFromInt(150),
		},
		{
			BookingID:  "orphan-id",
			Status:     "pending",
			TotalPrice: decimal.NewFromInt(90),
		},
	}

	t.Run("cache miss, fetched from db", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			GetDetails(gomock.Any()).
			Return(details, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.GetDetails(context.Background())

		assert.NoError(t, err)
		assert.Len(t, res.Details, 2)
		assert.Equal(t, "Ivan Ivanov", *res.Details[0].Guest)
		assert.Nil(t, res.Details[1].Guest)
		assert.Nil(t, res.Details[1].RoomNumber)
	})

	t.Run("repository error", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			GetDetails(gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.GetDetails(context.Background())

		assert.Error(t, err)
	})
}

func TestBookingService_Update(t *testing.T) {
	svc, mockRepo, _, _, _, mockCache := newBookingService(t)

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	mockCache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	booking := model.Booking{
		ID:           "test-id",
		CheckInDate:  timezone.Now(),
		CheckOutDate: timezone.Now(),
		Status:       "cancelled",
		TotalPrice:   decimal.NewFromInt(150),
	}

	tests := []struct {
		name      string
		req       dto.UpdateBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful update",
			req: dto.UpdateBookingRequest{
				Status: stringPtr("cancelled"),
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
			},
			wantErr: false,
		},
		{
			name:      "empty update request",
			req:       dto.UpdateBookingRequest{},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "booking not found",
			req: dto.UpdateBookingRequest{
				Status: stringPtr("cancelled"),
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Update(ctx, tt.req, "test-id")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "cancelled", res.Status)
			}
		})
	}
}

func TestBookingService_Delete(t *testing.T) {
	svc, mockRepo, _, _, _, mockCache := newBookingService(t)

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	mockCache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful delete",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "delete blocked by reference",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(failure.Conflict("delete booking: record is still referenced"))
			},
			wantErr:  true,
			wantCode: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), "test-id")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
