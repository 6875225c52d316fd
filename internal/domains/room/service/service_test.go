package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	roomMocks "lodge/internal/domains/room/mocks"
	"lodge/internal/domains/room/model"
	"lodge/internal/domains/room/model/dto"
	"lodge/internal/domains/room/service"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

func boolPtr(b bool) *bool {
	return &b
}

func stringPtr(s string) *string {
	return &s
}

func newRoomService(t *testing.T) (service.Room, *roomMocks.MockRoom, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockCache
}

func TestRoomService_Create(t *testing.T) {
	svc, mockRepo, mockCache := newRoomService(t)

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	tests := []struct {
		name      string
		req       dto.CreateRoomRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation, active by default",
			req: dto.CreateRoomRequest{
				Number:        "101",
				Type:          "standard",
				PricePerNight: decimal.NewFromInt(50),
				MaxGuests:     2,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "duplicate room number",
			req: dto.CreateRoomRequest{
				Number:        "101",
				Type:          "standard",
				PricePerNight: decimal.NewFromInt(50),
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(failure.Conflict(`insert room: violates unique constraint "rooms_number_key"`))
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
				assert.True(t, res.IsActive)
			}
		})
	}
}

func TestRoomService_GetAll(t *testing.T) {
	svc, mockRepo, mockCache := newRoomService(t)

	room := model.Room{
		ID:            "test-id",
		Number:        "101",
		Type:          "standard",
		PricePerNight: decimal.NewFromInt(50),
		MaxGuests:     2,
		IsActive:      true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}

	queryParams := gDto.QueryParams{
		Page:    constant.DefaultValuePage,
		Limit:   10,
		SortBy:  constant.DefaultValueSortBy,
		SortDir: constant.DefaultValueSortDir,
	}

	t.Run("cache hit", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				res, _ := value.(*dto.GetRoomsResponse)
				res.TotalData = 1
				res.TotalPage = 1
				res.Rooms = []dto.RoomResponse{{ID: "cached-id"}}

				return nil
			})

		res, err := svc.GetAll(context.Background(), queryParams, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Equal(t, "cached-id", res.Rooms[0].ID)
	})

	t.Run("cache miss, fetched from db", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Room{room}, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.GetAll(context.Background(), queryParams, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.Len(t, res.Rooms, 1)
		assert.Equal(t, "101", res.Rooms[0].Number)
	})
}

func TestRoomService_Update(t *testing.T) {
	svc, mockRepo, mockCache := newRoomService(t)

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	mockCache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	room := model.Room{
		ID:            "test-id",
		Number:        "101",
		Type:          "standard",
		PricePerNight: decimal.NewFromInt(75),
		IsActive:      false,
	}

	t.Run("deactivate room", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, false, req[model.FieldIsActive])

				return nil
			})

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(room, nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		res, err := svc.Update(ctx, dto.UpdateRoomRequest{IsActive: boolPtr(false)}, "test-id")

		assert.NoError(t, err)
		assert.False(t, res.IsActive)
	})

	t.Run("empty update request", func(t *testing.T) {
		_, err := svc.Update(context.Background(), dto.UpdateRoomRequest{}, "test-id")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("room not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := svc.Update(context.Background(), dto.UpdateRoomRequest{IsActive: boolPtr(false)}, "missing-id")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestRoomService_Update_RefreshesBookingDetails(t *testing.T) {
	svc, mockRepo, mockCache := newRoomService(t)

	cleared := make(chan string, 16)

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, prefix string) error {
			cleared <- prefix

			return nil
		}).
		AnyTimes()
	mockCache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)

	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Room{ID: "test-id", Number: "102"}, nil)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
	_, err := svc.Update(ctx, dto.UpdateRoomRequest{Number: stringPtr("102")}, "test-id")

	assert.NoError(t, err)

	prefixes := map[string]bool{}

	assert.Eventually(t, func() bool {
		for {
			select {
			case prefix := <-cleared:
				prefixes[prefix] = true
			default:
				return prefixes["booking:details*"] && prefixes["booking:gets*"]
			}
		}
	}, time.Second, 10*time.Millisecond, "room renumber must refresh cached booking details")
}

func TestRoomService_Delete(t *testing.T) {
	svc, mockRepo, mockCache := newRoomService(t)

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	mockCache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	t.Run("successful delete", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Delete(context.Background(), "test-id")

		assert.NoError(t, err)
	})

	t.Run("delete blocked by booking reference", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(failure.Conflict("delete room: record is still referenced"))

		err := svc.Delete(context.Background(), "test-id")

		assert.Error(t, err)
		assert.True(t, failure.IsConflict(err))
	})
}
