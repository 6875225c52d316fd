package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	guestMocks "lodge/internal/domains/guest/mocks"
	"lodge/internal/domains/guest/model"
	"lodge/internal/domains/guest/model/dto"
	"lodge/internal/domains/guest/service"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/constant"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

func stringPtr(s string) *string {
	return &s
}

func newGuestService(t *testing.T) (service.Guest, *guestMocks.MockGuest, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockCache
}

func TestGuestService_Create(t *testing.T) {
	svc, mockRepo, mockCache := newGuestService(t)

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	t.Run("successful creation", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, guest model.Guest) error {
				assert.NotEmpty(t, guest.ID)
				assert.Equal(t, "test-user-id", guest.Metadata.CreatedBy)

				return nil
			})

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		res, err := svc.Create(ctx, dto.CreateGuestRequest{
			FirstName: "Ivan",
			LastName:  "Petrov",
			Email:     "ivan@example.com",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, "Ivan", res.FirstName)
	})

	t.Run("insert failure surfaces", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("db down"))

		_, err := svc.Create(context.Background(), dto.CreateGuestRequest{FirstName: "Ivan"})

		assert.Error(t, err)
	})
}

func TestGuestService_Get(t *testing.T) {
	svc, mockRepo, mockCache := newGuestService(t)

	guest := model.Guest{
		ID:        "test-id",
		FirstName: "Ivan",
		LastName:  "Petrov",
		Email:     "ivan@example.com",
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}

	t.Run("found in database", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(guest, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Get(context.Background(), "test-id")

		assert.NoError(t, err)
		assert.Equal(t, "Ivan", res.FirstName)
	})

	t.Run("not found", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Guest{}, nil)

		_, err := svc.Get(context.Background(), "missing-id")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestGuestService_Update(t *testing.T) {
	svc, mockRepo, mockCache := newGuestService(t)

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	mockCache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	t.Run("successful update", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req map[string]any, _ any) error {
				assert.Equal(t, "new@example.com", req[model.FieldEmail])

				return nil
			})

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Guest{ID: "test-id", Email: "new@example.com"}, nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		res, err := svc.Update(ctx, dto.UpdateGuestRequest{Email: stringPtr("new@example.com")}, "test-id")

		assert.NoError(t, err)
		assert.Equal(t, "new@example.com", res.Email)
	})

	t.Run("empty update request", func(t *testing.T) {
		_, err := svc.Update(context.Background(), dto.UpdateGuestRequest{}, "test-id")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("guest not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := svc.Update(context.Background(), dto.UpdateGuestRequest{Email: stringPtr("new@example.com")}, "missing-id")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestGuestService_Update_RefreshesBookingDetails(t *testing.T) {
	svc, mockRepo, mockCache := newGuestService(t)

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
		Return(model.Guest{ID: "test-id", FirstName: "Renamed"}, nil)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
	_, err := svc.Update(ctx, dto.UpdateGuestRequest{FirstName: stringPtr("Renamed")}, "test-id")

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
	}, time.Second, 10*time.Millisecond, "guest rename must refresh cached booking details")
}

func TestGuestService_Delete(t *testing.T) {
	svc, mockRepo, mockCache := newGuestService(t)

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

		assert.NoError(t, svc.Delete(context.Background(), "test-id"))
	})

	t.Run("delete blocked by booking reference", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(failure.Conflict("guest is still referenced"))

		err := svc.Delete(context.Background(), "test-id")

		assert.Error(t, err)
		assert.True(t, failure.IsConflict(err))
	})
}
