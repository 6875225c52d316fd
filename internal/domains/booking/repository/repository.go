package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/booking/model"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/logger"
	gRepo "lodge/shared/repository"
)

// detailsQuery resolves guest names and room numbers in a single pass
// instead of one lookup per booking row.
const detailsQuery = `
SELECT bookings.id AS booking_id,
       CASE
           WHEN guests.id IS NULL THEN NULL
           ELSE TRIM(guests.first_name || ' ' || guests.last_name)
       END AS guest,
       rooms.number AS room_number,
       bookings.status,
       bookings.total_price
FROM bookings
LEFT JOIN guests ON guests.id = bookings.guest_id
LEFT JOIN rooms ON rooms.id = bookings.room_id
ORDER BY bookings.created_at DESC`

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	GetDetails(ctx context.Context) ([]model.BookingDetail, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetDetails(ctx context.Context) ([]model.BookingDetail, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetDetails")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, detailsQuery)

	var details []model.BookingDetail

	err := repo.db.Read.SelectContext(ctx, &details, detailsQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return details, fmt.Errorf("failed to get booking details: %w", err)
	}

	return details, nil
}
