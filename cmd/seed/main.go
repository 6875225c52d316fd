package main

import (
	"context"
	"time"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	adminModel "lodge/internal/domains/admin/model"
	adminRepository "lodge/internal/domains/admin/repository"
	bookingModel "lodge/internal/domains/booking/model"
	bookingRepository "lodge/internal/domains/booking/repository"
	guestModel "lodge/internal/domains/guest/model"
	guestRepository "lodge/internal/domains/guest/repository"
	paymentModel "lodge/internal/domains/payment/model"
	paymentRepository "lodge/internal/domains/payment/repository"
	roomModel "lodge/internal/domains/room/model"
	roomRepository "lodge/internal/domains/room/repository"
	svcModel "lodge/internal/domains/service/model"
	svcRepository "lodge/internal/domains/service/repository"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	gDto "lodge/shared/dto"
	"lodge/shared/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const seedUser = "seed"

// Seeds a development database with one record per entity. Running it
// twice is safe; existing rows are detected by their natural keys.
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	ctx := context.Background()

	db := postgres.New(cfg)
	otl := otel.New(cfg)

	adminRepo := adminRepository.New(db, otl)
	guestRepo := guestRepository.New(db, otl)
	roomRepo := roomRepository.New(db, otl)
	bookingRepo := bookingRepository.New(db, otl)
	paymentRepo := paymentRepository.New(db, otl)
	serviceRepo := svcRepository.New(db, otl)

	metadata := gModel.Metadata{
		CreatedAt:  timezone.Now(),
		ModifiedAt: timezone.Now(),
		CreatedBy:  seedUser,
		ModifiedBy: seedUser,
	}

	admin := adminModel.Administrator{
		ID:           uuid.NewString(),
		Role:         "manager",
		Username:     "admin",
		PasswordHash: "$2b$12$seeded-placeholder-hash",
		FirstName:    "Admin",
		LastName:     "Adminov",
		Metadata:     metadata,
	}

	exists, err := adminRepo.Exist(ctx, filterBy(adminModel.FieldUsername, admin.Username, adminModel.TableName))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to check administrator")
	}

	if !exists {
		if err := adminRepo.Insert(ctx, admin); err != nil {
			log.Fatal().Err(err).Msg("failed to seed administrator")
		}

		log.Info().Str("username", admin.Username).Msg("seeded administrator")
	}

	guest := guestModel.Guest{
		ID:           uuid.NewString(),
		FirstName:    "Ivan",
		LastName:     "Ivanov",
		Email:        "ivan@example.com",
		PhoneNumber:  "+70000000000",
		PassportData: "1234 567890",
		Metadata:     metadata,
	}

	exists, err = guestRepo.Exist(ctx, filterBy(guestModel.FieldEmail, guest.Email, guestModel.TableName))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to check guest")
	}

	if exists {
		stored, err := guestRepo.Get(ctx, filterBy(guestModel.FieldEmail, guest.Email, guestModel.TableName))
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load guest")
		}

		guest = stored
	} else {
		if err := guestRepo.Insert(ctx, guest); err != nil {
			log.Fatal().Err(err).Msg("failed to seed guest")
		}

		log.Info().Str("email", guest.Email).Msg("seeded guest")
	}

	room := roomModel.Room{
		ID:            uuid.NewString(),
		Number:        "101",
		Type:          "standard",
		Description:   "Standard room with one double bed",
		PricePerNight: decimal.NewFromInt(50),
		MaxGuests:     2,
		IsActive:      true,
		Metadata:      metadata,
	}

	exists, err = roomRepo.Exist(ctx, filterBy(roomModel.FieldNumber, room.Number, roomModel.TableName))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to check room")
	}

	if exists {
		stored, err := roomRepo.Get(ctx, filterBy(roomModel.FieldNumber, room.Number, roomModel.TableName))
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load room")
		}

		room = stored
	} else {
		if err := roomRepo.Insert(ctx, room); err != nil {
			log.Fatal().Err(err).Msg("failed to seed room")
		}

		log.Info().Str("number", room.Number).Msg("seeded room")
	}

	checkIn, _ := timezone.Parse("2006-01-02", "2025-09-25")
	checkOut, _ := timezone.Parse("2006-01-02", "2025-09-28")

	booking := bookingModel.Booking{
		ID:           uuid.NewString(),
		GuestID:      &guest.ID,
		RoomID:       &room.ID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Status:       "confirmed",
		TotalPrice:   decimal.NewFromInt(150),
		GuestsCount:  1,
		Metadata:     metadata,
	}

	exists, err = bookingRepo.Exist(ctx, filterBy(bookingModel.FieldGuestID, guest.ID, bookingModel.TableName))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to check booking")
	}

	if exists {
		stored, err := bookingRepo.Get(ctx, filterBy(bookingModel.FieldGuestID, guest.ID, bookingModel.TableName))
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load booking")
		}

		booking = stored
	} else {
		if err := bookingRepo.Insert(ctx, booking); err != nil {
			log.Fatal().Err(err).Msg("failed to seed booking")
		}

		log.Info().Str("status", booking.Status).Msg("seeded booking")
	}

	paidAt := timezone.Now()
	transactionID := "tx-0001"

	payment := paymentModel.Payment{
		ID:            uuid.NewString(),
		BookingID:     &booking.ID,
		Amount:        decimal.NewFromInt(150),
		PaymentMethod: "card",
		Status:        "paid",
		TransactionID: &transactionID,
		PaidAt:        &paidAt,
		Metadata:      metadata,
	}

	exists, err = paymentRepo.Exist(ctx, filterBy(paymentModel.FieldTransactionID, transactionID, paymentModel.TableName))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to check payment")
	}

	if !exists {
		if err := paymentRepo.Insert(ctx, payment); err != nil {
			log.Fatal().Err(err).Msg("failed to seed payment")
		}

		log.Info().Str("transaction_id", transactionID).Msg("seeded payment")
	}

	serviceTime := timezone.Now().Add(24 * time.Hour)

	service := svcModel.Service{
		ID:          uuid.NewString(),
		GuestID:     &guest.ID,
		BookingID:   &booking.ID,
		Type:        "spa",
		Employee:    "Olga",
		Status:      "scheduled",
		ServiceTime: &serviceTime,
		Metadata:    metadata,
	}

	exists, err = serviceRepo.Exist(ctx, filterBy(svcModel.FieldGuestID, guest.ID, svcModel.TableName))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to check service")
	}

	if !exists {
		if err := serviceRepo.Insert(ctx, service); err != nil {
			log.Fatal().Err(err).Msg("failed to seed service")
		}

		log.Info().Str("type", service.Type).Msg("seeded service")
	}

	log.Info().Msg("seeding completed")
}

func filterBy(field, value, table string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Value:    value,
				Operator: gDto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
