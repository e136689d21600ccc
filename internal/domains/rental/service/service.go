package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Rental=MockRentalService

import (
	"context"
	"fmt"

	"ehotels/infras/otel"
	bookingModel "ehotels/internal/domains/booking/model"
	bookingRepo "ehotels/internal/domains/booking/repository"
	customerModel "ehotels/internal/domains/customer/model"
	customerRepo "ehotels/internal/domains/customer/repository"
	"ehotels/internal/domains/rental/event"
	"ehotels/internal/domains/rental/model"
	"ehotels/internal/domains/rental/model/dto"
	"ehotels/internal/domains/rental/repository"
	"ehotels/shared"
	"ehotels/shared/constant"
	gDto "ehotels/shared/dto"
	"ehotels/shared/failure"
	gModel "ehotels/shared/model"
	"ehotels/shared/session"
	"ehotels/shared/timezone"
	"ehotels/shared/transaction"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	msgBookingNotFound      = "booking not found"
	msgBookingNotConfirmed  = "booking is not confirmed and cannot be converted"
	msgBookingConverted     = "booking has already been converted to a rental"
	msgCustomerNotFound     = "customer not found"
	msgCustomerAmbiguous    = "customer name is ambiguous, provide customer_id"
	msgCustomerMismatch     = "customer_name does not match customer_id"
	msgCheckOutBeforeIn     = "checkout must not be before checkin"
	msgRentalUnknownRelated = "rental references an unknown hotel, room or employee"
)

// customerMatchLimit is enough to tell a unique name from an ambiguous one.
const customerMatchLimit = 2

type Rental interface {
	ConvertBooking(ctx context.Context, req dto.ConvertBookingRequest) error
	RentForm(ctx context.Context) dto.RentFormResponse
	WalkIn(ctx context.Context, req dto.WalkInRequest) (dto.WalkInResponse, error)
}

type serviceImpl struct {
	repo         repository.Rental
	bookingRepo  bookingRepo.Booking
	customerRepo customerRepo.Customer
	transactor   transaction.Transactor
	publisher    event.Publisher
	otel         otel.Otel
}

func New(
	repo repository.Rental,
	bookingRepo bookingRepo.Booking,
	customerRepo customerRepo.Customer,
	transactor transaction.Transactor,
	publisher event.Publisher,
	otel otel.Otel,
) Rental {
	return &serviceImpl{
		repo:         repo,
		bookingRepo:  bookingRepo,
		customerRepo: customerRepo,
		transactor:   transactor,
		publisher:    publisher,
		otel:         otel,
	}
}

// ConvertBooking cancels a confirmed booking and opens the matching ongoing
// rental. Both statements share one transaction with the booking row locked,
// so a booking is converted at most once.
func (s *serviceImpl) ConvertBooking(ctx context.Context, req dto.ConvertBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConvertBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	sess, _ := session.FromContext(ctx)
	actor := sess.Actor()
	filter := shared.FilterByID(req.BookingID, bookingModel.FieldID, bookingModel.TableName)

	var (
		rental   model.Rental
		rentalID int64
	)

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		booking, err := s.bookingRepo.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			return err
		}

		if booking.ID == 0 {
			return failure.NotFound(msgBookingNotFound) // nolint:wrapcheck
		}

		if !booking.IsConfirmed() {
			return failure.Conflict(msgBookingNotConfirmed) // nolint:wrapcheck
		}

		now := timezone.Now()

		if _, err = s.bookingRepo.UpdateTx(ctx, tx, map[string]any{
			bookingModel.FieldStatus:  constant.BookingStatusCancelled,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: actor,
		}, filter); err != nil {
			return err
		}

		rental = model.FromBooking(booking, sess.UserID, timezone.StartOfDay(now), gModel.NewMetadata(actor, now))

		rentalID, err = s.repo.InsertReturningIDTx(ctx, tx, rental)

		return err
	})
	if err != nil {
		log.Error().Err(err).Int64("booking_id", req.BookingID).Msg("failed to convert booking")

		return failure.FromStore(err, msgBookingConverted) // nolint:wrapcheck
	}

	log.Info().Int64("booking_id", req.BookingID).Int64("rental_id", rentalID).Msg("booking converted to rental")

	s.publish(ctx, rentalID, rental)

	return nil
}

func (s *serviceImpl) RentForm(_ context.Context) dto.RentFormResponse {
	return dto.RentFormResponse{CurrentDate: timezone.Format(timezone.Now(), constant.DateOnly)}
}

// WalkIn records a completed rental for a customer without a booking. The
// customer is resolved before the transaction opens, so a bad customer never
// reaches the store. A customer_id wins over the name, which must then match
// the stored full name when sent.
func (s *serviceImpl) WalkIn(ctx context.Context, req dto.WalkInRequest) (res dto.WalkInResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".WalkIn")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checkIn, err := timezone.Parse(constant.DateOnly, req.CheckIn)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	checkOut, err := timezone.Parse(constant.DateOnly, req.CheckOut)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if checkOut.Before(checkIn) {
		return res, failure.BadRequestFromString(msgCheckOutBeforeIn) // nolint:wrapcheck
	}

	customer, err := s.resolveCustomer(ctx, req)
	if err != nil {
		return res, err
	}

	sess, _ := session.FromContext(ctx)
	today := timezone.Today()
	rental := req.ToModel(customer.ID, sess.UserID, checkIn, checkOut, today, sess.Actor())

	var rentalID int64

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		id, err := s.repo.InsertReturningIDTx(ctx, tx, rental)
		if err != nil {
			return err
		}

		rentalID = id

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("customer_id", customer.ID).Msg("failed to create walk-in rental")

		return res, failure.FromStore(err, msgRentalUnknownRelated) // nolint:wrapcheck
	}

	s.publish(ctx, rentalID, rental)

	return dto.WalkInResponse{
		RentalID:      rentalID,
		CustomerID:    customer.ID,
		CustomerName:  customer.FullName,
		HotelID:       req.HotelID,
		RoomID:        req.RoomID,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		PaymentAmount: req.PaymentAmount,
		PaymentMethod: req.PaymentMethod,
		CurrentDate:   today.Format(constant.DateOnly),
	}, nil
}

func (s *serviceImpl) resolveCustomer(ctx context.Context, req dto.WalkInRequest) (customerModel.Customer, error) {
	if req.CustomerID > 0 {
		customer, err := s.customerRepo.Get(
			ctx,
			shared.FilterByID(req.CustomerID, customerModel.FieldID, customerModel.TableName),
			customerModel.FieldID, customerModel.FieldFullName,
		)
		if err != nil {
			log.Error().Err(err).Msg("failed to get customer")

			return customer, fmt.Errorf("failed to get customer: %w", err)
		}

		if customer.ID == 0 {
			return customer, failure.NotFound(msgCustomerNotFound) // nolint:wrapcheck
		}

		if req.CustomerName != constant.Empty && req.CustomerName != customer.FullName {
			return customer, failure.BadRequestFromString(msgCustomerMismatch) // nolint:wrapcheck
		}

		return customer, nil
	}

	filter := gDto.And(gDto.Filter{
		Field:    customerModel.FieldFullName,
		Value:    req.CustomerName,
		Operator: gDto.FilterOperatorEq,
		Table:    customerModel.TableName,
	})

	customers, err := s.customerRepo.GetAll(
		ctx,
		gDto.QueryParams{Page: 1, Limit: customerMatchLimit},
		filter,
		customerModel.FieldID, customerModel.FieldFullName,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to find customer by name")

		return customerModel.Customer{}, fmt.Errorf("failed to find customer by name: %w", err)
	}

	switch len(customers) {
	case 0:
		return customerModel.Customer{}, failure.NotFound(msgCustomerNotFound) // nolint:wrapcheck
	case 1:
		return customers[0], nil
	default:
		return customerModel.Customer{}, failure.Conflict(msgCustomerAmbiguous) // nolint:wrapcheck
	}
}

func (s *serviceImpl) publish(ctx context.Context, rentalID int64, rental model.Rental) {
	var evt dto.RentalCreatedEvent
	evt.FromModel(rentalID, rental)

	go s.publisher.RentalCreated(context.WithoutCancel(ctx), evt)
}
