package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	otelMocks "ehotels/infras/otel/mocks"
	bookingMocks "ehotels/internal/domains/booking/mocks"
	bookingModel "ehotels/internal/domains/booking/model"
	customerMocks "ehotels/internal/domains/customer/mocks"
	customerModel "ehotels/internal/domains/customer/model"
	rentalMocks "ehotels/internal/domains/rental/mocks"
	"ehotels/internal/domains/rental/model"
	"ehotels/internal/domains/rental/model/dto"
	"ehotels/internal/domains/rental/service"
	"ehotels/shared/constant"
	gDto "ehotels/shared/dto"
	"ehotels/shared/failure"
	"ehotels/shared/session"
	"ehotels/shared/timezone"
	"ehotels/shared/transaction"
	txMocks "ehotels/shared/transaction/mocks"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo         *rentalMocks.MockRental
	bookingRepo  *bookingMocks.MockBooking
	customerRepo *customerMocks.MockCustomer
	transactor   *txMocks.MockTransactor
	publisher    *rentalMocks.MockPublisher
	svc          service.Rental
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:         rentalMocks.NewMockRental(ctrl),
		bookingRepo:  bookingMocks.NewMockBooking(ctrl),
		customerRepo: customerMocks.NewMockCustomer(ctrl),
		transactor:   txMocks.NewMockTransactor(ctrl),
		publisher:    rentalMocks.NewMockPublisher(ctrl),
	}

	f.svc = service.New(f.repo, f.bookingRepo, f.customerRepo, f.transactor, f.publisher, otelMocks.NewOtel())

	return f
}

func (f fixture) runTransaction() {
	f.transactor.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn transaction.TxFunc) error {
			return fn(ctx, nil)
		})
}

func receptionistContext() context.Context {
	return session.WithSession(context.Background(), session.Session{
		UserType: constant.UserTypeEmployee,
		UserID:   2,
		Position: constant.PositionReceptionist,
	})
}

func confirmedBooking() bookingModel.Booking {
	return bookingModel.Booking{
		ID:           10,
		CustomerID:   3,
		HotelID:      1,
		RoomID:       5,
		CheckInDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
		Status:       constant.BookingStatusConfirmed,
	}
}

func walkInRequest() dto.WalkInRequest {
	return dto.WalkInRequest{
		CustomerName:  "Jane Roe",
		HotelID:       1,
		RoomID:        5,
		CheckIn:       "2025-06-01",
		CheckOut:      "2025-06-03",
		PaymentAmount: 240,
		PaymentMethod: "Credit Card",
	}
}

func TestRentalService_ConvertBooking(t *testing.T) {
	t.Run("confirmed booking becomes an ongoing rental", func(t *testing.T) {
		f := newFixture(t)
		booking := confirmedBooking()

		f.runTransaction()
		f.bookingRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking, nil)
		f.bookingRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) (int64, error) {
				assert.Equal(t, constant.BookingStatusCancelled, fields[bookingModel.FieldStatus])
				assert.Equal(t, "employee:2", fields[constant.FieldModifiedBy])

				return 1, nil
			})
		f.repo.EXPECT().
			InsertReturningIDTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, rental model.Rental) (int64, error) {
				require.NotNil(t, rental.BookingID)
				assert.Equal(t, int64(10), *rental.BookingID)
				assert.Equal(t, int64(3), rental.CustomerID)
				assert.Equal(t, int64(1), rental.HotelID)
				assert.Equal(t, int64(5), rental.RoomID)
				assert.Equal(t, int64(2), rental.EmployeeID)
				assert.Equal(t, booking.CheckInDate, rental.CheckInDate)
				assert.Equal(t, booking.CheckOutDate, rental.CheckOutDate)
				assert.Equal(t, constant.RentalStatusOngoing, rental.Status)
				assert.Zero(t, rental.PaymentAmount)
				assert.Equal(t, constant.PaymentMethodPending, rental.PaymentMethod)
				assert.Equal(t, timezone.Today(), rental.PaymentDate)

				return 77, nil
			})
		f.publisher.EXPECT().
			RentalCreated(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, evt dto.RentalCreatedEvent) {
				assert.Equal(t, int64(77), evt.RentalID)
				assert.Equal(t, constant.RentalStatusOngoing, evt.Status)
			})

		err := f.svc.ConvertBooking(receptionistContext(), dto.ConvertBookingRequest{BookingID: 10})
		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("missing booking changes nothing", func(t *testing.T) {
		f := newFixture(t)

		f.runTransaction()
		f.bookingRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingModel.Booking{}, nil)

		err := f.svc.ConvertBooking(receptionistContext(), dto.ConvertBookingRequest{BookingID: 99})

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Equal(t, "booking not found", err.Error())
	})

	t.Run("cancelled booking is not converted twice", func(t *testing.T) {
		f := newFixture(t)
		booking := confirmedBooking()
		booking.Status = constant.BookingStatusCancelled

		f.runTransaction()
		f.bookingRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking, nil)

		err := f.svc.ConvertBooking(receptionistContext(), dto.ConvertBookingRequest{BookingID: 10})

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("failed rental insert surfaces as store error", func(t *testing.T) {
		f := newFixture(t)

		f.runTransaction()
		f.bookingRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(confirmedBooking(), nil)
		f.bookingRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
		f.repo.EXPECT().InsertReturningIDTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("disk full"))

		err := f.svc.ConvertBooking(receptionistContext(), dto.ConvertBookingRequest{BookingID: 10})

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("duplicate rental for the booking is a conflict", func(t *testing.T) {
		f := newFixture(t)

		f.runTransaction()
		f.bookingRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(confirmedBooking(), nil)
		f.bookingRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
		f.repo.EXPECT().InsertReturningIDTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), &pq.Error{Code: constant.PqErrorCodeUniqueViolation})

		err := f.svc.ConvertBooking(receptionistContext(), dto.ConvertBookingRequest{BookingID: 10})

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestRentalService_RentForm(t *testing.T) {
	f := newFixture(t)

	res := f.svc.RentForm(context.Background())

	assert.Equal(t, timezone.Format(timezone.Now(), constant.DateOnly), res.CurrentDate)
}

func TestRentalService_WalkIn(t *testing.T) {
	t.Run("resolves customer by name and inserts a completed rental", func(t *testing.T) {
		f := newFixture(t)

		f.customerRepo.EXPECT().
			GetAll(gomock.Any(), gDto.QueryParams{Page: 1, Limit: 2}, gomock.Any(), customerModel.FieldID, customerModel.FieldFullName).
			Return([]customerModel.Customer{{ID: 3, FullName: "Jane Roe"}}, nil)
		f.runTransaction()
		f.repo.EXPECT().
			InsertReturningIDTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, rental model.Rental) (int64, error) {
				assert.Nil(t, rental.BookingID)
				assert.Equal(t, int64(3), rental.CustomerID)
				assert.Equal(t, int64(2), rental.EmployeeID)
				assert.Equal(t, constant.RentalStatusCompleted, rental.Status)
				assert.Equal(t, 240.0, rental.PaymentAmount)
				assert.Equal(t, "2025-06-01", rental.CheckInDate.Format(constant.DateOnly))

				return 78, nil
			})
		f.publisher.EXPECT().RentalCreated(gomock.Any(), gomock.Any())

		res, err := f.svc.WalkIn(receptionistContext(), walkInRequest())
		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, int64(78), res.RentalID)
		assert.Equal(t, int64(3), res.CustomerID)
		assert.Equal(t, "Jane Roe", res.CustomerName)
		assert.Equal(t, "2025-06-03", res.CheckOut)
		assert.Equal(t, timezone.Today().Format(constant.DateOnly), res.CurrentDate)
	})

	t.Run("explicit customer id", func(t *testing.T) {
		f := newFixture(t)

		req := walkInRequest()
		req.CustomerID = 3

		f.customerRepo.EXPECT().
			Get(gomock.Any(), gomock.Any(), customerModel.FieldID, customerModel.FieldFullName).
			Return(customerModel.Customer{ID: 3, FullName: "Jane Roe"}, nil)
		f.runTransaction()
		f.repo.EXPECT().InsertReturningIDTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(79), nil)
		f.publisher.EXPECT().RentalCreated(gomock.Any(), gomock.Any())

		res, err := f.svc.WalkIn(receptionistContext(), req)
		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, int64(79), res.RentalID)
	})

	t.Run("customer id with another name performs no write", func(t *testing.T) {
		f := newFixture(t)

		req := walkInRequest()
		req.CustomerID = 3
		req.CustomerName = "John Doe"

		f.customerRepo.EXPECT().
			Get(gomock.Any(), gomock.Any(), customerModel.FieldID, customerModel.FieldFullName).
			Return(customerModel.Customer{ID: 3, FullName: "Jane Roe"}, nil)

		_, err := f.svc.WalkIn(receptionistContext(), req)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Equal(t, "customer_name does not match customer_id", err.Error())
	})

	t.Run("unknown customer performs no write", func(t *testing.T) {
		f := newFixture(t)

		f.customerRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]customerModel.Customer{}, nil)

		_, err := f.svc.WalkIn(receptionistContext(), walkInRequest())

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Equal(t, "customer not found", err.Error())
	})

	t.Run("ambiguous customer name performs no write", func(t *testing.T) {
		f := newFixture(t)

		f.customerRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]customerModel.Customer{{ID: 3, FullName: "Jane Roe"}, {ID: 8, FullName: "Jane Roe"}}, nil)

		_, err := f.svc.WalkIn(receptionistContext(), walkInRequest())

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("checkout before checkin", func(t *testing.T) {
		f := newFixture(t)

		req := walkInRequest()
		req.CheckOut = "2025-05-30"

		_, err := f.svc.WalkIn(receptionistContext(), req)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Equal(t, "checkout must not be before checkin", err.Error())
	})

	t.Run("unknown room is a conflict", func(t *testing.T) {
		f := newFixture(t)

		f.customerRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]customerModel.Customer{{ID: 3, FullName: "Jane Roe"}}, nil)
		f.runTransaction()
		f.repo.EXPECT().InsertReturningIDTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), &pq.Error{Code: constant.PqErrorCodeFkViolation})

		_, err := f.svc.WalkIn(receptionistContext(), walkInRequest())

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}
