package model

import (
	"time"

	bookingModel "ehotels/internal/domains/booking/model"
	"ehotels/shared/constant"
	"ehotels/shared/model"
)

const (
	TableName  = "rentals"
	EntityName = "rental"

	FieldID        = "rental_id"
	FieldBookingID = "booking_id"
)

// Rental is an actual stay. BookingID is nil for walk-ins.
type Rental struct {
	ID            int64     `db:"rental_id"      insert:"false"`
	CustomerID    int64     `db:"customer_id"`
	HotelID       int64     `db:"hotel_id"`
	RoomID        int64     `db:"room_id"`
	EmployeeID    int64     `db:"employee_id"`
	BookingID     *int64    `db:"booking_id"`
	CheckInDate   time.Time `db:"check_in_date"`
	CheckOutDate  time.Time `db:"check_out_date"`
	Status        string    `db:"status"`
	PaymentAmount float64   `db:"payment_amount"`
	PaymentDate   time.Time `db:"payment_date"`
	PaymentMethod string    `db:"payment_method"`
	model.Metadata
}

// FromBooking builds the ongoing rental that replaces a confirmed booking.
// Payment is settled later, so the amount starts at zero.
func FromBooking(booking bookingModel.Booking, employeeID int64, today time.Time, metadata model.Metadata) Rental {
	bookingID := booking.ID

	return Rental{
		CustomerID:    booking.CustomerID,
		HotelID:       booking.HotelID,
		RoomID:        booking.RoomID,
		EmployeeID:    employeeID,
		BookingID:     &bookingID,
		CheckInDate:   booking.CheckInDate,
		CheckOutDate:  booking.CheckOutDate,
		Status:        constant.RentalStatusOngoing,
		PaymentAmount: 0,
		PaymentDate:   today,
		PaymentMethod: constant.PaymentMethodPending,
		Metadata:      metadata,
	}
}
