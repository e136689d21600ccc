package model

import (
	"time"

	"ehotels/shared/constant"
	"ehotels/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "booking_id"
	FieldCustomerID   = "customer_id"
	FieldHotelID      = "hotel_id"
	FieldRoomID       = "room_id"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldStatus       = "status"
)

type Booking struct {
	ID           int64     `db:"booking_id"     insert:"false"`
	CustomerID   int64     `db:"customer_id"`
	HotelID      int64     `db:"hotel_id"`
	RoomID       int64     `db:"room_id"`
	CheckInDate  time.Time `db:"check_in_date"`
	CheckOutDate time.Time `db:"check_out_date"`
	Status       string    `db:"status"`
	model.Metadata
}

// IsConfirmed reports whether the booking can still be turned into a rental.
func (b Booking) IsConfirmed() bool {
	return b.Status == constant.BookingStatusConfirmed
}

// BookingDetail is the dashboard row: a booking with its hotel and customer names.
type BookingDetail struct {
	ID           int64     `db:"booking_id"`
	RoomID       int64     `db:"room_id"`
	CheckInDate  time.Time `db:"check_in_date"`
	CheckOutDate time.Time `db:"check_out_date"`
	Status       string    `db:"status"`
	HotelName    string    `db:"hotel_name"     table:"hotels"`
	CustomerName string    `db:"customer_name"  column:"full_name" table:"customers"`
}

func (BookingDetail) GetJoinQuery() string {
	return "JOIN hotels ON hotels.hotel_id = bookings.hotel_id " +
		"JOIN customers ON customers.customer_id = bookings.customer_id"
}
