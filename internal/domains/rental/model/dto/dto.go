package dto

import (
	"time"

	"ehotels/internal/domains/rental/model"
	"ehotels/shared/constant"
	gModel "ehotels/shared/model"
	"ehotels/shared/timezone"
)

type ConvertBookingRequest struct {
	BookingID int64 `form:"booking_id" json:"booking_id" validate:"required,gt=0"`
}

// WalkInRequest is the rent-room form. The customer is picked by id when one
// is sent, otherwise by exact full name.
type WalkInRequest struct {
	CustomerName  string  `form:"customer_name"  json:"customer_name"  validate:"required_without=CustomerID,max=100"`
	CustomerID    int64   `form:"customer_id"    json:"customer_id"    validate:"omitempty,gt=0"`
	HotelID       int64   `form:"hotel_id"       json:"hotel_id"       validate:"required,gt=0"`
	RoomID        int64   `form:"room_id"        json:"room_id"        validate:"required,gt=0"`
	CheckIn       string  `form:"checkin"        json:"checkin"        validate:"required,datetime=2006-01-02"`
	CheckOut      string  `form:"checkout"       json:"checkout"       validate:"required,datetime=2006-01-02"`
	PaymentAmount float64 `form:"payment_amount" json:"payment_amount" validate:"gte=0"`
	PaymentMethod string  `form:"payment_method" json:"payment_method" validate:"required,max=50"`
}

func (w *WalkInRequest) ToModel(customerID, employeeID int64, checkIn, checkOut, today time.Time, actor string) model.Rental {
	return model.Rental{
		CustomerID:    customerID,
		HotelID:       w.HotelID,
		RoomID:        w.RoomID,
		EmployeeID:    employeeID,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		Status:        constant.RentalStatusCompleted,
		PaymentAmount: w.PaymentAmount,
		PaymentDate:   today,
		PaymentMethod: w.PaymentMethod,
		Metadata:      gModel.NewMetadata(actor, timezone.Now()),
	}
}

// WalkInResponse echoes the rent-room form back as a confirmation.
type WalkInResponse struct {
	RentalID      int64   `json:"rental_id"`
	CustomerID    int64   `json:"customer_id"`
	CustomerName  string  `json:"customer_name"`
	HotelID       int64   `json:"hotel_id"`
	RoomID        int64   `json:"room_id"`
	CheckIn       string  `json:"checkin"`
	CheckOut      string  `json:"checkout"`
	PaymentAmount float64 `json:"payment_amount"`
	PaymentMethod string  `json:"payment_method"`
	CurrentDate   string  `json:"current_date"`
}

type RentFormResponse struct {
	CurrentDate string `json:"current_date"`
}

// RentalCreatedEvent is published on the rental topic once a rental is committed.
type RentalCreatedEvent struct {
	RentalID      int64   `json:"rental_id"`
	BookingID     *int64  `json:"booking_id"`
	CustomerID    int64   `json:"customer_id"`
	HotelID       int64   `json:"hotel_id"`
	RoomID        int64   `json:"room_id"`
	EmployeeID    int64   `json:"employee_id"`
	Status        string  `json:"status"`
	CheckIn       string  `json:"checkin"`
	CheckOut      string  `json:"checkout"`
	PaymentAmount float64 `json:"payment_amount"`
	PaymentMethod string  `json:"payment_method"`
}

func (e *RentalCreatedEvent) FromModel(id int64, rental model.Rental) {
	e.RentalID = id
	e.BookingID = rental.BookingID
	e.CustomerID = rental.CustomerID
	e.HotelID = rental.HotelID
	e.RoomID = rental.RoomID
	e.EmployeeID = rental.EmployeeID
	e.Status = rental.Status
	e.CheckIn = rental.CheckInDate.Format(constant.DateOnly)
	e.CheckOut = rental.CheckOutDate.Format(constant.DateOnly)
	e.PaymentAmount = rental.PaymentAmount
	e.PaymentMethod = rental.PaymentMethod
}
