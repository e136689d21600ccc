package dto

import (
	"ehotels/internal/domains/booking/model"
	"ehotels/shared/constant"
	"ehotels/shared/timezone"
)

type BookingDetailResponse struct {
	ID           int64  `json:"booking_id"`
	RoomID       int64  `json:"room_id"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	Status       string `json:"status"`
	HotelName    string `json:"hotel_name"`
	CustomerName string `json:"customer_name"`
}

func (b *BookingDetailResponse) FromModel(model model.BookingDetail) {
	b.ID = model.ID
	b.RoomID = model.RoomID
	b.CheckInDate = model.CheckInDate.Format(constant.DateOnly)
	b.CheckOutDate = model.CheckOutDate.Format(constant.DateOnly)
	b.Status = model.Status
	b.HotelName = model.HotelName
	b.CustomerName = model.CustomerName
}

type DashboardResponse struct {
	Today    string                  `json:"today"`
	Bookings []BookingDetailResponse `json:"bookings"`
}

func (d *DashboardResponse) FromModels(models []model.BookingDetail) {
	d.Today = timezone.Today().Format(constant.DateOnly)

	d.Bookings = make([]BookingDetailResponse, len(models))
	for i, mod := range models {
		d.Bookings[i].FromModel(mod)
	}
}
