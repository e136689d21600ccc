package model

import "ehotels/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID      = "room_id"
	FieldHotelID = "hotel_id"
	FieldImage   = "image"
)

type Room struct {
	ID         int64   `db:"room_id"    insert:"false" update:"false"`
	HotelID    int64   `db:"hotel_id"`
	Capacity   int     `db:"capacity"`
	ViewType   string  `db:"view_type"`
	Extendable bool    `db:"extendable"`
	Price      float64 `db:"price"`
	Status     string  `db:"status"`
	Image      string  `db:"image"      update:"false"`
	HotelName  string  `db:"hotel_name" table:"hotels" update:"false"`
	model.Metadata
}

func (Room) GetJoinQuery() string {
	return "JOIN hotels ON hotels.hotel_id = rooms.hotel_id"
}
