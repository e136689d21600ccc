package model

import "ehotels/shared/model"

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID           = "hotel_id"
	FieldHotelName    = "hotel_name"
	FieldHotelChainID = "hotel_chain_id"
)

type Hotel struct {
	ID           int64   `db:"hotel_id"       insert:"false" update:"false"`
	HotelName    string  `db:"hotel_name"`
	Address      string  `db:"address"`
	HotelChainID int64   `db:"hotel_chain_id"`
	Category     int     `db:"category"`
	NumRooms     int     `db:"num_rooms"`
	Rating       float64 `db:"rating"`
	ChainName    string  `db:"chain_name"     table:"hotel_chains" update:"false"`
	model.Metadata
}

func (Hotel) GetJoinQuery() string {
	return "JOIN hotel_chains ON hotel_chains.hotel_chain_id = hotels.hotel_chain_id"
}
