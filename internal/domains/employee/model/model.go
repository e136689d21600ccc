package model

import "ehotels/shared/model"

const (
	TableName  = "employees"
	EntityName = "employee"

	FieldID       = "employee_id"
	FieldFullName = "full_name"
	FieldHotelID  = "hotel_id"
	FieldPosition = "position"
)

type Employee struct {
	ID        int64  `db:"employee_id" insert:"false" update:"false"`
	FullName  string `db:"full_name"`
	Address   string `db:"address"`
	Position  string `db:"position"`
	SSN       string `db:"ssn"`
	HotelID   int64  `db:"hotel_id"`
	HotelName string `db:"hotel_name"  table:"hotels" update:"false"`
	model.Metadata
}

func (Employee) GetJoinQuery() string {
	return "JOIN hotels ON hotels.hotel_id = employees.hotel_id"
}
