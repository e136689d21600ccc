package model

import (
	"time"

	"ehotels/shared/model"
)

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID       = "customer_id"
	FieldFullName = "full_name"
)

type Customer struct {
	ID               int64     `db:"customer_id"       insert:"false" update:"false"`
	FullName         string    `db:"full_name"`
	Address          string    `db:"address"`
	IDType           string    `db:"id_type"`
	IDNumber         string    `db:"id_number"`
	RegistrationDate time.Time `db:"registration_date"`
	model.Metadata
}
