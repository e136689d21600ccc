package model

import (
	"time"

	"ehotels/shared/model"
)

const (
	TableName  = "accounts"
	EntityName = "account"

	FieldID        = "account_id"
	FieldUsername  = "username"
	FieldUserType  = "user_type"
	FieldUserID    = "user_id"
	FieldLastLogin = "last_login"
)

// Account holds login credentials. UserID points at an employee or a customer
// depending on UserType.
type Account struct {
	ID        int64      `db:"account_id" insert:"false" update:"false"`
	Username  string     `db:"username"`
	Password  string     `db:"password"`
	UserType  string     `db:"user_type"`
	UserID    int64      `db:"user_id"`
	Active    bool       `db:"active"`
	LastLogin *time.Time `db:"last_login"`
	model.Metadata
}
