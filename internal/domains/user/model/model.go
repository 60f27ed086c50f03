package model

import "saylamc/shared/model"

const (
	TableName  = "admin_users"
	EntityName = "admin_user"

	FieldID       = "id"
	FieldUsername = "username"
	FieldEmail    = "email"
)

type AdminUser struct {
	ID           int64  `db:"id"`
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	FullName     string `db:"full_name"`
	model.Timestamps
}
