package model

import "saylamc/shared/model"

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID        = "id"
	FieldStatus    = "status"
	FieldEventDate = "event_date"
)

type Booking struct {
	ID            int64  `db:"id"`
	FullName      string `db:"full_name"`
	Email         string `db:"email"`
	Phone         string `db:"phone"`
	Whatsapp      string `db:"whatsapp"`
	EventType     string `db:"event_type"`
	EventDate     string `db:"event_date"`
	EventTime     string `db:"event_time"`
	EventLocation string `db:"event_location"`
	PackageID     *int64 `db:"package_id"`
	GuestCount    int    `db:"guest_count"`
	Message       string `db:"message"`
	Status        string `db:"status"`
	Notes         string `db:"notes"`
	model.Timestamps
}
