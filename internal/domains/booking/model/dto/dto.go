package dto

import (
	"saylamc/internal/domains/booking/model"
	"saylamc/shared/constant"
	gDto "saylamc/shared/dto"
	gModel "saylamc/shared/model"
	"saylamc/shared/timezone"
)

type CreateBookingRequest struct {
	FullName      string `json:"full_name" validate:"required,max=255"`
	Email         string `json:"email" validate:"required,email,max=255"`
	Phone         string `json:"phone" validate:"required,max=50"`
	Whatsapp      string `json:"whatsapp" validate:"omitempty,max=50"`
	EventType     string `json:"event_type" validate:"required,max=100"`
	EventDate     string `json:"event_date" validate:"required,max=100"`
	EventTime     string `json:"event_time" validate:"omitempty,max=50"`
	EventLocation string `json:"event_location" validate:"omitempty,max=500"`
	PackageID     *int64 `json:"package_id" validate:"omitempty,gt=0"`
	GuestCount    int    `json:"guest_count" validate:"omitempty,gte=0"`
	Message       string `json:"message"`
}

// ToModel always starts a booking as pending. A client-supplied status is
// never honored on create.
func (c *CreateBookingRequest) ToModel() model.Booking {
	return model.Booking{
		FullName:      c.FullName,
		Email:         c.Email,
		Phone:         c.Phone,
		Whatsapp:      c.Whatsapp,
		EventType:     c.EventType,
		EventDate:     c.EventDate,
		EventTime:     c.EventTime,
		EventLocation: c.EventLocation,
		PackageID:     c.PackageID,
		GuestCount:    c.GuestCount,
		Message:       c.Message,
		Status:        constant.BookingStatusPending,
		Timestamps: gModel.Timestamps{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

// UpdateBookingStatusRequest touches status and admin notes only. Contact and
// event details stay exactly as the visitor submitted them.
type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
	Notes  string `json:"notes"`
}

func (u *UpdateBookingStatusRequest) ToFields() map[string]any {
	return map[string]any{
		model.FieldStatus:       u.Status,
		"notes":                 u.Notes,
		constant.FieldUpdatedAt: timezone.Now(),
	}
}

type BookingResponse struct {
	ID            int64  `json:"id"`
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Whatsapp      string `json:"whatsapp"`
	EventType     string `json:"event_type"`
	EventDate     string `json:"event_date"`
	EventTime     string `json:"event_time"`
	EventLocation string `json:"event_location"`
	PackageID     *int64 `json:"package_id"`
	GuestCount    int    `json:"guest_count"`
	Message       string `json:"message"`
	Status        string `json:"status"`
	Notes         string `json:"notes"`
	gDto.Timestamps
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.FullName = model.FullName
	r.Email = model.Email
	r.Phone = model.Phone
	r.Whatsapp = model.Whatsapp
	r.EventType = model.EventType
	r.EventDate = model.EventDate
	r.EventTime = model.EventTime
	r.EventLocation = model.EventLocation
	r.PackageID = model.PackageID
	r.GuestCount = model.GuestCount
	r.Message = model.Message
	r.Status = model.Status
	r.Notes = model.Notes
	r.Timestamps.FromModel(model.Timestamps)
}

func FromModels(models []model.Booking) []BookingResponse {
	responses := make([]BookingResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}
