package dto

import (
	bookingDto "saylamc/internal/domains/booking/model/dto"
)

type Stats struct {
	Bookings     int `json:"bookings"`
	Services     int `json:"services"`
	Packages     int `json:"packages"`
	Portfolio    int `json:"portfolio"`
	Gallery      int `json:"gallery"`
	Testimonials int `json:"testimonials"`
}

// StatsResponse defines its own top-level fields instead of the usual data
// envelope, matching what the admin dashboard expects.
type StatsResponse struct {
	Success        bool                         `json:"success"`
	Stats          Stats                        `json:"stats"`
	RecentBookings []bookingDto.BookingResponse `json:"recent_bookings"`
}
