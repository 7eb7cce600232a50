package handlers

import (
	"doctorsportal/middleware"
	"doctorsportal/utils"
)

// HandlerBundle groups all endpoint handlers and what the routes need to
// guard them.
type HandlerBundle struct {
	Tokens *utils.JWTManager
	Admins middleware.AdminChecker

	Appointment *AppointmentHandler
	Booking     *BookingHandler
	User        *UserHandler
	Doctor      *DoctorHandler
	Payment     *PaymentHandler
	Health      *HealthHandler
}
