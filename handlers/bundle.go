package handlers

import (
	userService "docportal/services/user"
)

// HandlerBundle carries the assembled handlers into route registration.
type HandlerBundle struct {
	// UserService backs the admin-gate middleware.
	UserService userService.Service

	Availability *AvailabilityHandler
	Booking      *BookingHandler
	User         *UserHandler
	Doctor       *DoctorHandler
	Payment      *PaymentHandler
	Auth         *AuthHandler
}
