package domain

import "errors"

// Domain errors
var (
	// Not-found errors: the referenced entity is absent
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrTicketTypeNotFound = errors.New("ticket type not found")
	ErrHotelNotFound      = errors.New("hotel not found")
	ErrRoomNotFound       = errors.New("room not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrPaymentNotFound    = errors.New("payment not found")

	// Forbidden errors: entity exists but the request violates a business rule
	ErrTicketNotEligible    = errors.New("ticket does not allow hotel booking")
	ErrHotelAccessForbidden = errors.New("ticket does not include hotel access")
	ErrBookingAlreadyExists = errors.New("user already has a booking")
	ErrRoomCapacityReached  = errors.New("room is at full capacity")
	ErrBookingNotOwned      = errors.New("booking belongs to another user")
	ErrSameRoom             = errors.New("booking is already assigned to this room")

	// Payment-required: category eligible but the ticket is unpaid (read path only)
	ErrTicketNotPaid = errors.New("ticket has not been paid")

	// Ownership error on the payment read path
	ErrPaymentNotOwned = errors.New("ticket belongs to another user")
)
