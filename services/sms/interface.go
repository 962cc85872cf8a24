package sms

import (
	bookingRepo "farmconnect/database/repository/booking"
	labourRepo "farmconnect/database/repository/labour"
	machineryRepo "farmconnect/database/repository/machinery"
	requesterRepo "farmconnect/database/repository/requester"
)

// Outcome is the single result returned to the SMS transport layer for
// every inbound message. Message is the full user-facing reply text.
type Outcome struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	BookingID string `json:"bookingId,omitempty"`
}

// Service processes inbound SMS booking commands.
type Service interface {
	// HandleSMSBooking parses the message text and executes the resulting
	// command for the given sender. It never returns an error: every
	// failure resolves to a success:false Outcome.
	HandleSMSBooking(text, phoneNumber string) Outcome
}

// DefaultSMSBookingService implements Service against the injected
// repositories.
type DefaultSMSBookingService struct {
	Requesters requesterRepo.RequesterRepository
	Machinery  machineryRepo.MachineryRepository
	Labour     labourRepo.LabourRepository
	Bookings   bookingRepo.BookingRepository
}
