package bookingRepo

import "farmconnect/models"

// BookingRepository defines methods for booking ledger access.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
}
