package requesterRepo

import "farmconnect/models"

// RequesterRepository defines methods for requester data access.
type RequesterRepository interface {
	// GetByPhone retrieves a requester by phone number. Returns (nil, nil)
	// when no requester exists for the number.
	GetByPhone(phone string) (*models.Requester, error)
	// Create inserts a new requester record. The insert is idempotent on
	// the phone number: a concurrent or repeated create for the same
	// number resolves to the already stored record.
	Create(requester *models.Requester) error
}
