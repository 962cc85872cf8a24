package machineryRepo

import "farmconnect/models"

// MachineryRepository defines methods for machinery catalog access.
type MachineryRepository interface {
	// FindAvailableByName retrieves one currently available machinery whose
	// name equals the given name, compared case-insensitively as a whole
	// string. Returns (nil, nil) when none is available.
	FindAvailableByName(name string) (*models.Machinery, error)
}
