package labourRepo

import "farmconnect/models"

// LabourRepository defines methods for labour pool access.
type LabourRepository interface {
	// FindAvailableBySkill retrieves one currently available labour entry
	// whose skill set contains the given skill. Returns (nil, nil) when
	// none is available.
	FindAvailableBySkill(skill string) (*models.Labour, error)
}
