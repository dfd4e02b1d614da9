package specialistRepo

import (
	"github.com/maksim-leskin/api-chik-chik/models"
)

// SpecialistRepository defines read access to the specialist catalog.
type SpecialistRepository interface {
	GetAll() ([]models.Specialist, error)
	GetByService(serviceID int) ([]models.Specialist, error)
}
