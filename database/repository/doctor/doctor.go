package doctorRepo

import (
	"docportal/models"
)

// DoctorRepository defines data access for the doctor roster.
type DoctorRepository interface {
	// Create inserts a new doctor record.
	Create(doctor *models.Doctor) error
	// GetAll retrieves all doctors.
	GetAll() ([]models.Doctor, error)
	// Delete removes a doctor record by its ID.
	Delete(id string) error
}
