package doctor

import (
	doctorRepo "docportal/database/repository/doctor"
	"docportal/models"

	"github.com/google/uuid"
)

// Service manages the doctor roster. All operations sit behind the admin gate
// at the route layer.
type Service interface {
	Register(d *models.Doctor) (*models.Doctor, error)
	List() ([]models.Doctor, error)
	Remove(id string) error
}

// DefaultDoctorService is the production doctor service.
type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}

func (s *DefaultDoctorService) Register(d *models.Doctor) (*models.Doctor, error) {
	d.ID = uuid.New().String()

	if err := s.Repo.Create(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DefaultDoctorService) List() ([]models.Doctor, error) {
	return s.Repo.GetAll()
}

func (s *DefaultDoctorService) Remove(id string) error {
	return s.Repo.Delete(id)
}
