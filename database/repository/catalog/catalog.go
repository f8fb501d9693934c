package catalogRepo

import (
	"docportal/models"
)

// CatalogRepository defines data access for the treatment catalog.
type CatalogRepository interface {
	// GetAll retrieves every appointment option with its full slot list.
	GetAll() ([]models.AppointmentOption, error)
	// GetAvailable computes remaining open slots per treatment for the given
	// date with a single store-side aggregation (join + set-difference).
	GetAvailable(date string) ([]models.AvailableOption, error)
	// DistinctNames retrieves the distinct treatment names.
	DistinctNames() ([]string, error)
}
