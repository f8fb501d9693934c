package availability

import (
	"docportal/models"
)

// Service computes remaining open slots per treatment for a date. Two
// strategies are exposed; they must return identical results for identical
// inputs.
type Service interface {
	// Resolve computes availability with a client-side join: catalog and
	// bookings are fetched separately and subtracted in application logic.
	Resolve(date string) ([]models.AvailableOption, error)
	// ResolveAggregated computes availability with a single store-side
	// aggregation (join + projection + set-subtraction).
	ResolveAggregated(date string) ([]models.AvailableOption, error)
	// Specialties lists the distinct treatment names.
	Specialties() ([]string, error)
}
