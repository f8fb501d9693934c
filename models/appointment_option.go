package models

// AppointmentOption is a bookable treatment published by the clinic: a name,
// a price, and the day's schedule as ordered slot labels (e.g. "10:00 AM").
// The catalog is mutated out-of-band by administrators and treated as
// immutable within a request.
type AppointmentOption struct {
	ID    string   `bson:"id" json:"id"`
	Name  string   `bson:"name" json:"name"` // unique treatment identifier
	Price float64  `bson:"price" json:"price"`
	Slots []string `bson:"slots" json:"slots"`
}

// AvailableOption is an AppointmentOption with already-booked slots removed
// for a particular date. Computed on read, never persisted.
type AvailableOption struct {
	Name  string   `bson:"name" json:"name"`
	Price float64  `bson:"price" json:"price"`
	Slots []string `bson:"slots" json:"slots"`
}
