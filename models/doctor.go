package models

import "time"

// Doctor is a roster entry managed by administrators.
type Doctor struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Specialty string    `bson:"specialty" json:"specialty"` // references AppointmentOption.Name
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
