package models

import "time"

// RoleAdmin marks a user allowed through the admin gate.
const RoleAdmin = "admin"

// User is a portal account. Accounts carry no credential material; token
// issuance is gated on the account existing (see services/user).
type User struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Role      string    `bson:"role,omitempty" json:"role,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
