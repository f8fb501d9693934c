package userRepo

import (
	"errors"

	"docportal/models"
)

// ErrDuplicateUser is returned by Create when the email is already registered.
var ErrDuplicateUser = errors.New("user with this email already exists")

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user record.
	Create(user *models.User) error
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// GetByEmail retrieves a user by email. Returns (nil, nil) when absent.
	GetByEmail(email string) (*models.User, error)
	// SetRole updates the role of the user with the given ID.
	SetRole(id, role string) error
}
