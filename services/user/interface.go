package user

import (
	"errors"

	"docportal/models"
)

// ErrUnknownUser is returned by IssueToken for emails with no account.
var ErrUnknownUser = errors.New("no account exists for this email")

// Service manages portal accounts, role checks and token issuance.
type Service interface {
	// Register creates a new account.
	Register(u *models.User) (*models.User, error)
	// List retrieves all accounts.
	List() ([]models.User, error)
	// IsAdmin reports whether the account with this email holds the admin role.
	IsAdmin(email string) (bool, error)
	// GrantAdmin promotes the account with the given ID to admin.
	GrantAdmin(id string) error
	// IssueToken returns a signed bearer token for an existing account, or
	// ErrUnknownUser when no account matches the email.
	IssueToken(email string) (string, error)
}
