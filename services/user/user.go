package user

import (
	"fmt"
	"time"

	userRepo "docportal/database/repository/user"
	"docportal/models"
	"docportal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TokenValidity is how long issued bearer tokens remain valid.
const TokenValidity = time.Hour

// DefaultUserService is the production user service.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Register creates a new account.
func (s *DefaultUserService) Register(u *models.User) (*models.User, error) {
	u.ID = uuid.New().String()

	if err := s.Repo.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// List retrieves all accounts.
func (s *DefaultUserService) List() ([]models.User, error) {
	return s.Repo.GetAll()
}

// IsAdmin reports whether the account with this email holds the admin role.
// Unknown emails are simply not admins.
func (s *DefaultUserService) IsAdmin(email string) (bool, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return false, fmt.Errorf("failed to look up role for %s: %w", email, err)
	}
	return usr != nil && usr.IsAdmin(), nil
}

// GrantAdmin promotes the account with the given ID to admin.
func (s *DefaultUserService) GrantAdmin(id string) error {
	return s.Repo.SetRole(id, models.RoleAdmin)
}

// IssueToken returns a signed bearer token carrying the email claim when an
// account exists for the email.
func (s *DefaultUserService) IssueToken(email string) (string, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return "", fmt.Errorf("failed to look up account for %s: %w", email, err)
	}
	if usr == nil {
		return "", ErrUnknownUser
	}

	token, err := utils.GenerateToken(email, TokenValidity)
	if err != nil {
		return "", fmt.Errorf("failed to sign token for %s: %w", email, err)
	}

	utils.GetLogger().Debug("issued bearer token", zap.String("email", email))
	return token, nil
}
