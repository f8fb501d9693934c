package user

import (
	"errors"
	"testing"

	"docportal/models"
	"docportal/utils"

	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users []models.User
}

func (f *fakeUserRepo) Create(u *models.User) error {
	f.users = append(f.users, *u)
	return nil
}

func (f *fakeUserRepo) GetAll() ([]models.User, error) { return f.users, nil }

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			return &f.users[i], nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) SetRole(id, role string) error {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users[i].Role = role
			return nil
		}
	}
	return errors.New("user not found")
}

func TestIssueTokenUnknownEmail(t *testing.T) {
	svc := &DefaultUserService{Repo: &fakeUserRepo{}}

	token, err := svc.IssueToken("unknown@x.com")
	require.ErrorIs(t, err, ErrUnknownUser)
	require.Empty(t, token)
}

func TestIssueTokenCarriesEmailClaim(t *testing.T) {
	repo := &fakeUserRepo{users: []models.User{{ID: "u-1", Email: "e@x.com"}}}
	svc := &DefaultUserService{Repo: repo}

	token, err := svc.IssueToken("e@x.com")
	require.NoError(t, err)

	email, err := utils.ExtractEmailFromToken(token)
	require.NoError(t, err)
	require.Equal(t, "e@x.com", email)
}

func TestIsAdmin(t *testing.T) {
	repo := &fakeUserRepo{users: []models.User{
		{ID: "u-1", Email: "admin@x.com", Role: models.RoleAdmin},
		{ID: "u-2", Email: "plain@x.com"},
	}}
	svc := &DefaultUserService{Repo: repo}

	isAdmin, err := svc.IsAdmin("admin@x.com")
	require.NoError(t, err)
	require.True(t, isAdmin)

	isAdmin, err = svc.IsAdmin("plain@x.com")
	require.NoError(t, err)
	require.False(t, isAdmin)

	// Unknown emails are simply not admins.
	isAdmin, err = svc.IsAdmin("nobody@x.com")
	require.NoError(t, err)
	require.False(t, isAdmin)
}

func TestGrantAdmin(t *testing.T) {
	repo := &fakeUserRepo{users: []models.User{{ID: "u-2", Email: "plain@x.com"}}}
	svc := &DefaultUserService{Repo: repo}

	require.NoError(t, svc.GrantAdmin("u-2"))
	require.True(t, repo.users[0].IsAdmin())
}

func TestRegisterAssignsID(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := &DefaultUserService{Repo: repo}

	created, err := svc.Register(&models.User{Name: "Pat", Email: "pat@x.com"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
}
