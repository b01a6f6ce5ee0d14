package user

import (
	"errors"
)

// Common errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidRole  = errors.New("invalid role")
)

// Service handles user directory lookups
type Service struct {
	repo *Repository
}

// NewService creates a new user service with repository dependency injected
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// GetByID retrieves a user by their ID
func (s *Service) GetByID(id string) (*User, error) {
	user := s.repo.GetByID(id)
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// List returns all users
func (s *Service) List() []User {
	return s.repo.List()
}

// ListByRole filters users by role
func (s *Service) ListByRole(role Role) []User {
	return s.repo.ListByRole(role)
}

// ListAdmins returns the admin accounts
func (s *Service) ListAdmins() []User {
	return s.repo.ListByRole(RoleAdmin)
}

// ListRegular returns the non-admin accounts
func (s *Service) ListRegular() []User {
	return s.repo.ListByRole(RoleUser)
}

// Count returns the number of users
func (s *Service) Count() int {
	return s.repo.Count()
}

// NameOf returns the display name for id, or "" when the id is unknown.
func (s *Service) NameOf(id string) string {
	if u := s.repo.GetByID(id); u != nil {
		return u.Name
	}
	return ""
}
