package event

import (
	"errors"
)

// Common errors
var (
	ErrEventNotFound   = errors.New("event not found")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrNotHost         = errors.New("only the host can manage this event")
)

// HostDirectory resolves host display names.
type HostDirectory interface {
	NameOf(userID string) string
}

// Filter narrows List; zero fields match everything.
type Filter struct {
	Category Category
	Status   Status
	HostID   string
}

// Service handles event catalog queries
type Service struct {
	repo  *Repository
	hosts HostDirectory
}

// NewService creates a new event service with dependencies injected
func NewService(repo *Repository, hosts HostDirectory) *Service {
	return &Service{repo: repo, hosts: hosts}
}

// HostName returns the display name of the event host, or "" when the host is unknown.
func (s *Service) HostName(e *Event) string {
	if s.hosts == nil {
		return ""
	}
	return s.hosts.NameOf(e.HostID)
}

// GetByID retrieves an event by ID
func (s *Service) GetByID(id string) (*Event, error) {
	e := s.repo.GetByID(id)
	if e == nil {
		return nil, ErrEventNotFound
	}
	return e, nil
}

// GetByShareToken retrieves an event by its public share token
func (s *Service) GetByShareToken(token string) (*Event, error) {
	if token == "" {
		return nil, ErrEventNotFound
	}
	e := s.repo.GetByShareToken(token)
	if e == nil {
		return nil, ErrEventNotFound
	}
	return e, nil
}

// List returns the catalog narrowed by f
func (s *Service) List(f Filter) []Event {
	return s.repo.Filter(func(e *Event) bool {
		if f.Category != "" && e.Category != f.Category {
			return false
		}
		if f.Status != "" && e.Status != f.Status {
			return false
		}
		if f.HostID != "" && e.HostID != f.HostID {
			return false
		}
		return true
	})
}

// ListByCategory returns events in category c
func (s *Service) ListByCategory(c Category) []Event {
	return s.repo.Filter(func(e *Event) bool { return e.Category == c })
}

// ListByStatus returns events in status st
func (s *Service) ListByStatus(st Status) []Event {
	return s.repo.Filter(func(e *Event) bool { return e.Status == st })
}

// ListByHost returns events hosted by hostID
func (s *Service) ListByHost(hostID string) []Event {
	return s.repo.Filter(func(e *Event) bool { return e.HostID == hostID })
}

// ListUpcoming returns upcoming and ongoing events
func (s *Service) ListUpcoming() []Event {
	return s.repo.Filter(func(e *Event) bool { return e.Active() })
}

// ListCompleted returns completed events
func (s *Service) ListCompleted() []Event {
	return s.ListByStatus(StatusCompleted)
}

// All returns every event
func (s *Service) All() []Event {
	return s.repo.List()
}

// AuthorizeHost returns the event when userID hosts it.
func (s *Service) AuthorizeHost(eventID, userID string) (*Event, error) {
	e, err := s.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if e.HostID != userID {
		return nil, ErrNotHost
	}
	return e, nil
}
