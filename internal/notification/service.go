package notification

import (
	"errors"
)

// Common errors
var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotRecipient         = errors.New("not the recipient of this notification")
	ErrInvalidType          = errors.New("invalid notification type")
)

// Service handles notification feed queries
type Service struct {
	repo *Repository
}

// NewService creates a new notification service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// GetByID retrieves a notification by its ID
func (s *Service) GetByID(id string) (*Notification, error) {
	n := s.repo.GetByID(id)
	if n == nil {
		return nil, ErrNotificationNotFound
	}
	return n, nil
}

// GetForRecipient retrieves a notification only if userID received it
func (s *Service) GetForRecipient(id, userID string) (*Notification, error) {
	n, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if n.UserID != userID {
		return nil, ErrNotRecipient
	}
	return n, nil
}

// ListByUser returns a user's notifications, newest first
func (s *Service) ListByUser(userID string) []Notification {
	return s.repo.ListByUser(userID)
}

func (s *Service) filter(userID string, keep func(*Notification) bool) []Notification {
	out := []Notification{}
	for _, n := range s.repo.ListByUser(userID) {
		if keep(&n) {
			out = append(out, n)
		}
	}
	return out
}

// ListUnread returns a user's unread notifications, newest first
func (s *Service) ListUnread(userID string) []Notification {
	return s.filter(userID, func(n *Notification) bool { return !n.Read })
}

// CountUnread returns the count of unread notifications
func (s *Service) CountUnread(userID string) int {
	return len(s.ListUnread(userID))
}

// ListByType returns a user's notifications of type t, newest first
func (s *Service) ListByType(userID string, t Type) []Notification {
	return s.filter(userID, func(n *Notification) bool { return n.Type == t })
}

// ListByEvent returns notifications about an event
func (s *Service) ListByEvent(eventID string) []Notification {
	return s.repo.ListByEvent(eventID)
}

// All returns the whole feed
func (s *Service) All() []Notification {
	return s.repo.List()
}
