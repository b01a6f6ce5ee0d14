package participant

import (
	"errors"

	"github.com/twogather/twogather/internal/event"
)

// Common errors
var (
	ErrParticipantNotFound = errors.New("participant not found")
	ErrInvalidStatus       = errors.New("invalid participant status")
	ErrHostCannotJoin      = errors.New("host cannot join their own event")
	ErrAlreadyJoined       = errors.New("already participating in this event")
	ErrEventClosed         = errors.New("event is not open for participation")
	ErrEventFull           = errors.New("event is full")
)

// EventLookup resolves events for join/leave checks.
type EventLookup interface {
	GetByID(id string) (*event.Event, error)
}

// Service handles participation ledger queries
type Service struct {
	repo   *Repository
	events EventLookup
}

// NewService creates a new participant service with dependencies injected
func NewService(repo *Repository, events EventLookup) *Service {
	return &Service{repo: repo, events: events}
}

// ListByEvent returns the participants of an event
func (s *Service) ListByEvent(eventID string) []Participant {
	return s.repo.ListByEvent(eventID)
}

// ListByUser returns every participation of a user
func (s *Service) ListByUser(userID string) []Participant {
	return s.repo.ListByUser(userID)
}

// Get returns a single (event, user) participation
func (s *Service) Get(eventID, userID string) (*Participant, error) {
	p := s.repo.Get(eventID, userID)
	if p == nil {
		return nil, ErrParticipantNotFound
	}
	return p, nil
}

// All returns the whole ledger
func (s *Service) All() []Participant {
	return s.repo.List()
}

func (s *Service) count(eventID string, keep func(*Participant) bool) int {
	n := 0
	for _, p := range s.repo.ListByEvent(eventID) {
		if keep(&p) {
			n++
		}
	}
	return n
}

// CountConfirmed counts confirmed participants of an event
func (s *Service) CountConfirmed(eventID string) int {
	return s.count(eventID, (*Participant).Confirmed)
}

// CountAttended counts participants marked as attended
func (s *Service) CountAttended(eventID string) int {
	return s.count(eventID, func(p *Participant) bool { return p.Attended })
}

// CountPaid counts participants whose payment is confirmed
func (s *Service) CountPaid(eventID string) int {
	return s.count(eventID, func(p *Participant) bool { return p.PaymentConfirmed })
}

// ListUnpaid returns confirmed participants that have not paid
func (s *Service) ListUnpaid(eventID string) []Participant {
	out := []Participant{}
	for _, p := range s.repo.ListByEvent(eventID) {
		if p.Unpaid() {
			out = append(out, p)
		}
	}
	return out
}

// ParticipatedEventIDs returns the events a user holds a confirmed seat in
func (s *Service) ParticipatedEventIDs(userID string) []string {
	out := []string{}
	for _, p := range s.repo.ListByUser(userID) {
		if p.Confirmed() {
			out = append(out, p.EventID)
		}
	}
	return out
}

// CheckJoin reports whether userID may join eventID. Nothing is recorded.
func (s *Service) CheckJoin(eventID, userID string) (*event.Event, error) {
	e, err := s.events.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if e.HostID == userID {
		return nil, ErrHostCannotJoin
	}
	if !e.Active() {
		return nil, ErrEventClosed
	}
	if p := s.repo.Get(eventID, userID); p != nil && p.Status != StatusCancelled {
		return nil, ErrAlreadyJoined
	}
	if e.CurrentParticipants >= e.MaxParticipants {
		return nil, ErrEventFull
	}
	return e, nil
}

// CheckLeave returns the participation userID would give up. Nothing is recorded.
func (s *Service) CheckLeave(eventID, userID string) (*Participant, error) {
	if _, err := s.events.GetByID(eventID); err != nil {
		return nil, err
	}
	p := s.repo.Get(eventID, userID)
	if p == nil || p.Status == StatusCancelled {
		return nil, ErrParticipantNotFound
	}
	return p, nil
}
