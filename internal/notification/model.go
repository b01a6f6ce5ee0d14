package notification

import (
	"fmt"
	"time"
)

// Type classifies a notification
type Type string

const (
	TypeInvitation     Type = "invitation"
	TypeEventUpdate    Type = "event_update"
	TypePaymentRequest Type = "payment_request"
	TypeCancellation   Type = "cancellation"
)

// Valid reports whether t is a known notification type.
func (t Type) Valid() bool {
	switch t {
	case TypeInvitation, TypeEventUpdate, TypePaymentRequest, TypeCancellation:
		return true
	}
	return false
}

// ParseType converts a raw string into a Type.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
	}
	return t, nil
}

// Notification represents a notification in the system
type Notification struct {
	ID         string    `json:"id" validate:"required"`
	UserID     string    `json:"user_id" validate:"required"`
	EventID    string    `json:"event_id" validate:"required"`
	EventTitle string    `json:"event_title"`
	Type       Type      `json:"type" validate:"required,enum"`
	Title      string    `json:"title" validate:"required"`
	Message    string    `json:"message" validate:"required"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at" validate:"required"`
}

// Draft is a notification before its text is rendered. Variant selects the
// event_update message; Data carries extra template values.
type Draft struct {
	ID        string
	UserID    string
	EventID   string
	Type      Type
	Variant   string
	Data      map[string]any
	Read      bool
	CreatedAt time.Time
}
