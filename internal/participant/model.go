package participant

import (
	"fmt"
	"time"
)

// Status is a participant's standing in an event.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is a known participant status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

func (s Status) LabelKey() string { return "participant_status." + string(s) }

// ParseStatus converts a raw string into a Status.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return st, nil
}

// Participant is a user's recorded relationship to an event
type Participant struct {
	ID               string    `json:"id"`
	EventID          string    `json:"event_id"`
	UserID           string    `json:"user_id"`
	UserName         string    `json:"user_name"`
	UserAvatar       *string   `json:"user_avatar,omitempty"`
	Status           Status    `json:"status"`
	Attended         bool      `json:"attended"`
	PaymentConfirmed bool      `json:"payment_confirmed"`
	JoinedAt         time.Time `json:"joined_at"`
}

// Confirmed reports whether the participant holds a confirmed seat.
func (p *Participant) Confirmed() bool {
	return p.Status == StatusConfirmed
}

// Unpaid reports whether a confirmed participant still owes the fee.
func (p *Participant) Unpaid() bool {
	return p.Confirmed() && !p.PaymentConfirmed
}
