package settlement

import (
	"errors"

	"github.com/twogather/twogather/internal/event"
	"github.com/twogather/twogather/internal/i18n"
	"github.com/twogather/twogather/internal/participant"
)

// Common errors
var (
	ErrNotHost = errors.New("only the host can view the settlement")
)

// EventLookup resolves events.
type EventLookup interface {
	GetByID(id string) (*event.Event, error)
}

// Ledger lists the participants of an event.
type Ledger interface {
	ListByEvent(eventID string) []participant.Participant
}

// Translator renders message keys.
type Translator interface {
	T(locale, key string, data map[string]any) string
}

// Service computes settlement views
type Service struct {
	events EventLookup
	ledger Ledger
	tr     Translator
}

// NewService creates a new settlement service
func NewService(events EventLookup, ledger Ledger, tr Translator) *Service {
	return &Service{events: events, ledger: ledger, tr: tr}
}

// Compute builds the settlement of e from its participants.
func Compute(e *event.Event, participants []participant.Participant) *Settlement {
	s := &Settlement{
		EventID:       e.ID,
		EventTitle:    e.Title,
		HostID:        e.HostID,
		CostPerPerson: e.CostPerPerson,
		Payments:      []Entry{},
		Unpaid:        []Entry{},
	}

	for _, p := range participants {
		if !p.Confirmed() {
			continue
		}
		entry := Entry{
			ParticipantID: p.ID,
			UserID:        p.UserID,
			UserName:      p.UserName,
			Amount:        e.CostPerPerson,
			Paid:          p.PaymentConfirmed,
		}
		s.Confirmed++
		s.Payments = append(s.Payments, entry)
		if p.PaymentConfirmed {
			s.Paid++
		} else {
			s.Unpaid = append(s.Unpaid, entry)
		}
	}

	s.Expected = e.CostPerPerson * int64(s.Confirmed)
	s.Collected = e.CostPerPerson * int64(s.Paid)
	s.Outstanding = s.Expected - s.Collected

	s.Status = StatusSettled
	if len(s.Unpaid) > 0 {
		s.Status = StatusOutstanding
	}
	return s
}

// GetForHost returns the settlement of eventID if userID hosts it
func (s *Service) GetForHost(eventID, userID string) (*Settlement, error) {
	e, err := s.events.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if e.HostID != userID {
		return nil, ErrNotHost
	}
	return Compute(e, s.ledger.ListByEvent(eventID)), nil
}

// Describe renders st for locale with formatted amounts and a summary line.
func (s *Service) Describe(st *Settlement, locale string) *SettlementResponse {
	summary := s.tr.T(locale, "settlement.settled", nil)
	if st.Status == StatusOutstanding {
		summary = s.tr.T(locale, "settlement.summary", map[string]any{
			"Paid":        st.Paid,
			"Confirmed":   st.Confirmed,
			"Outstanding": i18n.FormatAmount(locale, st.Outstanding),
		})
	}

	return &SettlementResponse{
		Settlement:           st,
		CostPerPersonDisplay: i18n.FormatAmount(locale, st.CostPerPerson),
		OutstandingDisplay:   i18n.FormatAmount(locale, st.Outstanding),
		Summary:              summary,
	}
}
