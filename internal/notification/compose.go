package notification

import (
	"maps"

	"github.com/twogather/twogather/internal/event"
	"github.com/twogather/twogather/internal/i18n"
)

// Translator renders message keys.
type Translator interface {
	T(locale, key string, data map[string]any) string
}

// MessageKeys returns the title and message keys for a notification type.
func MessageKeys(t Type, variant string) (title, message string) {
	prefix := "notification." + string(t)
	switch t {
	case TypeEventUpdate:
		if variant == "" {
			variant = "details"
		}
		return prefix + ".title", prefix + "." + variant
	case TypeInvitation, TypePaymentRequest, TypeCancellation:
		return prefix + ".title", prefix + ".message"
	}
	return prefix + ".title", prefix + ".message"
}

// Compose renders d against its event in locale. hostName fills invitation
// messages and the event's cost per person fills payment requests.
func Compose(d Draft, e *event.Event, hostName string, tr Translator, locale string) Notification {
	data := map[string]any{
		"EventTitle": e.Title,
		"HostName":   hostName,
		"Amount":     i18n.FormatAmount(locale, e.CostPerPerson),
	}
	maps.Copy(data, d.Data)

	titleKey, messageKey := MessageKeys(d.Type, d.Variant)

	return Notification{
		ID:         d.ID,
		UserID:     d.UserID,
		EventID:    d.EventID,
		EventTitle: e.Title,
		Type:       d.Type,
		Title:      tr.T(locale, titleKey, data),
		Message:    tr.T(locale, messageKey, data),
		Read:       d.Read,
		CreatedAt:  d.CreatedAt,
	}
}
