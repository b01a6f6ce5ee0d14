package dataset

import (
	"fmt"
	"time"

	"github.com/twogather/twogather/internal/notification"
)

type notificationSeed struct {
	userID  string
	eventID string
	typ     notification.Type
	variant string
	data    map[string]any
	read    bool
	age     time.Duration
}

var notificationSeeds = []notificationSeed{
	{"user-003", "event-002", notification.TypeInvitation, "", nil, false, 30 * time.Minute},
	{"user-004", "event-001", notification.TypeEventUpdate, "time", map[string]any{"From": "09:00", "To": "10:00"}, false, 2 * time.Hour},
	{"user-005", "event-004", notification.TypePaymentRequest, "", nil, false, 5 * time.Hour},
	{"user-006", "event-016", notification.TypeCancellation, "", nil, true, 8 * time.Hour},
	{"user-007", "event-005", notification.TypeInvitation, "", nil, true, day},
	{"user-008", "event-007", notification.TypeEventUpdate, "location", nil, false, day},
	{"user-009", "event-003", notification.TypePaymentRequest, "", nil, true, 2 * day},
	{"user-010", "event-010", notification.TypeEventUpdate, "time", map[string]any{"From": "14:00", "To": "15:00"}, true, 3 * day},
	{"user-003", "event-009", notification.TypeInvitation, "", nil, true, 4 * day},
	{"user-004", "event-011", notification.TypePaymentRequest, "", nil, false, 5 * day},
	{"user-005", "event-013", notification.TypeInvitation, "", nil, true, 6 * day},
	{"user-006", "event-014", notification.TypeEventUpdate, "capacity", map[string]any{"From": 10, "To": 12}, true, 7 * day},
	{"user-007", "event-008", notification.TypePaymentRequest, "", nil, true, 8 * day},
	{"user-008", "event-012", notification.TypeEventUpdate, "description", nil, true, 9 * day},
	{"user-009", "event-015", notification.TypeInvitation, "", nil, true, 10 * day},
	{"user-010", "event-017", notification.TypePaymentRequest, "", nil, true, 11 * day},
	{"user-003", "event-018", notification.TypeInvitation, "", nil, true, 12 * day},
	{"user-004", "event-019", notification.TypeEventUpdate, "details", map[string]any{"Field": "영화 제목"}, true, 13 * day},
	{"user-005", "event-020", notification.TypeInvitation, "", nil, true, 14 * day},
	{"user-006", "event-006", notification.TypePaymentRequest, "", nil, true, 15 * day},
}

// NotificationDrafts returns the fixture feed, unrendered, relative to now.
func NotificationDrafts(now time.Time) []notification.Draft {
	out := make([]notification.Draft, 0, len(notificationSeeds))
	for i, s := range notificationSeeds {
		out = append(out, notification.Draft{
			ID:        fmt.Sprintf("notif-%03d", i+1),
			UserID:    s.userID,
			EventID:   s.eventID,
			Type:      s.typ,
			Variant:   s.variant,
			Data:      s.data,
			Read:      s.read,
			CreatedAt: now.Add(-s.age),
		})
	}
	return out
}
