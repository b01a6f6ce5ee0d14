package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

func testFeed() []Notification {
	mk := func(id, user, ev string, t Type, read bool, age time.Duration) Notification {
		return Notification{
			ID: id, UserID: user, EventID: ev, EventTitle: "title " + ev, Type: t,
			Title: "t", Message: "m", Read: read, CreatedAt: now.Add(-age),
		}
	}
	return []Notification{
		mk("notification-001", "user-003", "event-002", TypeInvitation, false, 30*time.Minute),
		mk("notification-009", "user-003", "event-009", TypeInvitation, true, 4*24*time.Hour),
		mk("notification-017", "user-003", "event-018", TypePaymentRequest, true, 12*24*time.Hour),
		mk("notification-005", "user-003", "event-005", TypePaymentRequest, false, time.Hour),
		mk("notification-002", "user-004", "event-001", TypeEventUpdate, false, 2*time.Hour),
		mk("notification-010", "user-004", "event-002", TypePaymentRequest, true, 5*24*time.Hour),
	}
}

func TestService_ListByUserNewestFirst(t *testing.T) {
	t.Parallel()

	svc := NewService(NewRepository(testFeed()))

	got := svc.ListByUser("user-003")
	require.Len(t, got, 4)
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].CreatedAt.After(got[i-1].CreatedAt), "not sorted at %d", i)
	}
	assert.Equal(t, "notification-001", got[0].ID)
	assert.Equal(t, "notification-017", got[3].ID)

	assert.Empty(t, svc.ListByUser("user-404"))
}

func TestService_Unread(t *testing.T) {
	t.Parallel()

	svc := NewService(NewRepository(testFeed()))

	unread := svc.ListUnread("user-003")
	require.Len(t, unread, 2)
	assert.Equal(t, "notification-001", unread[0].ID)
	assert.Equal(t, "notification-005", unread[1].ID)

	assert.Equal(t, 2, svc.CountUnread("user-003"))
	assert.Equal(t, 1, svc.CountUnread("user-004"))
	assert.Equal(t, 0, svc.CountUnread("user-404"))
}

func TestService_Filters(t *testing.T) {
	t.Parallel()

	svc := NewService(NewRepository(testFeed()))

	payments := svc.ListByType("user-003", TypePaymentRequest)
	require.Len(t, payments, 2)
	assert.Equal(t, "notification-005", payments[0].ID)

	assert.Empty(t, svc.ListByType("user-003", TypeCancellation))

	byEvent := svc.ListByEvent("event-002")
	require.Len(t, byEvent, 2)
	assert.Equal(t, "notification-001", byEvent[0].ID)
	assert.Equal(t, "notification-010", byEvent[1].ID)
}

func TestService_GetForRecipient(t *testing.T) {
	t.Parallel()

	svc := NewService(NewRepository(testFeed()))

	n, err := svc.GetForRecipient("notification-002", "user-004")
	require.NoError(t, err)
	assert.Equal(t, TypeEventUpdate, n.Type)

	_, err = svc.GetForRecipient("notification-002", "user-003")
	assert.ErrorIs(t, err, ErrNotRecipient)

	_, err = svc.GetByID("notification-404")
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestParseType(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"invitation", "event_update", "payment_request", "cancellation"} {
		got, err := ParseType(raw)
		require.NoError(t, err)
		assert.Equal(t, Type(raw), got)
	}

	_, err := ParseType("reminder")
	assert.ErrorIs(t, err, ErrInvalidType)
}
