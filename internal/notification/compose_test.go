package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/twogather/twogather/internal/event"
	"github.com/twogather/twogather/internal/i18n"
	"github.com/twogather/twogather/internal/lib/logger/handlers/slogdiscard"
)

func TestCompose(t *testing.T) {
	t.Parallel()

	tr := i18n.NewTranslator("ko", slogdiscard.NewDiscardLogger())
	e := &event.Event{ID: "event-004", Title: "축구 풋살 게임", CostPerPerson: 12000}
	at := time.Date(2025, 10, 1, 7, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		draft       Draft
		locale      string
		wantTitle   string
		wantMessage string
	}{
		{
			name:        "invitation",
			draft:       Draft{ID: "n-1", UserID: "user-003", EventID: e.ID, Type: TypeInvitation},
			locale:      "en",
			wantTitle:   "New event invitation",
			wantMessage: "David Lee invited you to '축구 풋살 게임'.",
		},
		{
			name:        "payment request formats amount",
			draft:       Draft{ID: "n-2", UserID: "user-005", EventID: e.ID, Type: TypePaymentRequest},
			locale:      "ko",
			wantTitle:   "정산 요청",
			wantMessage: "'축구 풋살 게임'의 참가비 12,000원을 정산해 주세요.",
		},
		{
			name: "time update",
			draft: Draft{ID: "n-3", UserID: "user-004", EventID: e.ID, Type: TypeEventUpdate,
				Variant: "time", Data: map[string]any{"From": "09:00", "To": "10:00"}},
			locale:      "en",
			wantTitle:   "Event updated",
			wantMessage: "The time of '축구 풋살 게임' changed from 09:00 to 10:00.",
		},
		{
			name:        "cancellation",
			draft:       Draft{ID: "n-4", UserID: "user-006", EventID: e.ID, Type: TypeCancellation, Read: true},
			locale:      "en",
			wantTitle:   "Event cancelled",
			wantMessage: "'축구 풋살 게임' was cancelled. Fees will be refunded automatically.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := tt.draft
			d.CreatedAt = at
			n := Compose(d, e, "David Lee", tr, tt.locale)

			assert.Equal(t, tt.wantTitle, n.Title)
			assert.Equal(t, tt.wantMessage, n.Message)
			assert.Equal(t, e.Title, n.EventTitle)
			assert.Equal(t, d.Read, n.Read)
			assert.Equal(t, at, n.CreatedAt)
		})
	}
}

func TestMessageKeys(t *testing.T) {
	t.Parallel()

	title, msg := MessageKeys(TypeEventUpdate, "")
	assert.Equal(t, "notification.event_update.title", title)
	assert.Equal(t, "notification.event_update.details", msg)

	_, msg = MessageKeys(TypeInvitation, "ignored")
	assert.Equal(t, "notification.invitation.message", msg)
}
