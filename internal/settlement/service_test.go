package settlement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twogather/twogather/internal/event"
	"github.com/twogather/twogather/internal/i18n"
	"github.com/twogather/twogather/internal/lib/logger/handlers/slogdiscard"
	"github.com/twogather/twogather/internal/participant"
	"github.com/twogather/twogather/internal/user"
)

func testEvents() []event.Event {
	return []event.Event{
		{ID: "event-003", Title: "친구들과 보드게임 카페", Status: event.StatusCompleted, HostID: "user-005",
			MaxParticipants: 6, CurrentParticipants: 6, CostPerPerson: 20000},
		{ID: "event-016", Title: "수영 접영 마스터 클래스", Status: event.StatusCancelled, HostID: "user-003",
			MaxParticipants: 6, CurrentParticipants: 3, CostPerPerson: 35000},
	}
}

func testLedger() []participant.Participant {
	return []participant.Participant{
		{ID: "participant-001", EventID: "event-003", UserID: "user-001", UserName: "김관리", Status: participant.StatusConfirmed, PaymentConfirmed: true},
		{ID: "participant-002", EventID: "event-003", UserID: "user-002", UserName: "John Admin", Status: participant.StatusConfirmed},
		{ID: "participant-003", EventID: "event-003", UserID: "user-003", UserName: "이소영", Status: participant.StatusPending},
		{ID: "participant-004", EventID: "event-003", UserID: "user-004", UserName: "김민수", Status: participant.StatusConfirmed, PaymentConfirmed: true},
		{ID: "participant-005", EventID: "event-016", UserID: "user-001", UserName: "김관리", Status: participant.StatusCancelled},
	}
}

func newTestService(ledger []participant.Participant) *Service {
	events := event.NewService(event.NewRepository(testEvents()), nil)
	parts := participant.NewService(participant.NewRepository(ledger), events)
	return NewService(events, parts, i18n.NewTranslator("ko", slogdiscard.NewDiscardLogger()))
}

func TestService_GetForHost(t *testing.T) {
	t.Parallel()

	svc := newTestService(testLedger())

	st, err := svc.GetForHost("event-003", "user-005")
	require.NoError(t, err)

	assert.Equal(t, 3, st.Confirmed)
	assert.Equal(t, 2, st.Paid)
	assert.Equal(t, int64(60000), st.Expected)
	assert.Equal(t, int64(40000), st.Collected)
	assert.Equal(t, int64(20000), st.Outstanding)
	assert.Equal(t, StatusOutstanding, st.Status)
	require.Len(t, st.Unpaid, 1)
	assert.Equal(t, "user-002", st.Unpaid[0].UserID)
	assert.Len(t, st.Payments, 3)

	_, err = svc.GetForHost("event-003", "user-001")
	assert.ErrorIs(t, err, ErrNotHost)

	_, err = svc.GetForHost("event-404", "user-005")
	assert.ErrorIs(t, err, event.ErrEventNotFound)
}

func TestService_CancelledEventIsSettled(t *testing.T) {
	t.Parallel()

	st, err := newTestService(testLedger()).GetForHost("event-016", "user-003")
	require.NoError(t, err)

	assert.Equal(t, 0, st.Confirmed)
	assert.Equal(t, int64(0), st.Expected)
	assert.Equal(t, StatusSettled, st.Status)
	assert.Empty(t, st.Unpaid)
}

func TestCompute_MatchesLedger(t *testing.T) {
	t.Parallel()

	users := []user.User{{ID: "user-001"}, {ID: "user-002"}, {ID: "user-003"}, {ID: "user-004"}, {ID: "user-005"}, {ID: "user-006"}, {ID: "user-007"}}
	events := testEvents()

	for seed := int64(1); seed <= 30; seed++ {
		ledger := participant.Generate(events, users, seed)
		parts := participant.NewService(participant.NewRepository(ledger), nil)

		for i := range events {
			st := Compute(&events[i], parts.ListByEvent(events[i].ID))

			assert.Equal(t, st.Expected, st.Collected+st.Outstanding)
			assert.Equal(t, parts.CountConfirmed(events[i].ID), st.Confirmed)

			unpaid := parts.ListUnpaid(events[i].ID)
			require.Len(t, st.Unpaid, len(unpaid))
			for j, p := range unpaid {
				assert.Equal(t, p.ID, st.Unpaid[j].ParticipantID)
			}
		}
	}
}

func TestService_Describe(t *testing.T) {
	t.Parallel()

	svc := newTestService(testLedger())
	st, err := svc.GetForHost("event-003", "user-005")
	require.NoError(t, err)

	ko := svc.Describe(st, "ko")
	assert.Equal(t, "2/3명 정산 완료, 미수금 ₩20,000", ko.Summary)
	assert.Equal(t, "20,000", ko.CostPerPersonDisplay)

	en := svc.Describe(st, "en")
	assert.Equal(t, "2/3 settled, ₩20,000 outstanding", en.Summary)

	settled, err := svc.GetForHost("event-016", "user-003")
	require.NoError(t, err)
	assert.Equal(t, "Every participant has settled.", svc.Describe(settled, "en").Summary)
}
