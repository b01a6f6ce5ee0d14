package participant

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twogather/twogather/internal/event"
	"github.com/twogather/twogather/internal/user"
)

var created = time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC)

func testUsers(n int) []user.User {
	out := make([]user.User, n)
	for i := range out {
		out[i] = user.User{
			ID:   fmt.Sprintf("user-%03d", i+1),
			Name: fmt.Sprintf("User %d", i+1),
			Role: user.RoleUser,
		}
	}
	return out
}

func testEvent(id string, st event.Status, host string, max, cur int) event.Event {
	return event.Event{
		ID: id, Status: st, HostID: host, Category: event.CategorySocial,
		MaxParticipants: max, CurrentParticipants: cur, CostPerPerson: 10000,
		CreatedAt: created,
	}
}

func testEvents() []event.Event {
	return []event.Event{
		testEvent("event-001", event.StatusUpcoming, "user-003", 10, 7),
		testEvent("event-002", event.StatusOngoing, "user-004", 8, 8),
		testEvent("event-003", event.StatusCompleted, "user-005", 12, 9),
		testEvent("event-004", event.StatusCancelled, "user-003", 6, 3),
		testEvent("event-005", event.StatusCompleted, "user-001", 20, 18),
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	users, events := testUsers(10), testEvents()

	a := Generate(events, users, 42)
	b := Generate(events, users, 42)
	assert.Equal(t, a, b)

	c := Generate(events, users, 43)
	assert.NotEqual(t, a, c)
}

func TestGenerate_Structure(t *testing.T) {
	t.Parallel()

	users, events := testUsers(10), testEvents()

	for seed := int64(1); seed <= 50; seed++ {
		ledger := Generate(events, users, seed)

		perEvent := map[string]int{}
		seen := map[string]bool{}
		hosts := map[string]string{}
		for _, e := range events {
			hosts[e.ID] = e.HostID
		}

		for i, p := range ledger {
			assert.Equal(t, fmt.Sprintf("participant-%03d", i+1), p.ID)

			host, ok := hosts[p.EventID]
			require.True(t, ok, "unknown event %s", p.EventID)
			assert.NotEqual(t, host, p.UserID, "host participates in own event")

			key := p.EventID + "/" + p.UserID
			assert.False(t, seen[key], "duplicate pair %s", key)
			seen[key] = true

			assert.Equal(t, created.Add(time.Duration(perEvent[p.EventID])*24*time.Hour), p.JoinedAt)
			perEvent[p.EventID]++
		}

		for _, e := range events {
			assert.Equal(t, min(e.CurrentParticipants, len(users)-1), perEvent[e.ID], e.ID)
		}
	}
}

func TestGenerate_StatusPolicy(t *testing.T) {
	t.Parallel()

	users, events := testUsers(10), testEvents()
	status := map[string]event.Status{}
	for _, e := range events {
		status[e.ID] = e.Status
	}

	for seed := int64(1); seed <= 100; seed++ {
		for _, p := range Generate(events, users, seed) {
			switch status[p.EventID] {
			case event.StatusCancelled:
				assert.Equal(t, StatusCancelled, p.Status)
				assert.False(t, p.Attended)
				assert.False(t, p.PaymentConfirmed)
			case event.StatusCompleted:
				assert.Equal(t, StatusConfirmed, p.Status)
			case event.StatusOngoing:
				assert.Equal(t, StatusConfirmed, p.Status)
				assert.False(t, p.Attended)
			case event.StatusUpcoming:
				assert.Contains(t, []Status{StatusConfirmed, StatusPending}, p.Status)
				assert.False(t, p.Attended)
			}
		}
	}
}

func TestGenerate_Rates(t *testing.T) {
	t.Parallel()

	users, events := testUsers(10), testEvents()
	status := map[string]event.Status{}
	for _, e := range events {
		status[e.ID] = e.Status
	}

	var completed, attended, completedPaid int
	var upcoming, pending int
	for seed := int64(1); seed <= 200; seed++ {
		for _, p := range Generate(events, users, seed) {
			switch status[p.EventID] {
			case event.StatusCompleted:
				completed++
				if p.Attended {
					attended++
				}
				if p.PaymentConfirmed {
					completedPaid++
				}
			case event.StatusUpcoming:
				upcoming++
				if p.Status == StatusPending {
					pending++
				}
			}
		}
	}

	attendRate := float64(attended) / float64(completed)
	assert.True(t, attendRate > 0.70 && attendRate < 0.90, "attendance rate %.3f", attendRate)

	paidRate := float64(completedPaid) / float64(completed)
	assert.True(t, paidRate > 0.75 && paidRate < 0.95, "payment rate %.3f", paidRate)

	pendingRate := float64(pending) / float64(upcoming)
	assert.True(t, pendingRate > 0.03 && pendingRate < 0.20, "pending rate %.3f", pendingRate)
}

func TestGenerate_DrawOrder(t *testing.T) {
	t.Parallel()

	users := testUsers(2)
	events := []event.Event{testEvent("event-001", event.StatusCompleted, "user-001", 5, 1)}

	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		wantAttended := rng.Float64() > 0.2
		wantPaid := rng.Float64() > 0.15

		ledger := Generate(events, users, seed)
		require.Len(t, ledger, 1)
		assert.Equal(t, "user-002", ledger[0].UserID)
		assert.Equal(t, wantAttended, ledger[0].Attended)
		assert.Equal(t, wantPaid, ledger[0].PaymentConfirmed)
	}
}

func TestGenerate_UnderfilledPool(t *testing.T) {
	t.Parallel()

	users := testUsers(3)
	events := []event.Event{testEvent("event-001", event.StatusUpcoming, "user-001", 10, 10)}

	ledger := Generate(events, users, 7)
	require.Len(t, ledger, 2)
	assert.Equal(t, "user-002", ledger[0].UserID)
	assert.Equal(t, "user-003", ledger[1].UserID)

	assert.Empty(t, Generate(events, testUsers(1), 7))
	assert.Empty(t, Generate(nil, users, 7))
}
