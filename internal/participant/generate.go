package participant

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/twogather/twogather/internal/event"
	"github.com/twogather/twogather/internal/lib/random"
	"github.com/twogather/twogather/internal/user"
)

// Draw thresholds. A flag is set when the uniform draw exceeds its threshold.
const (
	completedAttendThreshold = 0.2
	completedPaidThreshold   = 0.15
	ongoingPaidThreshold     = 0.5
	upcomingPendingThreshold = 0.9
	upcomingPaidThreshold    = 0.7
)

const joinInterval = 24 * time.Hour

// Generate builds the participation ledger for events from the users roster.
// The result depends only on its arguments: one source seeded with seed is
// drawn in event order, then candidate order.
func Generate(events []event.Event, users []user.User, seed int64) []Participant {
	rng := random.NewSource(seed)
	out := []Participant{}

	for _, e := range events {
		pool := candidates(users, e.HostID)
		if len(pool) == 0 {
			continue
		}

		target := min(e.CurrentParticipants, len(pool))
		for i := 0; i < target; i++ {
			u := pool[i%len(pool)]

			p := Participant{
				ID:         fmt.Sprintf("participant-%03d", len(out)+1),
				EventID:    e.ID,
				UserID:     u.ID,
				UserName:   u.Name,
				UserAvatar: u.AvatarURL,
				JoinedAt:   e.CreatedAt.Add(time.Duration(i) * joinInterval),
			}
			drawFlags(rng, e.Status, &p)

			out = append(out, p)
		}
	}

	return out
}

func candidates(users []user.User, hostID string) []user.User {
	pool := make([]user.User, 0, len(users))
	for _, u := range users {
		if u.ID != hostID {
			pool = append(pool, u)
		}
	}
	return pool
}

func drawFlags(rng *rand.Rand, st event.Status, p *Participant) {
	switch st {
	case event.StatusCompleted:
		p.Status = StatusConfirmed
		p.Attended = rng.Float64() > completedAttendThreshold
		p.PaymentConfirmed = rng.Float64() > completedPaidThreshold
	case event.StatusOngoing:
		p.Status = StatusConfirmed
		p.PaymentConfirmed = rng.Float64() > ongoingPaidThreshold
	case event.StatusUpcoming:
		p.Status = StatusConfirmed
		if rng.Float64() > upcomingPendingThreshold {
			p.Status = StatusPending
		}
		p.PaymentConfirmed = rng.Float64() > upcomingPaidThreshold
	case event.StatusCancelled:
		p.Status = StatusCancelled
	}
}
