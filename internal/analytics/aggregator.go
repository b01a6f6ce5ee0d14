// Package analytics derives admin dashboard statistics from the catalog and ledger.
package analytics

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/twogather/twogather/internal/event"
	"github.com/twogather/twogather/internal/lib/random"
	"github.com/twogather/twogather/internal/participant"
)

const (
	trendMonths   = 12
	activityDays  = 30
	topEventCount = 5

	activeUserRatio = 0.6
)

// Translator renders message keys.
type Translator interface {
	T(locale, key string, data map[string]any) string
}

// Source is the data the aggregator reads.
type Source struct {
	Events       []event.Event
	Participants []participant.Participant
	UserCount    int
}

// Aggregator computes statistics over an immutable Source.
// Placeholder series draw from a private seeded source.
type Aggregator struct {
	src Source
	tr  Translator
	now func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// New creates an aggregator. now defaults to time.Now.
func New(src Source, seed int64, tr Translator, now func() time.Time) *Aggregator {
	if now == nil {
		now = time.Now
	}
	return &Aggregator{
		src: src,
		tr:  tr,
		now: now,
		rng: random.NewSource(seed),
	}
}

// round rounds half up, matching JavaScript's Math.round.
func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

func (a *Aggregator) intn(lo, hi int) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return lo + a.rng.Intn(hi-lo+1)
}

// CategoryDistribution counts events per category. Empty categories are omitted.
func (a *Aggregator) CategoryDistribution(locale string) []CategoryShare {
	total := len(a.src.Events)
	counts := make(map[event.Category]int, len(event.Categories))
	for _, e := range a.src.Events {
		counts[e.Category]++
	}

	out := []CategoryShare{}
	for _, c := range event.Categories {
		n := counts[c]
		if n == 0 {
			continue
		}
		out = append(out, CategoryShare{
			Category:   c,
			Label:      a.tr.T(locale, c.LabelKey(), nil),
			Count:      n,
			Percentage: round(float64(n) / float64(total) * 100),
		})
	}
	return out
}

// MonthlyTrend returns twelve placeholder points, oldest month first.
func (a *Aggregator) MonthlyTrend(locale string) []MonthlyPoint {
	now := a.now()
	out := make([]MonthlyPoint, 0, trendMonths)
	for i := trendMonths - 1; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		out = append(out, MonthlyPoint{
			Month: month.Format("2006-01"),
			Label: a.tr.T(locale, "analytics.month_label", map[string]any{"Month": fmt.Sprintf("%02d", int(month.Month()))}),
			Count: a.intn(1, 8),
		})
	}
	return out
}

// DailyActiveUsers returns thirty placeholder points, oldest day first.
func (a *Aggregator) DailyActiveUsers() []DailyPoint {
	now := a.now()
	out := make([]DailyPoint, 0, activityDays)
	for i := activityDays - 1; i >= 0; i-- {
		out = append(out, DailyPoint{
			Date:        now.AddDate(0, 0, -i).Format("01/02"),
			ActiveUsers: a.intn(5, 20),
		})
	}
	return out
}

// DashboardMetrics returns the headline numbers. ThisMonthEvents and
// ActiveUsers are placeholders.
func (a *Aggregator) DashboardMetrics() DashboardMetrics {
	m := DashboardMetrics{
		TotalEvents:     len(a.src.Events),
		TotalUsers:      a.src.UserCount,
		ThisMonthEvents: a.intn(3, 12),
		ActiveUsers:     int(math.Floor(float64(a.src.UserCount) * activeUserRatio)),
	}

	var participants int
	for i := range a.src.Events {
		e := &a.src.Events[i]
		participants += e.CurrentParticipants
		switch e.Status {
		case event.StatusCompleted:
			m.CompletedEvents++
			m.TotalRevenue += e.TotalCost()
		case event.StatusUpcoming, event.StatusOngoing:
			m.UpcomingEvents++
		case event.StatusCancelled:
		}
	}

	if m.TotalEvents > 0 {
		avg := float64(participants) / float64(m.TotalEvents)
		m.AverageParticipants = float64(round(avg*10)) / 10
	}
	return m
}

// AverageCostByCategory returns the rounded mean cost per person for each
// category that has events.
func (a *Aggregator) AverageCostByCategory(locale string) []CategoryCost {
	sums := make(map[event.Category]int64, len(event.Categories))
	counts := make(map[event.Category]int, len(event.Categories))
	for _, e := range a.src.Events {
		sums[e.Category] += e.CostPerPerson
		counts[e.Category]++
	}

	out := []CategoryCost{}
	for _, c := range event.Categories {
		if counts[c] == 0 {
			continue
		}
		out = append(out, CategoryCost{
			Category:    c,
			Label:       a.tr.T(locale, c.LabelKey(), nil),
			AverageCost: int64(round(float64(sums[c]) / float64(counts[c]))),
		})
	}
	return out
}

// StatusDistribution counts events per status, including empty ones.
func (a *Aggregator) StatusDistribution(locale string) []StatusCount {
	counts := make(map[event.Status]int, len(event.Statuses))
	for _, e := range a.src.Events {
		counts[e.Status]++
	}

	out := make([]StatusCount, 0, len(event.Statuses))
	for _, st := range event.Statuses {
		out = append(out, StatusCount{
			Status: st,
			Label:  a.tr.T(locale, st.LabelKey(), nil),
			Count:  counts[st],
		})
	}
	return out
}

// ParticipationRate reports mean, highest and lowest occupancy.
// An empty catalog yields zeros.
func (a *Aggregator) ParticipationRate() ParticipationRate {
	if len(a.src.Events) == 0 {
		return ParticipationRate{}
	}

	sum := 0.0
	highest := math.Inf(-1)
	lowest := math.Inf(1)
	for i := range a.src.Events {
		rate := a.src.Events[i].ParticipationRate()
		sum += rate
		highest = math.Max(highest, rate)
		lowest = math.Min(lowest, rate)
	}

	return ParticipationRate{
		Average: round(sum / float64(len(a.src.Events))),
		Highest: round(highest),
		Lowest:  round(lowest),
	}
}

// PaymentCompletionRate is paid confirmed over all confirmed participants, in percent.
func (a *Aggregator) PaymentCompletionRate() int {
	var confirmed, paid int
	for i := range a.src.Participants {
		p := &a.src.Participants[i]
		if !p.Confirmed() {
			continue
		}
		confirmed++
		if p.PaymentConfirmed {
			paid++
		}
	}
	if confirmed == 0 {
		return 0
	}
	return round(float64(paid) / float64(confirmed) * 100)
}

// AttendanceRate is attended over confirmed participants of completed events, in percent.
func (a *Aggregator) AttendanceRate() int {
	completed := make(map[string]bool)
	for _, e := range a.src.Events {
		if e.Status == event.StatusCompleted {
			completed[e.ID] = true
		}
	}

	var total, attended int
	for i := range a.src.Participants {
		p := &a.src.Participants[i]
		if !completed[p.EventID] || !p.Confirmed() {
			continue
		}
		total++
		if p.Attended {
			attended++
		}
	}
	if total == 0 {
		return 0
	}
	return round(float64(attended) / float64(total) * 100)
}

// TopEvents returns the five events with the most participants.
// Ties keep catalog order.
func (a *Aggregator) TopEvents(locale string) []TopEvent {
	ranked := append([]event.Event(nil), a.src.Events...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CurrentParticipants > ranked[j].CurrentParticipants
	})
	if len(ranked) > topEventCount {
		ranked = ranked[:topEventCount]
	}

	out := make([]TopEvent, len(ranked))
	for i := range ranked {
		e := &ranked[i]
		out[i] = TopEvent{
			ID:                e.ID,
			Title:             e.Title,
			Category:          e.Category,
			Label:             a.tr.T(locale, e.Category.LabelKey(), nil),
			Participants:      e.CurrentParticipants,
			ParticipationRate: round(e.ParticipationRate()),
		}
	}
	return out
}
