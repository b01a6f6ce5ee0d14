package notification

import (
	"sort"
)

// Repository serves the notification feed from memory
type Repository struct {
	items  []Notification
	byID   map[string]int
	byUser map[string][]int
}

// NewRepository indexes the feed. Per-user lists are kept newest first.
func NewRepository(items []Notification) *Repository {
	r := &Repository{
		items:  append([]Notification(nil), items...),
		byID:   make(map[string]int, len(items)),
		byUser: make(map[string][]int),
	}
	for i, n := range r.items {
		if _, dup := r.byID[n.ID]; !dup {
			r.byID[n.ID] = i
		}
		r.byUser[n.UserID] = append(r.byUser[n.UserID], i)
	}
	for _, idx := range r.byUser {
		sort.SliceStable(idx, func(a, b int) bool {
			return r.items[idx[a]].CreatedAt.After(r.items[idx[b]].CreatedAt)
		})
	}
	return r
}

// GetByID retrieves a notification by its ID, or nil when absent
func (r *Repository) GetByID(id string) *Notification {
	i, ok := r.byID[id]
	if !ok {
		return nil
	}
	n := r.items[i]
	return &n
}

// ListByUser returns a user's notifications, newest first
func (r *Repository) ListByUser(userID string) []Notification {
	idx := r.byUser[userID]
	out := make([]Notification, len(idx))
	for i, j := range idx {
		out[i] = r.items[j]
	}
	return out
}

// ListByEvent returns notifications about an event in feed order
func (r *Repository) ListByEvent(eventID string) []Notification {
	out := []Notification{}
	for _, n := range r.items {
		if n.EventID == eventID {
			out = append(out, n)
		}
	}
	return out
}

// List returns the whole feed
func (r *Repository) List() []Notification {
	return append([]Notification(nil), r.items...)
}
