package event

// Repository serves events from an immutable in-memory catalog
type Repository struct {
	events  []Event
	byID    map[string]int
	byToken map[string]int
}

// NewRepository creates a new event repository over the given catalog.
func NewRepository(events []Event) *Repository {
	r := &Repository{
		events:  append([]Event(nil), events...),
		byID:    make(map[string]int, len(events)),
		byToken: make(map[string]int, len(events)),
	}
	for i, e := range r.events {
		if _, dup := r.byID[e.ID]; !dup {
			r.byID[e.ID] = i
		}
		if _, dup := r.byToken[e.ShareLinkToken]; !dup {
			r.byToken[e.ShareLinkToken] = i
		}
	}
	return r
}

// GetByID retrieves an event by ID, or nil when absent
func (r *Repository) GetByID(id string) *Event {
	i, ok := r.byID[id]
	if !ok {
		return nil
	}
	e := r.events[i]
	return &e
}

// GetByShareToken retrieves an event by its share link token, or nil when absent
func (r *Repository) GetByShareToken(token string) *Event {
	i, ok := r.byToken[token]
	if !ok {
		return nil
	}
	e := r.events[i]
	return &e
}

// List returns the catalog in roster order
func (r *Repository) List() []Event {
	return append([]Event(nil), r.events...)
}

// Filter returns the events matching keep, in roster order
func (r *Repository) Filter(keep func(*Event) bool) []Event {
	out := []Event{}
	for i := range r.events {
		if keep(&r.events[i]) {
			out = append(out, r.events[i])
		}
	}
	return out
}
