package participant

// Repository serves the generated ledger with per-event and per-user indexes
type Repository struct {
	items   []Participant
	byEvent map[string][]int
	byUser  map[string][]int
}

// NewRepository indexes the given ledger.
func NewRepository(items []Participant) *Repository {
	r := &Repository{
		items:   append([]Participant(nil), items...),
		byEvent: make(map[string][]int),
		byUser:  make(map[string][]int),
	}
	for i, p := range r.items {
		r.byEvent[p.EventID] = append(r.byEvent[p.EventID], i)
		r.byUser[p.UserID] = append(r.byUser[p.UserID], i)
	}
	return r
}

func (r *Repository) collect(idx []int) []Participant {
	out := make([]Participant, len(idx))
	for i, j := range idx {
		out[i] = r.items[j]
	}
	return out
}

// ListByEvent returns the participants of eventID in ledger order
func (r *Repository) ListByEvent(eventID string) []Participant {
	return r.collect(r.byEvent[eventID])
}

// ListByUser returns every participation of userID in ledger order
func (r *Repository) ListByUser(userID string) []Participant {
	return r.collect(r.byUser[userID])
}

// Get returns the (event, user) participation, or nil when absent
func (r *Repository) Get(eventID, userID string) *Participant {
	for _, j := range r.byEvent[eventID] {
		if r.items[j].UserID == userID {
			p := r.items[j]
			return &p
		}
	}
	return nil
}

// List returns the whole ledger
func (r *Repository) List() []Participant {
	return append([]Participant(nil), r.items...)
}
