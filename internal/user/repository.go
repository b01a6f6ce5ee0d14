package user

// Repository serves users from an immutable in-memory roster
type Repository struct {
	users []User
	byID  map[string]int
}

// NewRepository creates a new user repository over the given roster.
// The slice is copied; later changes by the caller are not observed.
func NewRepository(users []User) *Repository {
	r := &Repository{
		users: append([]User(nil), users...),
		byID:  make(map[string]int, len(users)),
	}
	for i, u := range r.users {
		if _, dup := r.byID[u.ID]; !dup {
			r.byID[u.ID] = i
		}
	}
	return r
}

// GetByID retrieves a user by their ID, or nil when absent
func (r *Repository) GetByID(id string) *User {
	i, ok := r.byID[id]
	if !ok {
		return nil
	}
	u := r.users[i]
	return &u
}

// List returns every user in roster order
func (r *Repository) List() []User {
	return append([]User(nil), r.users...)
}

// ListByRole returns the users holding role
func (r *Repository) ListByRole(role Role) []User {
	out := []User{}
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out
}

// Count returns the roster size
func (r *Repository) Count() int {
	return len(r.users)
}
