package settlement

// Status reports whether every confirmed participant has paid
type Status string

const (
	StatusSettled     Status = "settled"
	StatusOutstanding Status = "outstanding"
)

// Entry is one confirmed participant's share of the event cost
type Entry struct {
	ParticipantID string `json:"participant_id"`
	UserID        string `json:"user_id"`
	UserName      string `json:"user_name"`
	Amount        int64  `json:"amount"`
	Paid          bool   `json:"paid"`
}

// Settlement is the per-event accounting of confirmed participants' fees.
// Amounts are integer won.
type Settlement struct {
	EventID       string  `json:"event_id"`
	EventTitle    string  `json:"event_title"`
	HostID        string  `json:"host_id"`
	CostPerPerson int64   `json:"cost_per_person"`
	Confirmed     int     `json:"confirmed"`
	Paid          int     `json:"paid"`
	Expected      int64   `json:"expected"`
	Collected     int64   `json:"collected"`
	Outstanding   int64   `json:"outstanding"`
	Status        Status  `json:"status"`
	Payments      []Entry `json:"payments"`
	Unpaid        []Entry `json:"unpaid"`
}
