package participant

// ParticipantResponse represents a single participation
type ParticipantResponse struct {
	ID               string  `json:"id"`
	EventID          string  `json:"event_id"`
	UserID           string  `json:"user_id"`
	UserName         string  `json:"user_name"`
	UserAvatar       *string `json:"user_avatar,omitempty"`
	Status           Status  `json:"status"`
	StatusLabel      string  `json:"status_label"`
	Attended         bool    `json:"attended"`
	PaymentConfirmed bool    `json:"payment_confirmed"`
	JoinedAt         string  `json:"joined_at"`
}

// EventParticipantsResponse lists an event's participants with head counts
type EventParticipantsResponse struct {
	EventID      string                 `json:"event_id"`
	Confirmed    int                    `json:"confirmed"`
	Attended     int                    `json:"attended"`
	Paid         int                    `json:"paid"`
	Participants []*ParticipantResponse `json:"participants"`
}

// MyParticipationsResponse lists the caller's participations
type MyParticipationsResponse struct {
	EventIDs       []string               `json:"event_ids"`
	Participations []*ParticipantResponse `json:"participations"`
}

// ToResponse converts a Participant model to a ParticipantResponse DTO
func (p *Participant) ToResponse(label func(key string) string) *ParticipantResponse {
	return &ParticipantResponse{
		ID:               p.ID,
		EventID:          p.EventID,
		UserID:           p.UserID,
		UserName:         p.UserName,
		UserAvatar:       p.UserAvatar,
		Status:           p.Status,
		StatusLabel:      label(p.Status.LabelKey()),
		Attended:         p.Attended,
		PaymentConfirmed: p.PaymentConfirmed,
		JoinedAt:         p.JoinedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

func toResponses(items []Participant, label func(string) string) []*ParticipantResponse {
	out := make([]*ParticipantResponse, len(items))
	for i := range items {
		out[i] = items[i].ToResponse(label)
	}
	return out
}
