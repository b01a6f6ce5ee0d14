package event

// UpdateStatusRequest represents the request body for changing an event status
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=upcoming ongoing completed cancelled"`
	Reason string `json:"reason,omitempty" validate:"max=200"`
}

// CreateEventRequest represents the request body for creating an event
type CreateEventRequest struct {
	Title           string `json:"title" validate:"required,max=100"`
	Description     string `json:"description" validate:"max=2000"`
	Category        string `json:"category" validate:"required,oneof=swimming fitness social sports study dining"`
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime       string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime         string `json:"end_time" validate:"required,datetime=15:04"`
	Location        string `json:"location" validate:"required,max=200"`
	MaxParticipants int    `json:"max_participants" validate:"required,min=1"`
	CostPerPerson   int64  `json:"cost_per_person" validate:"min=0"`
}

// UpdateEventRequest represents the request body for editing an event.
// Omitted fields keep their current value.
type UpdateEventRequest struct {
	Title           *string `json:"title,omitempty" validate:"omitempty,min=1,max=100"`
	Description     *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Category        *string `json:"category,omitempty" validate:"omitempty,oneof=swimming fitness social sports study dining"`
	Date            *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartTime       *string `json:"start_time,omitempty" validate:"omitempty,datetime=15:04"`
	EndTime         *string `json:"end_time,omitempty" validate:"omitempty,datetime=15:04"`
	Location        *string `json:"location,omitempty" validate:"omitempty,min=1,max=200"`
	MaxParticipants *int    `json:"max_participants,omitempty" validate:"omitempty,min=1"`
	CostPerPerson   *int64  `json:"cost_per_person,omitempty" validate:"omitempty,min=0"`
}

// Fields lists the JSON names of the fields present in the request
func (r *UpdateEventRequest) Fields() []string {
	var out []string
	add := func(set bool, name string) {
		if set {
			out = append(out, name)
		}
	}
	add(r.Title != nil, "title")
	add(r.Description != nil, "description")
	add(r.Category != nil, "category")
	add(r.Date != nil, "date")
	add(r.StartTime != nil, "start_time")
	add(r.EndTime != nil, "end_time")
	add(r.Location != nil, "location")
	add(r.MaxParticipants != nil, "max_participants")
	add(r.CostPerPerson != nil, "cost_per_person")
	return out
}

// EventResponse represents the response for a single event
type EventResponse struct {
	ID                  string   `json:"id"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Category            Category `json:"category"`
	CategoryLabel       string   `json:"category_label"`
	Status              Status   `json:"status"`
	StatusLabel         string   `json:"status_label"`
	HostID              string   `json:"host_id"`
	HostName            string   `json:"host_name"`
	Date                string   `json:"date"`
	StartTime           string   `json:"start_time"`
	EndTime             string   `json:"end_time"`
	Location            string   `json:"location"`
	MaxParticipants     int      `json:"max_participants"`
	CurrentParticipants int      `json:"current_participants"`
	CostPerPerson       int64    `json:"cost_per_person"`
	TotalCost           int64    `json:"total_cost"`
	ShareLinkToken      string   `json:"share_link_token"`
	CreatedAt           string   `json:"created_at"`
	UpdatedAt           string   `json:"updated_at"`
}

// ToResponse converts an Event model to an EventResponse DTO.
// label translates a message key into the caller's locale.
func (e *Event) ToResponse(hostName string, label func(key string) string) *EventResponse {
	return &EventResponse{
		ID:                  e.ID,
		Title:               e.Title,
		Description:         e.Description,
		Category:            e.Category,
		CategoryLabel:       label(e.Category.LabelKey()),
		Status:              e.Status,
		StatusLabel:         label(e.Status.LabelKey()),
		HostID:              e.HostID,
		HostName:            hostName,
		Date:                e.Date.Format("2006-01-02"),
		StartTime:           e.StartTime,
		EndTime:             e.EndTime,
		Location:            e.Location,
		MaxParticipants:     e.MaxParticipants,
		CurrentParticipants: e.CurrentParticipants,
		CostPerPerson:       e.CostPerPerson,
		TotalCost:           e.TotalCost(),
		ShareLinkToken:      e.ShareLinkToken,
		CreatedAt:           e.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		UpdatedAt:           e.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}
