package event

import (
	"fmt"
	"time"
)

// Category classifies an event.
type Category string

const (
	CategorySwimming Category = "swimming"
	CategoryFitness  Category = "fitness"
	CategorySocial   Category = "social"
	CategorySports   Category = "sports"
	CategoryStudy    Category = "study"
	CategoryDining   Category = "dining"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategorySwimming,
	CategoryFitness,
	CategorySocial,
	CategorySports,
	CategoryStudy,
	CategoryDining,
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategorySwimming, CategoryFitness, CategorySocial, CategorySports, CategoryStudy, CategoryDining:
		return true
	}
	return false
}

// LabelKey is the translation key of the category label.
func (c Category) LabelKey() string { return "category." + string(c) }

// ParseCategory converts a raw string into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
	return c, nil
}

// Status is the lifecycle state of an event.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Statuses lists every status in lifecycle order.
var Statuses = []Status{StatusUpcoming, StatusOngoing, StatusCompleted, StatusCancelled}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusUpcoming, StatusOngoing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func (s Status) LabelKey() string { return "status." + string(s) }

// ParseStatus converts a raw string into a Status.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return st, nil
}

// clockLayout is the format of StartTime and EndTime
const clockLayout = "15:04"

// Event represents a scheduled meetup
type Event struct {
	ID                  string    `json:"id" validate:"required"`
	Title               string    `json:"title" validate:"required"`
	Description         string    `json:"description"`
	Category            Category  `json:"category" validate:"required,enum"`
	Status              Status    `json:"status" validate:"required,enum"`
	HostID              string    `json:"host_id" validate:"required"`
	Date                time.Time `json:"date" validate:"required"`
	StartTime           string    `json:"start_time" validate:"required,datetime=15:04"`
	EndTime             string    `json:"end_time" validate:"required,datetime=15:04"`
	Location            string    `json:"location" validate:"required"`
	MaxParticipants     int       `json:"max_participants" validate:"min=1"`
	CurrentParticipants int       `json:"current_participants" validate:"min=0,ltefield=MaxParticipants"`
	CostPerPerson       int64     `json:"cost_per_person" validate:"min=0"`
	ShareLinkToken      string    `json:"share_link_token" validate:"required"`
	CreatedAt           time.Time `json:"created_at" validate:"required"`
	UpdatedAt           time.Time `json:"updated_at" validate:"required"`
}

// TotalCost is the cost per person times the declared headcount.
func (e *Event) TotalCost() int64 {
	return e.CostPerPerson * int64(e.CurrentParticipants)
}

// ParticipationRate is current over max as a percentage, unrounded.
func (e *Event) ParticipationRate() float64 {
	if e.MaxParticipants <= 0 {
		return 0
	}
	return float64(e.CurrentParticipants) / float64(e.MaxParticipants) * 100
}

// Active reports whether the event has not yet finished.
func (e *Event) Active() bool {
	switch e.Status {
	case StatusUpcoming, StatusOngoing:
		return true
	case StatusCompleted, StatusCancelled:
		return false
	}
	return false
}
