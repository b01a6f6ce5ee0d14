package analytics

import (
	"github.com/twogather/twogather/internal/event"
)

// CategoryShare is one slice of the category distribution
type CategoryShare struct {
	Category   event.Category `json:"category"`
	Label      string         `json:"label"`
	Count      int            `json:"count"`
	Percentage int            `json:"percentage"`
}

// MonthlyPoint is one month of the event creation trend
type MonthlyPoint struct {
	Month string `json:"month"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// DailyPoint is one day of the active-user series
type DailyPoint struct {
	Date        string `json:"date"`
	ActiveUsers int    `json:"active_users"`
}

// DashboardMetrics are the headline numbers of the admin dashboard
type DashboardMetrics struct {
	TotalEvents         int     `json:"total_events"`
	TotalUsers          int     `json:"total_users"`
	ThisMonthEvents     int     `json:"this_month_events"`
	ActiveUsers         int     `json:"active_users"`
	CompletedEvents     int     `json:"completed_events"`
	UpcomingEvents      int     `json:"upcoming_events"`
	TotalRevenue        int64   `json:"total_revenue"`
	AverageParticipants float64 `json:"average_participants"`
}

// CategoryCost is the mean cost per person in a category
type CategoryCost struct {
	Category    event.Category `json:"category"`
	Label       string         `json:"label"`
	AverageCost int64          `json:"average_cost"`
}

// StatusCount is the number of events in a status
type StatusCount struct {
	Status event.Status `json:"status"`
	Label  string       `json:"label"`
	Count  int          `json:"count"`
}

// ParticipationRate summarises current/max occupancy in percent
type ParticipationRate struct {
	Average int `json:"average_rate"`
	Highest int `json:"highest_rate"`
	Lowest  int `json:"lowest_rate"`
}

// TopEvent is an event ranked by headcount
type TopEvent struct {
	ID                string         `json:"id"`
	Title             string         `json:"title"`
	Category          event.Category `json:"category"`
	Label             string         `json:"label"`
	Participants      int            `json:"participants"`
	ParticipationRate int            `json:"participation_rate"`
}
