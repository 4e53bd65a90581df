package model

import "time"

// EventRequest is an event proposed by an alumni and reviewed by an admin.
// FacultyID and EventID are set once the request is approved.
type EventRequest struct {
	ID           string     `json:"id"`
	AlumniID     string     `json:"alumni_id"`
	AlumniName   string     `json:"alumni_name,omitempty"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Venue        string     `json:"venue"`
	ProposedDate time.Time  `json:"proposed_date"`
	Status       Status     `json:"status"`
	FacultyID    *string    `json:"faculty_id,omitempty"`
	EventID      *string    `json:"event_id,omitempty"`
	AdminNote    string     `json:"admin_note"`
	CreatedAt    time.Time  `json:"created_at"`
	DecidedAt    *time.Time `json:"decided_at,omitempty"`
}

// Event is a scheduled event shown on the public pages.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Venue       string    `json:"venue"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	BannerKey   string    `json:"-"`
	BannerURL   string    `json:"banner_url,omitempty"`
	FacultyID   *string   `json:"faculty_id,omitempty"`
	RequestID   *string   `json:"request_id,omitempty"`
	CreatedBy   *string   `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Finished reports whether the event has ended at now.
func (e Event) Finished(now time.Time) bool {
	return !e.EndsAt.After(now)
}
