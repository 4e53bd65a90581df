package model

import "time"

// Certificate is a file issued by a faculty member to an alumni for a past event.
// FileURL is a short-lived download link filled in on read.
type Certificate struct {
	ID          string    `json:"id"`
	AlumniID    string    `json:"alumni_id"`
	EventID     string    `json:"event_id"`
	EventTitle  string    `json:"event_title,omitempty"`
	FacultyID   string    `json:"faculty_id"`
	Title       string    `json:"title"`
	FileKey     string    `json:"-"`
	FileURL     string    `json:"file_url,omitempty"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	IssuedAt    time.Time `json:"issued_at"`
}
