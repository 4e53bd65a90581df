package model

import "time"

// JobType classifies a job opportunity.
type JobType string

const (
	JobFullTime   JobType = "FULL_TIME"
	JobPartTime   JobType = "PART_TIME"
	JobInternship JobType = "INTERNSHIP"
	JobContract   JobType = "CONTRACT"
)

// JobOpportunity is a posting created by an alumni, visible publicly once approved.
type JobOpportunity struct {
	ID          string     `json:"id"`
	AlumniID    string     `json:"alumni_id"`
	PostedBy    string     `json:"posted_by,omitempty"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	JobType     JobType    `json:"job_type"`
	Description string     `json:"description"`
	ApplyURL    string     `json:"apply_url"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Status      Status     `json:"status"`
	AdminNote   string     `json:"admin_note"`
	CreatedAt   time.Time  `json:"created_at"`
	DecidedAt   *time.Time `json:"decided_at,omitempty"`
}
