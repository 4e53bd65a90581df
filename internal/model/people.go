package model

import "time"

// Alumni is the directory profile of an ALUMNI user.
type Alumni struct {
	UserID         string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	EnrollmentNo   string    `json:"enrollment_no"`
	Department     string    `json:"department"`
	GraduationYear int       `json:"graduation_year"`
	Company        string    `json:"company"`
	Designation    string    `json:"designation"`
	Phone          string    `json:"phone"`
	LinkedInURL    string    `json:"linkedin_url"`
	Location       string    `json:"location"`
	Bio            string    `json:"bio"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Faculty is the directory profile of a FACULTY user.
type Faculty struct {
	UserID      string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Department  string    `json:"department"`
	Designation string    `json:"designation"`
	Phone       string    `json:"phone"`
	UpdatedAt   time.Time `json:"updated_at"`
}
