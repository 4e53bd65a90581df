package model

import (
	"strings"
	"time"
)

// Role identifies which dashboard a user belongs to.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleAlumni  Role = "ALUMNI"
	RoleFaculty Role = "FACULTY"
)

// ParseRole accepts any casing of a known role.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	switch r {
	case RoleAdmin, RoleAlumni, RoleFaculty:
		return r, true
	}
	return "", false
}

// Slug is the lower-case path segment of the role's dashboard, e.g. "alumni".
func (r Role) Slug() string {
	return strings.ToLower(string(r))
}

// User is an account that can sign in. PasswordHash never leaves the service.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
