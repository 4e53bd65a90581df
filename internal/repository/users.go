package repository

import (
	"context"

	"alumniportal/internal/model"
)

// UserRepository persists accounts and their role profiles.
type UserRepository interface {
	// Create inserts a bare account (used for admins).
	Create(ctx context.Context, u *model.User) (*model.User, error)
	// CreateAlumni inserts the account and its alumni profile atomically.
	CreateAlumni(ctx context.Context, u *model.User, a *model.Alumni) (*model.User, error)
	// CreateFaculty inserts the account and its faculty profile atomically.
	CreateFaculty(ctx context.Context, u *model.User, f *model.Faculty) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	// FindByEmail matches the lower-cased email.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// Delete removes the account; profiles cascade.
	Delete(ctx context.Context, id string) error
}

// DirectoryFilter narrows alumni and faculty listings.
// Query is a case-insensitive substring matched against the text columns.
type DirectoryFilter struct {
	Query          string
	Department     string
	GraduationYear int
}

// AlumniRepository reads and updates alumni profiles.
type AlumniRepository interface {
	List(ctx context.Context, f DirectoryFilter, pq PageQuery) (*PageResult[model.Alumni], error)
	FindByID(ctx context.Context, id string) (*model.Alumni, error)
	Update(ctx context.Context, a *model.Alumni) (*model.Alumni, error)
}

// FacultyRepository reads and updates faculty profiles.
type FacultyRepository interface {
	List(ctx context.Context, f DirectoryFilter, pq PageQuery) (*PageResult[model.Faculty], error)
	FindByID(ctx context.Context, id string) (*model.Faculty, error)
	Update(ctx context.Context, f *model.Faculty) (*model.Faculty, error)
}
