package service

import (
	"context"
	"strings"

	"alumniportal/internal/model"
	"alumniportal/internal/repository"
	"alumniportal/internal/storage"
)

// DirectoryQuery filters the alumni and faculty directories.
type DirectoryQuery struct {
	Query          string
	Department     string
	GraduationYear int
	Limit          int
	Offset         int
}

// AlumniProfileInput is the editable part of an alumni profile.
type AlumniProfileInput struct {
	Name           string `json:"name" validate:"required,max=120"`
	EnrollmentNo   string `json:"enrollment_no" validate:"max=40"`
	Department     string `json:"department" validate:"required,max=80"`
	GraduationYear int    `json:"graduation_year" validate:"required,min=1950,max=2100"`
	Company        string `json:"company" validate:"max=120"`
	Designation    string `json:"designation" validate:"max=80"`
	Phone          string `json:"phone" validate:"max=30"`
	LinkedInURL    string `json:"linkedin_url" validate:"omitempty,url,max=300"`
	Location       string `json:"location" validate:"max=120"`
	Bio            string `json:"bio" validate:"max=2000"`
}

// FacultyProfileInput is the editable part of a faculty profile.
type FacultyProfileInput struct {
	Name        string `json:"name" validate:"required,max=120"`
	Department  string `json:"department" validate:"required,max=80"`
	Designation string `json:"designation" validate:"max=80"`
	Phone       string `json:"phone" validate:"max=30"`
}

// DirectoryService lists and maintains alumni and faculty profiles.
type DirectoryService interface {
	ListAlumni(ctx context.Context, q DirectoryQuery) (*ListResult[model.Alumni], error)
	GetAlumni(ctx context.Context, id string) (*model.Alumni, error)
	UpdateAlumni(ctx context.Context, id string, in AlumniProfileInput) (*model.Alumni, error)
	ListFaculty(ctx context.Context, q DirectoryQuery) (*ListResult[model.Faculty], error)
	GetFaculty(ctx context.Context, id string) (*model.Faculty, error)
	UpdateFaculty(ctx context.Context, id string, in FacultyProfileInput) (*model.Faculty, error)
	// DeleteUser removes an account of the expected role together with the
	// files of the certificates it received or issued.
	DeleteUser(ctx context.Context, id string, role model.Role) error
}

type directoryService struct {
	users   repository.UserRepository
	alumni  repository.AlumniRepository
	faculty repository.FacultyRepository
	certs   repository.CertificateRepository
	store   storage.Storage
	clock   clock
}

// NewDirectoryService constructs a new DirectoryService. Certificate files of
// deleted accounts are removed from store.
func NewDirectoryService(
	users repository.UserRepository,
	alumni repository.AlumniRepository,
	faculty repository.FacultyRepository,
	certs repository.CertificateRepository,
	store storage.Storage,
) DirectoryService {
	return &directoryService{users: users, alumni: alumni, faculty: faculty, certs: certs, store: store}
}

func (s *directoryService) ListAlumni(ctx context.Context, q DirectoryQuery) (*ListResult[model.Alumni], error) {
	pq := pageQuery(q.Limit, q.Offset)
	res, err := s.alumni.List(ctx, repository.DirectoryFilter{
		Query:          strings.TrimSpace(q.Query),
		Department:     strings.TrimSpace(q.Department),
		GraduationYear: q.GraduationYear,
	}, pq)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return toList(res, pq), nil
}

func (s *directoryService) GetAlumni(ctx context.Context, id string) (*model.Alumni, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	a, err := s.alumni.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return a, nil
}

func (s *directoryService) UpdateAlumni(ctx context.Context, id string, in AlumniProfileInput) (*model.Alumni, error) {
	current, err := s.GetAlumni(ctx, id)
	if err != nil {
		return nil, err
	}
	current.Name = strings.TrimSpace(in.Name)
	current.EnrollmentNo = strings.TrimSpace(in.EnrollmentNo)
	current.Department = strings.TrimSpace(in.Department)
	current.GraduationYear = in.GraduationYear
	current.Company = strings.TrimSpace(in.Company)
	current.Designation = strings.TrimSpace(in.Designation)
	current.Phone = strings.TrimSpace(in.Phone)
	current.LinkedInURL = strings.TrimSpace(in.LinkedInURL)
	current.Location = strings.TrimSpace(in.Location)
	current.Bio = strings.TrimSpace(in.Bio)
	current.UpdatedAt = s.clock.now()

	updated, err := s.alumni.Update(ctx, current)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return updated, nil
}

func (s *directoryService) ListFaculty(ctx context.Context, q DirectoryQuery) (*ListResult[model.Faculty], error) {
	pq := pageQuery(q.Limit, q.Offset)
	res, err := s.faculty.List(ctx, repository.DirectoryFilter{
		Query:      strings.TrimSpace(q.Query),
		Department: strings.TrimSpace(q.Department),
	}, pq)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return toList(res, pq), nil
}

func (s *directoryService) GetFaculty(ctx context.Context, id string) (*model.Faculty, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	f, err := s.faculty.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return f, nil
}

func (s *directoryService) UpdateFaculty(ctx context.Context, id string, in FacultyProfileInput) (*model.Faculty, error) {
	current, err := s.GetFaculty(ctx, id)
	if err != nil {
		return nil, err
	}
	current.Name = strings.TrimSpace(in.Name)
	current.Department = strings.TrimSpace(in.Department)
	current.Designation = strings.TrimSpace(in.Designation)
	current.Phone = strings.TrimSpace(in.Phone)
	current.UpdatedAt = s.clock.now()

	updated, err := s.faculty.Update(ctx, current)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return updated, nil
}

func (s *directoryService) DeleteUser(ctx context.Context, id string, role model.Role) error {
	if id == "" {
		return ErrIDRequired
	}
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return mapRepoErr(err)
	}
	if u.Role != role {
		return ErrNotFound
	}

	var f repository.CertificateFilter
	switch role {
	case model.RoleAlumni:
		f.AlumniID = id
	case model.RoleFaculty:
		f.FacultyID = id
	}
	if f != (repository.CertificateFilter{}) {
		if err := removeCertificateFiles(ctx, s.certs, s.store, f); err != nil {
			return err
		}
	}
	return mapRepoErr(s.users.Delete(ctx, id))
}
