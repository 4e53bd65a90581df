package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"alumniportal/internal/auth"
	"alumniportal/internal/model"
	"alumniportal/internal/repository"
)

// RegisterInput is the alumni self-registration form.
type RegisterInput struct {
	Name           string `json:"name" validate:"required,max=120"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8,max=72"`
	EnrollmentNo   string `json:"enrollment_no" validate:"max=40"`
	Department     string `json:"department" validate:"required,max=80"`
	GraduationYear int    `json:"graduation_year" validate:"required,min=1950,max=2100"`
}

// CreateFacultyInput is the admin form for adding a faculty account.
type CreateFacultyInput struct {
	Name        string `json:"name" validate:"required,max=120"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
	Department  string `json:"department" validate:"required,max=80"`
	Designation string `json:"designation" validate:"max=80"`
	Phone       string `json:"phone" validate:"max=30"`
}

// AuthResult is returned by successful sign-in or registration.
type AuthResult struct {
	Token     string      `json:"-"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      *model.User `json:"user"`
}

// AuthService covers accounts and sign-in.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Me(ctx context.Context, userID string) (*model.User, error)
	CreateFaculty(ctx context.Context, in CreateFacultyInput) (*model.User, error)
	// EnsureAdmin creates the bootstrap admin if no account uses email.
	// It reports whether an account was created.
	EnsureAdmin(ctx context.Context, name, email, password string) (bool, error)
}

type authService struct {
	users  repository.UserRepository
	tokens *auth.TokenManager
	cost   int
	clock  clock
}

// NewAuthService constructs a new AuthService.
func NewAuthService(users repository.UserRepository, tokens *auth.TokenManager) AuthService {
	return &authService{users: users, tokens: tokens, cost: bcrypt.DefaultCost}
}

// dummyHash keeps the unknown-email path as slow as a wrong password.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.MinCost)

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// maxPasswordBytes is bcrypt's input limit.
const maxPasswordBytes = 72

func (s *authService) newUser(name, email, password string, role model.Role) (*model.User, error) {
	if len(password) > maxPasswordBytes {
		return nil, invalid("password", "must be at most 72 bytes")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return &model.User{
		ID:           uuid.NewString(),
		Email:        normalizeEmail(email),
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(name),
		Role:         role,
		CreatedAt:    s.clock.now(),
	}, nil
}

func (s *authService) issue(u *model.User) (*AuthResult, error) {
	token, exp, err := s.tokens.Issue(u)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, ExpiresAt: exp.UTC(), User: u}, nil
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	u, err := s.newUser(in.Name, in.Email, in.Password, model.RoleAlumni)
	if err != nil {
		return nil, err
	}
	profile := &model.Alumni{
		EnrollmentNo:   strings.TrimSpace(in.EnrollmentNo),
		Department:     strings.TrimSpace(in.Department),
		GraduationYear: in.GraduationYear,
	}
	created, err := s.users.CreateAlumni(ctx, u, profile)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return s.issue(created)
}

func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issue(u)
}

func (s *authService) Me(ctx context.Context, userID string) (*model.User, error) {
	if userID == "" {
		return nil, ErrIDRequired
	}
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return u, nil
}

func (s *authService) CreateFaculty(ctx context.Context, in CreateFacultyInput) (*model.User, error) {
	u, err := s.newUser(in.Name, in.Email, in.Password, model.RoleFaculty)
	if err != nil {
		return nil, err
	}
	profile := &model.Faculty{
		Department:  strings.TrimSpace(in.Department),
		Designation: strings.TrimSpace(in.Designation),
		Phone:       strings.TrimSpace(in.Phone),
	}
	created, err := s.users.CreateFaculty(ctx, u, profile)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return created, nil
}

func (s *authService) EnsureAdmin(ctx context.Context, name, email, password string) (bool, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return false, nil
	}
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return false, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return false, err
	}
	u, err := s.newUser(name, email, password, model.RoleAdmin)
	if err != nil {
		return false, err
	}
	if _, err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
