package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"alumniportal/internal/auth"
	"alumniportal/internal/model"
	"alumniportal/internal/repository"
)

// JobInput is the alumni job posting form.
type JobInput struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Company     string     `json:"company" validate:"required,max=200"`
	Location    string     `json:"location" validate:"max=200"`
	JobType     string     `json:"job_type" validate:"required,oneof=FULL_TIME PART_TIME INTERNSHIP CONTRACT"`
	Description string     `json:"description" validate:"max=8000"`
	ApplyURL    string     `json:"apply_url" validate:"omitempty,url,max=500"`
	Deadline    *time.Time `json:"deadline"`
}

// JobQuery filters job listings.
type JobQuery struct {
	AlumniID string
	Status   model.Status
	JobType  model.JobType
	Query    string
	Limit    int
	Offset   int
}

// JobService covers job postings and their moderation.
type JobService interface {
	Create(ctx context.Context, alumniID string, in JobInput) (*model.JobOpportunity, error)
	List(ctx context.Context, q JobQuery) (*ListResult[model.JobOpportunity], error)
	// ListOpen returns approved postings whose deadline has not passed.
	ListOpen(ctx context.Context, q JobQuery) (*ListResult[model.JobOpportunity], error)
	Get(ctx context.Context, id string) (*model.JobOpportunity, error)
	Approve(ctx context.Context, id, note string) (*model.JobOpportunity, error)
	Reject(ctx context.Context, id, note string) (*model.JobOpportunity, error)
	// Delete lets an admin remove any posting and an alumni remove their own pending one.
	Delete(ctx context.Context, actor auth.Session, id string) error
}

type jobService struct {
	jobs  repository.JobRepository
	clock clock
}

// NewJobService constructs a new JobService.
func NewJobService(jobs repository.JobRepository) JobService {
	return &jobService{jobs: jobs}
}

func (s *jobService) Create(ctx context.Context, alumniID string, in JobInput) (*model.JobOpportunity, error) {
	if alumniID == "" {
		return nil, ErrIDRequired
	}
	now := s.clock.now()
	var deadline *time.Time
	if in.Deadline != nil {
		if in.Deadline.Before(now) {
			return nil, invalid("deadline", "must not be in the past")
		}
		d := in.Deadline.UTC()
		deadline = &d
	}
	j := &model.JobOpportunity{
		ID:          uuid.NewString(),
		AlumniID:    alumniID,
		Title:       strings.TrimSpace(in.Title),
		Company:     strings.TrimSpace(in.Company),
		Location:    strings.TrimSpace(in.Location),
		JobType:     model.JobType(in.JobType),
		Description: strings.TrimSpace(in.Description),
		ApplyURL:    strings.TrimSpace(in.ApplyURL),
		Deadline:    deadline,
		Status:      model.StatusPending,
		CreatedAt:   now,
	}
	created, err := s.jobs.Create(ctx, j)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return created, nil
}

func (s *jobService) filter(q JobQuery) (repository.JobFilter, error) {
	if q.Status != "" && !q.Status.Valid() {
		return repository.JobFilter{}, invalid("status", "must be PENDING, APPROVED or REJECTED")
	}
	return repository.JobFilter{
		AlumniID: q.AlumniID,
		Status:   q.Status,
		JobType:  q.JobType,
		Query:    strings.TrimSpace(q.Query),
	}, nil
}

func (s *jobService) List(ctx context.Context, q JobQuery) (*ListResult[model.JobOpportunity], error) {
	f, err := s.filter(q)
	if err != nil {
		return nil, err
	}
	pq := pageQuery(q.Limit, q.Offset)
	res, err := s.jobs.List(ctx, f, pq)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return toList(res, pq), nil
}

func (s *jobService) ListOpen(ctx context.Context, q JobQuery) (*ListResult[model.JobOpportunity], error) {
	q.Status = model.StatusApproved
	q.AlumniID = ""
	f, err := s.filter(q)
	if err != nil {
		return nil, err
	}
	now := s.clock.now()
	f.OpenAt = &now
	pq := pageQuery(q.Limit, q.Offset)
	res, err := s.jobs.List(ctx, f, pq)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return toList(res, pq), nil
}

func (s *jobService) Get(ctx context.Context, id string) (*model.JobOpportunity, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	j, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return j, nil
}

func (s *jobService) decide(ctx context.Context, id string, status model.Status, note string) (*model.JobOpportunity, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	j, err := s.jobs.Decide(ctx, id, status, strings.TrimSpace(note), s.clock.now())
	if err != nil {
		if errors.Is(err, repository.ErrStale) {
			if _, ferr := s.jobs.FindByID(ctx, id); ferr != nil {
				return nil, mapRepoErr(ferr)
			}
		}
		return nil, mapRepoErr(err)
	}
	return j, nil
}

func (s *jobService) Approve(ctx context.Context, id, note string) (*model.JobOpportunity, error) {
	return s.decide(ctx, id, model.StatusApproved, note)
}

func (s *jobService) Reject(ctx context.Context, id, note string) (*model.JobOpportunity, error) {
	return s.decide(ctx, id, model.StatusRejected, note)
}

func (s *jobService) Delete(ctx context.Context, actor auth.Session, id string) error {
	j, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if actor.Role != model.RoleAdmin {
		if j.AlumniID != actor.UserID {
			return ErrNotFound
		}
		if j.Status != model.StatusPending {
			return ErrAlreadyDecided
		}
	}
	return mapRepoErr(s.jobs.Delete(ctx, id))
}
