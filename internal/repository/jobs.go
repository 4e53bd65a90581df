package repository

import (
	"context"
	"time"

	"alumniportal/internal/model"
)

// JobFilter narrows job listings. OpenAt, when set, hides postings whose
// deadline is before it.
type JobFilter struct {
	AlumniID string
	Status   model.Status
	JobType  model.JobType
	Query    string
	OpenAt   *time.Time
}

// JobRepository persists job opportunities.
type JobRepository interface {
	Create(ctx context.Context, j *model.JobOpportunity) (*model.JobOpportunity, error)
	FindByID(ctx context.Context, id string) (*model.JobOpportunity, error)
	List(ctx context.Context, f JobFilter, pq PageQuery) (*PageResult[model.JobOpportunity], error)
	// Decide moves a PENDING job to status. Returns ErrStale if it is not pending.
	Decide(ctx context.Context, id string, status model.Status, note string, decidedAt time.Time) (*model.JobOpportunity, error)
	Delete(ctx context.Context, id string) error
}
