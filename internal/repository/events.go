package repository

import (
	"context"
	"time"

	"alumniportal/internal/model"
)

// EventRequestFilter narrows event request listings. Zero values match all.
type EventRequestFilter struct {
	AlumniID  string
	FacultyID string
	Status    model.Status
}

// EventRequestRepository persists event requests.
type EventRequestRepository interface {
	Create(ctx context.Context, r *model.EventRequest) (*model.EventRequest, error)
	FindByID(ctx context.Context, id string) (*model.EventRequest, error)
	List(ctx context.Context, f EventRequestFilter, pq PageQuery) (*PageResult[model.EventRequest], error)
	// Approve marks a PENDING request approved, assigns the faculty and
	// inserts ev in one transaction. Returns ErrStale if the request is no
	// longer pending.
	Approve(ctx context.Context, id, facultyID, note string, ev *model.Event, decidedAt time.Time) (*model.EventRequest, error)
	// Reject marks a PENDING request rejected. Returns ErrStale if it is not pending.
	Reject(ctx context.Context, id, note string, decidedAt time.Time) (*model.EventRequest, error)
}

// EventWindow selects events relative to a reference time.
type EventWindow string

const (
	WindowAll      EventWindow = "all"
	WindowUpcoming EventWindow = "upcoming"
	WindowPast     EventWindow = "past"
)

// EventFilter narrows event listings.
type EventFilter struct {
	Window    EventWindow
	Now       time.Time
	Query     string
	FacultyID string
}

// EventRepository persists scheduled events.
type EventRepository interface {
	Create(ctx context.Context, e *model.Event) (*model.Event, error)
	FindByID(ctx context.Context, id string) (*model.Event, error)
	List(ctx context.Context, f EventFilter, pq PageQuery) (*PageResult[model.Event], error)
	SetBanner(ctx context.Context, id, key string) error
	Delete(ctx context.Context, id string) error
}
