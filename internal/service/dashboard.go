package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"alumniportal/internal/auth"
	"alumniportal/internal/model"
	"alumniportal/internal/repository"
)

// DashboardStats holds the counters shown on a role's dashboard. Only the
// counters relevant to the role are filled in.
type DashboardStats struct {
	Role                 model.Role `json:"role"`
	Alumni               *int       `json:"alumni,omitempty"`
	Faculty              *int       `json:"faculty,omitempty"`
	PendingEventRequests *int       `json:"pending_event_requests,omitempty"`
	PendingJobs          *int       `json:"pending_jobs,omitempty"`
	UpcomingEvents       *int       `json:"upcoming_events,omitempty"`
	MyEventRequests      *int       `json:"my_event_requests,omitempty"`
	MyJobs               *int       `json:"my_jobs,omitempty"`
	Certificates         *int       `json:"certificates,omitempty"`
	AssignedEvents       *int       `json:"assigned_events,omitempty"`
	IssuedCertificates   *int       `json:"issued_certificates,omitempty"`
}

// DashboardService computes per-role dashboard counters.
type DashboardService interface {
	Stats(ctx context.Context, actor auth.Session) (*DashboardStats, error)
}

type dashboardService struct {
	alumni   repository.AlumniRepository
	faculty  repository.FacultyRepository
	requests repository.EventRequestRepository
	events   repository.EventRepository
	jobs     repository.JobRepository
	certs    repository.CertificateRepository
	clock    clock
}

// DashboardDeps groups the repositories the dashboard counts over.
type DashboardDeps struct {
	Alumni       repository.AlumniRepository
	Faculty      repository.FacultyRepository
	Requests     repository.EventRequestRepository
	Events       repository.EventRepository
	Jobs         repository.JobRepository
	Certificates repository.CertificateRepository
}

// NewDashboardService constructs a new DashboardService.
func NewDashboardService(deps DashboardDeps) DashboardService {
	return &dashboardService{
		alumni:   deps.Alumni,
		faculty:  deps.Faculty,
		requests: deps.Requests,
		events:   deps.Events,
		jobs:     deps.Jobs,
		certs:    deps.Certificates,
	}
}

// one row is enough: only Total is read.
var countPage = repository.PageQuery{Limit: 1}

type counter func(ctx context.Context) (int, error)

func total[T any](res *repository.PageResult[T], err error) (int, error) {
	if err != nil {
		return 0, err
	}
	return res.Total, nil
}

func (s *dashboardService) Stats(ctx context.Context, actor auth.Session) (*DashboardStats, error) {
	if actor.UserID == "" {
		return nil, ErrIDRequired
	}
	now := s.clock.now()
	stats := &DashboardStats{Role: actor.Role}
	counters := map[*int]counter{}

	switch actor.Role {
	case model.RoleAdmin:
		stats.Alumni, stats.Faculty = new(int), new(int)
		stats.PendingEventRequests, stats.PendingJobs, stats.UpcomingEvents = new(int), new(int), new(int)
		counters[stats.Alumni] = func(ctx context.Context) (int, error) {
			return total(s.alumni.List(ctx, repository.DirectoryFilter{}, countPage))
		}
		counters[stats.Faculty] = func(ctx context.Context) (int, error) {
			return total(s.faculty.List(ctx, repository.DirectoryFilter{}, countPage))
		}
		counters[stats.PendingEventRequests] = func(ctx context.Context) (int, error) {
			return total(s.requests.List(ctx, repository.EventRequestFilter{Status: model.StatusPending}, countPage))
		}
		counters[stats.PendingJobs] = func(ctx context.Context) (int, error) {
			return total(s.jobs.List(ctx, repository.JobFilter{Status: model.StatusPending}, countPage))
		}
		counters[stats.UpcomingEvents] = func(ctx context.Context) (int, error) {
			return total(s.events.List(ctx, repository.EventFilter{Window: repository.WindowUpcoming, Now: now}, countPage))
		}
	case model.RoleAlumni:
		stats.MyEventRequests, stats.MyJobs, stats.Certificates = new(int), new(int), new(int)
		counters[stats.MyEventRequests] = func(ctx context.Context) (int, error) {
			return total(s.requests.List(ctx, repository.EventRequestFilter{AlumniID: actor.UserID, Status: model.StatusPending}, countPage))
		}
		counters[stats.MyJobs] = func(ctx context.Context) (int, error) {
			return total(s.jobs.List(ctx, repository.JobFilter{AlumniID: actor.UserID, Status: model.StatusPending}, countPage))
		}
		counters[stats.Certificates] = func(ctx context.Context) (int, error) {
			return total(s.certs.List(ctx, repository.CertificateFilter{AlumniID: actor.UserID}, countPage))
		}
	case model.RoleFaculty:
		stats.AssignedEvents, stats.IssuedCertificates = new(int), new(int)
		counters[stats.AssignedEvents] = func(ctx context.Context) (int, error) {
			return total(s.events.List(ctx, repository.EventFilter{Window: repository.WindowAll, Now: now, FacultyID: actor.UserID}, countPage))
		}
		counters[stats.IssuedCertificates] = func(ctx context.Context) (int, error) {
			return total(s.certs.List(ctx, repository.CertificateFilter{FacultyID: actor.UserID}, countPage))
		}
	default:
		return nil, ErrForbidden
	}

	g, gctx := errgroup.WithContext(ctx)
	for dst, count := range counters {
		g.Go(func() error {
			n, err := count(gctx)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}
