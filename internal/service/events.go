package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"alumniportal/internal/model"
	"alumniportal/internal/repository"
	"alumniportal/internal/storage"
)

// defaultEventDuration is applied when an approved request carries no duration.
const defaultEventDuration = 120 * time.Minute

// RequestEventInput is the alumni event proposal form.
type RequestEventInput struct {
	Title        string    `json:"title" validate:"required,max=200"`
	Description  string    `json:"description" validate:"max=4000"`
	Venue        string    `json:"venue" validate:"max=200"`
	ProposedDate time.Time `json:"proposed_date" validate:"required"`
}

// ApproveInput assigns a faculty member to a pending request.
type ApproveInput struct {
	FacultyID       string `json:"faculty_id" validate:"required,uuid"`
	Note            string `json:"note" validate:"max=1000"`
	DurationMinutes int    `json:"duration_minutes" validate:"min=0,max=10080"`
}

// DecisionInput carries an optional admin note.
type DecisionInput struct {
	Note string `json:"note" validate:"max=1000"`
}

// CreateEventInput is the admin form for scheduling an event directly.
type CreateEventInput struct {
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description" validate:"max=4000"`
	Venue       string    `json:"venue" validate:"max=200"`
	StartsAt    time.Time `json:"starts_at" validate:"required"`
	EndsAt      time.Time `json:"ends_at" validate:"required"`
	FacultyID   string    `json:"faculty_id" validate:"omitempty,uuid"`
}

// RequestQuery filters event request listings.
type RequestQuery struct {
	AlumniID  string
	FacultyID string
	Status    model.Status
	Limit     int
	Offset    int
}

// EventQuery filters event listings. When is "upcoming", "past" or "all".
type EventQuery struct {
	When      string
	Query     string
	FacultyID string
	Limit     int
	Offset    int
}

// EventService covers event requests and the events created from them.
type EventService interface {
	RequestEvent(ctx context.Context, alumniID string, in RequestEventInput) (*model.EventRequest, error)
	ListRequests(ctx context.Context, q RequestQuery) (*ListResult[model.EventRequest], error)
	GetRequest(ctx context.Context, id string) (*model.EventRequest, error)
	// ApproveRequest assigns a faculty and creates the event in one step.
	ApproveRequest(ctx context.Context, id string, in ApproveInput) (*model.EventRequest, error)
	RejectRequest(ctx context.Context, id, note string) (*model.EventRequest, error)

	ListEvents(ctx context.Context, q EventQuery) (*ListResult[model.Event], error)
	GetEvent(ctx context.Context, id string) (*model.Event, error)
	CreateEvent(ctx context.Context, adminID string, in CreateEventInput) (*model.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	// UploadBanner stores an image and attaches it to the event, replacing any previous banner.
	UploadBanner(ctx context.Context, id string, r io.Reader, originalFilename, contentType string, size int64) (*model.Event, error)
}

type eventService struct {
	requests repository.EventRequestRepository
	events   repository.EventRepository
	faculty  repository.FacultyRepository
	certs    repository.CertificateRepository
	store    storage.Storage
	expiry   time.Duration
	clock    clock
}

// NewEventService constructs a new EventService. Banner links are presigned for expiry.
func NewEventService(
	requests repository.EventRequestRepository,
	events repository.EventRepository,
	faculty repository.FacultyRepository,
	certs repository.CertificateRepository,
	store storage.Storage,
	expiry time.Duration,
) EventService {
	return &eventService{requests: requests, events: events, faculty: faculty, certs: certs, store: store, expiry: expiry}
}

func (s *eventService) RequestEvent(ctx context.Context, alumniID string, in RequestEventInput) (*model.EventRequest, error) {
	if alumniID == "" {
		return nil, ErrIDRequired
	}
	now := s.clock.now()
	if !in.ProposedDate.After(now) {
		return nil, invalid("proposed_date", "must be in the future")
	}
	r := &model.EventRequest{
		ID:           uuid.NewString(),
		AlumniID:     alumniID,
		Title:        strings.TrimSpace(in.Title),
		Description:  strings.TrimSpace(in.Description),
		Venue:        strings.TrimSpace(in.Venue),
		ProposedDate: in.ProposedDate.UTC(),
		Status:       model.StatusPending,
		CreatedAt:    now,
	}
	created, err := s.requests.Create(ctx, r)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return created, nil
}

func (s *eventService) ListRequests(ctx context.Context, q RequestQuery) (*ListResult[model.EventRequest], error) {
	if q.Status != "" && !q.Status.Valid() {
		return nil, invalid("status", "must be PENDING, APPROVED or REJECTED")
	}
	pq := pageQuery(q.Limit, q.Offset)
	res, err := s.requests.List(ctx, repository.EventRequestFilter{
		AlumniID:  q.AlumniID,
		FacultyID: q.FacultyID,
		Status:    q.Status,
	}, pq)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return toList(res, pq), nil
}

func (s *eventService) GetRequest(ctx context.Context, id string) (*model.EventRequest, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	r, err := s.requests.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return r, nil
}

func (s *eventService) ApproveRequest(ctx context.Context, id string, in ApproveInput) (*model.EventRequest, error) {
	r, err := s.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.Status != model.StatusPending {
		return nil, ErrAlreadyDecided
	}
	if _, err := s.faculty.FindByID(ctx, in.FacultyID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, invalid("faculty_id", "unknown faculty")
		}
		return nil, err
	}

	duration := defaultEventDuration
	if in.DurationMinutes > 0 {
		duration = time.Duration(in.DurationMinutes) * time.Minute
	}
	now := s.clock.now()
	facultyID := in.FacultyID
	requestID := r.ID
	ev := &model.Event{
		ID:          uuid.NewString(),
		Title:       r.Title,
		Description: r.Description,
		Venue:       r.Venue,
		StartsAt:    r.ProposedDate,
		EndsAt:      r.ProposedDate.Add(duration),
		FacultyID:   &facultyID,
		RequestID:   &requestID,
		CreatedAt:   now,
	}
	approved, err := s.requests.Approve(ctx, r.ID, facultyID, strings.TrimSpace(in.Note), ev, now)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return approved, nil
}

func (s *eventService) RejectRequest(ctx context.Context, id, note string) (*model.EventRequest, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	r, err := s.requests.Reject(ctx, id, strings.TrimSpace(note), s.clock.now())
	if err != nil {
		if errors.Is(err, repository.ErrStale) {
			// Distinguish a missing request from one that was already decided.
			if _, ferr := s.requests.FindByID(ctx, id); ferr != nil {
				return nil, mapRepoErr(ferr)
			}
		}
		return nil, mapRepoErr(err)
	}
	return r, nil
}

func parseWindow(when string) (repository.EventWindow, error) {
	switch repository.EventWindow(strings.ToLower(strings.TrimSpace(when))) {
	case "", repository.WindowAll:
		return repository.WindowAll, nil
	case repository.WindowUpcoming:
		return repository.WindowUpcoming, nil
	case repository.WindowPast:
		return repository.WindowPast, nil
	}
	return "", invalid("when", "must be upcoming, past or all")
}

func (s *eventService) withBanner(ctx context.Context, e *model.Event) error {
	if e.BannerKey == "" {
		return nil
	}
	u, err := s.store.PresignGet(ctx, e.BannerKey, s.expiry)
	if err != nil {
		return fmt.Errorf("presign banner: %w", err)
	}
	e.BannerURL = u
	return nil
}

func (s *eventService) ListEvents(ctx context.Context, q EventQuery) (*ListResult[model.Event], error) {
	window, err := parseWindow(q.When)
	if err != nil {
		return nil, err
	}
	pq := pageQuery(q.Limit, q.Offset)
	res, err := s.events.List(ctx, repository.EventFilter{
		Window:    window,
		Now:       s.clock.now(),
		Query:     strings.TrimSpace(q.Query),
		FacultyID: q.FacultyID,
	}, pq)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	for i := range res.Items {
		if err := s.withBanner(ctx, &res.Items[i]); err != nil {
			return nil, err
		}
	}
	return toList(res, pq), nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*model.Event, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	e, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if err := s.withBanner(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *eventService) CreateEvent(ctx context.Context, adminID string, in CreateEventInput) (*model.Event, error) {
	if in.EndsAt.Before(in.StartsAt) {
		return nil, invalid("ends_at", "must not be before starts_at")
	}
	e := &model.Event{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Venue:       strings.TrimSpace(in.Venue),
		StartsAt:    in.StartsAt.UTC(),
		EndsAt:      in.EndsAt.UTC(),
		CreatedAt:   s.clock.now(),
	}
	if in.FacultyID != "" {
		if _, err := s.faculty.FindByID(ctx, in.FacultyID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, invalid("faculty_id", "unknown faculty")
			}
			return nil, err
		}
		facultyID := in.FacultyID
		e.FacultyID = &facultyID
	}
	if adminID != "" {
		e.CreatedBy = &adminID
	}
	created, err := s.events.Create(ctx, e)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return created, nil
}

// DeleteEvent removes the event's certificate files and banner from storage,
// then the event row.
func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	e, err := s.events.FindByID(ctx, id)
	if err != nil {
		return mapRepoErr(err)
	}
	if err := removeCertificateFiles(ctx, s.certs, s.store, repository.CertificateFilter{EventID: id}); err != nil {
		return err
	}
	if e.BannerKey != "" {
		if err := s.store.Delete(ctx, e.BannerKey); err != nil {
			return fmt.Errorf("delete storage: %w", err)
		}
	}
	return mapRepoErr(s.events.Delete(ctx, id))
}

func (s *eventService) UploadBanner(ctx context.Context, id string, r io.Reader, originalFilename, contentType string, size int64) (*model.Event, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, invalid("banner", "must be an image")
	}
	e, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}

	key := storage.NewKey("events", originalFilename)
	if _, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata:    map[string]string{"original-filename": originalFilename},
	}); err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}
	if err := s.events.SetBanner(ctx, id, key); err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", mapRepoErr(err))
	}
	if e.BannerKey != "" {
		// Best effort: nothing references the old banner any more.
		_ = s.store.Delete(ctx, e.BannerKey)
	}
	e.BannerKey = key
	if err := s.withBanner(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}
