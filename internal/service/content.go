package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"alumniportal/internal/model"
	"alumniportal/internal/repository"
	"alumniportal/internal/storage"
)

const homeItems = 3

// PostInput is the admin form for news items and gallery pictures.
type PostInput struct {
	Kind  string `json:"kind" validate:"required,oneof=NEWS GALLERY"`
	Title string `json:"title" validate:"required,max=200"`
	Body  string `json:"body" validate:"max=8000"`
}

// PostImage is an optional picture attached to a post.
type PostImage struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
}

// HomeCounts summarizes the community on the landing page.
type HomeCounts struct {
	Alumni   int `json:"alumni"`
	Faculty  int `json:"faculty"`
	Events   int `json:"upcoming_events"`
	OpenJobs int `json:"open_jobs"`
}

// HomePage is the landing page payload.
type HomePage struct {
	News           []model.Post           `json:"news"`
	UpcomingEvents []model.Event          `json:"upcoming_events"`
	Jobs           []model.JobOpportunity `json:"jobs"`
	Counts         HomeCounts             `json:"counts"`
}

// ContentService manages public posts and assembles the public pages.
type ContentService interface {
	CreatePost(ctx context.Context, authorID string, in PostInput, image *PostImage) (*model.Post, error)
	ListPosts(ctx context.Context, kind model.PostKind, limit, offset int) (*ListResult[model.Post], error)
	DeletePost(ctx context.Context, id string) error
	Home(ctx context.Context) (*HomePage, error)
}

type contentService struct {
	posts   repository.PostRepository
	events  repository.EventRepository
	jobs    repository.JobRepository
	alumni  repository.AlumniRepository
	faculty repository.FacultyRepository
	store   storage.Storage
	expiry  time.Duration
	clock   clock
}

// ContentDeps groups the repositories the public pages read from.
type ContentDeps struct {
	Posts   repository.PostRepository
	Events  repository.EventRepository
	Jobs    repository.JobRepository
	Alumni  repository.AlumniRepository
	Faculty repository.FacultyRepository
}

// NewContentService constructs a new ContentService.
func NewContentService(deps ContentDeps, store storage.Storage, expiry time.Duration) ContentService {
	return &contentService{
		posts:   deps.Posts,
		events:  deps.Events,
		jobs:    deps.Jobs,
		alumni:  deps.Alumni,
		faculty: deps.Faculty,
		store:   store,
		expiry:  expiry,
	}
}

func (s *contentService) CreatePost(ctx context.Context, authorID string, in PostInput, image *PostImage) (*model.Post, error) {
	kind := model.PostKind(in.Kind)
	if kind == model.PostGallery && (image == nil || image.Reader == nil) {
		return nil, invalid("image", "is required for gallery posts")
	}
	p := &model.Post{
		ID:        uuid.NewString(),
		Kind:      kind,
		Title:     strings.TrimSpace(in.Title),
		Body:      strings.TrimSpace(in.Body),
		CreatedAt: s.clock.now(),
	}
	if authorID != "" {
		p.AuthorID = &authorID
	}

	if image != nil && image.Reader != nil {
		if !strings.HasPrefix(image.ContentType, "image/") {
			return nil, invalid("image", "must be an image")
		}
		key := storage.NewKey(strings.ToLower(string(kind)), image.Filename)
		if _, err := s.store.Put(ctx, key, image.Reader, storage.PutObjectOptions{
			Size:        image.Size,
			ContentType: image.ContentType,
			Metadata:    map[string]string{"original-filename": image.Filename},
		}); err != nil {
			return nil, fmt.Errorf("upload to storage: %w", err)
		}
		p.ImageKey = key
	}

	stored, err := s.posts.Create(ctx, p)
	if err != nil {
		if p.ImageKey != "" {
			if delErr := s.store.Delete(ctx, p.ImageKey); delErr != nil {
				return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
			}
		}
		return nil, fmt.Errorf("db save failed: %w", mapRepoErr(err))
	}
	if err := s.withImage(ctx, stored); err != nil {
		return nil, err
	}
	return stored, nil
}

func (s *contentService) withImage(ctx context.Context, p *model.Post) error {
	if p.ImageKey == "" {
		return nil
	}
	u, err := s.store.PresignGet(ctx, p.ImageKey, s.expiry)
	if err != nil {
		return fmt.Errorf("presign image: %w", err)
	}
	p.ImageURL = u
	return nil
}

func (s *contentService) ListPosts(ctx context.Context, kind model.PostKind, limit, offset int) (*ListResult[model.Post], error) {
	if kind != "" && kind != model.PostNews && kind != model.PostGallery {
		return nil, invalid("kind", "must be NEWS or GALLERY")
	}
	pq := pageQuery(limit, offset)
	res, err := s.posts.List(ctx, kind, pq)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	for i := range res.Items {
		if err := s.withImage(ctx, &res.Items[i]); err != nil {
			return nil, err
		}
	}
	return toList(res, pq), nil
}

func (s *contentService) DeletePost(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	p, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return mapRepoErr(err)
	}
	if p.ImageKey != "" {
		if err := s.store.Delete(ctx, p.ImageKey); err != nil {
			return fmt.Errorf("delete storage: %w", err)
		}
	}
	return mapRepoErr(s.posts.Delete(ctx, id))
}

func (s *contentService) Home(ctx context.Context) (*HomePage, error) {
	now := s.clock.now()
	top := repository.PageQuery{Limit: homeItems}
	count := repository.PageQuery{Limit: 1}

	news, err := s.ListPosts(ctx, model.PostNews, homeItems, 0)
	if err != nil {
		return nil, err
	}
	events, err := s.events.List(ctx, repository.EventFilter{Window: repository.WindowUpcoming, Now: now}, top)
	if err != nil {
		return nil, err
	}
	for i := range events.Items {
		if key := events.Items[i].BannerKey; key != "" {
			u, err := s.store.PresignGet(ctx, key, s.expiry)
			if err != nil {
				return nil, fmt.Errorf("presign banner: %w", err)
			}
			events.Items[i].BannerURL = u
		}
	}
	jobs, err := s.jobs.List(ctx, repository.JobFilter{Status: model.StatusApproved, OpenAt: &now}, top)
	if err != nil {
		return nil, err
	}
	alumni, err := s.alumni.List(ctx, repository.DirectoryFilter{}, count)
	if err != nil {
		return nil, err
	}
	faculty, err := s.faculty.List(ctx, repository.DirectoryFilter{}, count)
	if err != nil {
		return nil, err
	}

	return &HomePage{
		News:           news.Items,
		UpcomingEvents: events.Items,
		Jobs:           jobs.Items,
		Counts: HomeCounts{
			Alumni:   alumni.Total,
			Faculty:  faculty.Total,
			Events:   events.Total,
			OpenJobs: jobs.Total,
		},
	}, nil
}
