package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"alumniportal/internal/auth"
	"alumniportal/internal/model"
	"alumniportal/internal/repository"
	"alumniportal/internal/storage"
)

// IssueInput names the recipient and event of a certificate.
type IssueInput struct {
	AlumniID string `json:"alumni_id" validate:"required,uuid"`
	EventID  string `json:"event_id" validate:"required,uuid"`
	Title    string `json:"title" validate:"required,max=200"`
}

// CertificateFile is the uploaded certificate body.
type CertificateFile struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
}

// CertificateQuery filters certificate listings.
type CertificateQuery struct {
	AlumniID  string
	FacultyID string
	EventID   string
	Limit     int
	Offset    int
}

var allowedCertificateTypes = map[string]bool{
	"application/pdf": true,
	"image/png":       true,
	"image/jpeg":      true,
}

// CertificateService issues certificates for finished events and hands out download links.
type CertificateService interface {
	// Issue uploads the file, saves metadata and removes the object again if the save fails.
	Issue(ctx context.Context, actor auth.Session, in IssueInput, file CertificateFile) (*model.Certificate, error)
	List(ctx context.Context, q CertificateQuery) (*ListResult[model.Certificate], error)
	Get(ctx context.Context, actor auth.Session, id string) (*model.Certificate, error)
	// DownloadURL returns a presigned link for the owner, the issuer or an admin.
	DownloadURL(ctx context.Context, actor auth.Session, id string) (string, error)
	Delete(ctx context.Context, actor auth.Session, id string) error
}

type certificateService struct {
	certs  repository.CertificateRepository
	events repository.EventRepository
	alumni repository.AlumniRepository
	store  storage.Storage
	expiry time.Duration
	clock  clock
}

// NewCertificateService constructs a new CertificateService.
func NewCertificateService(
	certs repository.CertificateRepository,
	events repository.EventRepository,
	alumni repository.AlumniRepository,
	store storage.Storage,
	expiry time.Duration,
) CertificateService {
	return &certificateService{certs: certs, events: events, alumni: alumni, store: store, expiry: expiry}
}

func (s *certificateService) Issue(ctx context.Context, actor auth.Session, in IssueInput, file CertificateFile) (*model.Certificate, error) {
	if file.Reader == nil {
		return nil, ErrReaderNil
	}
	contentType := strings.ToLower(strings.TrimSpace(strings.Split(file.ContentType, ";")[0]))
	if !allowedCertificateTypes[contentType] {
		return nil, invalid("file", "must be a PDF, PNG or JPEG")
	}

	ev, err := s.events.FindByID(ctx, in.EventID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, invalid("event_id", "unknown event")
		}
		return nil, err
	}
	if actor.Role != model.RoleAdmin && (ev.FacultyID == nil || *ev.FacultyID != actor.UserID) {
		return nil, ErrForbidden
	}
	now := s.clock.now()
	if !ev.Finished(now) {
		return nil, ErrEventNotFinished
	}
	if _, err := s.alumni.FindByID(ctx, in.AlumniID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, invalid("alumni_id", "unknown alumni")
		}
		return nil, err
	}

	issuer := actor.UserID
	if ev.FacultyID != nil {
		issuer = *ev.FacultyID
	}

	key := storage.NewKey("certificates", file.Filename)
	objInfo, err := s.store.Put(ctx, key, file.Reader, storage.PutObjectOptions{
		Size:        file.Size,
		ContentType: contentType,
		Metadata:    map[string]string{"original-filename": file.Filename},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	c := &model.Certificate{
		ID:          uuid.NewString(),
		AlumniID:    in.AlumniID,
		EventID:     ev.ID,
		FacultyID:   issuer,
		Title:       strings.TrimSpace(in.Title),
		FileKey:     objInfo.Key,
		ContentType: contentType,
		Size:        objInfo.Size,
		IssuedAt:    now,
	}
	stored, err := s.certs.Create(ctx, c)
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", mapRepoErr(err))
	}
	return stored, nil
}

func (s *certificateService) withFile(ctx context.Context, c *model.Certificate) error {
	u, err := s.store.PresignGet(ctx, c.FileKey, s.expiry)
	if err != nil {
		return fmt.Errorf("presign certificate: %w", err)
	}
	c.FileURL = u
	return nil
}

func (s *certificateService) List(ctx context.Context, q CertificateQuery) (*ListResult[model.Certificate], error) {
	pq := pageQuery(q.Limit, q.Offset)
	res, err := s.certs.List(ctx, repository.CertificateFilter{
		AlumniID:  q.AlumniID,
		FacultyID: q.FacultyID,
		EventID:   q.EventID,
	}, pq)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	for i := range res.Items {
		if err := s.withFile(ctx, &res.Items[i]); err != nil {
			return nil, err
		}
	}
	return toList(res, pq), nil
}

// canSee reports whether actor may read c.
func canSee(actor auth.Session, c *model.Certificate) bool {
	switch actor.Role {
	case model.RoleAdmin:
		return true
	case model.RoleAlumni:
		return c.AlumniID == actor.UserID
	case model.RoleFaculty:
		return c.FacultyID == actor.UserID
	}
	return false
}

func (s *certificateService) find(ctx context.Context, actor auth.Session, id string) (*model.Certificate, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	c, err := s.certs.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if !canSee(actor, c) {
		return nil, ErrNotFound
	}
	return c, nil
}

func (s *certificateService) Get(ctx context.Context, actor auth.Session, id string) (*model.Certificate, error) {
	c, err := s.find(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.withFile(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *certificateService) DownloadURL(ctx context.Context, actor auth.Session, id string) (string, error) {
	c, err := s.Get(ctx, actor, id)
	if err != nil {
		return "", err
	}
	return c.FileURL, nil
}

// Delete removes the file from storage first and keeps the row if that fails.
func (s *certificateService) Delete(ctx context.Context, actor auth.Session, id string) error {
	c, err := s.find(ctx, actor, id)
	if err != nil {
		return err
	}
	if actor.Role == model.RoleAlumni {
		return ErrForbidden
	}
	if err := s.store.Delete(ctx, c.FileKey); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return mapRepoErr(s.certs.Delete(ctx, id))
}

// removeCertificateFiles deletes the stored file of every certificate matching
// f. The rows are left for the cascading delete that follows.
func removeCertificateFiles(ctx context.Context, certs repository.CertificateRepository, store storage.Storage, f repository.CertificateFilter) error {
	pq := repository.PageQuery{Limit: maxLimit}
	for {
		res, err := certs.List(ctx, f, pq)
		if err != nil {
			return mapRepoErr(err)
		}
		for _, c := range res.Items {
			if err := store.Delete(ctx, c.FileKey); err != nil {
				return fmt.Errorf("delete storage: %w", err)
			}
		}
		pq.Offset += len(res.Items)
		if len(res.Items) < pq.Limit || pq.Offset >= res.Total {
			return nil
		}
	}
}
