package repository

import (
	"context"

	"alumniportal/internal/model"
)

// CertificateFilter narrows certificate listings. Zero values match all.
type CertificateFilter struct {
	AlumniID  string
	FacultyID string
	EventID   string
}

// CertificateRepository persists certificate metadata; files live in object storage.
type CertificateRepository interface {
	Create(ctx context.Context, c *model.Certificate) (*model.Certificate, error)
	FindByID(ctx context.Context, id string) (*model.Certificate, error)
	List(ctx context.Context, f CertificateFilter, pq PageQuery) (*PageResult[model.Certificate], error)
	Delete(ctx context.Context, id string) error
}

// PostRepository persists news and gallery posts.
type PostRepository interface {
	Create(ctx context.Context, p *model.Post) (*model.Post, error)
	FindByID(ctx context.Context, id string) (*model.Post, error)
	// List filters by kind when it is non-empty.
	List(ctx context.Context, kind model.PostKind, pq PageQuery) (*PageResult[model.Post], error)
	Delete(ctx context.Context, id string) error
}
