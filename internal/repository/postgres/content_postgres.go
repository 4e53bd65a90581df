package postgres

import (
	"context"
	"database/sql"

	"alumniportal/internal/model"
	"alumniportal/internal/repository"
)

// CertificatePostgres is a PostgreSQL implementation of repository.CertificateRepository.
type CertificatePostgres struct {
	db *sql.DB
}

// NewCertificatePostgres creates a new CertificatePostgres repository.
func NewCertificatePostgres(db *sql.DB) *CertificatePostgres {
	return &CertificatePostgres{db: db}
}

var _ repository.CertificateRepository = (*CertificatePostgres)(nil)

const certificateSelect = `
	SELECT c.id, c.alumni_id, c.event_id, e.title, c.faculty_id, c.title, c.file_key,
	       c.content_type, c.size, c.issued_at
	FROM certificates c
	JOIN events e ON e.id = c.event_id`

func scanCertificate(row interface{ Scan(...any) error }) (*model.Certificate, error) {
	var c model.Certificate
	if err := row.Scan(
		&c.ID, &c.AlumniID, &c.EventID, &c.EventTitle, &c.FacultyID, &c.Title, &c.FileKey,
		&c.ContentType, &c.Size, &c.IssuedAt,
	); err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

// Create inserts certificate metadata.
func (p *CertificatePostgres) Create(ctx context.Context, c *model.Certificate) (*model.Certificate, error) {
	const q = `
		INSERT INTO certificates (id, alumni_id, event_id, faculty_id, title, file_key, content_type, size, issued_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	if _, err := p.db.ExecContext(ctx, q,
		c.ID, c.AlumniID, c.EventID, c.FacultyID, c.Title, c.FileKey, c.ContentType, c.Size, c.IssuedAt,
	); err != nil {
		return nil, translate(err)
	}
	return p.FindByID(ctx, c.ID)
}

// FindByID fetches a certificate with its event title.
func (p *CertificatePostgres) FindByID(ctx context.Context, id string) (*model.Certificate, error) {
	return scanCertificate(p.db.QueryRowContext(ctx, certificateSelect+` WHERE c.id = $1`, id))
}

// List returns certificates newest first.
func (p *CertificatePostgres) List(ctx context.Context, f repository.CertificateFilter, pq repository.PageQuery) (*repository.PageResult[model.Certificate], error) {
	var w where
	if f.AlumniID != "" {
		w.add("c.alumni_id = ?", f.AlumniID)
	}
	if f.FacultyID != "" {
		w.add("c.faculty_id = ?", f.FacultyID)
	}
	if f.EventID != "" {
		w.add("c.event_id = ?", f.EventID)
	}

	var total int
	if err := p.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM certificates c`+w.String(), w.args...).Scan(&total); err != nil {
		return nil, translate(err)
	}

	limit, args := w.page(pq)
	rows, err := p.db.QueryContext(ctx, certificateSelect+w.String()+` ORDER BY c.issued_at DESC, c.id DESC`+limit, args...)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	items := make([]model.Certificate, 0)
	for rows.Next() {
		c, err := scanCertificate(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Certificate]{Items: items, Total: total}, nil
}

// Delete removes certificate metadata.
func (p *CertificatePostgres) Delete(ctx context.Context, id string) error {
	return mustAffect(p.db.ExecContext(ctx, `DELETE FROM certificates WHERE id = $1`, id))
}

// PostPostgres is a PostgreSQL implementation of repository.PostRepository.
type PostPostgres struct {
	db *sql.DB
}

// NewPostPostgres creates a new PostPostgres repository.
func NewPostPostgres(db *sql.DB) *PostPostgres {
	return &PostPostgres{db: db}
}

var _ repository.PostRepository = (*PostPostgres)(nil)

const postColumns = `id, author_id, kind, title, body, image_key, created_at`

func scanPost(row interface{ Scan(...any) error }) (*model.Post, error) {
	var p model.Post
	if err := row.Scan(&p.ID, &p.AuthorID, &p.Kind, &p.Title, &p.Body, &p.ImageKey, &p.CreatedAt); err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// Create inserts a post.
func (r *PostPostgres) Create(ctx context.Context, p *model.Post) (*model.Post, error) {
	const q = `
		INSERT INTO posts (id, author_id, kind, title, body, image_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + postColumns
	return scanPost(r.db.QueryRowContext(ctx, q, p.ID, p.AuthorID, p.Kind, p.Title, p.Body, p.ImageKey, p.CreatedAt))
}

// FindByID fetches a post.
func (r *PostPostgres) FindByID(ctx context.Context, id string) (*model.Post, error) {
	return scanPost(r.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1`, id))
}

// List returns posts newest first.
func (r *PostPostgres) List(ctx context.Context, kind model.PostKind, pq repository.PageQuery) (*repository.PageResult[model.Post], error) {
	var w where
	if kind != "" {
		w.add("kind = ?", kind)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`+w.String(), w.args...).Scan(&total); err != nil {
		return nil, translate(err)
	}

	limit, args := w.page(pq)
	rows, err := r.db.QueryContext(ctx, `SELECT `+postColumns+` FROM posts`+w.String()+` ORDER BY created_at DESC, id DESC`+limit, args...)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	items := make([]model.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Post]{Items: items, Total: total}, nil
}

// Delete removes a post.
func (r *PostPostgres) Delete(ctx context.Context, id string) error {
	return mustAffect(r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id))
}
