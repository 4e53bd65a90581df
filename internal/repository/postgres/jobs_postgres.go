package postgres

import (
	"context"
	"database/sql"
	"time"

	"alumniportal/internal/model"
	"alumniportal/internal/repository"
)

// JobPostgres is a PostgreSQL implementation of repository.JobRepository.
type JobPostgres struct {
	db *sql.DB
}

// NewJobPostgres creates a new JobPostgres repository.
func NewJobPostgres(db *sql.DB) *JobPostgres {
	return &JobPostgres{db: db}
}

var _ repository.JobRepository = (*JobPostgres)(nil)

const jobSelect = `
	SELECT j.id, j.alumni_id, u.name, j.title, j.company, j.location, j.job_type, j.description,
	       j.apply_url, j.deadline, j.status, j.admin_note, j.created_at, j.decided_at
	FROM jobs j
	JOIN users u ON u.id = j.alumni_id`

func scanJob(row interface{ Scan(...any) error }) (*model.JobOpportunity, error) {
	var j model.JobOpportunity
	if err := row.Scan(
		&j.ID, &j.AlumniID, &j.PostedBy, &j.Title, &j.Company, &j.Location, &j.JobType, &j.Description,
		&j.ApplyURL, &j.Deadline, &j.Status, &j.AdminNote, &j.CreatedAt, &j.DecidedAt,
	); err != nil {
		return nil, translate(err)
	}
	return &j, nil
}

// Create inserts a job posting.
func (p *JobPostgres) Create(ctx context.Context, j *model.JobOpportunity) (*model.JobOpportunity, error) {
	const q = `
		INSERT INTO jobs (id, alumni_id, title, company, location, job_type, description,
		                  apply_url, deadline, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	if _, err := p.db.ExecContext(ctx, q,
		j.ID, j.AlumniID, j.Title, j.Company, j.Location, j.JobType, j.Description,
		j.ApplyURL, j.Deadline, j.Status, j.CreatedAt,
	); err != nil {
		return nil, translate(err)
	}
	return p.FindByID(ctx, j.ID)
}

// FindByID fetches a job with the poster's name.
func (p *JobPostgres) FindByID(ctx context.Context, id string) (*model.JobOpportunity, error) {
	return scanJob(p.db.QueryRowContext(ctx, jobSelect+` WHERE j.id = $1`, id))
}

// List returns jobs newest first.
func (p *JobPostgres) List(ctx context.Context, f repository.JobFilter, pq repository.PageQuery) (*repository.PageResult[model.JobOpportunity], error) {
	var w where
	if f.AlumniID != "" {
		w.add("j.alumni_id = ?", f.AlumniID)
	}
	if f.Status != "" {
		w.add("j.status = ?", f.Status)
	}
	if f.JobType != "" {
		w.add("j.job_type = ?", f.JobType)
	}
	if f.OpenAt != nil {
		w.add("(j.deadline IS NULL OR j.deadline >= ?)", *f.OpenAt)
	}
	w.like(f.Query, "j.title", "j.company", "j.location")

	var total int
	if err := p.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs j`+w.String(), w.args...).Scan(&total); err != nil {
		return nil, translate(err)
	}

	limit, args := w.page(pq)
	rows, err := p.db.QueryContext(ctx, jobSelect+w.String()+` ORDER BY j.created_at DESC, j.id DESC`+limit, args...)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	items := make([]model.JobOpportunity, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.JobOpportunity]{Items: items, Total: total}, nil
}

// Decide moves a pending job to the given status.
func (p *JobPostgres) Decide(ctx context.Context, id string, status model.Status, note string, decidedAt time.Time) (*model.JobOpportunity, error) {
	const q = `
		UPDATE jobs
		SET status = $2, admin_note = $3, decided_at = $4
		WHERE id = $1 AND status = $5
	`
	res, err := p.db.ExecContext(ctx, q, id, status, note, decidedAt, model.StatusPending)
	if err != nil {
		return nil, translate(err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, err
	} else if n == 0 {
		return nil, repository.ErrStale
	}
	return p.FindByID(ctx, id)
}

// Delete removes a job posting.
func (p *JobPostgres) Delete(ctx context.Context, id string) error {
	return mustAffect(p.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id))
}
