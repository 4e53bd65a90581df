package postgres

import (
	"context"
	"database/sql"
	"time"

	"alumniportal/internal/database"
	"alumniportal/internal/model"
	"alumniportal/internal/repository"
)

// EventRequestPostgres is a PostgreSQL implementation of repository.EventRequestRepository.
type EventRequestPostgres struct {
	db *sql.DB
}

// NewEventRequestPostgres creates a new EventRequestPostgres repository.
func NewEventRequestPostgres(db *sql.DB) *EventRequestPostgres {
	return &EventRequestPostgres{db: db}
}

var _ repository.EventRequestRepository = (*EventRequestPostgres)(nil)

const eventRequestSelect = `
	SELECT r.id, r.alumni_id, u.name, r.title, r.description, r.venue, r.proposed_date,
	       r.status, r.faculty_id, r.event_id, r.admin_note, r.created_at, r.decided_at
	FROM event_requests r
	JOIN users u ON u.id = r.alumni_id`

func scanEventRequest(row interface{ Scan(...any) error }) (*model.EventRequest, error) {
	var r model.EventRequest
	if err := row.Scan(
		&r.ID, &r.AlumniID, &r.AlumniName, &r.Title, &r.Description, &r.Venue, &r.ProposedDate,
		&r.Status, &r.FacultyID, &r.EventID, &r.AdminNote, &r.CreatedAt, &r.DecidedAt,
	); err != nil {
		return nil, translate(err)
	}
	return &r, nil
}

// Create inserts a new request.
func (p *EventRequestPostgres) Create(ctx context.Context, r *model.EventRequest) (*model.EventRequest, error) {
	const q = `
		INSERT INTO event_requests (id, alumni_id, title, description, venue, proposed_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	if _, err := p.db.ExecContext(ctx, q,
		r.ID, r.AlumniID, r.Title, r.Description, r.Venue, r.ProposedDate, r.Status, r.CreatedAt,
	); err != nil {
		return nil, translate(err)
	}
	return p.FindByID(ctx, r.ID)
}

// FindByID fetches a request with the proposer's name.
func (p *EventRequestPostgres) FindByID(ctx context.Context, id string) (*model.EventRequest, error) {
	return scanEventRequest(p.db.QueryRowContext(ctx, eventRequestSelect+` WHERE r.id = $1`, id))
}

// List returns requests newest first.
func (p *EventRequestPostgres) List(ctx context.Context, f repository.EventRequestFilter, pq repository.PageQuery) (*repository.PageResult[model.EventRequest], error) {
	var w where
	if f.AlumniID != "" {
		w.add("r.alumni_id = ?", f.AlumniID)
	}
	if f.FacultyID != "" {
		w.add("r.faculty_id = ?", f.FacultyID)
	}
	if f.Status != "" {
		w.add("r.status = ?", f.Status)
	}

	var total int
	if err := p.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM event_requests r`+w.String(), w.args...).Scan(&total); err != nil {
		return nil, translate(err)
	}

	limit, args := w.page(pq)
	rows, err := p.db.QueryContext(ctx, eventRequestSelect+w.String()+` ORDER BY r.created_at DESC, r.id DESC`+limit, args...)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	items := make([]model.EventRequest, 0)
	for rows.Next() {
		r, err := scanEventRequest(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.EventRequest]{Items: items, Total: total}, nil
}

// Approve flips a pending request to APPROVED and creates its event atomically.
func (p *EventRequestPostgres) Approve(ctx context.Context, id, facultyID, note string, ev *model.Event, decidedAt time.Time) (*model.EventRequest, error) {
	err := database.WithTx(ctx, p.db, func(tx *sql.Tx) error {
		const upd = `
			UPDATE event_requests
			SET status = $2, faculty_id = $3, event_id = $4, admin_note = $5, decided_at = $6
			WHERE id = $1 AND status = $7
		`
		res, err := tx.ExecContext(ctx, upd, id, model.StatusApproved, facultyID, ev.ID, note, decidedAt, model.StatusPending)
		if err != nil {
			return translate(err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return err
		} else if n == 0 {
			return repository.ErrStale
		}
		_, err = insertEvent(ctx, tx, ev)
		return err
	})
	if err != nil {
		return nil, err
	}
	return p.FindByID(ctx, id)
}

// Reject flips a pending request to REJECTED.
func (p *EventRequestPostgres) Reject(ctx context.Context, id, note string, decidedAt time.Time) (*model.EventRequest, error) {
	const q = `
		UPDATE event_requests
		SET status = $2, admin_note = $3, decided_at = $4
		WHERE id = $1 AND status = $5
	`
	res, err := p.db.ExecContext(ctx, q, id, model.StatusRejected, note, decidedAt, model.StatusPending)
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

// EventPostgres is a PostgreSQL implementation of repository.EventRepository.
type EventPostgres struct {
	db *sql.DB
}

// NewEventPostgres creates a new EventPostgres repository.
func NewEventPostgres(db *sql.DB) *EventPostgres {
	return &EventPostgres{db: db}
}

var _ repository.EventRepository = (*EventPostgres)(nil)

const eventColumns = `id, title, description, venue, starts_at, ends_at, banner_key, faculty_id, request_id, created_by, created_at`

func scanEvent(row interface{ Scan(...any) error }) (*model.Event, error) {
	var e model.Event
	if err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Venue, &e.StartsAt, &e.EndsAt,
		&e.BannerKey, &e.FacultyID, &e.RequestID, &e.CreatedBy, &e.CreatedAt,
	); err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func insertEvent(ctx context.Context, q execer, e *model.Event) (*model.Event, error) {
	const stmt = `
		INSERT INTO events (id, title, description, venue, starts_at, ends_at, banner_key,
		                    faculty_id, request_id, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + eventColumns
	row := q.QueryRowContext(ctx, stmt,
		e.ID, e.Title, e.Description, e.Venue, e.StartsAt, e.EndsAt, e.BannerKey,
		e.FacultyID, e.RequestID, e.CreatedBy, e.CreatedAt,
	)
	return scanEvent(row)
}

// Create inserts an event.
func (p *EventPostgres) Create(ctx context.Context, e *model.Event) (*model.Event, error) {
	return insertEvent(ctx, p.db, e)
}

// FindByID fetches an event.
func (p *EventPostgres) FindByID(ctx context.Context, id string) (*model.Event, error) {
	return scanEvent(p.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id))
}

// List returns events for the window; upcoming events sort soonest first,
// everything else most recent first.
func (p *EventPostgres) List(ctx context.Context, f repository.EventFilter, pq repository.PageQuery) (*repository.PageResult[model.Event], error) {
	var w where
	order := ` ORDER BY starts_at DESC, id DESC`
	switch f.Window {
	case repository.WindowUpcoming:
		w.add("ends_at > ?", f.Now)
		order = ` ORDER BY starts_at ASC, id ASC`
	case repository.WindowPast:
		w.add("ends_at <= ?", f.Now)
	}
	w.like(f.Query, "title", "venue", "description")
	if f.FacultyID != "" {
		w.add("faculty_id = ?", f.FacultyID)
	}

	var total int
	if err := p.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`+w.String(), w.args...).Scan(&total); err != nil {
		return nil, translate(err)
	}

	limit, args := w.page(pq)
	rows, err := p.db.QueryContext(ctx, `SELECT `+eventColumns+` FROM events`+w.String()+order+limit, args...)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	items := make([]model.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Event]{Items: items, Total: total}, nil
}

// SetBanner records the object key of the event banner.
func (p *EventPostgres) SetBanner(ctx context.Context, id, key string) error {
	return mustAffect(p.db.ExecContext(ctx, `UPDATE events SET banner_key = $2 WHERE id = $1`, id, key))
}

// Delete removes an event; its certificates cascade.
func (p *EventPostgres) Delete(ctx context.Context, id string) error {
	return mustAffect(p.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id))
}
