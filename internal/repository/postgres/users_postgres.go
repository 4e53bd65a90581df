package postgres

import (
	"context"
	"database/sql"

	"alumniportal/internal/database"
	"alumniportal/internal/model"
	"alumniportal/internal/repository"
)

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
type UserPostgres struct {
	db *sql.DB
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

const userColumns = `id, email, password_hash, name, role, created_at`

func insertUser(ctx context.Context, q execer, u *model.User) (*model.User, error) {
	const stmt = `
		INSERT INTO users (id, email, password_hash, name, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns
	row := q.QueryRowContext(ctx, stmt, u.ID, u.Email, u.PasswordHash, u.Name, u.Role, u.CreatedAt)
	return scanUser(row)
}

func scanUser(row interface{ Scan(...any) error }) (*model.User, error) {
	var out model.User
	if err := row.Scan(&out.ID, &out.Email, &out.PasswordHash, &out.Name, &out.Role, &out.CreatedAt); err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

// Create inserts an account without a profile.
func (r *UserPostgres) Create(ctx context.Context, u *model.User) (*model.User, error) {
	return insertUser(ctx, r.db, u)
}

// CreateAlumni inserts the account and alumni profile in one transaction.
func (r *UserPostgres) CreateAlumni(ctx context.Context, u *model.User, a *model.Alumni) (*model.User, error) {
	var out *model.User
	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		created, err := insertUser(ctx, tx, u)
		if err != nil {
			return err
		}
		const stmt = `
			INSERT INTO alumni (user_id, enrollment_no, department, graduation_year, company,
			                    designation, phone, linkedin_url, location, bio, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`
		if _, err := tx.ExecContext(ctx, stmt,
			created.ID, a.EnrollmentNo, a.Department, a.GraduationYear, a.Company,
			a.Designation, a.Phone, a.LinkedInURL, a.Location, a.Bio, created.CreatedAt,
		); err != nil {
			return translate(err)
		}
		out = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreateFaculty inserts the account and faculty profile in one transaction.
func (r *UserPostgres) CreateFaculty(ctx context.Context, u *model.User, f *model.Faculty) (*model.User, error) {
	var out *model.User
	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		created, err := insertUser(ctx, tx, u)
		if err != nil {
			return err
		}
		const stmt = `
			INSERT INTO faculty (user_id, department, designation, phone, updated_at)
			VALUES ($1, $2, $3, $4, $5)
		`
		if _, err := tx.ExecContext(ctx, stmt,
			created.ID, f.Department, f.Designation, f.Phone, created.CreatedAt,
		); err != nil {
			return translate(err)
		}
		out = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID fetches an account by id.
func (r *UserPostgres) FindByID(ctx context.Context, id string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, q, id))
}

// FindByEmail fetches an account by its lower-cased email.
func (r *UserPostgres) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE email = lower($1)`
	return scanUser(r.db.QueryRowContext(ctx, q, email))
}

// Delete removes an account and, by cascade, everything it owns.
func (r *UserPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM users WHERE id = $1`
	return mustAffect(r.db.ExecContext(ctx, q, id))
}

// AlumniPostgres is a PostgreSQL implementation of repository.AlumniRepository.
type AlumniPostgres struct {
	db *sql.DB
}

// NewAlumniPostgres creates a new AlumniPostgres repository.
func NewAlumniPostgres(db *sql.DB) *AlumniPostgres {
	return &AlumniPostgres{db: db}
}

var _ repository.AlumniRepository = (*AlumniPostgres)(nil)

const alumniSelect = `
	SELECT u.id, u.name, u.email, a.enrollment_no, a.department, a.graduation_year,
	       a.company, a.designation, a.phone, a.linkedin_url, a.location, a.bio, a.updated_at
	FROM alumni a
	JOIN users u ON u.id = a.user_id`

func scanAlumni(row interface{ Scan(...any) error }) (*model.Alumni, error) {
	var a model.Alumni
	if err := row.Scan(
		&a.UserID, &a.Name, &a.Email, &a.EnrollmentNo, &a.Department, &a.GraduationYear,
		&a.Company, &a.Designation, &a.Phone, &a.LinkedInURL, &a.Location, &a.Bio, &a.UpdatedAt,
	); err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

// List returns alumni ordered by name with a total count for the filter.
func (r *AlumniPostgres) List(ctx context.Context, f repository.DirectoryFilter, pq repository.PageQuery) (*repository.PageResult[model.Alumni], error) {
	var w where
	w.like(f.Query, "u.name", "u.email", "a.department", "a.company", "a.designation")
	if f.Department != "" {
		w.add("lower(a.department) = lower(?)", f.Department)
	}
	if f.GraduationYear > 0 {
		w.add("a.graduation_year = ?", f.GraduationYear)
	}

	var total int
	countQ := `SELECT COUNT(*) FROM alumni a JOIN users u ON u.id = a.user_id` + w.String()
	if err := r.db.QueryRowContext(ctx, countQ, w.args...).Scan(&total); err != nil {
		return nil, translate(err)
	}

	limit, args := w.page(pq)
	rows, err := r.db.QueryContext(ctx, alumniSelect+w.String()+` ORDER BY u.name ASC, u.id ASC`+limit, args...)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	items := make([]model.Alumni, 0)
	for rows.Next() {
		a, err := scanAlumni(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Alumni]{Items: items, Total: total}, nil
}

// FindByID fetches one alumni profile.
func (r *AlumniPostgres) FindByID(ctx context.Context, id string) (*model.Alumni, error) {
	return scanAlumni(r.db.QueryRowContext(ctx, alumniSelect+` WHERE u.id = $1`, id))
}

// Update overwrites the editable profile fields and the display name.
func (r *AlumniPostgres) Update(ctx context.Context, a *model.Alumni) (*model.Alumni, error) {
	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := mustAffect(tx.ExecContext(ctx, `UPDATE users SET name = $2 WHERE id = $1`, a.UserID, a.Name)); err != nil {
			return err
		}
		const stmt = `
			UPDATE alumni
			SET enrollment_no = $2, department = $3, graduation_year = $4, company = $5,
			    designation = $6, phone = $7, linkedin_url = $8, location = $9, bio = $10, updated_at = $11
			WHERE user_id = $1
		`
		return mustAffect(tx.ExecContext(ctx, stmt,
			a.UserID, a.EnrollmentNo, a.Department, a.GraduationYear, a.Company,
			a.Designation, a.Phone, a.LinkedInURL, a.Location, a.Bio, a.UpdatedAt,
		))
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, a.UserID)
}

// FacultyPostgres is a PostgreSQL implementation of repository.FacultyRepository.
type FacultyPostgres struct {
	db *sql.DB
}

// NewFacultyPostgres creates a new FacultyPostgres repository.
func NewFacultyPostgres(db *sql.DB) *FacultyPostgres {
	return &FacultyPostgres{db: db}
}

var _ repository.FacultyRepository = (*FacultyPostgres)(nil)

const facultySelect = `
	SELECT u.id, u.name, u.email, f.department, f.designation, f.phone, f.updated_at
	FROM faculty f
	JOIN users u ON u.id = f.user_id`

func scanFaculty(row interface{ Scan(...any) error }) (*model.Faculty, error) {
	var f model.Faculty
	if err := row.Scan(&f.UserID, &f.Name, &f.Email, &f.Department, &f.Designation, &f.Phone, &f.UpdatedAt); err != nil {
		return nil, translate(err)
	}
	return &f, nil
}

// List returns faculty ordered by name with a total count for the filter.
func (r *FacultyPostgres) List(ctx context.Context, f repository.DirectoryFilter, pq repository.PageQuery) (*repository.PageResult[model.Faculty], error) {
	var w where
	w.like(f.Query, "u.name", "u.email", "f.department", "f.designation")
	if f.Department != "" {
		w.add("lower(f.department) = lower(?)", f.Department)
	}

	var total int
	countQ := `SELECT COUNT(*) FROM faculty f JOIN users u ON u.id = f.user_id` + w.String()
	if err := r.db.QueryRowContext(ctx, countQ, w.args...).Scan(&total); err != nil {
		return nil, translate(err)
	}

	limit, args := w.page(pq)
	rows, err := r.db.QueryContext(ctx, facultySelect+w.String()+` ORDER BY u.name ASC, u.id ASC`+limit, args...)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	items := make([]model.Faculty, 0)
	for rows.Next() {
		fc, err := scanFaculty(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *fc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Faculty]{Items: items, Total: total}, nil
}

// FindByID fetches one faculty profile.
func (r *FacultyPostgres) FindByID(ctx context.Context, id string) (*model.Faculty, error) {
	return scanFaculty(r.db.QueryRowContext(ctx, facultySelect+` WHERE u.id = $1`, id))
}

// Update overwrites the editable profile fields and the display name.
func (r *FacultyPostgres) Update(ctx context.Context, f *model.Faculty) (*model.Faculty, error) {
	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := mustAffect(tx.ExecContext(ctx, `UPDATE users SET name = $2 WHERE id = $1`, f.UserID, f.Name)); err != nil {
			return err
		}
		const stmt = `
			UPDATE faculty
			SET department = $2, designation = $3, phone = $4, updated_at = $5
			WHERE user_id = $1
		`
		return mustAffect(tx.ExecContext(ctx, stmt, f.UserID, f.Department, f.Designation, f.Phone, f.UpdatedAt))
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, f.UserID)
}
