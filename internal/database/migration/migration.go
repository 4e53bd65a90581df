package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id            UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  email         TEXT        NOT NULL UNIQUE,
  password_hash TEXT        NOT NULL,
  name          TEXT        NOT NULL,
  role          TEXT        NOT NULL CHECK (role IN ('ADMIN', 'ALUMNI', 'FACULTY')),
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_alumni",
		SQL: `CREATE TABLE IF NOT EXISTS alumni (
  user_id         UUID        PRIMARY KEY REFERENCES users (id) ON DELETE CASCADE,
  enrollment_no   TEXT        NOT NULL DEFAULT '',
  department      TEXT        NOT NULL DEFAULT '',
  graduation_year INT         NOT NULL DEFAULT 0,
  company         TEXT        NOT NULL DEFAULT '',
  designation     TEXT        NOT NULL DEFAULT '',
  phone           TEXT        NOT NULL DEFAULT '',
  linkedin_url    TEXT        NOT NULL DEFAULT '',
  location        TEXT        NOT NULL DEFAULT '',
  bio             TEXT        NOT NULL DEFAULT '',
  updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_faculty",
		SQL: `CREATE TABLE IF NOT EXISTS faculty (
  user_id     UUID        PRIMARY KEY REFERENCES users (id) ON DELETE CASCADE,
  department  TEXT        NOT NULL DEFAULT '',
  designation TEXT        NOT NULL DEFAULT '',
  phone       TEXT        NOT NULL DEFAULT '',
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_event_requests",
		SQL: `CREATE TABLE IF NOT EXISTS event_requests (
  id            UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  alumni_id     UUID        NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  title         TEXT        NOT NULL,
  description   TEXT        NOT NULL DEFAULT '',
  venue         TEXT        NOT NULL DEFAULT '',
  proposed_date TIMESTAMPTZ NOT NULL,
  status        TEXT        NOT NULL DEFAULT 'PENDING' CHECK (status IN ('PENDING', 'APPROVED', 'REJECTED')),
  faculty_id    UUID        REFERENCES users (id) ON DELETE SET NULL,
  event_id      UUID,
  admin_note    TEXT        NOT NULL DEFAULT '',
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
  decided_at    TIMESTAMPTZ
);`,
	},
	{
		Name: "create_table_events",
		SQL: `CREATE TABLE IF NOT EXISTS events (
  id          UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  title       TEXT        NOT NULL,
  description TEXT        NOT NULL DEFAULT '',
  venue       TEXT        NOT NULL DEFAULT '',
  starts_at   TIMESTAMPTZ NOT NULL,
  ends_at     TIMESTAMPTZ NOT NULL CHECK (ends_at >= starts_at),
  banner_key  TEXT        NOT NULL DEFAULT '',
  faculty_id  UUID        REFERENCES users (id) ON DELETE SET NULL,
  request_id  UUID        UNIQUE REFERENCES event_requests (id) ON DELETE SET NULL,
  created_by  UUID        REFERENCES users (id) ON DELETE SET NULL,
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_jobs",
		SQL: `CREATE TABLE IF NOT EXISTS jobs (
  id          UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  alumni_id   UUID        NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  title       TEXT        NOT NULL,
  company     TEXT        NOT NULL,
  location    TEXT        NOT NULL DEFAULT '',
  job_type    TEXT        NOT NULL,
  description TEXT        NOT NULL DEFAULT '',
  apply_url   TEXT        NOT NULL DEFAULT '',
  deadline    TIMESTAMPTZ,
  status      TEXT        NOT NULL DEFAULT 'PENDING' CHECK (status IN ('PENDING', 'APPROVED', 'REJECTED')),
  admin_note  TEXT        NOT NULL DEFAULT '',
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  decided_at  TIMESTAMPTZ
);`,
	},
	{
		Name: "create_table_certificates",
		SQL: `CREATE TABLE IF NOT EXISTS certificates (
  id           UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  alumni_id    UUID        NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  event_id     UUID        NOT NULL REFERENCES events (id) ON DELETE CASCADE,
  faculty_id   UUID        NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  title        TEXT        NOT NULL,
  file_key     TEXT        NOT NULL UNIQUE,
  content_type TEXT        NOT NULL,
  size         BIGINT      NOT NULL CHECK (size >= 0),
  issued_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
  UNIQUE (alumni_id, event_id)
);`,
	},
	{
		Name: "create_table_posts",
		SQL: `CREATE TABLE IF NOT EXISTS posts (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  author_id  UUID        REFERENCES users (id) ON DELETE SET NULL,
  kind       TEXT        NOT NULL CHECK (kind IN ('NEWS', 'GALLERY')),
  title      TEXT        NOT NULL,
  body       TEXT        NOT NULL DEFAULT '',
  image_key  TEXT        NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_event_requests_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_event_requests_status ON event_requests (status, created_at);`,
	},
	{
		Name: "create_index_events_starts_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_events_starts_at ON events (starts_at);`,
	},
	{
		Name: "create_index_jobs_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_jobs_status ON jobs (status, created_at);`,
	},
	{
		Name: "create_index_certificates_alumni",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_certificates_alumni ON certificates (alumni_id);`,
	},
	{
		Name: "create_index_posts_kind",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_posts_kind ON posts (kind, created_at);`,
	},
}

// EnsureMigrated checks if the 'users' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, log logrus.FieldLogger, dbHost string) error {
	start := time.Now()
	log = log.WithFields(logrus.Fields{"component": "database", "db_host": dbHost})

	log.WithField("event", "db_migration_check").Info("checking schema")

	var exists bool
	query := "SELECT to_regclass('public.users') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.WithFields(logrus.Fields{
			"event":       "db_migration_failed",
			"error":       err.Error(),
			"duration_ms": time.Since(start).Milliseconds(),
		}).Error("failed to check sentinel table")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.WithFields(logrus.Fields{
			"event":       "db_migration_skip",
			"duration_ms": time.Since(start).Milliseconds(),
		}).Info("schema already exists, skipping migration")
		return nil
	}

	log.WithField("event", "db_migration_start").Info("applying schema")

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.WithFields(logrus.Fields{
				"event":            "db_migration_failed",
				"migration_step":   step.Name,
				"error":            err.Error(),
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			}).Error("migration step failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.WithFields(logrus.Fields{
			"event":            "db_migration_step",
			"migration_step":   step.Name,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		}).Info("migration step applied")
	}

	log.WithFields(logrus.Fields{
		"event":       "db_migration_success",
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("schema migrated")

	return nil
}
