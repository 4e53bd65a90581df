package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alumniportal/internal/model"
	"alumniportal/internal/repository"
)

var jobCols = []string{
	"id", "alumni_id", "name", "title", "company", "location", "job_type", "description",
	"apply_url", "deadline", "status", "admin_note", "created_at", "decided_at",
}

func TestJobPostgres_ListOpen(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM jobs j WHERE j.status = \$1 AND \(j.deadline IS NULL OR j.deadline >= \$2\) AND \(j.title ILIKE \$3 OR j.company ILIKE \$4 OR j.location ILIKE \$5\)`).
		WithArgs("APPROVED", now, "%go\\_dev%", "%go\\_dev%", "%go\\_dev%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT (.+) FROM jobs j JOIN users u (.+) ORDER BY j.created_at DESC, j.id DESC LIMIT \$6 OFFSET \$7`).
		WithArgs("APPROVED", now, "%go\\_dev%", "%go\\_dev%", "%go\\_dev%", 10, 0).
		WillReturnRows(sqlmock.NewRows(jobCols).AddRow(
			"j-1", "a-1", "Ana", "Go dev", "Initech", "Remote", "FULL_TIME", "",
			"https://initech.example/jobs/1", nil, "APPROVED", "", now, now,
		))

	res, err := NewJobPostgres(db).List(ctx, repository.JobFilter{
		Status: model.StatusApproved, OpenAt: &now, Query: "go_dev",
	}, repository.PageQuery{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Ana", res.Items[0].PostedBy)
	assert.Equal(t, model.JobFullTime, res.Items[0].JobType)
	assert.Nil(t, res.Items[0].Deadline)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobPostgres_Decide(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("pending job is decided", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("UPDATE jobs").
			WithArgs("j-1", "REJECTED", "spam", now, "PENDING").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`SELECT (.+) FROM jobs j JOIN users u (.+) WHERE j.id = \$1`).
			WithArgs("j-1").
			WillReturnRows(sqlmock.NewRows(jobCols).AddRow(
				"j-1", "a-1", "Ana", "Go dev", "Initech", "", "CONTRACT", "", "", nil, "REJECTED", "spam", now, now,
			))

		got, err := NewJobPostgres(db).Decide(ctx, "j-1", model.StatusRejected, "spam", now)
		require.NoError(t, err)
		assert.Equal(t, model.StatusRejected, got.Status)
		assert.Equal(t, "spam", got.AdminNote)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already decided is stale", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("UPDATE jobs").WillReturnResult(sqlmock.NewResult(0, 0))

		got, err := NewJobPostgres(db).Decide(ctx, "j-1", model.StatusApproved, "", now)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, repository.ErrStale)
	})
}

func TestJobPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM jobs WHERE id = \$1`).WithArgs("j-9").WillReturnResult(sqlmock.NewResult(0, 0))

	err = NewJobPostgres(db).Delete(context.Background(), "j-9")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
