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

var requestCols = []string{
	"id", "alumni_id", "name", "title", "description", "venue", "proposed_date",
	"status", "faculty_id", "event_id", "admin_note", "created_at", "decided_at",
}

var eventCols = []string{
	"id", "title", "description", "venue", "starts_at", "ends_at", "banner_key",
	"faculty_id", "request_id", "created_by", "created_at",
}

func TestEventRequestPostgres_Approve(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	reqID := "r-1"
	ev := &model.Event{
		ID:        "e-1",
		Title:     "Reunion",
		StartsAt:  now.Add(48 * time.Hour),
		EndsAt:    now.Add(50 * time.Hour),
		FacultyID: ptr("f-1"),
		RequestID: &reqID,
		CreatedAt: now,
	}

	t.Run("approves and creates event", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE event_requests").
			WithArgs("r-1", "APPROVED", "f-1", "e-1", "looks good", now, "PENDING").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("INSERT INTO events").
			WillReturnRows(sqlmock.NewRows(eventCols).
				AddRow("e-1", "Reunion", "", "", ev.StartsAt, ev.EndsAt, "", "f-1", "r-1", nil, now))
		mock.ExpectCommit()
		mock.ExpectQuery(`SELECT (.+) FROM event_requests r JOIN users u (.+) WHERE r.id = \$1`).
			WithArgs("r-1").
			WillReturnRows(sqlmock.NewRows(requestCols).
				AddRow("r-1", "a-1", "Ana", "Reunion", "", "", ev.StartsAt, "APPROVED", "f-1", "e-1", "looks good", now, now))

		got, err := NewEventRequestPostgres(db).Approve(ctx, "r-1", "f-1", "looks good", ev, now)
		require.NoError(t, err)
		assert.Equal(t, model.StatusApproved, got.Status)
		require.NotNil(t, got.EventID)
		assert.Equal(t, "e-1", *got.EventID)
		require.NotNil(t, got.DecidedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already decided", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE event_requests").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		got, err := NewEventRequestPostgres(db).Approve(ctx, "r-1", "f-1", "", ev, now)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, repository.ErrStale)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEventRequestPostgres_Reject(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	repo := NewEventRequestPostgres(db)

	mock.ExpectExec("UPDATE event_requests").
		WithArgs("r-2", "REJECTED", "clashes with exams", now, "PENDING").
		WillReturnResult(sqlmock.NewResult(0, 0))

	got, err := repo.Reject(context.Background(), "r-2", "clashes with exams", now)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, repository.ErrStale)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRequestPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM event_requests r WHERE r.alumni_id = \$1 AND r.status = \$2`).
		WithArgs("a-1", "PENDING").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT (.+) FROM event_requests r (.+) ORDER BY r.created_at DESC`).
		WithArgs("a-1", "PENDING", 10, 0).
		WillReturnRows(sqlmock.NewRows(requestCols).
			AddRow("r-1", "a-1", "Ana", "Meetup", "", "", now, "PENDING", nil, nil, "", now, nil))

	res, err := NewEventRequestPostgres(db).List(context.Background(),
		repository.EventRequestFilter{AlumniID: "a-1", Status: model.StatusPending},
		repository.PageQuery{Limit: 10})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Nil(t, res.Items[0].FacultyID)
	assert.Nil(t, res.Items[0].DecidedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventPostgres_ListUpcoming(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM events WHERE ends_at > \$1`).
		WithArgs(now).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT (.+) FROM events WHERE ends_at > \$1 ORDER BY starts_at ASC, id ASC LIMIT \$2 OFFSET \$3`).
		WithArgs(now, 5, 0).
		WillReturnRows(sqlmock.NewRows(eventCols).
			AddRow("e-1", "Reunion", "", "Main hall", now.Add(time.Hour), now.Add(2*time.Hour), "", nil, nil, nil, now))

	res, err := NewEventPostgres(db).List(context.Background(),
		repository.EventFilter{Window: repository.WindowUpcoming, Now: now},
		repository.PageQuery{Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, "Main hall", res.Items[0].Venue)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventPostgres_SetBanner(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE events SET banner_key").
		WithArgs("e-9", "events/x.png").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = NewEventPostgres(db).SetBanner(context.Background(), "e-9", "events/x.png")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func ptr(s string) *string { return &s }
