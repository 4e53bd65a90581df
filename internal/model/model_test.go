package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	r, ok := ParseRole(" faculty ")
	assert.True(t, ok)
	assert.Equal(t, RoleFaculty, r)
	assert.Equal(t, "faculty", r.Slug())

	_, ok = ParseRole("student")
	assert.False(t, ok)
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusRejected.Valid())
	assert.False(t, Status("DONE").Valid())
}

func TestEventFinished(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	e := Event{EndsAt: now}
	assert.True(t, e.Finished(now))

	e.EndsAt = now.Add(time.Minute)
	assert.False(t, e.Finished(now))
}
