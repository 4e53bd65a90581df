package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"alumniportal/internal/repository"
)

func TestPageQuery(t *testing.T) {
	assert.Equal(t, repository.PageQuery{Limit: 10, Offset: 0}, pageQuery(0, -5))
	assert.Equal(t, repository.PageQuery{Limit: 100, Offset: 20}, pageQuery(1000, 20))
	assert.Equal(t, repository.PageQuery{Limit: 7, Offset: 3}, pageQuery(7, 3))
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"title": "is required", "deadline": "must not be in the past"}}
	assert.ErrorIs(t, err, ErrValidation)
	assert.EqualError(t, err, "validation failed: deadline: must not be in the past; title: is required")

	wrapped := fmt.Errorf("create: %w", invalid("when", "bad"))
	var verr *ValidationError
	assert.True(t, errors.As(wrapped, &verr))
	assert.Equal(t, "bad", verr.Fields["when"])
}

func TestMapRepoErr(t *testing.T) {
	assert.NoError(t, mapRepoErr(nil))
	assert.ErrorIs(t, mapRepoErr(repository.ErrNotFound), ErrNotFound)
	assert.ErrorIs(t, mapRepoErr(repository.ErrInvalidReference), ErrNotFound)
	assert.ErrorIs(t, mapRepoErr(repository.ErrStale), ErrAlreadyDecided)
	assert.ErrorIs(t, mapRepoErr(fmt.Errorf("insert: %w", repository.ErrConflict)), ErrDuplicate)

	other := errors.New("boom")
	assert.Same(t, other, mapRepoErr(other))
}
