// Package service holds the portal's use cases: who may do what, and the
// PENDING/APPROVED/REJECTED transitions. Persistence sits behind repository
// interfaces and files behind storage.Storage.
package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"alumniportal/internal/repository"
)

var (
	ErrIDRequired         = errors.New("id is required")
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrAlreadyDecided     = errors.New("request has already been decided")
	ErrForbidden          = errors.New("not allowed")
	ErrEventNotFinished   = errors.New("event has not finished yet")
	ErrDuplicate          = errors.New("duplicate record")
	ErrReaderNil          = errors.New("reader is nil")
	ErrValidation         = errors.New("validation failed")
)

// ValidationError lists offending fields. It matches ErrValidation with errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, msg string) error {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// ListResult is the service-level DTO for paginated listings.
type ListResult[T any] struct {
	Items  []T `json:"data"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

const (
	defaultLimit = 10
	maxLimit     = 100
)

func pageQuery(limit, offset int) repository.PageQuery {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return repository.PageQuery{Limit: limit, Offset: offset}
}

func toList[T any](res *repository.PageResult[T], pq repository.PageQuery) *ListResult[T] {
	return &ListResult[T]{Items: res.Items, Total: res.Total, Limit: pq.Limit, Offset: pq.Offset}
}

// mapRepoErr converts repository sentinels into service errors.
func mapRepoErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrStale):
		return ErrAlreadyDecided
	case errors.Is(err, repository.ErrConflict):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	case errors.Is(err, repository.ErrInvalidReference):
		return ErrNotFound
	}
	return err
}

type clock func() time.Time

func (c clock) now() time.Time {
	if c == nil {
		return time.Now().UTC()
	}
	return c().UTC()
}
