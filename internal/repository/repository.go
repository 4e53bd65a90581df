// Package repository contains data access abstractions. Implementations live
// in subpackages (postgres) and contain no business rules beyond the
// conditional updates needed to keep status transitions race free.
package repository

import "errors"

var (
	// ErrNotFound is returned when no row matches the lookup.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned on unique constraint violations.
	ErrConflict = errors.New("record already exists")
	// ErrInvalidReference is returned when a foreign key points nowhere.
	ErrInvalidReference = errors.New("referenced record does not exist")
	// ErrStale is returned when a conditional update matched no row because
	// the record left the expected state.
	ErrStale = errors.New("record state changed")
)

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
