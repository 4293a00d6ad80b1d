package store

import "errors"

var (
	// ErrAlreadyExists is returned by Create when the id is already indexed.
	ErrAlreadyExists = errors.New("plinth: record already exists")

	// ErrIDMutated is returned when a transform changes the id of an
	// existing record. Record ids are immutable after creation.
	ErrIDMutated = errors.New("plinth: transform changed record id")
)
