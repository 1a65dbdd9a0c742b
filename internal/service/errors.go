package service

import (
	"errors"
	"fmt"
	"strings"
)

// Centralized service layer errors. Handlers own the mapping from these
// to HTTP status codes.
var (
	ErrNotAuthenticated   = errors.New("you must be signed in first")
	ErrNotAuthorized      = errors.New("you do not have permission to do that")
	ErrCampgroundNotFound = errors.New("campground not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrStorage            = errors.New("image storage failed")
	ErrPersistence        = errors.New("datastore failure")
)

// FieldError is a single violated field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError carries every violated field of a payload, not just
// the first, so the caller can surface all of them at once.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s %s", f.Field, f.Message))
	}
	return strings.Join(parts, "; ")
}

func storageErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStorage, err)
}

func persistErr(err error) error {
	return fmt.Errorf("%w: %v", ErrPersistence, err)
}
