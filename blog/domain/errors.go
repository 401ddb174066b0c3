package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates an operation targeted a post id that doesn't
	// resolve to an existing post, or that the backing file has gone missing.
	ErrNotFound = errors.New("post not found")

	// ErrNotInTrash indicates a purge was attempted on a post that hasn't
	// been soft-deleted first.
	ErrNotInTrash = errors.New("post is not in the trash")
)

// ParseError indicates a persisted record could not be decoded. Bulk listing
// treats it as skip-this-record, never as a fatal error.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed post record: %v", e.Err)
	}
	return fmt.Sprintf("malformed post record %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
