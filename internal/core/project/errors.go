// Package project turns a language selection into files on disk. It plans
// the file-creation intents for a run and applies them one by one,
// refusing to overwrite anything that already exists.
package project

import (
	"errors"
	"fmt"
)

// Sentinel errors for the project package.
var (
	// ErrAlreadyExists indicates the target path is already occupied.
	ErrAlreadyExists = errors.New("file already exists")

	// ErrWriteFailed indicates the underlying write failed.
	ErrWriteFailed = errors.New("file write failed")

	// ErrInvalidRoot indicates the given target directory is invalid or inaccessible.
	ErrInvalidRoot = errors.New("invalid target directory")
)

// CreationErrorKind classifies a failed file creation.
type CreationErrorKind int

const (
	// AlreadyExists means the path was occupied before the write.
	AlreadyExists CreationErrorKind = iota
	// WriteFailed means the storage operation itself failed.
	WriteFailed
)

// CreationError reports a failed FileCreationIntent.
type CreationError struct {
	Kind CreationErrorKind
	Path string
	Err  error // underlying cause, may be nil
}

// Error implements the error interface.
func (e *CreationError) Error() string {
	switch e.Kind {
	case AlreadyExists:
		return fmt.Sprintf("File %s already exists", e.Path)
	default:
		return fmt.Sprintf("Failed to create file %s", e.Path)
	}
}

// Unwrap returns the underlying cause.
func (e *CreationError) Unwrap() error {
	return e.Err
}

// Is matches ErrAlreadyExists and ErrWriteFailed by kind.
func (e *CreationError) Is(target error) bool {
	switch target {
	case ErrAlreadyExists:
		return e.Kind == AlreadyExists
	case ErrWriteFailed:
		return e.Kind == WriteFailed
	}
	return false
}
