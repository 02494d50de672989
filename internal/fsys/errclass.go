// Package fsys provides the OS-backed filesystem collaborator consumed
// by the allocation, mapping and output components, an in-memory
// variant built on afero for testing and alternate backends, and the
// recursive directory remover.
package fsys

import (
	"errors"
	"io/fs"
)

// Classification sentinels for filesystem errors. Every error returned
// by this package wraps exactly one of these (or none, for
// platform-opaque failures that fit no category). Match with errors.Is.
var (
	// ErrNotFound: the target or one of its parents does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrExists: exclusive creation collided with an existing entity.
	ErrExists = errors.New("entity already exists")

	// ErrPermission: the operation was denied.
	ErrPermission = errors.New("permission denied")

	// ErrExhausted: out of space, descriptors, or address space.
	ErrExhausted = errors.New("resource exhausted")

	// ErrInvalidArgument: a zero-length path, a size overflow, or a
	// request the entity kind cannot satisfy.
	ErrInvalidArgument = errors.New("invalid argument")
)

// classifiedError carries both the taxonomy sentinel and the verbatim
// underlying error, so callers can match either.
type classifiedError struct {
	kind error
	err  error
}

func (e *classifiedError) Error() string {
	return e.err.Error()
}

func (e *classifiedError) Unwrap() []error {
	return []error{e.kind, e.err}
}

// Classify wraps err with the taxonomy sentinel it belongs to. Errors
// outside the taxonomy are returned unchanged, preserved verbatim.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &classifiedError{kind: ErrNotFound, err: err}
	case errors.Is(err, fs.ErrExist):
		return &classifiedError{kind: ErrExists, err: err}
	case errors.Is(err, fs.ErrPermission):
		return &classifiedError{kind: ErrPermission, err: err}
	case errors.Is(err, fs.ErrInvalid):
		return &classifiedError{kind: ErrInvalidArgument, err: err}
	}

	if kind := classifyErrno(err); kind != nil {
		return &classifiedError{kind: kind, err: err}
	}
	return err
}

// IsNotFound reports whether err is classified as not-found.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsExists reports whether err is classified as a name collision.
func IsExists(err error) bool { return errors.Is(err, ErrExists) }

// IsPermission reports whether err is classified as permission-denied.
func IsPermission(err error) bool { return errors.Is(err, ErrPermission) }
