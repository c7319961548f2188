package common

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every repository in the service.
var (
	// ErrNotFound is returned when the targeted row does not exist, or when a
	// guarded statement (owner guard, pending-state guard) matched nothing.
	ErrNotFound = errors.New("not found")

	// ErrCascadeIntegrity marks a cascade that removed fewer dependent rows
	// than it counted. The whole operation is rolled back.
	ErrCascadeIntegrity = errors.New("cascade integrity failure")

	// ErrExternalCoordination marks a failed call to the remote file store.
	ErrExternalCoordination = errors.New("external coordination failure")

	ErrSelfChat       = errors.New("cannot start a chat with yourself")
	ErrSelfFriendship = errors.New("cannot send friend request to yourself")
	ErrNoColumns      = errors.New("no columns to write")
	ErrForbidden      = errors.New("forbidden")
	ErrUnauthorized   = errors.New("invalid username or password")
)

// CascadeError names the cascade step that did not remove what it expected.
type CascadeError struct {
	Step     string
	Expected int64
	Affected int64
}

func (e *CascadeError) Error() string {
	return fmt.Sprintf("cascade step %q removed %d of %d rows", e.Step, e.Affected, e.Expected)
}

func (e *CascadeError) Unwrap() error {
	return ErrCascadeIntegrity
}

// RemoteDeleteError is returned when the file store did not confirm a delete.
type RemoteDeleteError struct {
	Filename string
	Status   int
	Message  string
	Err      error
}

func (e *RemoteDeleteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("remote delete of %q failed: %v", e.Filename, e.Err)
	}
	return fmt.Sprintf("remote delete of %q failed: status %d, message %q", e.Filename, e.Status, e.Message)
}

func (e *RemoteDeleteError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrExternalCoordination, e.Err}
	}
	return []error{ErrExternalCoordination}
}

// ValidationError is a client side input problem.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a client input error.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v) ||
		errors.Is(err, ErrSelfChat) ||
		errors.Is(err, ErrSelfFriendship) ||
		errors.Is(err, ErrNoColumns)
}
