package report

import (
	"errors"
	"fmt"
)

// ValidationError carries every violation found in one validation pass.
// It is always recoverable: the caller fixes the input and resubmits.
// Nothing is ever partially applied when it is returned.
type ValidationError struct {
	Violations Violations
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	blocking := e.Violations.Blocking()
	if len(blocking) == 1 {
		return fmt.Sprintf("report validation failed: %s", blocking[0])
	}
	return fmt.Sprintf("report validation failed with %d blocking violations", len(blocking))
}

// NewValidationError creates a ValidationError from accumulated violations
func NewValidationError(violations Violations) *ValidationError {
	return &ValidationError{Violations: violations}
}

// StateError marks a lifecycle transition that is illegal from the current
// state, as opposed to a data problem.
type StateError struct {
	Status ReportStatus
	Action string
}

// Error implements the error interface
func (e *StateError) Error() string {
	return fmt.Sprintf("cannot %s a report in %s status", e.Action, e.Status)
}

// NewStateError creates a StateError for the attempted action
func NewStateError(status ReportStatus, action string) *StateError {
	return &StateError{Status: status, Action: action}
}

// AuthorizationError marks an actor lacking the role a transition requires
type AuthorizationError struct {
	Action string
	Roles  RoleSet
}

// Error implements the error interface
func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("actor is not authorized to %s this report", e.Action)
}

// NewAuthorizationError creates an AuthorizationError for the attempted action
func NewAuthorizationError(action string, roles RoleSet) *AuthorizationError {
	return &AuthorizationError{Action: action, Roles: roles}
}

// ConflictError marks a uniqueness violation on (cooperative, type, year) or
// an optimistic-concurrency mismatch on a transition
type ConflictError struct {
	Message string
}

// Error implements the error interface
func (e *ConflictError) Error() string {
	return e.Message
}

// NewConflictError creates a ConflictError
func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

// DependencyError wraps a persistence or notification collaborator failure
type DependencyError struct {
	Dependency string
	Err        error
}

// Error implements the error interface
func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s dependency failed: %v", e.Dependency, e.Err)
}

// Unwrap returns the underlying collaborator error
func (e *DependencyError) Unwrap() error {
	return e.Err
}

// NewDependencyError wraps a collaborator failure
func NewDependencyError(dependency string, err error) *DependencyError {
	return &DependencyError{Dependency: dependency, Err: err}
}

// AsValidationError extracts a ValidationError if err is one
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// IsConflict reports whether err is a ConflictError
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// IsStateError reports whether err is a StateError
func IsStateError(err error) bool {
	var se *StateError
	return errors.As(err, &se)
}

// IsAuthorizationError reports whether err is an AuthorizationError
func IsAuthorizationError(err error) bool {
	var ae *AuthorizationError
	return errors.As(err, &ae)
}
