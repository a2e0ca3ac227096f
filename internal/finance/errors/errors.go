package errors

import (
	"errors"
	"fmt"
)

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	ok := errors.As(err, &validationError)
	return ok
}

var ErrInvalidCategory = NewValidationError("Category is not one of the supported categories")
var ErrEmptyTitle = NewValidationError("Title must not be empty")
var ErrNonPositiveAmount = NewValidationError("Amount must be greater than zero")
var ErrNegativeBudget = NewValidationError("Budget amount must not be negative")
var ErrAmountNotFinite = NewValidationError("Amount must be a finite number")
var ErrInvalidMonthKey = NewValidationError("Month must be in YYYY-MM format")

// NotFoundError covers the "record does not exist" case. Ownership
// violations use AuthorizationError instead so diagnostics can tell the two
// apart, but both are surfaced to clients as not found.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

func NewNotFoundError(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

func IsNotFoundError(err error) bool {
	var notFoundError *NotFoundError
	ok := errors.As(err, &notFoundError)
	return ok
}

type AuthorizationError struct {
	Resource string
	ID       string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("%s %q is not owned by the caller", e.Resource, e.ID)
}

func NewAuthorizationError(resource, id string) error {
	return &AuthorizationError{Resource: resource, ID: id}
}

func IsAuthorizationError(err error) bool {
	var authorizationError *AuthorizationError
	ok := errors.As(err, &authorizationError)
	return ok
}

// StorageError wraps a driver-level failure. Callers may retry the whole
// request; the services never retry on their own.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage unavailable during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

func IsStorageError(err error) bool {
	var storageError *StorageError
	ok := errors.As(err, &storageError)
	return ok
}
