package errx

import (
	"errors"
	"fmt"
)

// Kind classifies an Error so callers can react without string matching.
type Kind string

const (
	KindValidation Kind = "validation"
	KindIO         Kind = "io"
	KindFormat     Kind = "format"
	KindNotFound   Kind = "not_found"
	KindEmpty      Kind = "empty"
)

const (
	// ValidationErrorMessage prefixes rejected user input.
	ValidationErrorMessage = "invalid product"
	// IOErrorMessage describes file system failures.
	IOErrorMessage = "file operation failed"
	// FormatErrorMessage describes a catalog document that is not valid JSON.
	FormatErrorMessage = "malformed catalog document"
	// NotFoundMessage describes a missing catalog document.
	NotFoundMessage = "catalog document not found"
	// EmptyMessage describes an operation that needs at least one product.
	EmptyMessage = "nothing to export"
)

var (
	ErrEmptyName    = errors.New("product name is empty")
	ErrInvalidPrice = errors.New("price must be a non-negative number")
	ErrInvalidStock = errors.New("stock must be a non-negative integer")
	ErrEmptyCatalog = errors.New("catalog is empty")
	ErrNotFound     = errors.New("catalog file not found")
)

// Error wraps an underlying error with a Kind and a safe message.
type Error struct {
	Err     error
	Kind    Kind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error with the provided information.
func New(err error, kind Kind, message string) *Error {
	return &Error{
		Err:     err,
		Kind:    kind,
		Message: message,
	}
}

// Validation marks err as rejected user input.
func Validation(err error) *Error {
	return New(err, KindValidation, ValidationErrorMessage)
}

// Empty marks err as an operation refused because the catalog holds no products.
func Empty(err error) *Error {
	return New(err, KindEmpty, EmptyMessage)
}

// Is reports whether the target matches the underlying error.
func (e *Error) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// As allows casting to Error or the wrapped error in a chain.
func (e *Error) As(target any) bool {
	if errors.As(e.Err, target) {
		return true
	}
	if t, ok := target.(**Error); ok {
		*t = e
		return true
	}
	return false
}

// KindOf returns the Kind of the first Error in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
