package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

func (err ValidationError) Unwrap() error { return err.Err }

func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// SerializationError reports a collection whose persisted value cannot be encoded or decoded.
type SerializationError struct {
	Collection string
	Err        error
}

func NewSerializationError(collection string, err error) error {
	return &SerializationError{Collection: collection, Err: err}
}

func (err SerializationError) Error() string {
	return fmt.Sprintf("collection %q: %v", err.Collection, err.Err)
}

func (err SerializationError) Unwrap() error { return err.Err }

func IsSerialization(err error) bool {
	var serr *SerializationError
	return errors.As(err, &serr)
}
