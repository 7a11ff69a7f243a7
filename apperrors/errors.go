// error taxonomy shared by services and handlers; handlers map each kind to one HTTP status.

package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors. Services return (or wrap) these; handlers never inspect messages.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrEmailTaken   = errors.New("email already exists")
	ErrInvalidLogin = errors.New("invalid credentials")
)

// ValidationError carries field-level problems keyed by the JSON field name.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError builds a ValidationError with a single field message.
func NewValidationError(field, msg string) *ValidationError {
	v := &ValidationError{Fields: map[string][]string{}}
	v.Add(field, msg)
	return v
}

// Add appends a message for field.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = map[string][]string{}
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation error"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], ", ")))
	}
	return "validation error: " + strings.Join(parts, "; ")
}

// UpstreamError wraps a persistence or mail-provider failure.
// Op names the failing operation for logs; the cause never reaches the client.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return e.Op + ": upstream failure"
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Upstream wraps err as an UpstreamError; nil stays nil.
func Upstream(op string, err error) error {
	if err == nil {
		return nil
	}
	return &UpstreamError{Op: op, Err: err}
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsUpstream(err error) bool {
	var target *UpstreamError
	return errors.As(err, &target)
}
