package schedule

import (
	"errors"
	"fmt"
)

// Error kinds. Every parse failure wraps exactly one of these, so callers
// can branch with errors.Is.
var (
	ErrMalformedField = errors.New("malformed field")
	ErrOutOfDomain    = errors.New("out of domain")
	ErrInvalidRange   = errors.New("invalid range")
	ErrInvalidStep    = errors.New("invalid step")
	ErrMalformedJob   = errors.New("malformed job")
)

// FieldError reports a field that could not be resolved.
type FieldError struct {
	Field  Field
	Token  string // full raw field text
	Kind   error  // one of the Err* kinds
	Detail string
}

func (e *FieldError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s field %q: %v", e.Field, e.Token, e.Kind)
	}
	return fmt.Sprintf("%s field %q: %v: %s", e.Field, e.Token, e.Kind, e.Detail)
}

func (e *FieldError) Unwrap() error { return e.Kind }

// JobError reports which job of a schedule failed to parse.
// Index is zero-based; it is -1 when a single job was parsed on its own.
type JobError struct {
	Index   int
	Segment string
	Err     error
}

func (e *JobError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("job %q: %v", e.Segment, e.Err)
	}
	return fmt.Sprintf("job %d (%q): %v", e.Index+1, e.Segment, e.Err)
}

func (e *JobError) Unwrap() error { return e.Err }

func fieldErr(field Field, token string, kind error, format string, args ...any) *FieldError {
	return &FieldError{Field: field, Token: token, Kind: kind, Detail: fmt.Sprintf(format, args...)}
}
