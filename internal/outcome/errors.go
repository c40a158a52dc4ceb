package outcome

import (
	"errors"
	"fmt"
)

// ValidationError reports an unsupported or malformed request parameter,
// e.g. an unknown content modality. It is the only failure class allowed to
// terminate a step with a hard error; everything else degrades to fallback.
type ValidationError struct {
	Field string
	Value string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Msg)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

// CollaboratorError reports a failed call to an external collaborator
// (search, analysis, generation), including timeouts. Components catch it at
// their boundary and downgrade to a fallback result; it never crosses the
// orchestration loop.
type CollaboratorError struct {
	Collaborator string // "search", "analysis", "generation"
	Op           string
	Err          error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s collaborator %s: %v", e.Collaborator, e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error { return e.Err }

// PersistenceError reports a failed save or load. It surfaces as an
// error-status result with no silent retry.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
