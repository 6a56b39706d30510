package appointment

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a read against an appointment id that no longer
// exists.
var ErrNotFound = errors.New("appointment not found")

// Validation failure codes surfaced to the presentation layer.
const (
	CodeMissingPatient = "missing_patient"
	CodeMissingDoctor  = "missing_doctor"
	CodeNoSelection    = "no_selection"
)

// ValidationError reports input the engines refuse to act on. It is
// always raised before any statement touches the database, so a
// validation failure has no partial effect.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var (
	ErrMissingPatient = &ValidationError{Code: CodeMissingPatient, Message: "no patient selected"}
	ErrMissingDoctor  = &ValidationError{Code: CodeMissingDoctor, Message: "no doctor selected"}
	ErrNoSelection    = &ValidationError{Code: CodeNoSelection, Message: "no appointment selected"}
)

// PersistenceError wraps a failure during statement execution or commit.
// By the time it surfaces, the surrounding transaction has been rolled
// back completely.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *PersistenceError) Unwrap() error { return e.Err }
