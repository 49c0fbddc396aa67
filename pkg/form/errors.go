package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-surveyform/pkg/model"
)

// ErrRejected signals that a submission failed validation.
var ErrRejected = errors.New("form: submission rejected")

// RejectedError carries the per-field messages of a rejected submission.
type RejectedError struct {
	Errors model.Errors
}

func (e *RejectedError) Error() string {
	if e == nil || len(e.Errors) == 0 {
		return ErrRejected.Error()
	}
	fields := e.Errors.Fields()
	names := make([]string, 0, len(fields))
	for _, name := range fields {
		names = append(names, string(name))
	}
	return fmt.Sprintf("%s: %s", ErrRejected.Error(), strings.Join(names, ", "))
}

// Unwrap exposes ErrRejected to errors.Is.
func (e *RejectedError) Unwrap() error {
	return ErrRejected
}
