package render

import (
	"strings"

	"github.com/goliatone/go-surveyform/pkg/model"
)

// FieldError is a validation message paired with the label of its field.
type FieldError struct {
	Field   model.FieldName
	Label   string
	Message string
}

// MapErrors orders validation errors for display: base fields in form order
// first, then any other field sorted by name. Blank messages are dropped.
func MapErrors(errs model.Errors, opts Options) []FieldError {
	if len(errs) == 0 {
		return nil
	}
	def := definition(opts)

	out := make([]FieldError, 0, len(errs))
	seen := make(map[model.FieldName]struct{}, len(errs))
	add := func(name model.FieldName) {
		message := strings.TrimSpace(errs[name])
		seen[name] = struct{}{}
		if message == "" {
			return
		}
		out = append(out, FieldError{
			Field:   name,
			Label:   fieldLabel(opts, def, name),
			Message: message,
		})
	}

	for _, name := range model.BaseFields() {
		if _, ok := errs[name]; ok {
			add(name)
		}
	}
	for _, name := range errs.Fields() {
		if _, done := seen[name]; !done {
			add(name)
		}
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
