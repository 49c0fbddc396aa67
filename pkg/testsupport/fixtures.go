package testsupport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-surveyform/pkg/model"
	"github.com/goliatone/go-surveyform/pkg/summary"
)

// MustLoadJSON reads a JSON fixture into out.
func MustLoadJSON(t *testing.T, path string, out any) {
	t.Helper()

	if err := LoadJSON(path, out); err != nil {
		t.Fatalf("load fixture: %v", err)
	}
}

// LoadJSON reads a JSON fixture into out, returning an error for callers
// managing setup outside of *testing.T.
func LoadJSON(path string, out any) error {
	if path == "" {
		return errors.New("testsupport: fixture path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("testsupport: read fixture: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("testsupport: unmarshal fixture: %w", err)
	}
	return nil
}

// SampleSummary returns an accepted Technology submission with one
// additional question, stamped with a fixed time and sequence 1.
func SampleSummary() model.Summary {
	values := model.NewValues(model.Values{
		model.FieldFullName:                    "Ada Lovelace",
		model.FieldEmail:                       "ada@example.com",
		model.FieldSurveyTopic:                 "Technology",
		model.FieldFavoriteProgrammingLanguage: "Python",
		model.FieldYearsOfExperience:           "5",
		model.FieldFeedback:                    "Tom & Jerry <3",
	})
	questions := []model.AdditionalQuestion{
		{Label: "Preferred IDE", Name: "ide", InputType: "text"},
	}
	return summary.NewBuilder(nil).BuildWith(values, questions, summary.Meta{
		SubmittedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Sequence:    1,
	})
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents. Tests can assert
// the renderer returns and writes the same payload without duplicating buffer
// setup.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
