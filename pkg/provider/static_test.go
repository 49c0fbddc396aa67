package provider_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-surveyform/pkg/provider"
)

func TestLoadStaticYAML(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"questions.yaml": {Data: []byte(`
topics:
  Technology:
    - label: Preferred IDE
      name: ide
      type: text
  Health:
    - {label: Hours of sleep, name: sleepHours, type: number}
`)},
	}

	static, err := provider.LoadStatic(fsys, "questions.yaml")
	if err != nil {
		t.Fatalf("LoadStatic: %v", err)
	}
	if static.Topics() != 2 {
		t.Fatalf("expected 2 topics, got %d", static.Topics())
	}

	resp, err := static.GetQuestions(context.Background(), "Health")
	if err != nil {
		t.Fatalf("GetQuestions: %v", err)
	}
	want := []provider.Question{{Label: "Hours of sleep", Name: "sleepHours", Type: "number"}}
	if diff := cmp.Diff(want, resp.Questions); diff != "" {
		t.Fatalf("questions mismatch (-want +got):\n%s", diff)
	}

	resp, err = static.GetQuestions(context.Background(), "Education")
	if err != nil {
		t.Fatalf("GetQuestions: %v", err)
	}
	if len(resp.Questions) != 0 {
		t.Fatalf("expected no questions for unknown topic")
	}
}

func TestLoadStaticJSON(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"q.json": {Data: []byte(`{"topics":{"Education":[{"label":"School","name":"school","type":"text"}]}}`)},
	}
	static, err := provider.LoadStatic(fsys, "q.json")
	if err != nil {
		t.Fatalf("LoadStatic: %v", err)
	}
	resp, _ := static.GetQuestions(context.Background(), "Education")
	if len(resp.Questions) != 1 || resp.Questions[0].Name != "school" {
		t.Fatalf("unexpected questions: %+v", resp.Questions)
	}
}

func TestLoadStaticErrors(t *testing.T) {
	t.Parallel()

	if _, err := provider.LoadStatic(fstest.MapFS{}, "missing.yaml"); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := provider.LoadStatic(fstest.MapFS{"e.yaml": {Data: []byte(" ")}}, "e.yaml"); err == nil {
		t.Fatalf("expected error for empty file")
	}
	if _, err := provider.LoadStatic(nil, "x"); err == nil {
		t.Fatalf("expected error for nil filesystem")
	}
}

func TestStaticHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	static := provider.NewStatic(map[string][]provider.Question{"Health": {{Name: "x"}}})
	if _, err := static.GetQuestions(ctx, "Health"); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestFuncAdapter(t *testing.T) {
	t.Parallel()

	var got string
	p := provider.Func(func(_ context.Context, topic string) (provider.Response, error) {
		got = topic
		return provider.Response{}, nil
	})
	if _, err := p.GetQuestions(context.Background(), "Technology"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Technology" {
		t.Fatalf("topic not forwarded: %q", got)
	}
}
