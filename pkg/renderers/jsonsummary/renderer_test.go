package jsonsummary_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"

	"github.com/goliatone/go-surveyform/pkg/model"
	"github.com/goliatone/go-surveyform/pkg/render"
	"github.com/goliatone/go-surveyform/pkg/renderers/jsonsummary"
	"github.com/goliatone/go-surveyform/pkg/summary"
	"github.com/goliatone/go-surveyform/pkg/testsupport"
)

func decode(t *testing.T, data []byte) any {
	t.Helper()
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("decode: %v\n%s", err, data)
	}
	return out
}

func TestRenderer_MatchesGolden(t *testing.T) {
	renderer := jsonsummary.New()
	if renderer.Name() != "json" || renderer.ContentType() != "application/json" {
		t.Fatalf("unexpected identity %s %s", renderer.Name(), renderer.ContentType())
	}

	out, err := renderer.Render(context.Background(), testsupport.SampleSummary(), render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	goldenPath := filepath.Join("testdata", "technology.golden.json")
	if testsupport.WriteMaybeGolden(t, goldenPath, out) {
		return
	}
	var want any
	testsupport.MustLoadJSON(t, goldenPath, &want)
	if diff := testsupport.CompareGolden(want, decode(t, out)); diff != "" {
		t.Fatalf("json output mismatch (-want +got):\n%s", diff)
	}
	if !bytes.HasPrefix(out, []byte("{\n  \"title\"")) {
		t.Fatalf("expected indented output, got %s", out)
	}
}

func TestRenderer_CompactAndEmptyLists(t *testing.T) {
	s := summary.Build(model.NewValues(nil), nil)

	out, err := jsonsummary.New(jsonsummary.WithIndent("")).Render(context.Background(), s, render.Options{Title: "Done"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if bytes.Contains(bytes.TrimSpace(out), []byte("\n")) {
		t.Fatalf("expected compact output, got %s", out)
	}

	doc := decode(t, out).(map[string]any)
	if doc["title"] != "Done" {
		t.Fatalf("title override ignored: %v", doc["title"])
	}
	body := doc["summary"].(map[string]any)
	if questions, ok := body["additionalQuestions"].([]any); !ok || len(questions) != 0 {
		t.Fatalf("expected empty questions array, got %#v", body["additionalQuestions"])
	}
	if answers, ok := body["topicAnswers"].([]any); !ok || len(answers) != 0 {
		t.Fatalf("expected empty topic answers array, got %#v", body["topicAnswers"])
	}
}
