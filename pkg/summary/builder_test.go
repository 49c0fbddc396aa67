package summary_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-surveyform/pkg/model"
	"github.com/goliatone/go-surveyform/pkg/summary"
)

func TestBuildCopiesValuesAndTopicAnswers(t *testing.T) {
	t.Parallel()

	values := model.NewValues(model.Values{
		model.FieldFullName:                    "Ada",
		model.FieldSurveyTopic:                 "Technology",
		model.FieldFavoriteProgrammingLanguage: "Python",
		model.FieldYearsOfExperience:           "5",
		model.FieldExerciseFrequency:           "Daily",
	})
	questions := []model.AdditionalQuestion{{Label: "Preferred IDE", Name: "ide", InputType: "text"}}

	got := summary.Build(values, questions)

	if got.Topic() != model.TopicTechnology {
		t.Fatalf("topic mismatch: %v", got.Topic())
	}
	if got.Value(model.FieldSurveyTopic) != "Technology" {
		t.Fatalf("surveyTopic mismatch: %q", got.Value(model.FieldSurveyTopic))
	}
	// Inactive group values stay in the value map but not in the topic answers.
	if got.Value(model.FieldExerciseFrequency) != "Daily" {
		t.Fatalf("expected inactive values to be copied")
	}
	wantAnswers := []model.TopicAnswer{
		{Field: model.FieldFavoriteProgrammingLanguage, Label: "Favorite Programming Language", Value: "Python"},
		{Field: model.FieldYearsOfExperience, Label: "Years of Experience", Value: "5"},
	}
	if diff := cmp.Diff(wantAnswers, got.TopicAnswers()); diff != "" {
		t.Fatalf("topic answers mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(questions, got.AdditionalQuestions()); diff != "" {
		t.Fatalf("questions mismatch (-want +got):\n%s", diff)
	}

	values[model.FieldFullName] = "Grace"
	if got.Value(model.FieldFullName) != "Ada" {
		t.Fatalf("summary must not alias the input values")
	}
}

func TestBuildWithoutTopic(t *testing.T) {
	t.Parallel()

	got := summary.Build(model.NewValues(model.Values{model.FieldSurveyTopic: "Sports"}), nil)
	if got.Topic() != model.TopicNone {
		t.Fatalf("expected no topic, got %v", got.Topic())
	}
	if len(got.TopicAnswers()) != 0 {
		t.Fatalf("expected no topic answers")
	}
	if got.AdditionalQuestions() != nil {
		t.Fatalf("expected nil questions")
	}
}

func TestBuildWithMeta(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	got := summary.NewBuilder(nil).BuildWith(model.NewValues(nil), nil, summary.Meta{SubmittedAt: at, Sequence: 3})
	if !got.SubmittedAt().Equal(at) || got.Sequence() != 3 {
		t.Fatalf("meta not applied: %v %d", got.SubmittedAt(), got.Sequence())
	}
}
