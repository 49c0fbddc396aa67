package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-surveyform/pkg/form"
	"github.com/goliatone/go-surveyform/pkg/model"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	confirm      []bool
	textAreas    []string
	asked        []string
	infoMessages []string
	inputPos     int
	selectPos    int
	confirmPos   int
	textPos      int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.asked = append(s.asked, cfg.Message)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	s.asked = append(s.asked, cfg.Message)
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.asked = append(s.asked, cfg.Message)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, cfg TextAreaConfig) (string, error) {
	s.asked = append(s.asked, cfg.Message)
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func technologyQuestions() form.Enricher {
	return form.EnricherFunc(func(_ context.Context, topic string) []model.AdditionalQuestion {
		if topic != "Technology" {
			return nil
		}
		return []model.AdditionalQuestion{{Label: "Preferred IDE", Name: "ide", InputType: "text"}}
	})
}

func TestSession_HappyPath(t *testing.T) {
	store := form.New(form.WithEnricher(technologyQuestions()))
	driver := &stubDriver{
		inputs:    []string{"Ada Lovelace", "ada@example.com", "5"},
		selectIdx: []int{0, 1},
		textAreas: []string{"Great survey"},
	}
	session, err := NewSession(store, WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	summary, err := session.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	store.Wait()

	wantAsked := []string{
		"Full Name",
		"Email",
		"Survey Topic",
		"Favorite Programming Language",
		"Years of Experience",
		"Feedback",
	}
	if diff := cmp.Diff(wantAsked, driver.asked); diff != "" {
		t.Fatalf("prompt order mismatch (-want +got):\n%s", diff)
	}

	if summary.Topic() != model.TopicTechnology {
		t.Fatalf("expected Technology summary, got %v", summary.Topic())
	}
	if got := summary.Value(model.FieldFavoriteProgrammingLanguage); got != "Python" {
		t.Fatalf("expected Python, got %q", got)
	}
	if got := summary.Value(model.FieldFeedback); got != "Great survey" {
		t.Fatalf("unexpected feedback %q", got)
	}
	wantQuestions := []model.AdditionalQuestion{{Label: "Preferred IDE", Name: "ide", InputType: "text"}}
	if diff := cmp.Diff(wantQuestions, summary.AdditionalQuestions()); diff != "" {
		t.Fatalf("questions mismatch (-want +got):\n%s", diff)
	}

	wantInfo := []string{"Additional Questions", "  - Preferred IDE (text)"}
	if diff := cmp.Diff(wantInfo, driver.infoMessages); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_RepromptsRejectedFields(t *testing.T) {
	store := form.New()
	driver := &stubDriver{
		inputs:    []string{"", "not-an-email", "Ada", "ada@example.com"},
		selectIdx: []int{1, 0, 0},
		textAreas: []string{"ok"},
	}
	session, err := NewSession(store, WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	summary, err := session.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	wantAsked := []string{
		"Full Name",
		"Email",
		"Survey Topic",
		"Exercise Frequency",
		"Diet Preference",
		"Feedback",
		"Full Name",
		"Email",
	}
	if diff := cmp.Diff(wantAsked, driver.asked); diff != "" {
		t.Fatalf("prompt order mismatch (-want +got):\n%s", diff)
	}
	wantInfo := []string{
		"! Full Name: Full name is required",
		"! Email: Email address is invalid",
	}
	if diff := cmp.Diff(wantInfo, driver.infoMessages); diff != "" {
		t.Fatalf("error output mismatch (-want +got):\n%s", diff)
	}
	if summary.Value(model.FieldFullName) != "Ada" || summary.Topic() != model.TopicHealth {
		t.Fatalf("unexpected summary values %+v", summary.Values())
	}
	if len(store.View().Errors) != 0 {
		t.Fatalf("errors should be cleared after acceptance")
	}
}

func TestSession_TopicChangeQueuesGroupFields(t *testing.T) {
	store := form.New()
	driver := &stubDriver{
		inputs:    []string{"Ada", "ada@example.com", "Mathematics"},
		selectIdx: []int{-1, 2, 1},
		textAreas: []string{"ok"},
	}
	session, err := NewSession(store, WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	summary, err := session.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	wantAsked := []string{
		"Full Name",
		"Email",
		"Survey Topic",
		"Feedback",
		"Survey Topic",
		"Highest Qualification",
		"Field of Study",
	}
	if diff := cmp.Diff(wantAsked, driver.asked); diff != "" {
		t.Fatalf("prompt order mismatch (-want +got):\n%s", diff)
	}
	if summary.Topic() != model.TopicEducation {
		t.Fatalf("expected Education, got %v", summary.Topic())
	}
	if got := summary.Value(model.FieldHighestQualification); got != "Bachelor's" {
		t.Fatalf("unexpected qualification %q", got)
	}
}

func TestSession_MaxAttempts(t *testing.T) {
	store := form.New()
	driver := &stubDriver{
		inputs:    []string{"", ""},
		selectIdx: []int{-1},
		textAreas: []string{""},
	}
	session, err := NewSession(store, WithPromptDriver(driver), WithMaxAttempts(1), WithTheme(Theme{ErrorPrefix: "x "}))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	_, err = session.Run(context.Background())
	if !errors.Is(err, ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
	if !errors.Is(err, form.ErrRejected) {
		t.Fatalf("expected wrapped rejection, got %v", err)
	}
	if len(driver.infoMessages) != 4 {
		t.Fatalf("expected 4 error lines, got %v", driver.infoMessages)
	}
	for _, msg := range driver.infoMessages {
		if !strings.HasPrefix(msg, "x ") {
			t.Fatalf("expected themed prefix, got %q", msg)
		}
	}
}

func TestSession_DeclinedConfirmation(t *testing.T) {
	store := form.New()
	driver := &stubDriver{
		inputs:    []string{"Ada", "ada@example.com"},
		selectIdx: []int{-1},
		textAreas: []string{"ok"},
		confirm:   []bool{false},
	}
	session, err := NewSession(store, WithPromptDriver(driver), WithConfirmSubmit(true))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	if _, err := session.Run(context.Background()); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	if store.View().Summary != nil {
		t.Fatalf("declined submission must not produce a summary")
	}
}

func TestSession_DriverErrorStopsRun(t *testing.T) {
	store := form.New()
	session, err := NewSession(store, WithPromptDriver(&stubDriver{}))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if _, err := session.Run(context.Background()); err == nil || !strings.Contains(err.Error(), "no input scripted") {
		t.Fatalf("expected driver error, got %v", err)
	}
}

func TestNewSession_RequiresStore(t *testing.T) {
	if _, err := NewSession(nil); err == nil {
		t.Fatalf("expected error for nil store")
	}
}

func TestFieldValidator(t *testing.T) {
	validate := fieldValidator(model.FieldEmail)
	if err := validate("nope"); err == nil || err.Error() != "Email address is invalid" {
		t.Fatalf("unexpected validator result %v", err)
	}
	if err := validate("a@b.co"); err != nil {
		t.Fatalf("expected valid email, got %v", err)
	}
	if fieldValidator("ide") != nil {
		t.Fatalf("fields without rules should not get a validator")
	}
}
