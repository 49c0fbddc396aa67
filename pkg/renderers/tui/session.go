package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-surveyform/pkg/form"
	"github.com/goliatone/go-surveyform/pkg/logging"
	"github.com/goliatone/go-surveyform/pkg/model"
	"github.com/goliatone/go-surveyform/pkg/render"
	"github.com/goliatone/go-surveyform/pkg/schema"
	"github.com/goliatone/go-surveyform/pkg/validation"
)

// Session walks a user through the survey in a terminal, feeding every answer
// into a form.Store and re-prompting rejected fields until a submission is
// accepted.
type Session struct {
	store         *form.Store
	driver        PromptDriver
	theme         Theme
	renderOpts    render.Options
	maxAttempts   int
	confirmSubmit bool
	logger        logging.Logger
}

// NewSession constructs a Session bound to store. Without WithPromptDriver the
// survey/v2 driver writing to stdout is used.
func NewSession(store *form.Store, options ...Option) (*Session, error) {
	if store == nil {
		return nil, errors.New("tui: form store is nil")
	}
	s := &Session{
		store:  store,
		theme:  Theme{InfoPrefix: "", ErrorPrefix: "! "},
		logger: logging.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(nil)
	}
	return s, nil
}

// Run prompts for every active field, shows the additional questions fetched
// for the chosen topic and submits. It returns the accepted summary, ErrAborted
// when the user cancels, or ErrTooManyAttempts once the attempt limit is hit.
func (s *Session) Run(ctx context.Context) (model.Summary, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	initial := []model.FieldName{
		model.FieldFullName,
		model.FieldEmail,
		model.Discriminant,
		model.FieldFeedback,
	}
	if err := s.collect(ctx, initial, true); err != nil {
		return model.Summary{}, err
	}

	var tracker attempts
	for {
		if err := s.showQuestions(ctx); err != nil {
			return model.Summary{}, err
		}
		if s.confirmSubmit {
			ok, err := s.driver.Confirm(ctx, ConfirmConfig{Message: "Submit survey?", Default: true})
			if err != nil {
				return model.Summary{}, err
			}
			if !ok {
				return model.Summary{}, ErrAborted
			}
		}

		result, err := s.store.Submit(ctx)
		if err == nil {
			return result, nil
		}
		var rejected *form.RejectedError
		if !errors.As(err, &rejected) {
			return model.Summary{}, err
		}

		tracker.reject(render.MapErrors(rejected.Errors, s.renderOpts))
		s.logger.Debug("tui: submission rejected", "attempt", tracker.rejected, "fields", len(tracker.retry))
		if err := s.showErrors(ctx, tracker.last); err != nil {
			return model.Summary{}, err
		}
		if tracker.exhausted(s.maxAttempts) {
			return model.Summary{}, fmt.Errorf("%w: %w", ErrTooManyAttempts, rejected)
		}
		if err := s.collect(ctx, tracker.retry, false); err != nil {
			return model.Summary{}, err
		}
	}
}

// collect prompts for names in order. Answering the discriminant queues the
// fields of the selected group right after it: always on the first pass, and
// on later passes only when the topic changed.
func (s *Session) collect(ctx context.Context, names []model.FieldName, expand bool) error {
	queue := newFieldQueue(names)
	for !queue.empty() {
		name := queue.pop()
		previous := s.store.View().Values.Get(name)

		value, err := s.prompt(ctx, name, previous)
		if err != nil {
			return err
		}
		s.store.Change(ctx, name, value)

		if name == model.Discriminant && (expand || value != previous) {
			queue.pushFront(s.store.View().Active.Names())
		}
	}
	return nil
}

func (s *Session) prompt(ctx context.Context, name model.FieldName, current string) (string, error) {
	cfg, _ := render.Definition(s.renderOpts).Field(name)
	label := render.FieldLabel(s.renderOpts, name)
	validator := fieldValidator(name)

	switch cfg.Input {
	case schema.InputSelect:
		if len(cfg.Options) == 0 {
			break
		}
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      label,
			Options:      cfg.Options,
			DefaultIndex: indexOf(cfg.Options, current),
			Help:         cfg.Help,
		})
		if err != nil {
			return "", err
		}
		if idx < 0 || idx >= len(cfg.Options) {
			return "", nil
		}
		return cfg.Options[idx], nil
	case schema.InputTextArea:
		return s.driver.TextArea(ctx, TextAreaConfig{
			Message:   label,
			Default:   current,
			Help:      cfg.Help,
			Validator: validator,
		})
	}

	return s.driver.Input(ctx, InputConfig{
		Message:     label,
		Default:     current,
		Help:        cfg.Help,
		Placeholder: cfg.Placeholder,
		Validator:   validator,
	})
}

// showQuestions waits for in-flight enrichment and lists the questions
// attached to the current topic. They are informational only.
func (s *Session) showQuestions(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.store.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	questions := s.store.View().Questions
	if len(questions) == 0 {
		return nil
	}
	heading := render.Translate(s.renderOpts, render.KeyAdditionalQuestions, render.DefaultAdditionalTitle)
	if err := s.driver.Info(ctx, s.theme.InfoPrefix+heading); err != nil {
		return err
	}
	for _, q := range questions {
		line := "  - " + q.Label
		if kind := strings.TrimSpace(q.InputType); kind != "" {
			line += " (" + kind + ")"
		}
		if err := s.driver.Info(ctx, s.theme.InfoPrefix+line); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) showErrors(ctx context.Context, errs []render.FieldError) error {
	for _, fe := range errs {
		if err := s.driver.Info(ctx, fmt.Sprintf("%s%s: %s", s.theme.ErrorPrefix, fe.Label, fe.Message)); err != nil {
			return err
		}
	}
	return nil
}

func fieldValidator(name model.FieldName) func(string) error {
	if !validation.HasRule(name) {
		return nil
	}
	return func(value string) error {
		if msg := validation.Field(name, value); msg != "" {
			return errors.New(msg)
		}
		return nil
	}
}
