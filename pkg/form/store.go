package form

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-surveyform/pkg/logging"
	"github.com/goliatone/go-surveyform/pkg/model"
	"github.com/goliatone/go-surveyform/pkg/schema"
	"github.com/goliatone/go-surveyform/pkg/summary"
	"github.com/goliatone/go-surveyform/pkg/validation"
)

// View is a read-only snapshot of the store handed to presentation code.
type View struct {
	Values    model.Values
	Errors    model.Errors
	Questions []model.AdditionalQuestion
	Summary   *model.Summary
	Active    schema.Group
	Pending   int
}

// Store owns the form values, validation errors, additional questions and the
// latest accepted summary. All methods are safe for concurrent use.
type Store struct {
	mu sync.Mutex
	wg sync.WaitGroup

	values    model.Values
	errors    model.Errors
	questions []model.AdditionalQuestion
	summary   *model.Summary

	// generation tags every enrichment request; only a response carrying the
	// current generation may replace questions.
	generation uint64
	cancel     context.CancelFunc
	pending    int
	sequence   uint64

	resolver   *schema.Resolver
	enricher   Enricher
	builder    summary.Builder
	builderSet bool
	logger     logging.Logger
	now        func() time.Time
	listeners  []func(View)
}

// New constructs a Store. Without WithDefaults every base field starts empty.
func New(options ...Option) *Store {
	s := &Store{
		values:    model.NewValues(nil),
		errors:    model.Errors{},
		questions: []model.AdditionalQuestion{},
		logger:    logging.Nop(),
		now:       time.Now,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.resolver == nil {
		s.resolver = schema.NewResolver(schema.Definition{})
	}
	if !s.builderSet {
		s.builder = summary.NewBuilder(s.resolver)
	}
	return s
}

// Change replaces the value of a single field. Changing the discriminant to a
// different value clears the additional questions and, for a non-empty value,
// starts a fetch bound to ctx. Errors are left untouched.
func (s *Store) Change(ctx context.Context, field model.FieldName, value string) {
	name := model.FieldName(strings.TrimSpace(string(field)))
	if name == "" {
		s.logger.Debug("form: ignoring change with empty field name")
		return
	}

	s.mu.Lock()
	previous, existed := s.values[name]
	s.values[name] = value

	if name == model.Discriminant && (!existed || previous != value) {
		gen := s.bumpLocked()
		s.questions = []model.AdditionalQuestion{}
		if value != "" {
			s.launchLocked(ctx, gen, value)
		}
	}
	view := s.viewLocked()
	s.mu.Unlock()

	s.notify(view)
}

// Submit validates the active fields. On failure the errors are stored and a
// *RejectedError is returned. On success errors are cleared, a summary of the
// current values and questions is stored and returned, and a fetch for the
// submitted topic is started.
func (s *Store) Submit(ctx context.Context) (model.Summary, error) {
	s.mu.Lock()

	active := s.resolver.ActiveFields(s.values)
	errs := validation.Validate(s.values, active)
	if !errs.Empty() {
		s.errors = errs
		view := s.viewLocked()
		s.mu.Unlock()

		s.logger.Debug("form: submission rejected", "fields", len(errs))
		s.notify(view)
		return model.Summary{}, &RejectedError{Errors: errs.Clone()}
	}

	s.errors = model.Errors{}
	s.sequence++
	result := s.builder.BuildWith(s.values, s.questions, summary.Meta{
		SubmittedAt: s.now(),
		Sequence:    s.sequence,
	})
	s.summary = &result

	topic := s.values.Get(model.Discriminant)
	gen := s.bumpLocked()
	if topic != "" {
		s.launchLocked(ctx, gen, topic)
	}
	view := s.viewLocked()
	s.mu.Unlock()

	s.logger.Info("form: submission accepted", "topic", topic, "sequence", result.Sequence())
	s.notify(view)
	return result, nil
}

// View returns a detached snapshot of the current state.
func (s *Store) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// Wait blocks until every fetch started so far has finished.
func (s *Store) Wait() {
	s.wg.Wait()
}

func (s *Store) bumpLocked() uint64 {
	s.generation++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	return s.generation
}

func (s *Store) launchLocked(ctx context.Context, gen uint64, topic string) {
	if s.enricher == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.pending++
	s.wg.Add(1)

	go s.fetch(fetchCtx, cancel, gen, topic)
}

func (s *Store) fetch(ctx context.Context, cancel context.CancelFunc, gen uint64, topic string) {
	defer s.wg.Done()
	defer cancel()

	questions := s.enricher.Fetch(ctx, topic)

	s.mu.Lock()
	s.pending--
	if gen != s.generation {
		s.mu.Unlock()
		s.logger.Debug("form: discarding stale questions", "topic", topic, "generation", gen)
		return
	}
	s.questions = model.CloneQuestions(questions)
	if s.questions == nil {
		s.questions = []model.AdditionalQuestion{}
	}
	// Question names join the value map empty; earlier input is kept.
	for _, q := range s.questions {
		if _, ok := s.values[q.Name]; !ok && q.Name != "" {
			s.values[q.Name] = ""
		}
	}
	view := s.viewLocked()
	s.mu.Unlock()

	s.notify(view)
}

func (s *Store) viewLocked() View {
	view := View{
		Values:    s.values.Clone(),
		Errors:    s.errors.Clone(),
		Questions: model.CloneQuestions(s.questions),
		Active:    s.resolver.Resolve(s.values.Get(model.Discriminant)),
		Pending:   s.pending,
	}
	if view.Questions == nil {
		view.Questions = []model.AdditionalQuestion{}
	}
	if s.summary != nil {
		latest := *s.summary
		view.Summary = &latest
	}
	return view
}

func (s *Store) notify(view View) {
	for _, fn := range s.listeners {
		fn(view)
	}
}
