package enrichment

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/goliatone/go-surveyform/pkg/logging"
	"github.com/goliatone/go-surveyform/pkg/model"
	"github.com/goliatone/go-surveyform/pkg/provider"
)

const defaultInputType = "text"

var inputTypePattern = regexp.MustCompile(`^[a-z][a-z-]*$`)

// Option configures the Service.
type Option func(*Service)

// WithLogger routes fetch failures to l.
func WithLogger(l logging.Logger) Option {
	return func(s *Service) {
		s.logger = logging.OrNop(l)
	}
}

// WithTimeout bounds each provider call. Zero leaves the caller's context
// untouched.
func WithTimeout(timeout time.Duration) Option {
	return func(s *Service) {
		if timeout >= 0 {
			s.timeout = timeout
		}
	}
}

// Service fetches topic specific questions and degrades every failure to an
// empty list.
type Service struct {
	provider provider.QuestionProvider
	logger   logging.Logger
	timeout  time.Duration
}

// New constructs a Service around p. A nil provider yields a service that
// always returns no questions.
func New(p provider.QuestionProvider, options ...Option) *Service {
	s := &Service{
		provider: p,
		logger:   logging.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Fetch asks the provider for the questions attached to topic. Failures are
// logged and reported as an empty, non-nil slice; the call never retries.
func (s *Service) Fetch(ctx context.Context, topic string) []model.AdditionalQuestion {
	if s == nil || s.provider == nil {
		return []model.AdditionalQuestion{}
	}

	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	resp, err := s.call(callCtx, topic)
	if err != nil {
		s.logger.Warn("enrichment: fetch additional questions failed", "topic", topic, "error", err)
		return []model.AdditionalQuestion{}
	}

	questions := normalize(resp.Questions)
	s.logger.Debug("enrichment: fetched additional questions", "topic", topic, "count", len(questions))
	return questions
}

func (s *Service) call(ctx context.Context, topic string) (resp provider.Response, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			resp = provider.Response{}
			err = errors.New("enrichment: provider panicked")
		}
	}()
	return s.provider.GetQuestions(ctx, topic)
}

func normalize(in []provider.Question) []model.AdditionalQuestion {
	out := make([]model.AdditionalQuestion, 0, len(in))
	seen := make(map[model.FieldName]struct{}, len(in))
	for _, q := range in {
		name := model.FieldName(strings.TrimSpace(q.Name))
		if name == "" || model.IsBaseField(name) {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		label := sanitizeLabel(q.Label)
		if label == "" {
			label = string(name)
		}
		out = append(out, model.AdditionalQuestion{
			Label:     label,
			Name:      name,
			InputType: normalizeInputType(q.Type),
		})
	}
	return out
}

func normalizeInputType(raw string) string {
	kind := strings.ToLower(strings.TrimSpace(raw))
	if kind == "" || !inputTypePattern.MatchString(kind) {
		return defaultInputType
	}
	return kind
}
