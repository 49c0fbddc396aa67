package form

import (
	"context"
	"time"

	"github.com/goliatone/go-surveyform/pkg/logging"
	"github.com/goliatone/go-surveyform/pkg/model"
	"github.com/goliatone/go-surveyform/pkg/schema"
	"github.com/goliatone/go-surveyform/pkg/summary"
)

// Enricher supplies additional questions for a topic. Implementations must
// never fail; *enrichment.Service satisfies it.
type Enricher interface {
	Fetch(ctx context.Context, topic string) []model.AdditionalQuestion
}

// EnricherFunc adapts a function into an Enricher.
type EnricherFunc func(ctx context.Context, topic string) []model.AdditionalQuestion

// Fetch implements Enricher.
func (fn EnricherFunc) Fetch(ctx context.Context, topic string) []model.AdditionalQuestion {
	return fn(ctx, topic)
}

// Option configures a Store.
type Option func(*Store)

// WithDefaults seeds the initial values. Missing base fields start empty.
func WithDefaults(defaults model.Values) Option {
	return func(s *Store) {
		s.values = model.NewValues(defaults)
	}
}

// WithResolver swaps the conditional schema resolver.
func WithResolver(resolver *schema.Resolver) Option {
	return func(s *Store) {
		if resolver != nil {
			s.resolver = resolver
		}
	}
}

// WithEnricher registers the source of additional questions. Without one the
// store never fetches.
func WithEnricher(enricher Enricher) Option {
	return func(s *Store) {
		s.enricher = enricher
	}
}

// WithSummaryBuilder overrides the builder used on accepted submissions.
func WithSummaryBuilder(builder summary.Builder) Option {
	return func(s *Store) {
		s.builder = builder
		s.builderSet = true
	}
}

// WithLogger routes store diagnostics to l.
func WithLogger(l logging.Logger) Option {
	return func(s *Store) {
		s.logger = logging.OrNop(l)
	}
}

// WithClock overrides the time source used to stamp summaries.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithListener registers fn to receive a View after every committed
// transition. Listeners run outside the store lock, in registration order.
func WithListener(fn func(View)) Option {
	return func(s *Store) {
		if fn != nil {
			s.listeners = append(s.listeners, fn)
		}
	}
}
