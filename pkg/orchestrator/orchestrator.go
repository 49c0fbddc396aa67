package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/goliatone/go-surveyform/pkg/enrichment"
	"github.com/goliatone/go-surveyform/pkg/form"
	"github.com/goliatone/go-surveyform/pkg/logging"
	"github.com/goliatone/go-surveyform/pkg/model"
	"github.com/goliatone/go-surveyform/pkg/provider"
	"github.com/goliatone/go-surveyform/pkg/render"
	"github.com/goliatone/go-surveyform/pkg/renderers/html"
	"github.com/goliatone/go-surveyform/pkg/renderers/jsonsummary"
	"github.com/goliatone/go-surveyform/pkg/schema"
)

const defaultRendererName = "html"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithDefinition supplies an already loaded survey definition.
func WithDefinition(def schema.Definition) Option {
	return func(o *Orchestrator) {
		o.definition = def
		o.definitionFS = nil
	}
}

// WithDefinitionFS overlays the JSON/YAML definition files in fsys onto the
// embedded defaults.
func WithDefinitionFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.definitionFS = fsys
	}
}

// WithProvider registers the source of additional questions. Without one the
// stores built by the orchestrator never fetch.
func WithProvider(p provider.QuestionProvider) Option {
	return func(o *Orchestrator) {
		o.provider = p
	}
}

// WithEnrichmentTimeout bounds each provider call.
func WithEnrichmentTimeout(timeout time.Duration) Option {
	return func(o *Orchestrator) {
		o.enrichTimeout = timeout
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = strings.TrimSpace(name)
	}
}

// WithThemeSelector registers the selector used to resolve request themes.
func WithThemeSelector(selector render.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.selector = selector
	}
}

// WithThemeFallbacks overrides the partials used when a theme does not
// configure them.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		o.fallbacks = fallbacks
	}
}

// WithTranslator localises labels and headings for every request that does
// not carry its own locale.
func WithTranslator(t render.Translator, locale string) Option {
	return func(o *Orchestrator) {
		o.translator = t
		o.locale = locale
	}
}

// WithLogger routes diagnostics from the orchestrator and the components it
// builds to l.
func WithLogger(l logging.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logging.OrNop(l)
	}
}

// WithClock overrides the time source handed to form stores.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		o.now = now
	}
}

// Orchestrator builds form stores bound to the configured definition and
// provider, and renders accepted summaries through the renderer registry.
type Orchestrator struct {
	definition      schema.Definition
	definitionFS    fs.FS
	resolver        *schema.Resolver
	provider        provider.QuestionProvider
	enrichTimeout   time.Duration
	enricher        *enrichment.Service
	registry        *render.Registry
	defaultRenderer string
	selector        render.ThemeSelector
	fallbacks       map[string]string
	translator      render.Translator
	locale          string
	logger          logging.Logger
	now             func() time.Time
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies fall back to the embedded definition and the built-in html,
// text and json renderers.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		logger:          logging.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Err reports a failure encountered while applying defaults.
func (o *Orchestrator) Err() error {
	return o.initialiseErr
}

// Definition returns the survey definition in use.
func (o *Orchestrator) Definition() schema.Definition {
	return o.resolver.Definition()
}

// Registry exposes the renderer registry.
func (o *Orchestrator) Registry() *render.Registry {
	return o.registry
}

// NewStore returns a form store wired to the orchestrator's resolver,
// enrichment service, logger and clock. extra options are applied last.
func (o *Orchestrator) NewStore(extra ...form.Option) (*form.Store, error) {
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	options := []form.Option{
		form.WithResolver(o.resolver),
		form.WithLogger(o.logger),
	}
	if o.enricher != nil {
		options = append(options, form.WithEnricher(o.enricher))
	}
	if o.now != nil {
		options = append(options, form.WithClock(o.now))
	}
	options = append(options, extra...)
	return form.New(options...), nil
}

// Request describes how a summary should be rendered.
type Request struct {
	// Summary is the accepted submission to render.
	Summary model.Summary
	// Renderer names the renderer to use. Empty uses the default renderer.
	Renderer string
	// Title overrides the summary heading.
	Title string
	// Locale overrides the orchestrator locale.
	Locale string
	// ThemeName and ThemeVariant select a theme when a selector is configured.
	ThemeName    string
	ThemeVariant string
}

// RenderOptions resolves the theme and localisation settings for req.
func (o *Orchestrator) RenderOptions(req Request) (render.Options, error) {
	if err := o.initialiseErr; err != nil {
		return render.Options{}, err
	}
	opts := render.Options{
		Title:      req.Title,
		Definition: o.resolver.Definition(),
		Locale:     o.locale,
		Translator: o.translator,
	}
	if locale := strings.TrimSpace(req.Locale); locale != "" {
		opts.Locale = locale
	}
	if o.selector != nil {
		cfg, err := render.ResolveTheme(o.selector, req.ThemeName, req.ThemeVariant, o.fallbacks)
		if err != nil {
			return render.Options{}, fmt.Errorf("orchestrator: %w", err)
		}
		opts.Theme = cfg
	}
	return opts, nil
}

// Render presents req.Summary with the requested renderer.
func (o *Orchestrator) Render(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.Summary.IsZero() {
		return nil, errors.New("orchestrator: summary is required")
	}

	opts, err := o.RenderOptions(req)
	if err != nil {
		return nil, err
	}
	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, req.Summary, opts)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := strings.TrimSpace(name)
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	def := o.definition
	if o.definitionFS != nil {
		loaded, err := schema.LoadFS(o.definitionFS)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: load definition: %w", err)
			return
		}
		def = loaded
	}
	o.resolver = schema.NewResolver(def)

	if o.provider != nil {
		o.enricher = enrichment.New(o.provider,
			enrichment.WithLogger(o.logger),
			enrichment.WithTimeout(o.enrichTimeout),
		)
	}

	if o.registry == nil {
		registry, err := DefaultRegistry()
		if err != nil {
			o.initialiseErr = err
			return
		}
		o.registry = registry
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}

// DefaultRegistry returns a registry holding the built-in html, text and json
// renderers.
func DefaultRegistry() (*render.Registry, error) {
	htmlRenderer, err := html.New()
	if err != nil {
		return nil, fmt.Errorf("orchestrator: html renderer: %w", err)
	}
	textRenderer, err := html.NewText()
	if err != nil {
		return nil, fmt.Errorf("orchestrator: text renderer: %w", err)
	}
	return render.NewRegistry(htmlRenderer, textRenderer, jsonsummary.New()), nil
}
