package surveyform

import (
	"context"

	"github.com/goliatone/go-surveyform/pkg/form"
	"github.com/goliatone/go-surveyform/pkg/model"
	"github.com/goliatone/go-surveyform/pkg/orchestrator"
	"github.com/goliatone/go-surveyform/pkg/render"
	"github.com/goliatone/go-surveyform/pkg/renderers/tui"
)

// Request aliases orchestrator.Request for callers rendering summaries from
// the top-level package.
type Request = orchestrator.Request

// Summary aliases model.Summary.
type Summary = model.Summary

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewStore builds a form store with the definition and provider configured
// through options.
func NewStore(options ...orchestrator.Option) (*form.Store, error) {
	return orchestrator.New(options...).NewStore()
}

// NewSession builds a terminal session over a fresh store. Labels follow the
// orchestrator's definition and translator; sessionOptions are applied after
// those defaults.
func NewSession(orch *orchestrator.Orchestrator, sessionOptions ...tui.Option) (*tui.Session, *form.Store, error) {
	if orch == nil {
		orch = orchestrator.New()
	}
	store, err := orch.NewStore()
	if err != nil {
		return nil, nil, err
	}
	opts, err := orch.RenderOptions(orchestrator.Request{})
	if err != nil {
		return nil, nil, err
	}
	options := append([]tui.Option{tui.WithRenderOptions(opts)}, sessionOptions...)
	session, err := tui.NewSession(store, options...)
	if err != nil {
		return nil, nil, err
	}
	return session, store, nil
}

// RenderSummary renders summary with the named renderer ("html", "text" or
// "json" by default). It is the simplest entry point for callers that already
// hold an accepted submission.
func RenderSummary(ctx context.Context, summary model.Summary, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Render(ctx, orchestrator.Request{
		Summary:  summary,
		Renderer: rendererName,
	})
}

// WithThemeSelector passes a selector through to the orchestrator so theme
// and variant choices resolve ahead of rendering.
func WithThemeSelector(selector render.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithDefaultTheme registers the built-in theme manifest as the selector.
func WithDefaultTheme(variant string) orchestrator.Option {
	manifest := render.DefaultManifest()
	return orchestrator.WithThemeSelector(render.NewStaticSelector(manifest.Name, variant, manifest))
}
