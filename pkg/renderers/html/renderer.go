package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-surveyform/pkg/model"
	"github.com/goliatone/go-surveyform/pkg/render"
	rendertemplate "github.com/goliatone/go-surveyform/pkg/render/template"
	gotemplate "github.com/goliatone/go-surveyform/pkg/render/template/gotemplate"
)

const (
	templateExtension = ".tmpl"

	nameHTML = "html"
	nameText = "text"
)

// Option configures the template renderers.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. Theme
// partials are resolved against it.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer renders a summary through a named template partial.
type Renderer struct {
	name        string
	contentType string
	partialKey  string
	fallback    string
	templates   rendertemplate.TemplateRenderer
}

// New constructs the HTML summary renderer.
func New(options ...Option) (*Renderer, error) {
	return newRenderer(nameHTML, "text/html; charset=utf-8", render.PartialHTML, options)
}

// NewText constructs the plain text summary renderer.
func NewText(options ...Option) (*Renderer, error) {
	return newRenderer(nameText, "text/plain; charset=utf-8", render.PartialText, options)
}

func newRenderer(name, contentType, partialKey string, options []Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	templates := cfg.templateRenderer
	if templates == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(templateExtension),
			gotemplate.WithGlobalData(map[string]any{"stylesheet": defaultStylesheet()}),
		)
		if err != nil {
			return nil, fmt.Errorf("%s renderer: configure template renderer: %w", name, err)
		}
		templates = engine
	}

	return &Renderer{
		name:        name,
		contentType: contentType,
		partialKey:  partialKey,
		fallback:    render.DefaultThemeFallbacks()[partialKey],
		templates:   templates,
	}, nil
}

func (r *Renderer) Name() string {
	return r.name
}

func (r *Renderer) ContentType() string {
	return r.contentType
}

// Render lays the summary out with render.BuildView and executes the partial
// selected by the theme, or the built-in template.
func (r *Renderer) Render(ctx context.Context, summary model.Summary, opts render.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("%s renderer: template renderer is nil", r.name)
	}

	i18n := render.TemplateI18nConfig{OnMissing: opts.OnMissing}
	data := map[string]any{
		"view": render.BuildView(summary, opts),
	}
	for name, fn := range render.TemplateI18nFuncs(opts.Translator, i18n) {
		data[name] = fn
	}

	partial := render.Partial(opts, r.partialKey, r.fallback)
	result, err := r.templates.RenderTemplate(partial, data)
	if err != nil {
		return nil, fmt.Errorf("%s renderer: render template %q: %w", r.name, partial, err)
	}
	return []byte(result), nil
}
