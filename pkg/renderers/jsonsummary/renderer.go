package jsonsummary

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/goliatone/go-surveyform/pkg/model"
	"github.com/goliatone/go-surveyform/pkg/render"
)

// Option configures the JSON renderer.
type Option func(*Renderer)

// WithIndent pretty-prints the payload using indent. An empty indent emits
// compact JSON.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

// Renderer emits the summary and its labelled layout as JSON.
type Renderer struct {
	indent string
}

type payload struct {
	Title    string           `json:"title"`
	Locale   string           `json:"locale,omitempty"`
	Summary  model.Summary    `json:"summary"`
	Sections []render.Section `json:"sections"`
}

// New constructs the JSON renderer. Output is indented with two spaces unless
// overridden.
func New(options ...Option) *Renderer {
	r := &Renderer{indent: "  "}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Renderer) Name() string {
	return "json"
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

func (r *Renderer) Render(ctx context.Context, summary model.Summary, opts render.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	view := render.BuildView(summary, opts)
	body := payload{
		Title:    view.Title,
		Locale:   view.Locale,
		Summary:  summary,
		Sections: view.Sections,
	}

	var (
		out []byte
		err error
	)
	if r.indent == "" {
		out, err = json.Marshal(body)
	} else {
		out, err = json.MarshalIndent(body, "", r.indent)
	}
	if err != nil {
		return nil, fmt.Errorf("json renderer: marshal summary: %w", err)
	}
	return append(out, '\n'), nil
}
