package render

import (
	"context"

	"github.com/goliatone/go-surveyform/pkg/model"
)

// Renderer converts an accepted submission summary into a byte representation
// (HTML, plain text, JSON, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, summary model.Summary, options Options) ([]byte, error)
}
