package render

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-surveyform/pkg/schema"
)

// Options describe per-request data renderers use to present a summary without
// mutating it.
type Options struct {
	// Title overrides the summary heading. Empty uses the translated default.
	Title string
	// Definition supplies field labels. The zero value uses the embedded
	// survey definition.
	Definition schema.Definition
	// Locale and Translator localise headings and field labels. Keys follow
	// "summary.title", "summary.additionalQuestions" and "fields.<name>.label".
	Locale     string
	Translator Translator
	// OnMissing decides what a missing translation renders as. Nil falls back
	// to the untranslated text.
	OnMissing MissingTranslationHandler
	// Theme carries the resolved go-theme configuration. Nil renders with the
	// renderer's built-in templates and no tokens.
	Theme *theme.RendererConfig
}
