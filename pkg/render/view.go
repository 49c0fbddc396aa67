package render

import (
	"strings"
	"time"

	"github.com/goliatone/go-surveyform/pkg/model"
	"github.com/goliatone/go-surveyform/pkg/schema"
)

// Section keys in SummaryView.Sections.
const (
	SectionRespondent = "respondent"
	SectionTopic      = "topic"
	SectionFeedback   = "feedback"
	SectionAdditional = "additional"
)

// Entry is one labelled value in a rendered summary.
type Entry struct {
	Field string `json:"field"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Section groups entries under an optional heading.
type Section struct {
	Key     string  `json:"key"`
	Title   string  `json:"title,omitempty"`
	Entries []Entry `json:"entries"`
}

// ThemeView is the template-facing projection of a theme configuration.
type ThemeView struct {
	Name         string            `json:"name,omitempty"`
	Variant      string            `json:"variant,omitempty"`
	Tokens       map[string]string `json:"tokens,omitempty"`
	CSSVarsStyle string            `json:"cssVarsStyle,omitempty"`
	Stylesheet   string            `json:"stylesheet,omitempty"`
}

// SummaryView is the presentation model shared by template renderers.
type SummaryView struct {
	Title       string    `json:"title"`
	Locale      string    `json:"locale"`
	Topic       string    `json:"topic,omitempty"`
	Sequence    uint64    `json:"sequence"`
	SubmittedAt string    `json:"submittedAt,omitempty"`
	Sections    []Section `json:"sections"`
	Theme       ThemeView `json:"theme"`
}

// BuildView lays out a summary the way every renderer presents it: the
// respondent details, the answers of the captured topic, the feedback and the
// labels of any additional questions. Additional questions carry an empty
// value because their answers are not captured.
func BuildView(summary model.Summary, opts Options) SummaryView {
	def := definition(opts)
	entry := func(name model.FieldName, value string) Entry {
		return Entry{Field: string(name), Label: fieldLabel(opts, def, name), Value: value}
	}

	title := strings.TrimSpace(opts.Title)
	if title == "" {
		title = translate(opts.Locale, titleKey, defaultTitle, opts.Translator, opts.OnMissing)
	}

	view := SummaryView{
		Title:    title,
		Locale:   opts.Locale,
		Topic:    summary.Topic().String(),
		Sequence: summary.Sequence(),
		Theme:    buildThemeView(opts),
	}
	if at := summary.SubmittedAt(); !at.IsZero() {
		view.SubmittedAt = at.UTC().Format(time.RFC3339)
	}

	view.Sections = append(view.Sections, Section{
		Key: SectionRespondent,
		Entries: []Entry{
			entry(model.FieldFullName, summary.Value(model.FieldFullName)),
			entry(model.FieldEmail, summary.Value(model.FieldEmail)),
			entry(model.FieldSurveyTopic, summary.Value(model.FieldSurveyTopic)),
		},
	})

	if answers := summary.TopicAnswers(); len(answers) > 0 {
		entries := make([]Entry, 0, len(answers))
		for _, answer := range answers {
			entries = append(entries, entry(answer.Field, answer.Value))
		}
		view.Sections = append(view.Sections, Section{Key: SectionTopic, Entries: entries})
	}

	view.Sections = append(view.Sections, Section{
		Key:     SectionFeedback,
		Entries: []Entry{entry(model.FieldFeedback, summary.Value(model.FieldFeedback))},
	})

	if questions := summary.AdditionalQuestions(); len(questions) > 0 {
		entries := make([]Entry, 0, len(questions))
		for _, q := range questions {
			entries = append(entries, Entry{Field: string(q.Name), Label: q.Label})
		}
		view.Sections = append(view.Sections, Section{
			Key:     SectionAdditional,
			Title:   translate(opts.Locale, additionalQuestionsKey, defaultAdditionalQuestions, opts.Translator, opts.OnMissing),
			Entries: entries,
		})
	}

	return view
}

func buildThemeView(opts Options) ThemeView {
	cfg := opts.Theme
	if cfg == nil {
		return ThemeView{}
	}
	view := ThemeView{
		Name:         cfg.Theme,
		Variant:      cfg.Variant,
		Tokens:       copyStringMap(cfg.Tokens),
		CSSVarsStyle: cssVarsStyle(cfg.CSSVars),
	}
	if cfg.AssetURL != nil {
		view.Stylesheet = cfg.AssetURL(AssetStylesheet)
	}
	return view
}

// FieldLabel returns the localised label for name.
func FieldLabel(opts Options, name model.FieldName) string {
	return fieldLabel(opts, definition(opts), name)
}

func fieldLabel(opts Options, def schema.Definition, name model.FieldName) string {
	return translate(opts.Locale, FieldLabelKey(string(name)), def.Label(name), opts.Translator, opts.OnMissing)
}

// Definition returns the display definition carried by opts, or the embedded
// one when opts has none.
func Definition(opts Options) schema.Definition {
	return definition(opts)
}

func definition(opts Options) schema.Definition {
	if len(opts.Definition.Fields) == 0 {
		return schema.Default()
	}
	return opts.Definition
}

// Partial returns the template configured for key, or fallback.
func Partial(opts Options, key, fallback string) string {
	if opts.Theme != nil {
		if name := strings.TrimSpace(opts.Theme.Partials[key]); name != "" {
			return name
		}
	}
	return fallback
}
