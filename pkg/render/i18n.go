package render

import (
	"errors"
	"fmt"
	"strings"
)

const (
	titleKey               = "summary.title"
	additionalQuestionsKey = "summary.additionalQuestions"
	fieldLabelKeyFormat    = "fields.%s.label"

	defaultTitle               = "Summary of Submitted Data"
	defaultAdditionalQuestions = "Additional Questions"
)

// Translation keys shared with non-template presenters.
const (
	KeyTitle               = titleKey
	KeyAdditionalQuestions = additionalQuestionsKey
	DefaultAdditionalTitle = defaultAdditionalQuestions
)

// ErrMissingTranslator is passed to MissingTranslationHandler when no
// Translator was configured.
var ErrMissingTranslator = errors.New("render: translator not configured")

// Translator resolves a message key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler returns the text used when key cannot be
// translated. args carries a map with the untranslated "default" text.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

func missingTranslationDefault(_ string, key string, args []any, _ error) string {
	for _, arg := range args {
		params, ok := arg.(map[string]any)
		if !ok {
			continue
		}
		if fallback := strings.TrimSpace(anyToString(params["default"])); fallback != "" {
			return fallback
		}
	}
	return key
}

// FieldLabelKey returns the translation key for a field label.
func FieldLabelKey(name string) string {
	return fmt.Sprintf(fieldLabelKeyFormat, strings.TrimSpace(name))
}

func translate(locale, key, fallback string, t Translator, onMissing MissingTranslationHandler) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}

	if t == nil {
		return onMissing(locale, key, []any{map[string]any{"default": fallback}}, ErrMissingTranslator)
	}

	result, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}
	return onMissing(locale, key, []any{map[string]any{"default": fallback}}, err)
}

func anyToString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Translate resolves key using the translator configured in opts, falling back
// to fallback through the OnMissing handler.
func Translate(opts Options, key, fallback string) string {
	return translate(opts.Locale, key, fallback, opts.Translator, opts.OnMissing)
}
