package render_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-surveyform/pkg/render"
)

type stubTranslator map[string]string

func (t stubTranslator) Translate(_ string, key string, _ ...any) (string, error) {
	if msg, ok := t[key]; ok {
		return msg, nil
	}
	return "", errors.New("missing translation")
}

func TestTemplateI18nFuncs_TranslateWithFallback(t *testing.T) {
	funcs := render.TemplateI18nFuncs(stubTranslator{"summary.footer": "Gracias"}, render.TemplateI18nConfig{})

	translateFn, ok := funcs["translate"].(func(any, string, string) string)
	if !ok {
		t.Fatalf("translate helper has unexpected type %T", funcs["translate"])
	}
	if got := translateFn("es", "summary.footer", "Thanks"); got != "Gracias" {
		t.Fatalf("expected translation, got %q", got)
	}
	if got := translateFn("es", "summary.other", "Fallback"); got != "Fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
	if got := translateFn("es", "summary.other", ""); got != "summary.other" {
		t.Fatalf("expected key when no fallback, got %q", got)
	}
}

func TestTemplateI18nFuncs_CurrentLocale(t *testing.T) {
	funcs := render.TemplateI18nFuncs(nil, render.TemplateI18nConfig{FuncName: "t"})
	if _, ok := funcs["t"]; !ok {
		t.Fatalf("expected custom helper name")
	}

	current := funcs["current_locale"].(func(any) string)
	if got := current(map[string]any{"locale": "fr"}); got != "fr" {
		t.Fatalf("map locale: got %q", got)
	}
	if got := current(struct{ Locale string }{Locale: "de"}); got != "de" {
		t.Fatalf("struct locale: got %q", got)
	}
	if got := current("pt-BR"); got != "pt-BR" {
		t.Fatalf("string locale: got %q", got)
	}
}

func TestTemplateI18nFuncs_OnMissing(t *testing.T) {
	var gotErr error
	funcs := render.TemplateI18nFuncs(nil, render.TemplateI18nConfig{
		OnMissing: func(_ string, key string, _ []any, err error) string {
			gotErr = err
			return "[" + key + "]"
		},
	})
	translateFn := funcs["translate"].(func(any, string, string) string)
	if got := translateFn("en", "summary.title", "Summary"); got != "[summary.title]" {
		t.Fatalf("expected handler output, got %q", got)
	}
	if !errors.Is(gotErr, render.ErrMissingTranslator) {
		t.Fatalf("expected ErrMissingTranslator, got %v", gotErr)
	}
}
