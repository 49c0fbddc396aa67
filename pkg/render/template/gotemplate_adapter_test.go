package template_test

import (
	"fmt"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-surveyform/pkg/render/template/gotemplate"
	"github.com/goliatone/go-surveyform/pkg/testsupport"
)

var templatesFS = fstest.MapFS{
	"hello.tpl":      {Data: []byte("Hello {{ name }}!\n")},
	"use-global.tpl": {Data: []byte("env={{ settings.env }}\n")},
	"use-filter.tpl": {Data: []byte("{{ name|surveyshout }}\n")},
	"escape.tpl":     {Data: []byte("<p>{{ label }}</p>")},
	"trim.tpl":       {Data: []byte("[{{ value|trim }}]")},
}

func TestGoTemplateEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})

	want := "Hello Ada!\n"
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func TestGoTemplateEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	result, _ := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-global", nil, w)
	})
	if want := "env=staging\n"; result != want {
		t.Fatalf("render template mismatch\nwant: %q\n got: %q", want, result)
	}
}

func TestGoTemplateEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("surveyshout", func(input any, _ any) (any, error) {
		if input == nil {
			return "", nil
		}
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}

	result, _ := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-filter", map[string]any{"name": "Ada"}, w)
	})
	if want := "ADA!\n"; result != want {
		t.Fatalf("render template mismatch\nwant: %q\n got: %q", want, result)
	}
}

func TestGoTemplateEngine_StructDataAndEscaping(t *testing.T) {
	engine := newEngine(t)

	data := struct {
		Label string `json:"label"`
	}{Label: "<b>Tom & Jerry</b>"}

	result, err := engine.RenderTemplate("escape", data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := "<p>&lt;b&gt;Tom &amp; Jerry&lt;/b&gt;</p>"; result != want {
		t.Fatalf("expected escaped output\nwant: %q\n got: %q", want, result)
	}

	trimmed, err := engine.Render("trim", map[string]any{"value": "  padded  "})
	if err != nil {
		t.Fatalf("render trim: %v", err)
	}
	if trimmed != "[padded]" {
		t.Fatalf("trim filter mismatch: %q", trimmed)
	}
}

func TestGoTemplateEngine_RenderString(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.Render("{{ greeting }}, {{ name }}", map[string]any{"greeting": "Hi", "name": "Grace"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if result != "Hi, Grace" {
		t.Fatalf("unexpected output %q", result)
	}
}

func TestGoTemplateEngine_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without a template filesystem")
	}
}

func TestGoTemplateEngine_PassesFunctionsThrough(t *testing.T) {
	engine := newEngine(t)

	data := map[string]any{
		"greet": func(name string) string { return "hi " + name },
		"names": []string{"Ada", "Grace"},
	}
	result, err := engine.RenderString(`{{ greet(names.1) }}`, data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "hi Grace" {
		t.Fatalf("unexpected output %q", result)
	}
}

func TestGoTemplateEngine_RejectsNonObjectData(t *testing.T) {
	engine := newEngine(t)
	if _, err := engine.RenderTemplate("hello", []string{"Ada"}); err == nil {
		t.Fatalf("expected error for slice data")
	}
}

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()

	engine, err := gotemplate.New(gotemplate.WithFS(templatesFS))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}
