package schema

import (
	"strings"

	"github.com/goliatone/go-surveyform/pkg/model"
)

// InputKind hints how a field should be presented.
type InputKind string

const (
	InputText     InputKind = "text"
	InputEmail    InputKind = "email"
	InputSelect   InputKind = "select"
	InputNumber   InputKind = "number"
	InputTextArea InputKind = "textarea"
)

// FieldConfig carries display metadata for a single field. It never affects
// which fields are active or required.
type FieldConfig struct {
	Label       string    `json:"label" yaml:"label"`
	Input       InputKind `json:"input" yaml:"input"`
	Placeholder string    `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Help        string    `json:"help,omitempty" yaml:"help,omitempty"`
	Options     []string  `json:"options,omitempty" yaml:"options,omitempty"`
}

// Definition is the display definition for the survey form.
type Definition struct {
	Title  string                          `json:"title" yaml:"title"`
	Fields map[model.FieldName]FieldConfig `json:"fields" yaml:"fields"`
}

// Field returns the configuration for name.
func (d Definition) Field(name model.FieldName) (FieldConfig, bool) {
	cfg, ok := d.Fields[name]
	return cfg, ok
}

// Label returns the configured label, falling back to the raw field name.
func (d Definition) Label(name model.FieldName) string {
	if cfg, ok := d.Fields[name]; ok && strings.TrimSpace(cfg.Label) != "" {
		return cfg.Label
	}
	return string(name)
}

// Clone returns a deep copy.
func (d Definition) Clone() Definition {
	out := Definition{Title: d.Title}
	if d.Fields != nil {
		out.Fields = make(map[model.FieldName]FieldConfig, len(d.Fields))
		for name, cfg := range d.Fields {
			out.Fields[name] = cloneFieldConfig(cfg)
		}
	}
	return out
}

func cloneFieldConfig(cfg FieldConfig) FieldConfig {
	out := cfg
	if len(cfg.Options) > 0 {
		out.Options = append([]string(nil), cfg.Options...)
	}
	return out
}

// overlay applies non-empty settings from patch onto base.
func overlay(base, patch FieldConfig) FieldConfig {
	out := cloneFieldConfig(base)
	if strings.TrimSpace(patch.Label) != "" {
		out.Label = strings.TrimSpace(patch.Label)
	}
	if patch.Input != "" {
		out.Input = patch.Input
	}
	if patch.Placeholder != "" {
		out.Placeholder = patch.Placeholder
	}
	if patch.Help != "" {
		out.Help = patch.Help
	}
	if len(patch.Options) > 0 {
		out.Options = append([]string(nil), patch.Options...)
	}
	return out
}
