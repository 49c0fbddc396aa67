package config

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Config{
		ProviderTimeout: 5 * time.Second,
		Renderer:        "text",
		LogMode:         "dev",
		LogLevel:        "warn",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromOverrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"SURVEYFORM_PROVIDER_URL":     "https://questions.example.com",
		"SURVEYFORM_PROVIDER_TIMEOUT": "250ms",
		"SURVEYFORM_RENDERER":         "json",
		"SURVEYFORM_THEME":            "surveyform",
		"SURVEYFORM_THEME_VARIANT":    "dark",
		"SURVEYFORM_MAX_ATTEMPTS":     "3",
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ProviderURL != "https://questions.example.com" || cfg.ProviderTimeout != 250*time.Millisecond {
		t.Fatalf("unexpected provider settings %+v", cfg)
	}
	if cfg.Renderer != "json" || cfg.Theme != "surveyform" || cfg.ThemeVariant != "dark" || cfg.MaxAttempts != 3 {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadFromErrors(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want string
	}{
		{
			name: "bad duration",
			vars: map[string]string{"SURVEYFORM_PROVIDER_TIMEOUT": "soon"},
			want: "config: parse env:",
		},
		{
			name: "negative attempts",
			vars: map[string]string{"SURVEYFORM_MAX_ATTEMPTS": "-1"},
			want: "max attempts",
		},
		{
			name: "two providers",
			vars: map[string]string{
				"SURVEYFORM_PROVIDER_URL":   "http://localhost",
				"SURVEYFORM_QUESTIONS_FILE": "questions.yaml",
			},
			want: "mutually exclusive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(tt.vars)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadReadsProcessEnv(t *testing.T) {
	t.Setenv("SURVEYFORM_LOCALE", "es")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Locale != "es" {
		t.Fatalf("expected locale from env, got %q", cfg.Locale)
	}
}
