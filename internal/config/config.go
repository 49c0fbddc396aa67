package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the CLI settings read from the environment. Command-line flags
// layered on top by the CLI take precedence.
type Config struct {
	// ProviderURL points at the remote question service. Empty disables the
	// HTTP provider.
	ProviderURL     string        `env:"SURVEYFORM_PROVIDER_URL"`
	ProviderTimeout time.Duration `env:"SURVEYFORM_PROVIDER_TIMEOUT" envDefault:"5s"`
	// QuestionsFile is a JSON/YAML file served by the static provider when no
	// ProviderURL is set.
	QuestionsFile string `env:"SURVEYFORM_QUESTIONS_FILE"`
	DefinitionDir string `env:"SURVEYFORM_DEFINITION_DIR"`
	Renderer      string `env:"SURVEYFORM_RENDERER" envDefault:"text"`
	Output        string `env:"SURVEYFORM_OUTPUT"`
	LogMode       string `env:"SURVEYFORM_LOG_MODE" envDefault:"dev"`
	LogLevel      string `env:"SURVEYFORM_LOG_LEVEL" envDefault:"warn"`
	Theme         string `env:"SURVEYFORM_THEME"`
	ThemeVariant  string `env:"SURVEYFORM_THEME_VARIANT"`
	Locale        string `env:"SURVEYFORM_LOCALE"`
	MaxAttempts   int    `env:"SURVEYFORM_MAX_ATTEMPTS" envDefault:"0"`
}

// Load parses Config from the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses Config from vars instead of the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the CLI cannot act on.
func (c Config) Validate() error {
	if c.ProviderTimeout < 0 {
		return fmt.Errorf("config: provider timeout must not be negative")
	}
	if c.MaxAttempts < 0 {
		return fmt.Errorf("config: max attempts must not be negative")
	}
	if strings.TrimSpace(c.ProviderURL) != "" && strings.TrimSpace(c.QuestionsFile) != "" {
		return fmt.Errorf("config: SURVEYFORM_PROVIDER_URL and SURVEYFORM_QUESTIONS_FILE are mutually exclusive")
	}
	return nil
}
