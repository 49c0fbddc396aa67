package tui

import (
	"github.com/goliatone/go-surveyform/pkg/logging"
	"github.com/goliatone/go-surveyform/pkg/render"
)

// Theme captures optional formatting hints the session applies when printing
// messages. Keep minimal to avoid coupling session logic to ANSI specifics.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}

// WithRenderOptions supplies the definition and translations used for prompt
// labels and error messages.
func WithRenderOptions(opts render.Options) Option {
	return func(s *Session) {
		s.renderOpts = opts
	}
}

// WithMaxAttempts bounds how many rejected submissions the session tolerates
// before giving up. Zero means unlimited.
func WithMaxAttempts(n int) Option {
	return func(s *Session) {
		if n >= 0 {
			s.maxAttempts = n
		}
	}
}

// WithConfirmSubmit asks for confirmation before each submission.
func WithConfirmSubmit(enabled bool) Option {
	return func(s *Session) {
		s.confirmSubmit = enabled
	}
}

// WithLogger routes session diagnostics to l.
func WithLogger(l logging.Logger) Option {
	return func(s *Session) {
		s.logger = logging.OrNop(l)
	}
}
