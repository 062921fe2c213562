package tui

import "github.com/goliatone/go-formcheck/pkg/model"

// Theme captures optional message prefixes the session applies when printing.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// Option configures the session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithForm overrides the form model used for labels and options.
func WithForm(form model.FormModel) Option {
	return func(s *Session) {
		if len(form.Fields) > 0 {
			s.form = form
		}
	}
}

// WithMaxAttempts bounds the number of submits per Run. Zero or less keeps
// prompting until the form is valid.
func WithMaxAttempts(n int) Option {
	return func(s *Session) {
		s.maxAttempts = n
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}
