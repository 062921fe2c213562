package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-formcheck/pkg/model"
	"github.com/goliatone/go-formcheck/pkg/submission"
)

// Session drives the signup form from a terminal: it prompts for each input,
// submits, and re-prompts only the fields that failed.
type Session struct {
	controller  *submission.Controller
	driver      PromptDriver
	form        model.FormModel
	maxAttempts int
	theme       Theme
}

// New constructs a session with defaults (survey driver, canonical form
// model, three attempts).
func New(controller *submission.Controller, options ...Option) (*Session, error) {
	if controller == nil {
		return nil, ErrControllerRequired
	}
	s := &Session{
		controller:  controller,
		driver:      NewSurveyDriver(nil),
		form:        model.SignupForm(),
		maxAttempts: 3,
		theme:       Theme{ErrorPrefix: "✗ "},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s, nil
}

// Run prompts, submits and repeats until the form is valid or the attempt
// budget is spent. Every submit emits the record. The last outcome is
// returned either way; callers inspect Outcome.Valid.
func (s *Session) Run(ctx context.Context) (submission.Outcome, error) {
	if ctx == nil {
		return submission.Outcome{}, errors.New("tui: context is required")
	}

	pending := model.FieldNames()
	for attempt := 1; ; attempt++ {
		for _, name := range pending {
			if err := s.promptField(ctx, name); err != nil {
				return submission.Outcome{}, err
			}
		}

		outcome, err := s.controller.Submit(ctx)
		if err != nil {
			return outcome, err
		}
		if outcome.Valid() {
			_ = s.driver.Info(ctx, s.theme.InfoPrefix+"Form submitted.")
			return outcome, nil
		}

		for _, issue := range outcome.Result.Issues {
			if err := s.driver.Info(ctx, s.theme.ErrorPrefix+issue.Message); err != nil {
				return outcome, err
			}
		}
		if s.maxAttempts > 0 && attempt >= s.maxAttempts {
			return outcome, nil
		}

		pending = pending[:0]
		for _, issue := range outcome.Result.Issues {
			pending = append(pending, issue.Field)
		}
	}
}

func (s *Session) promptField(ctx context.Context, name model.FieldName) error {
	field, ok := s.form.Field(name)
	if !ok {
		field = model.Field{Name: name, Type: model.FieldTypeString}
	}
	store := s.controller.Store()
	current, err := store.Get(name)
	if err != nil {
		return err
	}

	switch {
	case field.Type == model.FieldTypeBoolean:
		def, _ := current.(bool)
		resp, err := s.driver.Confirm(ctx, ConfirmConfig{
			Message: displayLabel(field),
			Default: def,
			Help:    field.Description,
		})
		if err != nil {
			return err
		}
		return store.Set(name, resp)

	case len(field.Enum) > 0:
		def, _ := current.(string)
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      displayLabel(field),
			Options:      field.Enum,
			DefaultIndex: indexOf(field.Enum, def),
			Help:         field.Description,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(field.Enum) {
			// Leave the value unset; the gender rule reports it on submit.
			return store.Set(name, "")
		}
		return store.Set(name, field.Enum[idx])

	default:
		def, _ := current.(string)
		resp, err := s.driver.Input(ctx, InputConfig{
			Message:     displayLabel(field),
			Default:     def,
			Help:        field.Description,
			Placeholder: field.Placeholder,
		})
		if err != nil {
			return err
		}
		if err := store.Set(name, resp); err != nil {
			return fmt.Errorf("tui: store %s: %w", name, err)
		}
		return nil
	}
}

func displayLabel(field model.Field) string {
	if field.Label != "" {
		return field.Label
	}
	return string(field.Name)
}
