package uischema

import (
	"fmt"
	"maps"
	"strings"

	"github.com/goliatone/go-formcheck/pkg/model"
)

// Decorator applies UI schema overrides to a form model.
type Decorator struct {
	store *Store
}

var _ model.Decorator = (*Decorator)(nil)

// NewDecorator builds a Decorator backed by the provided store. When store is
// nil or empty, the decorator becomes a no-op.
func NewDecorator(store *Store) *Decorator {
	return &Decorator{store: store}
}

// Decorate overrides labels, placeholders and help text. Overrides naming a
// field the form does not have are rejected so typos surface early.
func (d *Decorator) Decorate(form *model.FormModel) error {
	if d == nil || d.store.Empty() || form == nil {
		return nil
	}
	cfg, ok := d.store.Form(form.ID)
	if !ok {
		return nil
	}

	if cfg.Form.Title != "" {
		form.Title = cfg.Form.Title
	}
	if cfg.Form.Description != "" {
		form.Description = cfg.Form.Description
	}
	form.Metadata = mergeStringMap(form.Metadata, cfg.Form.Metadata)

	for name, fieldCfg := range cfg.Fields {
		idx := fieldIndex(form.Fields, model.FieldName(name))
		if idx < 0 {
			return fmt.Errorf("uischema: form %q (%s) configures unknown field %q", form.ID, cfg.Source, name)
		}
		field := &form.Fields[idx]
		if fieldCfg.Label != "" {
			field.Label = fieldCfg.Label
		}
		if fieldCfg.Placeholder != "" {
			field.Placeholder = fieldCfg.Placeholder
		}
		if fieldCfg.HelpText != "" {
			field.Description = fieldCfg.HelpText
		}
		field.Metadata = mergeStringMap(field.Metadata, fieldCfg.Metadata)
	}
	return nil
}

func fieldIndex(fields []model.Field, name model.FieldName) int {
	for i, field := range fields {
		if field.Name == name {
			return i
		}
	}
	return -1
}

func mergeStringMap(base, extra map[string]string) map[string]string {
	if len(extra) == 0 {
		return base
	}
	out := maps.Clone(base)
	if out == nil {
		out = make(map[string]string, len(extra))
	}
	maps.Copy(out, extra)
	return out
}

// SignupForm returns the canonical signup form decorated with the UI schema
// at path, or with the embedded defaults when path is empty.
func SignupForm(path string) (model.FormModel, error) {
	var (
		store *Store
		err   error
	)
	if strings.TrimSpace(path) == "" {
		store, err = LoadFS(EmbeddedFS())
	} else {
		store, err = LoadFile(path)
	}
	if err != nil {
		return model.FormModel{}, err
	}
	return model.Decorate(model.SignupForm(), NewDecorator(store))
}
