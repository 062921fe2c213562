package model

import (
	"maps"
	"slices"
)

// GenderMale and GenderFemale are the enumerated gender options.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// NameMinLength is the minimum rune count accepted for the name input.
const NameMinLength = 3

// EmailPattern is the shape every email value must match: a non-empty local
// part, an "@" and a dotted domain. Every domain label is non-empty and starts
// with a letter or digit; the final label has two or more letters.
const EmailPattern = `^[a-zA-Z0-9._%+\-]+@([a-zA-Z0-9][a-zA-Z0-9\-]*\.)+[a-zA-Z]{2,}$`

// SignupForm returns a fresh copy of the canonical form model. Callers may
// mutate the result (for example through a Decorator) without affecting
// later calls.
func SignupForm() FormModel {
	return FormModel{
		ID:    "signup",
		Title: "Sign up",
		Fields: []Field{
			{
				Name:        FieldNameName,
				Type:        FieldTypeString,
				Required:    true,
				Label:       "Name",
				Placeholder: "Name",
				Default:     "",
				Validations: []ValidationRule{
					{Kind: ValidationRuleMinLength, Params: map[string]string{"value": "3"}},
				},
			},
			{
				Name:        FieldNameEmail,
				Type:        FieldTypeString,
				Required:    true,
				Label:       "Email",
				Placeholder: "Email",
				Default:     "",
				Validations: []ValidationRule{
					{Kind: ValidationRulePattern, Params: map[string]string{"pattern": EmailPattern}},
				},
			},
			{
				Name:     FieldNameAgree,
				Type:     FieldTypeBoolean,
				Required: true,
				Label:    "I agree to the terms",
				Default:  false,
				Validations: []ValidationRule{
					{Kind: ValidationRuleRequired, Params: map[string]string{"value": "true"}},
				},
			},
			{
				Name:     FieldNameGender,
				Type:     FieldTypeString,
				Required: true,
				Label:    "Gender",
				Default:  "",
				Enum:     []string{GenderMale, GenderFemale},
				Validations: []ValidationRule{
					{Kind: ValidationRuleEnum},
				},
			},
		},
	}
}

// Clone returns a deep copy of the form model.
func (f FormModel) Clone() FormModel {
	out := f
	out.Metadata = maps.Clone(f.Metadata)
	out.Fields = make([]Field, len(f.Fields))
	for i, field := range f.Fields {
		field.Enum = slices.Clone(field.Enum)
		field.Metadata = maps.Clone(field.Metadata)
		rules := make([]ValidationRule, len(field.Validations))
		for j, rule := range field.Validations {
			rules[j] = ValidationRule{Kind: rule.Kind, Params: maps.Clone(rule.Params)}
		}
		if len(rules) == 0 {
			rules = nil
		}
		field.Validations = rules
		out.Fields[i] = field
	}
	return out
}
