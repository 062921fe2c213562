// Package uischema loads UI schema files (JSON or YAML) that override the
// copy shown for a form: title, field labels, placeholders and help text.
// The Decorator applies those overrides to a model.FormModel without
// touching the validation rules.
package uischema
