package validation

import (
	"github.com/goliatone/go-formcheck/pkg/form"
	"github.com/goliatone/go-formcheck/pkg/model"
)

// Issue pairs a failing field with its fixed message.
type Issue struct {
	Field   model.FieldName `json:"field"`
	Message string          `json:"message"`
}

// Result captures the outcome of validating a record. Issues holds one entry
// per failing field in canonical field order; passing fields are absent.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// Validate evaluates every rule against values. Rules never short-circuit,
// so each invalid field reports its message regardless of the others.
func Validate(values form.FieldSet) Result {
	failed := failedFields(values)
	result := Result{Valid: len(failed) == 0}
	for _, rule := range rules {
		if failed[rule.Field] {
			result.Issues = append(result.Issues, Issue{Field: rule.Field, Message: rule.Message})
		}
	}
	return result
}

// Check evaluates the rule for a single field. It returns the message and
// false when the field fails.
func Check(field model.FieldName, values form.FieldSet) (string, bool) {
	rule, ok := RuleFor(field)
	if !ok || !failedFields(values)[field] {
		return "", true
	}
	return rule.Message, false
}

// Message returns the error shown for field, or "" when it passed.
func (r Result) Message(field model.FieldName) string {
	for _, issue := range r.Issues {
		if issue.Field == field {
			return issue.Message
		}
	}
	return ""
}

// Has reports whether field failed.
func (r Result) Has(field model.FieldName) bool {
	return r.Message(field) != ""
}

// Errors returns the failing fields keyed by name. It returns nil when the
// record is valid.
func (r Result) Errors() map[string]string {
	if len(r.Issues) == 0 {
		return nil
	}
	out := make(map[string]string, len(r.Issues))
	for _, issue := range r.Issues {
		out[string(issue.Field)] = issue.Message
	}
	return out
}

// Messages returns the error messages in canonical field order.
func (r Result) Messages() []string {
	if len(r.Issues) == 0 {
		return nil
	}
	out := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		out = append(out, issue.Message)
	}
	return out
}
