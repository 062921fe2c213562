package model

// FieldType is the simplified enum for form-friendly field kinds.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeBoolean FieldType = "boolean"
)

// FieldName identifies one of the signup form inputs. Values double as the
// JSON keys of the emitted record.
type FieldName string

const (
	FieldNameName   FieldName = "name"
	FieldNameEmail  FieldName = "email"
	FieldNameAgree  FieldName = "agreeTerms"
	FieldNameGender FieldName = "gender"
)

// FieldNames lists the form inputs in canonical order. Validation results,
// prompts and rendered errors all follow this order.
func FieldNames() []FieldName {
	return []FieldName{FieldNameName, FieldNameEmail, FieldNameAgree, FieldNameGender}
}

// Valid reports whether name is one of the known form inputs.
func (name FieldName) Valid() bool {
	switch name {
	case FieldNameName, FieldNameEmail, FieldNameAgree, FieldNameGender:
		return true
	default:
		return false
	}
}

const (
	ValidationRuleMinLength = "minLength"
	ValidationRulePattern   = "pattern"
	ValidationRuleRequired  = "required"
	ValidationRuleEnum      = "enum"
)

// ValidationRule describes the constraint attached to a field so hosts can
// surface it (HTML attributes, OpenAPI schema) without re-deriving it.
// Length limits encode their threshold in Params["value"] while pattern rules
// preserve the expression in Params["pattern"].
type ValidationRule struct {
	Kind   string            `json:"kind"`
	Params map[string]string `json:"params,omitempty"`
}

// Field models an individual input inside the form.
type Field struct {
	Name        FieldName         `json:"name"`
	Type        FieldType         `json:"type"`
	Required    bool              `json:"required"`
	Label       string            `json:"label,omitempty"`
	Placeholder string            `json:"placeholder,omitempty"`
	Description string            `json:"description,omitempty"`
	Default     any               `json:"default,omitempty"`
	Enum        []string          `json:"enum,omitempty"`
	Validations []ValidationRule  `json:"validations,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// FormModel is the top-level representation hosts consume.
type FormModel struct {
	ID          string            `json:"id"`
	Title       string            `json:"title,omitempty"`
	Description string            `json:"description,omitempty"`
	Fields      []Field           `json:"fields"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Field returns the descriptor registered under name.
func (f FormModel) Field(name FieldName) (Field, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}
