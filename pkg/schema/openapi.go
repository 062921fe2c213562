package schema

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formcheck/pkg/form"
	"github.com/goliatone/go-formcheck/pkg/model"
)

// ComponentName is the component key the FieldSet schema is published under.
const ComponentName = "FieldSet"

// FieldSetSchema derives a JSON schema for the emitted record from the form
// model, translating each validation rule into its schema keyword.
func FieldSetSchema(form model.FormModel) *openapi3.Schema {
	out := openapi3.NewObjectSchema()
	if form.Title != "" {
		out.Title = form.Title
	}
	required := make([]string, 0, len(form.Fields))
	for _, field := range form.Fields {
		out.WithProperty(string(field.Name), fieldSchema(field))
		required = append(required, string(field.Name))
	}
	out.Required = required
	return out
}

func fieldSchema(field model.Field) *openapi3.Schema {
	var s *openapi3.Schema
	switch field.Type {
	case model.FieldTypeBoolean:
		s = openapi3.NewBoolSchema()
	default:
		s = openapi3.NewStringSchema()
	}
	s.Description = field.Label

	for _, rule := range field.Validations {
		switch rule.Kind {
		case model.ValidationRuleMinLength:
			if n, err := strconv.ParseInt(rule.Params["value"], 10, 64); err == nil {
				s.WithMinLength(n)
			}
		case model.ValidationRulePattern:
			if pattern := rule.Params["pattern"]; pattern != "" {
				s.WithPattern(pattern)
			}
		case model.ValidationRuleRequired:
			if field.Type == model.FieldTypeBoolean && rule.Params["value"] == "true" {
				s.WithEnum(true)
			}
		case model.ValidationRuleEnum:
			values := make([]any, 0, len(field.Enum))
			for _, option := range field.Enum {
				values = append(values, option)
			}
			s.WithEnum(values...)
		}
	}
	return s
}

// Document builds an OpenAPI 3 description of the submit endpoint with the
// FieldSet schema registered as a component.
func Document(form model.FormModel) *openapi3.T {
	fieldSet := FieldSetSchema(form)
	ref := openapi3.NewSchemaRef("#/components/schemas/"+ComponentName, fieldSet)

	outcome := openapi3.NewObjectSchema().
		WithProperty("valid", openapi3.NewBoolSchema()).
		WithPropertyRef("record", ref).
		WithProperty("errors", openapi3.NewObjectSchema().WithAdditionalProperties(openapi3.NewStringSchema()))

	submit := &openapi3.Operation{
		OperationID: "submitForm",
		Summary:     "Validate and emit the current form values",
		RequestBody: &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchemaRef(ref),
		},
		Responses: openapi3.NewResponses(
			openapi3.WithStatus(200, &openapi3.ResponseRef{
				Value: openapi3.NewResponse().WithDescription("Submission outcome").WithJSONSchema(outcome),
			}),
		),
	}

	title := form.Title
	if title == "" {
		title = form.ID
	}
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   title,
			Version: "1.0.0",
		},
		Paths: openapi3.NewPaths(
			openapi3.WithPath("/form/validate", &openapi3.PathItem{Post: submit}),
		),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{
				ComponentName: openapi3.NewSchemaRef("", fieldSet),
			},
		},
	}
}

// Check validates values against the derived schema. It agrees with the
// validation package on every record. The binaries do not call it; it is for
// consumers that hold a record and only the published contract.
func Check(fm model.FormModel, values form.FieldSet) error {
	if err := FieldSetSchema(fm).VisitJSON(values.Map()); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	return nil
}

// Load parses and validates a serialized OpenAPI document.
func Load(ctx context.Context, raw []byte) (*openapi3.T, error) {
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("schema: load document: %w", err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("schema: validate document: %w", err)
	}
	return doc, nil
}

// Publish renders the document for form as indented JSON and loads it back
// through Load, so only a document that parses and validates is returned.
func Publish(ctx context.Context, form model.FormModel) ([]byte, error) {
	if len(form.Fields) == 0 {
		return nil, errors.New("schema: form has no fields")
	}
	raw, err := json.MarshalIndent(Document(form), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("schema: marshal document: %w", err)
	}
	if _, err := Load(ctx, raw); err != nil {
		return nil, err
	}
	return raw, nil
}
