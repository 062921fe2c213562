package schema_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcheck/pkg/form"
	"github.com/goliatone/go-formcheck/pkg/model"
	"github.com/goliatone/go-formcheck/pkg/schema"
	"github.com/goliatone/go-formcheck/pkg/validation"
)

func TestFieldSetSchema_Keywords(t *testing.T) {
	s := schema.FieldSetSchema(model.SignupForm())

	if diff := cmp.Diff([]string{"name", "email", "agreeTerms", "gender"}, s.Required); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}
	if got := s.Properties["name"].Value.MinLength; got != 3 {
		t.Fatalf("expected minLength 3, got %d", got)
	}
	if got := s.Properties["email"].Value.Pattern; got != model.EmailPattern {
		t.Fatalf("pattern mismatch: %q", got)
	}
	if diff := cmp.Diff([]any{"male", "female"}, s.Properties["gender"].Value.Enum); diff != "" {
		t.Fatalf("gender enum mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]any{true}, s.Properties["agreeTerms"].Value.Enum); diff != "" {
		t.Fatalf("agreeTerms enum mismatch (-want +got):\n%s", diff)
	}
}

func TestCheck_AgreesWithValidation(t *testing.T) {
	records := []form.FieldSet{
		{Name: "Gary Oldman", Email: "gary.oldman@gmail.com", AgreeTerms: true, Gender: "male"},
		{Name: "Gar", Email: "test.name+alias@example.co.uk", AgreeTerms: true, Gender: "female"},
		{Name: "Ga", Email: "gary.oldman@gmail.com", AgreeTerms: true, Gender: "male"},
		{Name: "Gary Oldman", Email: `"gary.oldman.gmail.com"`, AgreeTerms: true, Gender: "male"},
		{Name: "Gary Oldman", Email: "gary.oldman@gmail.com", AgreeTerms: false, Gender: "male"},
		{Name: "Gary Oldman", Email: "gary.oldman@gmail.com", AgreeTerms: true, Gender: ""},
		{Name: "Gary Oldman", Email: "g@gmail..com", AgreeTerms: true, Gender: "male"},
		{Name: "Gary Oldman", Email: "a@-.co", AgreeTerms: true, Gender: "male"},
		{},
	}

	fm := model.SignupForm()
	for _, record := range records {
		want := validation.Validate(record).Valid
		got := schema.Check(fm, record) == nil
		if want != got {
			t.Fatalf("schema and validation disagree for %#v: validation=%v schema=%v", record, want, got)
		}
	}
}

func TestCheck_RejectsMalformedDomains(t *testing.T) {
	fm := model.SignupForm()
	for _, email := range []string{"g@gmail..com", "a@-.co"} {
		record := form.FieldSet{Name: "Gary Oldman", Email: email, AgreeTerms: true, Gender: "male"}
		if err := schema.Check(fm, record); err == nil {
			t.Fatalf("expected schema to reject %q", email)
		}
	}
}

func TestPublish(t *testing.T) {
	raw, err := schema.Publish(context.Background(), model.SignupForm())
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	loaded, err := schema.Load(context.Background(), raw)
	if err != nil {
		t.Fatalf("published document does not load: %v", err)
	}
	if loaded.Info.Title != "Sign up" {
		t.Fatalf("title mismatch: %q", loaded.Info.Title)
	}

	if _, err := schema.Publish(context.Background(), model.FormModel{}); err == nil {
		t.Fatalf("expected error for a form without fields")
	}
}

func TestDocument_RoundTrip(t *testing.T) {
	doc := schema.Document(model.SignupForm())

	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	loaded, err := schema.Load(context.Background(), raw)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Components == nil || loaded.Components.Schemas[schema.ComponentName] == nil {
		t.Fatalf("FieldSet component missing")
	}
	item := loaded.Paths.Find("/form/validate")
	if item == nil || item.Post == nil || item.Post.OperationID != "submitForm" {
		t.Fatalf("submit operation missing: %#v", item)
	}
}
