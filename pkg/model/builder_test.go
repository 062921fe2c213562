package model_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcheck/pkg/model"
)

func TestSignupForm_FieldOrder(t *testing.T) {
	form := model.SignupForm()

	var got []model.FieldName
	for _, field := range form.Fields {
		got = append(got, field.Name)
	}
	if diff := cmp.Diff(model.FieldNames(), got); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}

	gender, ok := form.Field(model.FieldNameGender)
	if !ok {
		t.Fatalf("gender field missing")
	}
	if diff := cmp.Diff([]string{"male", "female"}, gender.Enum); diff != "" {
		t.Fatalf("gender options mismatch (-want +got):\n%s", diff)
	}
	if _, ok := form.Field("age"); ok {
		t.Fatalf("unexpected field age")
	}
}

func TestFieldName_Valid(t *testing.T) {
	for _, name := range model.FieldNames() {
		if !name.Valid() {
			t.Fatalf("expected %q to be valid", name)
		}
	}
	if model.FieldName("agree_terms").Valid() {
		t.Fatalf("expected agree_terms to be rejected")
	}
}

func TestDecorate_DoesNotMutateInput(t *testing.T) {
	base := model.SignupForm()

	decorated, err := model.Decorate(base, model.DecoratorFunc(func(form *model.FormModel) error {
		form.Fields[0].Label = "Full name"
		form.Fields[3].Enum[0] = "changed"
		return nil
	}))
	if err != nil {
		t.Fatalf("decorate: %v", err)
	}
	if decorated.Fields[0].Label != "Full name" {
		t.Fatalf("decorator not applied")
	}
	if diff := cmp.Diff(model.SignupForm(), base); diff != "" {
		t.Fatalf("input model mutated (-want +got):\n%s", diff)
	}
}

func TestDecorate_PropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := model.Decorate(model.SignupForm(), model.DecoratorFunc(func(*model.FormModel) error { return boom }))
	if !errors.Is(err, boom) {
		t.Fatalf("expected decorator error, got %v", err)
	}
}
