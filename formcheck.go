package formcheck

import (
	"context"

	"github.com/goliatone/go-formcheck/pkg/form"
	"github.com/goliatone/go-formcheck/pkg/model"
	"github.com/goliatone/go-formcheck/pkg/submission"
	"github.com/goliatone/go-formcheck/pkg/validation"
)

// FieldSet aliases form.FieldSet for callers that only need the record type.
type FieldSet = form.FieldSet

// Outcome aliases submission.Outcome.
type Outcome = submission.Outcome

// Sink aliases submission.Sink.
type Sink = submission.Sink

// NewController builds a submission controller over an empty field store.
// Options are forwarded to submission.New.
func NewController(options ...submission.Option) (*submission.Controller, error) {
	return submission.New(form.NewStore(form.FieldSet{}), options...)
}

// Validate runs every field rule against values.
func Validate(values FieldSet) validation.Result {
	return validation.Validate(values)
}

// SubmitOnce validates values and hands them to sink whether or not they
// pass. It is the simplest entry point for callers that hold a complete
// record and do not need a field store.
func SubmitOnce(ctx context.Context, sink Sink, values FieldSet) (Outcome, error) {
	controller, err := NewController(submission.WithSink(sink))
	if err != nil {
		return Outcome{}, err
	}
	return controller.SubmitFieldSet(ctx, values)
}

// SignupForm returns the canonical signup form model.
func SignupForm() model.FormModel {
	return model.SignupForm()
}
