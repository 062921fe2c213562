package submission

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/goliatone/go-formcheck/pkg/display"
	"github.com/goliatone/go-formcheck/pkg/form"
	"github.com/goliatone/go-formcheck/pkg/validation"
)

// Kind distinguishes the two submission outcomes.
type Kind string

const (
	// KindEmit means every field passed.
	KindEmit Kind = "emit"
	// KindReject means at least one field failed.
	KindReject Kind = "reject"
)

// Outcome is the result of one submit. Record is the exact FieldSet that was
// emitted; Result lists the failing fields, if any.
type Outcome struct {
	Kind   Kind              `json:"kind"`
	Record form.FieldSet     `json:"record"`
	Result validation.Result `json:"result"`
}

// Valid reports whether the submission passed validation.
func (o Outcome) Valid() bool {
	return o.Kind == KindEmit
}

// ErrorDisplay receives the recomputed list of failing fields on every
// submit. An empty list clears previously shown messages.
type ErrorDisplay interface {
	Show(issues []validation.Issue)
}

// Controller validates the field store and emits the record on submit. It
// keeps no state between calls beyond its collaborators.
type Controller struct {
	store   *form.Store
	sink    Sink
	display ErrorDisplay

	// mu serialises emissions so sinks never see overlapping calls.
	mu sync.Mutex
}

// New constructs a controller bound to store. Without options records are
// logged as JSON through the standard logger and errors are discarded.
func New(store *form.Store, options ...Option) (*Controller, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	c := &Controller{
		store:   store,
		sink:    NewLogSink(log.Default(), display.OutputFormatJSON),
		display: discardDisplay{},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c, nil
}

// Store returns the field store the controller reads from.
func (c *Controller) Store() *form.Store {
	return c.store
}

// Submit validates the current store contents, emits them to the sink and
// publishes the failing fields to the error display. The store stays locked
// for the whole sequence, so the emitted record always carries the values
// present at submit time. Fields are never cleared.
//
// A sink failure is returned together with the computed outcome.
func (c *Controller) Submit(ctx context.Context) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	var (
		outcome Outcome
		emitErr error
	)
	err := c.store.Do(func(values form.FieldSet) error {
		outcome, emitErr = c.submit(ctx, values)
		return nil
	})
	if err != nil {
		return Outcome{}, err
	}
	return outcome, emitErr
}

// SubmitFieldSet runs the same sequence as Submit against an explicit
// record, bypassing the store.
func (c *Controller) SubmitFieldSet(ctx context.Context, values form.FieldSet) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}
	return c.submit(ctx, values)
}

func (c *Controller) submit(ctx context.Context, values form.FieldSet) (Outcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	outcome := Evaluate(values)
	// The record is emitted whether or not it passed.
	var emitErr error
	if err := c.sink.Emit(ctx, values); err != nil {
		emitErr = fmt.Errorf("%w: %w", ErrEmit, err)
	}
	c.display.Show(outcome.Result.Issues)
	return outcome, emitErr
}

// Evaluate classifies values without emitting them.
func Evaluate(values form.FieldSet) Outcome {
	result := validation.Validate(values)
	kind := KindEmit
	if !result.Valid {
		kind = KindReject
	}
	return Outcome{Kind: kind, Record: values, Result: result}
}

type discardDisplay struct{}

func (discardDisplay) Show([]validation.Issue) {}
