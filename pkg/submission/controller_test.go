package submission_test

import (
	"bytes"
	"context"
	"errors"
	"log"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcheck/pkg/display"
	"github.com/goliatone/go-formcheck/pkg/form"
	"github.com/goliatone/go-formcheck/pkg/model"
	"github.com/goliatone/go-formcheck/pkg/submission"
	"github.com/goliatone/go-formcheck/pkg/testsupport"
	"github.com/goliatone/go-formcheck/pkg/validation"
)

var validFormValues = form.FieldSet{
	Name:       "Gary Oldman",
	Email:      "gary.oldman@gmail.com",
	AgreeTerms: true,
	Gender:     "male",
}

type harness struct {
	store      *form.Store
	recorder   *submission.Recorder
	board      *display.Board
	controller *submission.Controller
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		store:    form.NewStore(form.FieldSet{}),
		recorder: &submission.Recorder{},
		board:    display.NewBoard(),
	}
	controller, err := submission.New(h.store,
		submission.WithSink(h.recorder),
		submission.WithErrorDisplay(h.board),
	)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	h.controller = controller
	return h
}

// fill mirrors a user typing every value into an empty form.
func (h *harness) fill(t *testing.T, values form.FieldSet) {
	t.Helper()
	if err := h.store.SetName(values.Name); err != nil {
		t.Fatalf("set name: %v", err)
	}
	if err := h.store.SetEmail(values.Email); err != nil {
		t.Fatalf("set email: %v", err)
	}
	if values.AgreeTerms {
		if _, err := h.store.ToggleAgreeTerms(); err != nil {
			t.Fatalf("toggle terms: %v", err)
		}
	}
	if values.Gender != "" {
		if err := h.store.SelectGender(values.Gender); err != nil {
			t.Fatalf("select gender: %v", err)
		}
	}
}

func (h *harness) submit(t *testing.T) submission.Outcome {
	t.Helper()
	outcome, err := h.controller.Submit(context.Background())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	return outcome
}

func (h *harness) lastRecord(t *testing.T) form.FieldSet {
	t.Helper()
	records := h.recorder.Records()
	if len(records) == 0 {
		t.Fatalf("expected at least one emitted record")
	}
	return records[len(records)-1]
}

func TestSubmit_ValidForm(t *testing.T) {
	h := newHarness(t)
	h.fill(t, validFormValues)

	outcome := h.submit(t)

	if !outcome.Valid() || outcome.Kind != submission.KindEmit {
		t.Fatalf("expected emit outcome, got %#v", outcome)
	}
	if diff := cmp.Diff(validFormValues, h.lastRecord(t)); diff != "" {
		t.Fatalf("emitted record mismatch (-want +got):\n%s", diff)
	}
	if len(h.board.Messages()) != 0 {
		t.Fatalf("expected no errors, got %v", h.board.Messages())
	}
}

func TestSubmit_PositiveVariants(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*form.Store) error
		want   form.FieldSet
	}{
		{
			name:   "very long name",
			mutate: func(s *form.Store) error { return s.SetName("Hubert Blaine Wolfeschlegelsteinhausenbergerdorff") },
			want: form.FieldSet{
				Name: "Hubert Blaine Wolfeschlegelsteinhausenbergerdorff", Email: validFormValues.Email,
				AgreeTerms: true, Gender: "male",
			},
		},
		{
			name:   "complex email",
			mutate: func(s *form.Store) error { return s.SetEmail("test.name+alias@example.co.uk") },
			want: form.FieldSet{
				Name: validFormValues.Name, Email: "test.name+alias@example.co.uk",
				AgreeTerms: true, Gender: "male",
			},
		},
		{
			name:   "gender changed",
			mutate: func(s *form.Store) error { return s.SelectGender(model.GenderFemale) },
			want: form.FieldSet{
				Name: validFormValues.Name, Email: validFormValues.Email,
				AgreeTerms: true, Gender: "female",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			h.fill(t, validFormValues)
			if err := tc.mutate(h.store); err != nil {
				t.Fatalf("mutate: %v", err)
			}

			outcome := h.submit(t)
			if !outcome.Valid() {
				t.Fatalf("expected valid outcome, got %#v", outcome.Result.Issues)
			}
			if diff := cmp.Diff(tc.want, h.lastRecord(t)); diff != "" {
				t.Fatalf("emitted record mismatch (-want +got):\n%s", diff)
			}
			if len(h.board.Messages()) != 0 {
				t.Fatalf("expected no errors, got %v", h.board.Messages())
			}
		})
	}
}

func TestSubmit_Scenarios(t *testing.T) {
	scenarios := testsupport.MustLoadScenarios(t, filepath.Join("..", "testsupport", "testdata", "scenarios.json"))

	for _, sc := range scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			h := newHarness(t)
			h.fill(t, sc.Values)

			outcome := h.submit(t)
			if outcome.Valid() != sc.Valid {
				t.Fatalf("expected valid=%v, got %#v", sc.Valid, outcome.Result.Issues)
			}
			if diff := testsupport.CompareGolden(sc.Values, h.lastRecord(t)); diff != "" {
				t.Fatalf("emitted record mismatch (-want +got):\n%s", diff)
			}
			if diff := testsupport.CompareGolden(sc.Errors, outcome.Result.Errors()); diff != "" {
				t.Fatalf("errors mismatch (-want +got):\n%s", diff)
			}
			if got := len(h.board.Issues()); got != len(sc.Errors) {
				t.Fatalf("expected %d displayed errors, got %d", len(sc.Errors), got)
			}
		})
	}
}

func TestSubmit_ResubmitIsIndependent(t *testing.T) {
	h := newHarness(t)
	h.fill(t, validFormValues)

	first := h.submit(t)
	if h.recorder.Len() != 1 {
		t.Fatalf("expected one emission, got %d", h.recorder.Len())
	}
	second := h.submit(t)
	if h.recorder.Len() != 2 {
		t.Fatalf("expected two emissions, got %d", h.recorder.Len())
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("outcomes differ (-first +second):\n%s", diff)
	}
	want := []form.FieldSet{validFormValues, validFormValues}
	if diff := cmp.Diff(want, h.recorder.Records()); diff != "" {
		t.Fatalf("emissions mismatch (-want +got):\n%s", diff)
	}
	if len(h.board.Messages()) != 0 {
		t.Fatalf("expected no errors, got %v", h.board.Messages())
	}
}

func TestSubmit_NegativeCases(t *testing.T) {
	cases := []struct {
		name    string
		initial form.FieldSet
		mutate  func(*form.Store) error
		record  form.FieldSet
		message string
	}{
		{
			name:    "cleared name",
			initial: validFormValues,
			mutate:  func(s *form.Store) error { return s.SetName("") },
			record:  modified(func(v *form.FieldSet) { v.Name = "" }),
			message: validation.MessageName,
		},
		{
			name:    "short name",
			initial: validFormValues,
			mutate:  func(s *form.Store) error { return s.SetName("Ga") },
			record:  modified(func(v *form.FieldSet) { v.Name = "Ga" }),
			message: validation.MessageName,
		},
		{
			name:    "quoted email",
			initial: validFormValues,
			mutate:  func(s *form.Store) error { return s.SetEmail(`"gary.oldman.gmail.com"`) },
			record:  modified(func(v *form.FieldSet) { v.Email = `"gary.oldman.gmail.com"` }),
			message: validation.MessageEmail,
		},
		{
			name:    "terms unticked",
			initial: validFormValues,
			mutate:  func(s *form.Store) error { return s.SetAgreeTerms(false) },
			record:  modified(func(v *form.FieldSet) { v.AgreeTerms = false }),
			message: validation.MessageAgreeTerms,
		},
		{
			name:    "gender never selected",
			initial: modified(func(v *form.FieldSet) { v.Gender = "" }),
			record:  modified(func(v *form.FieldSet) { v.Gender = "" }),
			message: validation.MessageGender,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			h.fill(t, tc.initial)
			if tc.mutate != nil {
				if err := tc.mutate(h.store); err != nil {
					t.Fatalf("mutate: %v", err)
				}
			}

			outcome := h.submit(t)

			if outcome.Valid() || outcome.Kind != submission.KindReject {
				t.Fatalf("expected reject outcome, got %#v", outcome)
			}
			if diff := cmp.Diff(tc.record, h.lastRecord(t)); diff != "" {
				t.Fatalf("emitted record mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff([]string{tc.message}, h.board.Messages()); diff != "" {
				t.Fatalf("displayed errors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func modified(fn func(*form.FieldSet)) form.FieldSet {
	values := validFormValues
	fn(&values)
	return values
}

func TestSubmit_FixingFieldClearsOnlyItsError(t *testing.T) {
	h := newHarness(t)
	h.fill(t, form.FieldSet{Name: "Ga", Email: "nope"})

	h.submit(t)
	want := []string{
		validation.MessageName,
		validation.MessageEmail,
		validation.MessageAgreeTerms,
		validation.MessageGender,
	}
	if diff := cmp.Diff(want, h.board.Messages()); diff != "" {
		t.Fatalf("initial errors mismatch (-want +got):\n%s", diff)
	}

	if err := h.store.SetName("Gary"); err != nil {
		t.Fatalf("set name: %v", err)
	}
	h.submit(t)
	if got := h.board.Message(model.FieldNameName); got != "" {
		t.Fatalf("name error should be cleared, got %q", got)
	}
	if diff := cmp.Diff(want[1:], h.board.Messages()); diff != "" {
		t.Fatalf("remaining errors mismatch (-want +got):\n%s", diff)
	}
	if h.recorder.Len() != 2 {
		t.Fatalf("expected an emission per submit, got %d", h.recorder.Len())
	}
}

func TestSubmit_EmitsValuesAtSubmitTime(t *testing.T) {
	h := newHarness(t)
	h.fill(t, validFormValues)
	h.submit(t)

	if err := h.store.SetName("Someone Else"); err != nil {
		t.Fatalf("set name: %v", err)
	}
	h.submit(t)

	if got := h.lastRecord(t).Name; got != "Someone Else" {
		t.Fatalf("expected fresh name in emission, got %q", got)
	}
	if got := h.store.Snapshot(); got.Name != "Someone Else" || !got.AgreeTerms {
		t.Fatalf("submit must not clear fields, got %#v", got)
	}
}

func TestSubmit_StoreLockedDuringEmit(t *testing.T) {
	store := form.NewStore(validFormValues)
	started := make(chan struct{})
	release := make(chan struct{})
	sink := submission.SinkFunc(func(context.Context, form.FieldSet) error {
		close(started)
		<-release
		return nil
	})
	controller, err := submission.New(store, submission.WithSink(sink))
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}

	submitted := make(chan form.FieldSet, 1)
	go func() {
		outcome, _ := controller.Submit(context.Background())
		submitted <- outcome.Record
	}()
	<-started

	updated := make(chan struct{})
	go func() {
		_ = store.SetName("Someone Else")
		close(updated)
	}()

	select {
	case <-updated:
		t.Fatalf("store update ran while the sink was emitting")
	case <-time.After(50 * time.Millisecond):
	}
	close(release)

	if got := (<-submitted).Name; got != validFormValues.Name {
		t.Fatalf("expected the submit-time name, got %q", got)
	}
	<-updated
	if got := store.Snapshot().Name; got != "Someone Else" {
		t.Fatalf("update lost after submit, got %q", got)
	}
}

func TestSubmit_SinkFailureKeepsOutcome(t *testing.T) {
	boom := errors.New("boom")
	store := form.NewStore(validFormValues)
	board := display.NewBoard()
	controller, err := submission.New(store,
		submission.WithSink(submission.SinkFunc(func(context.Context, form.FieldSet) error { return boom })),
		submission.WithErrorDisplay(board),
	)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}

	outcome, err := controller.Submit(context.Background())
	if !errors.Is(err, submission.ErrEmit) || !errors.Is(err, boom) {
		t.Fatalf("expected wrapped sink error, got %v", err)
	}
	if !outcome.Valid() {
		t.Fatalf("sink failure must not change validation, got %#v", outcome)
	}
}

func TestSubmit_CancelledContext(t *testing.T) {
	h := newHarness(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := h.controller.Submit(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if h.recorder.Len() != 0 {
		t.Fatalf("cancelled submit must not emit")
	}
}

func TestSubmitFieldSet(t *testing.T) {
	h := newHarness(t)

	outcome, err := h.controller.SubmitFieldSet(context.Background(), form.FieldSet{Name: "Gary Oldman"})
	if err != nil {
		t.Fatalf("submit field set: %v", err)
	}
	if outcome.Valid() {
		t.Fatalf("expected reject outcome")
	}
	if diff := cmp.Diff(form.FieldSet{}, h.store.Snapshot()); diff != "" {
		t.Fatalf("store should be untouched (-want +got):\n%s", diff)
	}
	if h.recorder.Len() != 1 {
		t.Fatalf("expected one emission, got %d", h.recorder.Len())
	}
}

func TestNew_RequiresStore(t *testing.T) {
	if _, err := submission.New(nil); !errors.Is(err, submission.ErrStoreRequired) {
		t.Fatalf("expected ErrStoreRequired, got %v", err)
	}
}

func TestWriterAndLogSinks(t *testing.T) {
	var buf bytes.Buffer
	writer := submission.NewWriterSink(&buf, display.OutputFormatJSON)

	var logBuf bytes.Buffer
	logger := log.New(&logBuf, "formcheck: ", 0)
	logSink := submission.NewLogSink(logger, display.OutputFormatJSON)

	sink := submission.MultiSink(writer, logSink)
	if err := sink.Emit(context.Background(), validFormValues); err != nil {
		t.Fatalf("emit: %v", err)
	}

	want := `{"name":"Gary Oldman","email":"gary.oldman@gmail.com","agreeTerms":true,"gender":"male"}` + "\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("writer output mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff("formcheck: "+want, logBuf.String()); diff != "" {
		t.Fatalf("log output mismatch (-want +got):\n%s", diff)
	}
}

func TestMultiSink_JoinsErrors(t *testing.T) {
	recorder := &submission.Recorder{}
	failing := submission.SinkFunc(func(context.Context, form.FieldSet) error {
		return errors.New("disk full")
	})

	err := submission.MultiSink(failing, recorder).Emit(context.Background(), validFormValues)
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected joined error, got %v", err)
	}
	if recorder.Len() != 1 {
		t.Fatalf("later sinks must still receive the record")
	}
}
