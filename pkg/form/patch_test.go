package form_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcheck/pkg/form"
)

func TestStore_Patch(t *testing.T) {
	store := form.NewStore(form.FieldSet{Email: "gary.oldman@gmail.com"})

	got, err := store.Patch([]byte(`[
		{"op": "replace", "path": "/name", "value": "Gary Oldman"},
		{"op": "replace", "path": "/agreeTerms", "value": true},
		{"op": "replace", "path": "/gender", "value": "male"},
		{"op": "remove", "path": "/email"}
	]`))
	if err != nil {
		t.Fatalf("patch: %v", err)
	}

	want := form.FieldSet{Name: "Gary Oldman", AgreeTerms: true, Gender: "male"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("patched values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, store.Snapshot()); diff != "" {
		t.Fatalf("store not updated (-want +got):\n%s", diff)
	}
}

func TestStore_PatchIsAtomic(t *testing.T) {
	before := form.FieldSet{Name: "Gary", AgreeTerms: true}

	cases := []struct {
		name  string
		patch string
		err   error
	}{
		{name: "malformed", patch: `{"op":`, err: form.ErrPatch},
		{name: "wrong type", patch: `[{"op":"replace","path":"/agreeTerms","value":"yes"}]`, err: form.ErrValueType},
		{name: "unknown field", patch: `[{"op":"add","path":"/age","value":42}]`, err: form.ErrUnknownField},
		{name: "null bool", patch: `[{"op":"replace","path":"/agreeTerms","value":null}]`, err: form.ErrValueType},
		{name: "null string", patch: `[{"op":"replace","path":"/name","value":null}]`, err: form.ErrValueType},
		{name: "failed test op", patch: `[{"op":"replace","path":"/name","value":"X"},{"op":"test","path":"/name","value":"Y"}]`, err: form.ErrPatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := form.NewStore(before)
			if _, err := store.Patch([]byte(tc.patch)); !errors.Is(err, tc.err) {
				t.Fatalf("expected %v, got %v", tc.err, err)
			}
			if diff := cmp.Diff(before, store.Snapshot()); diff != "" {
				t.Fatalf("store changed on error (-want +got):\n%s", diff)
			}
		})
	}
}
