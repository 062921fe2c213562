package form

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/goliatone/go-formcheck/pkg/model"
)

// Patch applies an RFC 6902 JSON patch to the current values and stores the
// result. The patch is applied atomically: on any error the store keeps its
// previous values. Paths must name form inputs (/name, /email, /agreeTerms,
// /gender); removing a path restores that input's initial value. A null value
// is a type error, as it is for Set.
func (s *Store) Patch(patchJSON []byte) (FieldSet, error) {
	if s == nil {
		return FieldSet{}, ErrNilStore
	}
	patch, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return FieldSet{}, fmt.Errorf("%w: decode: %w", ErrPatch, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := json.Marshal(s.values)
	if err != nil {
		return FieldSet{}, fmt.Errorf("form: marshal values: %w", err)
	}
	modified, err := patch.Apply(current)
	if err != nil {
		return FieldSet{}, fmt.Errorf("%w: apply: %w", ErrPatch, err)
	}

	next, err := decodeFieldSet(modified)
	if err != nil {
		return FieldSet{}, err
	}
	s.values = next
	return next, nil
}

func decodeFieldSet(data []byte) (FieldSet, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return FieldSet{}, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	for _, name := range model.FieldNames() {
		if value, ok := raw[string(name)]; ok && bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			_, err := FieldSet{}.With(name, nil)
			return FieldSet{}, err
		}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var out FieldSet
	if err := dec.Decode(&out); err != nil {
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &typeErr):
			return FieldSet{}, fmt.Errorf("%w: %s expects %s", ErrValueType, typeErr.Field, typeErr.Type)
		case strings.Contains(err.Error(), "unknown field"):
			return FieldSet{}, fmt.Errorf("%w: %w", ErrUnknownField, err)
		default:
			return FieldSet{}, fmt.Errorf("%w: %w", ErrPatch, err)
		}
	}
	return out, nil
}
