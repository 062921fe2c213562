package form

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-formcheck/pkg/model"
)

var (
	// ErrUnknownField is returned when a field name is not part of the form.
	ErrUnknownField = errors.New("form: unknown field")
	// ErrValueType is returned when a value has the wrong Go type for a field.
	ErrValueType = errors.New("form: invalid value type")
	// ErrNilStore guards calls on a nil *Store.
	ErrNilStore = errors.New("form: store is nil")
)

func valueTypeError(field model.FieldName, want string, got any) error {
	return fmt.Errorf("%w: %s expects %s, got %T", ErrValueType, field, want, got)
}

// ErrPatch is returned when a JSON patch cannot be decoded or applied.
var ErrPatch = errors.New("form: invalid patch")
