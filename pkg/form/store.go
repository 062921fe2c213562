package form

import (
	"fmt"
	"sync"

	"github.com/goliatone/go-formcheck/pkg/model"
)

// FieldSet is the record of current input. It is emitted verbatim on every
// submit, so its JSON shape is part of the external contract.
type FieldSet struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	AgreeTerms bool   `json:"agreeTerms"`
	Gender     string `json:"gender"`
}

// Value returns the value held for field.
func (fs FieldSet) Value(field model.FieldName) (any, error) {
	switch field {
	case model.FieldNameName:
		return fs.Name, nil
	case model.FieldNameEmail:
		return fs.Email, nil
	case model.FieldNameAgree:
		return fs.AgreeTerms, nil
	case model.FieldNameGender:
		return fs.Gender, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
}

// With returns a copy of fs with field replaced by value. Strings are
// accepted for name, email and gender; agreeTerms requires a bool.
func (fs FieldSet) With(field model.FieldName, value any) (FieldSet, error) {
	switch field {
	case model.FieldNameName, model.FieldNameEmail, model.FieldNameGender:
		str, ok := value.(string)
		if !ok {
			return fs, valueTypeError(field, "string", value)
		}
		switch field {
		case model.FieldNameName:
			fs.Name = str
		case model.FieldNameEmail:
			fs.Email = str
		default:
			fs.Gender = str
		}
	case model.FieldNameAgree:
		flag, ok := value.(bool)
		if !ok {
			return fs, valueTypeError(field, "bool", value)
		}
		fs.AgreeTerms = flag
	default:
		return fs, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return fs, nil
}

// Map converts the record into a generic map keyed by field name.
func (fs FieldSet) Map() map[string]any {
	return map[string]any{
		string(model.FieldNameName):   fs.Name,
		string(model.FieldNameEmail):  fs.Email,
		string(model.FieldNameAgree):  fs.AgreeTerms,
		string(model.FieldNameGender): fs.Gender,
	}
}

// Store holds the current value of each form input. It performs no
// validation: values may be transiently invalid between updates. All access
// is serialised so a submit can read, validate and emit as one unit.
type Store struct {
	mu     sync.Mutex
	values FieldSet
}

// NewStore returns a store seeded with prefill. The zero FieldSet gives the
// initial state: empty strings and agreeTerms=false.
func NewStore(prefill FieldSet) *Store {
	return &Store{values: prefill}
}

// Get returns the current value of field.
func (s *Store) Get(field model.FieldName) (any, error) {
	if s == nil {
		return nil, ErrNilStore
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values.Value(field)
}

// Set replaces the value of field. Type mismatches and unknown fields leave
// the store untouched.
func (s *Store) Set(field model.FieldName, value any) error {
	if s == nil {
		return ErrNilStore
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := s.values.With(field, value)
	if err != nil {
		return err
	}
	s.values = next
	return nil
}

// SetName replaces the name input.
func (s *Store) SetName(name string) error {
	return s.Set(model.FieldNameName, name)
}

// SetEmail replaces the email input.
func (s *Store) SetEmail(email string) error {
	return s.Set(model.FieldNameEmail, email)
}

// SetAgreeTerms sets the terms checkbox.
func (s *Store) SetAgreeTerms(agree bool) error {
	return s.Set(model.FieldNameAgree, agree)
}

// ToggleAgreeTerms flips the terms checkbox and returns the new state.
func (s *Store) ToggleAgreeTerms() (bool, error) {
	if s == nil {
		return false, ErrNilStore
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values.AgreeTerms = !s.values.AgreeTerms
	return s.values.AgreeTerms, nil
}

// SelectGender selects a gender option. Any string is stored; the
// validation rule decides whether it is acceptable.
func (s *Store) SelectGender(gender string) error {
	return s.Set(model.FieldNameGender, gender)
}

// Snapshot returns a copy of the current values.
func (s *Store) Snapshot() FieldSet {
	if s == nil {
		return FieldSet{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values
}

// Reset restores the initial values.
func (s *Store) Reset() {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.values = FieldSet{}
	s.mu.Unlock()
}

// Do runs fn with the current values while holding the store lock. No update
// can interleave with fn, which lets callers treat read-validate-emit as a
// single step. fn must not call back into the store.
func (s *Store) Do(fn func(FieldSet) error) error {
	if s == nil {
		return ErrNilStore
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.values)
}
