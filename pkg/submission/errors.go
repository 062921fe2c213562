package submission

import "errors"

var (
	// ErrStoreRequired is returned when the controller is built without a store.
	ErrStoreRequired = errors.New("submission: field store is required")
	// ErrEmit wraps sink failures.
	ErrEmit = errors.New("submission: emit record")
)
