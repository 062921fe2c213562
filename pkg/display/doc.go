// Package display turns records and validation results into something a
// person or a downstream system can read: JSON, form-encoded or pretty text
// encodings of the emitted record, a sanitised HTML error fragment, and an
// in-memory Board that always reflects the most recent submit.
package display
