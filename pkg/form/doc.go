// Package form holds the field store: the current value of each signup input
// and the FieldSet record emitted on submit.
package form
