// Package submission implements the submit action. Each call validates the
// field store from scratch, emits the record to a Sink whether or not it
// passed, and replaces whatever the ErrorDisplay showed with the new list of
// failing fields. Nothing carries over between calls: submitting twice with
// the same values emits twice and yields the same outcome twice.
package submission
