// Package model defines the declarative description of the signup form: the
// four inputs (name, email, agreeTerms, gender), their labels, enumerated
// options and the validation rule kinds attached to them. Hosts such as the
// terminal prompter and the HTTP handler read the model to decide how to ask
// for a value; the validation package owns the actual predicates and messages.
// UI schema files can override labels, placeholders and help text through a
// Decorator without touching the canonical structure.
package model
