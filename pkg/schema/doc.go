// Package schema publishes the signup record as an OpenAPI 3 document. The
// schema is derived from the form model so the published contract and the
// validation rules come from the same source.
//
// Publish is what the CLI prints. Load and Check are for consumers of the
// published document: Load parses and validates a document, Check validates
// a record against the FieldSet schema.
package schema
