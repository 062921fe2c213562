// Package tui is a terminal host for the signup form. A Session asks for the
// four inputs through a PromptDriver (survey by default), writes answers into
// the field store and submits through the submission controller.
package tui
