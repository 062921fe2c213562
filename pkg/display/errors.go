package display

import "errors"

// ErrUnknownFormat is returned for output formats other than json, form and pretty.
var ErrUnknownFormat = errors.New("display: unknown output format")
