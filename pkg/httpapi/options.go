package httpapi

import (
	"net/http"

	"github.com/goliatone/go-formcheck/pkg/model"
)

// GuardFunc rejects a request before it reaches the form handlers. Returning
// an HTTPError selects the status code; any other error maps to 403.
type GuardFunc func(r *http.Request) error

// Options configures the HTTP host.
type Options struct {
	RoutePath string
	Form      model.FormModel
	Guard     GuardFunc
	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int64
}

// OptionFn mutates Options.
type OptionFn func(*Options)

// DefaultOptions returns the defaults used by NewHandler.
func DefaultOptions() Options {
	return Options{
		RoutePath:    "/form",
		Form:         model.SignupForm(),
		MaxBodyBytes: 1 << 20,
	}
}

// NewOptions applies fns over the defaults and clamps invalid values.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = "/form"
	}
	if len(opts.Form.Fields) == 0 {
		opts.Form = model.SignupForm()
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 1 << 20
	}
	return opts
}

// WithForm overrides the form model served by GET and the schema endpoint.
func WithForm(form model.FormModel) OptionFn {
	return func(o *Options) {
		o.Form = form
	}
}

// WithGuard installs a request guard.
func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		o.Guard = guard
	}
}

// WithRoutePath overrides the mount path.
func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		o.RoutePath = path
	}
}
