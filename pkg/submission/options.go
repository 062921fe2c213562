package submission

// Option configures the controller.
type Option func(*Controller)

// WithSink overrides where records are emitted.
func WithSink(sink Sink) Option {
	return func(c *Controller) {
		if sink != nil {
			c.sink = sink
		}
	}
}

// WithErrorDisplay attaches the display that receives failing fields.
func WithErrorDisplay(d ErrorDisplay) Option {
	return func(c *Controller) {
		if d != nil {
			c.display = d
		}
	}
}
