package submission

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"sync"

	"github.com/goliatone/go-formcheck/pkg/display"
	"github.com/goliatone/go-formcheck/pkg/form"
)

// Sink receives the record on every submit, valid or not. Controller.Submit
// calls Emit while holding the field store lock, so Emit must not call back
// into the store (Snapshot, Set, Submit); use the values it is given.
type Sink interface {
	Emit(ctx context.Context, values form.FieldSet) error
}

// SinkFunc adapts a function into a Sink.
type SinkFunc func(ctx context.Context, values form.FieldSet) error

// Emit calls the underlying function.
func (fn SinkFunc) Emit(ctx context.Context, values form.FieldSet) error {
	return fn(ctx, values)
}

// LogSink logs each record through a *log.Logger.
type LogSink struct {
	logger *log.Logger
	format display.OutputFormat
}

// NewLogSink returns a sink writing encoded records to logger. A nil logger
// falls back to the standard logger.
func NewLogSink(logger *log.Logger, format display.OutputFormat) *LogSink {
	if logger == nil {
		logger = log.Default()
	}
	return &LogSink{logger: logger, format: format}
}

// Emit encodes and logs values.
func (s *LogSink) Emit(_ context.Context, values form.FieldSet) error {
	data, err := display.Encode(values, s.format)
	if err != nil {
		return err
	}
	s.logger.Print(string(data))
	return nil
}

// WriterSink writes one encoded record per submit to an io.Writer.
type WriterSink struct {
	mu     sync.Mutex
	w      io.Writer
	format display.OutputFormat
}

// NewWriterSink returns a sink writing to w.
func NewWriterSink(w io.Writer, format display.OutputFormat) *WriterSink {
	return &WriterSink{w: w, format: format}
}

// Emit encodes values and writes them followed by a newline.
func (s *WriterSink) Emit(_ context.Context, values form.FieldSet) error {
	data, err := display.Encode(values, s.format)
	if err != nil {
		return err
	}
	if !bytes.HasSuffix(data, []byte("\n")) {
		data = append(data, '\n')
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.w.Write(data)
	return err
}

// Recorder keeps every emitted record in memory.
type Recorder struct {
	mu      sync.Mutex
	records []form.FieldSet
}

// Emit appends values to the recorded list.
func (r *Recorder) Emit(_ context.Context, values form.FieldSet) error {
	r.mu.Lock()
	r.records = append(r.records, values)
	r.mu.Unlock()
	return nil
}

// Records returns a copy of the emitted records in order.
func (r *Recorder) Records() []form.FieldSet {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]form.FieldSet(nil), r.records...)
}

// Len returns the number of emissions seen.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// MultiSink fans a record out to several sinks. Every sink is called even
// when an earlier one fails.
func MultiSink(sinks ...Sink) Sink {
	return SinkFunc(func(ctx context.Context, values form.FieldSet) error {
		var errs []error
		for _, sink := range sinks {
			if sink == nil {
				continue
			}
			if err := sink.Emit(ctx, values); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})
}
