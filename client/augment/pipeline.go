// Package augment injects dynamically computed parameters, such as
// signatures, timestamps and tokens, into outgoing requests without
// disturbing the parameters they already carry.
package augment

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/adamwoolhether/dynhttp/client/request"
)

const tracerName = "github.com/adamwoolhether/dynhttp/client/augment"

// Option is a functional option for [NewPipeline].
type Option func(*options) error

type options struct {
	logger *slog.Logger
	tracer trace.Tracer
}

// WithLogger injects a custom [slog.Logger] into the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		o.logger = logger
		return nil
	}
}

// WithTracer sets the tracer used to record a span per augmented request.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) error {
		if tracer == nil {
			return errors.New("tracer must not be nil")
		}
		o.tracer = tracer
		return nil
	}
}

// Pipeline runs extraction, augmentation and rewriting for a request.
// It is safe for concurrent use as long as its Augmenter is.
type Pipeline struct {
	augmenter Augmenter
	logger    *slog.Logger
	tracer    trace.Tracer
}

// Result is the outcome of [Pipeline.Apply].
type Result struct {
	// Request is the request to send. It equals the input when nothing was added.
	Request request.Outgoing
	// Encoding is the encoding the parameters were merged into.
	Encoding Encoding
	// Added lists the names that were applied, in order.
	Added []string
	// InfoURL is the diagnostic URL form of a form-encoded request, empty otherwise.
	InfoURL string
}

// NewPipeline returns a Pipeline running a.
func NewPipeline(a Augmenter, optFns ...Option) (*Pipeline, error) {
	if a == nil {
		return nil, ErrNilAugmenter
	}

	opts := options{
		logger: slog.Default(),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, err
		}
	}

	return &Pipeline{
		augmenter: a,
		logger:    opts.logger,
		tracer:    opts.tracer,
	}, nil
}

// Apply augments o synchronously. A request whose encoding is not
// parameter-bearing is returned unchanged without consulting the policy.
// Any policy failure is returned as an [*Error] and no request is produced.
func (p *Pipeline) Apply(ctx context.Context, o request.Outgoing) (Result, error) {
	ctx, span := p.tracer.Start(ctx, "augment.apply")
	defer span.End()

	enc, existing := Extract(o)
	span.SetAttributes(
		attribute.String("augment.encoding", enc.String()),
		attribute.String("http.method", o.Method()),
	)

	if enc == EncodingNone {
		p.logger.Debug("augment passthrough", "method", o.Method(), "body", o.Body().Kind().String())
		return Result{Request: o, Encoding: enc}, nil
	}

	augmented, err := p.augmenter.Augment(ctx, existing.Clone())
	if err == nil && augmented == nil {
		err = errors.New("nil parameter map")
	}
	if err != nil {
		aerr := &Error{Encoding: enc, Err: err}
		span.RecordError(aerr)
		span.SetStatus(codes.Error, "augmentation failed")
		return Result{}, aerr
	}

	rewritten, added := Rewrite(o, enc, existing, augmented)
	span.SetAttributes(attribute.Int("augment.added", len(added)))

	res := Result{
		Request:  rewritten,
		Encoding: enc,
		Added:    added,
	}

	if enc == EncodingForm {
		merged := existing.Clone()
		merged.Merge(augmented)
		res.InfoURL = InfoURL(o.URL().String(), merged)
		p.logger.Debug("augmented form request", "url", res.InfoURL)
	}

	return res, nil
}
