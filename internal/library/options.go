package library

import (
	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/library-graphql/internal/model"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/snnyvrz/shelfshare/apps/library-graphql/internal/library"

type options struct {
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	newID          func() (uuid.UUID, error)
}

// Option configures a Resolver or a Mutator.
type Option func(*options)

// WithTracerProvider sets the provider spans are created from. The global
// provider is used by default.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		o.tracerProvider = tp
	}
}

// WithMeterProvider sets the provider the mutation counters are created
// from. The global provider is used by default.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) {
		o.meterProvider = mp
	}
}

// WithIDGenerator replaces the generator used for new book ids.
func WithIDGenerator(fn func() (uuid.UUID, error)) Option {
	return func(o *options) {
		o.newID = fn
	}
}

func buildOptions(opts []Option) options {
	o := options{
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
		newID:          model.NewID,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) tracer() trace.Tracer {
	return o.tracerProvider.Tracer(instrumentationName)
}

func (o options) meter() metric.Meter {
	return o.meterProvider.Meter(instrumentationName)
}
