package dispatch

import (
	"log/slog"
	"time"

	"github.com/benbjohnson/clock"
	mi "github.com/cschleiden/go-futures/internal/metrics"
	"github.com/cschleiden/go-futures/metrics"
	"go.opentelemetry.io/otel/trace"
)

type Options struct {
	Logger *slog.Logger

	Metrics metrics.Client

	TracerProvider trace.TracerProvider

	// Clock drives Delay timers. Tests swap in a mock clock.
	Clock clock.Clock

	// DeadlockTimeout bounds how long Await blocks without the dispatcher
	// making progress before it gives up.
	DeadlockTimeout time.Duration
}

var DefaultOptions Options = Options{
	DeadlockTimeout: DeadlockDetection,

	Logger:         slog.Default(),
	Metrics:        mi.NewNoopMetricsClient(),
	TracerProvider: trace.NewNoopTracerProvider(),
	Clock:          clock.New(),
}

type DispatcherOption func(*Options)

func WithLogger(logger *slog.Logger) DispatcherOption {
	return func(o *Options) {
		o.Logger = logger
	}
}

func WithMetrics(client metrics.Client) DispatcherOption {
	return func(o *Options) {
		o.Metrics = client
	}
}

func WithTracerProvider(tp trace.TracerProvider) DispatcherOption {
	return func(o *Options) {
		o.TracerProvider = tp
	}
}

func WithClock(c clock.Clock) DispatcherOption {
	return func(o *Options) {
		o.Clock = c
	}
}

func WithDeadlockTimeout(timeout time.Duration) DispatcherOption {
	return func(o *Options) {
		o.DeadlockTimeout = timeout
	}
}

func ApplyOptions(opts ...DispatcherOption) Options {
	options := DefaultOptions

	for _, opt := range opts {
		opt(&options)
	}

	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	return options
}
