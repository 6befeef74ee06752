// Package dispatch provides the reference scheduler for futures: a
// single-threaded run queue with clock timers, deadlock detection, and
// logging, tracing, and metrics hooks.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/cschleiden/go-futures/future"
	"github.com/cschleiden/go-futures/internal/metrickeys"
	"github.com/cschleiden/go-futures/log"
	"github.com/cschleiden/go-futures/metrics"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const TracerName = "go-futures"

// DeadlockDetection is the default time Await waits without progress before
// it fails.
const DeadlockDetection = 40 * time.Second

// Dispatcher is a single-threaded run queue for future continuations. All
// futures attached to a dispatcher must be completed and read from the one
// goroutine that calls RunOnce or Drain; Defer alone is safe to call from
// any goroutine.
type Dispatcher struct {
	mu     sync.Mutex
	queue  []func()
	timers int

	// wake signals Await that new work arrived.
	wake chan struct{}

	clock   clock.Clock
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics metrics.Client

	deadlockTimeout time.Duration
}

func New(opts ...DispatcherOption) *Dispatcher {
	options := ApplyOptions(opts...)

	return &Dispatcher{
		wake:            make(chan struct{}, 1),
		clock:           options.Clock,
		logger:          options.Logger,
		tracer:          options.TracerProvider.Tracer(TracerName),
		metrics:         options.Metrics,
		deadlockTimeout: options.DeadlockTimeout,
	}
}

var _ future.Scheduler = (*Dispatcher)(nil)

// Defer queues fn for a later turn.
func (d *Dispatcher) Defer(fn func()) {
	d.mu.Lock()
	d.queue = append(d.queue, fn)
	d.mu.Unlock()

	d.notify()
}

func (d *Dispatcher) notify() {
	select {
	case d.wake <- struct{}{}:
	default:
	}
}

// RunOnce executes exactly the continuations that were queued when it was
// called; continuations deferred during the turn wait for the next one.
// Returns the number of continuations executed. A panicking continuation is
// logged and re-raised, the rest of its batch is dropped.
func (d *Dispatcher) RunOnce() int {
	d.mu.Lock()
	batch := d.queue
	d.queue = nil
	d.mu.Unlock()

	if len(batch) == 0 {
		return 0
	}

	d.logger.Debug("Executing dispatcher turn", slog.Int(log.BatchSizeKey, len(batch)))

	_, span := d.tracer.Start(context.Background(), "DispatcherTurn", trace.WithAttributes(
		attribute.Int(log.BatchSizeKey, len(batch)),
	))
	defer span.End()

	timer := metrics.Timer(d.metrics, d.clock, metrickeys.TurnDuration, metrics.Tags{})
	defer timer.Stop()

	d.metrics.Counter(metrickeys.TurnProcessed, metrics.Tags{}, 1)
	d.metrics.Distribution(metrickeys.TurnLength, metrics.Tags{}, float64(len(batch)))

	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("Continuation panicked", log.PanicKey, fmt.Sprintf("%v", r))
			panic(r)
		}
	}()

	for i, fn := range batch {
		batch[i] = nil
		fn()
	}

	return len(batch)
}

// Drain runs turns until the queue is empty and returns the total number of
// continuations executed.
func (d *Dispatcher) Drain() int {
	total := 0

	for {
		n := d.RunOnce()
		if n == 0 {
			return total
		}

		total += n
	}
}

// Logger returns the dispatcher's logger.
func (d *Dispatcher) Logger() *slog.Logger {
	return d.logger
}

// Metrics returns the dispatcher's metrics client.
func (d *Dispatcher) Metrics() metrics.Client {
	return d.metrics
}

// Tracer returns the dispatcher's tracer.
func (d *Dispatcher) Tracer() trace.Tracer {
	return d.tracer
}

// Clock returns the clock that drives Delay timers.
func (d *Dispatcher) Clock() clock.Clock {
	return d.clock
}

// Pending returns the number of queued continuations.
func (d *Dispatcher) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.queue)
}

// ActiveTimers returns the number of Delay timers that have not fired yet.
func (d *Dispatcher) ActiveTimers() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.timers
}

// Delay returns a future that completes on a dispatcher turn once delay has
// elapsed on the dispatcher's clock.
func (d *Dispatcher) Delay(delay time.Duration) *future.Future[future.Void] {
	f := future.New[future.Void](d, future.WithName("delay"))

	now := d.clock.Now()
	at := now.Add(delay)

	d.mu.Lock()
	d.timers++
	d.mu.Unlock()

	d.metrics.Counter(metrickeys.TimerScheduled, metrics.Tags{}, 1)

	d.clock.AfterFunc(delay, func() {
		// Decrement and enqueue under one lock so Await never observes a
		// fired timer without its completion being queued.
		d.mu.Lock()
		d.timers--
		d.queue = append(d.queue, func() {
			d.traceTimerFired(now, at)
			d.metrics.Counter(metrickeys.TimerFired, metrics.Tags{}, 1)

			f.Complete(future.Void{})
		})
		d.mu.Unlock()

		d.notify()
	})

	return f
}

func (d *Dispatcher) traceTimerFired(scheduledAt, at time.Time) {
	_, span := d.tracer.Start(context.Background(), "Timer", trace.WithAttributes(
		attribute.Int64(log.DurationKey, int64(at.Sub(scheduledAt)/time.Millisecond)),
		attribute.String(log.NowKey, scheduledAt.String()),
		attribute.String(log.AtKey, at.String()),
	), trace.WithTimestamp(scheduledAt))
	span.End()
}
