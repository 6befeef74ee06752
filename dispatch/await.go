package dispatch

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/cschleiden/go-futures/future"
	"github.com/cschleiden/go-futures/log"
)

// ErrDeadlock is returned by Await when the awaited future can no longer
// complete: the queue is empty and no timers are outstanding, or no work
// arrived within the dispatcher's deadlock timeout.
var ErrDeadlock = errors.New("dispatcher deadlocked")

// Await drives the dispatcher until f settles, then returns its result. It
// must be called from the goroutine that owns the dispatcher.
func Await[T any](d *Dispatcher, f *future.Future[T]) (T, error) {
	var zero T

	for {
		d.Drain()

		if f.Finished() {
			return f.Read()
		}

		d.mu.Lock()
		idle := len(d.queue) == 0 && d.timers == 0
		d.mu.Unlock()

		if idle {
			return zero, fmt.Errorf("waiting for future: %w", ErrDeadlock)
		}

		timeout := d.clock.Timer(d.deadlockTimeout)

		select {
		case <-d.wake:
			timeout.Stop()
		case <-timeout.C:
			d.logger.Warn("No progress within deadlock timeout",
				slog.Int(log.QueueLengthKey, d.Pending()),
				slog.Int(log.ActiveTimersKey, d.ActiveTimers()))

			return zero, fmt.Errorf("no progress after %v: %w", d.deadlockTimeout, ErrDeadlock)
		}
	}
}
