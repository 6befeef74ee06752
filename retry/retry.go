// Package retry repeats future-producing operations after failures, spacing
// attempts with a backoff policy and dispatcher timers.
package retry

import (
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/cschleiden/go-futures/dispatch"
	"github.com/cschleiden/go-futures/future"
	"github.com/cschleiden/go-futures/log"
)

// Do runs op and, while it fails, schedules another attempt after the
// policy's next backoff interval. The returned future settles with the first
// successful value or with the error that exhausted the policy.
//
// Wrap an error with backoff.Permanent to stop retrying immediately; the
// future then fails with the wrapped error.
func Do[T any](d *dispatch.Dispatcher, policy backoff.BackOff, op func() *future.Future[T]) *future.Future[T] {
	ret := future.New[T](d, future.WithName("retry"))

	policy.Reset()

	attempt := 0

	var run func()
	run = func() {
		attempt++

		f := op()
		f.OnComplete(func() {
			if !f.Failed() {
				v, _ := f.Read()
				ret.Complete(v)
				return
			}

			err, _ := f.ReadError()

			var perm *backoff.PermanentError
			if errors.As(err, &perm) {
				ret.Fail(perm.Unwrap())
				return
			}

			next := policy.NextBackOff()
			if next == backoff.Stop {
				ret.Fail(err)
				return
			}

			d.Logger().Debug("Retrying after failure",
				slog.String(log.FutureKey, f.Label()),
				slog.Int(log.AttemptKey, attempt),
				slog.Int64(log.DurationKey, int64(next/time.Millisecond)))

			d.Delay(next).OnComplete(run)
		})
	}

	run()

	return ret
}
