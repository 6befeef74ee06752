// Package tester provides a harness for testing future-based code against a
// dispatcher with a simulated clock.
package tester

import (
	"log/slog"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/cschleiden/go-futures/dispatch"
	"github.com/cschleiden/go-futures/future"
	"github.com/stretchr/testify/require"
)

// Tester drives a dispatcher in test code. Timers run on a simulated clock,
// so delayed work fires as soon as the test advances time.
type Tester struct {
	t testing.TB

	clock *clock.Mock
	d     *dispatch.Dispatcher
}

func New(t testing.TB, opts ...TesterOption) *Tester {
	options := &options{
		Logger:          slog.Default(),
		DeadlockTimeout: dispatch.DeadlockDetection,
	}

	for _, o := range opts {
		o(options)
	}

	// Start with the current wall clock time
	c := clock.NewMock()
	c.Set(time.Now())

	d := dispatch.New(
		dispatch.WithClock(c),
		dispatch.WithLogger(options.Logger.With("source", "tester")),
		dispatch.WithDeadlockTimeout(options.DeadlockTimeout),
	)

	return &Tester{
		t:     t,
		clock: c,
		d:     d,
	}
}

// Dispatcher returns the dispatcher driven by this tester.
func (ft *Tester) Dispatcher() *dispatch.Dispatcher {
	return ft.d
}

// Clock returns the simulated clock.
func (ft *Tester) Clock() *clock.Mock {
	return ft.clock
}

// Now returns the current time of the simulated clock.
func (ft *Tester) Now() time.Time {
	return ft.clock.Now()
}

// Run executes queued continuations until the dispatcher is idle.
func (ft *Tester) Run() {
	ft.d.Drain()
}

// Advance runs the dispatcher until it is idle, moves the simulated clock
// forward, and runs everything that became due.
func (ft *Tester) Advance(d time.Duration) {
	ft.d.Drain()
	ft.clock.Add(d)
	ft.d.Drain()
}

// RequireValue drives the dispatcher until it is idle, then requires that f
// completed with the given value.
func RequireValue[T any](ft *Tester, f *future.Future[T], want T) {
	ft.t.Helper()

	ft.Run()

	require.True(ft.t, f.Finished(), "future is not finished")

	v, err := f.Read()
	require.NoError(ft.t, err)
	require.Equal(ft.t, want, v)
}

// RequireFailure drives the dispatcher until it is idle, then requires that
// f failed with an error matching target.
func RequireFailure[T any](ft *Tester, f *future.Future[T], target error) {
	ft.t.Helper()

	ft.Run()

	require.True(ft.t, f.Finished(), "future is not finished")
	require.True(ft.t, f.Failed(), "future did not fail")

	err, rerr := f.ReadError()
	require.NoError(ft.t, rerr)
	require.ErrorIs(ft.t, err, target)
}

// RequirePending drives the dispatcher until it is idle, then requires that
// f has not finished.
func RequirePending[T any](ft *Tester, f *future.Future[T]) {
	ft.t.Helper()

	ft.Run()

	require.False(ft.t, f.Finished(), "future finished early")
}
