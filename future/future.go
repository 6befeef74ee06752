// Package future implements single-threaded cooperative futures. A future
// delivers its result by invoking the registered continuation inline on the
// completer's stack; continuations registered after completion are handed to
// a Scheduler for a later turn instead. Futures are not safe for concurrent
// use, all futures attached to one scheduler must be driven from the same
// goroutine.
package future

// Void is the result type for futures that carry no value.
type Void struct{}

// core is the completion state shared by Future, Var, and Stream write
// futures. finished is monotonic, it transitions to true exactly once unless
// a Var resets it.
type core struct {
	sched Scheduler

	done     bool
	err      error
	errStack string

	cb func()

	diag diag
}

func (c *core) init(s Scheduler, name string, skip int) {
	if s == nil {
		panic("future: nil Scheduler")
	}

	c.sched = s
	c.diag = newDiag(name, skip)
}

// setCallback registers fn as the continuation. If the future is already
// finished, fn is not stored and not run inline; it is deferred to the
// scheduler so that late registrations never execute synchronously.
func (c *core) setCallback(fn func()) {
	if c.done {
		c.sched.Defer(fn)
		return
	}

	c.cb = fn
}

// finish marks the future finished and fires the continuation inline. The
// caller must have checked ensureUnfinished and stored value or error first.
func (c *core) finish() {
	c.done = true
	c.diag.stampCompletion()

	if c.cb != nil {
		c.cb()
	}
}

// OnComplete registers fn to run once the future finishes, replacing any
// previously registered continuation. On an already finished future fn is
// deferred to the scheduler.
func (c *core) OnComplete(fn func()) {
	c.setCallback(fn)
}

// Fail completes the future with err and fires the continuation inline. If
// no continuation is registered the error is dropped silently, use
// MustSucceed on futures whose handle is not kept.
func (c *core) Fail(err error) {
	c.ensureUnfinished("Fail")

	if err == nil {
		panic("future: failing with nil error")
	}

	c.err = err
	c.errStack = stack(err)
	c.finish()
}

func (c *core) Finished() bool {
	return c.done
}

// Failed reports whether the future finished with an error.
func (c *core) Failed() bool {
	return c.err != nil
}

// Label returns the diagnostic label of the future, its name or numeric id
// plus the creation site. Empty in release builds.
func (c *core) Label() string {
	return c.diag.label()
}

// ReadError returns the stored error. It returns ErrNotReady if the future
// has not finished and ErrNotFailed if it finished successfully.
func (c *core) ReadError() (error, error) {
	if !c.done {
		return nil, ErrNotReady
	}

	if c.err == nil {
		return nil, ErrNotFailed
	}

	return c.err, nil
}

// MustSucceed registers a continuation that panics with the wrapped error if
// the future fails. It replaces any previously registered continuation.
func (c *core) MustSucceed() {
	c.setCallback(func() {
		if c.err != nil {
			panic(c.wrapError())
		}
	})
}

// Future is a single-assignment result cell for type T.
type Future[T any] struct {
	core
	value T
}

func New[T any](s Scheduler, opts ...Option) *Future[T] {
	f := &Future[T]{}
	f.init(s, applyOptions(opts...).Name, 2)

	return f
}

// newDerived creates a future produced by the library itself, such as stream
// read results and combinator results.
func newDerived[T any](s Scheduler, name string) *Future[T] {
	f := &Future[T]{}
	f.init(s, name, 3)

	return f
}

// Complete stores v and fires the continuation inline. Completing an already
// finished future panics with the creation and completion sites; builds with
// the futures_release tag skip the check.
func (f *Future[T]) Complete(v T) {
	f.ensureUnfinished("Complete")

	f.value = v
	f.finish()
}

// Read returns the stored value. It returns ErrNotReady while the future is
// pending and the failure wrapped in *Error once it has failed.
func (f *Future[T]) Read() (T, error) {
	var zero T

	if !f.done {
		return zero, ErrNotReady
	}

	if f.err != nil {
		return zero, f.wrapError()
	}

	return f.value, nil
}
