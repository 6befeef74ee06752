package future

// Item is one stream read result. Valid is false when the stream closed
// before another value arrived.
type Item[T any] struct {
	Value T
	Valid bool
}

// Stream is a FIFO of values with future-based reads. It follows the same
// continuation discipline as futures: a single callback slot, replacement on
// re-registration, and deferred invocation when registering while data is
// already waiting.
type Stream[T any] struct {
	sched  Scheduler
	queue  []T
	closed bool
	cb     func()
	diag   diag
}

func NewStream[T any](s Scheduler, opts ...Option) *Stream[T] {
	if s == nil {
		panic("future: nil Scheduler")
	}

	return &Stream[T]{
		sched: s,
		diag:  newDiag(applyOptions(opts...).Name, 1),
	}
}

// Write appends v to the stream, invokes the registered continuation
// synchronously, and returns a future for the enqueue itself. Writing to a
// closed stream fails the returned future with ErrStreamClosed and leaves
// the queue untouched.
func (s *Stream[T]) Write(v T) *Future[Void] {
	ret := newDerived[Void](s.sched, s.diag.child("write"))

	if s.closed {
		ret.Fail(ErrStreamClosed)
		return ret
	}

	s.queue = append(s.queue, v)

	if s.cb != nil {
		s.cb()
	}

	ret.Complete(Void{})

	return ret
}

// Read returns a future for the next value. It installs a one-shot wrapper
// in the callback slot; when the wrapper consumes a value or observes the
// end of the stream it restores the previously registered continuation and
// invokes it, so stacked readers and a caller's own OnData registration are
// not lost.
func (s *Stream[T]) Read() *Future[Item[T]] {
	ret := newDerived[Item[T]](s.sched, s.diag.child("read"))

	prev := s.cb

	var fire func()
	fire = func() {
		if ret.done {
			return
		}

		if len(s.queue) > 0 {
			var zero T
			v := s.queue[0]
			s.queue[0] = zero
			s.queue = s.queue[1:]

			s.cb = prev
			ret.Complete(Item[T]{Value: v, Valid: true})
		} else if s.closed {
			s.cb = prev
			ret.Complete(Item[T]{})
		} else {
			// Nothing to consume yet. Stay installed until the next write or
			// the close.
			s.cb = fire
			return
		}

		if prev != nil {
			prev()
		}
	}

	s.OnData(fire)

	return ret
}

// OnData registers fn to be invoked when a value is written or the stream is
// closed, replacing any previous registration. If data is already queued or
// the stream is already closed, fn is deferred to the scheduler instead of
// running inline.
func (s *Stream[T]) OnData(fn func()) {
	s.cb = fn

	if len(s.queue) > 0 || s.closed {
		s.sched.Defer(fn)
	}
}

// Len returns the number of unread values.
func (s *Stream[T]) Len() int {
	return len(s.queue)
}

// Close marks the end of the stream and invokes the registered continuation
// synchronously. Closing twice is a no-op. Unread values stay readable,
// readers observe the end once the queue is drained.
func (s *Stream[T]) Close() {
	if s.closed {
		return
	}

	s.closed = true

	if s.cb != nil {
		s.cb()
	}
}

// Finished reports the drained terminal state: closed and no unread values
// left.
func (s *Stream[T]) Finished() bool {
	return s.closed && len(s.queue) == 0
}
