package future

// Var is a reusable completion cell. A producer loop completes it, consumers
// read it, and Reset re-arms the same cell for the next round instead of
// allocating a fresh future. Copies of a Var share one underlying future.
type Var[T any] struct {
	f *Future[T]
}

func NewVar[T any](s Scheduler, opts ...Option) Var[T] {
	f := &Future[T]{}
	f.init(s, applyOptions(opts...).Name, 2)

	return Var[T]{f: f}
}

// Future returns the underlying future handle.
func (v Var[T]) Future() *Future[T] {
	return v.f
}

func (v Var[T]) Complete(value T) {
	v.f.Complete(value)
}

// CompleteInPlace completes the cell with the value built through Peek,
// without storing a new one.
func (v Var[T]) CompleteInPlace() {
	v.f.ensureUnfinished("CompleteInPlace")
	v.f.finish()
}

// Reset clears the completion state and any stored error. The value and the
// registered continuation are kept, the next Complete fires it again.
func (v Var[T]) Reset() {
	v.f.done = false
	v.f.err = nil
	v.f.errStack = ""
	v.f.diag.clearCompletion()
}

// Peek returns a mutable view of the stored value, finished or not.
// Producers use it to build the value in place before completing.
func (v Var[T]) Peek() *T {
	return &v.f.value
}

func (v Var[T]) Read() (T, error) {
	return v.f.Read()
}

func (v Var[T]) Finished() bool {
	return v.f.done
}
