package future

// And returns a future that succeeds once both inputs have succeeded and
// fails as soon as either input fails. If both inputs fail, the error of
// whichever continuation fires first wins. Registering replaces any
// continuation previously set on a and b.
func And[A, B any](a *Future[A], b *Future[B]) *Future[Void] {
	ret := newDerived[Void](a.sched, "and")

	a.OnComplete(andFire(ret, &a.core, &b.core))
	b.OnComplete(andFire(ret, &b.core, &a.core))

	return ret
}

// andFire resolves ret based on the firing input's outcome and the other
// input's current state. Writes are guarded by ret's own finished check so
// the second continuation cannot complete ret again.
func andFire(ret *Future[Void], self, other *core) func() {
	return func() {
		if ret.done {
			return
		}

		if self.err != nil {
			ret.Fail(self.err)
			return
		}

		if other.done {
			if other.err != nil {
				ret.Fail(other.err)
			} else {
				ret.Complete(Void{})
			}
		}
	}
}

// Or returns a future that settles as soon as either input settles, with
// success or failure alike. The later input keeps running, its outcome is
// discarded. Registering replaces any continuation previously set on a and
// b.
func Or[A, B any](a *Future[A], b *Future[B]) *Future[Void] {
	ret := newDerived[Void](a.sched, "or")

	a.OnComplete(orFire(ret, &a.core))
	b.OnComplete(orFire(ret, &b.core))

	return ret
}

// orFire is the single settle continuation shared by both inputs.
func orFire(ret *Future[Void], in *core) func() {
	return func() {
		if ret.done {
			return
		}

		if in.err != nil {
			ret.Fail(in.err)
		} else {
			ret.Complete(Void{})
		}
	}
}

// All returns a future collecting the results of futs in input order. It
// fails on the first input failure; outstanding inputs keep running and
// their completions are ignored. An empty input completes immediately with
// an empty slice. Registering replaces any continuation previously set on
// the inputs.
func All[T any](s Scheduler, futs ...*Future[T]) *Future[[]T] {
	ret := newDerived[[]T](s, "all")

	if len(futs) == 0 {
		ret.Complete([]T{})
		return ret
	}

	results := make([]T, len(futs))
	remaining := len(futs)

	for i, f := range futs {
		f.OnComplete(func() {
			if ret.done {
				return
			}

			if f.err != nil {
				ret.Fail(f.err)
				return
			}

			results[i] = f.value
			remaining--

			if remaining == 0 {
				ret.Complete(results)
			}
		})
	}

	return ret
}
