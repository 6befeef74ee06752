package future

// Scheduler queues continuations that must not run inline, for example
// continuations registered on an already completed future. Defer must not
// invoke fn before returning.
type Scheduler interface {
	Defer(fn func())
}
