package log

const (
	NamespaceKey = "futures"

	FutureKey = NamespaceKey + ".future"

	BatchSizeKey   = NamespaceKey + ".dispatch.batch_size"
	QueueLengthKey = NamespaceKey + ".dispatch.queue_length"
	PanicKey       = NamespaceKey + ".dispatch.panic"

	ActiveTimersKey = NamespaceKey + ".timer.active"

	AttemptKey  = NamespaceKey + ".attempt"
	DurationKey = NamespaceKey + ".duration_ms"

	// NowKey is the time at which a timer was scheduled
	NowKey = NamespaceKey + ".timer.now"
	// AtKey is the time at which a timer is scheduled to fire
	AtKey = NamespaceKey + ".timer.at"
)
