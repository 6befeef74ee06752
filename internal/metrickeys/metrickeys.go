package metrickeys

const (
	Prefix = "futures."

	// Dispatch
	TurnProcessed = Prefix + "dispatch.turn.processed"
	TurnLength    = Prefix + "dispatch.turn.length"
	TurnDuration  = Prefix + "dispatch.turn.duration"

	// Timers
	TimerScheduled = Prefix + "timer.scheduled"
	TimerFired     = Prefix + "timer.fired"
)
