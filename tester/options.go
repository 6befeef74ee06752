package tester

import (
	"log/slog"
	"time"
)

type options struct {
	Logger          *slog.Logger
	DeadlockTimeout time.Duration
}

type TesterOption func(*options)

func WithLogger(logger *slog.Logger) TesterOption {
	return func(o *options) {
		o.Logger = logger
	}
}

func WithDeadlockTimeout(timeout time.Duration) TesterOption {
	return func(o *options) {
		o.DeadlockTimeout = timeout
	}
}
