package samples

import (
	"log/slog"
	"os"

	"github.com/cschleiden/go-futures/dispatch"
)

// NewDispatcher creates a dispatcher for the samples with debug logging
// enabled.
func NewDispatcher(name string, opt ...dispatch.DispatcherOption) *dispatch.Dispatcher {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})).With(slog.String("sample", name))

	opts := append([]dispatch.DispatcherOption{dispatch.WithLogger(logger)}, opt...)

	return dispatch.New(opts...)
}
