package dispatch

import (
	"log/slog"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
)

func TestWithDeadlockTimeout(t *testing.T) {
	timeout := 5 * time.Minute
	option := WithDeadlockTimeout(timeout)

	opts := ApplyOptions(option)

	assert.Equal(t, timeout, opts.DeadlockTimeout)
}

func TestWithClock(t *testing.T) {
	mc := clock.NewMock()

	opts := ApplyOptions(WithClock(mc))

	assert.Same(t, mc, opts.Clock)
}

func TestWithLogger(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	opts := ApplyOptions(WithLogger(logger))

	assert.Same(t, logger, opts.Logger)
}

func TestDefaultValues(t *testing.T) {
	opts := ApplyOptions()

	// Verify default values are preserved when no options are provided
	assert.Equal(t, DeadlockDetection, opts.DeadlockTimeout)
	assert.NotNil(t, opts.Logger)
	assert.NotNil(t, opts.Metrics)
	assert.NotNil(t, opts.TracerProvider)
	assert.NotNil(t, opts.Clock)
}

func TestCombinedOptions(t *testing.T) {
	timeout := 30 * time.Second
	mc := clock.NewMock()

	opts := ApplyOptions(
		WithDeadlockTimeout(timeout),
		WithClock(mc),
	)

	assert.Equal(t, timeout, opts.DeadlockTimeout)
	assert.Same(t, mc, opts.Clock)
}
