package retry

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/cenkalti/backoff/v4"
	"github.com/cschleiden/go-futures/dispatch"
	"github.com/cschleiden/go-futures/future"
	"github.com/stretchr/testify/require"
)

func Test_SucceedsOnFirstAttempt(t *testing.T) {
	d := dispatch.New()

	attempts := 0
	f := Do(d, backoff.NewConstantBackOff(time.Second), func() *future.Future[int] {
		attempts++

		op := future.New[int](d)
		op.Complete(42)
		return op
	})

	v, err := dispatch.Await(d, f)
	require.NoError(t, err)
	require.Equal(t, 42, v)
	require.Equal(t, 1, attempts)
}

func Test_RetriesUntilSuccess(t *testing.T) {
	mc := clock.NewMock()
	d := dispatch.New(dispatch.WithClock(mc))

	attempts := 0
	f := Do(d, backoff.NewConstantBackOff(time.Second), func() *future.Future[int] {
		attempts++

		op := future.New[int](d)
		if attempts < 3 {
			op.Fail(fmt.Errorf("attempt %d failed", attempts))
		} else {
			op.Complete(42)
		}
		return op
	})

	d.Drain()
	require.Equal(t, 1, attempts)
	require.False(t, f.Finished())

	mc.Add(time.Second)
	d.Drain()
	require.Equal(t, 2, attempts)
	require.False(t, f.Finished())

	mc.Add(time.Second)
	d.Drain()
	require.Equal(t, 3, attempts)
	require.True(t, f.Finished())

	v, err := f.Read()
	require.NoError(t, err)
	require.Equal(t, 42, v)
}

func Test_PermanentErrorStopsRetries(t *testing.T) {
	d := dispatch.New()

	errFatal := errors.New("bad credentials")

	attempts := 0
	f := Do(d, backoff.NewConstantBackOff(time.Second), func() *future.Future[int] {
		attempts++

		op := future.New[int](d)
		op.Fail(backoff.Permanent(errFatal))
		return op
	})

	d.Drain()
	require.Equal(t, 1, attempts)
	require.True(t, f.Finished())

	_, err := f.Read()
	require.ErrorIs(t, err, errFatal)
}

func Test_FailsWhenPolicyIsExhausted(t *testing.T) {
	mc := clock.NewMock()
	d := dispatch.New(dispatch.WithClock(mc))

	errBoom := errors.New("boom")
	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Second), 2)

	attempts := 0
	f := Do(d, policy, func() *future.Future[string] {
		attempts++

		op := future.New[string](d)
		op.Fail(errBoom)
		return op
	})

	d.Drain()
	mc.Add(time.Second)
	d.Drain()
	mc.Add(time.Second)
	d.Drain()

	require.Equal(t, 3, attempts)
	require.True(t, f.Finished())

	_, err := f.Read()
	require.ErrorIs(t, err, errBoom)
}

func Test_ExponentialDelaysGrow(t *testing.T) {
	mc := clock.NewMock()
	d := dispatch.New(dispatch.WithClock(mc))

	b := &backoff.ExponentialBackOff{
		InitialInterval:     time.Second,
		MaxInterval:         time.Minute,
		Multiplier:          2,
		RandomizationFactor: 0,
		Stop:                backoff.Stop,
		Clock:               mc,
	}

	attempts := 0
	Do(d, b, func() *future.Future[int] {
		attempts++

		op := future.New[int](d)
		op.Fail(errors.New("still failing"))
		return op
	})

	d.Drain()
	require.Equal(t, 1, attempts)

	// First retry after one second.
	mc.Add(time.Second)
	d.Drain()
	require.Equal(t, 2, attempts)

	// Second retry needs two seconds, one is not enough.
	mc.Add(time.Second)
	d.Drain()
	require.Equal(t, 2, attempts)

	mc.Add(time.Second)
	d.Drain()
	require.Equal(t, 3, attempts)
}
