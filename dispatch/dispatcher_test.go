package dispatch

import (
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func Test_DeferredContinuationsRunInOrder(t *testing.T) {
	d := New()

	var got []int
	d.Defer(func() { got = append(got, 1) })
	d.Defer(func() { got = append(got, 2) })
	d.Defer(func() { got = append(got, 3) })

	require.Equal(t, 3, d.Pending())
	require.Equal(t, 3, d.RunOnce())
	require.Equal(t, []int{1, 2, 3}, got)
	require.Equal(t, 0, d.Pending())
}

func Test_RunOnceIsolatesBatches(t *testing.T) {
	d := New()

	var got []string
	d.Defer(func() {
		got = append(got, "first")
		d.Defer(func() { got = append(got, "second") })
	})

	require.Equal(t, 1, d.RunOnce())
	require.Equal(t, []string{"first"}, got)

	require.Equal(t, 1, d.RunOnce())
	require.Equal(t, []string{"first", "second"}, got)
}

func Test_DrainRunsNestedDeferrals(t *testing.T) {
	d := New()

	count := 0
	var again func()
	again = func() {
		count++
		if count < 5 {
			d.Defer(again)
		}
	}

	d.Defer(again)

	require.Equal(t, 5, d.Drain())
	require.Equal(t, 0, d.Pending())
	require.Equal(t, 5, count)
}

func Test_DeferFromOtherGoroutines(t *testing.T) {
	defer goleak.VerifyNone(t)

	d := New()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Defer(func() {})
		}()
	}
	wg.Wait()

	require.Equal(t, 10, d.Drain())
}

func Test_ContinuationPanicPropagates(t *testing.T) {
	d := New(WithLogger(slog.New(slog.DiscardHandler)))

	ran := false
	d.Defer(func() { panic("boom") })
	d.Defer(func() { ran = true })

	require.PanicsWithValue(t, "boom", func() {
		d.RunOnce()
	})

	// The rest of the batch is dropped with the panic.
	require.False(t, ran)
	require.Equal(t, 0, d.Pending())
}

func Test_DelayCompletesAfterClockAdvance(t *testing.T) {
	mc := clock.NewMock()
	d := New(WithClock(mc))

	f := d.Delay(5 * time.Second)

	d.Drain()
	require.False(t, f.Finished())
	require.Equal(t, 1, d.ActiveTimers())

	mc.Add(4 * time.Second)
	d.Drain()
	require.False(t, f.Finished())

	mc.Add(time.Second)
	require.Equal(t, 0, d.ActiveTimers())
	require.Equal(t, 1, d.Pending())

	d.Drain()
	require.True(t, f.Finished())
}

func Test_DelaysFireInDeadlineOrder(t *testing.T) {
	mc := clock.NewMock()
	d := New(WithClock(mc))

	var got []string

	slow := d.Delay(2 * time.Second)
	slow.OnComplete(func() { got = append(got, "slow") })

	fast := d.Delay(time.Second)
	fast.OnComplete(func() { got = append(got, "fast") })

	mc.Add(2 * time.Second)
	d.Drain()

	require.Equal(t, []string{"fast", "slow"}, got)
}
