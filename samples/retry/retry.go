package main

import (
	"fmt"
	"log"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/cschleiden/go-futures/dispatch"
	"github.com/cschleiden/go-futures/future"
	"github.com/cschleiden/go-futures/retry"
	"github.com/cschleiden/go-futures/samples"
)

func main() {
	d := samples.NewDispatcher("retry")

	policy := &backoff.ExponentialBackOff{
		InitialInterval:     50 * time.Millisecond,
		MaxInterval:         time.Second,
		Multiplier:          2,
		RandomizationFactor: 0.2,
		MaxElapsedTime:      10 * time.Second,
		Stop:                backoff.Stop,
		Clock:               d.Clock(),
	}

	attempts := 0
	f := retry.Do(d, policy, func() *future.Future[string] {
		attempts++

		return flakyLookup(d, attempts)
	})

	v, err := dispatch.Await(d, f)
	if err != nil {
		panic("lookup did not recover: " + err.Error())
	}

	log.Printf("Lookup succeeded after %d attempts: %s", attempts, v)
}

// flakyLookup fails the first two times it is called.
func flakyLookup(d *dispatch.Dispatcher, attempt int) *future.Future[string] {
	f := future.New[string](d, future.WithName("flakyLookup"))

	d.Defer(func() {
		if attempt < 3 {
			f.Fail(fmt.Errorf("lookup attempt %d: connection reset", attempt))
			return
		}

		f.Complete("42.50 EUR")
	})

	return f
}
